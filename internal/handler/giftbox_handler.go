package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dev-modakk/modakk-backend/internal/domain"
	"github.com/dev-modakk/modakk-backend/internal/service"
)

// GiftBoxHandler handles gift box catalog requests.
type GiftBoxHandler struct {
	giftBoxService service.GiftBoxServiceInterface
	Responder
}

// NewGiftBoxHandler creates a new GiftBoxHandler.
func NewGiftBoxHandler(giftBoxService service.GiftBoxServiceInterface, r Responder) *GiftBoxHandler {
	return &GiftBoxHandler{
		giftBoxService: giftBoxService,
		Responder:      r,
	}
}

// GiftBoxCard is the public projection of a gift box.
type GiftBoxCard struct {
	ID           string   `json:"id"`
	DisplayID    string   `json:"displayId"`
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	Image        string   `json:"image"`
	Badge        *string  `json:"badge"`
	Rating       float64  `json:"rating"`
	Reviews      int      `json:"reviews"`
	Description  string   `json:"description"`
	IsWishlisted bool     `json:"isWishlisted"`
	IsSoldOut    bool     `json:"isSoldOut"`
	Category     string   `json:"category"`
	Images       []string `json:"images"`
}

// toCard converts a domain.GiftBox to a GiftBoxCard.
func toCard(g *domain.GiftBox) GiftBoxCard {
	images := g.Images
	if images == nil {
		images = []string{}
	}
	return GiftBoxCard{
		ID:           g.ID,
		DisplayID:    g.DisplayID,
		Name:         g.Name,
		Price:        g.Price,
		Image:        g.Image,
		Badge:        g.Badge,
		Rating:       g.Rating,
		Reviews:      g.Reviews,
		Description:  g.Description,
		IsWishlisted: g.IsWishlisted,
		IsSoldOut:    g.IsSoldOut,
		Category:     string(g.Category),
		Images:       images,
	}
}

func toCards(items []domain.GiftBox) []GiftBoxCard {
	cards := make([]GiftBoxCard, len(items))
	for i := range items {
		cards[i] = toCard(&items[i])
	}
	return cards
}

// BrowseResponse is one page of browse results.
type BrowseResponse struct {
	Items      []GiftBoxCard `json:"items"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	Total      int           `json:"total"`
	TotalPages int           `json:"totalPages"`
}

// UpdateGiftBoxRequest is the body of a partial update. Absent fields are
// left unchanged.
type UpdateGiftBoxRequest struct {
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	Price        *float64         `json:"price"`
	Image        *string          `json:"image"`
	Badge        *string          `json:"badge"`
	Rating       *float64         `json:"rating"`
	Reviews      *int             `json:"reviews"`
	IsWishlisted *bool            `json:"isWishlisted"`
	IsSoldOut    *bool            `json:"isSoldOut"`
	Category     *domain.Category `json:"category"`
	Images       *[]string        `json:"images"`
}

func (r UpdateGiftBoxRequest) patch() domain.GiftBoxPatch {
	p := domain.GiftBoxPatch{
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		Image:        r.Image,
		Badge:        r.Badge,
		Rating:       r.Rating,
		Reviews:      r.Reviews,
		IsWishlisted: r.IsWishlisted,
		IsSoldOut:    r.IsSoldOut,
		Category:     r.Category,
	}
	if r.Images != nil {
		p.SetImages = true
		p.Images = *r.Images
	}
	return p
}

// ImagesRequest is the body of the gallery endpoints.
type ImagesRequest struct {
	Images []string `json:"images"`
}

// List handles GET /api/v1/kidsgiftboxes
func (h *GiftBoxHandler) List(c *gin.Context) {
	items, err := h.giftBoxService.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.Fail(c, err, MsgGiftBoxNotFound)
		return
	}
	c.JSON(http.StatusOK, toCards(items))
}

// Browse handles GET /api/v1/kidsgiftboxes/browse
func (h *GiftBoxHandler) Browse(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize"))
	q := domain.NewBrowseQuery(page, pageSize, c.Query("q"), c.DefaultQuery("category", "all"), c.Query("sortBy"))

	result, err := h.giftBoxService.Browse(c.Request.Context(), q)
	if err != nil {
		h.Fail(c, err, MsgGiftBoxNotFound)
		return
	}

	c.JSON(http.StatusOK, BrowseResponse{
		Items:      toCards(result.Items),
		Page:       result.Page,
		PageSize:   result.PageSize,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

// Create handles POST /api/v1/kidsgiftboxes
func (h *GiftBoxHandler) Create(c *gin.Context) {
	var in domain.GiftBoxInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.BadJSON(c, err)
		return
	}

	g, err := h.giftBoxService.Create(c.Request.Context(), in)
	if err != nil {
		h.Fail(c, err, MsgGiftBoxNotFound)
		return
	}
	c.JSON(http.StatusCreated, toCard(g))
}

// Get handles GET /api/v1/kidsgiftboxes/:id
func (h *GiftBoxHandler) Get(c *gin.Context) {
	g, err := h.giftBoxService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Fail(c, err, MsgGiftBoxNotFound)
		return
	}
	c.JSON(http.StatusOK, toCard(g))
}

// Update handles PUT /api/v1/kidsgiftboxes/:id
func (h *GiftBoxHandler) Update(c *gin.Context) {
	var req UpdateGiftBoxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadJSON(c, err)
		return
	}

	g, err := h.giftBoxService.Update(c.Request.Context(), c.Param("id"), req.patch())
	if err != nil {
		h.Fail(c, err, MsgGiftBoxNotFound)
		return
	}
	c.JSON(http.StatusOK, toCard(g))
}

// Delete handles DELETE /api/v1/kidsgiftboxes/:id
func (h *GiftBoxHandler) Delete(c *gin.Context) {
	if err := h.giftBoxService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.Fail(c, err, MsgGiftBoxNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddImages handles POST /api/v1/kidsgiftboxes/:id/images
func (h *GiftBoxHandler) AddImages(c *gin.Context) {
	h.images(c, h.giftBoxService.AddImages)
}

// ReplaceImages handles PUT /api/v1/kidsgiftboxes/:id/images
func (h *GiftBoxHandler) ReplaceImages(c *gin.Context) {
	h.images(c, h.giftBoxService.ReplaceImages)
}

// RemoveImages handles DELETE /api/v1/kidsgiftboxes/:id/images
func (h *GiftBoxHandler) RemoveImages(c *gin.Context) {
	var req ImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Images) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: MsgRemoveImages})
		return
	}

	g, err := h.giftBoxService.RemoveImages(c.Request.Context(), c.Param("id"), req.Images)
	if err != nil {
		h.Fail(c, err, MsgGiftBoxNotFound)
		return
	}
	c.JSON(http.StatusOK, toCard(g))
}

func (h *GiftBoxHandler) images(c *gin.Context, apply func(context.Context, string, []string) (*domain.GiftBox, error)) {
	var req ImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadJSON(c, err)
		return
	}

	g, err := apply(c.Request.Context(), c.Param("id"), req.Images)
	if err != nil {
		h.Fail(c, err, MsgGiftBoxNotFound)
		return
	}
	c.JSON(http.StatusOK, toCard(g))
}
