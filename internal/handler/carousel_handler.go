package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-modakk/modakk-backend/internal/domain"
	"github.com/dev-modakk/modakk-backend/internal/middleware"
	"github.com/dev-modakk/modakk-backend/internal/service"
)

// CarouselHandler handles homepage carousel configuration requests.
type CarouselHandler struct {
	carouselService service.CarouselServiceInterface
	Responder
}

// NewCarouselHandler creates a new CarouselHandler.
func NewCarouselHandler(carouselService service.CarouselServiceInterface, r Responder) *CarouselHandler {
	return &CarouselHandler{
		carouselService: carouselService,
		Responder:       r,
	}
}

// CarouselRequest is the body of create and replace.
type CarouselRequest struct {
	Slides []domain.Slide `json:"slides"`
}

// Get handles GET /api/v1/config/carousel
func (h *CarouselHandler) Get(c *gin.Context) {
	carousel, err := h.carouselService.Get(c.Request.Context())
	if err != nil {
		h.Fail(c, err, MsgCarouselNotFound)
		return
	}
	c.JSON(http.StatusOK, carousel)
}

// Create handles POST /api/v1/config/carousel
func (h *CarouselHandler) Create(c *gin.Context) {
	var req CarouselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadJSON(c, err)
		return
	}

	carousel, err := h.carouselService.Create(c.Request.Context(), req.Slides)
	if errors.Is(err, domain.ErrConflict) {
		c.JSON(http.StatusConflict, ErrorResponse{Message: MsgCarouselExists})
		return
	}
	if err != nil {
		h.Fail(c, err, MsgCarouselNotFound)
		return
	}
	c.JSON(http.StatusCreated, carousel)
}

// Put handles PUT /api/v1/config/carousel
func (h *CarouselHandler) Put(c *gin.Context) {
	var req CarouselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadJSON(c, err)
		return
	}

	carousel, created, err := h.carouselService.Put(c.Request.Context(), req.Slides)
	h.respondUpsert(c, carousel, created, err)
}

// Import handles POST /api/v1/config/carousel/import
func (h *CarouselHandler) Import(c *gin.Context) {
	data, fileName, ok := h.readUpload(c)
	if !ok {
		return
	}

	carousel, created, err := h.carouselService.Import(c.Request.Context(), data, fileName, middleware.GetRequestID(c))
	h.respondUpsert(c, carousel, created, err)
}

func (h *CarouselHandler) respondUpsert(c *gin.Context, carousel *domain.Carousel, created bool, err error) {
	if err != nil {
		h.Fail(c, err, MsgCarouselNotFound)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, carousel)
}
