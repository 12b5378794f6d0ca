package domain

import (
	"strings"
	"time"
)

// Category is the two-letter product type code carried by every gift box
// and embedded in its display identifier.
type Category string

const (
	CategoryGiftBox   Category = "GB"
	CategoryToy       Category = "TY"
	CategoryBook      Category = "BK"
	CategoryGame      Category = "GM"
	CategoryClothing  Category = "CL"
	CategoryAccessory Category = "AC"
)

// DefaultCategory is applied when a record does not name a category.
const DefaultCategory = CategoryGiftBox

// MaxGalleryImages is the maximum number of gallery images per gift box.
const MaxGalleryImages = 12

// ValidCategories contains all valid category codes in display order.
var ValidCategories = []Category{
	CategoryGiftBox,
	CategoryToy,
	CategoryBook,
	CategoryGame,
	CategoryClothing,
	CategoryAccessory,
}

var categoryNames = map[Category]string{
	CategoryGiftBox:   "Gift Box",
	CategoryToy:       "Toy",
	CategoryBook:      "Book",
	CategoryGame:      "Game",
	CategoryClothing:  "Clothing",
	CategoryAccessory: "Accessory",
}

// IsValidCategory checks if a category code is valid.
func IsValidCategory(c string) bool {
	for _, v := range ValidCategories {
		if string(v) == c {
			return true
		}
	}
	return false
}

// Name returns the human-readable category name, or "Unknown".
func (c Category) Name() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

// GiftBoxInput is the validated, schema-conformant product payload.
type GiftBoxInput struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Image        string   `json:"image"`
	Badge        *string  `json:"badge,omitempty"`
	Rating       float64  `json:"rating"`
	Reviews      int      `json:"reviews"`
	IsWishlisted bool     `json:"isWishlisted"`
	IsSoldOut    bool     `json:"isSoldOut"`
	Category     Category `json:"category"`
	Images       []string `json:"images"`
}

// GiftBox represents a persisted gift box record.
type GiftBox struct {
	ID        string `json:"id"`
	DisplayID string `json:"displayId"`
	GiftBoxInput
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GiftBoxPatch carries a partial update. Nil fields are left unchanged.
type GiftBoxPatch struct {
	Name         *string
	Description  *string
	Price        *float64
	Image        *string
	Badge        *string
	Rating       *float64
	Reviews      *int
	IsWishlisted *bool
	IsSoldOut    *bool
	Category     *Category
	Images       []string
	SetImages    bool
}

// IsEmpty reports whether the patch changes nothing.
func (p GiftBoxPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil && p.Image == nil &&
		p.Badge == nil && p.Rating == nil && p.Reviews == nil && p.IsWishlisted == nil &&
		p.IsSoldOut == nil && p.Category == nil && !p.SetImages
}

// Apply returns a copy of g with the patch applied.
func (p GiftBoxPatch) Apply(g GiftBox) GiftBox {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.Price != nil {
		g.Price = *p.Price
	}
	if p.Image != nil {
		g.Image = *p.Image
	}
	if p.Badge != nil {
		badge := *p.Badge
		g.Badge = &badge
	}
	if p.Rating != nil {
		g.Rating = *p.Rating
	}
	if p.Reviews != nil {
		g.Reviews = *p.Reviews
	}
	if p.IsWishlisted != nil {
		g.IsWishlisted = *p.IsWishlisted
	}
	if p.IsSoldOut != nil {
		g.IsSoldOut = *p.IsSoldOut
	}
	if p.Category != nil {
		g.Category = *p.Category
	}
	if p.SetImages {
		g.Images = append([]string(nil), p.Images...)
	}
	return g
}

// SortOrder names a browse ordering.
type SortOrder string

const (
	SortFeatured   SortOrder = "featured"
	SortPriceAsc   SortOrder = "price-asc"
	SortPriceDesc  SortOrder = "price-desc"
	SortRatingDesc SortOrder = "rating-desc"
	SortNewest     SortOrder = "newest"
)

// ParseSortOrder maps a query value to a SortOrder, falling back to featured.
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(s) {
	case SortPriceAsc, SortPriceDesc, SortRatingDesc, SortNewest:
		return SortOrder(s)
	default:
		return SortFeatured
	}
}

// BrowseQuery describes one page of the storefront browse listing.
type BrowseQuery struct {
	Page     int
	PageSize int
	Query    string
	// Category is empty when all categories are requested.
	Category Category
	Sort     SortOrder
}

// Browse page size bounds.
const (
	DefaultPageSize = 12
	MaxPageSize     = 60
)

// NewBrowseQuery clamps raw query parameters into a BrowseQuery. Category
// "all" (any case) or an empty string selects every category.
func NewBrowseQuery(page, pageSize int, query, category, sort string) BrowseQuery {
	if page < 1 {
		page = 1
	}
	switch {
	case pageSize < 1:
		pageSize = DefaultPageSize
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	}
	category = strings.ToUpper(strings.TrimSpace(category))
	if category == "ALL" {
		category = ""
	}
	return BrowseQuery{
		Page:     page,
		PageSize: pageSize,
		Query:    strings.TrimSpace(query),
		Category: Category(category),
		Sort:     ParseSortOrder(sort),
	}
}

// Offset returns the number of rows to skip.
func (q BrowseQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// NewBrowsePage builds a page from the query and the repository result.
func NewBrowsePage(q BrowseQuery, items []GiftBox, total int) *BrowsePage {
	if items == nil {
		items = []GiftBox{}
	}
	totalPages := 0
	if q.PageSize > 0 {
		totalPages = (total + q.PageSize - 1) / q.PageSize
	}
	return &BrowsePage{
		Items:      items,
		Page:       q.Page,
		PageSize:   q.PageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// BrowsePage is one page of browse results.
type BrowsePage struct {
	Items      []GiftBox `json:"items"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	Total      int       `json:"total"`
	TotalPages int       `json:"totalPages"`
}
