package tabular

import "strings"

// Canonical product fields.
const (
	FieldName         = "name"
	FieldDescription  = "description"
	FieldPrice        = "price"
	FieldImage        = "image"
	FieldBadge        = "badge"
	FieldRating       = "rating"
	FieldReviews      = "reviews"
	FieldIsWishlisted = "isWishlisted"
	FieldIsSoldOut    = "isSoldOut"
	FieldCategory     = "category"
	FieldImages       = "images"
)

// Carousel fields.
const (
	FieldTitle = "title"
)

// RequiredProductFields must be resolvable from a product import header row.
var RequiredProductFields = []string{FieldName, FieldDescription, FieldPrice, FieldImage, FieldRating}

var headerSynonyms = map[string]string{
	"name":         FieldName,
	"product name": FieldName,
	"product_name": FieldName,
	"title":        FieldName,

	"description": FieldDescription,
	"desc":        FieldDescription,
	"details":     FieldDescription,

	"price":        FieldPrice,
	"price in inr": FieldPrice,
	"priceinr":     FieldPrice,
	"price_inr":    FieldPrice,
	"cost":         FieldPrice,

	"image":         FieldImage,
	"image url":     FieldImage,
	"image_url":     FieldImage,
	"main image":    FieldImage,
	"main_image":    FieldImage,
	"primary image": FieldImage,

	"badge": FieldBadge,
	"tag":   FieldBadge,
	"label": FieldBadge,

	"rating": FieldRating,
	"stars":  FieldRating,
	"score":  FieldRating,

	"reviews":       FieldReviews,
	"review count":  FieldReviews,
	"review_count":  FieldReviews,
	"total reviews": FieldReviews,

	"iswishlisted":  FieldIsWishlisted,
	"is wishlisted": FieldIsWishlisted,
	"is_wishlisted": FieldIsWishlisted,
	"wishlisted":    FieldIsWishlisted,

	"issoldout":    FieldIsSoldOut,
	"is sold out":  FieldIsSoldOut,
	"is_sold_out":  FieldIsSoldOut,
	"sold out":     FieldIsSoldOut,
	"soldout":      FieldIsSoldOut,
	"out of stock": FieldIsSoldOut,

	"category":     FieldCategory,
	"cat":          FieldCategory,
	"type":         FieldCategory,
	"product type": FieldCategory,
	"product_type": FieldCategory,

	"images":            FieldImages,
	"gallery":           FieldImages,
	"gallery images":    FieldImages,
	"gallery_images":    FieldImages,
	"additional images": FieldImages,
	"additional_images": FieldImages,
}

var carouselSynonyms = map[string]string{
	"url":         FieldImage,
	"image":       FieldImage,
	"image url":   FieldImage,
	"title":       FieldTitle,
	"description": FieldDescription,
}

// HeaderMap maps canonical field names to column indexes.
type HeaderMap struct {
	index map[string]int
	keys  []string
}

// CanonicalField maps one raw header to its canonical field. Unknown headers
// come back lower-cased and trimmed.
func CanonicalField(header string) string {
	key := strings.ToLower(clean(header))
	if field, ok := headerSynonyms[key]; ok {
		return field
	}
	return key
}

// ResolveHeaders maps product import headers onto canonical fields. When two
// columns resolve to the same field the first one wins.
func ResolveHeaders(headers []string) HeaderMap {
	return resolve(headers, CanonicalField)
}

// ResolveCarouselHeaders maps carousel headers. Only the exact aliases
// url, image and image url are accepted for the image column.
func ResolveCarouselHeaders(headers []string) (HeaderMap, error) {
	hm := resolve(headers, func(h string) string {
		key := strings.ToLower(clean(h))
		if field, ok := carouselSynonyms[key]; ok {
			return field
		}
		return ""
	})
	if len(hm.Missing(FieldImage, FieldTitle, FieldDescription)) > 0 {
		return HeaderMap{}, &FileError{Message: "Missing required headers. Expect: url (or image/image url), title, description."}
	}
	return hm, nil
}

func resolve(headers []string, canonical func(string) string) HeaderMap {
	hm := HeaderMap{
		index: make(map[string]int, len(headers)),
		keys:  make([]string, len(headers)),
	}
	for i, h := range headers {
		field := canonical(h)
		if field == "" {
			continue
		}
		if _, dup := hm.index[field]; dup {
			continue
		}
		hm.index[field] = i
		hm.keys[i] = field
	}
	return hm
}

// Index returns the column index of a canonical field.
func (h HeaderMap) Index(field string) (int, bool) {
	i, ok := h.index[field]
	return i, ok
}

// Key returns the canonical field for a column, or "" if the column is ignored.
func (h HeaderMap) Key(col int) string {
	if col < 0 || col >= len(h.keys) {
		return ""
	}
	return h.keys[col]
}

// Len returns the number of header columns.
func (h HeaderMap) Len() int { return len(h.keys) }

// Missing returns the fields that no column resolved to.
func (h HeaderMap) Missing(fields ...string) []string {
	var missing []string
	for _, f := range fields {
		if _, ok := h.index[f]; !ok {
			missing = append(missing, f)
		}
	}
	return missing
}
