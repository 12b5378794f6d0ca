package validator

import (
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/dev-modakk/modakk-backend/internal/domain"
)

var (
	// imageURLRegex matches direct links to image files.
	imageURLRegex = regexp.MustCompile(`(?i)^https?://.+\.(jpg|jpeg|png|gif|webp|svg)(\?.*)?$`)

	validCategories = func() []interface{} {
		out := make([]interface{}, len(domain.ValidCategories))
		for i, c := range domain.ValidCategories {
			out[i] = c
		}
		return out
	}()
)

// FieldError is one failed constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// String renders the error as a sentence naming the field.
func (e FieldError) String() string {
	return e.Field + " " + e.Message
}

// FieldErrors collects every failed constraint of one record in schema order.
type FieldErrors []FieldError

// Error joins the failures as "field: message" pairs.
func (fe FieldErrors) Error() string {
	parts := make([]string, len(fe))
	for i, e := range fe {
		parts[i] = e.Field + ": " + e.Message
	}
	return strings.Join(parts, ", ")
}

// Map returns the first message per field.
func (fe FieldErrors) Map() map[string]string {
	out := make(map[string]string, len(fe))
	for _, e := range fe {
		if _, ok := out[e.Field]; !ok {
			out[e.Field] = e.Message
		}
	}
	return out
}

func (fe *FieldErrors) add(field string, err error) {
	if err == nil {
		return
	}
	msg := err.Error()
	if ve, ok := err.(validation.Error); ok {
		msg = ve.Message()
	}
	*fe = append(*fe, FieldError{Field: field, Message: msg})
}

func (fe FieldErrors) orNil() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// Messages used by more than one rule.
const (
	msgPrice   = "must be a positive number"
	msgRating  = "must be between 0 and 5"
	msgReviews = "must be a non-negative integer"
	msgURL     = "must be a valid URL"
)

// MaxPrice is the largest price a NUMERIC(10,2) column holds.
const MaxPrice = 99999999.99

func nameRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("is required"),
		validation.RuneLength(1, 200).Error("must be at most 200 characters"),
	}
}

func descriptionRules() []validation.Rule {
	return []validation.Rule{validation.Required.Error("is required")}
}

func priceRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error(msgPrice),
		validation.Min(0.0).Exclusive().Error(msgPrice),
		validation.Max(MaxPrice).Error("must be at most 99999999.99"),
	}
}

func imageRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error(msgURL),
		is.RequestURL.Error(msgURL),
	}
}

func badgeRules() []validation.Rule {
	return []validation.Rule{validation.RuneLength(0, 50).Error("must be at most 50 characters")}
}

func ratingRules() []validation.Rule {
	return []validation.Rule{
		validation.Min(0.0).Error(msgRating),
		validation.Max(5.0).Error(msgRating),
	}
}

func reviewsRules() []validation.Rule {
	return []validation.Rule{validation.Min(0).Error(msgReviews)}
}

func categoryRules() []validation.Rule {
	return []validation.Rule{
		validation.In(validCategories...).Error("must be one of GB, TY, BK, GM, CL, AC"),
	}
}

func galleryRules() []validation.Rule {
	return []validation.Rule{
		validation.Length(0, domain.MaxGalleryImages).Error(fmt.Sprintf("must contain at most %d URLs", domain.MaxGalleryImages)),
		validation.By(func(value interface{}) error {
			urls, _ := value.([]string)
			for _, u := range urls {
				if err := validation.Validate(u, validation.Required, is.RequestURL); err != nil {
					return validation.NewError("validation_images_url", "must contain only valid URLs")
				}
			}
			return nil
		}),
	}
}

// Validator checks gift box and carousel payloads.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGiftBox checks a full gift box payload. The returned error is a
// FieldErrors when any constraint fails.
func (v *Validator) ValidateGiftBox(in *domain.GiftBoxInput) error {
	var fe FieldErrors
	checkInput(&fe, in)
	return fe.orNil()
}

func checkInput(fe *FieldErrors, in *domain.GiftBoxInput) {
	fe.add("name", validation.Validate(in.Name, nameRules()...))
	fe.add("description", validation.Validate(in.Description, descriptionRules()...))
	fe.add("price", validation.Validate(in.Price, priceRules()...))
	fe.add("image", validation.Validate(in.Image, imageRules()...))
	if in.Badge != nil {
		fe.add("badge", validation.Validate(*in.Badge, badgeRules()...))
	}
	fe.add("rating", validation.Validate(in.Rating, ratingRules()...))
	fe.add("reviews", validation.Validate(in.Reviews, reviewsRules()...))
	fe.add("category", validation.Validate(in.Category, categoryRules()...))
	fe.add("images", validation.Validate(in.Images, galleryRules()...))
}

// ValidatePatch checks the fields present in a partial update.
func (v *Validator) ValidatePatch(p *domain.GiftBoxPatch) error {
	if p.IsEmpty() {
		return domain.ErrEmptyPatch
	}

	var fe FieldErrors
	if p.Name != nil {
		fe.add("name", validation.Validate(*p.Name, nameRules()...))
	}
	if p.Description != nil {
		fe.add("description", validation.Validate(*p.Description, descriptionRules()...))
	}
	if p.Price != nil {
		fe.add("price", validation.Validate(*p.Price, priceRules()...))
	}
	if p.Image != nil {
		fe.add("image", validation.Validate(*p.Image, imageRules()...))
	}
	if p.Badge != nil {
		fe.add("badge", validation.Validate(*p.Badge, badgeRules()...))
	}
	if p.Rating != nil {
		fe.add("rating", validation.Validate(*p.Rating, ratingRules()...))
	}
	if p.Reviews != nil {
		fe.add("reviews", validation.Validate(*p.Reviews, reviewsRules()...))
	}
	if p.Category != nil {
		fe.add("category", validation.Validate(*p.Category, categoryRules()...))
	}
	if p.SetImages {
		fe.add("images", validation.Validate(p.Images, galleryRules()...))
	}
	return fe.orNil()
}

// ValidateImageURLs checks the body of the gallery image endpoints.
func (v *Validator) ValidateImageURLs(urls []string) error {
	var fe FieldErrors
	fe.add("images", validation.Validate(urls,
		validation.Required.Error("must contain at least one URL"),
		validation.Length(1, domain.MaxGalleryImages).Error(fmt.Sprintf("must contain between 1 and %d URLs", domain.MaxGalleryImages)),
	))
	for i, u := range urls {
		fe.add(fmt.Sprintf("images.%d", i), validation.Validate(u, directImageRules()...))
	}
	return fe.orNil()
}

func directImageRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("is required"),
		validation.Match(imageURLRegex).Error("must be a direct image URL (jpg, jpeg, png, gif, webp, svg)"),
	}
}

// ValidateSlide checks one carousel slide.
func (v *Validator) ValidateSlide(s domain.Slide) error {
	var fe FieldErrors
	fe.add("image", validation.Validate(s.Image, directImageRules()...))
	fe.add("title", validation.Validate(s.Title, validation.Required.Error("is required")))
	fe.add("description", validation.Validate(s.Description, validation.Required.Error("is required")))
	return fe.orNil()
}

// ValidateSlides checks a full carousel payload.
func (v *Validator) ValidateSlides(slides []domain.Slide) error {
	var fe FieldErrors
	fe.add("slides", validation.Validate(slides,
		validation.Required.Error("must contain at least one slide"),
		validation.Length(1, domain.MaxCarouselSlides).Error(fmt.Sprintf("must contain between 1 and %d slides", domain.MaxCarouselSlides)),
	))
	for i, s := range slides {
		if err := v.ValidateSlide(s); err != nil {
			for _, e := range err.(FieldErrors) {
				fe = append(fe, FieldError{Field: fmt.Sprintf("slides.%d.%s", i, e.Field), Message: e.Message})
			}
		}
	}
	return fe.orNil()
}
