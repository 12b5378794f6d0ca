package validator

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/dev-modakk/modakk-backend/internal/domain"
	"github.com/dev-modakk/modakk-backend/internal/tabular"
)

var (
	gallerySeparators = regexp.MustCompile(`[,;|]`)
	decimalNumber     = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
)

// ValidateProductRow coerces a parsed import row into a gift box payload.
// Every failing field is reported; the payload is only meaningful when the
// returned FieldErrors is empty.
func ValidateProductRow(row tabular.RawRow) (domain.GiftBoxInput, FieldErrors) {
	var (
		in domain.GiftBoxInput
		fe FieldErrors
	)

	in.Name = text(row, tabular.FieldName)
	fe.add("name", validation.Validate(in.Name, nameRules()...))

	in.Description = text(row, tabular.FieldDescription)
	fe.add("description", validation.Validate(in.Description, descriptionRules()...))

	if n, ok := number(row, tabular.FieldPrice); ok {
		in.Price = n
		fe.add("price", validation.Validate(n, priceRules()...))
	} else {
		fe = append(fe, FieldError{Field: "price", Message: msgPrice})
	}

	in.Image = text(row, tabular.FieldImage)
	fe.add("image", validation.Validate(in.Image, imageRules()...))

	if badge := text(row, tabular.FieldBadge); badge != "" {
		in.Badge = &badge
		fe.add("badge", validation.Validate(badge, badgeRules()...))
	}

	if n, ok := number(row, tabular.FieldRating); ok {
		in.Rating = n
		fe.add("rating", validation.Validate(n, ratingRules()...))
	} else {
		fe = append(fe, FieldError{Field: "rating", Message: msgRating})
	}

	if v, ok := row.Get(tabular.FieldReviews); ok && !v.IsBlank() {
		n, ok := number(row, tabular.FieldReviews)
		if !ok || n != math.Trunc(n) || n > math.MaxInt32 {
			fe = append(fe, FieldError{Field: "reviews", Message: msgReviews})
		} else {
			in.Reviews = int(n)
			fe.add("reviews", validation.Validate(in.Reviews, reviewsRules()...))
		}
	}

	in.IsWishlisted = boolean(row, tabular.FieldIsWishlisted)
	in.IsSoldOut = boolean(row, tabular.FieldIsSoldOut)

	in.Category = domain.DefaultCategory
	if c := text(row, tabular.FieldCategory); c != "" {
		in.Category = domain.Category(c)
		fe.add("category", validation.Validate(in.Category, categoryRules()...))
	}

	in.Images = SplitGallery(text(row, tabular.FieldImages))
	fe.add("images", validation.Validate(in.Images, galleryRules()...))

	return in, fe
}

// RowFromInput renders a payload back into the raw row shape the parser
// produces, so that ValidateProductRow(RowFromInput(in)) yields in.
func RowFromInput(in domain.GiftBoxInput) tabular.RawRow {
	fields := map[string]tabular.Value{
		tabular.FieldName:         tabular.StringValue(in.Name),
		tabular.FieldDescription:  tabular.StringValue(in.Description),
		tabular.FieldPrice:        tabular.NumberValue(in.Price),
		tabular.FieldImage:        tabular.StringValue(in.Image),
		tabular.FieldRating:       tabular.NumberValue(in.Rating),
		tabular.FieldReviews:      tabular.NumberValue(float64(in.Reviews)),
		tabular.FieldIsWishlisted: tabular.BoolValue(in.IsWishlisted),
		tabular.FieldIsSoldOut:    tabular.BoolValue(in.IsSoldOut),
		tabular.FieldCategory:     tabular.StringValue(string(in.Category)),
		tabular.FieldImages:       tabular.StringValue(strings.Join(in.Images, ",")),
	}
	if in.Badge != nil {
		fields[tabular.FieldBadge] = tabular.StringValue(*in.Badge)
	}
	return tabular.RawRow{Fields: fields}
}

// SplitGallery splits a gallery cell on commas, semicolons and pipes.
func SplitGallery(s string) []string {
	out := []string{}
	for _, part := range gallerySeparators.Split(s, -1) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func text(row tabular.RawRow, field string) string {
	v, ok := row.Get(field)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v.Text())
}

// number accepts a native number or a numeric string. Blank strings count
// as zero.
func number(row tabular.RawRow, field string) (float64, bool) {
	v, ok := row.Get(field)
	if !ok {
		return 0, false
	}
	switch v.Kind {
	case tabular.KindNumber:
		return v.Num, !math.IsNaN(v.Num) && !math.IsInf(v.Num, 0)
	case tabular.KindString:
		s := strings.TrimSpace(v.Str)
		if s == "" {
			return 0, true
		}
		if !decimalNumber.MatchString(s) {
			return 0, false
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

func boolean(row tabular.RawRow, field string) bool {
	v, ok := row.Get(field)
	if !ok {
		return false
	}
	switch v.Kind {
	case tabular.KindBool:
		return v.Bool
	case tabular.KindNumber:
		return v.Num == 1
	case tabular.KindString:
		s := strings.ToLower(strings.TrimSpace(v.Str))
		return s == "true" || s == "1"
	}
	return false
}
