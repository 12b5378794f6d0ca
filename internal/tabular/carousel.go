package tabular

import (
	"errors"

	"github.com/dev-modakk/modakk-backend/internal/domain"
)

// CarouselRow is one slide read from a carousel upload.
type CarouselRow struct {
	Line        int
	Image       string
	Title       string
	Description string
}

// ParseCarousel reads a carousel upload. Rows are deduplicated by exact image
// URL, first occurrence wins, and more than domain.MaxCarouselSlides rows
// after deduplication reject the whole file.
func ParseCarousel(data []byte, kind FileKind) ([]CarouselRow, error) {
	g, err := readGrid(data, kind)
	if err != nil {
		if errors.Is(err, ErrNoWorksheet) {
			return nil, &FileError{Message: "The workbook is empty.", Err: err}
		}
		return nil, err
	}
	if len(g.header) == 0 {
		return nil, &FileError{Message: "The workbook is empty."}
	}

	hm, err := ResolveCarouselHeaders(g.header)
	if err != nil {
		return nil, err
	}
	imageCol, _ := hm.Index(FieldImage)
	titleCol, _ := hm.Index(FieldTitle)
	descCol, _ := hm.Index(FieldDescription)

	var rows []CarouselRow
	for _, line := range g.rows {
		row := CarouselRow{
			Line:        line.number,
			Image:       cellText(line.values, imageCol),
			Title:       cellText(line.values, titleCol),
			Description: cellText(line.values, descCol),
		}
		if row.Image == "" && row.Title == "" && row.Description == "" {
			continue
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, &FileError{Message: "No data rows found under headers."}
	}

	seen := make(map[string]struct{}, len(rows))
	deduped := rows[:0]
	for _, row := range rows {
		if _, dup := seen[row.Image]; dup {
			continue
		}
		seen[row.Image] = struct{}{}
		deduped = append(deduped, row)
	}
	if len(deduped) > domain.MaxCarouselSlides {
		return nil, &FileError{Message: "Too many slides. Maximum allowed is 7."}
	}
	return deduped, nil
}

func cellText(values []Value, col int) string {
	if col >= len(values) {
		return ""
	}
	return values[col].Text()
}
