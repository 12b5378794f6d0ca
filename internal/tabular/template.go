package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/dev-modakk/modakk-backend/internal/domain"
)

// Column describes one column of the product import layout.
type Column struct {
	Field string
	Width float64
	Note  string
}

// ProductColumns is the canonical import and export column order.
var ProductColumns = []Column{
	{FieldName, 30, "Required: Product name (max 200 characters)"},
	{FieldDescription, 50, "Required: Product description"},
	{FieldPrice, 12, "Required: Price in INR (positive number)"},
	{FieldImage, 40, "Required: Main image URL"},
	{FieldBadge, 15, `Optional: Badge text (e.g., "Best Seller")`},
	{FieldRating, 10, "Required: Rating between 0 and 5"},
	{FieldReviews, 12, "Optional: Number of reviews (default: 0)"},
	{FieldIsWishlisted, 12, ""},
	{FieldIsSoldOut, 12, ""},
	{FieldCategory, 10, "Optional: GB=Gift Box, TY=Toy, BK=Book, GM=Game, CL=Clothing, AC=Accessory (default: GB)"},
	{FieldImages, 60, "Optional: Comma-separated URLs for gallery images (max 12)"},
}

// TemplateSheet is the worksheet name of the XLSX template.
const TemplateSheet = "Gift Boxes"

// TemplateFileName returns the download name for a template format.
func TemplateFileName(format string) string {
	return "kidsgiftboxes_import_template." + format
}

// validationRows bounds the data validations applied below the header.
const validationRows = 1000

var sampleProducts = []domain.GiftBoxInput{
	{
		Name:        "Unicorn Dreams Gift Box",
		Description: "A magical collection of unicorn-themed toys and accessories",
		Price:       599.99,
		Image:       "https://example.com/unicorn-box.jpg",
		Badge:       strPtr("Best Seller"),
		Rating:      4.5,
		Reviews:     125,
		Category:    domain.CategoryGiftBox,
		Images:      []string{"https://example.com/img1.jpg", "https://example.com/img2.jpg"},
	},
	{
		Name:         "Dinosaur Adventure Set",
		Description:  "Exciting dinosaur toys for prehistoric fun",
		Price:        449.99,
		Image:        "https://example.com/dino-set.jpg",
		Badge:        strPtr("New Arrival"),
		Rating:       4.8,
		Reviews:      89,
		IsWishlisted: true,
		Category:     domain.CategoryToy,
		Images:       []string{"https://example.com/dino1.jpg", "https://example.com/dino2.jpg", "https://example.com/dino3.jpg"},
	},
}

func strPtr(s string) *string { return &s }

// Header returns the canonical header row.
func Header() []string {
	out := make([]string, len(ProductColumns))
	for i, c := range ProductColumns {
		out[i] = c.Field
	}
	return out
}

// FormatRecord renders a product in ProductColumns order. The result parses
// back to the same product.
func FormatRecord(p domain.GiftBoxInput) []string {
	badge := ""
	if p.Badge != nil {
		badge = *p.Badge
	}
	category := p.Category
	if category == "" {
		category = domain.DefaultCategory
	}
	return []string{
		p.Name,
		p.Description,
		strconv.FormatFloat(p.Price, 'f', -1, 64),
		p.Image,
		badge,
		strconv.FormatFloat(p.Rating, 'f', -1, 64),
		strconv.Itoa(p.Reviews),
		strconv.FormatBool(p.IsWishlisted),
		strconv.FormatBool(p.IsSoldOut),
		string(category),
		strings.Join(p.Images, ","),
	}
}

// ProductCSVWriter streams products as CSV in ProductColumns order.
type ProductCSVWriter struct {
	w      *csv.Writer
	header bool
}

// NewProductCSVWriter returns a writer that emits the header before the first record.
func NewProductCSVWriter(w io.Writer) *ProductCSVWriter {
	return &ProductCSVWriter{w: csv.NewWriter(w)}
}

// WriteHeader writes the header row once.
func (pw *ProductCSVWriter) WriteHeader() error {
	if pw.header {
		return nil
	}
	pw.header = true
	if err := pw.w.Write(Header()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return nil
}

// Write writes one product.
func (pw *ProductCSVWriter) Write(p domain.GiftBoxInput) error {
	if err := pw.WriteHeader(); err != nil {
		return err
	}
	if err := pw.w.Write(FormatRecord(p)); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	return nil
}

// Flush flushes buffered rows and reports any write error.
func (pw *ProductCSVWriter) Flush() error {
	pw.w.Flush()
	return pw.w.Error()
}

// WriteTemplateCSV writes the header and the sample rows as CSV.
func WriteTemplateCSV(w io.Writer) error {
	pw := NewProductCSVWriter(w)
	for _, p := range sampleProducts {
		if err := pw.Write(p); err != nil {
			return err
		}
	}
	return pw.Flush()
}

// WriteTemplateXLSX writes a styled workbook with guidance comments, list
// validations and a frozen header row.
func WriteTemplateXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), TemplateSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(ProductColumns))
	for i, col := range ProductColumns {
		header[i] = col.Field
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(TemplateSheet, name, name, col.Width); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
		if col.Note != "" {
			if err := f.AddComment(TemplateSheet, excelize.Comment{
				Cell:   name + "1",
				Author: "modakk",
				Text:   col.Note,
			}); err != nil {
				return fmt.Errorf("add comment: %w", err)
			}
		}
	}
	if err := f.SetSheetRow(TemplateSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E0E0E0"}},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	last, _ := excelize.ColumnNumberToName(len(ProductColumns))
	if err := f.SetCellStyle(TemplateSheet, "A1", last+"1", style); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}

	for i, p := range sampleProducts {
		badge := ""
		if p.Badge != nil {
			badge = *p.Badge
		}
		row := []any{
			p.Name, p.Description, p.Price, p.Image, badge, p.Rating, p.Reviews,
			p.IsWishlisted, p.IsSoldOut, string(p.Category), strings.Join(p.Images, ","),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(TemplateSheet, cell, &row); err != nil {
			return fmt.Errorf("write sample row: %w", err)
		}
	}

	categories := make([]string, len(domain.ValidCategories))
	for i, c := range domain.ValidCategories {
		categories[i] = string(c)
	}
	validations := []struct {
		field, title, msg string
		list              []string
	}{
		{FieldCategory, "Invalid Category", "Please select a valid category from the list", categories},
		{FieldIsWishlisted, "Invalid Value", "Please enter true or false", []string{"true", "false"}},
		{FieldIsSoldOut, "Invalid Value", "Please enter true or false", []string{"true", "false"}},
	}
	for _, v := range validations {
		col := columnLetter(v.field)
		dv := excelize.NewDataValidation(true)
		dv.Sqref = fmt.Sprintf("%s2:%s%d", col, col, validationRows)
		if err := dv.SetDropList(v.list); err != nil {
			return fmt.Errorf("drop list: %w", err)
		}
		dv.SetError(excelize.DataValidationErrorStyleStop, v.title, v.msg)
		if err := f.AddDataValidation(TemplateSheet, dv); err != nil {
			return fmt.Errorf("add validation: %w", err)
		}
	}

	if err := f.SetPanes(TemplateSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func columnLetter(field string) string {
	for i, c := range ProductColumns {
		if c.Field == field {
			name, _ := excelize.ColumnNumberToName(i + 1)
			return name
		}
	}
	return ""
}
