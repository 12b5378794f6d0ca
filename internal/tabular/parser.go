package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// FileKind is the container format of an upload.
type FileKind int

const (
	KindUnknown FileKind = iota
	KindCSV
	KindSpreadsheet
)

func (k FileKind) String() string {
	switch k {
	case KindCSV:
		return "csv"
	case KindSpreadsheet:
		return "xlsx"
	}
	return "unknown"
}

var (
	// ErrUnsupportedFileType is wrapped by the FileError returned for unknown extensions.
	ErrUnsupportedFileType = errors.New("unsupported file type")
	// ErrNoWorksheet is wrapped when a workbook has no sheets.
	ErrNoWorksheet = errors.New("no worksheet")
)

// FileError rejects a whole upload before any row is processed.
type FileError struct {
	Message string
	Err     error
}

func (e *FileError) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *FileError) Unwrap() error { return e.Err }

// Messages shared with callers that build their own FileError.
const (
	MsgUnsupportedFileType = "Unsupported file type"
	MsgEmptyFile           = "File is empty or has no valid data"
)

// DetectFileKind maps a file name extension onto a FileKind.
func DetectFileKind(fileName string) (FileKind, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return KindCSV, nil
	case ".xlsx", ".xls":
		return KindSpreadsheet, nil
	}
	return KindUnknown, &FileError{Message: MsgUnsupportedFileType, Err: ErrUnsupportedFileType}
}

// Parse reads a product upload. The header row must resolve every field in
// RequiredProductFields; all-blank rows are dropped.
func Parse(data []byte, kind FileKind) ([]RawRow, error) {
	g, err := readGrid(data, kind)
	if err != nil {
		return nil, err
	}
	if len(g.header) == 0 {
		return nil, &FileError{Message: MsgEmptyFile}
	}

	hm := ResolveHeaders(g.header)
	if missing := hm.Missing(RequiredProductFields...); len(missing) > 0 {
		return nil, &FileError{Message: "Missing required headers: " + strings.Join(missing, ", ")}
	}

	rows := make([]RawRow, 0, len(g.rows))
	for _, line := range g.rows {
		row := RawRow{Line: line.number, Fields: make(map[string]Value, hm.Len())}
		for col := 0; col < hm.Len(); col++ {
			field := hm.Key(col)
			if field == "" {
				continue
			}
			if col < len(line.values) {
				row.Fields[field] = line.values[col]
			} else {
				row.Fields[field] = NullValue()
			}
		}
		if row.IsBlank() {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

type gridLine struct {
	number int
	values []Value
}

type grid struct {
	header []string
	rows   []gridLine
}

func readGrid(data []byte, kind FileKind) (grid, error) {
	switch kind {
	case KindCSV:
		return readCSV(data)
	case KindSpreadsheet:
		return readWorkbook(data)
	}
	return grid{}, &FileError{Message: MsgUnsupportedFileType, Err: ErrUnsupportedFileType}
}

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

func readCSV(data []byte) (grid, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	var g grid
	for n := 1; ; n++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return grid{}, &FileError{Message: "Failed to parse CSV file.", Err: err}
		}
		if n == 1 {
			g.header = make([]string, len(record))
			for i, h := range record {
				g.header[i] = clean(h)
			}
			continue
		}
		values := make([]Value, len(record))
		for i, field := range record {
			values[i] = textValue(Normalize(ScalarCell(field)))
		}
		g.rows = append(g.rows, gridLine{number: n, values: values})
	}
	return g, nil
}

func readWorkbook(data []byte) (grid, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return grid{}, &FileError{Message: "Failed to parse Excel file.", Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return grid{}, &FileError{Message: "No worksheet found in Excel file", Err: ErrNoWorksheet}
	}
	sheet := sheets[0]

	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return grid{}, &FileError{Message: "Failed to parse Excel file.", Err: err}
	}
	if len(raw) == 0 {
		return grid{}, nil
	}

	var g grid
	g.header = make([]string, len(raw[0]))
	for i, h := range raw[0] {
		g.header[i] = clean(h)
	}

	dates := dateStyles{f: f, cache: map[int]bool{}}
	for r := 1; r < len(raw); r++ {
		values := make([]Value, len(raw[r]))
		for c, rawValue := range raw[r] {
			axis, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return grid{}, fmt.Errorf("cell name: %w", err)
			}
			values[c] = workbookValue(f, sheet, axis, rawValue, dates)
		}
		g.rows = append(g.rows, gridLine{number: r + 1, values: values})
	}
	return g, nil
}

// readCell builds the RawCell for one worksheet cell from its raw value.
func readCell(f *excelize.File, sheet, axis, raw string, dates dateStyles) RawCell {
	if ok, target, err := f.GetCellHyperLink(sheet, axis); err == nil && ok {
		return HyperlinkCell(raw, target)
	}
	if formula, err := f.GetCellFormula(sheet, axis); err == nil && formula != "" {
		return FormulaCell(formula, raw)
	}
	if strings.TrimSpace(raw) == "" {
		return EmptyCell()
	}

	typ, err := f.GetCellType(sheet, axis)
	if err != nil {
		return ScalarCell(raw)
	}
	switch typ {
	case excelize.CellTypeBool:
		return ScalarCell(raw == "1" || strings.EqualFold(raw, "true"))
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeError:
		return ScalarCell(raw)
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return ScalarCell(raw)
	}
	if typ == excelize.CellTypeDate || dates.isDate(sheet, axis) {
		if t, err := excelize.ExcelDateToTime(n, false); err == nil {
			return DateCell(t)
		}
	}
	return ScalarCell(n)
}

func workbookValue(f *excelize.File, sheet, axis, raw string, dates dateStyles) Value {
	cell := readCell(f, sheet, axis, raw, dates)
	s := Normalize(cell)
	switch cell.Kind {
	case CellEmpty:
		return NullValue()
	case CellHyperlink:
		if s == "" {
			return NullValue()
		}
		return LinkValue(s)
	case CellScalar:
		switch v := cell.Scalar.(type) {
		case float64:
			return NumberValue(v)
		case bool:
			return BoolValue(v)
		}
	}
	return textValue(s)
}

func textValue(s string) Value {
	if s == "" {
		return NullValue()
	}
	return StringValue(s)
}

// dateStyles caches whether a style index carries a date number format.
type dateStyles struct {
	f     *excelize.File
	cache map[int]bool
}

func (d dateStyles) isDate(sheet, axis string) bool {
	idx, err := d.f.GetCellStyle(sheet, axis)
	if err != nil || idx == 0 {
		return false
	}
	if v, ok := d.cache[idx]; ok {
		return v
	}
	v := false
	if style, err := d.f.GetStyle(idx); err == nil && style != nil {
		v = isDateNumFmt(style.NumFmt, style.CustomNumFmt)
	}
	d.cache[idx] = v
	return v
}

func isDateNumFmt(id int, custom *string) bool {
	if custom != nil && *custom != "" {
		format := strings.ToLower(*custom)
		// Drop quoted literals and bracketed colors before looking for date tokens.
		var b strings.Builder
		quoted, bracket := false, false
		for _, r := range format {
			switch {
			case r == '"':
				quoted = !quoted
			case r == '[' && !quoted:
				bracket = true
			case r == ']' && !quoted:
				bracket = false
			case !quoted && !bracket:
				b.WriteRune(r)
			}
		}
		return strings.ContainsAny(b.String(), "ydh") || strings.Contains(b.String(), "mm")
	}
	switch {
	case id >= 14 && id <= 22, id >= 45 && id <= 47:
		return true
	}
	return false
}
