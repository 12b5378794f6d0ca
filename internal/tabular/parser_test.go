package tabular

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestDetectFileKind(t *testing.T) {
	tests := []struct {
		name    string
		want    FileKind
		wantErr bool
	}{
		{"products.csv", KindCSV, false},
		{"PRODUCTS.CSV", KindCSV, false},
		{"products.xlsx", KindSpreadsheet, false},
		{"legacy.xls", KindSpreadsheet, false},
		{"products.json", KindUnknown, true},
		{"noextension", KindUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFileKind(tt.name)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				var fe *FileError
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, MsgUnsupportedFileType, fe.Message)
				assert.ErrorIs(t, err, ErrUnsupportedFileType)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParse_CSV(t *testing.T) {
	t.Run("single row", func(t *testing.T) {
		data := "name,description,price,image,rating\nUnicorn Box,Fun toys,599.99,https://x.com/a.jpg,4.5\n"

		rows, err := Parse([]byte(data), KindCSV)
		require.NoError(t, err)
		require.Len(t, rows, 1)

		assert.Equal(t, 2, rows[0].Line)
		assert.Equal(t, StringValue("Unicorn Box"), rows[0].Fields[FieldName])
		assert.Equal(t, "599.99", rows[0].Fields[FieldPrice].Text())
	})

	t.Run("strips bom and resolves synonyms", func(t *testing.T) {
		data := "\xef\xbb\xbfProduct Name , Details,Cost,Image URL,Stars,Supplier\nBox,Nice,10,https://x.com/b.png,3,Acme\n"

		rows, err := Parse([]byte(data), KindCSV)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Box", rows[0].Fields[FieldName].Text())
		assert.Equal(t, "Acme", rows[0].Fields["supplier"].Text())
	})

	t.Run("drops blank rows and keeps line numbers", func(t *testing.T) {
		data := "name,description,price,image,rating\n" +
			"A,a,1,https://x.com/a.jpg,1\n" +
			" , ,,, \n" +
			"B,b,2,https://x.com/b.jpg,2\n"

		rows, err := Parse([]byte(data), KindCSV)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, 2, rows[0].Line)
		assert.Equal(t, 4, rows[1].Line)
	})

	t.Run("short rows fill with null", func(t *testing.T) {
		data := "name,description,price,image,rating,badge\nA,a,1\n"

		rows, err := Parse([]byte(data), KindCSV)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.True(t, rows[0].Fields[FieldBadge].IsBlank())
		assert.Equal(t, KindNull, rows[0].Fields[FieldRating].Kind)
	})

	t.Run("quoted values with commas", func(t *testing.T) {
		data := "name,description,price,image,rating,images\n" +
			"A,\"soft, cuddly\",1,https://x.com/a.jpg,1,\"https://x.com/1.jpg,https://x.com/2.jpg\"\n"

		rows, err := Parse([]byte(data), KindCSV)
		require.NoError(t, err)
		assert.Equal(t, "soft, cuddly", rows[0].Fields[FieldDescription].Text())
		assert.Equal(t, "https://x.com/1.jpg,https://x.com/2.jpg", rows[0].Fields[FieldImages].Text())
	})

	t.Run("missing description header", func(t *testing.T) {
		data := "name,price,image,rating\nA,1,https://x.com/a.jpg,1\n"

		rows, err := Parse([]byte(data), KindCSV)
		assert.Nil(t, rows)

		var fe *FileError
		require.ErrorAs(t, err, &fe)
		assert.Contains(t, fe.Message, "description")
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := Parse(nil, KindCSV)

		var fe *FileError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, MsgEmptyFile, fe.Message)
	})

	t.Run("header only", func(t *testing.T) {
		rows, err := Parse([]byte("name,description,price,image,rating\n"), KindCSV)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func buildWorkbook(t *testing.T, fill func(f *excelize.File, sheet string)) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	fill(f, sheet)

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func setRow(t *testing.T, f *excelize.File, sheet string, row int, values ...any) {
	t.Helper()
	cell, err := excelize.CoordinatesToCellName(1, row)
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow(sheet, cell, &values))
}

func TestParse_Spreadsheet(t *testing.T) {
	t.Run("reads cell shapes", func(t *testing.T) {
		launched := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		data := buildWorkbook(t, func(f *excelize.File, sheet string) {
			setRow(t, f, sheet, 1, "Name", "Description", "Price", "Image", "Rating", "Sold Out", "Launched")
			setRow(t, f, sheet, 2, "  Unicorn Box ", "Fun toys", 599.99, "Main image", 4.5, true, launched)
			require.NoError(t, f.SetCellHyperLink(sheet, "D2", "https://x.com/a.jpg", "External"))
		})

		rows, err := Parse(data, KindSpreadsheet)
		require.NoError(t, err)
		require.Len(t, rows, 1)

		row := rows[0]
		assert.Equal(t, 2, row.Line)
		assert.Equal(t, StringValue("Unicorn Box"), row.Fields[FieldName])
		assert.Equal(t, NumberValue(599.99), row.Fields[FieldPrice])
		assert.Equal(t, LinkValue("https://x.com/a.jpg"), row.Fields[FieldImage])
		assert.Equal(t, NumberValue(4.5), row.Fields[FieldRating])
		assert.Equal(t, BoolValue(true), row.Fields[FieldIsSoldOut])
		assert.True(t, strings.HasPrefix(row.Fields["launched"].Text(), "2024-03-01"))
	})

	t.Run("uses first worksheet only", func(t *testing.T) {
		data := buildWorkbook(t, func(f *excelize.File, sheet string) {
			setRow(t, f, sheet, 1, "name", "description", "price", "image", "rating")
			setRow(t, f, sheet, 2, "A", "a", 1, "https://x.com/a.jpg", 1)
			_, err := f.NewSheet("Other")
			require.NoError(t, err)
			setRow(t, f, "Other", 1, "name", "description", "price", "image", "rating")
			setRow(t, f, "Other", 2, "B", "b", 2, "https://x.com/b.jpg", 2)
		})

		rows, err := Parse(data, KindSpreadsheet)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "A", rows[0].Fields[FieldName].Text())
	})

	t.Run("skips blank rows", func(t *testing.T) {
		data := buildWorkbook(t, func(f *excelize.File, sheet string) {
			setRow(t, f, sheet, 1, "name", "description", "price", "image", "rating")
			setRow(t, f, sheet, 2, "A", "a", 1, "https://x.com/a.jpg", 1)
			setRow(t, f, sheet, 4, "B", "b", 2, "https://x.com/b.jpg", 2)
			setRow(t, f, sheet, 5, " ", "")
		})

		rows, err := Parse(data, KindSpreadsheet)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, 4, rows[1].Line)
	})

	t.Run("missing description header", func(t *testing.T) {
		data := buildWorkbook(t, func(f *excelize.File, sheet string) {
			setRow(t, f, sheet, 1, "name", "price", "image", "rating")
			setRow(t, f, sheet, 2, "A", 1, "https://x.com/a.jpg", 1)
		})

		_, err := Parse(data, KindSpreadsheet)

		var fe *FileError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "Missing required headers: description", fe.Message)
	})

	t.Run("unreadable workbook", func(t *testing.T) {
		_, err := Parse([]byte("definitely not a zip archive"), KindSpreadsheet)

		var fe *FileError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "Failed to parse Excel file.", fe.Message)
	})
}

func TestIsDateNumFmt(t *testing.T) {
	custom := func(s string) *string { return &s }

	tests := []struct {
		id     int
		custom *string
		want   bool
	}{
		{14, nil, true},
		{22, nil, true},
		{2, nil, false},
		{0, custom("yyyy-mm-dd"), true},
		{0, custom(`"Qty "0`), false},
		{0, custom("[Red]0.00"), false},
		{0, custom("hh:mm"), true},
	}

	for _, tt := range tests {
		name := fmt.Sprint(tt.id)
		if tt.custom != nil {
			name = *tt.custom
		}
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, isDateNumFmt(tt.id, tt.custom))
		})
	}
}
