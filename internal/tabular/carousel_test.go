package tabular

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func carouselCSV(images ...string) []byte {
	var b strings.Builder
	b.WriteString("Image URL,Title,Description\n")
	for i, img := range images {
		fmt.Fprintf(&b, "%s,Slide %d,Description %d\n", img, i+1, i+1)
	}
	return []byte(b.String())
}

func TestParseCarousel(t *testing.T) {
	t.Run("eight distinct slides are rejected", func(t *testing.T) {
		var images []string
		for i := 1; i <= 8; i++ {
			images = append(images, fmt.Sprintf("https://cdn.example.com/slide%d.jpg", i))
		}

		rows, err := ParseCarousel(carouselCSV(images...), KindCSV)
		assert.Nil(t, rows)

		var fe *FileError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "Too many slides. Maximum allowed is 7.", fe.Message)
	})

	t.Run("duplicate image is dropped before the limit", func(t *testing.T) {
		var images []string
		for i := 1; i <= 7; i++ {
			images = append(images, fmt.Sprintf("https://cdn.example.com/slide%d.jpg", i))
		}
		images = append(images, images[2])

		rows, err := ParseCarousel(carouselCSV(images...), KindCSV)
		require.NoError(t, err)
		require.Len(t, rows, 7)
		assert.Equal(t, "Slide 3", rows[2].Title)
		assert.Equal(t, 4, rows[2].Line)
	})

	t.Run("dedup is case sensitive", func(t *testing.T) {
		rows, err := ParseCarousel(carouselCSV("https://x.com/A.jpg", "https://x.com/a.jpg"), KindCSV)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("no data rows", func(t *testing.T) {
		_, err := ParseCarousel([]byte("url,title,description\n,,\n"), KindCSV)

		var fe *FileError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "No data rows found under headers.", fe.Message)
	})

	t.Run("missing headers", func(t *testing.T) {
		_, err := ParseCarousel([]byte("link,title,description\nhttps://x.com/a.jpg,t,d\n"), KindCSV)

		var fe *FileError
		require.ErrorAs(t, err, &fe)
		assert.Contains(t, fe.Message, "Missing required headers")
	})

	t.Run("reads hyperlinks from a workbook", func(t *testing.T) {
		data := buildWorkbook(t, func(f *excelize.File, sheet string) {
			setRow(t, f, sheet, 1, "url", "title", "description")
			setRow(t, f, sheet, 2, "Banner", "Summer", "Summer sale")
			require.NoError(t, f.SetCellHyperLink(sheet, "A2", "https://cdn.example.com/summer.png", "External"))
		})

		rows, err := ParseCarousel(data, KindSpreadsheet)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "https://cdn.example.com/summer.png", rows[0].Image)
	})

	t.Run("empty workbook", func(t *testing.T) {
		data := buildWorkbook(t, func(f *excelize.File, sheet string) {})

		_, err := ParseCarousel(data, KindSpreadsheet)

		var fe *FileError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "The workbook is empty.", fe.Message)
	})
}
