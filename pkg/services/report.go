package services

import (
	"fmt"
	"strings"

	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/data"
)

// ExportFilename is the fixed name of the CSV export file.
const ExportFilename = "estadisticas-experiencias.csv"

// escapeField wraps a free-text value in quotes, doubling any quote inside.
// Structured fields (ids, filenames, numbers) are emitted bare; free text is
// always quoted so commas in titles or comments cannot break a row.
func escapeField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// SummaryCSV renders one row per experience: id, title, type, total
// downloads, total comments. Pure: the same snapshot yields byte-identical
// output.
func SummaryCSV(catalog data.Catalog) string {
	var b strings.Builder
	b.WriteString("id,titulo,tipo,descargas,comentarios\n")
	for _, exp := range catalog.Experiences {
		downloads := 0
		for _, item := range exp.Items {
			downloads += item.Count
		}
		fmt.Fprintf(&b, "%s,%s,%s,%d,%d\n",
			exp.ID, escapeField(exp.Title), exp.Type, downloads, len(exp.Comments))
	}
	return b.String()
}

// DetailedCSV renders two sections: per-item download counters, a blank
// line, then every comment (per-experience lists in catalog order, then the
// guestbook).
func DetailedCSV(catalog data.Catalog) string {
	var b strings.Builder

	b.WriteString("experiencia,archivo,descargas\n")
	for _, exp := range catalog.Experiences {
		for _, item := range exp.Items {
			fmt.Fprintf(&b, "%s,%s,%d\n", escapeField(exp.Title), item.Filename, item.Count)
		}
	}

	b.WriteString("\n")

	b.WriteString("fecha,autor,email,texto\n")
	for _, exp := range catalog.Experiences {
		for _, comment := range exp.Comments {
			writeCommentRow(&b, comment)
		}
	}
	for _, comment := range catalog.Guestbook {
		writeCommentRow(&b, comment)
	}

	return b.String()
}

func writeCommentRow(b *strings.Builder, c data.Comment) {
	fmt.Fprintf(b, "%s,%s,%s,%s\n",
		c.Date, escapeField(c.Author), c.Email, escapeField(c.Text))
}
