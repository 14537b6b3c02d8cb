package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteText renders rep as ranked plain-text tables. Numbers are formatted
// for lang, e.g. language.German prints 1.250,00.
func WriteText(w io.Writer, rep Report, lang language.Tag) error {
	p := message.NewPrinter(lang)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	p.Fprintf(tw, "Inventory report: %s\n", rep.Source)
	p.Fprintf(tw, "Rows: %d\tColumns: %s\n", rep.RowCount, strings.Join(rep.Columns, ", "))
	fmt.Fprintf(tw, "Generated: %s\n", rep.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	for _, s := range rep.Sections {
		fmt.Fprintf(tw, "\n== %s ==\n", s.Title)
		switch s.Status {
		case StatusUnavailable, StatusNoData:
			fmt.Fprintf(tw, "! %s\n", s.Warning)
			continue
		}

		fmt.Fprintf(tw, "#\t%s\t%s\n", s.KeyLabel, s.Unit)
		for i, row := range s.Rows {
			p.Fprintf(tw, "%d\t%s\t%.2f\n", i+1, row.Key, row.Total)
		}
		if skipped := s.Missing + s.Invalid; skipped > 0 {
			p.Fprintf(tw, "(%d rows skipped: %d missing, %d not numeric)\n", skipped, s.Missing, s.Invalid)
		}
	}

	return tw.Flush()
}

// ParseLanguage resolves a BCP 47 tag, falling back to English.
func ParseLanguage(tag string) language.Tag {
	if tag == "" {
		return language.English
	}
	t, err := language.Parse(tag)
	if err != nil {
		return language.English
	}
	return t
}
