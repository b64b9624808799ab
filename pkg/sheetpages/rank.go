package sheetpages

import (
	"slices"

	"github.com/ukaji3/sheetpages-go/pkg/sheetpages/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Rank sorts records by column C, then column B, using the collation rules of
// locale, and numbers them 1..N in the resulting order.
// The sort is stable: records equal on both keys keep their input order.
// An unparseable locale falls back to DefaultLocale.
func Rank(records []models.Record, locale string) []models.RankedRecord {
	sorted := slices.Clone(records)

	// Collators hold scratch buffers and must not be shared.
	col := collate.New(parseLocale(locale))
	slices.SortStableFunc(sorted, func(a, b models.Record) int {
		if c := col.CompareString(a.ColumnC, b.ColumnC); c != 0 {
			return c
		}
		return col.CompareString(a.ColumnB, b.ColumnB)
	})

	ranked := make([]models.RankedRecord, len(sorted))
	for i, rec := range sorted {
		ranked[i] = models.RankedRecord{Record: rec, Seq: i + 1}
	}
	return ranked
}

func parseLocale(locale string) language.Tag {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.MustParse(DefaultLocale)
	}
	return tag
}
