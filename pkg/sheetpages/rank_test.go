package sheetpages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetpages-go/pkg/sheetpages/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func TestRank_ColumnCThenColumnB(t *testing.T) {
	records := []models.Record{
		{ColumnB: "b", ColumnC: "z"},
		{ColumnB: "a", ColumnC: "z"},
		{ColumnB: "", ColumnC: "m"},
	}

	got := Rank(records, "en")

	assert.Equal(t, []models.RankedRecord{
		{Record: models.Record{ColumnB: "", ColumnC: "m"}, Seq: 1},
		{Record: models.Record{ColumnB: "a", ColumnC: "z"}, Seq: 2},
		{Record: models.Record{ColumnB: "b", ColumnC: "z"}, Seq: 3},
	}, got)
}

func TestRank_LocaleAware(t *testing.T) {
	records := []models.Record{
		{ColumnC: "fig"},
		{ColumnC: "banana"},
		{ColumnC: "école"},
		{ColumnC: "Apple"},
	}

	got := Rank(records, "en")

	var order []string
	for _, r := range got {
		order = append(order, r.ColumnC)
	}
	// Byte order would put "Apple" first and "école" last.
	assert.Equal(t, []string{"Apple", "banana", "école", "fig"}, order)
}

func TestRank_StableForEqualKeys(t *testing.T) {
	composed := models.Record{ColumnB: "x", ColumnC: "caf\u00e9"}
	decomposed := models.Record{ColumnB: "x", ColumnC: "cafe\u0301"}

	got := Rank([]models.Record{composed, decomposed}, "en")
	require.Len(t, got, 2)
	assert.Equal(t, composed, got[0].Record)
	assert.Equal(t, decomposed, got[1].Record)

	got = Rank([]models.Record{decomposed, composed}, "en")
	require.Len(t, got, 2)
	assert.Equal(t, decomposed, got[0].Record)
	assert.Equal(t, composed, got[1].Record)
}

func TestRank_SequenceAndOrderProperties(t *testing.T) {
	records := []models.Record{
		{ColumnB: "delta", ColumnC: "2"},
		{ColumnB: "alpha", ColumnC: "10"},
		{ColumnB: "", ColumnC: "b"},
		{ColumnB: "Zed", ColumnC: "b"},
		{ColumnB: "zed", ColumnC: "B"},
		{ColumnB: "x", ColumnC: ""},
		{ColumnB: "alpha", ColumnC: "10"},
		{ColumnB: "ñu", ColumnC: "n"},
		{ColumnB: "nu", ColumnC: "n"},
	}

	got := Rank(records, "es")
	require.Len(t, got, len(records))

	col := collate.New(language.Spanish)
	for i, r := range got {
		assert.Equal(t, i+1, r.Seq)
		if i == 0 {
			continue
		}
		p := got[i-1]
		c := col.CompareString(p.ColumnC, r.ColumnC)
		assert.True(t, c < 0 || (c == 0 && col.CompareString(p.ColumnB, r.ColumnB) <= 0),
			"records %d and %d out of order: %+v, %+v", i, i+1, p, r)
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	records := []models.Record{{ColumnC: "b"}, {ColumnC: "a"}}
	_ = Rank(records, "")
	assert.Equal(t, "b", records[0].ColumnC)
}

func TestRank_InvalidLocaleFallsBack(t *testing.T) {
	got := Rank([]models.Record{{ColumnC: "b"}, {ColumnC: "A"}}, "!!")
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].ColumnC)
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil, "en"))
}
