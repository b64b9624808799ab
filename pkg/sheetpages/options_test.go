package sheetpages

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"defaults", DefaultOptions(), false},
		{"zero value", Options{}, false},
		{"custom layout", Options{PageSize: 40, ColumnSize: 20, Locale: "de-CH"}, false},
		{"page smaller than column", Options{PageSize: 10, ColumnSize: 50}, false},
		{"page exceeds two columns", Options{PageSize: 120, ColumnSize: 50}, true},
		{"negative column", Options{ColumnSize: -5}, true},
		{"largest layout", Options{PageSize: 20000, ColumnSize: MaxColumnSize}, false},
		{"huge column", Options{PageSize: 100, ColumnSize: 1000000000}, true},
		{"huge page", Options{PageSize: 1000000000, ColumnSize: MaxColumnSize}, true},
		{"bad locale", Options{Locale: "??"}, true},
		{"long sheet name", Options{Sheet: strings.Repeat("s", 32)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidOptions), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDecodeError(t *testing.T) {
	inner := errors.New("zip: not a valid zip file")
	err := NewDecodeError("book.xlsx", inner)

	assert.True(t, errors.Is(err, ErrDecode))
	assert.True(t, errors.Is(err, inner))
	assert.Contains(t, err.Error(), `"book.xlsx"`)
	assert.Equal(t, "spreadsheet decode failed: boom", NewDecodeError("", errors.New("boom")).Error())
}
