// Package sheetpages turns a spreadsheet into sorted, numbered, printable pages.
package sheetpages

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	// DefaultPageSize is the number of records printed on one page.
	DefaultPageSize = 100
	// DefaultColumnSize is the number of rows in each of the two page columns.
	DefaultColumnSize = 50
	// DefaultLocale is the BCP 47 tag used for collation.
	DefaultLocale = "en"
	// MaxColumnSize bounds the column length; every page allocates two
	// columns of this many slots.
	MaxColumnSize = 10000
)

// Options configures the pipeline.
type Options struct {
	// Sheet names the sheet to read. Empty selects the first sheet.
	Sheet string `validate:"max=31"`
	// PageSize is the maximum number of records per page.
	PageSize int `validate:"gt=0,lte=20000"`
	// ColumnSize is the number of slots in each page column.
	ColumnSize int `validate:"gt=0,lte=10000"`
	// Locale is the BCP 47 language tag used to compare text.
	Locale string `validate:"bcp47_language_tag"`
	// Logger receives stage diagnostics. Nil disables logging.
	Logger *zap.Logger `validate:"-"`
}

// DefaultOptions returns the fixed print layout: 100 records per page in two
// columns of 50.
func DefaultOptions() Options {
	return Options{
		PageSize:   DefaultPageSize,
		ColumnSize: DefaultColumnSize,
		Locale:     DefaultLocale,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks option ranges after defaults are applied.
func (o Options) Validate() error {
	o = o.withDefaults()
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	if o.PageSize > 2*o.ColumnSize {
		return fmt.Errorf("%w: page size %d does not fit two columns of %d",
			ErrInvalidOptions, o.PageSize, o.ColumnSize)
	}
	return nil
}

// withDefaults fills zero-valued fields from DefaultOptions.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.PageSize == 0 {
		o.PageSize = def.PageSize
	}
	if o.ColumnSize == 0 {
		o.ColumnSize = def.ColumnSize
	}
	if o.Locale == "" {
		o.Locale = def.Locale
	}
	return o
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
