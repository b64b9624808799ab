package sheetpages

import (
	"errors"
	"fmt"

	"github.com/ukaji3/sheetpages-go/pkg/sheetpages/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrDecode indicates the input bytes could not be decoded as a spreadsheet.
var ErrDecode = errors.New("spreadsheet decode failed")

// ErrSheetNotFound indicates the requested sheet is absent from the workbook.
var ErrSheetNotFound = parser.ErrSheetNotFound

// ErrInvalidOptions indicates Options failed validation.
var ErrInvalidOptions = errors.New("invalid options")

// DecodeError represents a failure of the spreadsheet decoder.
// errors.Is(err, ErrDecode) holds for every DecodeError.
type DecodeError struct {
	Source string // file name, or empty for anonymous readers
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%v: %v", ErrDecode, e.Err)
	}
	return fmt.Sprintf("%v for %q: %v", ErrDecode, e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is matches ErrDecode.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// NewDecodeError creates a new DecodeError.
func NewDecodeError(source string, err error) *DecodeError {
	return &DecodeError{
		Source: source,
		Err:    err,
	}
}
