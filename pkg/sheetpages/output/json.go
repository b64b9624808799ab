// Package output serializes page documents for presentation.
package output

import (
	"encoding/json"

	"github.com/ukaji3/sheetpages-go/pkg/sheetpages/models"
)

// ToJSON serializes a document. Blank slots are encoded as null.
func ToJSON(doc *models.Document, pretty bool) ([]byte, error) {
	return marshal(doc, pretty)
}

// PageToJSON serializes a single page.
func PageToJSON(page *models.Page, pretty bool) ([]byte, error) {
	return marshal(page, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
