// Package page maps a document's page identifier to the chart it hosts.
package page

import (
	"errors"
	"fmt"
)

// Attribute is the root element attribute carrying the page identifier.
const Attribute = "data-page"

// DefaultID is assumed when the document does not name a page.
const DefaultID = "home"

// ErrUnknownPage is returned by Parse for identifiers outside the known set.
var ErrUnknownPage = errors.New("page: unknown page")

// Kind enumerates the dashboard pages that carry a chart.
type Kind int

const (
	// Unknown is the zero Kind. It never has an initializer.
	Unknown Kind = iota
	Home
	Cards
	Archetypes
)

var kindIDs = map[Kind]string{
	Home:       "home",
	Cards:      "cards",
	Archetypes: "archetypes",
}

// Kinds lists the dispatchable pages in display order.
func Kinds() []Kind {
	return []Kind{Home, Cards, Archetypes}
}

// String returns the page identifier.
func (k Kind) String() string {
	if id, ok := kindIDs[k]; ok {
		return id
	}
	return "unknown"
}

// Parse matches id exactly against the known identifiers. An empty id is
// DefaultID. No trimming or case folding is applied.
func Parse(id string) (Kind, error) {
	if id == "" {
		id = DefaultID
	}
	for kind, known := range kindIDs {
		if id == known {
			return kind, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownPage, id)
}
