// Package formats resolves the short language tags used on code samples to
// the display labels shown above each sample in a configuration block.
//
// The default table is fixed at compile time. A Table is a value: deriving
// a new table with With never changes the one it was derived from, so a
// Table can be shared freely between goroutines.
package formats

import (
	"sort"

	"github.com/arthur-debert/configblock/pkg/errors"
)

// defaultLabels maps every supported language tag to its label.
var defaultLabels = map[string]string{
	"html":       "HTML",
	"xml":        "XML",
	"php":        "PHP",
	"jinja":      "Twig",
	"html+jinja": "Twig",
	"jinja+html": "Twig",
	"php+html":   "PHP",
	"html+php":   "PHP",
	"ini":        "INI",
}

// Table maps language tags to display labels.
type Table struct {
	labels map[string]string
}

// Default returns the built-in table.
func Default() Table {
	return Table{labels: defaultLabels}
}

// Label returns the display label for tag. Lookup is exact and
// case-sensitive; a tag missing from the table is an ErrUnknownFormat error
// and no placeholder label is ever produced.
func (t Table) Label(tag string) (string, error) {
	label, ok := t.labels[tag]
	if !ok {
		return "", errors.Newf(errors.ErrUnknownFormat, "unknown format %q", tag).
			WithDetail("tag", tag)
	}
	return label, nil
}

// Has reports whether tag is in the table.
func (t Table) Has(tag string) bool {
	_, ok := t.labels[tag]
	return ok
}

// Len returns the number of tags in the table.
func (t Table) Len() int {
	return len(t.labels)
}

// Tags returns every tag in the table, sorted.
func (t Table) Tags() []string {
	tags := make([]string, 0, len(t.labels))
	for tag := range t.labels {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// With returns a copy of t with extra merged in. Entries in extra replace
// entries of the same tag. Empty tags and empty labels are rejected.
func (t Table) With(extra map[string]string) (Table, error) {
	if len(extra) == 0 {
		return t, nil
	}

	merged := make(map[string]string, len(t.labels)+len(extra))
	for tag, label := range t.labels {
		merged[tag] = label
	}
	for tag, label := range extra {
		if tag == "" {
			return Table{}, errors.New(errors.ErrInvalidFormat, "format tag must not be empty")
		}
		if label == "" {
			return Table{}, errors.Newf(errors.ErrInvalidFormat, "format %q has an empty label", tag).
				WithDetail("tag", tag)
		}
		merged[tag] = label
	}
	return Table{labels: merged}, nil
}
