// Package catalog builds the fixed template catalog and resolves templates by
// label.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/listboard/internal/board"
)

// DefaultLabels is the catalog offered when none is configured.
var DefaultLabels = []string{"Headline", "Copy", "Image", "Slideshow", "Quote"}

// MaxDistance is the largest edit distance Lookup accepts for a fuzzy match.
const MaxDistance = 2

var (
	ErrEmptyLabel      = errors.New("template label cannot be empty")
	ErrDuplicateLabel  = errors.New("duplicate template label")
	ErrUnknownTemplate = errors.New("unknown template")
)

// FromLabels builds a catalog with one template per label, each given a
// fresh id. An empty label list yields the default catalog.
func FromLabels(labels []string, ids board.IDGenerator) (board.Catalog, error) {
	if len(labels) == 0 {
		labels = DefaultLabels
	}
	seen := make(map[string]struct{}, len(labels))
	templates := make([]board.Template, 0, len(labels))
	for i, raw := range labels {
		label := strings.TrimSpace(raw)
		if label == "" {
			return board.Catalog{}, fmt.Errorf("template %d: %w", i, ErrEmptyLabel)
		}
		key := strings.ToLower(label)
		if _, ok := seen[key]; ok {
			return board.Catalog{}, fmt.Errorf("%q: %w", label, ErrDuplicateLabel)
		}
		seen[key] = struct{}{}
		templates = append(templates, board.Template{ID: ids.NewID(), Content: label})
	}
	return board.NewCatalog(templates...), nil
}

// Lookup returns the index of the template whose label matches label,
// ignoring case. Without an exact match the closest label within
// MaxDistance wins; ties go to the earlier template.
func Lookup(cat board.Catalog, label string) (int, error) {
	want := strings.ToLower(strings.TrimSpace(label))
	best, bestDist := -1, MaxDistance+1
	for i, t := range cat.Templates() {
		have := strings.ToLower(t.Content)
		if have == want {
			return i, nil
		}
		if d := levenshtein.ComputeDistance(have, want); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return -1, fmt.Errorf("%q: %w", label, ErrUnknownTemplate)
	}
	return best, nil
}
