// Package filter narrows item lists for the list command and the API.
package filter

import (
	"strings"

	"github.com/agentstation/wardrobe/pkg/catalogs"
)

// ItemFilter applies filters to item lists. Tag fields match exactly, the
// same as catalogs.Filter; Category ignores case, the same as Catalog.Add.
type ItemFilter struct {
	Category  string
	Colour    string
	Fit       string
	Mood      string
	DressCode string
}

// Apply filters a slice of items, preserving order.
func (f *ItemFilter) Apply(items []*catalogs.Item) []*catalogs.Item {
	if f == nil || f.isEmpty() {
		return items
	}

	query := f.query()
	filtered := make([]*catalogs.Item, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if f.matchesCategory(item) && query.Matches(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func (f *ItemFilter) isEmpty() bool {
	return f.Category == "" &&
		f.Colour == "" &&
		f.Fit == "" &&
		f.Mood == "" &&
		f.DressCode == ""
}

// query builds the exact-match chain for the tag fields that are set.
func (f *ItemFilter) query() *catalogs.Query {
	q := catalogs.NewQuery()
	if f.Colour != "" {
		q.Where(string(catalogs.FieldColour), f.Colour)
	}
	if f.Fit != "" {
		q.Where(string(catalogs.FieldFit), f.Fit)
	}
	if f.Mood != "" {
		q.Where(string(catalogs.FieldMood), f.Mood)
	}
	if f.DressCode != "" {
		q.Where(string(catalogs.FieldDressCode), f.DressCode)
	}
	return q
}

func (f *ItemFilter) matchesCategory(item *catalogs.Item) bool {
	return f.Category == "" || strings.EqualFold(item.Category(), f.Category)
}
