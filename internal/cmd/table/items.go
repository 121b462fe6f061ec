// Package table converts wardrobe data into rows for table output.
package table

import (
	"fmt"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/wardrobe/pkg/catalogs"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// Section is a titled table. When the table has no rows, Empty is printed
// in place of it.
type Section struct {
	Title string
	Empty string
	Data  Data
}

// ItemHeaders are the columns of every item table.
var ItemHeaders = []string{"ID", "Type", "Colour", "Fit", "Mood", "Dress Code"}

var upper = cases.Upper(language.English)

// ItemRow renders one item as a table row.
func ItemRow(item *catalogs.Item) []string {
	return []string{
		item.ID(),
		item.Category(),
		item.Colour(),
		item.Fit(),
		item.Mood(),
		item.DressCode(),
	}
}

// ItemsToTableData converts items to table format, in the given order.
func ItemsToTableData(items []*catalogs.Item) Data {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		rows = append(rows, ItemRow(item))
	}
	return Data{Headers: ItemHeaders, Rows: rows}
}

// OutfitToSections renders an outfit as one section per category, in
// display order. Matches with an unknown category get a trailing section
// only when there are any.
func OutfitToSections(o catalogs.Outfit) []Section {
	sections := make([]Section, 0, 5)
	for _, s := range o.Sections() {
		name := upper.String(s.Category.Plural())
		sections = append(sections, Section{
			Title: "RECOMMENDED " + name,
			Empty: fmt.Sprintf("NO %s MATCH SEARCH CRITERIA", name),
			Data:  ItemsToTableData(s.Items),
		})
	}
	if len(o.Other) > 0 {
		sections = append(sections, Section{
			Title: "OTHER MATCHES",
			Data:  ItemsToTableData(o.Other),
		})
	}
	return sections
}

// CountsToTableData summarises view sizes, with a total row.
func CountsToTableData(counts map[catalogs.Category]int, total int) Data {
	title := cases.Title(language.English)
	rows := make([][]string, 0, len(counts)+1)
	for _, category := range catalogs.Categories() {
		rows = append(rows, []string{title.String(category.Plural()), strconv.Itoa(counts[category])})
	}
	rows = append(rows, []string{"Total", strconv.Itoa(total)})
	return Data{
		Headers:         []string{"Category", "Items"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}
