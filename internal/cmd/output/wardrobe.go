package output

import (
	"io"

	"github.com/agentstation/wardrobe/internal/cmd/table"
	"github.com/agentstation/wardrobe/pkg/catalogs"
)

// FormatItems writes items as a table, or as wire records for json and yaml.
func FormatItems(w io.Writer, format Format, items []*catalogs.Item) error {
	var data any
	switch format {
	case FormatJSON, FormatYAML:
		data = catalogs.Records(items)
	default:
		data = table.ItemsToTableData(items)
	}
	return NewFormatter(format).Format(w, data)
}

// FormatOutfit writes an outfit as titled sections, or as a record for
// json and yaml.
func FormatOutfit(w io.Writer, format Format, outfit catalogs.Outfit) error {
	var data any
	switch format {
	case FormatJSON, FormatYAML:
		data = outfit.Record()
	default:
		data = table.OutfitToSections(outfit)
	}
	return NewFormatter(format).Format(w, data)
}

// FormatAny writes data in the given format.
func FormatAny(w io.Writer, format Format, data any) error {
	return NewFormatter(format).Format(w, data)
}

// Resolve parses a --format value. An empty value means table on a
// terminal and JSON otherwise.
func Resolve(s string) (Format, error) {
	f, err := ParseFormat(s)
	if err != nil {
		return "", err
	}
	return DetectFormat(string(f)), nil
}
