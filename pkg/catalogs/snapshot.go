package catalogs

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/agentstation/wardrobe/pkg/errors"
)

// Snapshot is the serialized form of a catalog. The four category arrays are
// redundant copies written for readability; readers rebuild the views from
// AllClothes.
type Snapshot struct {
	AllClothes  []Record `json:"allClothes" yaml:"allClothes"`
	Tops        []Record `json:"tops" yaml:"tops"`
	Bottoms     []Record `json:"bottoms" yaml:"bottoms"`
	Jackets     []Record `json:"jackets" yaml:"jackets"`
	Accessories []Record `json:"accessories" yaml:"accessories"`
}

// Snapshot captures the catalog's full state.
func (c *Catalog) Snapshot() Snapshot {
	return Snapshot{
		AllClothes:  Records(c.items),
		Tops:        Records(c.views[CategoryTop]),
		Bottoms:     Records(c.views[CategoryBottom]),
		Jackets:     Records(c.views[CategoryJacket]),
		Accessories: Records(c.views[CategoryAccessory]),
	}
}

// Records converts items to their wire form. The result is never nil.
func Records(items []*Item) []Record {
	out := make([]Record, 0, len(items))
	for _, item := range items {
		out = append(out, item.Record())
	}
	return out
}

// FromSnapshot builds a new catalog by adding every record of AllClothes in
// order. The category arrays of the snapshot are ignored. Options apply to the
// new catalog before any item is added, so an event sink sees one add per
// record.
func FromSnapshot(snap Snapshot, opts ...Option) *Catalog {
	c := New(opts...)
	for _, r := range snap.AllClothes {
		c.Add(r.Item())
	}
	return c
}

// MarshalJSON encodes the catalog as a Snapshot.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Snapshot())
}

// Unmarshal parses a JSON snapshot into a new catalog. The document must be
// an object with an "allClothes" array; anything else is a parse error and no
// catalog is returned.
func Unmarshal(data []byte, opts ...Option) (*Catalog, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse("json", "", err)
	}

	raw, ok := doc["allClothes"]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, errors.NewParseError("json", "", `missing "allClothes" array`, nil)
	}

	all, err := decodeRecords(raw)
	if err != nil {
		return nil, err
	}

	return FromSnapshot(Snapshot{AllClothes: all}, opts...), nil
}

// wireRecord distinguishes absent fields from empty strings.
type wireRecord struct {
	ID        *string `json:"id"`
	Type      *string `json:"type"`
	Colour    *string `json:"colour"`
	Fit       *string `json:"fit"`
	Mood      *string `json:"mood"`
	DressCode *string `json:"dressCode"`
}

// decodeRecords requires every record to carry all six string fields.
func decodeRecords(raw json.RawMessage) ([]Record, error) {
	var wire []wireRecord
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, errors.WrapParse("json", "", err)
	}

	all := make([]Record, 0, len(wire))
	for i, w := range wire {
		fields := []struct {
			name  string
			value *string
		}{
			{"id", w.ID}, {"type", w.Type}, {"colour", w.Colour},
			{"fit", w.Fit}, {"mood", w.Mood}, {"dressCode", w.DressCode},
		}
		for _, f := range fields {
			if f.value == nil {
				return nil, errors.NewParseError("json", "",
					fmt.Sprintf("allClothes[%d]: missing %q", i, f.name), nil)
			}
		}
		all = append(all, Record{
			ID:        *w.ID,
			Type:      *w.Type,
			Colour:    *w.Colour,
			Fit:       *w.Fit,
			Mood:      *w.Mood,
			DressCode: *w.DressCode,
		})
	}
	return all, nil
}
