package catalogs

// Item is one catalogued piece of clothing.
//
// Fields are unexported so an Item cannot change after construction; to
// change an item, remove it from the catalog and add a new one. Items are
// shared by pointer between the catalog's main collection and its views.
type Item struct {
	id        string
	category  string
	colour    string
	fit       string
	mood      string
	dressCode string
}

// NewItem constructs an item from its six tags.
//
// No validation happens here. A category outside the known vocabulary is
// accepted and produces an item that belongs to no category view.
func NewItem(id, category, colour, fit, mood, dressCode string) *Item {
	return &Item{
		id:        id,
		category:  category,
		colour:    colour,
		fit:       fit,
		mood:      mood,
		dressCode: dressCode,
	}
}

// ID returns the user-chosen identifier. Uniqueness is not enforced.
func (i *Item) ID() string { return i.id }

// Category returns the raw category tag as supplied at construction.
func (i *Item) Category() string { return i.category }

// Colour returns the colour tag.
func (i *Item) Colour() string { return i.colour }

// Fit returns the fit tag.
func (i *Item) Fit() string { return i.fit }

// Mood returns the mood tag.
func (i *Item) Mood() string { return i.mood }

// DressCode returns the dress code tag.
func (i *Item) DressCode() string { return i.dressCode }

// Tag returns the value of the tag selected by field.
func (i *Item) Tag(field Field) string {
	switch field {
	case FieldColour:
		return i.colour
	case FieldFit:
		return i.fit
	case FieldMood:
		return i.mood
	default:
		return i.dressCode
	}
}

// Record returns the serialized form of the item.
func (i *Item) Record() Record {
	return Record{
		ID:        i.id,
		Type:      i.category,
		Colour:    i.colour,
		Fit:       i.fit,
		Mood:      i.mood,
		DressCode: i.dressCode,
	}
}

// Record is the wire shape of an item: six string fields.
type Record struct {
	ID        string `json:"id" yaml:"id"`
	Type      string `json:"type" yaml:"type"`
	Colour    string `json:"colour" yaml:"colour"`
	Fit       string `json:"fit" yaml:"fit"`
	Mood      string `json:"mood" yaml:"mood"`
	DressCode string `json:"dressCode" yaml:"dressCode"`
}

// Item builds an item from the record.
func (r Record) Item() *Item {
	return NewItem(r.ID, r.Type, r.Colour, r.Fit, r.Mood, r.DressCode)
}
