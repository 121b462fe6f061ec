package catalogs

// Field selects which tag a filter compares.
type Field string

// Filterable tags.
const (
	FieldColour    Field = "colour"
	FieldFit       Field = "fit"
	FieldMood      Field = "mood"
	FieldDressCode Field = "dress code"
)

// ParseField maps a selector string to a Field. "colour", "fit" and "mood"
// select those tags; every other string, including "dress code" and
// "dressCode", selects the dress code.
func ParseField(s string) Field {
	switch Field(s) {
	case FieldColour, FieldFit, FieldMood:
		return Field(s)
	default:
		return FieldDressCode
	}
}

// Filter returns the items of source whose tag selected by category equals
// value exactly, preserving order. Matching is case-sensitive with no
// normalization. source is never modified and the result is always a new
// slice, so calls can be chained to build a conjunctive search.
func Filter(category, value string, source []*Item) []*Item {
	field := ParseField(category)
	filtered := make([]*Item, 0, len(source))
	for _, item := range source {
		if item == nil {
			continue
		}
		if item.Tag(field) == value {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// criterion is one equality test in a Query.
type criterion struct {
	category string
	value    string
}

// Query is an ordered chain of exact-match filters.
type Query struct {
	criteria []criterion
}

// NewQuery returns an empty query. An empty query returns its input unchanged.
func NewQuery() *Query {
	return &Query{}
}

// Where appends a filter step. category follows the same selection rule as
// Filter.
func (q *Query) Where(category, value string) *Query {
	q.criteria = append(q.criteria, criterion{category: category, value: value})
	return q
}

// Len returns the number of filter steps.
func (q *Query) Len() int {
	return len(q.criteria)
}

// Apply runs each step in order over the progressively narrowed input.
func (q *Query) Apply(source []*Item) []*Item {
	result := append([]*Item(nil), source...)
	for _, c := range q.criteria {
		result = Filter(c.category, c.value, result)
	}
	return result
}

// Matches reports whether a single item passes every step.
func (q *Query) Matches(item *Item) bool {
	if item == nil {
		return false
	}
	for _, c := range q.criteria {
		if item.Tag(ParseField(c.category)) != c.value {
			return false
		}
	}
	return true
}

// OutfitQuery builds the colour, mood, dress code chain used to suggest
// outfits.
func OutfitQuery(colour, mood, dressCode string) *Query {
	return NewQuery().
		Where(string(FieldColour), colour).
		Where(string(FieldMood), mood).
		Where(string(FieldDressCode), dressCode)
}
