package catalogs

import "strings"

// Category is one of the four clothing types that get their own view.
type Category string

// Known categories, in display order.
const (
	CategoryTop       Category = "top"
	CategoryBottom    Category = "bottom"
	CategoryJacket    Category = "jacket"
	CategoryAccessory Category = "accessory"
)

// String returns the string representation of a Category.
func (c Category) String() string {
	return string(c)
}

// Plural returns the plural label used for the category's serialized view.
func (c Category) Plural() string {
	switch c {
	case CategoryTop:
		return "tops"
	case CategoryBottom:
		return "bottoms"
	case CategoryJacket:
		return "jackets"
	case CategoryAccessory:
		return "accessories"
	}
	return string(c)
}

// IsValid reports whether c is one of the four known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryTop, CategoryBottom, CategoryJacket, CategoryAccessory:
		return true
	default:
		return false
	}
}

// Categories returns the known categories in display order.
func Categories() []Category {
	return []Category{CategoryTop, CategoryBottom, CategoryJacket, CategoryAccessory}
}

// ParseCategory matches s against the known categories ignoring case.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return "", false
}

// Vocabularies for the remaining closed tags. The catalog never enforces
// these; collaborators that gather input use them.
var (
	fits       = []string{"tight", "comfy", "baggy"}
	dressCodes = []string{"casual", "business casual", "formal", "cocktail", "black tie", "white tie"}
)

// Fits returns the recognised fit values.
func Fits() []string {
	return append([]string(nil), fits...)
}

// DressCodes returns the recognised dress code values.
func DressCodes() []string {
	return append([]string(nil), dressCodes...)
}
