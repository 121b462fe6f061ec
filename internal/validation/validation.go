// Package validation enforces the wardrobe vocabularies on user input before
// it reaches the catalog. The catalog itself accepts any strings.
package validation

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/agentstation/wardrobe/pkg/catalogs"
	"github.com/agentstation/wardrobe/pkg/errors"
)

// ItemInput is an item as typed by a user or posted to the API.
type ItemInput struct {
	ID        string `json:"id" yaml:"id" validate:"required,max=128"`
	Type      string `json:"type" yaml:"type" validate:"required,oneof=top bottom jacket accessory"`
	Colour    string `json:"colour" yaml:"colour" validate:"required,max=64"`
	Fit       string `json:"fit" yaml:"fit" validate:"required,fit"`
	Mood      string `json:"mood" yaml:"mood" validate:"required,max=64"`
	DressCode string `json:"dressCode" yaml:"dressCode" validate:"required,dresscode"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("fit", func(fl validator.FieldLevel) bool {
		return slices.Contains(catalogs.Fits(), fl.Field().String())
	})
	_ = v.RegisterValidation("dresscode", func(fl validator.FieldLevel) bool {
		return slices.Contains(catalogs.DressCodes(), fl.Field().String())
	})
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

var typeShortcuts = map[string]string{
	"t": string(catalogs.CategoryTop),
	"b": string(catalogs.CategoryBottom),
	"j": string(catalogs.CategoryJacket),
	"a": string(catalogs.CategoryAccessory),
}

// Normalize trims every field, lower-cases the closed vocabularies and
// expands the console shortcuts: t, b, j, a for the type, 1 to 3 for the
// fit and 1 to 6 for the dress code, numbered as Fits and DressCodes list
// them.
func (in ItemInput) Normalize() ItemInput {
	out := ItemInput{
		ID:        strings.TrimSpace(in.ID),
		Type:      strings.ToLower(strings.TrimSpace(in.Type)),
		Colour:    strings.TrimSpace(in.Colour),
		Fit:       strings.ToLower(strings.TrimSpace(in.Fit)),
		Mood:      strings.TrimSpace(in.Mood),
		DressCode: strings.ToLower(strings.Join(strings.Fields(in.DressCode), " ")),
	}
	if full, ok := typeShortcuts[out.Type]; ok {
		out.Type = full
	}
	out.Fit = fromMenu(out.Fit, catalogs.Fits())
	out.DressCode = fromMenu(out.DressCode, catalogs.DressCodes())
	return out
}

// fromMenu maps a 1-based menu number to its entry.
func fromMenu(value string, menu []string) string {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 || n > len(menu) {
		return value
	}
	return menu[n-1]
}

// Validate checks the input as given, without normalizing it.
func (in ItemInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// Item normalizes and validates the input and builds the item.
func (in ItemInput) Item() (*catalogs.Item, error) {
	n := in.Normalize()
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return catalogs.NewItem(n.ID, n.Type, n.Colour, n.Fit, n.Mood, n.DressCode), nil
}

// Category checks a category name given on the command line or in a query.
// Shortcuts and view names ("tops", "accessories") are accepted as well.
func Category(s string) (catalogs.Category, error) {
	s = strings.TrimSpace(s)
	if full, ok := typeShortcuts[strings.ToLower(s)]; ok {
		s = full
	}
	for _, c := range catalogs.Categories() {
		if strings.EqualFold(s, c.Plural()) {
			return c, nil
		}
	}
	c, ok := catalogs.ParseCategory(s)
	if !ok {
		return "", errors.NewValidationError("category", s, "must be one of: top bottom jacket accessory")
	}
	return c, nil
}

// formatValidationError turns validator output into a single ValidationError
// naming the first bad field and listing every problem.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errors.WrapValidation("item", err)
	}

	messages := make([]string, 0, len(verrs))
	for _, e := range verrs {
		messages = append(messages, formatFieldError(e))
	}
	first := verrs[0]
	return errors.NewValidationError(first.Field(), first.Value(), strings.Join(messages, "; "))
}

// formatFieldError formats a single field validation error
func formatFieldError(e validator.FieldError) string {
	field := e.Field()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "fit":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(catalogs.Fits(), ", "))
	case "dresscode":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(catalogs.DressCodes(), ", "))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
