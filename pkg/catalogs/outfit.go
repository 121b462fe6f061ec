package catalogs

// Section is one category's share of an outfit recommendation.
type Section struct {
	Category Category
	Items    []*Item
}

// Outfit groups matching items by category for display.
type Outfit struct {
	Tops        []*Item
	Bottoms     []*Item
	Jackets     []*Item
	Accessories []*Item

	// Other holds matches whose category is not one of the four known ones.
	Other []*Item
}

// Group sorts items into outfit sections, preserving their relative order.
// Categories match case-insensitively, the same rule Add uses.
func Group(items []*Item) Outfit {
	o := Outfit{
		Tops:        []*Item{},
		Bottoms:     []*Item{},
		Jackets:     []*Item{},
		Accessories: []*Item{},
		Other:       []*Item{},
	}
	for _, item := range items {
		if item == nil {
			continue
		}
		category, ok := ParseCategory(item.Category())
		if !ok {
			o.Other = append(o.Other, item)
			continue
		}
		switch category {
		case CategoryTop:
			o.Tops = append(o.Tops, item)
		case CategoryBottom:
			o.Bottoms = append(o.Bottoms, item)
		case CategoryJacket:
			o.Jackets = append(o.Jackets, item)
		case CategoryAccessory:
			o.Accessories = append(o.Accessories, item)
		}
	}
	return o
}

// Sections returns the four known categories in display order, including
// empty ones.
func (o Outfit) Sections() []Section {
	return []Section{
		{Category: CategoryTop, Items: o.Tops},
		{Category: CategoryBottom, Items: o.Bottoms},
		{Category: CategoryJacket, Items: o.Jackets},
		{Category: CategoryAccessory, Items: o.Accessories},
	}
}

// Len is the number of matched items across every section.
func (o Outfit) Len() int {
	return len(o.Tops) + len(o.Bottoms) + len(o.Jackets) + len(o.Accessories) + len(o.Other)
}

// Outfit runs the colour, mood and dress code search over every item and
// groups the matches.
func (c *Catalog) Outfit(colour, mood, dressCode string) Outfit {
	return Group(OutfitQuery(colour, mood, dressCode).Apply(c.items))
}

// OutfitRecord is the wire form of an Outfit.
type OutfitRecord struct {
	Tops        []Record `json:"tops" yaml:"tops"`
	Bottoms     []Record `json:"bottoms" yaml:"bottoms"`
	Jackets     []Record `json:"jackets" yaml:"jackets"`
	Accessories []Record `json:"accessories" yaml:"accessories"`
	Other       []Record `json:"other,omitempty" yaml:"other,omitempty"`
}

// Record converts the outfit to its wire form.
func (o Outfit) Record() OutfitRecord {
	r := OutfitRecord{
		Tops:        Records(o.Tops),
		Bottoms:     Records(o.Bottoms),
		Jackets:     Records(o.Jackets),
		Accessories: Records(o.Accessories),
	}
	if len(o.Other) > 0 {
		r.Other = Records(o.Other)
	}
	return r
}
