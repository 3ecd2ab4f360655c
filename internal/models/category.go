package models

import "encoding/json"

// Category classifies a product. The zero value is CategoryUnknown, which is
// also the fallback for any unrecognized input.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryCloths
	CategoryFood
	CategoryHousewares
	CategoryAutomotive
	CategoryTools
)

var categoryNames = map[Category]string{
	CategoryUnknown:    "UNKNOWN",
	CategoryCloths:     "CLOTHS",
	CategoryFood:       "FOOD",
	CategoryHousewares: "HOUSEWARES",
	CategoryAutomotive: "AUTOMOTIVE",
	CategoryTools:      "TOOLS",
}

var categoriesByName = func() map[string]Category {
	m := make(map[string]Category, len(categoryNames))
	for c, name := range categoryNames {
		m[name] = c
	}
	return m
}()

// ParseCategory maps a category name to its Category value. Unrecognized
// names map to CategoryUnknown.
func ParseCategory(name string) Category {
	if c, ok := categoriesByName[name]; ok {
		return c
	}
	return CategoryUnknown
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[CategoryUnknown]
}

// MarshalJSON serializes the category as its name string.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts a category name string. Unrecognized names decode to
// CategoryUnknown rather than failing the whole payload.
func (c *Category) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*c = ParseCategory(name)
	return nil
}
