package domain

import (
	"fmt"
	"strings"
)

// Category is one of the fixed quote categories. The zero value is not a valid category.
type Category int

// known categories, ordinals are stable and used for ordering only
const (
	CategoryBusiness Category = iota + 1
	CategoryConfidence
	CategoryCreativity
	CategoryFitness
	CategoryHappiness
	CategoryLeadership
	CategoryLove
	CategoryMotivation
	CategorySuccess
)

var categoryKeys = map[Category]string{
	CategoryBusiness:   "business",
	CategoryConfidence: "confidence",
	CategoryCreativity: "creativity",
	CategoryFitness:    "fitness",
	CategoryHappiness:  "happiness",
	CategoryLeadership: "leadership",
	CategoryLove:       "love",
	CategoryMotivation: "motivation",
	CategorySuccess:    "success",
}

var categoryTitles = map[Category]string{
	CategoryBusiness:   "Business",
	CategoryConfidence: "Confidence",
	CategoryCreativity: "Creativity",
	CategoryFitness:    "Fitness",
	CategoryHappiness:  "Happiness",
	CategoryLeadership: "Leadership",
	CategoryLove:       "Love",
	CategoryMotivation: "Motivation",
	CategorySuccess:    "Success",
}

// Categories returns all known categories ordered by ordinal
func Categories() []Category {
	res := make([]Category, 0, len(categoryKeys))
	for c := CategoryBusiness; c <= CategorySuccess; c++ {
		res = append(res, c)
	}
	return res
}

// ParseCategory resolves a category by its key, case-insensitive
func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for c, k := range categoryKeys {
		if k == key {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Key returns canonical lowercase key used for remote partitioning and local storage
func (c Category) Key() string {
	return categoryKeys[c]
}

// Title returns display name of the category
func (c Category) Title() string {
	return categoryTitles[c]
}

// Ordinal returns stable ordinal of the category
func (c Category) Ordinal() int {
	return int(c)
}

// Valid checks if category is one of the known ones
func (c Category) Valid() bool {
	_, ok := categoryKeys[c]
	return ok
}

// String implements fmt.Stringer
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return c.Key()
}

// MarshalText implements encoding.TextMarshaler, categories travel as keys
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return []byte(c.Key()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
