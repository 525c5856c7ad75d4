package places

import "errors"

// ErrUnknownCategory is returned for a label that has no Kakao category group code.
var ErrUnknownCategory = errors.New("unknown place category")

// Category pairs a selectable label with its Kakao category group code.
type Category struct {
	Key   string
	Label string
	Code  string
}

// Categories lists the selectable amenity types in display order.
var Categories = []Category{
	{Key: "cafe", Label: "카페", Code: "CE7"},
	{Key: "restaurant", Label: "음식점", Code: "FD6"},
	{Key: "convenience", Label: "편의점", Code: "CS2"},
}

// DefaultCategoryKeys is the preselected category set.
var DefaultCategoryKeys = []string{"cafe"}

// LookupCategory resolves a category by key or by its display label.
func LookupCategory(name string) (Category, error) {
	for _, c := range Categories {
		if c.Key == name || c.Label == name {
			return c, nil
		}
	}
	return Category{}, ErrUnknownCategory
}
