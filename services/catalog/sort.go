package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"quickcowork/models"
)

// titleCollator compares titles the way a browser's localeCompare would.
var titleCollator = collate.New(language.English, collate.IgnoreCase)

// sortSpaces orders spaces in place by the given key. The sort is stable so
// ties keep their prior relative order; an unknown key leaves the order as is.
func sortSpaces(spaces []models.Space, key models.SortKey) {
	switch key {
	case models.SortByRating:
		sort.SliceStable(spaces, func(i, j int) bool {
			return spaces[i].Rating > spaces[j].Rating
		})
	case models.SortByPriceLow:
		sort.SliceStable(spaces, func(i, j int) bool {
			return spaces[i].Price < spaces[j].Price
		})
	case models.SortByPriceHigh:
		sort.SliceStable(spaces, func(i, j int) bool {
			return spaces[i].Price > spaces[j].Price
		})
	case models.SortByName:
		sort.SliceStable(spaces, func(i, j int) bool {
			return titleCollator.CompareString(spaces[i].Title, spaces[j].Title) < 0
		})
	}
}
