package models

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortByRating    SortKey = "rating"     // rating descending
	SortByPriceLow  SortKey = "price_low"  // price ascending
	SortByPriceHigh SortKey = "price_high" // price descending
	SortByName      SortKey = "name"       // title ascending, locale-aware
)

// FilterCriteria captures one browse session's filter/sort/search parameters.
// MinPrice and MaxPrice are kept as raw strings; malformed numbers mean "unset".
type FilterCriteria struct {
	Type        SpaceType `json:"type" form:"type"`
	Location    string    `json:"location" form:"location"`
	MinPrice    string    `json:"minPrice" form:"minPrice"`
	MaxPrice    string    `json:"maxPrice" form:"maxPrice"`
	Amenities   []string  `json:"amenities" form:"amenities"`
	SearchQuery string    `json:"q" form:"q"`
	SortBy      SortKey   `json:"sortBy" form:"sortBy"`
}
