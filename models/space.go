package models

// SpaceType is the closed set of rentable space categories.
type SpaceType string

const (
	SpaceTypeOffice  SpaceType = "office"
	SpaceTypeKitchen SpaceType = "kitchen"
	SpaceTypeStudio  SpaceType = "studio"

	// SpaceTypeAll is the filter wildcard, never a catalog value.
	SpaceTypeAll SpaceType = "all"
)

// ValidSpaceType reports whether t names a real catalog category.
func ValidSpaceType(t SpaceType) bool {
	switch t {
	case SpaceTypeOffice, SpaceTypeKitchen, SpaceTypeStudio:
		return true
	}
	return false
}

// Space is an immutable catalog record for a rentable space.
type Space struct {
	ID           string    `bson:"id" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description" json:"description"`
	Type         SpaceType `bson:"type" json:"type"`
	Price        float64   `bson:"price" json:"price"` // currency units per hour
	Location     string    `bson:"location" json:"location"`
	Address      string    `bson:"address" json:"address"`
	Images       []string  `bson:"images" json:"images"`
	Rating       float64   `bson:"rating" json:"rating"`
	ReviewCount  int       `bson:"reviews" json:"reviews"`
	Amenities    []string  `bson:"amenities" json:"amenities"`
	Capacity     int       `bson:"capacity" json:"capacity"`
	Availability []string  `bson:"availability" json:"availability"` // bookable start-time labels, display order
}

// HasAmenity reports whether the space offers the named amenity.
func (s Space) HasAmenity(amenity string) bool {
	for _, a := range s.Amenities {
		if a == amenity {
			return true
		}
	}
	return false
}

// AllowsStartTime reports whether label is one of the space's bookable start times.
func (s Space) AllowsStartTime(label string) bool {
	for _, slot := range s.Availability {
		if slot == label {
			return true
		}
	}
	return false
}
