package models

// Trip categories offered by the storefront.
const (
	CategoryBeach     = "Beach"
	CategoryCultural  = "Cultural"
	CategoryAdventure = "Adventure"
	CategoryLuxury    = "Luxury"
)

// Trip is one bookable travel package from the catalog. Records are read-only
// once loaded.
type Trip struct {
	ID          int64    `json:"id"`
	Destination string   `json:"destination"`
	Country     string   `json:"country"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Duration    string   `json:"duration"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
	Itinerary   []string `json:"itinerary"`
	Included    []string `json:"included"`
	Images      []string `json:"images"`
	MinPrice    float64  `json:"minPrice"`
	MaxPrice    float64  `json:"maxPrice"`
}

// PopularityScore is the default sort key: rating weighted by review count.
func (t Trip) PopularityScore() float64 {
	return t.Rating * float64(t.Reviews)
}
