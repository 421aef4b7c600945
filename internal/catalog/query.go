package catalog

import (
	"net/url"
	"sort"
	"strings"

	"travelstore/internal/domain/models"
	"travelstore/internal/utils"
)

// Sort keys accepted by Search. Popular is the default.
const (
	SortPopular   = "popular"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortDuration  = "duration"
)

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Query is one search request against the catalog.
type Query struct {
	Location   string     `json:"location"`
	Duration   string     `json:"duration"`
	PriceRange PriceRange `json:"priceRange"`
	Category   string     `json:"category"`
	Sort       string     `json:"sort"`
}

// DefaultQuery matches everything, price range [0,2000], popularity order.
func DefaultQuery() Query {
	return Query{
		PriceRange: PriceRange{Min: 0, Max: 2000},
		Sort:       SortPopular,
	}
}

// ParseQuery builds a Query from the canonical string key/value boundary:
// destination (free text), duration (bucket token), price (price-bucket
// token), category, sort. Unknown tokens fall back to the defaults.
func ParseQuery(values url.Values) Query {
	q := DefaultQuery()
	q.Location = utils.NormalizeSpace(values.Get("destination"))
	q.Duration = normalizeDurationBucket(values.Get("duration"))
	q.PriceRange = priceRangeFromToken(values.Get("price"))
	q.Category = normalizeCategory(values.Get("category"))
	if s := normalizeSort(values.Get("sort")); s != "" {
		q.Sort = s
	}
	return q
}

func normalizeDurationBucket(raw string) string {
	switch strings.TrimSpace(raw) {
	case "3-5", "5-7", "7+":
		return strings.TrimSpace(raw)
	default:
		return ""
	}
}

// priceRangeFromToken maps the four UI price buckets onto inclusive ranges.
// "1500+" is capped at the storefront's 2000 display maximum.
func priceRangeFromToken(raw string) PriceRange {
	switch strings.TrimSpace(raw) {
	case "0-500":
		return PriceRange{Min: 0, Max: 500}
	case "500-1000":
		return PriceRange{Min: 500, Max: 1000}
	case "1000-1500":
		return PriceRange{Min: 1000, Max: 1500}
	case "1500+":
		return PriceRange{Min: 1500, Max: 2000}
	default:
		return PriceRange{Min: 0, Max: 2000}
	}
}

func normalizeCategory(raw string) string {
	switch strings.TrimSpace(raw) {
	case models.CategoryBeach, models.CategoryCultural, models.CategoryAdventure, models.CategoryLuxury:
		return strings.TrimSpace(raw)
	default:
		return ""
	}
}

func normalizeSort(raw string) string {
	switch strings.TrimSpace(raw) {
	case SortPopular, SortPriceLow, SortPriceHigh, SortRating, SortDuration:
		return strings.TrimSpace(raw)
	default:
		return ""
	}
}

// Search filters and orders a catalog snapshot. All predicates are
// AND-combined; sorting is stable so ties keep catalog order. The input slice
// is never mutated.
func Search(trips []models.Trip, q Query) []models.Trip {
	out := make([]models.Trip, 0, len(trips))
	for _, t := range trips {
		if !matchesLocation(t, q.Location) {
			continue
		}
		if t.Price < q.PriceRange.Min || t.Price > q.PriceRange.Max {
			continue
		}
		if q.Duration != "" && !matchesDuration(DurationDays(t.Duration), q.Duration) {
			continue
		}
		if q.Category != "" && t.Category != q.Category {
			continue
		}
		out = append(out, t)
	}

	sortTrips(out, q.Sort)
	return out
}

func matchesLocation(t models.Trip, location string) bool {
	if location == "" {
		return true
	}
	needle := strings.ToLower(location)
	return strings.Contains(strings.ToLower(t.Destination), needle) ||
		strings.Contains(strings.ToLower(t.Country), needle)
}

func sortTrips(trips []models.Trip, key string) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(trips, func(i, j int) bool { return trips[i].Price < trips[j].Price })
	case SortPriceHigh:
		sort.SliceStable(trips, func(i, j int) bool { return trips[i].Price > trips[j].Price })
	case SortRating:
		sort.SliceStable(trips, func(i, j int) bool { return trips[i].Rating > trips[j].Rating })
	case SortDuration:
		sort.SliceStable(trips, func(i, j int) bool {
			return DurationDays(trips[i].Duration) < DurationDays(trips[j].Duration)
		})
	default:
		sort.SliceStable(trips, func(i, j int) bool {
			return trips[i].PopularityScore() > trips[j].PopularityScore()
		})
	}
}
