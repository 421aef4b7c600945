package catalog

import (
	"net/url"
	"testing"

	"travelstore/internal/domain/models"
)

func sampleTrips() []models.Trip {
	return []models.Trip{
		{ID: 1, Destination: "Bali", Country: "Indonesia", Category: models.CategoryBeach, Price: 500, Duration: "4 days", Rating: 4.5, Reviews: 100},
		{ID: 2, Destination: "Santorini", Country: "Greece", Category: models.CategoryLuxury, Price: 900, Duration: "6 days", Rating: 4.9, Reviews: 200},
		{ID: 3, Destination: "Kyoto", Country: "Japan", Category: models.CategoryCultural, Price: 1200, Duration: "5 days", Rating: 4.7, Reviews: 150},
		{ID: 4, Destination: "Queenstown", Country: "New Zealand", Category: models.CategoryAdventure, Price: 1600, Duration: "9 days", Rating: 4.6, Reviews: 50},
	}
}

func TestSearchDurationBucketExample(t *testing.T) {
	trips := []models.Trip{
		{ID: 1, Destination: "A", Price: 500, Duration: "4 days"},
		{ID: 2, Destination: "B", Price: 900, Duration: "6 days"},
	}

	q := DefaultQuery()
	q.Duration = "3-5"

	got := Search(trips, q)
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("duration bucket 3-5 should return only trip A, got %v", got)
	}
}

func TestSearchPriceRangeExample(t *testing.T) {
	trips := []models.Trip{
		{ID: 1, Destination: "A", Price: 500},
		{ID: 2, Destination: "B", Price: 900},
	}

	q := DefaultQuery()
	q.PriceRange = PriceRange{Min: 0, Max: 500}

	got := Search(trips, q)
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("price range [0,500] should return only A (500 is inclusive), got %v", got)
	}
}

func TestSearchDurationBucketsOverlapAtFive(t *testing.T) {
	trips := []models.Trip{{ID: 1, Destination: "X", Price: 100, Duration: "5 days"}}

	for _, bucket := range []string{"3-5", "5-7"} {
		q := DefaultQuery()
		q.Duration = bucket
		if got := Search(trips, q); len(got) != 1 {
			t.Fatalf("a 5-day trip must satisfy bucket %q", bucket)
		}
	}
}

func TestSearchMalformedDurationDoesNotCrash(t *testing.T) {
	trips := []models.Trip{
		{ID: 1, Destination: "X", Price: 100, Duration: "about a week"},
		{ID: 2, Destination: "Y", Price: 100, Duration: "7 days"},
	}

	q := DefaultQuery()
	q.Duration = "7+"
	got := Search(trips, q)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("malformed duration should parse as 0 days and fall out of 7+, got %v", got)
	}

	// 0 days sorts first under the duration key.
	q = DefaultQuery()
	q.Sort = SortDuration
	got = Search(trips, q)
	if got[0].ID != 1 {
		t.Fatalf("malformed duration should sort first by duration, got %v", got)
	}
}

func TestSearchCategoryExact(t *testing.T) {
	q := DefaultQuery()
	q.Category = models.CategoryBeach

	got := Search(sampleTrips(), q)
	if len(got) == 0 {
		t.Fatalf("expected beach trips")
	}
	for _, trip := range got {
		if trip.Category != models.CategoryBeach {
			t.Fatalf("category filter leaked %q", trip.Category)
		}
	}
}

func TestSearchLocationCaseInsensitive(t *testing.T) {
	q := DefaultQuery()
	q.Location = "jAPan"

	got := Search(sampleTrips(), q)
	if len(got) != 1 || got[0].Destination != "Kyoto" {
		t.Fatalf("country substring match failed, got %v", got)
	}
}

func TestSearchNarrowingPriceRangeIsMonotonic(t *testing.T) {
	trips := sampleTrips()

	wide := DefaultQuery()
	wide.PriceRange = PriceRange{Min: 0, Max: 2000}
	narrow := DefaultQuery()
	narrow.PriceRange = PriceRange{Min: 600, Max: 1300}

	if len(Search(trips, narrow)) > len(Search(trips, wide)) {
		t.Fatalf("narrowing the price range must never grow the result set")
	}
}

func TestSearchPriceSortsAreReversed(t *testing.T) {
	trips := sampleTrips()

	low := DefaultQuery()
	low.Sort = SortPriceLow
	high := DefaultQuery()
	high.Sort = SortPriceHigh

	asc := Search(trips, low)
	desc := Search(trips, high)
	if len(asc) != len(desc) {
		t.Fatalf("sorts changed the result set")
	}
	for i := range asc {
		if asc[i].ID != desc[len(desc)-1-i].ID {
			t.Fatalf("price-low and price-high should be exact reverses for distinct prices")
		}
	}
}

func TestSearchPopularDefaultUsesRatingTimesReviews(t *testing.T) {
	got := Search(sampleTrips(), DefaultQuery())
	// Santorini 4.9*200=980, Kyoto 4.7*150=705, Bali 4.5*100=450, Queenstown 4.6*50=230
	wantOrder := []int64{2, 3, 1, 4}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("popularity order wrong at %d: got %d want %d", i, got[i].ID, id)
		}
	}
}

func TestSearchStableOnPopularityTies(t *testing.T) {
	trips := []models.Trip{
		{ID: 1, Destination: "A", Price: 100, Rating: 4.0, Reviews: 10},
		{ID: 2, Destination: "B", Price: 100, Rating: 4.0, Reviews: 10},
		{ID: 3, Destination: "C", Price: 100, Rating: 2.0, Reviews: 20},
	}

	got := Search(trips, DefaultQuery())
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("ties must keep catalog order, got %v", got)
	}
}

func TestSearchDoesNotMutateInput(t *testing.T) {
	trips := sampleTrips()
	q := DefaultQuery()
	q.Sort = SortPriceHigh
	_ = Search(trips, q)

	if trips[0].ID != 1 || trips[3].ID != 4 {
		t.Fatalf("input catalog order was mutated")
	}
}

func TestParseQueryPriceTokens(t *testing.T) {
	cases := []struct {
		token    string
		min, max float64
	}{
		{"0-500", 0, 500},
		{"500-1000", 500, 1000},
		{"1000-1500", 1000, 1500},
		{"1500+", 1500, 2000},
		{"", 0, 2000},
		{"garbage", 0, 2000},
	}
	for _, tc := range cases {
		q := ParseQuery(url.Values{"price": {tc.token}})
		if q.PriceRange.Min != tc.min || q.PriceRange.Max != tc.max {
			t.Fatalf("token %q parsed to [%v,%v], want [%v,%v]",
				tc.token, q.PriceRange.Min, q.PriceRange.Max, tc.min, tc.max)
		}
	}
}

func TestParseQueryNormalizesUnknownTokens(t *testing.T) {
	q := ParseQuery(url.Values{
		"destination": {"  Bali "},
		"duration":    {"2-3"},
		"category":    {"Camping"},
		"sort":        {"newest"},
	})

	if q.Location != "Bali" {
		t.Fatalf("destination not trimmed: %q", q.Location)
	}
	if q.Duration != "" {
		t.Fatalf("unknown duration bucket should be dropped, got %q", q.Duration)
	}
	if q.Category != "" {
		t.Fatalf("unknown category should be dropped, got %q", q.Category)
	}
	if q.Sort != SortPopular {
		t.Fatalf("unknown sort should fall back to popular, got %q", q.Sort)
	}
}

func TestDurationDays(t *testing.T) {
	cases := map[string]int{
		"7 days":       7,
		"10 days":      10,
		"3days":        3,
		"days 3":       0,
		"":             0,
		"about a week": 0,
	}
	for in, want := range cases {
		if got := DurationDays(in); got != want {
			t.Fatalf("DurationDays(%q) = %d, want %d", in, got, want)
		}
	}
}
