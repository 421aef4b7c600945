package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"travelstore/internal/domain"
	"travelstore/internal/domain/models"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trips.json")
	data := `[
        {"id":1,"destination":"Bali","country":"Indonesia","category":"Beach","price":899,"duration":"7 days","rating":4.8,"reviews":324,"images":["a.jpg"]},
        {"id":2,"destination":"Rome","country":"Italy","category":"Cultural","price":749,"duration":"4 days","rating":4.6,"reviews":623,"images":["b.jpg"]}
    ]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	trips, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if len(trips) != 2 {
		t.Fatalf("expected 2 trips, got %d", len(trips))
	}
	if trips[0].Destination != "Bali" || trips[1].Price != 749 {
		t.Fatalf("fields decoded wrong: %+v", trips)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing catalog file")
	}
}

func TestCatalogFindByID(t *testing.T) {
	cat := New([]models.Trip{{ID: 7, Destination: "Kyoto"}})

	trip, err := cat.FindByID(7)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if trip.Destination != "Kyoto" {
		t.Fatalf("wrong trip: %+v", trip)
	}

	_, err = cat.FindByID(99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestCatalogFeatured(t *testing.T) {
	trips := make([]models.Trip, 10)
	for i := range trips {
		trips[i] = models.Trip{ID: int64(i + 1)}
	}
	cat := New(trips)

	featured := cat.Featured(6)
	if len(featured) != 6 {
		t.Fatalf("expected 6 featured trips, got %d", len(featured))
	}
	for i, trip := range featured {
		if trip.ID != int64(i+1) {
			t.Fatalf("featured must keep catalog order")
		}
	}

	if got := cat.Featured(100); len(got) != 10 {
		t.Fatalf("featured larger than catalog should cap at catalog size, got %d", len(got))
	}
}

func TestCatalogReplaceAndSnapshotIsolation(t *testing.T) {
	src := []models.Trip{{ID: 1, Destination: "Bali"}}
	cat := New(src)

	src[0].Destination = "changed"
	if trip, _ := cat.FindByID(1); trip.Destination != "Bali" {
		t.Fatalf("catalog must copy its input slice")
	}

	out := cat.Trips()
	out[0].Destination = "changed"
	if trip, _ := cat.FindByID(1); trip.Destination != "Bali" {
		t.Fatalf("Trips() must return a copy")
	}

	cat.Replace([]models.Trip{{ID: 2}})
	if cat.Len() != 1 {
		t.Fatalf("replace should install the new snapshot")
	}
	if _, err := cat.FindByID(1); !domain.IsNotFound(err) {
		t.Fatalf("old snapshot should be gone after replace")
	}
}
