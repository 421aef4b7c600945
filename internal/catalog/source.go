package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"travelstore/internal/domain/models"
)

// LoadFromDB reads the full trip catalog from the trips table, in table order.
// List columns (highlights, itinerary, included, images) are stored as JSON
// arrays; unreadable values degrade to empty lists instead of failing the load.
func LoadFromDB(db *sql.DB) ([]models.Trip, error) {
	rows, err := db.Query(`
        SELECT id, destination, country, category, price, duration,
               rating, reviews, description, highlights, itinerary,
               included, images, min_price, max_price
        FROM trips
        ORDER BY id
    `)
	if err != nil {
		return nil, fmt.Errorf("query trips: %w", err)
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		var t models.Trip
		var highlights, itinerary, included, images sql.NullString

		if err := rows.Scan(
			&t.ID,
			&t.Destination,
			&t.Country,
			&t.Category,
			&t.Price,
			&t.Duration,
			&t.Rating,
			&t.Reviews,
			&t.Description,
			&highlights,
			&itinerary,
			&included,
			&images,
			&t.MinPrice,
			&t.MaxPrice,
		); err != nil {
			return nil, fmt.Errorf("scan trip: %w", err)
		}

		t.Highlights = decodeStringList(highlights)
		t.Itinerary = decodeStringList(itinerary)
		t.Included = decodeStringList(included)
		t.Images = decodeStringList(images)

		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trips: %w", err)
	}
	return trips, nil
}

func decodeStringList(raw sql.NullString) []string {
	s := strings.TrimSpace(raw.String)
	if !raw.Valid || s == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return []string{}
	}
	return out
}
