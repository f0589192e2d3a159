package session

import (
	"encoding/json"
	"fmt"

	"github.com/misterclayt0n/mapty/internal/models"
)

// Encode serializes the whole collection as a JSON array of records.
func Encode(workouts []models.Workout) ([]byte, error) {
	records := make([]models.Record, 0, len(workouts))
	for _, w := range workouts {
		records = append(records, models.ToRecord(w))
	}
	return json.Marshal(records)
}

// Decode parses what Encode produced and rehydrates every record.
func Decode(data []byte) ([]models.Workout, error) {
	var records []models.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding workouts: %w", err)
	}

	workouts := make([]models.Workout, 0, len(records))
	for _, r := range records {
		w, err := models.Rehydrate(r)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, nil
}
