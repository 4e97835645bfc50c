package domain

import (
	"time"

	"github.com/google/uuid"
)

// Calculation is a saved voyage calculation: a named trip description
// together with the outcome that was computed for it at save time.
// The outcome is a snapshot — it is recomputed on save, never on read,
// so the history shows what the user actually saw.
type Calculation struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Input     TripInput `json:"input"`
	Outcome   Outcome   `json:"outcome"`
	CreatedAt time.Time `json:"created_at"`
}
