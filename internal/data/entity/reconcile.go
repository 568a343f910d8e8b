package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NotFoundError signals that a booking id was absent from a local list.
// Callers recover by refetching; it is never surfaced to the user.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("booking %s not present in list", e.ID)
}

// ApplyTransition returns a copy of list with the status of the booking
// identified by id replaced and its UpdatedAt refreshed. Relative order is
// preserved and every other element is kept by reference, so callers can
// update a rendered page in place after a successful remote call instead of
// refetching it.
//
// If id is not in the list (filtered out, or edited away concurrently) the
// original list is returned unchanged alongside a NotFoundError; the caller
// should fall back to a full refetch.
func ApplyTransition(list []*Booking, id uuid.UUID, newStatus BookingStatus) ([]*Booking, error) {
	idx := -1
	for i, b := range list {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return list, &NotFoundError{ID: id}
	}

	out := make([]*Booking, len(list))
	copy(out, list)

	updated := *list[idx]
	updated.Status = newStatus
	updated.UpdatedAt = time.Now()
	out[idx] = &updated

	return out, nil
}
