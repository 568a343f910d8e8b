package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseSimple
	BookingID uuid.UUID `db:"booking_id"`
	ServiceID uuid.UUID `db:"service_id"`
	SeekerID  uuid.UUID `db:"seeker_id"`
	Rating    int       `db:"rating"` // 1-5
	Comment   *string   `db:"comment"`
}
