package entity

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestApplyTransition_UpdatesOnlyTarget(t *testing.T) {
	list := []*Booking{
		testBooking(BookingStatusPending),
		testBooking(BookingStatusConfirmed),
		testBooking(BookingStatusPending),
		testBooking(BookingStatusInProgress),
	}
	target := list[1]
	before := target.UpdatedAt

	out, err := ApplyTransition(list, target.ID, BookingStatusInProgress)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != len(list) {
		t.Fatalf("length changed: %d -> %d", len(list), len(out))
	}

	for i := range list {
		if i == 1 {
			continue
		}
		if out[i] != list[i] {
			t.Errorf("position %d: reference identity lost", i)
		}
	}

	if out[1] == target {
		t.Fatalf("target must be replaced with a copy, not mutated in place")
	}
	if out[1].Status != BookingStatusInProgress {
		t.Fatalf("expected status in_progress, got %s", out[1].Status)
	}
	if out[1].ID != target.ID {
		t.Fatalf("target id changed")
	}
	if out[1].UpdatedAt.Before(before) {
		t.Fatalf("updated_at not refreshed")
	}
	if target.Status != BookingStatusConfirmed {
		t.Fatalf("original record mutated")
	}
}

func TestApplyTransition_AbsentID(t *testing.T) {
	list := []*Booking{
		testBooking(BookingStatusPending),
		testBooking(BookingStatusConfirmed),
	}
	missing := uuid.New()

	out, err := ApplyTransition(list, missing, BookingStatusCancelled)
	if err == nil {
		t.Fatalf("expected error")
	}
	var nfe *NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected NotFoundError, got %T: %v", err, err)
	}
	if nfe.ID != missing {
		t.Fatalf("error names id %s, want %s", nfe.ID, missing)
	}

	if len(out) != len(list) {
		t.Fatalf("list length changed on miss")
	}
	for i := range list {
		if out[i] != list[i] {
			t.Fatalf("position %d changed on miss", i)
		}
	}
}

func TestApplyTransition_EmptyList(t *testing.T) {
	out, err := ApplyTransition(nil, uuid.New(), BookingStatusCancelled)
	var nfe *NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty list back")
	}
}

func TestApplyTransition_FirstAndLast(t *testing.T) {
	list := []*Booking{
		testBooking(BookingStatusPending),
		testBooking(BookingStatusPending),
		testBooking(BookingStatusConfirmed),
	}

	out, err := ApplyTransition(list, list[0].ID, BookingStatusConfirmed)
	if err != nil {
		t.Fatalf("head: %v", err)
	}
	if out[0].Status != BookingStatusConfirmed || out[1] != list[1] || out[2] != list[2] {
		t.Fatalf("head update touched other elements")
	}

	out, err = ApplyTransition(list, list[2].ID, BookingStatusCancelled)
	if err != nil {
		t.Fatalf("tail: %v", err)
	}
	if out[2].Status != BookingStatusCancelled || out[0] != list[0] || out[1] != list[1] {
		t.Fatalf("tail update touched other elements")
	}
}
