package entity

import "fmt"

// The booking lifecycle is a fixed directed graph. Each edge carries the
// roles allowed to take it; anything not listed here is illegal. Admins
// never transition bookings through this table.
type transitionEdge struct {
	From BookingStatus
	To   BookingStatus
}

var transitionActors = map[transitionEdge][]UserRole{
	{BookingStatusPending, BookingStatusConfirmed}:    {RoleProvider},
	{BookingStatusPending, BookingStatusRejected}:     {RoleProvider},
	{BookingStatusPending, BookingStatusCancelled}:    {RoleSeeker},
	{BookingStatusConfirmed, BookingStatusInProgress}: {RoleProvider},
	{BookingStatusConfirmed, BookingStatusCancelled}:  {RoleSeeker, RoleProvider},
	{BookingStatusInProgress, BookingStatusCompleted}: {RoleProvider},
	{BookingStatusInProgress, BookingStatusCancelled}: {RoleProvider},
}

// IsTerminal reports whether no further transition is permitted from s.
func IsTerminal(s BookingStatus) bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled || s == BookingStatusRejected
}

type TransitionErrorKind int

const (
	TransitionIllegalEdge TransitionErrorKind = iota
	TransitionUnauthorized
)

type TransitionError struct {
	Kind  TransitionErrorKind
	From  BookingStatus
	To    BookingStatus
	Actor UserRole
}

func (e *TransitionError) Error() string {
	switch e.Kind {
	case TransitionUnauthorized:
		return fmt.Sprintf("role %s cannot transition booking from %s to %s", e.Actor, e.From, e.To)
	default:
		return fmt.Sprintf("illegal booking transition from %s to %s", e.From, e.To)
	}
}

// CanTransition validates a requested status change against the lifecycle
// table. On success it returns the new status; it never mutates anything.
// The caller applies the result and persists it.
func CanTransition(current, requested BookingStatus, actor UserRole) (BookingStatus, error) {
	actors, ok := transitionActors[transitionEdge{From: current, To: requested}]
	if !ok {
		return "", &TransitionError{Kind: TransitionIllegalEdge, From: current, To: requested, Actor: actor}
	}
	for _, role := range actors {
		if role == actor {
			return requested, nil
		}
	}
	return "", &TransitionError{Kind: TransitionUnauthorized, From: current, To: requested, Actor: actor}
}
