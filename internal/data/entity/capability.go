package entity

import "github.com/google/uuid"

type Action string

const (
	ActionView           Action = "view"
	ActionConfirm        Action = "confirm"
	ActionReject         Action = "reject"
	ActionCancel         Action = "cancel"
	ActionMarkInProgress Action = "mark_in_progress"
	ActionComplete       Action = "complete"
)

// actionTargets maps each mutating action to the status it requests.
var actionTargets = map[Action]BookingStatus{
	ActionConfirm:        BookingStatusConfirmed,
	ActionReject:         BookingStatusRejected,
	ActionCancel:         BookingStatusCancelled,
	ActionMarkInProgress: BookingStatusInProgress,
	ActionComplete:       BookingStatusCompleted,
}

// actionOrder is the stable order used by ActionSet.List.
var actionOrder = []Action{
	ActionView,
	ActionConfirm,
	ActionReject,
	ActionMarkInProgress,
	ActionComplete,
	ActionCancel,
}

// ActionTarget returns the status an action requests, or false for
// non-mutating actions.
func ActionTarget(a Action) (BookingStatus, bool) {
	target, ok := actionTargets[a]
	return target, ok
}

type ActionSet map[Action]struct{}

func (s ActionSet) Has(a Action) bool {
	_, ok := s[a]
	return ok
}

func (s ActionSet) add(a Action) {
	s[a] = struct{}{}
}

// List returns the actions in stable declaration order, for rendering.
func (s ActionSet) List() []Action {
	out := make([]Action, 0, len(s))
	for _, a := range actionOrder {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// ActionsFor resolves what a viewer may do with a booking. It is the single
// source of truth the presentation layer queries, and by construction never
// offers a mutating action that CanTransition would reject.
//
// View is granted to the booking's seeker, its provider, and admins. A
// mutating action requires both the lifecycle edge for the viewer's role and
// an identity match on that side of the record: a provider-role user only
// gets provider actions on bookings they actually own. Admins get view only.
func ActionsFor(b *Booking, viewerRole UserRole, viewerID uuid.UUID) ActionSet {
	set := make(ActionSet)

	isSeeker := viewerID == b.SeekerID
	isProvider := viewerID == b.ProviderID

	if isSeeker || isProvider || viewerRole == RoleAdmin {
		set.add(ActionView)
	}
	if viewerRole == RoleAdmin || IsTerminal(b.Status) {
		return set
	}

	sideMatches := (viewerRole == RoleSeeker && isSeeker) ||
		(viewerRole == RoleProvider && isProvider)
	if !sideMatches {
		return set
	}

	for action, target := range actionTargets {
		if _, err := CanTransition(b.Status, target, viewerRole); err == nil {
			set.add(action)
		}
	}
	return set
}
