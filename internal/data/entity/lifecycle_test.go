package entity

import (
	"errors"
	"testing"
)

var allStatuses = []BookingStatus{
	BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress,
	BookingStatusCompleted, BookingStatusCancelled, BookingStatusRejected,
}

var allRoles = []UserRole{RoleSeeker, RoleProvider, RoleAdmin}

// legalEdges re-declares the lifecycle table independently so the exhaustive
// sweep below catches accidental edits to either copy.
var legalEdges = map[transitionEdge]map[UserRole]bool{
	{BookingStatusPending, BookingStatusConfirmed}:    {RoleProvider: true},
	{BookingStatusPending, BookingStatusRejected}:     {RoleProvider: true},
	{BookingStatusPending, BookingStatusCancelled}:    {RoleSeeker: true},
	{BookingStatusConfirmed, BookingStatusInProgress}: {RoleProvider: true},
	{BookingStatusConfirmed, BookingStatusCancelled}:  {RoleSeeker: true, RoleProvider: true},
	{BookingStatusInProgress, BookingStatusCompleted}: {RoleProvider: true},
	{BookingStatusInProgress, BookingStatusCancelled}: {RoleProvider: true},
}

func TestCanTransition_Exhaustive(t *testing.T) {
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			roles, edgeExists := legalEdges[transitionEdge{from, to}]
			for _, role := range allRoles {
				got, err := CanTransition(from, to, role)

				if edgeExists && roles[role] {
					if err != nil {
						t.Errorf("(%s -> %s, %s): expected success, got %v", from, to, role, err)
						continue
					}
					if got != to {
						t.Errorf("(%s -> %s, %s): expected result %s, got %s", from, to, role, to, got)
					}
					continue
				}

				if err == nil {
					t.Errorf("(%s -> %s, %s): expected error", from, to, role)
					continue
				}
				var terr *TransitionError
				if !errors.As(err, &terr) {
					t.Errorf("(%s -> %s, %s): expected TransitionError, got %T", from, to, role, err)
					continue
				}
				wantKind := TransitionIllegalEdge
				if edgeExists {
					wantKind = TransitionUnauthorized
				}
				if terr.Kind != wantKind {
					t.Errorf("(%s -> %s, %s): expected kind %d, got %d", from, to, role, wantKind, terr.Kind)
				}
				if terr.From != from || terr.To != to {
					t.Errorf("(%s -> %s, %s): error names (%s -> %s)", from, to, role, terr.From, terr.To)
				}
			}
		}
	}
}

func TestCanTransition_AdminNeverAllowed(t *testing.T) {
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			if _, err := CanTransition(from, to, RoleAdmin); err == nil {
				t.Errorf("admin must not transition %s -> %s", from, to)
			}
		}
	}
}

func TestCanTransition_TerminalStatesHaveNoEdges(t *testing.T) {
	for _, from := range allStatuses {
		if !IsTerminal(from) {
			continue
		}
		for _, to := range allStatuses {
			for _, role := range allRoles {
				if _, err := CanTransition(from, to, role); err == nil {
					t.Errorf("terminal %s must not transition to %s as %s", from, to, role)
				}
			}
		}
	}
}

func TestCanTransition_NoSkippingToCompleted(t *testing.T) {
	// completed is only reachable through in_progress
	if _, err := CanTransition(BookingStatusConfirmed, BookingStatusCompleted, RoleProvider); err == nil {
		t.Fatalf("confirmed -> completed must be rejected")
	}
	if _, err := CanTransition(BookingStatusPending, BookingStatusCompleted, RoleProvider); err == nil {
		t.Fatalf("pending -> completed must be rejected")
	}
}

func TestIsTerminal(t *testing.T) {
	terminal := map[BookingStatus]bool{
		BookingStatusCompleted: true,
		BookingStatusCancelled: true,
		BookingStatusRejected:  true,
	}
	for _, s := range allStatuses {
		if IsTerminal(s) != terminal[s] {
			t.Errorf("IsTerminal(%s) = %v, want %v", s, IsTerminal(s), terminal[s])
		}
	}
}

// TestLifecycle_ProviderHappyPath walks the full provider flow: confirm,
// start, complete, then verifies the record is locked.
func TestLifecycle_ProviderHappyPath(t *testing.T) {
	status := BookingStatusPending

	next, err := CanTransition(status, BookingStatusConfirmed, RoleProvider)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	status = next

	// skipping in_progress is not allowed
	if _, err := CanTransition(status, BookingStatusCompleted, RoleProvider); err == nil {
		t.Fatalf("expected confirmed -> completed to fail")
	}

	next, err = CanTransition(status, BookingStatusInProgress, RoleProvider)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	status = next

	next, err = CanTransition(status, BookingStatusCompleted, RoleProvider)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	status = next

	for _, to := range allStatuses {
		for _, role := range allRoles {
			if _, err := CanTransition(status, to, role); err == nil {
				t.Fatalf("completed booking transitioned to %s as %s", to, role)
			}
		}
	}
}

func TestLifecycle_SeekerCannotConfirm(t *testing.T) {
	_, err := CanTransition(BookingStatusPending, BookingStatusConfirmed, RoleSeeker)
	var terr *TransitionError
	if !errors.As(err, &terr) || terr.Kind != TransitionUnauthorized {
		t.Fatalf("expected Unauthorized, got %v", err)
	}
}
