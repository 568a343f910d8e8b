package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func testBooking(status BookingStatus) *Booking {
	now := time.Now()
	return &Booking{
		Base: Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ServiceID:     uuid.New(),
		SeekerID:      uuid.New(),
		ProviderID:    uuid.New(),
		ScheduledAt:   now.Add(24 * time.Hour),
		DurationHours: 1,
		Status:        status,
		TotalPrice:    decimal.RequireFromString("80.00"),
		PaymentStatus: PaymentStatusPending,
	}
}

func TestActionsFor_NeverDisagreesWithValidator(t *testing.T) {
	// Every mutating action the resolver offers must pass CanTransition for
	// the same (status, role) pair, for every status and every role side.
	for _, status := range allStatuses {
		b := testBooking(status)
		viewers := []struct {
			role UserRole
			id   uuid.UUID
		}{
			{RoleSeeker, b.SeekerID},
			{RoleProvider, b.ProviderID},
			{RoleAdmin, uuid.New()},
		}
		for _, v := range viewers {
			for _, action := range ActionsFor(b, v.role, v.id).List() {
				if action == ActionView {
					continue
				}
				target, ok := ActionTarget(action)
				if !ok {
					t.Fatalf("mutating action %s has no target", action)
				}
				if _, err := CanTransition(b.Status, target, v.role); err != nil {
					t.Errorf("status %s: resolver offers %s to %s but validator rejects: %v",
						status, action, v.role, err)
				}
			}
		}
	}
}

func TestActionsFor_View(t *testing.T) {
	b := testBooking(BookingStatusPending)

	cases := []struct {
		name     string
		role     UserRole
		id       uuid.UUID
		wantView bool
	}{
		{"seeker side", RoleSeeker, b.SeekerID, true},
		{"provider side", RoleProvider, b.ProviderID, true},
		{"admin anywhere", RoleAdmin, uuid.New(), true},
		{"unrelated seeker", RoleSeeker, uuid.New(), false},
		{"unrelated provider", RoleProvider, uuid.New(), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			set := ActionsFor(b, tc.role, tc.id)
			if set.Has(ActionView) != tc.wantView {
				t.Fatalf("view = %v, want %v", set.Has(ActionView), tc.wantView)
			}
		})
	}
}

func TestActionsFor_PendingBooking(t *testing.T) {
	b := testBooking(BookingStatusPending)

	provider := ActionsFor(b, RoleProvider, b.ProviderID)
	for _, want := range []Action{ActionView, ActionConfirm, ActionReject} {
		if !provider.Has(want) {
			t.Errorf("provider missing %s on pending booking", want)
		}
	}
	if provider.Has(ActionCancel) || provider.Has(ActionComplete) || provider.Has(ActionMarkInProgress) {
		t.Errorf("provider offered extra actions on pending booking: %v", provider.List())
	}

	seeker := ActionsFor(b, RoleSeeker, b.SeekerID)
	if !seeker.Has(ActionView) || !seeker.Has(ActionCancel) {
		t.Errorf("seeker should get view+cancel on pending booking, got %v", seeker.List())
	}
	if len(seeker) != 2 {
		t.Errorf("seeker should get exactly view+cancel, got %v", seeker.List())
	}
}

func TestActionsFor_ConfirmedBooking(t *testing.T) {
	b := testBooking(BookingStatusConfirmed)

	provider := ActionsFor(b, RoleProvider, b.ProviderID)
	for _, want := range []Action{ActionView, ActionMarkInProgress, ActionCancel} {
		if !provider.Has(want) {
			t.Errorf("provider missing %s on confirmed booking", want)
		}
	}
	if provider.Has(ActionComplete) {
		t.Errorf("complete must not be offered before in_progress")
	}

	seeker := ActionsFor(b, RoleSeeker, b.SeekerID)
	if !seeker.Has(ActionCancel) {
		t.Errorf("seeker should be able to cancel a confirmed booking")
	}
}

func TestActionsFor_TerminalAtMostView(t *testing.T) {
	for _, status := range []BookingStatus{BookingStatusCompleted, BookingStatusCancelled, BookingStatusRejected} {
		b := testBooking(status)
		viewers := []struct {
			role UserRole
			id   uuid.UUID
		}{
			{RoleSeeker, b.SeekerID},
			{RoleProvider, b.ProviderID},
			{RoleAdmin, uuid.New()},
			{RoleSeeker, uuid.New()},
		}
		for _, v := range viewers {
			set := ActionsFor(b, v.role, v.id)
			if len(set) > 1 || (len(set) == 1 && !set.Has(ActionView)) {
				t.Errorf("terminal %s: %s got %v, want at most view", status, v.role, set.List())
			}
		}
	}
}

func TestActionsFor_AdminViewOnly(t *testing.T) {
	for _, status := range allStatuses {
		b := testBooking(status)
		set := ActionsFor(b, RoleAdmin, uuid.New())
		if len(set) != 1 || !set.Has(ActionView) {
			t.Errorf("status %s: admin got %v, want exactly view", status, set.List())
		}
	}
}

func TestActionsFor_RequiresIdentityMatch(t *testing.T) {
	// A provider-role user who does not own the booked service gets no
	// mutating actions even though the role alone would satisfy the edge.
	b := testBooking(BookingStatusPending)
	set := ActionsFor(b, RoleProvider, uuid.New())
	if len(set) != 0 {
		t.Fatalf("unrelated provider got %v, want nothing", set.List())
	}
}

func TestActionSet_ListStableOrder(t *testing.T) {
	b := testBooking(BookingStatusPending)
	set := ActionsFor(b, RoleProvider, b.ProviderID)

	list := set.List()
	want := []Action{ActionView, ActionConfirm, ActionReject}
	if len(list) != len(want) {
		t.Fatalf("got %v, want %v", list, want)
	}
	for i := range want {
		if list[i] != want[i] {
			t.Fatalf("got %v, want %v", list, want)
		}
	}
}
