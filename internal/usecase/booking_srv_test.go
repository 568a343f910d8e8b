package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"estate-marketplace/internal/data/entity"
	"estate-marketplace/internal/data/repository"
	"estate-marketplace/internal/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking

	// swapTo, when set, flips the stored status right before a guarded
	// update so the guard sees a stale expectation.
	swapTo entity.BookingStatus
}

func newFakeBookingRepo(bookings ...*entity.Booking) *fakeBookingRepo {
	r := &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
	for _, b := range bookings {
		copied := *b
		r.bookings[b.ID] = &copied
	}
	return r
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) FindForUser(_ context.Context, userID uuid.UUID, status *entity.BookingStatus, _, _ int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range r.bookings {
		if b.SeekerID != userID && b.ProviderID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeBookingRepo) CountForUser(ctx context.Context, userID uuid.UUID, status *entity.BookingStatus) (int64, error) {
	list, _ := r.FindForUser(ctx, userID, status, 0, 0)
	return int64(len(list)), nil
}

func (r *fakeBookingRepo) UpdateStatusGuarded(_ context.Context, bookingID uuid.UUID, expected, next entity.BookingStatus) error {
	b, ok := r.bookings[bookingID]
	if !ok {
		return nil
	}
	if r.swapTo != "" {
		b.Status = r.swapTo
	}
	if b.Status != expected {
		return fmt.Errorf("booking %s: %w", bookingID, entity.ErrConflict)
	}
	b.Status = next
	b.UpdatedAt = time.Now()
	return nil
}

func (r *fakeBookingRepo) UpdatePaymentStatus(_ context.Context, bookingID uuid.UUID, status entity.PaymentStatus) error {
	if b, ok := r.bookings[bookingID]; ok {
		b.PaymentStatus = status
	}
	return nil
}

type fakeServiceRepo struct {
	services map[uuid.UUID]*entity.Service
}

func newFakeServiceRepo(services ...*entity.Service) *fakeServiceRepo {
	r := &fakeServiceRepo{services: make(map[uuid.UUID]*entity.Service)}
	for _, svc := range services {
		r.services[svc.ID] = svc
	}
	return r
}

func (r *fakeServiceRepo) Create(_ context.Context, svc *entity.Service) error {
	r.services[svc.ID] = svc
	return nil
}

func (r *fakeServiceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Service, error) {
	return r.services[id], nil
}

func (r *fakeServiceRepo) FindAll(context.Context, int, int, *string) ([]*entity.Service, error) {
	return nil, nil
}

func (r *fakeServiceRepo) CountAll(context.Context, *string) (int64, error) { return 0, nil }

func (r *fakeServiceRepo) FindByProviderID(context.Context, uuid.UUID, int, int) ([]*entity.Service, error) {
	return nil, nil
}

func (r *fakeServiceRepo) Update(context.Context, *entity.Service) error { return nil }
func (r *fakeServiceRepo) Delete(context.Context, uuid.UUID) error       { return nil }

type fakeNotificationRepo struct {
	created []*entity.Notification
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	r.created = append(r.created, n)
	return nil
}

func (r *fakeNotificationRepo) FindByUserID(context.Context, uuid.UUID, int, int) ([]*entity.Notification, error) {
	return nil, nil
}

func (r *fakeNotificationRepo) CountByUserID(context.Context, uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *fakeNotificationRepo) CountUnread(context.Context, uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *fakeNotificationRepo) MarkRead(context.Context, uuid.UUID, uuid.UUID) error { return nil }
func (r *fakeNotificationRepo) MarkAllRead(context.Context, uuid.UUID) error         { return nil }

type bookingFixture struct {
	svc           BookingService
	bookings      *fakeBookingRepo
	notifications *fakeNotificationRepo

	seekerID   uuid.UUID
	providerID uuid.UUID
	serviceID  uuid.UUID
	bookingID  uuid.UUID
}

func newBookingFixture(t *testing.T, status entity.BookingStatus, payment entity.PaymentStatus) *bookingFixture {
	t.Helper()

	seekerID := uuid.New()
	providerID := uuid.New()

	service := &entity.Service{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		ProviderID: providerID,
		Title:      "Deep Cleaning",
		Category:   "cleaning",
		Price:      decimal.NewFromInt(50),
		IsActive:   true,
	}

	booking := &entity.Booking{
		Base:          entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		ServiceID:     service.ID,
		SeekerID:      seekerID,
		ProviderID:    providerID,
		ScheduledAt:   time.Now().Add(48 * time.Hour),
		DurationHours: 2,
		Status:        status,
		TotalPrice:    decimal.NewFromInt(100),
		PaymentStatus: payment,
	}

	bookingRepo := newFakeBookingRepo(booking)
	notificationRepo := &fakeNotificationRepo{}
	repo := &repository.Repository{
		Booking:      bookingRepo,
		Service:      newFakeServiceRepo(service),
		Notification: notificationRepo,
	}

	return &bookingFixture{
		svc:           NewBookingService(repo, zap.NewNop()),
		bookings:      bookingRepo,
		notifications: notificationRepo,
		seekerID:      seekerID,
		providerID:    providerID,
		serviceID:     service.ID,
		bookingID:     booking.ID,
	}
}

func TestTransitionBooking_ProviderConfirms(t *testing.T) {
	f := newBookingFixture(t, entity.BookingStatusPending, entity.PaymentStatusPending)

	resp, err := f.svc.TransitionBooking(context.Background(), f.providerID.String(), "provider", f.bookingID.String(),
		&request.TransitionBookingRequest{Status: "confirmed"})
	if err != nil {
		t.Fatalf("TransitionBooking() error = %v", err)
	}
	if resp.Status != entity.BookingStatusConfirmed {
		t.Errorf("status = %q, want confirmed", resp.Status)
	}

	stored, _ := f.bookings.FindByID(context.Background(), f.bookingID)
	if stored.Status != entity.BookingStatusConfirmed {
		t.Errorf("stored status = %q, want confirmed", stored.Status)
	}

	if len(f.notifications.created) != 1 {
		t.Fatalf("notifications = %d, want 1", len(f.notifications.created))
	}
	if got := f.notifications.created[0].UserID; got != f.seekerID {
		t.Errorf("notification went to %s, want seeker %s", got, f.seekerID)
	}
}

func TestTransitionBooking_SeekerCannotConfirm(t *testing.T) {
	f := newBookingFixture(t, entity.BookingStatusPending, entity.PaymentStatusPending)

	_, err := f.svc.TransitionBooking(context.Background(), f.seekerID.String(), "seeker", f.bookingID.String(),
		&request.TransitionBookingRequest{Status: "confirmed"})

	var terr *entity.TransitionError
	if !errors.As(err, &terr) {
		t.Fatalf("error = %v, want TransitionError", err)
	}
	if terr.Kind != entity.TransitionUnauthorized {
		t.Errorf("kind = %v, want TransitionUnauthorized", terr.Kind)
	}

	stored, _ := f.bookings.FindByID(context.Background(), f.bookingID)
	if stored.Status != entity.BookingStatusPending {
		t.Errorf("stored status = %q, rejected transition must not write", stored.Status)
	}
}

func TestTransitionBooking_IllegalEdge(t *testing.T) {
	f := newBookingFixture(t, entity.BookingStatusPending, entity.PaymentStatusPending)

	_, err := f.svc.TransitionBooking(context.Background(), f.providerID.String(), "provider", f.bookingID.String(),
		&request.TransitionBookingRequest{Status: "completed"})

	var terr *entity.TransitionError
	if !errors.As(err, &terr) {
		t.Fatalf("error = %v, want TransitionError", err)
	}
	if terr.Kind != entity.TransitionIllegalEdge {
		t.Errorf("kind = %v, want TransitionIllegalEdge", terr.Kind)
	}
}

func TestTransitionBooking_WrongProviderAccount(t *testing.T) {
	f := newBookingFixture(t, entity.BookingStatusPending, entity.PaymentStatusPending)

	// A verified provider who is not this record's provider holds the
	// right role but sits on neither side of the booking.
	stranger := uuid.New()
	_, err := f.svc.TransitionBooking(context.Background(), stranger.String(), "provider", f.bookingID.String(),
		&request.TransitionBookingRequest{Status: "confirmed"})

	var terr *entity.TransitionError
	if !errors.As(err, &terr) {
		t.Fatalf("error = %v, want TransitionError", err)
	}
	if terr.Kind != entity.TransitionUnauthorized {
		t.Errorf("kind = %v, want TransitionUnauthorized", terr.Kind)
	}
}

func TestTransitionBooking_RejectionRequiresReason(t *testing.T) {
	f := newBookingFixture(t, entity.BookingStatusPending, entity.PaymentStatusPending)

	_, err := f.svc.TransitionBooking(context.Background(), f.providerID.String(), "provider", f.bookingID.String(),
		&request.TransitionBookingRequest{Status: "rejected"})
	if err == nil {
		t.Fatal("rejection without a reason must fail validation")
	}

	resp, err := f.svc.TransitionBooking(context.Background(), f.providerID.String(), "provider", f.bookingID.String(),
		&request.TransitionBookingRequest{Status: "rejected", Reason: "fully booked that day"})
	if err != nil {
		t.Fatalf("TransitionBooking() with reason error = %v", err)
	}
	if resp.Status != entity.BookingStatusRejected {
		t.Errorf("status = %q, want rejected", resp.Status)
	}
}

func TestTransitionBooking_ConcurrentWriterWins(t *testing.T) {
	f := newBookingFixture(t, entity.BookingStatusPending, entity.PaymentStatusPending)
	f.bookings.swapTo = entity.BookingStatusCancelled

	_, err := f.svc.TransitionBooking(context.Background(), f.providerID.String(), "provider", f.bookingID.String(),
		&request.TransitionBookingRequest{Status: "confirmed"})
	if !errors.Is(err, entity.ErrConflict) {
		t.Fatalf("error = %v, want ErrConflict", err)
	}

	stored, _ := f.bookings.FindByID(context.Background(), f.bookingID)
	if stored.Status != entity.BookingStatusCancelled {
		t.Errorf("stored status = %q, the first writer's cancellation must stand", stored.Status)
	}
}

func TestTransitionBooking_CancelPaidBookingRefunds(t *testing.T) {
	f := newBookingFixture(t, entity.BookingStatusConfirmed, entity.PaymentStatusCompleted)

	resp, err := f.svc.TransitionBooking(context.Background(), f.seekerID.String(), "seeker", f.bookingID.String(),
		&request.TransitionBookingRequest{Status: "cancelled", Reason: "plans changed"})
	if err != nil {
		t.Fatalf("TransitionBooking() error = %v", err)
	}
	if resp.PaymentStatus != entity.PaymentStatusRefunded {
		t.Errorf("payment status = %q, want refunded", resp.PaymentStatus)
	}
}

func TestTransitionBooking_AdminCannotMutate(t *testing.T) {
	f := newBookingFixture(t, entity.BookingStatusPending, entity.PaymentStatusPending)

	admin := uuid.New()
	_, err := f.svc.TransitionBooking(context.Background(), admin.String(), "admin", f.bookingID.String(),
		&request.TransitionBookingRequest{Status: "confirmed"})

	var terr *entity.TransitionError
	if !errors.As(err, &terr) {
		t.Fatalf("error = %v, want TransitionError", err)
	}
}

func TestCreateBooking_PricesFromService(t *testing.T) {
	f := newBookingFixture(t, entity.BookingStatusPending, entity.PaymentStatusPending)

	resp, err := f.svc.CreateBooking(context.Background(), f.seekerID.String(), &request.CreateBookingRequest{
		ServiceID:     f.serviceID.String(),
		ScheduledAt:   time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		DurationHours: 3,
	})
	if err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}
	if resp.TotalPrice != "150.00" {
		t.Errorf("total price = %q, want 150.00 (50/hr x 3h)", resp.TotalPrice)
	}
	if resp.Status != entity.BookingStatusPending {
		t.Errorf("status = %q, new bookings start pending", resp.Status)
	}
	if len(f.notifications.created) != 1 || f.notifications.created[0].UserID != f.providerID {
		t.Error("provider must be notified of the new booking")
	}
}

func TestCreateBooking_ProviderCannotBookOwnService(t *testing.T) {
	f := newBookingFixture(t, entity.BookingStatusPending, entity.PaymentStatusPending)

	_, err := f.svc.CreateBooking(context.Background(), f.providerID.String(), &request.CreateBookingRequest{
		ServiceID:     f.serviceID.String(),
		ScheduledAt:   time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		DurationHours: 1,
	})

	var verr *entity.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if verr.Field != "seeker_id" {
		t.Errorf("field = %q, want seeker_id", verr.Field)
	}
}

func TestCreateBooking_PastScheduleRejected(t *testing.T) {
	f := newBookingFixture(t, entity.BookingStatusPending, entity.PaymentStatusPending)

	_, err := f.svc.CreateBooking(context.Background(), f.seekerID.String(), &request.CreateBookingRequest{
		ServiceID:     f.serviceID.String(),
		ScheduledAt:   time.Now().Add(-time.Hour).Format(time.RFC3339),
		DurationHours: 1,
	})
	if err == nil {
		t.Fatal("booking in the past must fail")
	}
}

func TestGetBookings_StatusFilter(t *testing.T) {
	f := newBookingFixture(t, entity.BookingStatusPending, entity.PaymentStatusPending)

	confirmed := "confirmed"
	page, err := f.svc.GetBookings(context.Background(), f.seekerID.String(), "seeker", &confirmed,
		&request.PaginatedRequest{Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("GetBookings() error = %v", err)
	}
	if len(page.Data) != 0 {
		t.Errorf("confirmed filter on a pending booking returned %d rows", len(page.Data))
	}

	pending := "pending"
	page, err = f.svc.GetBookings(context.Background(), f.seekerID.String(), "seeker", &pending,
		&request.PaginatedRequest{Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("GetBookings() error = %v", err)
	}
	if len(page.Data) != 1 {
		t.Fatalf("pending filter returned %d rows, want 1", len(page.Data))
	}
	if !containsAction(page.Data[0].Actions, entity.ActionCancel) {
		t.Errorf("seeker actions = %v, want cancel included", page.Data[0].Actions)
	}
	if containsAction(page.Data[0].Actions, entity.ActionConfirm) {
		t.Errorf("seeker actions = %v, confirm is the provider's move", page.Data[0].Actions)
	}
}

func TestGetBookingByID_StrangerDenied(t *testing.T) {
	f := newBookingFixture(t, entity.BookingStatusPending, entity.PaymentStatusPending)

	stranger := uuid.New()
	_, err := f.svc.GetBookingByID(context.Background(), stranger.String(), "seeker", f.bookingID.String())
	if err == nil {
		t.Fatal("a third party must not read someone else's booking")
	}
}

func TestUpdatePaymentStatus_SeekerDenied(t *testing.T) {
	f := newBookingFixture(t, entity.BookingStatusConfirmed, entity.PaymentStatusPending)

	_, err := f.svc.UpdatePaymentStatus(context.Background(), f.seekerID.String(), f.bookingID.String(),
		&request.UpdatePaymentStatusRequest{PaymentStatus: "completed"})
	if err == nil {
		t.Fatal("only the provider records payments")
	}

	resp, err := f.svc.UpdatePaymentStatus(context.Background(), f.providerID.String(), f.bookingID.String(),
		&request.UpdatePaymentStatusRequest{PaymentStatus: "completed"})
	if err != nil {
		t.Fatalf("UpdatePaymentStatus() error = %v", err)
	}
	if resp.PaymentStatus != entity.PaymentStatusCompleted {
		t.Errorf("payment status = %q, want completed", resp.PaymentStatus)
	}
}

func containsAction(actions []entity.Action, want entity.Action) bool {
	for _, a := range actions {
		if a == want {
			return true
		}
	}
	return false
}
