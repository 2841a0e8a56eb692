package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending     PaymentStatus = "pending"
	PaymentStatusDepositPaid PaymentStatus = "deposit_paid"
	PaymentStatusPaid        PaymentStatus = "paid"
	PaymentStatusRefunded    PaymentStatus = "refunded"
	PaymentStatusFailed      PaymentStatus = "failed"
)

// ErrInvalidTransition is returned when a booking is asked to move along an
// edge the state machine does not define (including any move out of the
// terminal completed/cancelled states).
var ErrInvalidTransition = errors.New("invalid status transition")

type Booking struct {
	ID                 uuid.UUID     `json:"id"`
	BookingNumber      string        `json:"bookingNumber"`
	TruckID            uuid.UUID     `json:"truckId"`
	RenterID           uuid.UUID     `json:"renterId"`
	StartDate          time.Time     `json:"startDate"`
	EndDate            time.Time     `json:"endDate"`
	TotalAmount        Money         `json:"totalAmount"`
	DepositAmount      *Money        `json:"depositAmount,omitempty"`
	Status             BookingStatus `json:"status"`
	PaymentStatus      PaymentStatus `json:"paymentStatus"`
	Notes              string        `json:"notes,omitempty"`
	PickupLocation     string        `json:"pickupLocation,omitempty"`
	DropoffLocation    string        `json:"dropoffLocation,omitempty"`
	Purpose            string        `json:"purpose,omitempty"`
	ConfirmedAt        *time.Time    `json:"confirmedAt,omitempty"`
	CancelledAt        *time.Time    `json:"cancelledAt,omitempty"`
	CancellationReason string        `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}

// NewBooking creates a pending booking with a fresh identity and its derived
// booking number.
func NewBooking(truckID, renterID uuid.UUID, startDate, endDate time.Time) *Booking {
	id := uuid.New()
	now := time.Now().UTC()
	return &Booking{
		ID:            id,
		BookingNumber: GenerateBookingNumber(id),
		TruckID:       truckID,
		RenterID:      renterID,
		StartDate:     startDate,
		EndDate:       endDate,
		Status:        BookingStatusPending,
		PaymentStatus: PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// GenerateBookingNumber derives the human-facing booking number from the
// last 10 characters of the id's canonical string form, upper-cased. It is
// stable per identity; uniqueness rides on the identity's uniqueness.
func GenerateBookingNumber(id uuid.UUID) string {
	s := id.String()
	return "BK-" + strings.ToUpper(s[len(s)-10:])
}

// bookingTransitions defines the allowed status edges. completed and
// cancelled are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:    {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed:  {BookingStatusInProgress, BookingStatusCancelled},
	BookingStatusInProgress: {BookingStatusCompleted},
}

// paymentTransitions defines the allowed payment edges. Payment state is
// driven externally (payment webhooks) and carries no coupling to Status.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending:     {PaymentStatusDepositPaid, PaymentStatusPaid, PaymentStatusFailed},
	PaymentStatusDepositPaid: {PaymentStatusPaid, PaymentStatusFailed},
	PaymentStatusPaid:        {PaymentStatusRefunded, PaymentStatusFailed},
}

func transitionAllowed[S comparable](edges map[S][]S, from, to S) bool {
	for _, next := range edges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionStatus moves the booking to next, stamping ConfirmedAt or
// CancelledAt the first time those states are entered. The timestamps are
// set exactly once and never cleared or overwritten. Re-entering the current
// status is a no-op.
func (b *Booking) TransitionStatus(next BookingStatus, at time.Time) error {
	if next == b.Status {
		return nil
	}
	if !transitionAllowed(bookingTransitions, b.Status, next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, next)
	}

	b.Status = next
	switch next {
	case BookingStatusConfirmed:
		if b.ConfirmedAt == nil {
			t := at
			b.ConfirmedAt = &t
		}
	case BookingStatusCancelled:
		if b.CancelledAt == nil {
			t := at
			b.CancelledAt = &t
		}
	}
	b.UpdatedAt = at
	return nil
}

// TransitionPaymentStatus moves the payment state along its own machine.
func (b *Booking) TransitionPaymentStatus(next PaymentStatus, at time.Time) error {
	if next == b.PaymentStatus {
		return nil
	}
	if !transitionAllowed(paymentTransitions, b.PaymentStatus, next) {
		return fmt.Errorf("%w: payment %s -> %s", ErrInvalidTransition, b.PaymentStatus, next)
	}
	b.PaymentStatus = next
	b.UpdatedAt = at
	return nil
}

// CanBeCancelled reports whether the write path may transition the booking
// to cancelled. It is a gate for callers; TransitionStatus enforces the same
// edges.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// IsActive reports whether the booking is confirmed.
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusConfirmed
}

// DurationInDays returns the booked span in whole days, inclusive of both
// the start and end day; a same-day booking has duration 1. Missing dates
// yield 0.
func (b *Booking) DurationInDays() int {
	if b.StartDate.IsZero() || b.EndDate.IsZero() {
		return 0
	}
	start := dateOnly(b.StartDate)
	end := dateOnly(b.EndDate)
	return int(end.Sub(start)/(24*time.Hour)) + 1
}

// Blocks reports whether this booking occupies its truck for availability
// purposes. Completed and cancelled bookings never block.
func (b *Booking) Blocks() bool {
	switch b.Status {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress:
		return true
	}
	return false
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
