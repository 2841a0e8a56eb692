package availability

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"truckrental-backend/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"disjoint before", day(1), day(5), day(6), day(10), false},
		{"disjoint after", day(6), day(10), day(1), day(5), false},
		{"partial overlap", day(10), day(15), day(12), day(20), true},
		{"contained", day(10), day(20), day(12), day(15), true},
		{"containing", day(12), day(15), day(10), day(20), true},
		{"identical", day(10), day(15), day(10), day(15), true},
		{"shared boundary day", day(15), day(18), day(10), day(15), true},
		{"single day vs end date", day(15), day(15), day(10), day(15), true},
		{"adjacent day apart", day(16), day(20), day(10), day(15), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			// Intersection is symmetric.
			assert.Equal(t, tc.want, Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}

func availableTruck() *domain.Truck {
	return &domain.Truck{ID: uuid.New(), Status: domain.TruckStatusAvailable}
}

func TestIsAvailable_NoBookings(t *testing.T) {
	assert.True(t, IsAvailable(availableTruck(), nil, day(1), day(5), uuid.Nil))
}

func TestIsAvailable_TruckStatusGuard(t *testing.T) {
	for _, status := range []domain.TruckStatus{
		domain.TruckStatusRented,
		domain.TruckStatusInMaintenance,
		domain.TruckStatusOutOfService,
		domain.TruckStatusRetired,
	} {
		t.Run(string(status), func(t *testing.T) {
			truck := &domain.Truck{ID: uuid.New(), Status: status}
			assert.False(t, IsAvailable(truck, nil, day(1), day(5), uuid.Nil))
		})
	}
}

func TestIsAvailable_NilTruck(t *testing.T) {
	assert.False(t, IsAvailable(nil, nil, day(1), day(5), uuid.Nil))
}

func TestIsAvailable_BlockingOverlap(t *testing.T) {
	truck := availableTruck()
	confirmed := []domain.Booking{{
		ID:        uuid.New(),
		Status:    domain.BookingStatusConfirmed,
		StartDate: day(10),
		EndDate:   day(15),
	}}

	// Overlapping request is rejected.
	assert.False(t, IsAvailable(truck, confirmed, day(12), day(20), uuid.Nil))
	// Request starting on the booking's end date still conflicts.
	assert.False(t, IsAvailable(truck, confirmed, day(15), day(15), uuid.Nil))
	// The day after is free.
	assert.True(t, IsAvailable(truck, confirmed, day(16), day(20), uuid.Nil))
}

func TestIsAvailable_NonBlockingStatuses(t *testing.T) {
	truck := availableTruck()
	bookings := []domain.Booking{
		{ID: uuid.New(), Status: domain.BookingStatusCompleted, StartDate: day(10), EndDate: day(15)},
		{ID: uuid.New(), Status: domain.BookingStatusCancelled, StartDate: day(10), EndDate: day(15)},
	}

	assert.True(t, IsAvailable(truck, bookings, day(10), day(15), uuid.Nil))
}

func TestIsAvailable_PendingBlocks(t *testing.T) {
	truck := availableTruck()
	bookings := []domain.Booking{
		{ID: uuid.New(), Status: domain.BookingStatusPending, StartDate: day(10), EndDate: day(15)},
	}

	assert.False(t, IsAvailable(truck, bookings, day(14), day(18), uuid.Nil))
}

func TestIsAvailable_ExcludeSelf(t *testing.T) {
	truck := availableTruck()
	editedID := uuid.New()
	bookings := []domain.Booking{{
		ID:        editedID,
		Status:    domain.BookingStatusConfirmed,
		StartDate: day(10),
		EndDate:   day(15),
	}}

	// Editing the booking itself: its own range must not count against it.
	assert.True(t, IsAvailable(truck, bookings, day(12), day(18), editedID))
	// A different booking editing into the same window still conflicts.
	assert.False(t, IsAvailable(truck, bookings, day(12), day(18), uuid.New()))
}

func TestFilterAvailable_PreservesOrder(t *testing.T) {
	free1 := availableTruck()
	busy := availableTruck()
	free2 := availableTruck()
	maintenance := &domain.Truck{ID: uuid.New(), Status: domain.TruckStatusInMaintenance}

	bookingsByTruck := map[uuid.UUID][]domain.Booking{
		busy.ID: {{
			ID:        uuid.New(),
			Status:    domain.BookingStatusConfirmed,
			StartDate: day(10),
			EndDate:   day(15),
		}},
	}

	got := FilterAvailable(
		[]domain.Truck{*free1, *busy, *free2, *maintenance},
		bookingsByTruck,
		day(12), day(14),
	)

	assert.Len(t, got, 2)
	assert.Equal(t, free1.ID, got[0].ID)
	assert.Equal(t, free2.ID, got[1].ID)
}

func TestFilterAvailable_Empty(t *testing.T) {
	assert.Empty(t, FilterAvailable(nil, nil, day(1), day(2)))
}
