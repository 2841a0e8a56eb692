// Package availability decides whether a truck can be booked for a date
// range. Everything here is a pure computation over fetched booking records:
// no I/O, no mutation. The caller re-checks inside the storage transaction
// that writes the booking (see repository/postgres), since nothing holds a
// lock between this check and the write.
package availability

import (
	"time"

	"github.com/google/uuid"

	"truckrental-backend/internal/domain"
)

// Overlaps reports whether [aStart, aEnd] and [bStart, bEnd] intersect.
// Both ranges are inclusive on both ends: a booking's last day still
// occupies the truck, so a range starting on another booking's end date
// conflicts.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// IsAvailable reports whether truck can be booked for [startDate, endDate]
// given its existing bookings. A truck whose own status is not "available"
// never satisfies the query, regardless of bookings. Completed and cancelled
// bookings never block. excludeID skips the booking being edited; pass
// uuid.Nil when creating.
//
// The range is assumed well-formed (endDate >= startDate); malformed ranges
// are rejected by validation at the boundary, not here.
func IsAvailable(truck *domain.Truck, bookings []domain.Booking, startDate, endDate time.Time, excludeID uuid.UUID) bool {
	if truck == nil || truck.Status != domain.TruckStatusAvailable {
		return false
	}

	for i := range bookings {
		b := &bookings[i]
		if excludeID != uuid.Nil && b.ID == excludeID {
			continue
		}
		if !b.Blocks() {
			continue
		}
		if Overlaps(startDate, endDate, b.StartDate, b.EndDate) {
			return false
		}
	}
	return true
}

// FilterAvailable returns the trucks bookable for [startDate, endDate],
// preserving input order. Each truck is judged independently against its own
// bookings in bookingsByTruck; trucks with no entry are judged on status
// alone.
func FilterAvailable(trucks []domain.Truck, bookingsByTruck map[uuid.UUID][]domain.Booking, startDate, endDate time.Time) []domain.Truck {
	var available []domain.Truck
	for i := range trucks {
		t := &trucks[i]
		if IsAvailable(t, bookingsByTruck[t.ID], startDate, endDate, uuid.Nil) {
			available = append(available, *t)
		}
	}
	return available
}
