package utils

import (
	"time"

	"truckrental-backend/internal/domain"
)

// DurationInDays returns the whole-day span of [startDate, endDate]
// inclusive of both ends: a same-day range has duration 1, and a booking
// from the 1st to the 3rd has duration 3. Time-of-day is ignored.
func DurationInDays(startDate, endDate time.Time) int {
	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start)/(24*time.Hour)) + 1
}

// PriceBooking computes the booking total as durationInDays * dailyRate in
// fixed-point cents. A missing truck or missing date yields zero rather than
// an error; the write path only prices when truck and a full date range are
// present.
func PriceBooking(truck *domain.Truck, startDate, endDate time.Time) domain.Money {
	if truck == nil || startDate.IsZero() || endDate.IsZero() {
		return 0
	}
	return truck.DailyRate.Mul(DurationInDays(startDate, endDate))
}
