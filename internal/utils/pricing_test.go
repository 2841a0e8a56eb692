package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"truckrental-backend/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestDurationInDays(t *testing.T) {
	assert.Equal(t, 3, DurationInDays(day(10), day(12)))
	assert.Equal(t, 1, DurationInDays(day(10), day(10)))
	assert.Equal(t, 6, DurationInDays(day(10), day(15)))
}

func TestDurationInDays_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2025, 1, 10, 23, 45, 0, 0, time.UTC)
	end := time.Date(2025, 1, 12, 0, 5, 0, 0, time.UTC)
	assert.Equal(t, 3, DurationInDays(start, end))
}

func TestPriceBooking(t *testing.T) {
	rate, err := domain.ParseMoney("100.00")
	assert.NoError(t, err)
	truck := &domain.Truck{DailyRate: rate}

	// Three inclusive days at 100.00/day.
	total := PriceBooking(truck, day(10), day(12))
	assert.Equal(t, "300.00", total.String())

	// A same-day booking is one day.
	total = PriceBooking(truck, day(10), day(10))
	assert.Equal(t, "100.00", total.String())
}

func TestPriceBooking_FractionalRate(t *testing.T) {
	rate, err := domain.ParseMoney("99.95")
	assert.NoError(t, err)
	truck := &domain.Truck{DailyRate: rate}

	total := PriceBooking(truck, day(1), day(3))
	assert.Equal(t, "299.85", total.String())
}

func TestPriceBooking_MissingInputs(t *testing.T) {
	truck := &domain.Truck{DailyRate: domain.Money(10000)}

	assert.Equal(t, domain.Money(0), PriceBooking(nil, day(1), day(2)))
	assert.Equal(t, domain.Money(0), PriceBooking(truck, time.Time{}, day(2)))
	assert.Equal(t, domain.Money(0), PriceBooking(truck, day(1), time.Time{}))
}
