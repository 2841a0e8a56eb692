package jobs

import (
	"context"
	"time"

	"truckrental-backend/internal/logger"
)

// StartDueBookings moves confirmed bookings into in_progress once their
// start date arrives. The edge confirmed -> in_progress is the only one the
// UPDATE can take, so the status machine holds by construction.
func (jr *JobRunner) StartDueBookings() {
	jr.runWithRecovery("StartDueBookings", func() {
		ctx := context.Background()

		query := `
			UPDATE bookings
			SET status = 'in_progress',
			    updated_at = NOW()
			WHERE status = 'confirmed'
			  AND start_date <= $1
			RETURNING id, booking_number, truck_id
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().UTC().Format("2006-01-02"))
		if err != nil {
			logger.Error("Failed to start due bookings", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				id, truckID   string
				bookingNumber string
			)
			if err := rows.Scan(&id, &bookingNumber, &truckID); err != nil {
				logger.Error("Failed to scan started booking", "error", err)
				continue
			}
			logger.Debug("Booking started", "booking_id", id, "booking_number", bookingNumber, "truck_id", truckID)
			count++
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating started bookings", "error", err)
			return
		}

		logger.Info("Started due bookings", "count", count)
	})
}

// CompleteElapsedBookings moves in_progress bookings to completed once their
// end date has passed.
func (jr *JobRunner) CompleteElapsedBookings() {
	jr.runWithRecovery("CompleteElapsedBookings", func() {
		ctx := context.Background()

		query := `
			UPDATE bookings
			SET status = 'completed',
			    updated_at = NOW()
			WHERE status = 'in_progress'
			  AND end_date < $1
			RETURNING id, booking_number, truck_id
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().UTC().Format("2006-01-02"))
		if err != nil {
			logger.Error("Failed to complete elapsed bookings", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				id, truckID   string
				bookingNumber string
			)
			if err := rows.Scan(&id, &bookingNumber, &truckID); err != nil {
				logger.Error("Failed to scan completed booking", "error", err)
				continue
			}
			logger.Debug("Booking completed", "booking_id", id, "booking_number", bookingNumber, "truck_id", truckID)
			count++
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating completed bookings", "error", err)
			return
		}

		logger.Info("Completed elapsed bookings", "count", count)
	})
}
