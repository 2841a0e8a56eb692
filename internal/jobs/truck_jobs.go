package jobs

import (
	"context"
	"fmt"
	"time"

	"truckrental-backend/internal/logger"
)

// SendInspectionReminders emails owners whose trucks have an inspection due
// within the next seven days.
func (jr *JobRunner) SendInspectionReminders() {
	jr.runWithRecovery("SendInspectionReminders", func() {
		ctx := context.Background()

		query := `
			SELECT t.truck_number, t.make, t.model, t.next_inspection_date, u.email, u.first_name
			FROM trucks t
			JOIN users u ON u.id = t.owner_id
			WHERE t.next_inspection_date IS NOT NULL
			  AND t.next_inspection_date BETWEEN $1 AND $2
			  AND t.status NOT IN ('retired', 'out_of_service')
		`

		today := time.Now().UTC().Format("2006-01-02")
		horizon := time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")

		rows, err := jr.db.QueryContext(ctx, query, today, horizon)
		if err != nil {
			logger.Error("Failed to query trucks for inspection reminders", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				truckNumber, truckMake, model string
				dueDate                       time.Time
				email, firstName              string
			)
			if err := rows.Scan(&truckNumber, &truckMake, &model, &dueDate, &email, &firstName); err != nil {
				logger.Error("Failed to scan inspection reminder row", "error", err)
				continue
			}

			truckName := fmt.Sprintf("%s - %s %s", truckNumber, truckMake, model)
			if err := jr.services.Email.SendInspectionReminderNotification(ctx, email, firstName, truckName, dueDate); err != nil {
				logger.Warn("Failed to send inspection reminder", "truck", truckNumber, "error", err)
				continue
			}
			count++
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating inspection reminders", "error", err)
			return
		}

		logger.Info("Sent inspection reminders", "count", count)
	})
}
