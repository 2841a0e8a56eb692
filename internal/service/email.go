package service

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"truckrental-backend/internal/domain"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendBookingRequestNotification(ctx context.Context, ownerEmail, renterName, truckName, bookingNumber string) error {
	subject := fmt.Sprintf("New booking request %s", bookingNumber)
	body := fmt.Sprintf("Hello,\n\n%s has requested to book your truck %s (booking %s).\n\nPlease review and confirm the booking.\n\nBest regards,\nThe TruckRental Team",
		renterName, truckName, bookingNumber)
	return s.send(ownerEmail, subject, body)
}

func (s *emailService) SendBookingConfirmationNotification(ctx context.Context, renterEmail, truckName, bookingNumber string) error {
	subject := fmt.Sprintf("Booking %s confirmed", bookingNumber)
	body := fmt.Sprintf("Hello,\n\nYour booking %s for truck %s has been confirmed.\n\nBest regards,\nThe TruckRental Team",
		bookingNumber, truckName)
	return s.send(renterEmail, subject, body)
}

func (s *emailService) SendBookingCancellationNotification(ctx context.Context, email, truckName, bookingNumber, reason string) error {
	subject := fmt.Sprintf("Booking %s cancelled", bookingNumber)
	body := fmt.Sprintf("Hello,\n\nBooking %s for truck %s has been cancelled.", bookingNumber, truckName)
	if reason != "" {
		body += fmt.Sprintf("\n\nReason: %s", reason)
	}
	body += "\n\nBest regards,\nThe TruckRental Team"
	return s.send(email, subject, body)
}

func (s *emailService) SendBookingCompletionNotification(ctx context.Context, renterEmail, truckName, bookingNumber string, total domain.Money) error {
	subject := fmt.Sprintf("Booking %s completed", bookingNumber)
	body := fmt.Sprintf("Hello,\n\nYour booking %s for truck %s is complete. The total charged was $%s.\n\nBest regards,\nThe TruckRental Team",
		bookingNumber, truckName, total.String())
	return s.send(renterEmail, subject, body)
}

func (s *emailService) SendInspectionReminderNotification(ctx context.Context, ownerEmail, ownerName, truckName string, dueDate time.Time) error {
	subject := fmt.Sprintf("Inspection due for %s", truckName)
	body := fmt.Sprintf("Hello %s,\n\nThe inspection for your truck %s is due on %s. Please schedule it before the due date to keep the truck bookable.\n\nBest regards,\nThe TruckRental Team",
		ownerName, truckName, dueDate.Format("2006-01-02"))
	return s.send(ownerEmail, subject, body)
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}
	return nil
}
