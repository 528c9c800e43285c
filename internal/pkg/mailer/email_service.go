package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// IScheduleNotifier sends a best-effort summary of a schedule request to the
// operator. Success and failure are both terminal outcomes: no retry, no
// queueing, and a failure must never affect the already-committed record.
type IScheduleNotifier interface {
	SendScheduleRequest(clientName, email, preferredDate, notes string) error
}

type emailNotifier struct {
	dialer        *gomail.Dialer
	senderEmail   string
	senderName    string
	operatorEmail string
}

func NewEmailNotifier(host string, port int, username, password, senderName, operatorEmail string) IScheduleNotifier {
	d := gomail.NewDialer(host, port, username, password)

	return &emailNotifier{
		dialer:        d,
		senderEmail:   username,
		senderName:    senderName,
		operatorEmail: operatorEmail,
	}
}

func (s *emailNotifier) SendScheduleRequest(clientName, email, preferredDate, notes string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", s.operatorEmail)
	m.SetHeader("Subject", "New Shoot Request")

	body := fmt.Sprintf(
		"Client: %s\nEmail: %s\nPreferred Date: %s\nNotes: %s\n",
		clientName, email, preferredDate, notes,
	)

	m.SetBody("text/plain", body)

	return s.dialer.DialAndSend(m)
}
