package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"echohorn/internal/domain/models"
	"echohorn/internal/utils"
)

// Notifier sends transactional mail. When SMTP credentials are not
// configured it logs and drops the message instead of failing the
// request that triggered it.
type Notifier struct {
	Host       string
	Port       int
	User       string
	Pass       string
	AdminEmail string
}

func (n *Notifier) configured() bool {
	return n.Host != "" && n.User != "" && n.Pass != ""
}

// SendReservationConfirmation mails the customer and copies the admin
// inbox. Callers run it in a goroutine; errors are logged, never returned.
func (n *Notifier) SendReservationConfirmation(res models.Reservation) {
	if !n.configured() {
		utils.LogEvent("", "notify", "skip", "smtp not configured, reservation="+res.ID)
		return
	}

	subject := "Echohorn: we received your reservation"
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\n"+
			"Thanks for reaching out. Our team will contact you shortly about your fleet enquiry.\r\n\r\n"+
			"Company: %s\r\nFleet size: %s\r\nReference: %s\r\n\r\n"+
			"Echohorn Logistics",
		res.Name, res.Company, res.FleetSize, res.ID,
	)

	to := []string{res.Email}
	if n.AdminEmail != "" {
		to = append(to, n.AdminEmail)
	}
	if err := n.send(to, subject, body); err != nil {
		utils.LogEvent("", "notify", "error", "reservation="+res.ID+" err="+err.Error())
		return
	}
	utils.LogEvent("", "notify", "sent", "reservation="+res.ID)
}

func (n *Notifier) send(to []string, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + n.User,
		"To: " + strings.Join(to, ", "),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", n.Host, n.Port)
	auth := smtp.PlainAuth("", n.User, n.Pass, n.Host)
	return smtp.SendMail(addr, auth, n.User, to, []byte(msg))
}
