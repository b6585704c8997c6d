package email

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/jordan-wright/email"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/genbahq/cashsignal/internal/config"
	"github.com/genbahq/cashsignal/internal/models"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendApprovalRequest notifies an approver about a new payment request
func (s *Sender) SendApprovalRequest(to, approverName, projectName, clientName string, amount decimal.Decimal) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Payment Approval Request"

	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"A payment request is waiting for your approval:\n"+
			"Project: %s\nPayee: %s\nAmount: %s yen\n\n"+
			"Please review it in the app.\n",
		approverName, projectName, clientName, amount.StringFixed(0),
	)
	e.Text = []byte(body)

	return s.send(e)
}

// SendOverdueNotice notifies about an income schedule past its date
func (s *Sender) SendOverdueNotice(to, name, projectName string, amount decimal.Decimal, scheduledDate time.Time) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Overdue Income Notification"

	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"An expected payment of %s yen for %s was scheduled for %s and has not been received.\n"+
			"Please follow up with the client.\n",
		name, amount.StringFixed(0), projectName, scheduledDate.Format("2006-01-02"),
	)
	e.Text = []byte(body)

	return s.send(e)
}

// SendDailySummary sends the morning cash position summary
func (s *Sender) SendDailySummary(to, name string, bankBalance decimal.Decimal, signal models.Signal, pendingCount int, pendingAmount decimal.Decimal) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Daily Cash Summary (%s)", signal)

	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Bank balance: %s yen\nSignal: %s\n",
		name, bankBalance.StringFixed(0), signal,
	)
	if pendingCount > 0 {
		body += fmt.Sprintf(
			"Pending approvals: %d requests totaling %s yen\n",
			pendingCount, pendingAmount.StringFixed(0),
		)
	}
	body += "\nBest regards,\nCash Signal"
	e.Text = []byte(body)

	return s.send(e)
}

func (s *Sender) send(e *email.Email) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %v: %v", e.To, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %v: %s", e.To, e.Subject)
	return nil
}
