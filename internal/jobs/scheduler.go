package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/genbahq/cashsignal/internal/forecast"
	"github.com/genbahq/cashsignal/internal/models"
	"github.com/genbahq/cashsignal/internal/repository"
	"github.com/genbahq/cashsignal/internal/utils/email"
)

const jobTimeout = 5 * time.Minute

// Scheduler runs the daily background jobs
type Scheduler struct {
	repo   *repository.Repository
	mailer *email.Sender
	log    *logrus.Logger
	cron   *cron.Cron
}

// NewScheduler initializes the scheduler with its cron entries
func NewScheduler(repo *repository.Repository, mailer *email.Sender, log *logrus.Logger) (*Scheduler, error) {
	s := &Scheduler{
		repo:   repo,
		mailer: mailer,
		log:    log,
		cron:   cron.New(cron.WithLocation(time.UTC)),
	}

	if _, err := s.cron.AddFunc("0 0 * * *", s.checkOverdueIncomes); err != nil {
		return nil, err
	}
	if _, err := s.cron.AddFunc("0 23 * * *", s.sendDailySummaries); err != nil {
		return nil, err
	}
	return s, nil
}

// Start launches the cron loop
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("Scheduler started")
}

// Stop halts the cron loop and waits for running jobs
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("Scheduler stopped")
}

// checkOverdueIncomes flips income schedules past their date to OVERDUE and
// notifies the approvers of each affected company.
func (s *Scheduler) checkOverdueIncomes() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	flips, err := s.repo.MarkOverdueSchedules(ctx, time.Now().UTC())
	if err != nil {
		s.log.Errorf("Overdue sweep failed: %v", err)
		return
	}
	if len(flips) == 0 {
		return
	}
	s.log.Infof("Overdue sweep flipped %d schedules", len(flips))

	for _, flip := range flips {
		approvers, err := s.repo.ListApprovers(ctx, flip.CompanyID, false)
		if err != nil {
			s.log.Errorf("Failed to list approvers for company %s: %v", flip.CompanyID, err)
			continue
		}

		for _, approver := range approvers {
			notification := &models.Notification{
				ID:      uuid.NewString(),
				UserID:  approver.ID,
				Type:    models.NotifyOverdue,
				Title:   "Income overdue",
				Message: "An expected payment for " + flip.ProjectName + " has not been received",
				LinkURL: "/projects/" + flip.ProjectID,
			}
			if err := s.repo.CreateNotification(ctx, notification); err != nil {
				s.log.Errorf("Failed to create notification for user %s: %v", approver.ID, err)
				continue
			}
			if approver.Notify {
				if err := s.mailer.SendOverdueNotice(approver.Email, approver.Name, flip.ProjectName, flip.Amount, flip.ScheduledDate); err != nil {
					s.log.Errorf("Failed to email %s: %v", approver.Email, err)
				}
			}
		}
	}
}

// sendDailySummaries emails every opted-in approver the morning cash position
func (s *Scheduler) sendDailySummaries() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	companies, err := s.repo.ListCompanies(ctx)
	if err != nil {
		s.log.Errorf("Failed to list companies for daily summary: %v", err)
		return
	}

	for _, company := range companies {
		signal := forecast.Classify(company.BankBalance, company.DangerLine)
		pendingCount, pendingAmount, err := s.repo.CountPendingPayments(ctx, company.ID)
		if err != nil {
			s.log.Errorf("Failed to count pending payments for company %s: %v", company.ID, err)
			continue
		}

		approvers, err := s.repo.ListApprovers(ctx, company.ID, true)
		if err != nil {
			s.log.Errorf("Failed to list approvers for company %s: %v", company.ID, err)
			continue
		}
		for _, approver := range approvers {
			if err := s.mailer.SendDailySummary(approver.Email, approver.Name, company.BankBalance, signal, pendingCount, pendingAmount); err != nil {
				s.log.Errorf("Failed to email %s: %v", approver.Email, err)
			}
		}
	}
}
