package services

import (
	"context"
	"log"
	"time"

	"gymdesk/internal/adapters/persistence/models"
	"gymdesk/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// ReminderService runs the daily front-desk digest (08:30): members
// whose membership expires within the next week, plus the pending
// payment backlog. It only reads and logs; member status is never
// mutated here.
type ReminderService struct {
	memberRepo  repositories.MemberRepository
	paymentRepo repositories.PaymentRepository
	cron        *cron.Cron
}

// NewReminderService creates a new reminder service
func NewReminderService(memberRepo repositories.MemberRepository, paymentRepo repositories.PaymentRepository) *ReminderService {
	return &ReminderService{
		memberRepo:  memberRepo,
		paymentRepo: paymentRepo,
		cron:        cron.New(),
	}
}

// Start schedules the daily digest
func (s *ReminderService) Start() {
	if _, err := s.cron.AddFunc("30 8 * * *", s.RunDigest); err != nil {
		log.Printf("❌ Failed to schedule reminder digest: %v", err)
		return
	}
	s.cron.Start()
	log.Println("🚀 ReminderService started (daily 08:30)")
}

// Stop stops the scheduler
func (s *ReminderService) Stop() {
	s.cron.Stop()
	log.Println("🛑 ReminderService stopped")
}

// RunDigest logs expiring memberships and the pending backlog
func (s *ReminderService) RunDigest() {
	ctx := context.Background()
	cutoff := time.Now().AddDate(0, 0, 7).Format(dateLayout)

	expiring, err := s.memberRepo.ListExpiringBefore(ctx, cutoff)
	if err != nil {
		log.Printf("❌ Reminder digest query error: %v", err)
		return
	}

	for _, m := range expiring {
		log.Printf("⏰ Membership expiring: %s (ID: %d, %s plan, expires %s)",
			m.FullName, m.MemberID, m.MembershipType, m.ExpiryDate)
	}

	pending, err := s.paymentRepo.CountByStatus(ctx, models.PaymentStatusPending)
	if err != nil {
		log.Printf("❌ Reminder digest query error: %v", err)
		return
	}

	log.Printf("📋 Daily digest: %d membership(s) expiring within 7 days, %d pending payment(s)",
		len(expiring), pending)
}
