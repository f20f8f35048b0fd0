package sweeper

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	domain "github.com/glowline/salon-scheduler/internal/domain/appointment"
	"github.com/glowline/salon-scheduler/internal/models"
	"github.com/glowline/salon-scheduler/internal/timezone"
	ucappointment "github.com/glowline/salon-scheduler/internal/usecase/appointment"
)

// Sweeper cancels pending appointments whose start time passed without
// anyone confirming them, so no-shows stop holding slots and skewing
// the dashboard. It acts as a system admin through the same lifecycle
// rules every other caller goes through.
type Sweeper struct {
	repo   domain.Repository
	cancel *ucappointment.CancelAppointment
	tz     string
	cron   *cron.Cron
}

func New(
	repo domain.Repository,
	cancel *ucappointment.CancelAppointment,
	tz string,
) *Sweeper {
	return &Sweeper{
		repo:   repo,
		cancel: cancel,
		tz:     tz,
		cron:   cron.New(),
	}
}

func (s *Sweeper) Start() {
	if _, err := s.cron.AddFunc("*/15 * * * *", s.sweep); err != nil {
		log.Fatalf("failed to schedule sweep: %v", err)
	}
	s.cron.Start()
}

func (s *Sweeper) Stop() {
	s.cron.Stop()
}

func (s *Sweeper) sweep() {
	ctx := context.Background()
	now := timezone.NowIn(s.tz)

	stale, err := s.repo.ListPendingBefore(ctx, now)
	if err != nil {
		log.Println("sweep query failed:", err)
		return
	}

	actor := domain.Actor{UserID: 0, Role: models.RoleAdmin}

	swept := 0
	for _, ap := range stale {
		if _, err := s.cancel.Execute(ctx, actor, ap.ID); err != nil {
			log.Printf("sweep: appointment %d not cancelled: %v", ap.ID, err)
			continue
		}
		swept++
	}

	if swept > 0 {
		log.Printf("sweep: cancelled %d stale pending appointments", swept)
	}
}
