package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Scheduler fires the daily expiry emails at a fixed local hour and sends
// a catch-up run on startup when whole days were missed.
type Scheduler struct {
	svc     *Service
	tracker TrackingStore
	hour    int
	loc     *time.Location
	logger  zerolog.Logger

	// tick interval, shortened in tests
	interval time.Duration
}

func NewScheduler(svc *Service, tracker TrackingStore, hour int, loc *time.Location, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		svc:      svc,
		tracker:  tracker,
		hour:     hour,
		loc:      loc,
		logger:   logger,
		interval: time.Minute,
	}
}

func midnight(t time.Time, loc *time.Location) time.Time {
	l := t.In(loc)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, loc)
}

// CatchUp runs once at startup. The first ever run only initializes the
// tracking timestamp; later startups send the missed emails when at least
// one whole day passed since the last run.
func (s *Scheduler) CatchUp(ctx context.Context, now time.Time) error {
	last, err := s.tracker.LastSent(ctx)
	if err != nil {
		return err
	}

	if last.IsZero() {
		today := midnight(now, s.loc)
		first := today.Add(time.Duration(s.hour) * time.Hour)
		s.logger.Info().Msg("first run, initializing email tracking")
		return s.tracker.SetLastSent(ctx, first)
	}

	missed := int(midnight(now, s.loc).Sub(midnight(last, s.loc)).Hours() / 24)
	if missed <= 0 {
		return nil
	}

	s.logger.Info().Int("missed_days", missed).Msg("sending catch-up expiry emails")
	_, err = s.svc.SendDailyExpirationEmails(ctx, now, true)
	return err
}

// Run blocks until the context is cancelled, checking every interval
// whether the local send time has arrived.
func (s *Scheduler) Run(ctx context.Context) {
	if err := s.CatchUp(ctx, time.Now()); err != nil {
		s.logger.Error().Err(err).Msg("catch-up run failed")
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			local := now.In(s.loc)
			if local.Hour() != s.hour || local.Minute() != 0 {
				continue
			}
			if _, err := s.svc.SendDailyExpirationEmails(ctx, now, false); err != nil {
				s.logger.Error().Err(err).Msg("daily expiry emails failed")
			}
		}
	}
}
