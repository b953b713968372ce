package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/therapia/opinions/internal/domain/opinion"
)

// OpinionSource lists the opinions inside the expiry window.
type OpinionSource interface {
	Expiring(ctx context.Context, today time.Time, windowDays int) ([]*opinion.Opinion, error)
}

// Results summarizes one notification run.
type Results struct {
	Sent    int  `json:"sent"`
	Failed  int  `json:"failed"`
	Total   int  `json:"total"`
	CatchUp bool `json:"catch_up"`
}

type Service struct {
	opinions   OpinionSource
	sender     EmailSender
	tracker    TrackingStore
	toEmail    string
	toName     string
	windowDays int
	sendDelay  time.Duration
	logger     zerolog.Logger
}

func NewService(opinions OpinionSource, sender EmailSender, tracker TrackingStore,
	toEmail, toName string, windowDays int, logger zerolog.Logger) *Service {
	return &Service{
		opinions:   opinions,
		sender:     sender,
		tracker:    tracker,
		toEmail:    toEmail,
		toName:     toName,
		windowDays: windowDays,
		sendDelay:  time.Second,
		logger:     logger,
	}
}

// SendDailyExpirationEmails sends one email per record inside the expiry
// window and records the run. The tracking timestamp advances even when
// no record is in the window, so the run is not retried.
func (s *Service) SendDailyExpirationEmails(ctx context.Context, now time.Time, catchUp bool) (Results, error) {
	res := Results{CatchUp: catchUp}

	expiring, err := s.opinions.Expiring(ctx, now, s.windowDays)
	if err != nil {
		return res, err
	}
	res.Total = len(expiring)

	for i, o := range expiring {
		days := daysUntil(now, o.EndDate)
		subject, html := buildExpiryEmail(o, days)
		err := s.sender.Send(ctx, EmailMessage{
			To:      s.toEmail,
			ToName:  s.toName,
			Subject: subject,
			HTML:    html,
		})
		if err != nil {
			res.Failed++
			s.logger.Error().Err(err).Str("name", o.FullName()).Msg("expiry email failed")
		} else {
			res.Sent++
		}

		// Space sends out to stay under provider rate limits.
		if s.sendDelay > 0 && i < len(expiring)-1 {
			select {
			case <-time.After(s.sendDelay):
			case <-ctx.Done():
				return res, ctx.Err()
			}
		}
	}

	if err := s.tracker.SetLastSent(ctx, now); err != nil {
		return res, err
	}

	s.logger.Info().
		Bool("catch_up", catchUp).
		Int("sent", res.Sent).
		Int("failed", res.Failed).
		Int("total", res.Total).
		Msg("daily expiry emails done")
	return res, nil
}

// SendSummary sends the digest email listing every record inside the
// expiry window. It is triggered manually and does not touch tracking.
func (s *Service) SendSummary(ctx context.Context, now time.Time) (Results, error) {
	var res Results

	expiring, err := s.opinions.Expiring(ctx, now, s.windowDays)
	if err != nil {
		return res, err
	}
	res.Total = len(expiring)
	if len(expiring) == 0 {
		return res, nil
	}

	subject, html := buildSummaryEmail(expiring, now, s.windowDays)
	err = s.sender.Send(ctx, EmailMessage{
		To:      s.toEmail,
		ToName:  s.toName,
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		res.Failed = 1
		return res, err
	}
	res.Sent = 1
	return res, nil
}
