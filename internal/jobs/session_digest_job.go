package jobs

import (
	"context"
	"fmt"
	"time"

	"hospitalfood/internal/core/application/usecases/queries"
	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/order"
	"hospitalfood/internal/pkg/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultDigestSchedule runs the digest at the top of every hour.
const DefaultDigestSchedule = "0 0 * * * *"

// DigestReader counts a day's orders per session.
type DigestReader interface {
	Handle(ctx context.Context, query queries.GetSessionDigestQuery) ([]queries.SessionCounts, error)
}

// SessionDigest summarises one session of one day.
type SessionDigest struct {
	Date             string
	Session          kernel.Session
	Total            int
	AwaitingKitchen  int
	AwaitingDelivery int
	Unassigned       int
}

// SessionDigestJob periodically logs, per session, how many of today's orders are still open.
type SessionDigestJob struct {
	reader   DigestReader
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *zap.Logger
}

func NewSessionDigestJob(reader DigestReader, schedule string, l *zap.Logger) *SessionDigestJob {
	if schedule == "" {
		schedule = DefaultDigestSchedule
	}
	return &SessionDigestJob{
		reader:   reader,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.Component(l, "session_digest_job"),
	}
}

// WithClock replaces the time source used to pick "today".
func (j *SessionDigestJob) WithClock(now func() time.Time) *SessionDigestJob {
	j.now = now
	return j
}

func (j *SessionDigestJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.Error("session digest failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid digest schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("session digest job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop waits for a running digest to finish.
func (j *SessionDigestJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("session digest job stopped")
}

// Run builds and logs the digest of today's orders, one entry per session.
func (j *SessionDigestJob) Run(ctx context.Context) ([]SessionDigest, error) {
	date := order.DateOf(j.now()).Format(queries.DateLayout)

	query, err := queries.NewGetSessionDigestQuery(date)
	if err != nil {
		return nil, err
	}

	counts, err := j.reader.Handle(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders of %s: %w", date, err)
	}

	digests := make([]SessionDigest, len(counts))
	for i, c := range counts {
		digests[i] = SessionDigest{
			Date:             date,
			Session:          c.Session,
			Total:            c.Total,
			AwaitingKitchen:  c.AwaitingKitchen,
			AwaitingDelivery: c.AwaitingDelivery,
			Unassigned:       c.Unassigned,
		}
		j.logger.Info("session digest",
			zap.String("date", date),
			zap.Stringer("session", c.Session),
			zap.Int("total", c.Total),
			zap.Int("awaitingKitchen", c.AwaitingKitchen),
			zap.Int("awaitingDelivery", c.AwaitingDelivery),
			zap.Int("unassigned", c.Unassigned),
		)
	}
	return digests, nil
}
