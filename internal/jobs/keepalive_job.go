package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DefaultKeepaliveSchedule runs the keepalive every 15 seconds.
const DefaultKeepaliveSchedule = "*/15 * * * * *"

// Heartbeater sends a keepalive to every open stream and reports how many were reached.
type Heartbeater interface {
	Heartbeat(ctx context.Context) int
}

// KeepaliveJob periodically pings every open stream. Idle proxies keep the
// connection open, and streams whose client is gone are pruned on the failed send.
type KeepaliveJob struct {
	heartbeater Heartbeater
	schedule    string
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewKeepaliveJob creates a keepalive job on a six-field cron schedule.
// An empty schedule falls back to DefaultKeepaliveSchedule.
func NewKeepaliveJob(heartbeater Heartbeater, schedule string, logger *slog.Logger) *KeepaliveJob {
	if schedule == "" {
		schedule = DefaultKeepaliveSchedule
	}
	return &KeepaliveJob{
		heartbeater: heartbeater,
		schedule:    schedule,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "keepalive_job"),
	}
}

// Start registers the keepalive and starts the scheduler.
func (j *KeepaliveJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Keepalive job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running keepalive to finish.
func (j *KeepaliveJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Keepalive job stopped")
}

func (j *KeepaliveJob) run() {
	ctx := context.Background()
	reached := j.heartbeater.Heartbeat(ctx)
	j.logger.DebugContext(ctx, "Keepalive sent", "streams", reached)
}
