// Package refresh recomputes the dashboard summary on a fixed schedule
// and pushes it to connected clients.
package refresh

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/padyhealth/portal/internal/domain/dashboard"
)

// Topic is the websocket topic dashboard snapshots are published on.
const Topic = "dashboard"

type StatsSource interface {
	ComputeStats(ctx context.Context) dashboard.Stats
}

type Publisher interface {
	Publish(topic string, data interface{})
}

// Refresher runs the periodic recomputation. It must be stopped on
// shutdown; Stop waits for an in-flight run to finish.
type Refresher struct {
	source    StatsSource
	publisher Publisher
	interval  time.Duration
	cron      *cron.Cron
	log       zerolog.Logger
}

func New(source StatsSource, publisher Publisher, interval time.Duration, log zerolog.Logger) *Refresher {
	return &Refresher{
		source:    source,
		publisher: publisher,
		interval:  interval,
		cron:      cron.New(),
		log:       log.With().Str("component", "refresh").Logger(),
	}
}

func (r *Refresher) Start() error {
	if r.interval < time.Second {
		return fmt.Errorf("refresh interval %s too short", r.interval)
	}
	spec := fmt.Sprintf("@every %s", r.interval)
	if _, err := r.cron.AddFunc(spec, r.run); err != nil {
		return fmt.Errorf("schedule dashboard refresh: %w", err)
	}
	r.cron.Start()
	r.log.Info().Dur("interval", r.interval).Msg("dashboard refresh started")
	return nil
}

// Stop cancels the schedule and blocks until any running job returns.
func (r *Refresher) Stop() {
	<-r.cron.Stop().Done()
	r.log.Info().Msg("dashboard refresh stopped")
}

func (r *Refresher) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats := r.source.ComputeStats(ctx)
	r.publisher.Publish(Topic, stats)
}
