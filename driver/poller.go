package driver

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	goutils "go.viam.com/utils"

	"github.com/strideworks/quadstate/state"
)

// Polling at 50 Hz matches the robot's own state update rate.
const defaultPollPeriod = time.Second / 50

// Config configures a Poller.
type Config struct {
	Source    Source
	TimeSync  TimeSync
	Publisher Publisher

	// RobotName namespaces all emitted frames and joint names as
	// "<RobotName>/". Empty disables namespacing.
	RobotName string
	// InverseTargetFrame is the bare (unprefixed) frame to re-parent in the
	// emitted transform tree.
	InverseTargetFrame string
	// OdometryFrame selects the world anchor for odometry. Defaults to the
	// kinematic odometry frame.
	OdometryFrame state.OdometryFrame
	// PollPeriod overrides the default 50 Hz cadence.
	PollPeriod time.Duration
	// Clock is swapped out in tests; nil uses the wall clock.
	Clock clock.Clock
}

// A Poller repeatedly fetches a snapshot and the current clock skew,
// translates, and hands the result to the publisher. Upstream failures are
// logged and the cycle skipped; translation failures likewise, since the next
// snapshot may be whole again.
type Poller struct {
	source    Source
	timeSync  TimeSync
	publisher Publisher
	opts      state.Options
	period    time.Duration
	clock     clock.Clock
	logger    golog.Logger

	mu                      sync.Mutex
	cancel                  context.CancelFunc
	activeBackgroundWorkers sync.WaitGroup
}

// NewPoller validates the configuration and prepares a Poller; call Start to
// begin polling.
func NewPoller(cfg Config, logger golog.Logger) (*Poller, error) {
	if cfg.Source == nil {
		return nil, errors.New("snapshot source required")
	}
	if cfg.TimeSync == nil {
		return nil, errors.New("time sync required")
	}
	if cfg.Publisher == nil {
		return nil, errors.New("publisher required")
	}

	prefix := ""
	if cfg.RobotName != "" {
		prefix = cfg.RobotName + "/"
	}
	inverseTarget := cfg.InverseTargetFrame
	if inverseTarget != "" && !strings.Contains(inverseTarget, "/") {
		inverseTarget = prefix + inverseTarget
	}

	period := cfg.PollPeriod
	if period <= 0 {
		period = defaultPollPeriod
	}
	pollClock := cfg.Clock
	if pollClock == nil {
		pollClock = clock.New()
	}

	return &Poller{
		source:    cfg.Source,
		timeSync:  cfg.TimeSync,
		publisher: cfg.Publisher,
		opts: state.Options{
			FramePrefix:        prefix,
			InverseTargetFrame: inverseTarget,
			OdometryFrame:      cfg.OdometryFrame,
		},
		period: period,
		clock:  pollClock,
		logger: logger,
	}, nil
}

// Start begins polling in the background until the context is cancelled or
// Close is called.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}
	cancelCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	ticker := p.clock.Ticker(p.period)
	p.activeBackgroundWorkers.Add(1)
	goutils.PanicCapturingGo(func() {
		defer p.activeBackgroundWorkers.Done()
		defer ticker.Stop()
		for {
			select {
			case <-cancelCtx.Done():
				return
			case <-ticker.C:
			}
			if err := p.pollOnce(cancelCtx); err != nil {
				p.logger.Errorw("failed to publish robot state", "error", err)
			}
		}
	})
}

func (p *Poller) pollOnce(ctx context.Context) error {
	snap, err := p.source.Snapshot(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get robot state")
	}
	skew, err := p.timeSync.ClockSkew(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get latest clock skew")
	}
	robotState, err := state.Translate(snap, skew, p.opts)
	if err != nil {
		return err
	}
	return p.publisher.PublishRobotState(ctx, robotState)
}

// Close stops polling and closes any collaborator that supports closing.
func (p *Poller) Close() error {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()
	p.activeBackgroundWorkers.Wait()

	var err error
	for _, collaborator := range []interface{}{p.source, p.timeSync, p.publisher} {
		if closer, ok := collaborator.(io.Closer); ok {
			err = multierr.Combine(err, closer.Close())
		}
	}
	return err
}
