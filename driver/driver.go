// Package driver connects the snapshot translation layer to its external
// collaborators: the robot-side snapshot source, the clock-sync service, and
// whatever consumes the normalized state. The translation itself performs no
// I/O; everything blocking lives behind these seams.
package driver

import (
	"context"
	"time"

	"github.com/strideworks/quadstate/state"
	"github.com/strideworks/quadstate/telemetry"
)

// A Source fetches one raw telemetry snapshot from the robot.
type Source interface {
	Snapshot(ctx context.Context) (*telemetry.Snapshot, error)
}

// A TimeSync estimates the offset between the robot's clock and ours at the
// moment of the call.
type TimeSync interface {
	ClockSkew(ctx context.Context) (time.Duration, error)
}

// A Publisher consumes one normalized robot state per polling cycle.
type Publisher interface {
	PublishRobotState(ctx context.Context, robotState *state.RobotState) error
}
