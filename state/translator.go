package state

import (
	"time"

	"github.com/pkg/errors"

	"github.com/strideworks/quadstate/telemetry"
)

// Options configure one snapshot translation.
type Options struct {
	// FramePrefix namespaces every emitted frame id, joint name, and the
	// odometry frames. Empty means no namespacing. Multi-robot deployments
	// typically use "<robot name>/".
	FramePrefix string
	// InverseTargetFrame is the frame-qualified child frame whose edge is
	// emitted inverted in the assembled transform tree.
	InverseTargetFrame string
	// OdometryFrame selects the world anchor odometry is expressed in.
	// Defaults to OdometryFrameOdom.
	OdometryFrame OdometryFrame
}

// Translate maps one raw telemetry snapshot plus one clock-skew estimate into
// the normalized aggregate. Each facet translates independently; an absent
// substructure stays absent in the output. Any data-integrity failure (an
// unknown joint id, a missing odometry anchor) aborts the whole call, since
// consumers are not built to reconcile partial snapshots.
func Translate(snap *telemetry.Snapshot, skew time.Duration, opts Options) (*RobotState, error) {
	if snap == nil {
		return nil, errors.New("no snapshot provided")
	}
	if opts.OdometryFrame == "" {
		opts.OdometryFrame = OdometryFrameOdom
	}

	joints, err := jointStates(snap, skew, opts.FramePrefix)
	if err != nil {
		return nil, err
	}
	odom, err := odometry(snap, skew, opts.FramePrefix, opts.OdometryFrame)
	if err != nil {
		return nil, err
	}

	return &RobotState{
		Batteries:        batteryStates(snap, skew),
		WiFi:             wifiState(snap),
		Feet:             footStates(snap),
		EStops:           estopStates(snap, skew),
		Joints:           joints,
		Transforms:       transformTree(snap, skew, opts.FramePrefix, opts.InverseTargetFrame),
		OdomTwist:        odomTwist(snap, skew),
		Odometry:         odom,
		Power:            powerState(snap, skew),
		SystemFaults:     systemFaultState(snap, skew),
		Manipulator:      manipulatorState(snap),
		EndEffectorForce: endEffectorForce(snap, skew, opts.FramePrefix),
		BehaviorFaults:   behaviorFaultState(snap, skew),
	}, nil
}
