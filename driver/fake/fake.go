// Package fake provides in-memory stand-ins for the driver's collaborators,
// for demos and tests that have no robot on hand.
package fake

import (
	"context"
	"sync"
	"time"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/strideworks/quadstate/spatialmath"
	"github.com/strideworks/quadstate/state"
	"github.com/strideworks/quadstate/telemetry"
)

// Source produces a fully-populated static snapshot stamped with the current
// wall time.
type Source struct{}

// NewSource returns a fake snapshot source.
func NewSource() *Source {
	return &Source{}
}

// Snapshot returns a representative snapshot of a standing robot with an arm.
func (s *Source) Snapshot(ctx context.Context) (*telemetry.Snapshot, error) {
	return SnapshotAt(time.Now()), nil
}

// TimeSync reports a fixed clock skew.
type TimeSync struct {
	Skew time.Duration
}

// ClockSkew returns the configured skew.
func (ts *TimeSync) ClockSkew(ctx context.Context) (time.Duration, error) {
	return ts.Skew, nil
}

// Publisher retains the most recent robot state it was handed.
type Publisher struct {
	mu   sync.Mutex
	last *state.RobotState
}

// PublishRobotState stores the state for later inspection.
func (p *Publisher) PublishRobotState(ctx context.Context, robotState *state.RobotState) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.last = robotState
	return nil
}

// Last returns the most recently published state, or nil.
func (p *Publisher) Last() *state.RobotState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

// SnapshotAt builds the static snapshot with all raw timestamps set to the
// given robot-clock instant.
func SnapshotAt(now time.Time) *telemetry.Snapshot {
	stamp := timestamppb.New(now)

	legJoints := []telemetry.JointID{
		telemetry.JointFrontLeftHipX, telemetry.JointFrontLeftHipY, telemetry.JointFrontLeftKnee,
		telemetry.JointFrontRightHipX, telemetry.JointFrontRightHipY, telemetry.JointFrontRightKnee,
		telemetry.JointRearLeftHipX, telemetry.JointRearLeftHipY, telemetry.JointRearLeftKnee,
		telemetry.JointRearRightHipX, telemetry.JointRearRightHipY, telemetry.JointRearRightKnee,
	}
	jointStates := make([]telemetry.JointState, 0, len(legJoints))
	for i, joint := range legJoints {
		jointStates = append(jointStates, telemetry.JointState{
			Name:     joint,
			Position: 0.5 + 0.01*float64(i),
			Velocity: 0,
			Load:     12,
		})
	}

	identity := quat.Number{Real: 1}
	edges := map[string]telemetry.FrameEdge{
		"odom": {
			ParentFrameName: "body",
			ParentTFormChild: spatialmath.RigidTransform{
				Rotation:    identity,
				Translation: r3.Vector{X: -1.5, Y: 0.2},
			},
		},
		"vision": {
			ParentFrameName: "body",
			ParentTFormChild: spatialmath.RigidTransform{
				Rotation:    identity,
				Translation: r3.Vector{X: -1.48, Y: 0.21, Z: 0.01},
			},
		},
		"foot_fl": {
			ParentFrameName: "body",
			ParentTFormChild: spatialmath.RigidTransform{
				Rotation:    identity,
				Translation: r3.Vector{X: 0.32, Y: 0.17, Z: -0.45},
			},
		},
		"hand": {
			ParentFrameName: "body",
			ParentTFormChild: spatialmath.RigidTransform{
				Rotation:    identity,
				Translation: r3.Vector{X: 0.55, Z: 0.26},
			},
		},
	}

	return &telemetry.Snapshot{
		Batteries: []telemetry.BatteryState{{
			Timestamp:        stamp,
			Identifier:       "bat0",
			ChargePercentage: 87,
			EstimatedRuntime: durationpb.New(95 * time.Minute),
			Current:          -4.2,
			Voltage:          53.8,
			Temperatures:     []float64{33.1, 33.4, 32.9},
			Status:           telemetry.BatteryStatusDischarging,
		}},
		Comms: []telemetry.CommsState{{
			WiFi: &telemetry.WiFiState{
				CurrentMode: telemetry.WiFiModeClient,
				ESSID:       "lab-5g",
			},
		}},
		Feet: []telemetry.FootState{
			{PositionRTBody: r3.Vector{X: 0.32, Y: 0.17, Z: -0.45}, Contact: telemetry.ContactMade},
			{PositionRTBody: r3.Vector{X: 0.32, Y: -0.17, Z: -0.45}, Contact: telemetry.ContactMade},
			{PositionRTBody: r3.Vector{X: -0.28, Y: 0.17, Z: -0.45}, Contact: telemetry.ContactMade},
			{PositionRTBody: r3.Vector{X: -0.28, Y: -0.17, Z: -0.45}, Contact: telemetry.ContactMade},
		},
		EStops: []telemetry.EStopState{{
			Timestamp: stamp,
			Name:      "hardware_estop",
			Type:      telemetry.EStopTypeHardware,
			State:     telemetry.EStopConditionNotEStopped,
		}},
		Kinematics: &telemetry.KinematicState{
			AcquisitionTimestamp: stamp,
			JointStates:          jointStates,
			Transforms:           telemetry.FrameTreeSnapshot{ChildToParent: edges},
			VelocityOfBodyInOdom: &telemetry.Twist{
				Linear:  r3.Vector{X: 0.02},
				Angular: r3.Vector{Z: 0.001},
			},
			VelocityOfBodyInVision: &telemetry.Twist{
				Linear:  r3.Vector{X: 0.019},
				Angular: r3.Vector{Z: 0.001},
			},
		},
		Power: &telemetry.PowerState{
			Timestamp:                  stamp,
			MotorPowerState:            telemetry.MotorPowerStateOn,
			ShorePowerState:            telemetry.ShorePowerStateOff,
			LocomotionChargePercentage: 87,
			LocomotionEstimatedRuntime: durationpb.New(80 * time.Minute),
		},
		SystemFaults: &telemetry.SystemFaultState{},
		Manipulator: &telemetry.ManipulatorState{
			GripperOpenPercentage:           0,
			IsGripperHoldingItem:            false,
			EstimatedEndEffectorForceInHand: &r3.Vector{Z: -2.1},
			StowState:                       telemetry.StowStateStowed,
			CarryState:                      telemetry.CarryStateNotCarriable,
		},
		BehaviorFaults: &telemetry.BehaviorFaultState{},
	}
}
