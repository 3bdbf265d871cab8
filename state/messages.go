// Package state translates one raw telemetry snapshot into a normalized,
// clock-corrected, frame-qualified robot state. Translation is a pure,
// single-pass function of an immutable snapshot and a clock-skew estimate; it
// shares no state across calls and is safe to run concurrently.
package state

import (
	"time"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"github.com/strideworks/quadstate/spatialmath"
	"github.com/strideworks/quadstate/telemetry"
)

// RobotState is the normalized aggregate for one snapshot. Each field is
// independently optional: a nil pointer or nil slice means the robot did not
// report that facet, which is distinct from a present-but-zero record.
type RobotState struct {
	Batteries        []BatteryState
	WiFi             *WiFiState
	Feet             []FootState
	EStops           []EStopState
	Joints           *JointStates
	Transforms       []StampedTransform
	OdomTwist        *StampedTwist
	Odometry         *Odometry
	Power            *PowerState
	SystemFaults     *SystemFaultState
	Manipulator      *ManipulatorState
	EndEffectorForce *EndEffectorForce
	BehaviorFaults   *BehaviorFaultState
}

// BatteryState is the normalized report for one battery.
type BatteryState struct {
	Timestamp        time.Time
	Identifier       string
	ChargePercentage float64
	EstimatedRuntime time.Duration
	Current          float64
	Voltage          float64
	Temperatures     []float64
	Status           telemetry.BatteryStatus
}

// WiFiState is the normalized Wi-Fi report.
type WiFiState struct {
	CurrentMode telemetry.WiFiMode
	ESSID       string
}

// FootState is the normalized report for one foot.
type FootState struct {
	PositionRTBody r3.Vector
	Contact        telemetry.ContactState
}

// EStopState is the normalized report for one emergency-stop endpoint.
type EStopState struct {
	Timestamp        time.Time
	Name             string
	Type             telemetry.EStopType
	State            telemetry.EStopCondition
	StateDescription string
}

// JointStates is the full joint vector at one corrected acquisition instant.
// The four slices are index-aligned and always complete; a joint vector is
// never partially translated.
type JointStates struct {
	Timestamp  time.Time
	Names      []string
	Positions  []float64
	Velocities []float64
	Efforts    []float64
}

// StampedTransform is one frame-qualified edge of the assembled transform
// tree.
type StampedTransform struct {
	Timestamp     time.Time
	ParentFrameID string
	ChildFrameID  string
	Transform     spatialmath.RigidTransform
}

// Twist is a body velocity: linear in m/s, angular in rad/s.
type Twist struct {
	Linear  r3.Vector
	Angular spatialmath.AngularVelocity
}

// StampedTwist is a Twist at a corrected acquisition instant.
type StampedTwist struct {
	Timestamp time.Time
	Twist     Twist
}

// Pose is a position and orientation within some reference frame.
type Pose struct {
	Position    r3.Vector
	Orientation quat.Number
}

// Odometry is the body pose in the chosen reference frame merged with the
// body twist expressed in that same frame.
type Odometry struct {
	Timestamp    time.Time
	FrameID      string
	ChildFrameID string
	Pose         Pose
	Twist        Twist
}

// PowerState is the normalized motor and shore power report.
type PowerState struct {
	Timestamp                  time.Time
	MotorPowerState            telemetry.MotorPowerState
	ShorePowerState            telemetry.ShorePowerState
	LocomotionChargePercentage float64
	LocomotionEstimatedRuntime time.Duration
}

// SystemFault is one normalized system fault.
type SystemFault struct {
	Timestamp    time.Time
	Name         string
	Duration     time.Duration
	Code         int32
	UID          uint64
	ErrorMessage string
	Attributes   []string
	Severity     telemetry.FaultSeverity
}

// SystemFaultState carries normalized active and historical system faults.
type SystemFaultState struct {
	Faults           []SystemFault
	HistoricalFaults []SystemFault
}

// ManipulatorState is the normalized arm and gripper report. Nil pointer
// fields mean the robot did not measure that quantity in this snapshot.
type ManipulatorState struct {
	GripperOpenPercentage           float64
	IsGripperHoldingItem            bool
	EstimatedEndEffectorForceInHand *r3.Vector
	StowState                       telemetry.StowState
	VelocityOfHandInVision          *Twist
	VelocityOfHandInOdom            *Twist
	CarryState                      telemetry.CarryState
}

// EndEffectorForce is the estimated force at the end effector, expressed in
// the (frame-qualified) hand frame.
type EndEffectorForce struct {
	Timestamp time.Time
	FrameID   string
	Force     r3.Vector
}

// BehaviorFault is one normalized behavior fault.
type BehaviorFault struct {
	Timestamp time.Time
	ID        uint32
	Cause     telemetry.BehaviorFaultCause
	Status    telemetry.BehaviorFaultStatus
}

// BehaviorFaultState carries normalized behavior faults.
type BehaviorFaultState struct {
	Faults []BehaviorFault
}
