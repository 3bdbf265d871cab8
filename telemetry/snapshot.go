// Package telemetry defines the robot-side telemetry snapshot as it arrives
// from the robot, before any clock correction or frame qualification. Every
// substructure is independently optional; a nil pointer or nil slice means the
// robot did not report that facet in this snapshot.
package telemetry

import (
	"github.com/golang/geo/r3"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/strideworks/quadstate/spatialmath"
)

// Snapshot is one self-consistent set of robot telemetry at a single
// acquisition time. Timestamps are robot-clock instants; substructures are not
// guaranteed to share an acquisition time.
type Snapshot struct {
	Batteries      []BatteryState
	Comms          []CommsState
	Feet           []FootState
	EStops         []EStopState
	Kinematics     *KinematicState
	Power          *PowerState
	SystemFaults   *SystemFaultState
	Manipulator    *ManipulatorState
	BehaviorFaults *BehaviorFaultState
}

// BatteryState is the raw report for one battery.
type BatteryState struct {
	Timestamp        *timestamppb.Timestamp
	Identifier       string
	ChargePercentage float64
	EstimatedRuntime *durationpb.Duration
	Current          float64
	Voltage          float64
	Temperatures     []float64
	Status           BatteryStatus
}

// CommsState reports the state of one communication channel. Only Wi-Fi
// channels carry any detail.
type CommsState struct {
	WiFi *WiFiState
}

// WiFiState is the raw Wi-Fi report within a CommsState.
type WiFiState struct {
	CurrentMode WiFiMode
	ESSID       string
}

// FootState is the raw report for one foot.
type FootState struct {
	// PositionRTBody is the foot position relative to the body frame.
	PositionRTBody r3.Vector
	Contact        ContactState
}

// EStopState is the raw report for one emergency-stop endpoint.
type EStopState struct {
	Timestamp        *timestamppb.Timestamp
	Name             string
	Type             EStopType
	State            EStopCondition
	StateDescription string
}

// JointState is the raw report for one joint, keyed by the robot's internal
// joint id.
type JointState struct {
	Name     JointID
	Position float64
	Velocity float64
	Load     float64
}

// FrameEdge relates a child frame to its parent within a frame tree snapshot.
type FrameEdge struct {
	ParentFrameName  string
	ParentTFormChild spatialmath.RigidTransform
}

// FrameTreeSnapshot is the robot's frame tree at acquisition time, stored as a
// child-to-parent edge map. Each child has exactly one parent edge; the root
// frame appears only as a parent.
type FrameTreeSnapshot struct {
	ChildToParent map[string]FrameEdge
}

// Twist is a linear and angular velocity pair.
type Twist struct {
	Linear  r3.Vector
	Angular r3.Vector
}

// KinematicState carries everything sampled at the kinematic acquisition
// instant: the joint vector, the frame tree, and the body velocity estimates.
type KinematicState struct {
	AcquisitionTimestamp   *timestamppb.Timestamp
	JointStates            []JointState
	Transforms             FrameTreeSnapshot
	VelocityOfBodyInOdom   *Twist
	VelocityOfBodyInVision *Twist
}

// PowerState is the raw motor and shore power report.
type PowerState struct {
	Timestamp                  *timestamppb.Timestamp
	MotorPowerState            MotorPowerState
	ShorePowerState            ShorePowerState
	LocomotionChargePercentage float64
	LocomotionEstimatedRuntime *durationpb.Duration
}

// SystemFault is one active or historical system fault.
type SystemFault struct {
	Name           string
	OnsetTimestamp *timestamppb.Timestamp
	Duration       *durationpb.Duration
	Code           int32
	UID            uint64
	ErrorMessage   string
	Attributes     []string
	Severity       FaultSeverity
}

// SystemFaultState carries the robot's active and historical system faults.
type SystemFaultState struct {
	Faults           []SystemFault
	HistoricalFaults []SystemFault
}

// ManipulatorState is the raw report for an attached arm and gripper. The
// pointer fields distinguish an unmeasured quantity from a measured zero.
type ManipulatorState struct {
	GripperOpenPercentage           float64
	IsGripperHoldingItem            bool
	EstimatedEndEffectorForceInHand *r3.Vector
	StowState                       StowState
	VelocityOfHandInVision          *Twist
	VelocityOfHandInOdom            *Twist
	CarryState                      CarryState
}

// BehaviorFault is one fault raised by the robot's behavior system.
type BehaviorFault struct {
	BehaviorFaultID uint32
	OnsetTimestamp  *timestamppb.Timestamp
	Cause           BehaviorFaultCause
	Status          BehaviorFaultStatus
}

// BehaviorFaultState carries the robot's active behavior faults.
type BehaviorFaultState struct {
	Faults []BehaviorFault
}
