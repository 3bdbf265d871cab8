package state

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/strideworks/quadstate/spatialmath"
	"github.com/strideworks/quadstate/telemetry"
)

const handFrameName = "hand"

// manipulatorState normalizes the arm and gripper report when present. The
// nil-able fields carry the robot's per-quantity presence bits through
// unchanged: a quantity the robot did not measure stays nil rather than
// becoming a zero vector.
func manipulatorState(snap *telemetry.Snapshot) *ManipulatorState {
	manipulator := snap.Manipulator
	if manipulator == nil {
		return nil
	}
	out := &ManipulatorState{
		GripperOpenPercentage: manipulator.GripperOpenPercentage,
		IsGripperHoldingItem:  manipulator.IsGripperHoldingItem,
		StowState:             manipulator.StowState,
		CarryState:            manipulator.CarryState,
	}
	if force := manipulator.EstimatedEndEffectorForceInHand; force != nil {
		forceCopy := *force
		out.EstimatedEndEffectorForceInHand = &forceCopy
	}
	if twist := manipulator.VelocityOfHandInVision; twist != nil {
		out.VelocityOfHandInVision = twistFromRaw(twist)
	}
	if twist := manipulator.VelocityOfHandInOdom; twist != nil {
		out.VelocityOfHandInOdom = twistFromRaw(twist)
	}
	return out
}

// endEffectorForce reports the estimated end-effector force in the hand frame.
// Absent when there is no manipulator or the force was not measured. The
// stamp comes from the kinematic acquisition instant since the force estimate
// is sampled with the kinematic state.
func endEffectorForce(snap *telemetry.Snapshot, skew time.Duration, prefix string) *EndEffectorForce {
	manipulator := snap.Manipulator
	if manipulator == nil || manipulator.EstimatedEndEffectorForceInHand == nil {
		return nil
	}
	var acquisition *timestamppb.Timestamp
	if snap.Kinematics != nil {
		acquisition = snap.Kinematics.AcquisitionTimestamp
	}
	return &EndEffectorForce{
		Timestamp: CorrectTimestamp(acquisition, skew),
		FrameID:   prefix + handFrameName,
		Force:     *manipulator.EstimatedEndEffectorForceInHand,
	}
}

func twistFromRaw(twist *telemetry.Twist) *Twist {
	return &Twist{
		Linear:  twist.Linear,
		Angular: spatialmath.AngularVelocity(twist.Angular),
	}
}
