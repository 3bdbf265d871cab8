package state

import (
	"time"

	"github.com/pkg/errors"

	"github.com/strideworks/quadstate/spatialmath"
	"github.com/strideworks/quadstate/telemetry"
)

const bodyFrameName = "body"

// OdometryFrame selects which fixed world anchor odometry is expressed in.
type OdometryFrame string

// The two supported world anchors: the drift-prone kinematic odometry frame
// and the vision-corrected world frame.
const (
	OdometryFrameOdom   OdometryFrame = "odom"
	OdometryFrameVision OdometryFrame = "vision"
)

// ErrMissingAnchor indicates the configured odometry reference frame is not in
// the snapshot's frame tree. This is a configuration mismatch, not a runtime
// race, so it fails the translation rather than defaulting.
var ErrMissingAnchor = errors.New("reference frame missing from transform snapshot")

// odomTwist reports the body velocity in the kinematic odometry frame.
func odomTwist(snap *telemetry.Snapshot, skew time.Duration) *StampedTwist {
	kinematics := snap.Kinematics
	if kinematics == nil {
		return nil
	}
	out := &StampedTwist{Timestamp: CorrectTimestamp(kinematics.AcquisitionTimestamp, skew)}
	if velocity := kinematics.VelocityOfBodyInOdom; velocity != nil {
		out.Twist = *twistFromRaw(velocity)
	}
	return out
}

// odometry derives the body pose in the chosen anchor frame from the
// snapshot's frame tree and merges it with the body twist expressed in that
// same frame. An anchor absent from the tree fails the whole translation.
func odometry(snap *telemetry.Snapshot, skew time.Duration, prefix string, frame OdometryFrame) (*Odometry, error) {
	kinematics := snap.Kinematics
	if kinematics == nil {
		return nil, nil
	}

	anchorTFormBody, err := lookupTransform(kinematics.Transforms, string(frame), bodyFrameName)
	if err != nil {
		return nil, err
	}

	out := &Odometry{
		Timestamp:    CorrectTimestamp(kinematics.AcquisitionTimestamp, skew),
		FrameID:      prefix + string(frame),
		ChildFrameID: prefix + bodyFrameName,
		Pose: Pose{
			Position:    anchorTFormBody.Translation,
			Orientation: anchorTFormBody.Rotation,
		},
	}

	velocity := kinematics.VelocityOfBodyInOdom
	if frame == OdometryFrameVision {
		velocity = kinematics.VelocityOfBodyInVision
	}
	if velocity != nil {
		out.Twist = *twistFromRaw(velocity)
	}
	return out, nil
}

// lookupTransform returns the pose of frame `to` expressed in frame `from` by
// composing edges through the snapshot's frame tree.
func lookupTransform(tree telemetry.FrameTreeSnapshot, from, to string) (spatialmath.RigidTransform, error) {
	for _, name := range []string{from, to} {
		if !frameInTree(tree, name) {
			return spatialmath.RigidTransform{}, errors.Wrapf(ErrMissingAnchor, "%q", name)
		}
	}
	rootTFormFrom := rootTForm(tree, from)
	rootTFormTo := rootTForm(tree, to)
	return rootTFormFrom.Invert().Compose(rootTFormTo), nil
}

func frameInTree(tree telemetry.FrameTreeSnapshot, name string) bool {
	if _, ok := tree.ChildToParent[name]; ok {
		return true
	}
	for _, edge := range tree.ChildToParent {
		if edge.ParentFrameName == name {
			return true
		}
	}
	return false
}

// rootTForm composes the chain of parent edges above a frame, yielding the
// frame's pose in the tree root. The walk is bounded by the edge count so
// malformed cyclic input cannot hang it.
func rootTForm(tree telemetry.FrameTreeSnapshot, name string) spatialmath.RigidTransform {
	tform := spatialmath.NewZeroRigidTransform()
	current := name
	for range tree.ChildToParent {
		edge, ok := tree.ChildToParent[current]
		if !ok {
			break
		}
		tform = edge.ParentTFormChild.Compose(tform)
		current = edge.ParentFrameName
	}
	return tform
}
