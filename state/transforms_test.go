package state

import (
	"math"
	"testing"
	"time"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/strideworks/quadstate/spatialmath"
	"github.com/strideworks/quadstate/telemetry"
)

var acquisitionTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func kinematicSnapshot(edges map[string]telemetry.FrameEdge) *telemetry.Snapshot {
	return &telemetry.Snapshot{
		Kinematics: &telemetry.KinematicState{
			AcquisitionTimestamp: timestamppb.New(acquisitionTime),
			Transforms:           telemetry.FrameTreeSnapshot{ChildToParent: edges},
		},
	}
}

func identityEdge(parent string, translation r3.Vector) telemetry.FrameEdge {
	return telemetry.FrameEdge{
		ParentFrameName: parent,
		ParentTFormChild: spatialmath.RigidTransform{
			Rotation:    quat.Number{Real: 1},
			Translation: translation,
		},
	}
}

func TestTransformTreeAbsentKinematics(t *testing.T) {
	tree := transformTree(&telemetry.Snapshot{}, time.Second, "", "")
	test.That(t, tree, test.ShouldBeNil)
}

func TestTransformTreeForwardEdges(t *testing.T) {
	snap := kinematicSnapshot(map[string]telemetry.FrameEdge{
		"foot_fl": identityEdge("body", r3.Vector{X: 1}),
		"foot_fr": identityEdge("body", r3.Vector{X: 1, Y: -1}),
	})

	tree := transformTree(snap, 2*time.Second, "robo/", "")
	test.That(t, len(tree), test.ShouldEqual, 2)

	// Sorted child order keeps output stable across calls.
	test.That(t, tree[0].ChildFrameID, test.ShouldEqual, "robo/foot_fl")
	test.That(t, tree[0].ParentFrameID, test.ShouldEqual, "robo/body")
	test.That(t, tree[1].ChildFrameID, test.ShouldEqual, "robo/foot_fr")

	for _, edge := range tree {
		test.That(t, edge.Timestamp, test.ShouldEqual, acquisitionTime.Add(2*time.Second))
	}
	test.That(t, tree[0].Transform.Translation, test.ShouldResemble, r3.Vector{X: 1})
}

func TestTransformTreeInvertsTargetEdge(t *testing.T) {
	snap := kinematicSnapshot(map[string]telemetry.FrameEdge{
		"foot_fl": identityEdge("body", r3.Vector{X: 1}),
	})

	tree := transformTree(snap, 0, "", "foot_fl")
	test.That(t, len(tree), test.ShouldEqual, 1)
	test.That(t, tree[0].ParentFrameID, test.ShouldEqual, "foot_fl")
	test.That(t, tree[0].ChildFrameID, test.ShouldEqual, "body")
	test.That(t, tree[0].Transform.Translation.X, test.ShouldAlmostEqual, -1)
	test.That(t, tree[0].Transform.Rotation.Real, test.ShouldAlmostEqual, 1)
}

func TestTransformTreeInverseRoundTrip(t *testing.T) {
	original := spatialmath.RigidTransform{
		Rotation: quat.Number{
			Real: math.Cos(0.4),
			Imag: math.Sin(0.4) * 0.6,
			Jmag: math.Sin(0.4) * 0.8,
		},
		Translation: r3.Vector{X: 0.3, Y: -0.2, Z: 1.1},
	}
	snap := kinematicSnapshot(map[string]telemetry.FrameEdge{
		"hand": {ParentFrameName: "body", ParentTFormChild: original},
	})

	tree := transformTree(snap, 0, "", "hand")
	test.That(t, len(tree), test.ShouldEqual, 1)

	identity := original.Compose(tree[0].Transform)
	test.That(t, math.Abs(identity.Rotation.Real), test.ShouldAlmostEqual, 1, 1e-9)
	test.That(t, identity.Translation.Norm(), test.ShouldAlmostEqual, 0, 1e-9)
}

func TestTransformTreeInverseTargetRespectsPrefix(t *testing.T) {
	snap := kinematicSnapshot(map[string]telemetry.FrameEdge{
		"foot_fl": identityEdge("body", r3.Vector{X: 1}),
	})

	// An unprefixed target does not match once edges are prefixed.
	tree := transformTree(snap, 0, "robo/", "foot_fl")
	test.That(t, tree[0].ChildFrameID, test.ShouldEqual, "robo/foot_fl")
	test.That(t, tree[0].ParentFrameID, test.ShouldEqual, "robo/body")

	tree = transformTree(snap, 0, "robo/", "robo/foot_fl")
	test.That(t, tree[0].ChildFrameID, test.ShouldEqual, "robo/body")
	test.That(t, tree[0].ParentFrameID, test.ShouldEqual, "robo/foot_fl")
}
