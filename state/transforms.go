package state

import (
	"sort"
	"time"

	"golang.org/x/exp/maps"

	"github.com/strideworks/quadstate/telemetry"
)

// transformTree assembles the frame-qualified transform set from the
// snapshot's child-to-parent edge map. Every edge shares the corrected
// kinematic acquisition timestamp. When a prefixed child frame matches
// inverseTarget, the edge is emitted with parent and child swapped and the
// transform geometrically inverted, so that frame can act as a parent in the
// consumer's tree. Edges are emitted in sorted child order so repeated
// translations of the same snapshot produce identical output.
func transformTree(snap *telemetry.Snapshot, skew time.Duration, prefix, inverseTarget string) []StampedTransform {
	kinematics := snap.Kinematics
	if kinematics == nil {
		return nil
	}
	stamp := CorrectTimestamp(kinematics.AcquisitionTimestamp, skew)
	edges := kinematics.Transforms.ChildToParent

	children := maps.Keys(edges)
	sort.Strings(children)

	out := make([]StampedTransform, 0, len(edges))
	for _, child := range children {
		edge := edges[child]
		childFrameID := prefix + child
		parentFrameID := prefix + edge.ParentFrameName
		if childFrameID == inverseTarget {
			out = append(out, StampedTransform{
				Timestamp:     stamp,
				ParentFrameID: childFrameID,
				ChildFrameID:  parentFrameID,
				Transform:     edge.ParentTFormChild.Invert(),
			})
			continue
		}
		out = append(out, StampedTransform{
			Timestamp:     stamp,
			ParentFrameID: parentFrameID,
			ChildFrameID:  childFrameID,
			Transform:     edge.ParentTFormChild,
		})
	}
	return out
}
