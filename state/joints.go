package state

import (
	"time"

	"github.com/strideworks/quadstate/telemetry"
)

// jointStates translates the full joint vector. The whole vector shares the
// kinematic acquisition timestamp. An id outside the supported joint set fails
// the translation; consumers assume complete, index-aligned joint vectors, so
// a partial vector is never produced.
func jointStates(snap *telemetry.Snapshot, skew time.Duration, prefix string) (*JointStates, error) {
	kinematics := snap.Kinematics
	if kinematics == nil {
		return nil, nil
	}
	out := &JointStates{
		Timestamp:  CorrectTimestamp(kinematics.AcquisitionTimestamp, skew),
		Names:      make([]string, 0, len(kinematics.JointStates)),
		Positions:  make([]float64, 0, len(kinematics.JointStates)),
		Velocities: make([]float64, 0, len(kinematics.JointStates)),
		Efforts:    make([]float64, 0, len(kinematics.JointStates)),
	}
	for _, joint := range kinematics.JointStates {
		name, err := telemetry.FriendlyJointName(joint.Name)
		if err != nil {
			return nil, err
		}
		out.Names = append(out.Names, prefix+name)
		out.Positions = append(out.Positions, joint.Position)
		out.Velocities = append(out.Velocities, joint.Velocity)
		out.Efforts = append(out.Efforts, joint.Load)
	}
	return out, nil
}
