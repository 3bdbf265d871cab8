package telemetry

import "github.com/pkg/errors"

// JointID is the robot's internal identifier for one joint.
type JointID string

// The full joint set for the supported robot configuration: three joints per
// leg plus eight arm joints.
const (
	JointFrontLeftHipX  JointID = "fl.hx"
	JointFrontLeftHipY  JointID = "fl.hy"
	JointFrontLeftKnee  JointID = "fl.kn"
	JointFrontRightHipX JointID = "fr.hx"
	JointFrontRightHipY JointID = "fr.hy"
	JointFrontRightKnee JointID = "fr.kn"
	JointRearLeftHipX   JointID = "hl.hx"
	JointRearLeftHipY   JointID = "hl.hy"
	JointRearLeftKnee   JointID = "hl.kn"
	JointRearRightHipX  JointID = "hr.hx"
	JointRearRightHipY  JointID = "hr.hy"
	JointRearRightKnee  JointID = "hr.kn"
	JointArmShoulder0   JointID = "arm0.sh0"
	JointArmShoulder1   JointID = "arm0.sh1"
	JointArmHumeralRot  JointID = "arm0.hr0"
	JointArmElbow0      JointID = "arm0.el0"
	JointArmElbow1      JointID = "arm0.el1"
	JointArmWrist0      JointID = "arm0.wr0"
	JointArmWrist1      JointID = "arm0.wr1"
	JointArmFinger      JointID = "arm0.f1x"
)

// ErrUnknownJoint indicates a joint id that is not part of the supported robot
// configuration, typically a firmware/mapping mismatch.
var ErrUnknownJoint = errors.New("unknown joint id")

var friendlyJointNames = map[JointID]string{
	JointFrontLeftHipX:  "front_left_hip_x",
	JointFrontLeftHipY:  "front_left_hip_y",
	JointFrontLeftKnee:  "front_left_knee",
	JointFrontRightHipX: "front_right_hip_x",
	JointFrontRightHipY: "front_right_hip_y",
	JointFrontRightKnee: "front_right_knee",
	JointRearLeftHipX:   "rear_left_hip_x",
	JointRearLeftHipY:   "rear_left_hip_y",
	JointRearLeftKnee:   "rear_left_knee",
	JointRearRightHipX:  "rear_right_hip_x",
	JointRearRightHipY:  "rear_right_hip_y",
	JointRearRightKnee:  "rear_right_knee",
	JointArmShoulder0:   "arm_sh0",
	JointArmShoulder1:   "arm_sh1",
	JointArmHumeralRot:  "arm_hr0",
	JointArmElbow0:      "arm_el0",
	JointArmElbow1:      "arm_el1",
	JointArmWrist0:      "arm_wr0",
	JointArmWrist1:      "arm_wr1",
	JointArmFinger:      "arm_f1x",
}

// FriendlyJointName resolves an internal joint id to its human-readable name.
// Ids outside the supported joint set fail with ErrUnknownJoint.
func FriendlyJointName(id JointID) (string, error) {
	name, ok := friendlyJointNames[id]
	if !ok {
		return "", errors.Wrapf(ErrUnknownJoint, "%q", id)
	}
	return name, nil
}
