// Package spatialmath implements the rigid-body math used when reassembling a
// robot's frame tree: unit-quaternion rotations paired with translations.
package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// RigidTransform relates a child frame to its parent frame. The rotation is a
// unit quaternion and the translation is expressed in the parent frame.
type RigidTransform struct {
	Rotation    quat.Number
	Translation r3.Vector
}

// NewZeroRigidTransform returns an identity transform. The zero value of
// quat.Number is not a valid rotation, so this should be used instead of
// RigidTransform{}.
func NewZeroRigidTransform() RigidTransform {
	return RigidTransform{Rotation: quat.Number{Real: 1}}
}

// Invert returns the transform relating the two frames in the opposite
// direction: the rotation is conjugated and the translation is the negated
// original re-expressed in the original child frame.
func (rt RigidTransform) Invert() RigidTransform {
	// For unit quaternions the conjugate is the inverse.
	inverse := quat.Conj(rt.Rotation)
	return RigidTransform{
		Rotation:    inverse,
		Translation: rotateVector(inverse, rt.Translation).Mul(-1),
	}
}

// Compose returns the transform equivalent to applying other and then rt, i.e.
// a_tform_c given rt = a_tform_b and other = b_tform_c.
func (rt RigidTransform) Compose(other RigidTransform) RigidTransform {
	return RigidTransform{
		Rotation:    quat.Mul(rt.Rotation, other.Rotation),
		Translation: rt.Translation.Add(rotateVector(rt.Rotation, other.Translation)),
	}
}

// TransformPoint expresses a point in the child frame as a point in the parent
// frame.
func (rt RigidTransform) TransformPoint(pt r3.Vector) r3.Vector {
	return rotateVector(rt.Rotation, pt).Add(rt.Translation)
}

// AngularVelocity contains angular velocity in rad/s across x/y/z axes.
type AngularVelocity r3.Vector

func rotateVector(q quat.Number, v r3.Vector) r3.Vector {
	qv := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	rotated := quat.Mul(quat.Mul(q, qv), quat.Conj(q))
	return r3.Vector{X: rotated.Imag, Y: rotated.Jmag, Z: rotated.Kmag}
}
