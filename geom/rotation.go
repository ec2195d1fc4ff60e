/*Package geom contains geometric helper routines for coordinate transforms
of filled cells: Euler-angle rotation matrices and their application to
position and direction vectors.
*/
package geom

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/cmather/minimc/math/mat"
)

// Rotation holds the three input Euler angles of a cell rotation, in
// degrees, together with the rotation matrix computed from them. The matrix
// is the inverse of the extrinsic Z-Y-X rotation by (phi, theta, psi), so
// applying it maps parent-universe coordinates into the frame of the filled
// universe. The nine matrix entries are stored row-major.
type Rotation struct {
	Phi, Theta, Psi float64
	Matrix          [9]float64
}

// NewRotation creates a Rotation from Euler angles given in degrees.
func NewRotation(phi, theta, psi float64) *Rotation {
	rot := &Rotation{Phi: phi, Theta: theta, Psi: psi}

	// The stored matrix corresponds to rotating by the negated angles.
	p := -phi * math.Pi / 180.0
	t := -theta * math.Pi / 180.0
	s := -psi * math.Pi / 180.0

	m := RotZ(s).Mult(RotY(t)).Mult(RotX(p))
	copy(rot.Matrix[:], m.Vals)

	return rot
}

// RotX returns the matrix of a rotation by the angle a, in radians, around
// the x axis.
func RotX(a float64) *mat.Matrix {
	sin, cos := math.Sin(a), math.Cos(a)
	return mat.NewMatrix([]float64{
		1, 0, 0,
		0, cos, -sin,
		0, sin, cos,
	}, 3, 3)
}

// RotY returns the matrix of a rotation by the angle a, in radians, around
// the y axis.
func RotY(a float64) *mat.Matrix {
	sin, cos := math.Sin(a), math.Cos(a)
	return mat.NewMatrix([]float64{
		cos, 0, sin,
		0, 1, 0,
		-sin, 0, cos,
	}, 3, 3)
}

// RotZ returns the matrix of a rotation by the angle a, in radians, around
// the z axis.
func RotZ(a float64) *mat.Matrix {
	sin, cos := math.Sin(a), math.Cos(a)
	return mat.NewMatrix([]float64{
		cos, -sin, 0,
		sin, cos, 0,
		0, 0, 1,
	}, 3, 3)
}

// Apply rotates the vector v by the rotation matrix.
func (rot *Rotation) Apply(v v3.Vec) v3.Vec {
	m := &rot.Matrix
	return v3.Vec{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// ApplyInverse rotates the vector v by the transpose of the rotation
// matrix, undoing Apply.
func (rot *Rotation) ApplyInverse(v v3.Vec) v3.Vec {
	m := &rot.Matrix
	return v3.Vec{
		X: m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		Y: m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		Z: m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}
