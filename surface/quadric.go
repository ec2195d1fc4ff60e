package surface

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// XPlane is the plane x = X0.
type XPlane struct {
	Id int32
	X0 float64
}

func (s *XPlane) ID() int32        { return s.Id }
func (s *XPlane) TypeName() string { return "x-plane" }

func (s *XPlane) Evaluate(r v3.Vec) float64 { return r.X - s.X0 }

func (s *XPlane) Normal(r v3.Vec) v3.Vec { return v3.Vec{X: 1} }

func (s *XPlane) Distance(r, u v3.Vec, coincident bool) float64 {
	f := s.X0 - r.X
	if coincident || math.Abs(f) < fpCoincident || u.X == 0 {
		return Infinity
	}
	d := f / u.X
	if d < 0 {
		return Infinity
	}
	return d
}

// YPlane is the plane y = Y0.
type YPlane struct {
	Id int32
	Y0 float64
}

func (s *YPlane) ID() int32        { return s.Id }
func (s *YPlane) TypeName() string { return "y-plane" }

func (s *YPlane) Evaluate(r v3.Vec) float64 { return r.Y - s.Y0 }

func (s *YPlane) Normal(r v3.Vec) v3.Vec { return v3.Vec{Y: 1} }

func (s *YPlane) Distance(r, u v3.Vec, coincident bool) float64 {
	f := s.Y0 - r.Y
	if coincident || math.Abs(f) < fpCoincident || u.Y == 0 {
		return Infinity
	}
	d := f / u.Y
	if d < 0 {
		return Infinity
	}
	return d
}

// ZPlane is the plane z = Z0.
type ZPlane struct {
	Id int32
	Z0 float64
}

func (s *ZPlane) ID() int32        { return s.Id }
func (s *ZPlane) TypeName() string { return "z-plane" }

func (s *ZPlane) Evaluate(r v3.Vec) float64 { return r.Z - s.Z0 }

func (s *ZPlane) Normal(r v3.Vec) v3.Vec { return v3.Vec{Z: 1} }

func (s *ZPlane) Distance(r, u v3.Vec, coincident bool) float64 {
	f := s.Z0 - r.Z
	if coincident || math.Abs(f) < fpCoincident || u.Z == 0 {
		return Infinity
	}
	d := f / u.Z
	if d < 0 {
		return Infinity
	}
	return d
}

// Plane is the general plane A*x + B*y + C*z = D.
type Plane struct {
	Id         int32
	A, B, C, D float64
}

func (s *Plane) ID() int32        { return s.Id }
func (s *Plane) TypeName() string { return "plane" }

func (s *Plane) Evaluate(r v3.Vec) float64 {
	return s.A*r.X + s.B*r.Y + s.C*r.Z - s.D
}

func (s *Plane) Normal(r v3.Vec) v3.Vec {
	return v3.Vec{X: s.A, Y: s.B, Z: s.C}
}

func (s *Plane) Distance(r, u v3.Vec, coincident bool) float64 {
	f := s.Evaluate(r)
	proj := s.A*u.X + s.B*u.Y + s.C*u.Z
	if coincident || math.Abs(f) < fpCoincident || proj == 0 {
		return Infinity
	}
	d := -f / proj
	if d < 0 {
		return Infinity
	}
	return d
}

// Sphere is the sphere of radius R centered on (X0, Y0, Z0).
type Sphere struct {
	Id         int32
	X0, Y0, Z0 float64
	R          float64
}

func (s *Sphere) ID() int32        { return s.Id }
func (s *Sphere) TypeName() string { return "sphere" }

func (s *Sphere) Evaluate(r v3.Vec) float64 {
	x := r.X - s.X0
	y := r.Y - s.Y0
	z := r.Z - s.Z0
	return x*x + y*y + z*z - s.R*s.R
}

func (s *Sphere) Normal(r v3.Vec) v3.Vec {
	return v3.Vec{
		X: 2 * (r.X - s.X0),
		Y: 2 * (r.Y - s.Y0),
		Z: 2 * (r.Z - s.Z0),
	}
}

func (s *Sphere) Distance(r, u v3.Vec, coincident bool) float64 {
	x := r.X - s.X0
	y := r.Y - s.Y0
	z := r.Z - s.Z0

	k := x*u.X + y*u.Y + z*u.Z
	c := x*x + y*y + z*z - s.R*s.R
	quad := k*k - c
	if quad < 0 {
		// No intersection with the sphere.
		return Infinity
	}

	if coincident || math.Abs(c) < fpCoincident {
		// Particle is on the surface itself. The first root is zero; the
		// other is meaningful only when the ray points back through the
		// sphere.
		if k >= 0 {
			return Infinity
		}
		return -k + math.Sqrt(quad)
	} else if c < 0 {
		// Particle is inside the sphere, so one root is ahead and one is
		// behind.
		return -k + math.Sqrt(quad)
	}
	// Particle is outside the sphere.
	d := -k - math.Sqrt(quad)
	if d < 0 {
		return Infinity
	}
	return d
}

// XCylinder is an infinite cylinder of radius R whose axis is parallel to
// the x axis through (Y0, Z0).
type XCylinder struct {
	Id     int32
	Y0, Z0 float64
	R      float64
}

func (s *XCylinder) ID() int32        { return s.Id }
func (s *XCylinder) TypeName() string { return "x-cylinder" }

func (s *XCylinder) Evaluate(r v3.Vec) float64 {
	y := r.Y - s.Y0
	z := r.Z - s.Z0
	return y*y + z*z - s.R*s.R
}

func (s *XCylinder) Normal(r v3.Vec) v3.Vec {
	return v3.Vec{Y: 2 * (r.Y - s.Y0), Z: 2 * (r.Z - s.Z0)}
}

func (s *XCylinder) Distance(r, u v3.Vec, coincident bool) float64 {
	y := r.Y - s.Y0
	z := r.Z - s.Z0
	a := u.Y*u.Y + u.Z*u.Z
	if a == 0 {
		// Ray is parallel to the cylinder axis.
		return Infinity
	}
	k := y*u.Y + z*u.Z
	c := y*y + z*z - s.R*s.R
	return cylinderDistance(a, k, c, coincident)
}

// YCylinder is an infinite cylinder of radius R whose axis is parallel to
// the y axis through (X0, Z0).
type YCylinder struct {
	Id     int32
	X0, Z0 float64
	R      float64
}

func (s *YCylinder) ID() int32        { return s.Id }
func (s *YCylinder) TypeName() string { return "y-cylinder" }

func (s *YCylinder) Evaluate(r v3.Vec) float64 {
	x := r.X - s.X0
	z := r.Z - s.Z0
	return x*x + z*z - s.R*s.R
}

func (s *YCylinder) Normal(r v3.Vec) v3.Vec {
	return v3.Vec{X: 2 * (r.X - s.X0), Z: 2 * (r.Z - s.Z0)}
}

func (s *YCylinder) Distance(r, u v3.Vec, coincident bool) float64 {
	x := r.X - s.X0
	z := r.Z - s.Z0
	a := u.X*u.X + u.Z*u.Z
	if a == 0 {
		return Infinity
	}
	k := x*u.X + z*u.Z
	c := x*x + z*z - s.R*s.R
	return cylinderDistance(a, k, c, coincident)
}

// ZCylinder is an infinite cylinder of radius R whose axis is parallel to
// the z axis through (X0, Y0).
type ZCylinder struct {
	Id     int32
	X0, Y0 float64
	R      float64
}

func (s *ZCylinder) ID() int32        { return s.Id }
func (s *ZCylinder) TypeName() string { return "z-cylinder" }

func (s *ZCylinder) Evaluate(r v3.Vec) float64 {
	x := r.X - s.X0
	y := r.Y - s.Y0
	return x*x + y*y - s.R*s.R
}

func (s *ZCylinder) Normal(r v3.Vec) v3.Vec {
	return v3.Vec{X: 2 * (r.X - s.X0), Y: 2 * (r.Y - s.Y0)}
}

func (s *ZCylinder) Distance(r, u v3.Vec, coincident bool) float64 {
	x := r.X - s.X0
	y := r.Y - s.Y0
	a := u.X*u.X + u.Y*u.Y
	if a == 0 {
		return Infinity
	}
	k := x*u.X + y*u.Y
	c := x*x + y*y - s.R*s.R
	return cylinderDistance(a, k, c, coincident)
}

// cylinderDistance solves the reduced quadratic a*d^2 + 2*k*d + c = 0 for
// the nearest positive root, treating near-zero c as a coincident start.
func cylinderDistance(a, k, c float64, coincident bool) float64 {
	quad := k*k - a*c
	if quad < 0 {
		return Infinity
	}

	if coincident || math.Abs(c) < fpCoincident {
		if k >= 0 {
			return Infinity
		}
		return (-k + math.Sqrt(quad)) / a
	} else if c < 0 {
		return (-k + math.Sqrt(quad)) / a
	}
	d := (-k - math.Sqrt(quad)) / a
	if d < 0 {
		return Infinity
	}
	return d
}
