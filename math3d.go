package main

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 is a position, scale or set of Euler angles (radians).
type Vec3 = mgl32.Vec3

// Mat4 is a 4x4 matrix stored column-major, the layout UniformMatrix4fv expects.
type Mat4 = mgl32.Mat4

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	return mgl32.Ident4()
}

// RotateTSRT builds translate(t2) * rotate(r) * scale(s) * translate(t1).
//
// The rotation is Ry * Rx * Rz expanded into closed form, so the entries
// differ in rounding from a product of three rotation matrices.
func RotateTSRT(t1, s, r, t2 Vec3) Mat4 {
	sx, cx := math32.Sincos(r.X())
	sy, cy := math32.Sincos(r.Y())
	sz, cz := math32.Sincos(r.Z())

	m0 := s.X() * (cy*cz + sx*sy*sz)
	m1 := s.Y() * (-sz*cy + cz*sx*sy)
	m2 := s.Z() * (sy * cx)
	m4 := s.X() * (sz * cx)
	m5 := s.Y() * (cx * cz)
	m6 := s.Z() * (-sx)
	m8 := s.X() * (-sy*cz + cy*sx*sz)
	m9 := s.Y() * (sy*sz + cy*sx*cz)
	m10 := s.Z() * (cx * cy)

	return Mat4{
		m0, m4, m8, 0,
		m1, m5, m9, 0,
		m2, m6, m10, 0,
		t2.X() + (m0*t1.X() + m1*t1.Y() + m2*t1.Z()),
		t2.Y() + (m4*t1.X() + m5*t1.Y() + m6*t1.Z()),
		t2.Z() + (m8*t1.X() + m9*t1.Y() + m10*t1.Z()),
		1,
	}
}

// Perspective returns a right-handed projection matrix mapping the view
// frustum to clip space. Inputs are not validated: callers must pass
// 0 < fovY < Pi, aspect > 0 and 0 < near < far.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := 1 / math32.Tan(fovY/2)
	nf := 1 / (near - far)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, (2 * far * near) * nf, 0,
	}
}

// cameraMatrix is the view transform for a given frame: the mesh yaws and
// pitches by frame/10000 radians and sits 1.5 units in front of the eye.
func cameraMatrix(frame uint64) Mat4 {
	angle := float32(math.Mod(cameraAngle(frame), 2*math.Pi))
	return RotateTSRT(
		Vec3{0, 0, 0},
		Vec3{1, 1, 1},
		Vec3{angle, angle, 0},
		Vec3{0, 0, -1.5},
	)
}

// cameraAngle is kept in float64 and wrapped before the float32 trig, so
// it keeps growing long after a float32 counter would stall.
func cameraAngle(frame uint64) float64 {
	return float64(frame) / 10000
}
