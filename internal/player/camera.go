package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	twoPi    = 2 * math.Pi
	halfPi   = math.Pi / 2
	maxPitch = float32(halfPi)
	fullTurn = float32(twoPi)
)

// EyePosition is where aim and view rays start.
func (s State) EyePosition() mgl32.Vec3 {
	return s.Position
}

// Front returns the unit aim vector for the current yaw and pitch.
func (s State) Front() mgl32.Vec3 {
	return Direction(s.Yaw, s.Pitch)
}

// Heading returns the horizontal unit vector for the current yaw.
func (s State) Heading() mgl32.Vec3 {
	yaw := float64(s.Yaw)
	return mgl32.Vec3{float32(math.Cos(yaw)), float32(math.Sin(yaw)), 0}
}

// Direction converts yaw and pitch (radians) into a unit vector.
func Direction(yaw, pitch float32) mgl32.Vec3 {
	y, p := float64(yaw), float64(pitch)
	cp := math.Cos(p)
	return mgl32.Vec3{
		float32(cp * math.Cos(y)),
		float32(cp * math.Sin(y)),
		float32(math.Sin(p)),
	}
}

// WrapYaw maps any angle into [0, 2π).
func WrapYaw(yaw float32) float32 {
	w := float32(math.Mod(float64(yaw), twoPi))
	if w < 0 {
		w += fullTurn
	}
	if w >= fullTurn {
		w = 0
	}
	return w
}

// ClampPitch limits pitch to [-π/2, π/2].
func ClampPitch(pitch float32) float32 {
	if pitch > maxPitch {
		return maxPitch
	}
	if pitch < -maxPitch {
		return -maxPitch
	}
	return pitch
}
