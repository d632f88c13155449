// Package smoothing holds the critically damped filters used for facing and
// camera follow. Every filter carries its own velocity state between calls and
// is parameterised by a time constant, not by a frame count.
package smoothing

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MinSmoothTime is the floor applied to smoothTime before computing omega.
const MinSmoothTime = 0.0001

// Infinity is the default maxSpeed: no clamp on the rate of change.
var Infinity = float32(math.Inf(1))

// Clamp01 clamps t to [0, 1].
func Clamp01(t float32) float32 {
	return mgl32.Clamp(t, 0, 1)
}

// Lerp interpolates from a to b with t clamped to [0, 1].
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*Clamp01(t)
}

// Repeat loops t so that it is never larger than length and never smaller than 0.
func Repeat(t, length float32) float32 {
	v := t - float32(math.Floor(float64(t/length)))*length
	return mgl32.Clamp(v, 0, length)
}

// DeltaAngle returns the shortest signed difference between two angles in degrees.
func DeltaAngle(current, target float32) float32 {
	delta := Repeat(target-current, 360)
	if delta > 180 {
		delta -= 360
	}
	return delta
}

// decay is the polynomial approximation of exp(-omega*dt).
func decay(smoothTime, dt float32) (omega, e float32) {
	omega = 2 / smoothTime
	x := omega * dt
	e = 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)
	return omega, e
}

// SmoothDamp moves current toward target without overshooting. velocity is the
// filter state and is updated in place. dt must be positive.
func SmoothDamp(current, target float32, velocity *float32, smoothTime, maxSpeed, dt float32) float32 {
	smoothTime = float32(math.Max(MinSmoothTime, float64(smoothTime)))
	omega, e := decay(smoothTime, dt)

	change := current - target
	originalTo := target

	maxChange := maxSpeed * smoothTime
	change = mgl32.Clamp(change, -maxChange, maxChange)
	target = current - change

	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * e
	output := target + (change+temp)*e

	if (originalTo-current > 0) == (output > originalTo) {
		output = originalTo
		*velocity = (output - originalTo) / dt
	}
	return output
}

// SmoothDampAngle is SmoothDamp for angles in degrees; it always takes the short
// way around through ±180.
func SmoothDampAngle(current, target float32, velocity *float32, smoothTime, maxSpeed, dt float32) float32 {
	target = current + DeltaAngle(current, target)
	return SmoothDamp(current, target, velocity, smoothTime, maxSpeed, dt)
}

// SmoothDampVec3 is the vector form of SmoothDamp. maxSpeed clamps the magnitude
// of the change, and the overshoot guard works on the whole vector.
func SmoothDampVec3(current, target mgl32.Vec3, velocity *mgl32.Vec3, smoothTime, maxSpeed, dt float32) mgl32.Vec3 {
	smoothTime = float32(math.Max(MinSmoothTime, float64(smoothTime)))
	omega, e := decay(smoothTime, dt)

	change := current.Sub(target)
	originalTo := target

	maxChange := maxSpeed * smoothTime
	if l := change.Len(); l > maxChange && l > 0 {
		change = change.Mul(maxChange / l)
	}
	target = current.Sub(change)

	temp := velocity.Add(change.Mul(omega)).Mul(dt)
	*velocity = velocity.Sub(temp.Mul(omega)).Mul(e)
	output := target.Add(change.Add(temp).Mul(e))

	if originalTo.Sub(current).Dot(output.Sub(originalTo)) > 0 {
		output = originalTo
		*velocity = output.Sub(originalTo).Mul(1 / dt)
	}
	return output
}
