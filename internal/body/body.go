// Package body is the host side "move by vector" primitive. It only resolves
// vertical contact against a ground height field.
package body

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Ground reports the ground height under a point.
type Ground interface {
	HeightAt(x, z float32) float32
}

// FlatGround is a horizontal plane.
type FlatGround struct {
	Height float32
}

func (g FlatGround) HeightAt(x, z float32) float32 {
	return g.Height
}

// CharacterBody moves by displacement and snaps onto the ground.
type CharacterBody struct {
	Position mgl32.Vec3
	ground   Ground
	grounded bool
}

func NewCharacterBody(ground Ground, position mgl32.Vec3) *CharacterBody {
	if ground == nil {
		ground = FlatGround{}
	}
	b := &CharacterBody{Position: position, ground: ground}
	if h := ground.HeightAt(position.X(), position.Z()); position.Y() <= h {
		b.Position[1] = h
		b.grounded = true
	}
	return b
}

// Move applies delta and resolves contact with the ground. Ending at or below the
// surface puts the body on it and marks it grounded.
func (b *CharacterBody) Move(delta mgl32.Vec3) {
	b.Position = b.Position.Add(delta)

	h := b.ground.HeightAt(b.Position.X(), b.Position.Z())
	if b.Position.Y() <= h {
		b.Position[1] = h
		b.grounded = true
		return
	}
	b.grounded = false
}

// IsGrounded reports whether the last Move ended touching the ground.
func (b *CharacterBody) IsGrounded() bool {
	return b.grounded
}

// Teleport places the body without resolving contact.
func (b *CharacterBody) Teleport(position mgl32.Vec3) {
	b.Position = position
	b.grounded = false
}

func (b *CharacterBody) Ground() Ground {
	return b.ground
}
