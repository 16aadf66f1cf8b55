// Package decorator layers power-ups around a game character without
// changing the character type.
package decorator

// Character reports the abilities it currently has.
type Character interface {
	Abilities() string
}

// Mario is the undecorated base character.
type Mario struct{}

func (Mario) Abilities() string { return "Mario" }

type powerUp struct {
	inner   Character
	ability string
}

func (p powerUp) Abilities() string {
	return p.inner.Abilities() + " with " + p.ability
}

// WithHeightUp makes the character taller.
func WithHeightUp(c Character) Character {
	return powerUp{inner: c, ability: "HeightUp"}
}

// WithGunPower lets the character shoot.
func WithGunPower(c Character) Character {
	return powerUp{inner: c, ability: "GunPower"}
}

// WithStarPower makes the character invincible. Unlike the other power-ups it
// wears off, so it remembers what it wrapped.
func WithStarPower(c Character) *StarPower {
	return &StarPower{powerUp: powerUp{inner: c, ability: "StarPower (limited time)"}}
}

// StarPower is a removable decorator.
type StarPower struct {
	powerUp
}

// Expire returns the character as it was before the star was collected.
func (s *StarPower) Expire() Character {
	return s.inner
}
