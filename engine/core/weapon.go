package core

import (
	"fmt"
	"strings"
)

const (
	LaserDamage   = 10
	LaserRange    = 5
	MissileDamage = 20
	MissileRange  = 10
	MissileAmmo   = 5
)

// Weapon is a ship-mounted stat block. Ammo == nil means unlimited; when
// Ammo is set, AmmoLeft is set too and counts down with every shot.
type Weapon struct {
	Name           string
	Damage         int
	Range          int // Manhattan radius in cells
	AttacksPerTurn int
	AttacksLeft    int
	Ammo           *int
	AmmoLeft       *int
}

// NewLaser returns the default loadout weapon
func NewLaser() Weapon {
	return Weapon{
		Name:           "Laser",
		Damage:         LaserDamage,
		Range:          LaserRange,
		AttacksPerTurn: 1,
		AttacksLeft:    1,
	}
}

// NewMissileLauncher returns a long-range weapon with a finite magazine
func NewMissileLauncher() Weapon {
	ammo, left := MissileAmmo, MissileAmmo
	return Weapon{
		Name:           "Missile Launcher",
		Damage:         MissileDamage,
		Range:          MissileRange,
		AttacksPerTurn: 1,
		AttacksLeft:    1,
		Ammo:           &ammo,
		AmmoLeft:       &left,
	}
}

// WeaponByName resolves a loadout name such as "laser" or "missile"
func WeaponByName(name string) (Weapon, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "laser":
		return NewLaser(), true
	case "missile", "missile_launcher", "missilelauncher":
		return NewMissileLauncher(), true
	}
	return Weapon{}, false
}

func (w Weapon) Unlimited() bool {
	return w.Ammo == nil
}

// OutOfAmmo reports whether a limited weapon has spent its magazine
func (w Weapon) OutOfAmmo() bool {
	return w.AmmoLeft != nil && *w.AmmoLeft <= 0
}

// CanFire reports whether the weapon has an attack and ammo left this turn
func (w Weapon) CanFire() bool {
	return w.AttacksLeft > 0 && !w.OutOfAmmo()
}

func (w *Weapon) fire() {
	w.AttacksLeft--
	if w.AmmoLeft != nil {
		*w.AmmoLeft--
	}
}

func (w *Weapon) reload() {
	w.AttacksLeft = w.AttacksPerTurn
}

// clone deep-copies the ammo counters so the copy shares nothing
func (w Weapon) clone() Weapon {
	if w.Ammo != nil {
		ammo := *w.Ammo
		w.Ammo = &ammo
	}
	if w.AmmoLeft != nil {
		left := *w.AmmoLeft
		w.AmmoLeft = &left
	}
	return w
}

func (w Weapon) String() string {
	ammo := "Unlimited"
	if w.Ammo != nil && w.AmmoLeft != nil {
		ammo = fmt.Sprintf("%d/%d", *w.AmmoLeft, *w.Ammo)
	}
	return fmt.Sprintf("Damage: %d\nRange: %d\nAttacks: %d/%d\nAmmo: %s",
		w.Damage, w.Range, w.AttacksLeft, w.AttacksPerTurn, ammo)
}
