package factory

import (
	"github.com/automoto/cosmic-survivor/components"
	cfg "github.com/automoto/cosmic-survivor/config"
	"github.com/solarlune/resolv"
)

// NewSpace creates the broadphase space. It extends SpaceMargin past every
// playfield edge so off-screen spawns still register in cells.
func NewSpace() *resolv.Space {
	m := cfg.C.SpaceMargin
	return resolv.NewSpace(cfg.C.Width+2*m, cfg.C.Height+2*m, cfg.C.CellSize, cfg.C.CellSize)
}

// PlaceObject moves a broadphase object so its box bounds the circle at pos.
func PlaceObject(obj *resolv.Object, pos components.Vector, radius float64) {
	m := float64(cfg.C.SpaceMargin)
	obj.X = pos.X - radius + m
	obj.Y = pos.Y - radius + m
	obj.W = radius * 2
	obj.H = radius * 2
	obj.Update()
}

func newBody(pos components.Vector, radius float64, tags ...string) *resolv.Object {
	m := float64(cfg.C.SpaceMargin)
	return resolv.NewObject(pos.X-radius+m, pos.Y-radius+m, radius*2, radius*2, tags...)
}
