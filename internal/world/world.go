// Package world spins the planet in the middle of the window.
package world

import (
	"math"

	"github.com/skyworld/skyworld"
)

// Rotator turns a planet sprite one full revolution per period, forever.
type Rotator struct {
	planet *skyworld.Node
}

// New centers planet in a width x height window and starts it turning
// clockwise, one revolution every period seconds.
func New(planet *skyworld.Node, width, height, period float64) *Rotator {
	planet.SetPosition(width/2, height/2)
	planet.RunAction(skyworld.RepeatForever(skyworld.RotateBy(2*math.Pi, float32(period))))
	return &Rotator{planet: planet}
}

// Attach adds the planet to the scene above everything added before it.
func (r *Rotator) Attach(scene *skyworld.Scene) {
	scene.Root().AddChild(r.planet)
}

// Planet returns the rotating sprite.
func (r *Rotator) Planet() *skyworld.Node {
	return r.planet
}
