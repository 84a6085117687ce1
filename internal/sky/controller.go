// Package sky drives the background of the demo: the day/night color fade,
// clouds drifting across the window, and the sun and moon taking turns
// crossing the sky.
package sky

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand/v2"

	"github.com/skyworld/skyworld"
)

// Config holds the sky's geometry and timing. Times are in seconds,
// positions in screen pixels with Y growing downward.
type Config struct {
	Width, Height float64

	// DayLength is a full sun-or-moon arc; each half of the arc takes a
	// quarter of it.
	DayLength float64

	// CloudMin and CloudMax bound a cloud's crossing time, inclusive.
	CloudMin, CloudMax int
	// CloudCheckInterval is how often clouds are checked for recycling.
	CloudCheckInterval float64

	OrbitY        float64 // Y of the start and end of an arc
	Elevation     float64 // height of the arc above OrbitY
	NudgeDuration float64

	DayColor, NightColor RGB

	// Logger receives one line per day/night change. Nil uses log.Default().
	Logger *log.Logger
}

// Sprites are the nodes the controller drives. Label is optional.
type Sprites struct {
	Clouds []*skyworld.Node
	Sun    *skyworld.Node
	Moon   *skyworld.Node
	Label  *skyworld.Node
}

// Cloud is one drifting cloud.
type Cloud struct {
	Node *skyworld.Node
	// Duration is the crossing time, in seconds, of the current pass.
	Duration int
}

// body is the sun or the moon. lastX is the x seen on the previous motion
// check and is what checkpoint crossings are measured against.
type body struct {
	node  *skyworld.Node
	lastX float64
}

// Controller owns the sky state and advances it once per tick.
type Controller struct {
	cfg    Config
	rng    *rand.Rand
	logger *log.Logger

	layer  *skyworld.Node
	scene  *skyworld.Scene
	clouds []Cloud
	sun    body
	moon   body
	label  *skyworld.Node

	day, night bool
	dayCounter int
	color      RGB
}

// New lays out the sprites and starts the clouds moving. The sun starts at
// the left edge, the moon half its width off-screen to the left, and the sky
// in the day color on day 1.
func New(cfg Config, sprites Sprites, rng *rand.Rand) (*Controller, error) {
	if sprites.Sun == nil || sprites.Moon == nil {
		return nil, errors.New("sky: sun and moon sprites are required")
	}
	if cfg.CloudMin <= 0 || cfg.CloudMax < cfg.CloudMin {
		return nil, fmt.Errorf("sky: invalid cloud duration range [%d, %d]", cfg.CloudMin, cfg.CloudMax)
	}
	if cfg.DayLength <= 0 {
		return nil, fmt.Errorf("sky: day length %v must be positive", cfg.DayLength)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	c := &Controller{
		cfg:        cfg,
		rng:        rng,
		logger:     logger,
		layer:      skyworld.NewContainer("sky"),
		clouds:     make([]Cloud, len(sprites.Clouds)),
		label:      sprites.Label,
		day:        true,
		dayCounter: 1,
		color:      cfg.DayColor,
	}

	for i, n := range sprites.Clouds {
		c.clouds[i].Node = n
		c.layer.AddChild(n)
		c.launchCloud(i)
	}

	sprites.Sun.SetPosition(0, cfg.OrbitY)
	sprites.Moon.SetPosition(-sprites.Moon.Width/2, cfg.OrbitY)
	c.layer.AddChild(sprites.Sun)
	c.layer.AddChild(sprites.Moon)
	c.sun = body{node: sprites.Sun, lastX: math.Inf(-1)}
	c.moon = body{node: sprites.Moon, lastX: math.Inf(-1)}

	if c.label != nil {
		c.label.SetText(dayLabel(c.dayCounter))
		c.label.SetZIndex(10)
		c.layer.AddChild(c.label)
	}
	return c, nil
}

// Attach adds the sky layer to the scene and registers the tick callbacks:
// cloud recycling on its interval, then color and celestial motion every
// tick.
func (c *Controller) Attach(scene *skyworld.Scene) {
	c.scene = scene
	scene.Root().AddChild(c.layer)
	scene.ClearColor = c.color.Color()

	scene.ScheduleInterval(func(float64) { c.RecycleClouds() }, c.cfg.CloudCheckInterval)
	scene.Schedule(func(float64) { c.AdvanceColor() })
	scene.Schedule(func(float64) { c.AdvanceCelestialMotion() })
}

// RecycleClouds sends every cloud that has drifted past the right edge back
// to the left edge on a new random line and speed.
func (c *Controller) RecycleClouds() {
	for i := range c.clouds {
		n := c.clouds[i].Node
		if n.X >= c.cfg.Width+n.Width/2 {
			c.launchCloud(i)
		}
	}
}

// launchCloud parks cloud i just off the left edge at a random height and
// starts it across the window.
func (c *Controller) launchCloud(i int) {
	cl := &c.clouds[i]
	n := cl.Node
	hw, hh := n.Width/2, n.Height/2

	y := c.cfg.Height / 2
	if span := c.cfg.Height - n.Height; span > 0 {
		y = hh + c.rng.Float64()*span
	}
	cl.Duration = c.cfg.CloudMin + c.rng.IntN(c.cfg.CloudMax-c.cfg.CloudMin+1)

	n.StopActions()
	n.SetPosition(-hw, y)
	n.RunAction(skyworld.MoveBy(c.cfg.Width+n.Width, 0, float32(cl.Duration)))
}

// AdvanceColor moves the background one unit per channel toward the color
// of the current phase.
func (c *Controller) AdvanceColor() {
	target := c.cfg.NightColor
	if c.day {
		target = c.cfg.DayColor
	}
	c.color = c.color.StepToward(target)
	if c.scene != nil {
		c.scene.ClearColor = c.color.Color()
	}
}

// ChangeTime flips between day and night.
func (c *Controller) ChangeTime() {
	if c.day {
		c.day, c.night = false, true
	} else {
		c.day, c.night = true, false
	}
}

// AdvanceCelestialMotion checks the sun, then the moon, against the orbit
// checkpoints and issues the next motion when one is reached.
func (c *Controller) AdvanceCelestialMotion() {
	c.advanceBody(&c.sun, false)
	c.advanceBody(&c.moon, true)
}

// advanceBody applies the checkpoint rules to b. A checkpoint is reached
// when b moves from below it to at or past it since the previous check, so a
// tween that lands a hair past a checkpoint still triggers it exactly once.
// The moon's arrival at the right edge starts a new day.
func (c *Controller) advanceBody(b *body, isMoon bool) {
	x := b.node.X
	prev := b.lastX
	b.lastX = x

	w := c.cfg.Width
	hw := b.node.Width / 2
	leg := float32(c.cfg.DayLength / 4)

	if reached(prev, x, w/2) {
		c.move(b, skyworld.MoveBy(w/2, c.cfg.Elevation, leg))
	}
	if reached(prev, x, w) {
		c.nudge(&c.sun)
		c.nudge(&c.moon)
		c.ChangeTime()
		if isMoon {
			c.dayCounter++
			if c.label != nil {
				c.label.SetText(dayLabel(c.dayCounter))
			}
		}
		c.logPhase()
	}
	if reached(prev, x, w+hw) {
		c.move(b, skyworld.Place(-hw, c.cfg.OrbitY))
	}
	if reached(prev, x, 0) {
		c.move(b, skyworld.MoveBy(w/2, -c.cfg.Elevation, leg))
	}
}

func (c *Controller) nudge(b *body) {
	c.move(b, skyworld.MoveBy(b.node.Width/2, 0, float32(c.cfg.NudgeDuration)))
}

// move replaces b's current motion.
func (c *Controller) move(b *body, a skyworld.Action) {
	b.node.StopActions()
	b.node.RunAction(a)
}

func (c *Controller) logPhase() {
	if c.day {
		c.logger.Printf("[sky] day %d begins", c.dayCounter)
		return
	}
	c.logger.Printf("[sky] night falls on day %d", c.dayCounter)
}

func reached(prev, cur, checkpoint float64) bool {
	return prev < checkpoint && cur >= checkpoint
}

func dayLabel(n int) string {
	return fmt.Sprintf("Day %d", n)
}

// Layer returns the container holding the clouds, sun, moon and label.
func (c *Controller) Layer() *skyworld.Node { return c.layer }

// Color returns the current background color.
func (c *Controller) Color() RGB { return c.color }

// IsDay reports whether it is day. Exactly one of IsDay and IsNight is true.
func (c *Controller) IsDay() bool { return c.day }

// IsNight reports whether it is night.
func (c *Controller) IsNight() bool { return c.night }

// DayCounter returns the current day, starting at 1.
func (c *Controller) DayCounter() int { return c.dayCounter }

// Clouds returns the clouds in asset order. The slice MUST NOT be mutated.
func (c *Controller) Clouds() []Cloud { return c.clouds }

// Sun returns the sun sprite.
func (c *Controller) Sun() *skyworld.Node { return c.sun.node }

// Moon returns the moon sprite.
func (c *Controller) Moon() *skyworld.Node { return c.moon.node }
