package skyworld

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Action is a timed change applied to a node, advanced once per tick by the
// scene. Start is called when the action is attached with RunAction and again
// each time a Repeat restarts it, so implementations capture the node's
// starting state there. Step advances by dt seconds and reports whether the
// action has finished.
//
// An Action value must not run on two nodes at the same time.
type Action interface {
	Start(n *Node)
	Step(n *Node, dt float32) bool
}

// RunAction starts a and attaches it to the node. Actions already running
// keep running alongside it.
func (n *Node) RunAction(a Action) {
	a.Start(n)
	n.actions = append(n.actions, a)
}

// StopActions drops every action attached to the node, leaving the node
// wherever the actions left it.
func (n *Node) StopActions() {
	clear(n.actions)
	n.actions = n.actions[:0]
}

// NumActions returns the number of running actions.
func (n *Node) NumActions() int {
	return len(n.actions)
}

// stepActions advances the node's actions and drops the finished ones.
func (n *Node) stepActions(dt float32) {
	if len(n.actions) == 0 {
		return
	}
	running := n.actions[:0]
	for _, a := range n.actions {
		if !a.Step(n, dt) {
			running = append(running, a)
		}
	}
	clear(n.actions[len(running):])
	n.actions = running
}

// progress drives a 0→1 gween tween over a fixed duration. Finishing always
// reports exactly 1 so interval actions land on their targets.
type progress struct {
	duration float32
	fn       ease.TweenFunc
	tween    *gween.Tween
}

func newProgress(duration float32, fn ease.TweenFunc) progress {
	if fn == nil {
		fn = ease.Linear
	}
	return progress{duration: duration, fn: fn}
}

func (p *progress) start() {
	if p.duration <= 0 {
		p.tween = nil
		return
	}
	p.tween = gween.New(0, 1, p.duration, p.fn)
}

func (p *progress) step(dt float32) (float64, bool) {
	if p.tween == nil {
		return 1, true
	}
	v, done := p.tween.Update(dt)
	if done {
		return 1, true
	}
	return float64(v), false
}

// --- Move ---

type moveBy struct {
	dx, dy         float64
	startX, startY float64
	p              progress
}

// MoveBy moves the node by (dx, dy) over duration seconds with linear easing.
func MoveBy(dx, dy float64, duration float32) Action {
	return MoveByEase(dx, dy, duration, ease.Linear)
}

// MoveByEase is MoveBy with a custom easing function.
func MoveByEase(dx, dy float64, duration float32, fn ease.TweenFunc) Action {
	return &moveBy{dx: dx, dy: dy, p: newProgress(duration, fn)}
}

func (a *moveBy) Start(n *Node) {
	a.startX, a.startY = n.X, n.Y
	a.p.start()
}

func (a *moveBy) Step(n *Node, dt float32) bool {
	t, done := a.p.step(dt)
	n.SetPosition(a.startX+a.dx*t, a.startY+a.dy*t)
	return done
}

type moveTo struct {
	x, y float64
	move moveBy
}

// MoveTo moves the node to (x, y) over duration seconds with linear easing.
func MoveTo(x, y float64, duration float32) Action {
	return &moveTo{x: x, y: y, move: moveBy{p: newProgress(duration, ease.Linear)}}
}

func (a *moveTo) Start(n *Node) {
	a.move.dx = a.x - n.X
	a.move.dy = a.y - n.Y
	a.move.Start(n)
}

func (a *moveTo) Step(n *Node, dt float32) bool {
	if a.move.Step(n, dt) {
		n.SetPosition(a.x, a.y)
		return true
	}
	return false
}

type place struct {
	x, y float64
}

// Place puts the node at (x, y) on its first step.
func Place(x, y float64) Action {
	return &place{x: x, y: y}
}

func (a *place) Start(*Node) {}

func (a *place) Step(n *Node, _ float32) bool {
	n.SetPosition(a.x, a.y)
	return true
}

// --- Rotate ---

type rotateBy struct {
	angle float64
	from  float64
	p     progress
}

// RotateBy turns the node by angle radians over duration seconds.
// Positive angles turn clockwise on screen.
func RotateBy(angle float64, duration float32) Action {
	return &rotateBy{angle: angle, p: newProgress(duration, ease.Linear)}
}

func (a *rotateBy) Start(n *Node) {
	a.from = n.Rotation
	a.p.start()
}

func (a *rotateBy) Step(n *Node, dt float32) bool {
	t, done := a.p.step(dt)
	n.SetRotation(a.from + a.angle*t)
	return done
}

// --- Timing and composition ---

type delay struct {
	p progress
}

// Delay does nothing for duration seconds. Useful inside Sequence.
func Delay(duration float32) Action {
	return &delay{p: newProgress(duration, ease.Linear)}
}

func (a *delay) Start(*Node) { a.p.start() }

func (a *delay) Step(_ *Node, dt float32) bool {
	_, done := a.p.step(dt)
	return done
}

type sequence struct {
	actions []Action
	index   int
}

// Sequence runs actions one after another. Each action is started when the
// previous one finishes.
func Sequence(actions ...Action) Action {
	return &sequence{actions: actions}
}

func (a *sequence) Start(n *Node) {
	a.index = 0
	if len(a.actions) > 0 {
		a.actions[0].Start(n)
	}
}

func (a *sequence) Step(n *Node, dt float32) bool {
	if a.index >= len(a.actions) {
		return true
	}
	if !a.actions[a.index].Step(n, dt) {
		return false
	}
	a.index++
	if a.index >= len(a.actions) {
		return true
	}
	a.actions[a.index].Start(n)
	return false
}

type repeat struct {
	action Action
	times  int // <= 0 repeats forever
	done   int
}

// Repeat runs action times times back to back, restarting it from the node's
// state at the end of each run.
func Repeat(action Action, times int) Action {
	if times < 1 {
		times = 1
	}
	return &repeat{action: action, times: times}
}

// RepeatForever runs action endlessly. It never reports completion; remove it
// with StopActions.
func RepeatForever(action Action) Action {
	return &repeat{action: action}
}

func (a *repeat) Start(n *Node) {
	a.done = 0
	a.action.Start(n)
}

func (a *repeat) Step(n *Node, dt float32) bool {
	if !a.action.Step(n, dt) {
		return false
	}
	a.done++
	if a.times > 0 && a.done >= a.times {
		return true
	}
	a.action.Start(n)
	return false
}
