package sky

import "github.com/skyworld/skyworld"

// RGB is an 8-bit background color.
type RGB struct {
	R, G, B uint8
}

// Color converts c to an opaque scene color.
func (c RGB) Color() skyworld.Color {
	return skyworld.RGB8(c.R, c.G, c.B)
}

// StepToward moves every channel of c one unit toward target. Channels
// already equal to target stay put, so the step never overshoots and is a
// no-op once c == target.
func (c RGB) StepToward(target RGB) RGB {
	return RGB{
		R: stepChannel(c.R, target.R),
		G: stepChannel(c.G, target.G),
		B: stepChannel(c.B, target.B),
	}
}

func stepChannel(cur, target uint8) uint8 {
	switch {
	case cur < target:
		return cur + 1
	case cur > target:
		return cur - 1
	default:
		return cur
	}
}
