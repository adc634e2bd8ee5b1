package glowdots

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// fpsCounter keeps a rolling frames-per-second estimate, recomputed about
// once a second.
type fpsCounter struct {
	frameCount int
	fpsTime    float64
	lastTime   float64
	fps        float64
}

// tick folds one presented frame in and reports whether the estimate was
// just recomputed.
func (c *fpsCounter) tick() bool {
	now := glfw.GetTime()
	rolled := false
	if c.lastTime > 0 {
		c.frameCount++
		c.fpsTime += now - c.lastTime
		if c.fpsTime >= 1.0 {
			c.fps = float64(c.frameCount) / c.fpsTime
			c.frameCount = 0
			c.fpsTime = 0
			rolled = true
		}
	}
	c.lastTime = now
	return rolled
}
