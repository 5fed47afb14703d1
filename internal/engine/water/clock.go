package water

import "time"

// Clock reports seconds elapsed since it was started, excluding time spent
// paused. It is driven from the render loop and is not safe for concurrent
// use.
type Clock struct {
	now      func() time.Time
	start    time.Time
	pausedAt time.Time
	paused   bool
	offset   time.Duration // Total time spent paused
}

// NewClock creates a running clock.
func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

// NewClockWithSource creates a running clock reading time from now.
func NewClockWithSource(now func() time.Time) *Clock {
	return &Clock{now: now, start: now()}
}

// Elapsed returns the animation time in seconds.
func (c *Clock) Elapsed() float64 {
	end := c.now()
	if c.paused {
		end = c.pausedAt
	}
	return end.Sub(c.start).Seconds() - c.offset.Seconds()
}

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool {
	return c.paused
}

// Pause freezes Elapsed at its current value.
func (c *Clock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.now()
}

// Resume continues from where Pause left off.
func (c *Clock) Resume() {
	if !c.paused {
		return
	}
	c.offset += c.now().Sub(c.pausedAt)
	c.paused = false
}

// Toggle flips between paused and running.
func (c *Clock) Toggle() {
	if c.paused {
		c.Resume()
	} else {
		c.Pause()
	}
}

// Reset restarts the clock from zero, keeping the paused state.
func (c *Clock) Reset() {
	now := c.now()
	c.start = now
	c.pausedAt = now
	c.offset = 0
}
