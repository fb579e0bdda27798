// Package clock counts down a player's game and move budgets for display.
package clock

import (
	"fmt"
	"time"
)

// Interval is the refresh cadence of a running countdown.
const Interval = 100 * time.Millisecond

// Format renders d as mm:ss using total minutes. Negative values show 00:00.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// Countdown subtracts elapsed wall time from a player's remaining game and
// move budgets on every Tick.
type Countdown struct {
	player   int
	gameTime time.Duration
	moveTime time.Duration
	last     time.Time
}

func New(player int, gameTime, moveTime time.Duration, now time.Time) *Countdown {
	return &Countdown{player: player, gameTime: gameTime, moveTime: moveTime, last: now}
}

func (c *Countdown) Player() int { return c.player }

// Tick returns the remaining game and move time as of now.
func (c *Countdown) Tick(now time.Time) (game, move time.Duration) {
	elapsed := now.Sub(c.last)
	if elapsed < 0 {
		elapsed = 0
	}
	c.gameTime -= elapsed
	c.moveTime -= elapsed
	c.last = now
	return c.gameTime, c.moveTime
}
