package sim

import "log/slog"

// DefaultTurnsPerEra is the era length used when none is configured.
const DefaultTurnsPerEra = 12

// Clock drives a match forward one turn at a time. Turns run synchronously
// on the caller's goroutine.
type Clock struct {
	Turn        int // last turn played, 0 before the first
	TurnsPerEra int

	// Callbacks, populated during setup.
	OnTurn func(turn int) // every turn
	OnEra  func(turn int) // every TurnsPerEra turns, after OnTurn
}

// NewClock creates a clock at turn 0.
func NewClock(turnsPerEra int) *Clock {
	if turnsPerEra <= 0 {
		turnsPerEra = DefaultTurnsPerEra
	}
	return &Clock{TurnsPerEra: turnsPerEra}
}

// Advance plays n turns.
func (c *Clock) Advance(n int) {
	for i := 0; i < n; i++ {
		c.step()
	}
	slog.Debug("clock advanced", "turns", n, "turn", c.Turn)
}

func (c *Clock) step() {
	c.Turn++

	if c.OnTurn != nil {
		c.OnTurn(c.Turn)
	}
	if c.Turn%c.TurnsPerEra == 0 && c.OnEra != nil {
		c.OnEra(c.Turn)
	}
}
