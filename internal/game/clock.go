package game

// Clock tracks each player's remaining time budget. The time source is
// injected so tests and replays can drive it deterministically; no
// wall-clock calls occur anywhere else in the engine.
type Clock struct {
	BudgetMS    [2]int64 `json:"budgetMs"`
	turnStartMS int64
	now         func() int64
	enabled     bool
}

// newClock builds a clock from the rules. A zero budget disables it.
func newClock(rules Rules, now func() int64) *Clock {
	c := &Clock{now: now, enabled: rules.TurnTimeMS > 0}
	if c.enabled {
		c.BudgetMS[0] = rules.TurnTimeMS
		c.BudgetMS[1] = rules.TurnTimeMS
		c.turnStartMS = now()
	}
	return c
}

// chargeMover subtracts the elapsed turn time from the mover's budget
// and restarts the turn timer. It reports whether the mover's budget
// is exhausted.
func (c *Clock) chargeMover(p PlayerID) bool {
	if !c.enabled {
		return false
	}
	nowMS := c.now()
	c.BudgetMS[p] -= nowMS - c.turnStartMS
	c.turnStartMS = nowMS
	return c.BudgetMS[p] <= 0
}

// wouldExpire reports whether the player's budget is already spent at
// the current instant, without charging it.
func (c *Clock) wouldExpire(p PlayerID) bool {
	if !c.enabled {
		return false
	}
	return c.BudgetMS[p]-(c.now()-c.turnStartMS) <= 0
}

// Remaining returns the player's budget after subtracting the running
// turn, when the player is the one on the clock.
func (c *Clock) Remaining(p PlayerID, onClock bool) int64 {
	if !c.enabled {
		return 0
	}
	if !onClock {
		return c.BudgetMS[p]
	}
	return c.BudgetMS[p] - (c.now() - c.turnStartMS)
}

// Enabled reports whether the game is timed.
func (c *Clock) Enabled() bool {
	return c.enabled
}
