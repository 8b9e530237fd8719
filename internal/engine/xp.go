package engine

import "math"

const (
	// LevelGrowthRate compounds the per-level XP bonus: xp * 1.1^level.
	LevelGrowthRate = 1.1

	// DefaultEventMultiplier is applied when a global event is active.
	DefaultEventMultiplier = 2.0
)

// GearSnapshot is the read-only equipment/event state an XP calculation
// runs against. It is captured immediately before each calculation so
// equipping an item or toggling an event takes effect on the next
// completion, never through a stale cache.
type GearSnapshot struct {
	SlotMultipliers map[Slot]float64
	EventActive     bool
	EventMultiplier float64
}

// XPCalculator computes the experience awarded for a completion.
type XPCalculator interface {
	Calculate(baseXP float64, level int) float64
}

// NewExperienceChain builds the calculator chain for one completion:
// base -> level bonus -> equipment -> event. Order matters: the event
// multiplier compounds on top of equipment, which compounds on top of the
// exponential level bonus.
func NewExperienceChain(snap GearSnapshot) XPCalculator {
	var chain XPCalculator = baseCalculator{}
	chain = levelBonusCalculator{next: chain}
	chain = gearCalculator{next: chain, multipliers: snap.SlotMultipliers}
	if snap.EventActive {
		mult := snap.EventMultiplier
		if mult <= 0 {
			mult = DefaultEventMultiplier
		}
		chain = eventCalculator{next: chain, multiplier: mult}
	}
	return chain
}

type baseCalculator struct{}

func (baseCalculator) Calculate(baseXP float64, _ int) float64 {
	return baseXP
}

type levelBonusCalculator struct {
	next XPCalculator
}

func (c levelBonusCalculator) Calculate(baseXP float64, level int) float64 {
	if level < 0 {
		level = 0
	}
	return c.next.Calculate(baseXP, level) * math.Pow(LevelGrowthRate, float64(level))
}

type gearCalculator struct {
	next        XPCalculator
	multipliers map[Slot]float64
}

func (c gearCalculator) Calculate(baseXP float64, level int) float64 {
	xp := c.next.Calculate(baseXP, level)
	for _, m := range c.multipliers {
		if m < 0 {
			continue
		}
		xp *= m
	}
	return xp
}

type eventCalculator struct {
	next       XPCalculator
	multiplier float64
}

func (c eventCalculator) Calculate(baseXP float64, level int) float64 {
	return c.next.Calculate(baseXP, level) * c.multiplier
}
