package game

import "github.com/zyedidia/generic/mapset"

// CheeseTracker keeps collected + remaining == total at all times.
type CheeseTracker struct {
	remaining mapset.Set[CellLocation]
	collected int
	total     int
}

func NewCheeseTracker(locations []CellLocation) *CheeseTracker {
	remaining := mapset.New[CellLocation]()
	for _, loc := range locations {
		remaining.Put(loc)
	}

	return &CheeseTracker{
		remaining: remaining,
		total:     remaining.Size(),
	}
}

func (c *CheeseTracker) CollectedCount() int { return c.collected }
func (c *CheeseTracker) TotalCount() int     { return c.total }
func (c *CheeseTracker) RemainingCount() int { return c.remaining.Size() }

func (c *CheeseTracker) HasCheeseAt(loc CellLocation) bool {
	return c.remaining.Has(loc)
}

// CollectIfPresent eats the cheese at loc. A second call at the same location is a no-op.
func (c *CheeseTracker) CollectIfPresent(loc CellLocation) bool {
	if !c.remaining.Has(loc) {
		return false
	}
	c.remaining.Remove(loc)
	c.collected++
	return true
}

func (c *CheeseTracker) AllCollected() bool {
	return c.collected == c.total
}
