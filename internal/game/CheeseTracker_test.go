package game

import "testing"

func TestCollectIfPresentIsIdempotent(t *testing.T) {
	a := CellLocation{X: 1, Y: 1}
	b := CellLocation{X: 2, Y: 3}
	tracker := NewCheeseTracker([]CellLocation{a, b})

	if tracker.TotalCount() != 2 || tracker.RemainingCount() != 2 {
		t.Fatalf("unexpected counts %d/%d", tracker.RemainingCount(), tracker.TotalCount())
	}

	if !tracker.CollectIfPresent(a) {
		t.Fatal("first collection should succeed")
	}
	if tracker.CollectIfPresent(a) {
		t.Error("second collection at the same place should do nothing")
	}
	if tracker.CollectIfPresent(CellLocation{X: 9, Y: 9}) {
		t.Error("no cheese there")
	}

	if tracker.CollectedCount() != 1 || tracker.RemainingCount() != 1 {
		t.Errorf("expected 1 collected and 1 remaining, got %d and %d", tracker.CollectedCount(), tracker.RemainingCount())
	}
	if tracker.HasCheeseAt(a) || !tracker.HasCheeseAt(b) {
		t.Error("HasCheeseAt out of sync")
	}
	if tracker.AllCollected() {
		t.Error("one cheese is still out there")
	}

	tracker.CollectIfPresent(b)
	if !tracker.AllCollected() || tracker.CollectedCount()+tracker.RemainingCount() != tracker.TotalCount() {
		t.Error("counts do not add up after collecting everything")
	}
}
