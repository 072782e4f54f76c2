package game

// DefaultStrategy chases the mouse along the shortest wall-aware path.
type DefaultStrategy struct{}

// getNextBestDirection builds a BFS distance field from the mouse and steps to the
// neighbour closest to it. Only strictly shorter distances count, ties go to the
// first entry of Directions (up, left, down, right), and the cat stays put when the
// mouse is unreachable.
func (s *DefaultStrategy) getNextBestDirection(cat, mouse CellLocation, grid *Grid) (MoveDirection, error) {
	if cat == mouse {
		return MoveNone, nil
	}

	distance := grid.DistancesFrom(mouse)
	currentDist, reachable := distance[cat]
	if !reachable {
		return MoveNone, nil
	}

	bestDir := MoveNone
	bestDist := currentDist

	for _, dir := range Directions {
		next := cat.Step(dir)
		if !grid.IsOpen(next) {
			continue
		}

		dist, ok := distance[next]
		if ok && dist < bestDist {
			bestDist = dist
			bestDir = dir
		}
	}

	return bestDir, nil
}
