package game

// AgentPositions holds where the mouse and the cat stand. Legality is checked elsewhere.
type AgentPositions struct {
	mouse CellLocation
	cat   CellLocation
}

func NewAgentPositions(mouse, cat CellLocation) *AgentPositions {
	return &AgentPositions{mouse: mouse, cat: cat}
}

func (p *AgentPositions) MousePosition() CellLocation { return p.mouse }
func (p *AgentPositions) CatPosition() CellLocation   { return p.cat }

func (p *AgentPositions) SetMousePosition(loc CellLocation) { p.mouse = loc }
func (p *AgentPositions) SetCatPosition(loc CellLocation)   { p.cat = loc }

func (p *AgentPositions) Collided() bool {
	return p.mouse == p.cat
}
