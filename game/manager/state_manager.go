package manager

// StateManager keeps the running score of the current game.
type StateManager struct {
	score int
}

func NewStateManager() *StateManager {
	return &StateManager{}
}

func (sm *StateManager) AddPoint() {
	sm.score++
}

func (sm *StateManager) GetScore() int {
	return sm.score
}
