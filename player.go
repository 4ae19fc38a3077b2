package chopsticks

// Player is a participant seated at one side of a game.
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Agent Agent  `json:"-"`
}

func NewPlayer(id, name string, agent Agent) *Player {
	return &Player{
		ID:    id,
		Name:  name,
		Agent: agent,
	}
}
