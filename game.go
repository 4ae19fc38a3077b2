package chopsticks

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tkahng/chopsticks/sticks"
)

// GameState represents the current state of the game
type GameState string

const (
	GameStateInProgress GameState = "in_progress"
	GameStateFinished   GameState = "finished"
	// GameStateAborted marks a game stopped at its ply limit without a winner.
	GameStateAborted GameState = "aborted"
)

var ErrGameOver = errors.New("game is over")

type GameInterface interface {
	Play(move sticks.Move) error
	Position() sticks.Position
	LegalMoves() []sticks.Move
	GetCurrentPlayer() *Player
	GetOpponent() *Player
	State() GameState
}

// Turn records one applied move and the position it produced.
type Turn struct {
	Side  sticks.Player `json:"side"`
	Move  sticks.Move   `json:"move"`
	After string        `json:"after"`
}

// Result summarises a game once it stops.
type Result struct {
	GameID    string
	State     GameState
	Winner    sticks.Player
	HasWinner bool
	Plies     int
	Final     sticks.Position
}

// Game drives a single match between two players over the transition engine.
// The positions it holds are immutable; the mutex guards the game record only.
type Game struct {
	ID        string     `json:"id"`
	Players   [2]*Player `json:"players"`
	MaxPlies  int        `json:"maxPlies"`
	CreatedAt time.Time  `json:"createdAt"`

	state    GameState
	winner   *Player
	start    sticks.Position
	position sticks.Position
	history  []Turn
	mutex    *sync.RWMutex
}

var _ GameInterface = (*Game)(nil)

// NewGame seats a on side A and b on side B at start. A maxPlies of 0 lets the
// game run until a side is out.
func NewGame(start sticks.Position, maxPlies int, a, b *Player) (*Game, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("need two players to start")
	}
	if start.Modulus() < 2 {
		return nil, fmt.Errorf("%w: empty start position", sticks.ErrInvalidConfiguration)
	}
	if maxPlies < 0 {
		return nil, fmt.Errorf("%w: max plies must not be negative, got %d", sticks.ErrInvalidConfiguration, maxPlies)
	}

	g := &Game{
		ID:        uuid.NewString(),
		Players:   [2]*Player{a, b},
		MaxPlies:  maxPlies,
		CreatedAt: time.Now(),
		state:     GameStateInProgress,
		start:     start,
		position:  start,
		mutex:     &sync.RWMutex{},
	}
	g.settle()
	return g, nil
}

// Play applies move for the player whose turn it is.
func (g *Game) Play(move sticks.Move) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if g.state != GameStateInProgress {
		return fmt.Errorf("%w: %s", ErrGameOver, g.state)
	}

	side := g.position.ToMove()
	next, err := g.position.Apply(move)
	if err != nil {
		return err
	}

	g.position = next
	g.history = append(g.history, Turn{Side: side, Move: move, After: next.Notation()})
	g.settle()
	return nil
}

// settle updates the game state after the position changed. Callers hold the lock.
func (g *Game) settle() {
	if g.position.IsTerminal() {
		g.state = GameStateFinished
		if side, ok := g.position.Winner(); ok {
			g.winner = g.Players[side]
		}
		return
	}
	if g.MaxPlies > 0 && len(g.history) >= g.MaxPlies {
		g.state = GameStateAborted
	}
}

func (g *Game) Position() sticks.Position {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.position
}

// Start returns the position the game began from.
func (g *Game) Start() sticks.Position {
	return g.start
}

func (g *Game) LegalMoves() []sticks.Move {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	if g.state != GameStateInProgress {
		return nil
	}
	return g.position.LegalMoves()
}

func (g *Game) State() GameState {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.state
}

// Winner returns the winning player, or nil while no side is out.
func (g *Game) Winner() *Player {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.winner
}

func (g *Game) GetCurrentPlayer() *Player {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.Players[g.position.ToMove()]
}

// GetOpponent returns the opponent of the current player
func (g *Game) GetOpponent() *Player {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.Players[g.position.ToMove().Other()]
}

// History returns a copy of the moves played so far.
func (g *Game) History() []Turn {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return append([]Turn(nil), g.history...)
}

func (g *Game) Plies() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return len(g.history)
}

// Outcome scores the current position for side. See sticks.Position.Utility.
func (g *Game) Outcome(side sticks.Player) int {
	return g.Position().Utility(side)
}

func (g *Game) Result() Result {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	winner, ok := g.position.Winner()
	return Result{
		GameID:    g.ID,
		State:     g.state,
		Winner:    winner,
		HasWinner: ok,
		Plies:     len(g.history),
		Final:     g.position,
	}
}
