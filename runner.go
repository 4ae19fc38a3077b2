package chopsticks

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tkahng/chopsticks/sticks"
	"golang.org/x/sync/errgroup"
)

// Runner plays games to completion by asking each seat's agent for moves.
type Runner struct {
	// Configuration
	maxConcurrentGames int

	// Active games tracking
	activeGames map[string]*Game
	gamesMutex  *sync.RWMutex

	logger *log.Logger
}

// NewRunner creates a runner that plays at most maxConcurrentGames games at
// once in RunMatches (no limit when <= 0). A nil logger discards output.
func NewRunner(maxConcurrentGames int, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{
		maxConcurrentGames: maxConcurrentGames,
		activeGames:        make(map[string]*Game),
		gamesMutex:         new(sync.RWMutex),
		logger:             logger,
	}
}

// Play drives g until it is finished or aborted.
func (r *Runner) Play(ctx context.Context, g *Game) (Result, error) {
	r.gamesMutex.Lock()
	r.activeGames[g.ID] = g
	r.gamesMutex.Unlock()

	startTime := time.Now()
	defer func() {
		r.gamesMutex.Lock()
		delete(r.activeGames, g.ID)
		r.gamesMutex.Unlock()
	}()

	r.logger.Debug("game started", "game", g.ID, "position", g.Position(),
		"a", g.Players[sticks.A].ID, "b", g.Players[sticks.B].ID)

	for g.State() == GameStateInProgress {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("game %s: %w", g.ID, err)
		}

		player := g.GetCurrentPlayer()
		if player.Agent == nil {
			return Result{}, fmt.Errorf("game %s: player %s has no agent", g.ID, player.ID)
		}

		pos := g.Position()
		move, err := player.Agent.ChooseMove(ctx, pos)
		if err != nil {
			return Result{}, fmt.Errorf("game %s: player %s: %w", g.ID, player.ID, err)
		}
		if err := g.Play(move); err != nil {
			return Result{}, fmt.Errorf("game %s: player %s: %w", g.ID, player.ID, err)
		}

		r.logger.Debug("move", "game", g.ID, "player", player.ID,
			"move", pos.MoveLabel(move), "position", g.Position())
	}

	result := g.Result()
	if result.HasWinner {
		r.logger.Info("game finished", "game", g.ID, "winner", g.Winner().ID,
			"plies", result.Plies, "elapsed", time.Since(startTime))
	} else {
		r.logger.Info("game stopped", "game", g.ID, "state", result.State,
			"plies", result.Plies, "elapsed", time.Since(startTime))
	}
	return result, nil
}

// RunMatches creates n games with newGame and plays them concurrently. The
// first failure cancels the remaining games.
func (r *Runner) RunMatches(ctx context.Context, n int, newGame func(i int) (*Game, error)) ([]Result, error) {
	results := make([]Result, n)

	eg, ctx := errgroup.WithContext(ctx)
	if r.maxConcurrentGames > 0 {
		eg.SetLimit(r.maxConcurrentGames)
	}
	for i := 0; i < n; i++ {
		eg.Go(func() error {
			g, err := newGame(i)
			if err != nil {
				return fmt.Errorf("create game %d: %w", i, err)
			}
			result, err := r.Play(ctx, g)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	r.logger.Info("matches complete", "games", n)
	return results, nil
}

// GetActiveGameCount returns the number of games being played
func (r *Runner) GetActiveGameCount() int {
	r.gamesMutex.RLock()
	defer r.gamesMutex.RUnlock()
	return len(r.activeGames)
}

// GetGame returns an active game by ID
func (r *Runner) GetGame(gameID string) (*Game, bool) {
	r.gamesMutex.RLock()
	defer r.gamesMutex.RUnlock()
	g, exists := r.activeGames[gameID]
	return g, exists
}

// Summary tallies the outcome of a batch of games.
type Summary struct {
	Games   int
	Wins    [2]int
	Aborted int
}

func Summarize(results []Result) Summary {
	s := Summary{Games: len(results)}
	for _, res := range results {
		switch {
		case res.HasWinner:
			s.Wins[res.Winner]++
		case res.State == GameStateAborted:
			s.Aborted++
		}
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("games: %d  A wins: %d  B wins: %d  aborted: %d",
		s.Games, s.Wins[sticks.A], s.Wins[sticks.B], s.Aborted)
}
