package engine

import (
	"fmt"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"time"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	Board    game.Board
	Players  [2]*game.Player // black, white
	Agents   [2]Agent        // agent i plays Players[i]
	MaxTurns int
}

// LocalEngine sets up the standard opening with agents[0] as black and agents[1] as white
func LocalEngine(agents []Agent) *Engine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}

	board := game.NewBoard()
	players := [2]*game.Player{game.NewPlayer(game.Black), game.NewPlayer(game.White)}
	for _, p := range players {
		p.Sync(&board)
	}

	return &Engine{
		Board:    board,
		Players:  players,
		Agents:   [2]Agent{agents[0], agents[1]},
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run plays until neither side can move, the board is full or MaxTurns turns
// have passed. The winner is game.Empty on a draw.
func (e *Engine) Run() (game.Color, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Players[0].Color.String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.Players[0].Color)

	turn := 0
	passes := 0
	for step := 1; passes < 2 && !e.Board.Full() && step <= e.MaxTurns; step++ {
		actor, opponent := e.Players[turn], e.Players[1-turn]

		moves := actor.LegalMoves(&e.Board)
		if len(moves) == 0 {
			log.Debug().Msgf("%s passes at step %d", actor.Color, step)
			passes++
			gameMetric.Passes++
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:   step,
				Player: actor.Color.String(),
				Move:   "pass",
			})
			turn = 1 - turn
			continue
		}
		passes = 0

		dest, metric, err := e.Agents[turn].findMove(&e.Board, actor.Color, opponent.Color, moves)
		if err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("%s failed to find a move: %w", actor.Color, err)
		}
		if err := game.TakeSpaces(&e.Board, actor, opponent, moves, dest); err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("%s failed to play %v: %w", actor.Color, dest, err)
		}
		gameMetric.TotalMoves++

		metric.Step = step
		metric.Player = actor.Color.String()
		metric.Move = dest.String()
		moveMetrics = append(moveMetrics, metric)

		log.Debug().Msgf("step %d: %s plays %v\n%v", step, actor.Color, dest, e.Board.String())
		turn = 1 - turn
	}

	winner := e.Board.Winner()
	gameMetric.Winner = winner.String()
	gameMetric.BlackDiscs = e.Board.Count(game.Black)
	gameMetric.WhiteDiscs = e.Board.Count(game.White)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	if passes < 2 && !e.Board.Full() {
		log.Warn().Msgf("stopped after %d turns without finishing", e.MaxTurns)
	}
	log.Info().Msgf("game over: %s wins %d to %d", winner, gameMetric.BlackDiscs, gameMetric.WhiteDiscs)

	return winner, gameMetric, moveMetrics, nil
}
