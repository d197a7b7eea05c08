package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one move decision
type SearchMetric struct {
	Strategy     string
	Duration     time.Duration
	Episodes     int // MCTS iterations run
	FullPlayouts int // MCTS rollouts that reached the end of the game
	Nodes        int // tree nodes created
	Leaves       int // minimax leaves evaluated
	Cutoffs      int // alpha-beta prunes
}

type MoveMetric struct {
	Step   int
	Player string // color name
	Move   string // destination, "pass" when the player had no move
	Policy string // MCTS root visit counts, empty for other strategies
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // color name, "empty" on a draw
	BlackDiscs     int
	WhiteDiscs     int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
}

type Collector interface {
	// Start resets the counters for a new decision
	Start(strategy string)
	AddEpisode()
	AddFullPlayout()
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	strategy     string
	startTime    time.Time
	episodes     atomic.Int32
	fullPlayouts atomic.Int32
	nodes        atomic.Int32
	leaves       atomic.Int32
	cutoffs      atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string) {
	m.strategy = strategy
	m.startTime = time.Now()
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:     m.strategy,
		Duration:     time.Since(m.startTime),
		Episodes:     int(m.episodes.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
		Nodes:        int(m.nodes.Load()),
		Leaves:       int(m.leaves.Load()),
		Cutoffs:      int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string)  {}
func (m *dummyCollector) AddEpisode()            {}
func (m *dummyCollector) AddFullPlayout()        {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddLeaf()               {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
