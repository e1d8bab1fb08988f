package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one root move search.
type SearchMetric struct {
	Depth    int
	Parallel bool
	Nodes    int64
	Prunes   int64
	Duration time.Duration
}

// MoveMetric ties a search metric to its place in a game.
type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

// GameMetric summarizes one finished game.
type GameMetric struct {
	Winner     string
	BlackDiscs int
	WhiteDiscs int
	TotalMoves int
	Duration   time.Duration
}

// TrainingMetric summarizes one training epoch.
type TrainingMetric struct {
	Epoch   int
	Steps   int
	Epsilon float64
	States  int
}

// Collector accumulates search counters. Counters are atomic because the root
// fan-out evaluates subtrees from multiple goroutines.
type Collector interface {
	Start(depth int, parallel bool)
	AddNode()
	AddPrune()
	Complete() SearchMetric
}

type collector struct {
	depth     int
	parallel  bool
	startTime time.Time
	nodes     atomic.Int64
	prunes    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth int, parallel bool) {
	c.depth = depth
	c.parallel = parallel
	c.startTime = time.Now()
	c.nodes.Store(0)
	c.prunes.Store(0)
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) AddPrune() {
	c.prunes.Add(1)
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:    c.depth,
		Parallel: c.parallel,
		Nodes:    c.nodes.Load(),
		Prunes:   c.prunes.Load(),
		Duration: time.Since(c.startTime),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing, for searches
// that do not report metrics.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start(int, bool) {}

func (dummyCollector) AddNode() {}

func (dummyCollector) AddPrune() {}

func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
