package domain

import (
	"fmt"
	"time"
)

const (
	HalfTop    = "Top"
	HalfBottom = "Bottom"
)

// Play is one play-by-play event reduced to the fields the aggregator reads.
// Any field may be absent upstream.
type Play struct {
	Inning     *int
	HalfInning *string
	StartTime  *string
	EndTime    *string
}

// InningWindow covers one half-inning. Start and End are tracked
// independently, so Start <= End only holds if upstream data agrees.
type InningWindow struct {
	Inning     int
	HalfInning string // title-cased, e.g. "Top"
	Start      string
	End        string
}

func (w InningWindow) Label() string {
	return fmt.Sprintf("%d %s", w.Inning, w.HalfInning)
}

type GameResult struct {
	GamePk    string
	Innings   []InningWindow
	FetchedAt time.Time
}

func (g *GameResult) Empty() bool {
	return g == nil || len(g.Innings) == 0
}

type FetchFailure struct {
	GamePk string
	Err    error
}

func (f FetchFailure) Error() string {
	return fmt.Sprintf("error fetching data for game %s: %v", f.GamePk, f.Err)
}

func (f FetchFailure) Unwrap() error {
	return f.Err
}

type BatchResult struct {
	Results   []GameResult
	Failures  []FetchFailure
	Requested int
	// identifiers that were fetched fine but had no inning data
	Empty []string
}

func (b *BatchResult) HasData() bool {
	return b != nil && len(b.Results) > 0
}
