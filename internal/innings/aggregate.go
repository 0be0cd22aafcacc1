// Package innings reduces play-by-play events to half-inning time windows and
// orders batches of game results.
package innings

import (
	"sort"

	"mlb-inning-times/internal/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type windowKey struct {
	inning int
	half   string
}

type window struct {
	start string
	end   string
}

// Aggregate folds plays into one window per (inning, half-inning) holding the
// earliest start and the latest end. Plays missing any of the four fields are
// skipped. Timestamps are ISO-8601 strings and compared lexically.
func Aggregate(gamePk string, plays []domain.Play) domain.GameResult {
	windows := make(map[windowKey]*window)
	var seen []windowKey

	for _, p := range plays {
		if p.Inning == nil || p.HalfInning == nil || p.StartTime == nil || p.EndTime == nil {
			continue
		}

		// the half is keyed exactly as received; case folding happens on output
		key := windowKey{inning: *p.Inning, half: *p.HalfInning}
		w, ok := windows[key]
		if !ok {
			windows[key] = &window{start: *p.StartTime, end: *p.EndTime}
			seen = append(seen, key)
			continue
		}
		if *p.StartTime < w.start {
			w.start = *p.StartTime
		}
		if *p.EndTime > w.end {
			w.end = *p.EndTime
		}
	}

	rows := make([]domain.InningWindow, 0, len(seen))
	for _, key := range seen {
		w := windows[key]
		rows = append(rows, domain.InningWindow{
			Inning:     key.inning,
			HalfInning: TitleHalf(key.half),
			Start:      w.start,
			End:        w.end,
		})
	}
	SortWindows(rows)

	return domain.GameResult{GamePk: gamePk, Innings: rows}
}

// TitleHalf normalises a half-inning for display: "top" -> "Top".
func TitleHalf(half string) string {
	return cases.Title(language.Und).String(half)
}

func halfOrder(half string) int {
	switch half {
	case domain.HalfTop:
		return 0
	case domain.HalfBottom:
		return 1
	default:
		return 2
	}
}

// SortWindows orders rows by inning, then Top before Bottom. Unknown halves
// go last within their inning, alphabetically.
func SortWindows(rows []domain.InningWindow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Inning != b.Inning {
			return a.Inning < b.Inning
		}
		oa, ob := halfOrder(a.HalfInning), halfOrder(b.HalfInning)
		if oa != ob {
			return oa < ob
		}
		if oa == 2 {
			return a.HalfInning < b.HalfInning
		}
		return false
	})
}
