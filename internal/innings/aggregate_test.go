package innings

import (
	"testing"

	"mlb-inning-times/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func play(inning int, half, start, end string) domain.Play {
	return domain.Play{Inning: &inning, HalfInning: &half, StartTime: &start, EndTime: &end}
}

func TestAggregate_MergesSameHalfInning(t *testing.T) {
	got := Aggregate("745123", []domain.Play{
		play(1, "top", "T0", "T1"),
		play(1, "top", "T2", "T3"),
	})

	require.Len(t, got.Innings, 1)
	assert.Equal(t, "745123", got.GamePk)
	assert.Equal(t, domain.InningWindow{Inning: 1, HalfInning: "Top", Start: "T0", End: "T3"}, got.Innings[0])
	assert.Equal(t, "1 Top", got.Innings[0].Label())
}

func TestAggregate_MinStartMaxEndIndependentOfOrder(t *testing.T) {
	plays := []domain.Play{
		play(2, "bottom", "2024-04-01T18:40:00.000Z", "2024-04-01T18:41:00.000Z"),
		play(2, "bottom", "2024-04-01T18:30:00.000Z", "2024-04-01T18:31:00.000Z"),
		play(2, "bottom", "2024-04-01T18:35:00.000Z", "2024-04-01T18:52:00.000Z"),
	}
	want := domain.InningWindow{
		Inning:     2,
		HalfInning: "Bottom",
		Start:      "2024-04-01T18:30:00.000Z",
		End:        "2024-04-01T18:52:00.000Z",
	}

	orders := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 0, 2}, {2, 0, 1}}
	for _, order := range orders {
		shuffled := make([]domain.Play, 0, len(order))
		for _, i := range order {
			shuffled = append(shuffled, plays[i])
		}
		got := Aggregate("1", shuffled)
		require.Len(t, got.Innings, 1)
		assert.Equal(t, want, got.Innings[0], "order %v", order)
	}
}

func TestAggregate_StartAndEndTrackedIndependently(t *testing.T) {
	// later play starts earlier but ends earlier too: end must stay at the max
	got := Aggregate("1", []domain.Play{
		play(1, "top", "T5", "T9"),
		play(1, "top", "T1", "T2"),
	})
	require.Len(t, got.Innings, 1)
	assert.Equal(t, "T1", got.Innings[0].Start)
	assert.Equal(t, "T9", got.Innings[0].End)
}

func TestAggregate_SkipsIncompletePlays(t *testing.T) {
	inning := 1
	half := "top"
	start := "T0"
	end := "T1"

	incomplete := []domain.Play{
		{HalfInning: &half, StartTime: &start, EndTime: &end},
		{Inning: &inning, StartTime: &start, EndTime: &end},
		{Inning: &inning, HalfInning: &half, EndTime: &end},
		{Inning: &inning, HalfInning: &half, StartTime: &start},
		{},
	}
	for i, p := range incomplete {
		got := Aggregate("1", []domain.Play{p})
		assert.Empty(t, got.Innings, "play %d", i)
	}

	earlier := "A"
	got := Aggregate("1", append([]domain.Play{play(1, "top", "T5", "T6")},
		domain.Play{Inning: &inning, HalfInning: &half, StartTime: &earlier}))
	require.Len(t, got.Innings, 1)
	assert.Equal(t, "T5", got.Innings[0].Start)
}

func TestAggregate_Empty(t *testing.T) {
	got := Aggregate("1", nil)
	assert.Empty(t, got.Innings)
	assert.True(t, got.Empty())
}

func TestAggregate_RowPerDistinctKeyOrderedTopBeforeBottom(t *testing.T) {
	got := Aggregate("1", []domain.Play{
		play(2, "bottom", "T40", "T41"),
		play(10, "top", "T90", "T91"),
		play(1, "bottom", "T10", "T11"),
		play(2, "top", "T30", "T31"),
		play(1, "top", "T00", "T01"),
		play(1, "top", "T02", "T03"),
	})

	labels := make([]string, 0, len(got.Innings))
	for _, w := range got.Innings {
		labels = append(labels, w.Label())
	}
	assert.Equal(t, []string{"1 Top", "1 Bottom", "2 Top", "2 Bottom", "10 Top"}, labels)
}

func TestAggregate_HalfKeyIsCaseSensitive(t *testing.T) {
	got := Aggregate("1", []domain.Play{
		play(1, "top", "T0", "T1"),
		play(1, "TOP", "T2", "T3"),
	})
	require.Len(t, got.Innings, 2)
	assert.Equal(t, "Top", got.Innings[0].HalfInning)
	assert.Equal(t, "Top", got.Innings[1].HalfInning)
	assert.Equal(t, "T0", got.Innings[0].Start)
	assert.Equal(t, "T2", got.Innings[1].Start)
}

func TestSortWindows_UnknownHalvesLast(t *testing.T) {
	rows := []domain.InningWindow{
		{Inning: 1, HalfInning: "Middle"},
		{Inning: 1, HalfInning: "Bottom"},
		{Inning: 1, HalfInning: "End"},
		{Inning: 1, HalfInning: "Top"},
	}
	SortWindows(rows)

	var halves []string
	for _, r := range rows {
		halves = append(halves, r.HalfInning)
	}
	assert.Equal(t, []string{"Top", "Bottom", "End", "Middle"}, halves)
}

func TestTitleHalf(t *testing.T) {
	assert.Equal(t, "Top", TitleHalf("top"))
	assert.Equal(t, "Bottom", TitleHalf("BOTTOM"))
	assert.Equal(t, "", TitleHalf(""))
}
