package display

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"mlb-inning-times/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = domain.GameResult{
	GamePk: "745123",
	Innings: []domain.InningWindow{
		{Inning: 1, HalfInning: "Top", Start: "T0", End: "T1"},
		{Inning: 1, HalfInning: "Bottom", Start: "T2", End: "T3"},
	},
}

func TestRender_SingleGame(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, []domain.GameResult{sample}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"InningHalf", "startTime", "endTime"}, strings.Fields(lines[0]))
	assert.Equal(t, "1 Bottom    T2         T3", lines[2])
	assert.NotContains(t, buf.String(), "==")
}

func TestRender_MultipleGamesGetSections(t *testing.T) {
	other := sample
	other.GamePk = "745124"

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, []domain.GameResult{sample, other}))

	out := buf.String()
	assert.Contains(t, out, "== 745123 ==")
	assert.Contains(t, out, "== 745124 ==")
	assert.Less(t, strings.Index(out, "745123"), strings.Index(out, "745124"))
}

func TestRenderFailures(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderFailures(&buf, []domain.FetchFailure{{GamePk: "1", Err: errors.New("boom")}}))
	assert.Equal(t, "error fetching data for game 1: boom\n", buf.String())
}
