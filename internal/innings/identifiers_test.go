package innings

import (
	"strings"
	"testing"

	"mlb-inning-times/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadIdentifiers_TextThenFile(t *testing.T) {
	text := strings.NewReader("  745123 \n\n745124\r\n")
	file := strings.NewReader("\ufeff745200\n   \n745123\n")

	ids, err := ReadIdentifiers(text, nil, file)
	require.NoError(t, err)
	assert.Equal(t, []string{"745123", "745124", "745200", "745123"}, ids)
}

func TestReadIdentifiers_Empty(t *testing.T) {
	ids, err := ReadIdentifiers(strings.NewReader("\n \n\t\n"))
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestSplitIdentifiers(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, SplitIdentifiers("1\n2", "", "3"))
	assert.Empty(t, SplitIdentifiers())
}

func TestSortIdentifiers(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{"numeric", []string{"10", "2", "30"}, []string{"2", "10", "30"}},
		{"mixed falls back to lexical", []string{"10", "abc", "2"}, []string{"10", "2", "abc"}},
		{"lexical", []string{"b", "a", "c"}, []string{"a", "b", "c"}},
		{"duplicates kept", []string{"5", "1", "5"}, []string{"1", "5", "5"}},
		{"leading zeros compare as numbers", []string{"010", "9"}, []string{"9", "010"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ids := append([]string(nil), tc.in...)
			sortIdentifiers(ids)
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestSortResults_StableForDuplicates(t *testing.T) {
	results := []domain.GameResult{
		{GamePk: "20", Innings: []domain.InningWindow{{Inning: 1, Start: "first"}}},
		{GamePk: "3"},
		{GamePk: "20", Innings: []domain.InningWindow{{Inning: 1, Start: "second"}}},
	}
	SortResults(results)

	require.Len(t, results, 3)
	assert.Equal(t, "3", results[0].GamePk)
	assert.Equal(t, "first", results[1].Innings[0].Start)
	assert.Equal(t, "second", results[2].Innings[0].Start)
}
