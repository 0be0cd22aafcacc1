package innings

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"mlb-inning-times/internal/domain"
)

var ErrNoIdentifiers = errors.New("no identifiers provided")

const (
	byteOrderMark  = "\ufeff"
	maxLineLength  = 1 << 20
	initialLineBuf = 64 * 1024
)

// ReadIdentifiers collects one identifier per line from each source in order.
// Lines are trimmed and blank lines dropped; duplicates are kept. Nil sources
// are skipped.
func ReadIdentifiers(sources ...io.Reader) ([]string, error) {
	var ids []string
	for i, src := range sources {
		if src == nil {
			continue
		}
		scanner := bufio.NewScanner(src)
		scanner.Buffer(make([]byte, 0, initialLineBuf), maxLineLength)
		first := true
		for scanner.Scan() {
			line := scanner.Text()
			if first {
				line = strings.TrimPrefix(line, byteOrderMark)
				first = false
			}
			if id := strings.TrimSpace(line); id != "" {
				ids = append(ids, id)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read identifiers from source %d: %w", i, err)
		}
	}
	return ids, nil
}

// SplitIdentifiers is ReadIdentifiers over in-memory text sources.
func SplitIdentifiers(texts ...string) []string {
	readers := make([]io.Reader, 0, len(texts))
	for _, t := range texts {
		readers = append(readers, strings.NewReader(t))
	}
	// strings.Reader never fails and lines are bounded by the input
	ids, _ := ReadIdentifiers(readers...)
	return ids
}

// allNumeric reports whether every identifier parses as an integer. A single
// non-numeric identifier switches the whole batch to lexical order.
func allNumeric(ids []string) ([]int64, bool) {
	nums := make([]int64, len(ids))
	for i, id := range ids {
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return nil, false
		}
		nums[i] = n
	}
	return nums, true
}

// sortIdentifiers orders identifiers numerically when all of them are
// integers and lexically otherwise.
func sortIdentifiers(ids []string) {
	sortBy(ids, func(id string) string { return id })
}

// SortResults applies the sortIdentifiers policy to results by GamePk.
func SortResults(results []domain.GameResult) {
	sortBy(results, func(r domain.GameResult) string { return r.GamePk })
}

func sortBy[T any](items []T, key func(T) string) {
	keys := make([]string, len(items))
	for i, it := range items {
		keys[i] = key(it)
	}

	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}

	if nums, ok := allNumeric(keys); ok {
		sort.SliceStable(idx, func(a, b int) bool { return nums[idx[a]] < nums[idx[b]] })
	} else {
		sort.SliceStable(idx, func(a, b int) bool { return keys[idx[a]] < keys[idx[b]] })
	}

	sorted := make([]T, len(items))
	for i, j := range idx {
		sorted[i] = items[j]
	}
	copy(items, sorted)
}
