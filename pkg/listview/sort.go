package listview

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sorter sorts table rows by column. A repeated sort on the same table
// toggles between ascending and descending, like clicking a column header.
// Values that parse as numbers on both sides compare numerically;
// otherwise they compare as locale-aware strings. The sort is stable, so
// ties keep their original relative order.
type Sorter struct {
	col       *collate.Collator
	ascending bool
}

// NewSorter creates a Sorter using English collation.
func NewSorter() *Sorter {
	return &Sorter{col: collate.New(language.English)}
}

// Sort orders rows by the given column index in place and returns the
// resulting direction ("asc" or "desc"). The first call sorts ascending;
// each subsequent call reverses the previous direction.
func (s *Sorter) Sort(rows [][]string, column int) string {
	s.ascending = !s.ascending

	sort.SliceStable(rows, func(i, j int) bool {
		cmp := s.compare(cell(rows[i], column), cell(rows[j], column))
		if s.ascending {
			return cmp < 0
		}
		return cmp > 0
	})

	if s.ascending {
		return "asc"
	}
	return "desc"
}

func (s *Sorter) compare(a, b string) int {
	an, aerr := strconv.ParseFloat(a, 64)
	bn, berr := strconv.ParseFloat(b, 64)
	if aerr == nil && berr == nil {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}
	return s.col.CompareString(a, b)
}

func cell(row []string, column int) string {
	if column < 0 || column >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[column])
}
