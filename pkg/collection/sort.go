package collection

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortField selects the key Sort orders by.
type SortField string

const (
	SortByName      SortField = "name"
	SortByCreatedAt SortField = "createdAt"
	SortByUpdatedAt SortField = "updatedAt"
	SortByType      SortField = "type"
)

// Name sorting is locale-aware so that accented names interleave naturally.
var nameCollator = collate.New(language.Und)

// Sort returns a new slice ordered by field, ascending unless descending is
// set. The input slice is never mutated.
func Sort(list []Collection, field SortField, descending bool) []Collection {
	sorted := make([]Collection, len(list))
	copy(sorted, list)

	sort.SliceStable(sorted, func(i, j int) bool {
		var cmp int
		switch field {
		case SortByName:
			cmp = nameCollator.CompareString(sorted[i].Name, sorted[j].Name)
		case SortByCreatedAt:
			cmp = compareTimes(sorted[i].CreatedAt, sorted[j].CreatedAt)
		case SortByUpdatedAt:
			cmp = compareTimes(sorted[i].UpdatedAt, sorted[j].UpdatedAt)
		case SortByType:
			cmp = strings.Compare(string(sorted[i].Type), string(sorted[j].Type))
		}
		if descending {
			return cmp > 0
		}
		return cmp < 0
	})
	return sorted
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
