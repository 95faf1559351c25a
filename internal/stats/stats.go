// Package stats tallies rating histograms over stored feedback.
package stats

import "strconv"

// Dimensions lists the rated questions in form order.
var Dimensions = []string{"punctuality", "clarification", "explanation", "communication", "feedback"}

// InvalidKey is the bucket for ratings that were missing or not a number.
const InvalidKey = "NaN"

// Result maps a dimension to a histogram of rating value -> count.
type Result map[string]map[string]int

// CountRatings builds a histogram keyed by each rating's decimal form.
func CountRatings(ratings []*int) map[string]int {
	counts := make(map[string]int)
	for _, r := range ratings {
		counts[key(r)]++
	}
	return counts
}

// FromColumns builds a Result from per-dimension rating columns, as returned
// by the store's grouping pipeline.
func FromColumns(columns map[string][]*int) Result {
	result := Result{}
	for _, d := range Dimensions {
		result[d] = CountRatings(columns[d])
	}
	return result
}

func key(r *int) string {
	if r == nil {
		return InvalidKey
	}
	return strconv.Itoa(*r)
}
