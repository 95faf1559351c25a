package notify

import (
	"context"
	"fmt"
	"strings"

	"feedback-collector/internal/models"
)

// Notifier is told about every feedback record that was stored.
type Notifier interface {
	Notify(ctx context.Context, feedback *models.Feedback) error
}

// maxStars caps the star bar; ratings are stored unvalidated and may be
// negative or arbitrarily large.
const maxStars = 10

func formatRating(label string, rating *int) string {
	if rating == nil {
		return label + ": (not given)"
	}
	stars := max(0, min(*rating, maxStars))
	return fmt.Sprintf("%s: %s (%d)", label, strings.Repeat("★", stars), *rating)
}

// Summary renders the ratings of a record, one per line.
func Summary(f *models.Feedback) string {
	lines := []string{
		formatRating("Punctuality", f.Punctuality),
		formatRating("Clarification", f.Clarification),
		formatRating("Explanation", f.Explanation),
		formatRating("Communication", f.Communication),
		formatRating("Overall", f.Rating),
	}
	if f.Other != "" {
		lines = append(lines, "Comments: "+f.Other)
	}
	return strings.Join(lines, "\n")
}
