package notify

import (
	"context"
	"log"

	"feedback-collector/internal/models"
)

// LogNotifier writes notifications to the process log.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(ctx context.Context, f *models.Feedback) error {
	log.Printf("📨 Feedback stored for %s (%s)\n%s", f.EmpID, f.Name, Summary(f))
	return nil
}
