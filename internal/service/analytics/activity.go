package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// DefaultActivityLimit is used when the caller passes a non-positive limit.
const DefaultActivityLimit = 10

// Activity returns the dashboard feed built from the most recent uploads.
func (s *Service) Activity(ctx context.Context, limit int) ([]domain.ActivityItem, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}

	docs, err := s.docs.List(ctx, domain.DocumentFilter{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("analytics.Activity: %w", err)
	}

	now := s.now()
	items := make([]domain.ActivityItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, domain.ActivityItem{
			DocumentID: d.ID,
			Title:      d.OriginalFilename,
			Type:       ActivityType(d),
			Status:     d.Status,
			TimeAgo:    TimeAgo(d.UploadDate, now),
			UploadDate: d.UploadDate,
		})
	}
	return items, nil
}

// ActivityType classifies a document for the feed.
func ActivityType(d domain.Document) string {
	switch d.Status {
	case domain.DocumentStatusProcessing:
		return domain.ActivityProcessing
	case domain.DocumentStatusFailed:
		return domain.ActivityFailed
	case domain.DocumentStatusCompleted:
		if domain.IsQuizSource(d.FileType) {
			return domain.ActivityQuizReady
		}
	}
	return domain.ActivityUpload
}

// TimeAgo renders the age of t relative to now.
func TimeAgo(t, now time.Time) string {
	age := now.Sub(t)
	switch {
	case age < time.Minute:
		return "Just now"
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age/time.Minute))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(age/time.Hour))
	default:
		return fmt.Sprintf("%dd ago", int(age/(24*time.Hour)))
	}
}
