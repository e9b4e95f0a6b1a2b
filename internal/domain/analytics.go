package domain

import (
	"time"

	"github.com/google/uuid"
)

// AnalyticsCounters holds the global usage counters.
type AnalyticsCounters struct {
	TotalSearches  int64
	AIInteractions int64
	UpdatedAt      time.Time
}

// DocumentTypeCounts buckets documents by file type.
type DocumentTypeCounts struct {
	PDF   int
	DOC   int
	PPT   int
	ZIP   int
	Other int
}

// Overview is the analytics dashboard payload.
type Overview struct {
	TotalDocuments int
	TotalQuizzes   int
	TotalSearches  int64
	AIInteractions int64
	TotalFileSize  int64
	ActivityData   []int
	DocumentTypes  DocumentTypeCounts
}

// Activity feed item types.
const (
	ActivityProcessing = "processing"
	ActivityFailed     = "failed"
	ActivityQuizReady  = "quiz_ready"
	ActivityUpload     = "upload"
)

// ActivityItem is one row of the dashboard activity feed.
type ActivityItem struct {
	DocumentID uuid.UUID
	Title      string
	Type       string
	Status     DocumentStatus
	TimeAgo    string
	UploadDate time.Time
}
