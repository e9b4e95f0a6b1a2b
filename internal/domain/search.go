package domain

import (
	"time"

	"github.com/google/uuid"
)

// SearchResult is a ranked snippet of indexed content.
type SearchResult struct {
	DocumentID   uuid.UUID
	ContentID    uuid.UUID
	Content      string
	Filename     string
	Topic        string
	SectionTitle string
	PageNumber   *int
	SlideNumber  *int
	Score        float64
	UploadedAt   time.Time
}

// IndexEntry is one row of the search index.
type IndexEntry struct {
	ContentID    uuid.UUID
	DocumentID   uuid.UUID
	Filename     string
	Content      string
	Topic        string
	SectionTitle string
	PageNumber   *int
	SlideNumber  *int
	UploadedAt   time.Time
}

// IndexStats describes the search index.
type IndexStats struct {
	TotalDocuments int
	IndexSize      int
	IndexDirectory string
}

// SearchMode selects how SearchQuery.Terms are matched.
type SearchMode int

const (
	// SearchModeAll matches every entry and ignores Terms.
	SearchModeAll SearchMode = iota
	// SearchModeSubstring matches any term as a case-insensitive substring of
	// content, filename, topic or section title.
	SearchModeSubstring
	// SearchModeContentSubstring matches any term as a substring of content only.
	SearchModeContentSubstring
	// SearchModeFullText matches any term as a websearch-style tsquery, ranked by ts_rank.
	SearchModeFullText
)

// SearchQuery describes an index lookup.
type SearchQuery struct {
	Mode     SearchMode
	Terms    []string
	Filename string
	Topic    string
	// Limit caps the number of results; 0 means unlimited.
	Limit int
}
