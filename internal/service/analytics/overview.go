package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// ActivityDays is the length of the uploads-per-day series.
const ActivityDays = 7

// Overview returns totals, the uploads-per-day series ending today and the
// document type distribution.
func (s *Service) Overview(ctx context.Context) (domain.Overview, error) {
	now := s.now()

	stats, err := s.docs.Stats(ctx, now.AddDate(0, 0, -ActivityDays))
	if err != nil {
		return domain.Overview{}, fmt.Errorf("analytics.Overview: %w", err)
	}
	quizzes, err := s.quizzes.Count(ctx)
	if err != nil {
		return domain.Overview{}, fmt.Errorf("analytics.Overview: %w", err)
	}
	counters, err := s.counters.Get(ctx)
	if err != nil {
		return domain.Overview{}, fmt.Errorf("analytics.Overview: %w", err)
	}
	docs, err := s.docs.List(ctx, domain.DocumentFilter{})
	if err != nil {
		return domain.Overview{}, fmt.Errorf("analytics.Overview: %w", err)
	}

	return domain.Overview{
		TotalDocuments: stats.TotalDocuments,
		TotalQuizzes:   quizzes,
		TotalSearches:  counters.TotalSearches,
		AIInteractions: counters.AIInteractions,
		TotalFileSize:  stats.TotalFileSize,
		ActivityData:   ActivityData(docs, now),
		DocumentTypes:  CountTypes(docs),
	}, nil
}

// ActivityData counts uploads per local calendar day from today-6 to today.
func ActivityData(docs []domain.Document, now time.Time) []int {
	loc := now.Location()
	today := startOfDay(now)
	first := today.AddDate(0, 0, -(ActivityDays - 1))

	data := make([]int, ActivityDays)
	for _, d := range docs {
		day := startOfDay(d.UploadDate.In(loc))
		if day.Before(first) || day.After(today) {
			continue
		}
		// Compare calendar days, not 24h spans.
		for i := range ActivityDays {
			if first.AddDate(0, 0, i).Equal(day) {
				data[i]++
				break
			}
		}
	}
	return data
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// CountTypes buckets documents by the first of pdf, doc, ppt, zip their file
// type contains.
func CountTypes(docs []domain.Document) domain.DocumentTypeCounts {
	var c domain.DocumentTypeCounts
	for _, d := range docs {
		ft := strings.ToLower(d.FileType)
		switch {
		case strings.Contains(ft, "pdf"):
			c.PDF++
		case strings.Contains(ft, "doc"):
			c.DOC++
		case strings.Contains(ft, "ppt"):
			c.PPT++
		case strings.Contains(ft, "zip"):
			c.ZIP++
		default:
			c.Other++
		}
	}
	return c
}
