package search

import (
	"cmp"
	"context"
	"fmt"
	"html"
	"regexp"
	"slices"
	"strings"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// Search page defaults.
const (
	DefaultPageSize     = 10
	DefaultSnippetChars = 360
	pageMaxResults      = 100
)

// Sort orders and modes accepted by the search page.
const (
	SortRelevance     = "relevance"
	SortFilename      = "filename"
	ModeContent       = "content"
	ModeFindDocuments = "find_documents"
)

// Page is one page of a result list.
type Page[T any] struct {
	Items         []T
	Page          int
	PageSize      int
	TotalPages    int
	TotalElements int
	HasPrev       bool
	HasNext       bool
	// Window lists the page numbers to offer around Page; empty for a single page.
	Window []int
}

// Paginate slices items into pages of size pageSize. page is clamped to at least 1.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	page = max(page, 1)
	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	p := Page[T]{
		Items:         []T{},
		Page:          page,
		PageSize:      pageSize,
		TotalPages:    totalPages,
		TotalElements: total,
		HasPrev:       page > 1,
		HasNext:       page < totalPages,
		Window:        []int{},
	}

	if start := (page - 1) * pageSize; start < total {
		p.Items = items[start:min(start+pageSize, total)]
	}
	if totalPages > 1 {
		for n := max(1, page-2); n <= min(totalPages, page+2); n++ {
			p.Window = append(p.Window, n)
		}
	}
	return p
}

// SortByFilename returns a copy of results ordered by filename, case-insensitively.
// Equal filenames keep their relative order.
func SortByFilename(results []domain.SearchResult) []domain.SearchResult {
	out := slices.Clone(results)
	slices.SortStableFunc(out, func(a, b domain.SearchResult) int {
		return cmp.Compare(strings.ToLower(a.Filename), strings.ToLower(b.Filename))
	})
	return out
}

// FindDocuments matches documents by original filename and presents them as results.
func FindDocuments(docs []domain.Document, q string) []domain.SearchResult {
	needle := domain.NormalizeQuery(q)
	out := make([]domain.SearchResult, 0)
	for _, d := range docs {
		if !strings.Contains(strings.ToLower(d.OriginalFilename), needle) {
			continue
		}
		out = append(out, domain.SearchResult{
			DocumentID: d.ID,
			Filename:   d.OriginalFilename,
			Content:    d.ContentSummary,
			UploadedAt: d.UploadDate,
			Score:      1,
		})
	}
	return out
}

const (
	highlightOpen  = `<span class="result-highlight">`
	highlightClose = `</span>`
)

// Highlight HTML-escapes text and wraps each case-insensitive occurrence of q.
// Matching runs on the raw text so entities are never split.
func Highlight(text, q string) string {
	q = strings.TrimSpace(q)
	if q == "" {
		return html.EscapeString(text)
	}
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(q))

	var b strings.Builder
	last := 0
	for _, m := range re.FindAllStringIndex(text, -1) {
		b.WriteString(html.EscapeString(text[last:m[0]]))
		b.WriteString(highlightOpen)
		b.WriteString(html.EscapeString(text[m[0]:m[1]]))
		b.WriteString(highlightClose)
		last = m[1]
	}
	b.WriteString(html.EscapeString(text[last:]))
	return b.String()
}

// TruncateHTML shortens s to at most max runes plus an ellipsis without
// leaving a tag or an entity cut in half. A highlight left open is closed.
func TruncateHTML(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	cut := string(r[:max])
	if lt := strings.LastIndex(cut, "<"); lt > strings.LastIndex(cut, ">") {
		cut = cut[:lt]
	}
	if amp := strings.LastIndex(cut, "&"); amp > strings.LastIndex(cut, ";") {
		cut = cut[:amp]
	}
	if open := strings.Count(cut, "<span") - strings.Count(cut, highlightClose); open > 0 {
		cut += strings.Repeat(highlightClose, open)
	}
	return cut + "…"
}

// PageInput is a search page request.
type PageInput struct {
	Query string
	Page  int
	Sort  string
	Mode  string
}

// Hit is a result with its rendered snippet.
type Hit struct {
	Result   domain.SearchResult
	Snippet  string
	Location string
}

// PageView is a rendered page of the search screen.
type PageView struct {
	Query   string
	Sort    string
	Mode    string
	Results Page[Hit]
}

// SearchPage runs the search screen: a content search or a filename lookup,
// optionally sorted by filename, paginated and highlighted.
func (s *Service) SearchPage(ctx context.Context, in PageInput) (PageView, error) {
	mode := in.Mode
	if mode != ModeFindDocuments {
		mode = ModeContent
	}
	sort := in.Sort
	if sort != SortFilename {
		sort = SortRelevance
	}

	var (
		results []domain.SearchResult
		err     error
	)
	if mode == ModeFindDocuments {
		var docs []domain.Document
		docs, err = s.docs.List(ctx, domain.DocumentFilter{})
		results = FindDocuments(docs, in.Query)
	} else {
		results, err = s.Search(ctx, in.Query, pageMaxResults)
	}
	if err != nil {
		return PageView{}, fmt.Errorf("search.SearchPage: %w", err)
	}

	if sort == SortFilename {
		results = SortByFilename(results)
	}

	hits := make([]Hit, len(results))
	for i, r := range results {
		hits[i] = Hit{
			Result:   r,
			Snippet:  TruncateHTML(Highlight(r.Content, in.Query), s.cfg.SnippetChars),
			Location: domain.FormatLocation(r.PageNumber, r.SlideNumber, ""),
		}
	}

	return PageView{
		Query:   in.Query,
		Sort:    sort,
		Mode:    mode,
		Results: Paginate(hits, in.Page, s.cfg.PageSize),
	}, nil
}
