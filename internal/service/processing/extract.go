package processing

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydocs-backend/internal/adapter/extract"
	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// Placeholder topics and section titles.
const (
	TopicGeneral      = "General Content"
	TopicEmptyPage    = "Empty Page"
	TopicErrorPage    = "Error Page"
	SectionDocContent = "Document Content"
)

var slideMarker = regexp.MustCompile(`Slide \d+`)

func (s *Service) extractDocument(ctx context.Context, doc domain.Document) ([]domain.DocumentContent, error) {
	if doc.FileType == ".zip" {
		return s.extractZip(ctx, doc)
	}
	return s.extractFile(doc.ID, doc.FilePath, doc.FileType)
}

// extractFile turns one file into content blocks according to its extension.
func (s *Service) extractFile(docID uuid.UUID, path, ext string) ([]domain.DocumentContent, error) {
	switch ext {
	case ".pdf":
		pages, err := s.extract.PDFPages(path)
		if err != nil {
			return nil, err
		}
		return pdfBlocks(docID, pages), nil

	case ".docx":
		paras, err := s.extract.DocxParagraphs(path)
		if err != nil {
			return nil, err
		}
		return docxBlocks(docID, paras, s.cfg.DocxChunkChars), nil

	case ".pptx":
		slides, err := s.extract.PptxSlides(path)
		if err != nil {
			return nil, err
		}
		return slideBlocks(docID, slides), nil

	case ".ppt":
		text, err := s.extract.LegacyText(path)
		if err != nil {
			return nil, err
		}
		return slideBlocks(docID, slideMarker.Split(text, -1)), nil

	case ".doc":
		text, err := s.extract.LegacyText(path)
		if err != nil {
			return nil, err
		}
		return singleBlock(docID, text), nil

	case ".rtf":
		text, err := s.extract.RTFText(path)
		if err != nil {
			return nil, err
		}
		return singleBlock(docID, text), nil

	case ".txt":
		text, err := s.extract.PlainText(path)
		if err != nil {
			return nil, err
		}
		return singleBlock(docID, text), nil

	default:
		return nil, fmt.Errorf("unsupported file type %q", ext)
	}
}

func pdfBlocks(docID uuid.UUID, pages []extract.Page) []domain.DocumentContent {
	out := make([]domain.DocumentContent, 0, len(pages))
	for _, p := range pages {
		n := strconv.Itoa(p.Number)
		section := "Page " + n

		var block domain.DocumentContent
		text := strings.TrimSpace(p.Text)
		switch {
		case p.Err != nil:
			block = domain.NewDocumentContent(docID, "[Page "+n+" - Error processing: "+p.Err.Error()+"]", TopicErrorPage, section)
		case text == "":
			block = domain.NewDocumentContent(docID, "[Page "+n+" - No text content]", TopicEmptyPage, section)
		default:
			block = domain.NewDocumentContent(docID, text, DetectTopic(p.Text), section)
		}
		block.PageNumber = domain.Ptr(p.Number)
		out = append(out, block)
	}
	return out
}

// docxBlocks accumulates non-empty paragraphs and cuts a "Section N" block
// each time the buffer grows past chunk characters.
func docxBlocks(docID uuid.UUID, paras []string, chunk int) []domain.DocumentContent {
	var (
		out     []domain.DocumentContent
		buf     strings.Builder
		chars   int
		section int
	)
	emit := func() {
		text := buf.String()
		buf.Reset()
		chars = 0
		section++
		out = append(out, domain.NewDocumentContent(docID, strings.TrimSpace(text), DetectTopic(text), "Section "+strconv.Itoa(section)))
	}

	for _, p := range paras {
		if strings.TrimSpace(p) == "" {
			continue
		}
		buf.WriteString(p)
		buf.WriteByte('\n')
		chars += utf8.RuneCountInString(p) + 1
		if chars > chunk {
			emit()
		}
	}
	if buf.Len() > 0 {
		emit()
	}
	return out
}

// slideBlocks keeps the position of each slide; empty slides are dropped
// without renumbering the rest.
func slideBlocks(docID uuid.UUID, slides []string) []domain.DocumentContent {
	var out []domain.DocumentContent
	for i, raw := range slides {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		block := domain.NewDocumentContent(docID, text, DetectTopic(text), "Slide "+strconv.Itoa(i+1))
		block.SlideNumber = domain.Ptr(i + 1)
		out = append(out, block)
	}
	return out
}

func singleBlock(docID uuid.UUID, text string) []domain.DocumentContent {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	return []domain.DocumentContent{domain.NewDocumentContent(docID, trimmed, DetectTopic(text), SectionDocContent)}
}
