package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"sort"
	"strconv"
	"strings"
)

const (
	docxBody     = "word/document.xml"
	pptxSlideDir = "ppt/slides/"
)

// DocxParagraphs returns the text of every paragraph in a .docx body, in order.
// Empty paragraphs are included as empty strings.
func (e *Extractor) DocxParagraphs(p string) ([]string, error) {
	zr, err := zip.OpenReader(p)
	if err != nil {
		return nil, fmt.Errorf("open docx: %w: %v", ErrUnreadable, err)
	}
	defer zr.Close()

	f := findFile(&zr.Reader, docxBody)
	if f == nil {
		return nil, fmt.Errorf("docx: missing %s: %w", docxBody, ErrUnreadable)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("docx: open body: %w", err)
	}
	defer rc.Close()

	return paragraphs(rc, "t")
}

// PptxSlides returns the text of each slide, ordered by slide number.
// Paragraphs inside a slide are separated by newlines.
func (e *Extractor) PptxSlides(p string) ([]string, error) {
	zr, err := zip.OpenReader(p)
	if err != nil {
		return nil, fmt.Errorf("open pptx: %w: %v", ErrUnreadable, err)
	}
	defer zr.Close()

	type slide struct {
		n int
		f *zip.File
	}
	var slides []slide
	for _, f := range zr.File {
		dir, name := path.Split(f.Name)
		if dir != pptxSlideDir || !strings.HasPrefix(name, "slide") || !strings.HasSuffix(name, ".xml") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, "slide"), ".xml"))
		if err != nil {
			continue
		}
		slides = append(slides, slide{n: n, f: f})
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].n < slides[j].n })

	out := make([]string, 0, len(slides))
	for _, s := range slides {
		rc, err := s.f.Open()
		if err != nil {
			return nil, fmt.Errorf("pptx: open slide %d: %w", s.n, err)
		}
		paras, err := paragraphs(rc, "t")
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("pptx: slide %d: %w", s.n, err)
		}
		out = append(out, strings.TrimSpace(strings.Join(nonEmpty(paras), "\n")))
	}
	return out, nil
}

// paragraphs walks WordprocessingML / DrawingML and collects the character
// data of textTag elements, grouped by <p>.
func paragraphs(r io.Reader, textTag string) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		out    []string
		buf    strings.Builder
		inText bool
		inPara bool
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inPara = true
				buf.Reset()
			case textTag:
				inText = true
			case "tab":
				buf.WriteByte('\t')
			case "br":
				buf.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if inPara {
					out = append(out, buf.String())
				}
				inPara = false
				buf.Reset()
			case textTag:
				inText = false
			}
		case xml.CharData:
			if inText {
				buf.Write(t)
			}
		}
	}
	return out, nil
}

func findFile(zr *zip.Reader, name string) *zip.File {
	for _, f := range zr.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func nonEmpty(ss []string) []string {
	out := ss[:0:0]
	for _, s := range ss {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
