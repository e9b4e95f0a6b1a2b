package extract

import (
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PDFPages returns one Page per page of the document, numbered from 1.
// A failure on a single page is reported in Page.Err and does not stop the
// remaining pages.
func (e *Extractor) PDFPages(path string) (pages []Page, err error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w: %v", ErrUnreadable, err)
	}
	defer f.Close()

	// The pdf reader panics on some malformed documents.
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("read pdf: %w: %v", ErrUnreadable, rec)
		}
	}()

	total := r.NumPage()
	pages = make([]Page, 0, total)
	for i := 1; i <= total; i++ {
		pages = append(pages, readPage(r, i))
	}
	return pages, nil
}

func readPage(r *pdf.Reader, n int) (page Page) {
	page.Number = n
	defer func() {
		if rec := recover(); rec != nil {
			page.Text = ""
			page.Err = fmt.Errorf("%v", rec)
		}
	}()

	p := r.Page(n)
	if p.V.IsNull() {
		return page
	}
	text, err := p.GetPlainText(nil)
	if err != nil {
		page.Err = err
		return page
	}
	page.Text = text
	return page
}
