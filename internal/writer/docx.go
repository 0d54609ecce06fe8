package writer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/timbenroeck/macos-capture-transcripts/internal/transcript"
)

const (
	fontName   = "Times New Roman"
	fontSize   = 13
	headerSize = 14
	titleSize  = 16
)

type docxWriter struct{}

func (w *docxWriter) Ext() string { return ".docx" }

// Write produces a transcript document: a title, then one bold speaker line
// and one text paragraph per block.
func (w *docxWriter) Write(ctx context.Context, path, title string, blocks []transcript.Block) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &Error{Path: path, Err: fmt.Errorf("create output dir: %w", err)}
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return &Error{Path: path, Err: err}
	}

	addStyledRun(doc.AddParagraph(""), title, true, titleSize)
	doc.AddParagraph("")

	for _, b := range blocks {
		addStyledRun(doc.AddParagraph(""), b.Header(), true, headerSize)
		addStyledRun(doc.AddParagraph(""), b.Text, false, fontSize)
	}

	if err := doc.SaveTo(path); err != nil {
		return &Error{Path: path, Err: err}
	}
	return nil
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
