package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

// WriteDailyPDF renders the daily report and writes it to pdfPath as an A4 PDF,
// creating parent directories.
func WriteDailyPDF(pdfPath, templatePath string, data DailyReport) error {
	if !strings.EqualFold(filepath.Ext(pdfPath), ".pdf") {
		return fmt.Errorf("output file must have .pdf extension: %s", pdfPath)
	}

	var markdown bytes.Buffer
	if err := WriteDailyMarkdown(&markdown, templatePath, data); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(pdfPath), 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(pdfPath), err)
	}
	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(markdown.Bytes()); err != nil {
		return fmt.Errorf("renderer.Process(%s) > %w", pdfPath, err)
	}
	return nil
}
