// Package report renders study statistics as Markdown and PDF.
package report

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/at-ishikawa/cardstudy/internal/statistics"
)

//go:embed templates/daily-stats.md.go.tmpl
var fallbackDailyTemplate string

const dailyTemplateName = "daily-stats.md.go.tmpl"

// DailyReport is the data passed to the daily report template.
type DailyReport struct {
	Daily statistics.DailyStudyStats
	// Cards is optional
	Cards *statistics.CardSourceStats
}

var funcMap = template.FuncMap{
	"date": func(t time.Time) string {
		return t.UTC().Format("2006-01-02")
	},
	"percent": func(rate float64) string {
		return fmt.Sprintf("%.1f%%", rate*100)
	},
}

// ParseDailyTemplate parses templatePath, falling back to the embedded template
// when the path is empty, missing or invalid.
func ParseDailyTemplate(templatePath string) (*template.Template, error) {
	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			tmpl, err := template.New(filepath.Base(templatePath)).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a template, using the embedded one",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(dailyTemplateName).
		Funcs(funcMap).
		Parse(fallbackDailyTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}

// WriteDailyMarkdown renders data to output.
func WriteDailyMarkdown(output io.Writer, templatePath string, data DailyReport) error {
	tmpl, err := ParseDailyTemplate(templatePath)
	if err != nil {
		return fmt.Errorf("ParseDailyTemplate() > %w", err)
	}
	if err := tmpl.Execute(output, data); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}

// WriteDailyMarkdownFile renders data to path, creating parent directories.
func WriteDailyMarkdownFile(path, templatePath string, data DailyReport) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(path), err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer file.Close()

	if err := WriteDailyMarkdown(file, templatePath, data); err != nil {
		return err
	}
	return file.Close()
}
