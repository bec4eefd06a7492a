package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/cardstudy/internal/statistics"
)

func sampleDaily() statistics.DailyStudyStats {
	return statistics.DailyStudyStats{
		DayUTC:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Total:    4,
		Correct:  3,
		Accuracy: 0.75,
		Distribution: []statistics.QualityBucket{
			{Quality: 0, Count: 1},
			{Quality: 1, Count: 0},
			{Quality: 2, Count: 0},
			{Quality: 3, Count: 1},
			{Quality: 4, Count: 0},
			{Quality: 5, Count: 2},
		},
	}
}

func TestWriteDailyMarkdown(t *testing.T) {
	tests := []struct {
		name         string
		templatePath func(t *testing.T) string
		data         DailyReport
		want         []string
		wantAbsent   []string
	}{
		{
			name:         "embedded template without card stats",
			templatePath: func(t *testing.T) string { return "" },
			data:         DailyReport{Daily: sampleDaily()},
			want: []string{
				"# Study report for 2025-03-01",
				"| 4 | 3 | 75.0% |",
				"| Quality | Count |\n| ------- | ----- |\n| 0 | 1 |\n| 1 | 0 |\n| 2 | 0 |\n| 3 | 1 |\n| 4 | 0 |\n| 5 | 2 |\n",
			},
			wantAbsent: []string{"## Cards"},
		},
		{
			name:         "embedded template with card stats",
			templatePath: func(t *testing.T) string { return "" },
			data: DailyReport{
				Daily: sampleDaily(),
				Cards: &statistics.CardSourceStats{Total: 10, AI: 4, Manual: 6, AIUsageRate: 0.4},
			},
			want: []string{"## Cards", "| 10 | 4 | 6 | 40.0% |"},
		},
		{
			name:         "missing template file falls back to the embedded one",
			templatePath: func(t *testing.T) string { return "/non/existent/report.md.go.tmpl" },
			data:         DailyReport{Daily: sampleDaily()},
			want:         []string{"# Study report for 2025-03-01"},
		},
		{
			name: "custom template from the filesystem",
			templatePath: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "custom.md.go.tmpl")
				require.NoError(t, os.WriteFile(path, []byte(`{{ date .Daily.DayUTC }}: {{ .Daily.Total }} reviews, {{ percent .Daily.Accuracy }}`), 0644))
				return path
			},
			data: DailyReport{Daily: sampleDaily()},
			want: []string{"2025-03-01: 4 reviews, 75.0%"},
		},
		{
			name: "broken custom template falls back to the embedded one",
			templatePath: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "broken.md.go.tmpl")
				require.NoError(t, os.WriteFile(path, []byte(`{{ .Daily.Total `), 0644))
				return path
			},
			data: DailyReport{Daily: sampleDaily()},
			want: []string{"# Study report for 2025-03-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteDailyMarkdown(&buf, tt.templatePath(t), tt.data))
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
			for _, absent := range tt.wantAbsent {
				assert.NotContains(t, buf.String(), absent)
			}
		})
	}
}

func TestWriteDailyMarkdownFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "2025-03-01.md")
	require.NoError(t, WriteDailyMarkdownFile(path, "", DailyReport{Daily: sampleDaily()}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Study report for 2025-03-01")
}

func TestWriteDailyPDF(t *testing.T) {
	t.Run("writes the report to the chosen path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "exports", "2025-03-01.pdf")
		cards := statistics.CardSourceStats{Total: 4, AI: 1, Manual: 3, AIUsageRate: 0.25}

		require.NoError(t, WriteDailyPDF(path, "", DailyReport{Daily: sampleDaily(), Cards: &cards}))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
	})

	t.Run("custom template is used", func(t *testing.T) {
		templatePath := filepath.Join(t.TempDir(), "custom.md.tmpl")
		require.NoError(t, os.WriteFile(templatePath, []byte("# {{ date .Daily.DayUTC }}\n"), 0644))
		path := filepath.Join(t.TempDir(), "custom.pdf")

		require.NoError(t, WriteDailyPDF(path, templatePath, DailyReport{Daily: sampleDaily()}))
		assert.FileExists(t, path)
	})

	t.Run("rejects other extensions", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.md")

		err := WriteDailyPDF(path, "", DailyReport{Daily: sampleDaily()})
		assert.ErrorContains(t, err, "must have .pdf extension")
		assert.NoFileExists(t, path)
	})
}
