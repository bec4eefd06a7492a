package srs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuality(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		want    Quality
		wantErr bool
	}{
		{name: "lowest", input: 0, want: QualityBlackout},
		{name: "pass threshold", input: 3, want: QualityCorrectDifficult},
		{name: "highest", input: 5, want: QualityPerfect},
		{name: "negative", input: -1, wantErr: true},
		{name: "too high", input: 6, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuality(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidQuality)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuality_IsSuccess(t *testing.T) {
	for q := QualityBlackout; q <= QualityPerfect; q++ {
		assert.Equal(t, q >= 3, q.IsSuccess(), "quality %d", q)
	}
}
