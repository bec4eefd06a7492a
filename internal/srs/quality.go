package srs

import (
	"errors"
	"fmt"
)

// ErrInvalidQuality is returned when a quality rating is outside 0-5.
var ErrInvalidQuality = errors.New("srs: quality must be between 0 and 5")

// Quality is a self-reported recall score.
type Quality int

const (
	QualityBlackout          Quality = 0 // no recall at all
	QualityIncorrect         Quality = 1 // wrong, but recognized the answer
	QualityIncorrectFamiliar Quality = 2 // wrong, but the answer felt familiar
	QualityCorrectDifficult  Quality = 3 // correct with serious difficulty
	QualityCorrectHesitation Quality = 4 // correct after some hesitation
	QualityPerfect           Quality = 5 // correct without hesitation
)

// PassThreshold is the lowest quality counted as a successful recall.
const PassThreshold = QualityCorrectDifficult

// ParseQuality converts a raw rating and rejects values outside 0-5.
func ParseQuality(v int) (Quality, error) {
	q := Quality(v)
	if !q.IsValid() {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidQuality, v)
	}
	return q, nil
}

// IsValid reports whether q is within 0-5.
func (q Quality) IsValid() bool {
	return q >= QualityBlackout && q <= QualityPerfect
}

// IsSuccess reports whether q counts as a correct answer.
func (q Quality) IsSuccess() bool {
	return q >= PassThreshold
}
