package signals

import (
	"github.com/custodia-labs/docrank-cli/internal/textproc"
)

// optimalContentLength is the content length in characters past which
// the length term starts penalising instead of rewarding.
const optimalContentLength = 1000

// ContentQuality scores content by the average of a length term and
// lexical diversity. The length term rewards content approaching the
// optimal length and decays, floored at 0.5, beyond it; diversity is
// the ratio of distinct to total words.
func ContentQuality(content string) float64 {
	length := float64(len(content))

	var lengthScore float64
	switch {
	case length == 0:
		lengthScore = 0
	case length < optimalContentLength:
		lengthScore = length / optimalContentLength
	default:
		lengthScore = optimalContentLength / length
		if lengthScore < 0.5 {
			lengthScore = 0.5
		}
	}

	return (lengthScore + textproc.UniqueRatio(content)) / 2
}
