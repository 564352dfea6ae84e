package scoring

import (
	"context"
	"regexp"
	"strings"

	"github.com/verimark/verimark/core"
	"github.com/verimark/verimark/x/signal"
)

var aiPhraseRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)as an ai language model`),
	regexp.MustCompile(`(?i)as a language model`),
	regexp.MustCompile(`(?i)i don't have personal (opinions|experiences)`),
	regexp.MustCompile(`(?i)i cannot (provide|fulfill|assist)`),
	regexp.MustCompile(`(?i)it('s| is) (important|worth) (to note|noting) that`),
	regexp.MustCompile(`(?i)in conclusion,`),
	regexp.MustCompile(`(?i)delve into`),
}

var formulaicRe = regexp.MustCompile(`(?is)\bfirstly\b.*\bsecondly\b.*\bfinally\b`)

// patternStrategy counts AI-disclaimer phrasing.
type patternStrategy struct {
	jitter JitterFunc
}

func (s *patternStrategy) Score(ctx context.Context, text string) core.ScoreResult {
	aiScore := 0.0

	for _, re := range aiPhraseRes {
		aiScore += float64(len(re.FindAllStringIndex(text, -1))) * 0.15
	}

	if formulaicRe.MatchString(text) {
		aiScore += 0.2
	}

	return finish(aiScore + s.jitter())
}

// statisticalStrategy keys off sentence-length uniformity and word
// length. This is the designated fallback for unknown provider ids.
type statisticalStrategy struct {
	jitter JitterFunc
}

func (s *statisticalStrategy) Score(ctx context.Context, text string) core.ScoreResult {
	signals := signal.Extract(text)

	aiScore := 0.0
	if signals.SentenceLengthStdDev < 2 {
		aiScore += 0.3
	}
	if signals.AvgWordLength > 5.8 {
		aiScore += 0.2
	}
	if signals.AvgSentenceLength > 20 && signals.SentenceLengthStdDev < 3 {
		aiScore += 0.2
	}

	return finish(aiScore + s.jitter())
}

var commonOpeners = []string{"The", "This", "In"}

// burstinessStrategy keys off paragraph uniformity and per-sentence
// complexity variance.
type burstinessStrategy struct {
	jitter JitterFunc
}

func (s *burstinessStrategy) Score(ctx context.Context, text string) core.ScoreResult {
	signals := signal.Extract(text)

	aiScore := 0.0
	if signals.ParagraphLengthStdDev < 50 {
		aiScore += 0.25
	}
	if signal.Variance(signals.SentenceLongWordRatios) < 0.05 {
		aiScore += 0.25
	}

	opened := 0
	for _, opener := range signals.ParagraphOpeners {
		for _, common := range commonOpeners {
			if strings.EqualFold(opener, common) {
				opened++
				break
			}
		}
	}
	if signals.ParagraphCount > 0 && float64(opened)/float64(signals.ParagraphCount) > 0.5 {
		aiScore += 0.2
	}

	return finish(aiScore + s.jitter())
}

// fixedStrategy returns a constant high-confidence human verdict,
// simulating a premium provider. Not content-sensitive on purpose.
type fixedStrategy struct {
	confidence float64
}

func (s *fixedStrategy) Score(ctx context.Context, text string) core.ScoreResult {
	return core.ScoreResult{
		IsHumanWritten:  true,
		ConfidenceScore: s.confidence,
	}
}
