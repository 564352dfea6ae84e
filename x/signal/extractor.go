// Package signal computes statistical and lexical features of a text sample.
package signal

import (
	"math"
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	sentenceRe   = regexp.MustCompile(`[.!?]+\s`)
	paragraphRe  = regexp.MustCompile(`\n\s*\n`)
)

const longWordLength = 6

// Signals is the feature set the scoring strategies consume.
type Signals struct {
	WordCount              int
	CharCount              int
	SentenceCount          int
	AvgWordLength          float64
	AvgSentenceLength      float64
	SentenceLengths        []int
	SentenceLengthMean     float64
	SentenceLengthStdDev   float64
	LongWordRatio          float64
	SentenceLongWordRatios []float64
	ParagraphCount         int
	ParagraphLengths       []int
	ParagraphLengthMean    float64
	ParagraphLengthStdDev  float64
	ParagraphOpeners       []string
	RepetitionRatio        float64
}

// Extract computes all signals in one pass. It never fails: empty or
// degenerate input floors the divisors at 1 instead of erroring.
func Extract(text string) Signals {
	words := whitespaceRe.Split(text, -1)
	wordCount := len(words)
	if wordCount < 1 {
		wordCount = 1
	}

	charCount := len(text)

	sentences := sentenceRe.Split(text, -1)
	sentenceCount := len(sentences)
	if sentenceCount < 1 {
		sentenceCount = 1
	}

	sentenceLengths := make([]int, len(sentences))
	sentenceRatios := make([]float64, len(sentences))
	for i, sentence := range sentences {
		sentenceWords := whitespaceRe.Split(sentence, -1)
		sentenceLengths[i] = len(sentenceWords)
		long := 0
		for _, word := range sentenceWords {
			if len(word) > longWordLength {
				long++
			}
		}
		sentenceRatios[i] = float64(long) / float64(max(len(sentenceWords), 1))
	}

	longWords := 0
	distinct := map[string]struct{}{}
	for _, word := range words {
		if len(word) > longWordLength {
			longWords++
		}
		distinct[strings.ToLower(word)] = struct{}{}
	}

	paragraphs := paragraphRe.Split(text, -1)
	paragraphLengths := make([]int, len(paragraphs))
	paragraphOpeners := make([]string, len(paragraphs))
	for i, paragraph := range paragraphs {
		paragraphLengths[i] = len(paragraph)
		fields := strings.Fields(paragraph)
		if len(fields) > 0 {
			paragraphOpeners[i] = fields[0]
		}
	}

	sentenceMean, sentenceStdDev := meanStdDev(sentenceLengths)
	paragraphMean, paragraphStdDev := meanStdDev(paragraphLengths)

	return Signals{
		WordCount:              wordCount,
		CharCount:              charCount,
		SentenceCount:          sentenceCount,
		AvgWordLength:          float64(charCount) / float64(wordCount),
		AvgSentenceLength:      float64(wordCount) / float64(sentenceCount),
		SentenceLengths:        sentenceLengths,
		SentenceLengthMean:     sentenceMean,
		SentenceLengthStdDev:   sentenceStdDev,
		LongWordRatio:          float64(longWords) / float64(wordCount),
		SentenceLongWordRatios: sentenceRatios,
		ParagraphCount:         len(paragraphs),
		ParagraphLengths:       paragraphLengths,
		ParagraphLengthMean:    paragraphMean,
		ParagraphLengthStdDev:  paragraphStdDev,
		ParagraphOpeners:       paragraphOpeners,
		RepetitionRatio:        float64(len(distinct)) / float64(wordCount),
	}
}

// Variance is the population variance of a float series.
func Variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	var acc float64
	for _, v := range values {
		acc += (v - mean) * (v - mean)
	}
	return acc / float64(len(values))
}

// meanStdDev returns the mean and population standard deviation.
func meanStdDev(values []int) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	mean := sum / float64(len(values))
	var acc float64
	for _, v := range values {
		acc += (float64(v) - mean) * (float64(v) - mean)
	}
	return mean, math.Sqrt(acc / float64(len(values)))
}
