package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {

	text := "one two three. four five six. seven eight nine."

	signals := Extract(text)

	assert.Equal(t, 9, signals.WordCount)
	assert.Equal(t, len(text), signals.CharCount)
	assert.Equal(t, 3, signals.SentenceCount)
	assert.Equal(t, []int{3, 3, 3}, signals.SentenceLengths)
	assert.Equal(t, 0.0, signals.SentenceLengthStdDev)
	assert.Equal(t, 3.0, signals.AvgSentenceLength)
	assert.InDelta(t, float64(len(text))/9.0, signals.AvgWordLength, 1e-9)
	assert.Equal(t, 1.0, signals.RepetitionRatio)
}

func TestExtractParagraphs(t *testing.T) {

	text := "The first block of text sits here.\n\nThe second block of text sits here as well."

	signals := Extract(text)

	assert.Equal(t, 2, signals.ParagraphCount)
	assert.Equal(t, []string{"The", "The"}, signals.ParagraphOpeners)
	assert.NotZero(t, signals.ParagraphLengthStdDev)
}

func TestExtractRepetition(t *testing.T) {

	signals := Extract("word word word word")

	assert.Equal(t, 4, signals.WordCount)
	assert.InDelta(t, 0.25, signals.RepetitionRatio, 1e-9)
}

func TestExtractLongWords(t *testing.T) {

	// "wonderful" and "elephants" are the only words over six characters
	signals := Extract("a wonderful herd of elephants ran")

	assert.Equal(t, 6, signals.WordCount)
	assert.InDelta(t, 2.0/6.0, signals.LongWordRatio, 1e-9)
}

func TestExtractEmpty(t *testing.T) {

	signals := Extract("")

	// divisors are floored at one so downstream math never divides by zero
	assert.Equal(t, 1, signals.WordCount)
	assert.Equal(t, 1, signals.SentenceCount)
	assert.Equal(t, 0, signals.CharCount)
	assert.Equal(t, 0.0, signals.AvgWordLength)
}

func TestVariance(t *testing.T) {

	assert.Equal(t, 0.0, Variance(nil))
	assert.Equal(t, 0.0, Variance([]float64{0.5, 0.5, 0.5}))
	assert.InDelta(t, 0.25, Variance([]float64{0, 1}), 1e-9)
}
