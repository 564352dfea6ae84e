package scoring

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func zeroJitter() float64 {
	return 0
}

func TestFixedStrategies(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine(zeroJitter)

	result := engine.Evaluate(ctx, "provider1", "any text at all")
	assert.True(t, result.IsHumanWritten)
	assert.Equal(t, 0.97, result.ConfidenceScore)

	result = engine.Evaluate(ctx, "provider5", "different text entirely")
	assert.True(t, result.IsHumanWritten)
	assert.Equal(t, 0.94, result.ConfidenceScore)
}

func TestPatternStrategy(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine(zeroJitter)

	result := engine.Evaluate(ctx, "provider2", "As an AI language model, I cannot provide that.")
	assert.InDelta(t, 0.7, result.ConfidenceScore, 1e-9)
	assert.True(t, result.IsHumanWritten)

	result = engine.Evaluate(ctx, "provider2", "Firstly, one point. Secondly, another point. Finally, the last point.")
	assert.InDelta(t, 0.8, result.ConfidenceScore, 1e-9)
	assert.True(t, result.IsHumanWritten)

	// enough disclaimer hits to overflow the accumulator; clamp holds
	result = engine.Evaluate(ctx, "provider2", strings.Repeat("As an AI language model. ", 10))
	assert.Equal(t, 0.0, result.ConfidenceScore)
	assert.False(t, result.IsHumanWritten)
}

func TestStatisticalStrategy(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine(zeroJitter)

	// perfectly uniform sentence lengths trip the low-variance check
	result := engine.Evaluate(ctx, "provider3", "one two three. four five six. seven eight nine.")
	assert.InDelta(t, 0.7, result.ConfidenceScore, 1e-9)
	assert.True(t, result.IsHumanWritten)
}

func TestBurstinessStrategy(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine(zeroJitter)

	// single flat paragraph, no complexity variance, common opener
	result := engine.Evaluate(ctx, "provider4", "The cat sat on the mat. The dog sat on the log.")
	assert.InDelta(t, 0.3, result.ConfidenceScore, 1e-9)
	assert.False(t, result.IsHumanWritten)
}

func TestResolveFallback(t *testing.T) {
	engine := NewEngine(zeroJitter)

	assert.Same(t, engine.Resolve("provider3"), engine.Resolve("no-such-provider"))
	assert.NotSame(t, engine.Resolve("provider3"), engine.Resolve("provider2"))
}

func TestEvaluateBounds(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine(nil) // default randomized jitter

	texts := []string{
		"",
		"short",
		"The quick brown fox jumps over the lazy dog. A second sentence follows here.",
		strings.Repeat("In conclusion, it is important to note that delve into. ", 5),
	}

	for _, providerID := range []string{"provider1", "provider2", "provider3", "provider4", "provider5", "unknown"} {
		for _, text := range texts {
			result := engine.Evaluate(ctx, providerID, text)
			assert.GreaterOrEqual(t, result.ConfidenceScore, 0.0)
			assert.LessOrEqual(t, result.ConfidenceScore, 1.0)
			assert.Equal(t, result.ConfidenceScore > 0.5, result.IsHumanWritten)
		}
	}
}
