// Package scoring turns raw text into a human-vs-AI verdict. Four
// heuristic strategies are selectable by provider id; the scores are
// intentionally heuristic, not real model inference.
package scoring

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/verimark/verimark/core"
)

var tracer = otel.Tracer("scoring")

const jitterAmplitude = 0.15

// JitterFunc perturbs an accumulated aiScore before clamping. The
// default source is uniform in [-0.15, 0.15]; tests inject a fixed one.
type JitterFunc func() float64

// Strategy scores a text sample.
type Strategy interface {
	Score(ctx context.Context, text string) core.ScoreResult
}

// Engine dispatches to a strategy by provider id.
type Engine interface {
	Evaluate(ctx context.Context, providerID, text string) core.ScoreResult
	Resolve(providerID string) Strategy
}

type engine struct {
	strategies map[string]Strategy
	fallback   Strategy
}

// NewEngine builds the provider-id to strategy table. Passing a nil
// jitter source installs the default randomized one.
func NewEngine(jitter JitterFunc) Engine {
	if jitter == nil {
		jitter = DefaultJitter()
	}

	strategies := map[string]Strategy{
		"provider1": &fixedStrategy{confidence: 0.97},
		"provider2": &patternStrategy{jitter: jitter},
		"provider3": &statisticalStrategy{jitter: jitter},
		"provider4": &burstinessStrategy{jitter: jitter},
		"provider5": &fixedStrategy{confidence: 0.94},
	}

	return &engine{
		strategies: strategies,
		fallback:   strategies[core.DefaultStrategyProviderID],
	}
}

// Resolve returns the strategy for a provider id. Unknown ids fall back
// to the statistical strategy instead of erroring.
func (e *engine) Resolve(providerID string) Strategy {
	strategy, ok := e.strategies[providerID]
	if !ok {
		return e.fallback
	}
	return strategy
}

func (e *engine) Evaluate(ctx context.Context, providerID, text string) core.ScoreResult {
	ctx, span := tracer.Start(ctx, "Scoring.Engine.Evaluate")
	defer span.End()

	span.SetAttributes(attribute.String("providerId", providerID))

	result := e.Resolve(providerID).Score(ctx, text)

	span.SetAttributes(attribute.Float64("confidenceScore", result.ConfidenceScore))

	return result
}

// DefaultJitter returns a process-lifetime uniform jitter source.
func DefaultJitter() JitterFunc {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	var mu sync.Mutex
	return func() float64 {
		mu.Lock()
		defer mu.Unlock()
		return (r.Float64()*2 - 1) * jitterAmplitude
	}
}

// finish clamps the aiScore accumulator to [0,1] and flips it into a
// human-confidence verdict.
func finish(aiScore float64) core.ScoreResult {
	if aiScore < 0 {
		aiScore = 0
	}
	if aiScore > 1 {
		aiScore = 1
	}
	humanScore := 1 - aiScore
	return core.ScoreResult{
		IsHumanWritten:  humanScore > 0.5,
		ConfidenceScore: humanScore,
	}
}
