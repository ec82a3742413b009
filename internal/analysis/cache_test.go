package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avenwood/questscribe/internal/domain"
)

type countingProvider struct {
	calls int
	err   error
}

func (p *countingProvider) Analyze(ctx context.Context, text string) (domain.AnalysisResult, error) {
	p.calls++
	if p.err != nil {
		return domain.AnalysisResult{}, p.err
	}
	return domain.NeutralAnalysis(text), nil
}

func TestCachingProvider_HitsCacheForIdenticalText(t *testing.T) {
	inner := &countingProvider{}
	p := NewCachingProvider(inner, 8, time.Minute)
	ctx := context.Background()

	first, err := p.Analyze(ctx, "the same entry")
	assert.NoError(t, err)

	second, err := p.Analyze(ctx, "the same entry")
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls)
}

func TestCachingProvider_DifferentTextMisses(t *testing.T) {
	inner := &countingProvider{}
	p := NewCachingProvider(inner, 8, time.Minute)
	ctx := context.Background()

	_, _ = p.Analyze(ctx, "entry one")
	_, _ = p.Analyze(ctx, "entry two")

	assert.Equal(t, 2, inner.calls)
}

func TestCachingProvider_ErrorsNotCached(t *testing.T) {
	inner := &countingProvider{err: errors.New("provider down")}
	p := NewCachingProvider(inner, 8, time.Minute)
	ctx := context.Background()

	_, err := p.Analyze(ctx, "entry")
	assert.Error(t, err)

	inner.err = nil
	result, err := p.Analyze(ctx, "entry")
	assert.NoError(t, err)
	assert.Equal(t, "entry", result.EntryText)
	assert.Equal(t, 2, inner.calls)
}
