package analysis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/avenwood/questscribe/internal/domain"
)

// CacheSchemaVersion is the current version of the cached analysis shape.
// Increment when AnalysisResult changes to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

type cachedAnalysis struct {
	Version  string
	Result   domain.AnalysisResult
	CachedAt time.Time
}

// CachingProvider wraps an AnalysisProvider with an expirable LRU keyed
// by entry text hash. Identical text yields the previously computed
// result without a provider round trip.
type CachingProvider struct {
	inner AnalysisProvider
	lru   *expirable.LRU[string, *cachedAnalysis]
}

// NewCachingProvider wraps the provider with a cache of the given size and TTL
func NewCachingProvider(inner AnalysisProvider, size int, ttl time.Duration) *CachingProvider {
	return &CachingProvider{
		inner: inner,
		lru:   expirable.NewLRU[string, *cachedAnalysis](size, nil, ttl),
	}
}

// Analyze implements AnalysisProvider
func (p *CachingProvider) Analyze(ctx context.Context, text string) (domain.AnalysisResult, error) {
	key := hashText(text)
	if entry, found := p.lru.Get(key); found {
		if entry.Version == CacheSchemaVersion {
			return entry.Result, nil
		}
		p.lru.Remove(key)
	}

	result, err := p.inner.Analyze(ctx, text)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	p.lru.Add(key, &cachedAnalysis{
		Version:  CacheSchemaVersion,
		Result:   result,
		CachedAt: time.Now(),
	})
	return result, nil
}

func hashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
