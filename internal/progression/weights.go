package progression

import (
	"math"
	"strings"

	"github.com/avenwood/questscribe/internal/domain"
)

// ComputeWeights derives per-stat multiplicative weights from an
// analysis result and character level. Baseline is 1.0 per stat; the
// result never exceeds MaxWeight for any stat. Pure and deterministic.
func ComputeWeights(analysis domain.AnalysisResult, level int) domain.StatSet {
	if level < 1 {
		level = 1
	}

	weights := make(domain.StatSet, len(domain.AllStats))
	for _, name := range domain.AllStats {
		weights[name] = 1.0
	}

	text := strings.ToLower(analysis.EntryText)
	tags := make([]string, len(analysis.Tags))
	for i, t := range analysis.Tags {
		tags[i] = strings.ToLower(t)
	}

	// Content relevance: direct keyword occurrence plus tag occurrence,
	// tag matches weighted TagMatchWeight x, normalized by keyword-set size.
	for name, keywords := range statKeywords {
		relevance := contentRelevance(text, tags, keywords)
		weights[name] *= 1 + RelevanceFactor*relevance
	}

	// Mood adjustment
	for name, mult := range moodAdjustments[analysis.Mood] {
		weights[name] *= mult
	}

	// Each insight nudges the introspective stats
	for range analysis.Progression.Insights {
		weights[domain.StatIntelligence] *= InsightWeightBonus
		weights[domain.StatWisdom] *= InsightWeightBonus
	}

	// Each improved skill boosts the stats whose keywords it mentions
	for _, skill := range analysis.Progression.SkillsImproved {
		lowered := strings.ToLower(skill)
		for name, keywords := range statKeywords {
			if matchesAny(lowered, keywords) {
				weights[name] *= SkillWeightBonus
			}
		}
	}

	// Logarithmic level scaling: diminishing marginal weight growth at
	// higher levels
	levelScale := 1 + math.Log(float64(level)+1)*LevelWeightFactor
	for name := range weights {
		weights[name] *= levelScale
	}

	normalizeWeights(weights)
	return weights
}

func contentRelevance(text string, tags []string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}
	var textMatches, tagMatches float64
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			textMatches++
		}
		for _, tag := range tags {
			if strings.Contains(tag, kw) {
				tagMatches++
			}
		}
	}
	return (textMatches + TagMatchWeight*tagMatches) / float64(len(keywords))
}

func matchesAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// normalizeWeights rescales all weights proportionally when any exceeds
// MaxWeight, so the maximum lands exactly on the cap and no single stat
// dominates from stacked bonuses.
func normalizeWeights(weights domain.StatSet) {
	max := 0.0
	for _, w := range weights {
		if w > max {
			max = w
		}
	}
	if max <= MaxWeight {
		return
	}
	scale := MaxWeight / max
	for name := range weights {
		weights[name] *= scale
	}
}
