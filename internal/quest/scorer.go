package quest

import (
	"math"

	"github.com/avenwood/questscribe/internal/domain"
)

// Scorer computes suitability scores for quests against a stat set.
// Pure function of (quest, stats); no I/O, no randomness.
type Scorer struct {
	cfg ScoringConfig
}

// NewScorer creates a scorer with the given policy
func NewScorer(cfg ScoringConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score computes achievability, growth potential, balance, the weighted
// composite, and the recommendation flag for one quest.
func (s *Scorer) Score(quest domain.Quest, stats domain.StatSet) domain.QuestMetadata {
	achievability := s.achievability(quest, stats)
	growth := s.growthPotential(quest, stats)
	balance := s.balance(quest, stats)

	composite := s.cfg.AchievabilityWeight*achievability +
		s.cfg.GrowthWeight*growth +
		s.cfg.BalanceWeight*balance

	return domain.QuestMetadata{
		Achievability: achievability,
		Growth:        growth,
		Balance:       balance,
		Composite:     composite,
		Recommended:   composite > s.cfg.RecommendThreshold,
	}
}

// achievability averages min(1, current/required) across requirements.
// No requirements scores full credit.
func (s *Scorer) achievability(quest domain.Quest, stats domain.StatSet) float64 {
	if len(quest.StatRequirements) == 0 {
		return 1
	}
	total := 0.0
	for name, required := range quest.StatRequirements {
		if required <= 0 {
			total += 1
			continue
		}
		ratio := stats.Get(name) / required
		if ratio > 1 {
			ratio = 1
		}
		total += ratio
	}
	return total / float64(len(quest.StatRequirements))
}

// growthPotential rewards quests whose stat rewards target
// underdeveloped stats; stats further from the cap score higher. A
// quest with no rewards gets the neutral default.
func (s *Scorer) growthPotential(quest domain.Quest, stats domain.StatSet) float64 {
	if len(quest.StatRewards) == 0 {
		return NeutralGrowthScore
	}
	total := 0.0
	for name, reward := range quest.StatRewards {
		headroom := math.Max(0, domain.MaxStatValue-stats.Get(name)) / domain.MaxStatValue
		total += reward * headroom
	}
	avg := total / float64(len(quest.StatRewards))
	if avg > 1 {
		avg = 1
	} else if avg < 0 {
		avg = 0
	}
	return avg
}

// balance measures how evenly requirements match current stats: the
// average absolute difference mapped onto [0, 1]. No requirements is
// perfectly balanced.
func (s *Scorer) balance(quest domain.Quest, stats domain.StatSet) float64 {
	if len(quest.StatRequirements) == 0 {
		return 1
	}
	total := 0.0
	for name, required := range quest.StatRequirements {
		total += math.Abs(stats.Get(name) - required)
	}
	avgDiff := total / float64(len(quest.StatRequirements))
	return math.Max(0, 1-avgDiff/BalanceSpread)
}
