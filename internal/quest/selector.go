package quest

import (
	"sort"

	"github.com/avenwood/questscribe/internal/domain"
)

// Selector filters, scores, and ranks candidate quests for a character.
// Selection is fully deterministic: stable sort by composite score with
// input-order tie break.
type Selector struct {
	cfg    ScoringConfig
	scorer *Scorer
}

// NewSelector creates a selector with the given policy
func NewSelector(cfg ScoringConfig) *Selector {
	return &Selector{cfg: cfg, scorer: NewScorer(cfg)}
}

// Select returns up to limit quests from the candidate pool, ordered by
// descending composite score. Candidates above the character's level
// are hard-gated; candidates whose requirements are mostly unmeetable
// are filtered. Input quests are not mutated; selected quests carry
// freshly computed metadata.
func (s *Selector) Select(candidates []domain.Quest, stats domain.StatSet, level int, limit int) []domain.Quest {
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}

	admitted := make([]domain.Quest, 0, len(candidates))
	for _, q := range candidates {
		if q.Difficulty > level {
			continue
		}
		if !s.requirementsMeetable(q, stats) {
			continue
		}
		scored := q
		meta := s.scorer.Score(q, stats)
		scored.Metadata = &meta
		admitted = append(admitted, scored)
	}

	sort.SliceStable(admitted, func(i, j int) bool {
		return admitted[i].Metadata.Composite > admitted[j].Metadata.Composite
	})

	if len(admitted) > limit {
		admitted = admitted[:limit]
	}
	return admitted
}

// requirementsMeetable admits a quest when at least MeetableRatio of its
// stat requirements are met exactly or within the grace window. A quest
// with no requirements is always admitted.
func (s *Selector) requirementsMeetable(quest domain.Quest, stats domain.StatSet) bool {
	if len(quest.StatRequirements) == 0 {
		return true
	}
	meetable := 0
	for name, required := range quest.StatRequirements {
		if stats.Get(name) >= required-s.cfg.GraceWindow {
			meetable++
		}
	}
	ratio := float64(meetable) / float64(len(quest.StatRequirements))
	return ratio >= s.cfg.MeetableRatio
}
