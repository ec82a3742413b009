package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avenwood/questscribe/internal/domain"
)

const (
	analyzePrompt = "You are a journaling analyst. Given a journal entry, respond with a JSON object: " +
		`{"mood": one of [very_positive, positive, neutral, negative, very_negative], ` +
		`"tags": [strings], "growth_areas": [strings], ` +
		`"stat_changes": {stat name -> number in [-1,1]}, ` +
		`"insights": [strings], "skills_improved": [strings], "relationships": [strings]}`

	questPrompt = "You are a quest designer. Given a journal analysis, respond with a JSON array of quests: " +
		`[{"title", "description", "category" in [personal, professional, social, health], ` +
		`"difficulty" 1-5, "xp_reward" 50-200, "stat_requirements": {stat -> number}, ` +
		`"stat_rewards": {stat -> number in [0,1]}}]`

	rewardPrompt = "You are a reward calculator. Given a completed quest id and current stats, respond with JSON: " +
		`{"xp_gained" 50-200, "stat_updates": {stat -> number in [-1,1]}, "achievements": [strings]}`
)

// Client calls an OpenAI-style chat-completion endpoint and parses the
// structured JSON it returns. It implements all three provider
// interfaces.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient creates a provider client for the given endpoint
func NewClient(baseURL, model string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// analysisWire is the provider's JSON shape for entry analysis
type analysisWire struct {
	Mood           string             `json:"mood"`
	Tags           []string           `json:"tags"`
	GrowthAreas    []string           `json:"growth_areas"`
	StatChanges    map[string]float64 `json:"stat_changes"`
	Insights       []string           `json:"insights"`
	SkillsImproved []string           `json:"skills_improved"`
	Relationships  []string           `json:"relationships"`
}

// questWire is the provider's JSON shape for a generated quest
type questWire struct {
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Category         string             `json:"category"`
	Difficulty       int                `json:"difficulty"`
	XPReward         int                `json:"xp_reward"`
	StatRequirements map[string]float64 `json:"stat_requirements"`
	StatRewards      map[string]float64 `json:"stat_rewards"`
}

// rewardWire is the provider's JSON shape for a completion reward
type rewardWire struct {
	XPGained     int                `json:"xp_gained"`
	StatUpdates  map[string]float64 `json:"stat_updates"`
	Achievements []string           `json:"achievements"`
}

// Analyze implements AnalysisProvider
func (c *Client) Analyze(ctx context.Context, text string) (domain.AnalysisResult, error) {
	body, err := c.complete(ctx, analyzePrompt, text)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	var wire analysisWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: decode analysis: %v", domain.ErrProviderFailure, err)
	}

	result := domain.AnalysisResult{
		EntryText:   text,
		Mood:        domain.Mood(wire.Mood),
		Tags:        wire.Tags,
		GrowthAreas: wire.GrowthAreas,
		StatChanges: toStatSet(wire.StatChanges),
		Progression: domain.CharacterProgression{
			Insights:       wire.Insights,
			SkillsImproved: wire.SkillsImproved,
			Relationships:  wire.Relationships,
		},
	}
	return result.Normalize(), nil
}

// GenerateQuests implements QuestGenerationProvider
func (c *Client) GenerateQuests(ctx context.Context, analysis domain.AnalysisResult) ([]domain.Quest, error) {
	prompt, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("encode analysis: %w", err)
	}

	body, err := c.complete(ctx, questPrompt, string(prompt))
	if err != nil {
		return nil, err
	}

	var wires []questWire
	if err := json.Unmarshal(body, &wires); err != nil {
		return nil, fmt.Errorf("%w: decode quests: %v", domain.ErrProviderFailure, err)
	}

	quests := make([]domain.Quest, 0, len(wires))
	for _, w := range wires {
		q := domain.Quest{
			Title:            w.Title,
			Description:      w.Description,
			Category:         w.Category,
			Difficulty:       w.Difficulty,
			XPReward:         w.XPReward,
			StatRequirements: toStatSet(w.StatRequirements),
			StatRewards:      toStatSet(w.StatRewards),
		}
		quests = append(quests, q.Normalize())
	}
	return quests, nil
}

// CalculateCompletion implements RewardProvider
func (c *Client) CalculateCompletion(ctx context.Context, questID string, stats domain.StatSet) (domain.RawReward, error) {
	prompt, err := json.Marshal(map[string]interface{}{
		"quest_id": questID,
		"stats":    stats,
	})
	if err != nil {
		return domain.RawReward{}, fmt.Errorf("encode reward request: %w", err)
	}

	body, err := c.complete(ctx, rewardPrompt, string(prompt))
	if err != nil {
		return domain.RawReward{}, err
	}

	var wire rewardWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return domain.RawReward{}, fmt.Errorf("%w: decode reward: %v", domain.ErrProviderFailure, err)
	}

	return domain.RawReward{
		XPGained:     wire.XPGained,
		StatUpdates:  toStatSet(wire.StatUpdates),
		Achievements: wire.Achievements,
	}, nil
}

// complete posts a chat request and returns the first choice's content
func (c *Client) complete(ctx context.Context, system, user string) ([]byte, error) {
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0,
	}

	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrProviderFailure, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var chat chatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrProviderFailure, err)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty response", domain.ErrProviderFailure)
	}

	return []byte(chat.Choices[0].Message.Content), nil
}

func toStatSet(m map[string]float64) domain.StatSet {
	out := make(domain.StatSet, len(m))
	for k, v := range m {
		out[domain.StatName(k)] = v
	}
	return out
}
