package models

import "strconv"

const (
	FeatureExamMode = "exam_mode"

	DefaultCharacterLimit       = 2500
	DefaultDailyGenerationLimit = 5
	DefaultTrialListenLimit     = 3
	DefaultTopicTemplate        = "Generate a comprehensive study guide about {topic}."
)

// TopicPreset is an admin-configured topic with its own prompt template.
type TopicPreset struct {
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	PromptTemplate string `json:"prompt_template,omitempty"`
}

// PolicyConfig is the admin-owned configuration document stored in app_config.
type PolicyConfig struct {
	AllowedDurations     []int               `json:"allowed_durations"`
	DurationAccess       map[string][]string `json:"duration_access"`
	FeatureAccess        map[string][]string `json:"feature_access"`
	CharacterLimits      map[string]int      `json:"character_limits"`
	DailyGenerationLimit int                 `json:"daily_generation_limit"`
	TrialListenLimit     int                 `json:"trial_listen_limit"`
	Topics               []TopicPreset       `json:"topics"`
	SystemPromptOverride string              `json:"system_prompt_override,omitempty"`
}

func DefaultPolicyConfig() *PolicyConfig {
	return &PolicyConfig{
		AllowedDurations: []int{3, 5, 10},
		DurationAccess: map[string][]string{
			"3":  {PlanTrial, PlanPaid},
			"5":  {PlanPaid},
			"10": {PlanPaid},
		},
		FeatureAccess: map[string][]string{
			FeatureExamMode: {PlanPaid},
		},
		CharacterLimits: map[string]int{
			"3":  2500,
			"5":  4500,
			"10": 9000,
		},
		DailyGenerationLimit: DefaultDailyGenerationLimit,
		TrialListenLimit:     DefaultTrialListenLimit,
	}
}

// FillDefaults replaces every unset field with its documented default.
func (c *PolicyConfig) FillDefaults() {
	def := DefaultPolicyConfig()
	if len(c.AllowedDurations) == 0 {
		c.AllowedDurations = def.AllowedDurations
	}
	if c.DurationAccess == nil {
		c.DurationAccess = def.DurationAccess
	}
	if c.FeatureAccess == nil {
		c.FeatureAccess = def.FeatureAccess
	}
	if c.CharacterLimits == nil {
		c.CharacterLimits = def.CharacterLimits
	}
	if c.DailyGenerationLimit <= 0 {
		c.DailyGenerationLimit = def.DailyGenerationLimit
	}
	if c.TrialListenLimit <= 0 {
		c.TrialListenLimit = def.TrialListenLimit
	}
}

// PlansForDuration falls back to paid-only for unlisted durations.
func (c *PolicyConfig) PlansForDuration(minutes int) []string {
	if plans, ok := c.DurationAccess[strconv.Itoa(minutes)]; ok {
		return plans
	}
	return []string{PlanPaid}
}

// PlansForFeature falls back to paid-only for unlisted features.
func (c *PolicyConfig) PlansForFeature(feature string) []string {
	if plans, ok := c.FeatureAccess[feature]; ok {
		return plans
	}
	return []string{PlanPaid}
}

func (c *PolicyConfig) CharacterLimit(minutes int) int {
	if limit, ok := c.CharacterLimits[strconv.Itoa(minutes)]; ok && limit > 0 {
		return limit
	}
	return DefaultCharacterLimit
}

// MaxDurationMinutes is the longest advertised or access-listed duration.
func (c *PolicyConfig) MaxDurationMinutes() int {
	longest := 0
	for _, d := range c.AllowedDurations {
		if d > longest {
			longest = d
		}
	}
	for key := range c.DurationAccess {
		if d, err := strconv.Atoi(key); err == nil && d > longest {
			longest = d
		}
	}
	return longest
}
