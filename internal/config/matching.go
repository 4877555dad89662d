package config

import (
	"os"
	"strings"
	"sync"
)

// MatchingConfig holds the knobs of the matching pipeline. The field list,
// score threshold, and short-circuit condition drift across deployments, so
// all three come from the environment rather than being hardcoded.
type MatchingConfig struct {
	// Fields is the closed set of project subject-matter categories. The
	// extractor prompt, ranker prompt, and project validation all read from
	// this single list.
	Fields []string
	// ScoreThreshold is the minimum 0-10 score a project must reach to
	// survive ranking.
	ScoreThreshold float64
	// FeaturesTrigger controls whether a requirement with only features
	// populated is enough to run the scoring call.
	FeaturesTrigger bool
}

var defaultFields = []string{
	"Healthcare",
	"Blockchain",
	"Artificial Intelligence",
	"IoT",
	"Big Data",
	"Cloud Computing",
	"Cybersecurity",
}

var (
	matchingConfig *MatchingConfig
	matchingOnce   sync.Once
)

func LoadMatchingConfig() *MatchingConfig {
	matchingOnce.Do(func() {
		matchingConfig = &MatchingConfig{
			Fields:          parseFieldList(os.Getenv("MATCH_FIELDS")),
			ScoreThreshold:  getEnvFloat("MATCH_SCORE_THRESHOLD", 3),
			FeaturesTrigger: getEnvBool("MATCH_FEATURES_TRIGGER", false),
		}
	})
	return matchingConfig
}

func parseFieldList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return defaultFields
	}
	parts := strings.Split(raw, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			fields = append(fields, trimmed)
		}
	}
	if len(fields) == 0 {
		return defaultFields
	}
	return fields
}

// HasField reports whether name is one of the configured project fields.
func (c *MatchingConfig) HasField(name string) bool {
	for _, f := range c.Fields {
		if f == name {
			return true
		}
	}
	return false
}
