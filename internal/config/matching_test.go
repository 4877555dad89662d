package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFieldList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty falls back to defaults", "", defaultFields},
		{"whitespace only falls back to defaults", "   ", defaultFields},
		{"single value", "Robotics", []string{"Robotics"}},
		{"trims and skips blanks", " Robotics , , Quantum Computing ", []string{"Robotics", "Quantum Computing"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseFieldList(tt.raw))
		})
	}
}

func TestHasField(t *testing.T) {
	cfg := &MatchingConfig{Fields: []string{"Healthcare", "Big Data"}}

	assert.True(t, cfg.HasField("Healthcare"))
	assert.True(t, cfg.HasField("Big Data"))
	assert.False(t, cfg.HasField("healthcare"))
	assert.False(t, cfg.HasField("Astrology"))
}
