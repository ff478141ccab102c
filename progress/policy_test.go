package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultScoringAwardXP(t *testing.T) {
	tests := []struct {
		name       string
		difficulty int
		want       int
	}{
		{"difficulty one", 1, 10},
		{"difficulty three", 3, 30},
		{"zero difficulty", 0, 0},
		{"negative difficulty awards nothing", -2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultScoring.AwardXP(tt.difficulty))
		})
	}
}

func TestDefaultScoringLevelForXP(t *testing.T) {
	tests := []struct {
		name string
		xp   int
		want int
	}{
		{"fresh user", 0, 1},
		{"just below threshold", 99, 1},
		{"exact threshold", 100, 2},
		{"between thresholds", 199, 2},
		{"several levels in", 350, 4},
		{"negative xp clamps to level one", -10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultScoring.LevelForXP(tt.xp))
		})
	}
}
