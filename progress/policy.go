package progress

// ScoringPolicy decides XP awards and level thresholds. It is a separate
// strategy so game-design tuning never touches the completion logic.
type ScoringPolicy interface {
	// AwardXP returns the XP earned for a first-time completion of an
	// exercise with the given difficulty level.
	AwardXP(difficulty int) int
	// LevelForXP returns the level a user with the given total XP holds.
	LevelForXP(xp int) int
}

const (
	xpPerDifficulty = 10
	xpPerLevel      = 100
)

type defaultScoring struct{}

// DefaultScoring awards difficulty*10 XP and one level per 100 XP,
// starting at level 1.
var DefaultScoring ScoringPolicy = defaultScoring{}

func (defaultScoring) AwardXP(difficulty int) int {
	if difficulty < 0 {
		return 0
	}
	return difficulty * xpPerDifficulty
}

func (defaultScoring) LevelForXP(xp int) int {
	if xp < 0 {
		return 1
	}
	return 1 + xp/xpPerLevel
}
