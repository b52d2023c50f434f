package game

// recomputeDifficulty derives the level from cumulative score against the
// threshold table and the multipliers as linear functions of level. Score
// never decreases within a session, so all three are monotone.
func (e *Engine) recomputeDifficulty() {
	level := 1
	for _, th := range difficultyThresholds {
		if e.stats.Score >= th {
			level++
		}
	}
	if level == e.difficulty.Level {
		return
	}
	e.difficulty = DifficultyState{
		Level:     level,
		SpeedMult: 1 + float64(level-1)*0.15,
		SpawnMult: 1 + float64(level-1)*0.10,
	}
}
