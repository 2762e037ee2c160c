package config

import (
	gconfig "github.com/tomz197/starfield/internal/game/config"
	"github.com/tomz197/starfield/internal/score"
)

// GameRules returns the rules selected by GAME_VARIANT, overlaid with the
// YAML file named by GAME_RULES when set.
func GameRules() (gconfig.Rules, error) {
	variant := gconfig.Variant(GetEnv("GAME_VARIANT", string(gconfig.Explorer)))
	return gconfig.Load(variant, GetEnv("GAME_RULES", ""))
}

// HighScoreStore returns a file store at HIGHSCORE_PATH, or an in-memory
// store shared by this process when the variable is empty.
func HighScoreStore() score.Store {
	if path := GetEnv("HIGHSCORE_PATH", ""); path != "" {
		return score.NewFileStore(path)
	}
	return &score.MemoryStore{}
}
