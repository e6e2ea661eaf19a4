package main

import (
	"gopkg.in/ini.v1"

	"termtetris/game"
)

// Config bundles the frame-loop and field tunables. All values default to
// the classic constants; an ini file next to the binary may override them.
type Config struct {
	TargetFPS int
	Tuning    game.Tuning
}

// LoadConfig reads path if it exists; a missing or unreadable file simply
// yields the defaults.
func LoadConfig(path string) Config {
	cfg := Config{
		TargetFPS: 60,
		Tuning:    game.DefaultTuning(),
	}
	file, err := ini.Load(path)
	if err != nil {
		return cfg
	}

	sec := file.Section("game")
	cfg.TargetFPS = sec.Key("target_fps").MustInt(cfg.TargetFPS)

	t := &cfg.Tuning
	t.MoveSpeed = sec.Key("move_speed").MustFloat64(t.MoveSpeed)
	t.DropSpeed = sec.Key("drop_speed").MustFloat64(t.DropSpeed)
	t.SpeedupCoef = sec.Key("speedup_coef").MustFloat64(t.SpeedupCoef)
	t.SpeedupWindow = sec.Key("speedup_window").MustFloat64(t.SpeedupWindow)
	t.LevelGrowth = sec.Key("level_growth").MustFloat64(t.LevelGrowth)
	t.PieceDelay = sec.Key("piece_delay").MustFloat64(t.PieceDelay)
	t.ClearDelay = sec.Key("clear_delay").MustFloat64(t.ClearDelay)
	t.GameOverDelay = sec.Key("gameover_delay").MustFloat64(t.GameOverDelay)
	t.ResumeDelay = sec.Key("resume_delay").MustFloat64(t.ResumeDelay)

	field := file.Section("field")
	t.MaxFieldRows = field.Key("max_rows").MustInt(t.MaxFieldRows)
	t.MaxFieldCols = field.Key("max_cols").MustInt(t.MaxFieldCols)

	return cfg
}
