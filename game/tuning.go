package game

// Tuning collects the speed and timing knobs of a field. Zero values are not
// meaningful; start from DefaultTuning.
type Tuning struct {
	MoveSpeed     float64 // base fall speed, blocks/sec at level 1
	DropSpeed     float64 // fixed hard-drop speed, blocks/sec
	SpeedupCoef   float64 // soft-drop speed multiplier
	SpeedupWindow float64 // soft-drop window per key press, seconds
	LevelGrowth   float64 // geometric speed growth per level
	PieceDelay    float64 // pause before the next piece appears, seconds
	ClearDelay    float64 // line-clear animation length, seconds
	GameOverDelay float64 // post-loss window during which restart is blocked
	ResumeDelay   float64 // READY/STEADY/GO countdown length, seconds

	MaxFieldRows int
	MaxFieldCols int
	NoLimits     bool // ignore the max field size caps
}

// DefaultTuning matches the classic feel: one block per second at level one,
// 25% faster per level.
func DefaultTuning() Tuning {
	return Tuning{
		MoveSpeed:     1,
		DropSpeed:     150,
		SpeedupCoef:   20,
		SpeedupWindow: 1.0 / 60,
		LevelGrowth:   1.25,
		PieceDelay:    0.1,
		ClearDelay:    0.2,
		GameOverDelay: 0.5,
		ResumeDelay:   3,
		MaxFieldRows:  20,
		MaxFieldCols:  10,
	}
}
