package game

// BaseStats are the species-level values a combatant is projected from.
type BaseStats struct {
	HP             int `json:"hp" yaml:"hp"`
	Attack         int `json:"attack" yaml:"attack"`
	Defense        int `json:"defense" yaml:"defense"`
	SpecialAttack  int `json:"special_attack" yaml:"special_attack"`
	SpecialDefense int `json:"special_defense" yaml:"special_defense"`
	Speed          int `json:"speed" yaml:"speed"`
}

// Stats are the five battle-ready non-HP values.
type Stats struct {
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"special_attack"`
	SpecialDefense int `json:"special_defense"`
	Speed          int `json:"speed"`
}

// Stat names a stage-modifiable value.
type Stat int

const (
	StatAttack Stat = iota
	StatDefense
	StatSpecialAttack
	StatSpecialDefense
	StatSpeed
	StatAccuracy
	StatEvasion
	numStats
)

var statNames = [numStats]string{
	"attack", "defense", "special-attack", "special-defense", "speed", "accuracy", "evasion",
}

func (s Stat) String() string {
	if s < 0 || s >= numStats {
		return "unknown"
	}
	return statNames[s]
}

// ParseStat maps a hyphenated stat name to a Stat.
func ParseStat(name string) (Stat, bool) {
	for i, n := range statNames {
		if n == name {
			return Stat(i), true
		}
	}
	return 0, false
}

const (
	MinStage = -6
	MaxStage = 6
)

// StatStages holds the seven stage counters, each in [MinStage, MaxStage].
type StatStages [numStats]int

// ClampStage bounds a stage value to [MinStage, MaxStage].
func ClampStage(stage int) int {
	if stage < MinStage {
		return MinStage
	}
	if stage > MaxStage {
		return MaxStage
	}
	return stage
}

// projected is the shared floor(base*2*level/100) term.
func projected(base, level int) int {
	return base * 2 * level / 100
}

// ProjectHP returns floor(base*2*level/100) + level + 10.
func ProjectHP(baseHP, level int) int {
	return projected(baseHP, level) + level + 10
}

// ProjectStats returns floor(base*2*level/100) + 5 for every non-HP stat.
func ProjectStats(base BaseStats, level int) Stats {
	return Stats{
		Attack:         projected(base.Attack, level) + 5,
		Defense:        projected(base.Defense, level) + 5,
		SpecialAttack:  projected(base.SpecialAttack, level) + 5,
		SpecialDefense: projected(base.SpecialDefense, level) + 5,
		Speed:          projected(base.Speed, level) + 5,
	}
}

// StageAdjusted applies the stage ratio to a raw stat:
// stage >= 0: stat*(2+stage)/2, otherwise stat*2/(2+|stage|), floored.
// Out-of-range stages are clamped first.
func StageAdjusted(stat, stage int) int {
	stage = ClampStage(stage)
	if stage >= 0 {
		return stat * (2 + stage) / 2
	}
	return stat * 2 / (2 - stage)
}

// AccuracyMultiplier is the accuracy-vs-evasion ratio for a stage
// difference d: d >= 0: (3+d)/3, otherwise 3/(3+|d|).
func AccuracyMultiplier(d int) float64 {
	d = ClampStage(d)
	if d >= 0 {
		return float64(3+d) / 3
	}
	return 3 / float64(3-d)
}
