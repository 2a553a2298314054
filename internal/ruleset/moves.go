package ruleset

import "github.com/ericogr/pokebattle/internal/game"

func attack(name string, t game.Type, class game.DamageClass, power, acc, pp int, tag string, chance int) game.Move {
	return game.Move{
		Name:         name,
		Type:         t,
		BasePower:    power,
		Accuracy:     acc,
		PP:           pp,
		DamageClass:  class,
		EffectTag:    tag,
		EffectChance: chance,
		Target:       game.TargetOpponent,
	}
}

func status(name string, t game.Type, acc, pp int, target game.TargetScope, tag string) game.Move {
	return game.Move{
		Name:        name,
		Type:        t,
		Accuracy:    acc,
		PP:          pp,
		DamageClass: game.ClassStatus,
		EffectTag:   tag,
		Target:      target,
	}
}

func priority(m game.Move, p int) game.Move {
	m.Priority = p
	return m
}

const (
	phys = game.ClassPhysical
	spec = game.ClassSpecial
	self = game.TargetSelf
	opp  = game.TargetOpponent
)

// builtinMoves is the move database used when no data pack is loaded and
// the source for every fallback moveset.
var builtinMoves = []game.Move{
	// normal
	attack("tackle", game.TypeNormal, phys, 40, 100, 35, "", 0),
	attack("scratch", game.TypeNormal, phys, 40, 100, 35, "", 0),
	priority(attack("quick-attack", game.TypeNormal, phys, 40, 100, 30, "", 0), 1),
	attack("headbutt", game.TypeNormal, phys, 70, 100, 15, "flinch", 30),
	attack("body-slam", game.TypeNormal, phys, 85, 100, 15, "paralyze", 30),
	attack("hyper-voice", game.TypeNormal, spec, 90, 100, 10, "", 0),
	status("growl", game.TypeNormal, 100, 40, opp, "lower-attack"),
	status("leer", game.TypeNormal, 100, 30, opp, "lower-defense"),
	status("screech", game.TypeNormal, 85, 40, opp, "harshly-lower-defense"),
	status("scary-face", game.TypeNormal, 100, 10, opp, "harshly-lower-speed"),
	status("supersonic", game.TypeNormal, 55, 20, opp, "confuse"),
	status("swords-dance", game.TypeNormal, 0, 20, self, "sharply-raise-attack"),
	status("double-team", game.TypeNormal, 0, 15, self, "raise-evasion"),
	status("recover", game.TypeNormal, 0, 10, self, "heal-half"),
	status("soft-boiled", game.TypeNormal, 0, 10, self, "heal-half"),
	priority(status("protect", game.TypeNormal, 0, 10, self, "protect"), 4),
	// fire
	attack("ember", game.TypeFire, spec, 40, 100, 25, "burn", 10),
	attack("flamethrower", game.TypeFire, spec, 90, 100, 15, "burn", 10),
	attack("fire-punch", game.TypeFire, phys, 75, 100, 15, "burn", 10),
	attack("fire-fang", game.TypeFire, phys, 65, 95, 15, "burn", 10),
	status("will-o-wisp", game.TypeFire, 85, 15, opp, "burn"),
	// water
	attack("water-gun", game.TypeWater, spec, 40, 100, 25, "", 0),
	attack("bubble-beam", game.TypeWater, spec, 65, 100, 20, "lower-speed", 10),
	attack("surf", game.TypeWater, spec, 90, 100, 15, "", 0),
	attack("hydro-pump", game.TypeWater, spec, 110, 80, 5, "", 0),
	attack("aqua-tail", game.TypeWater, phys, 90, 90, 10, "", 0),
	status("life-dew", game.TypeWater, 0, 10, self, "heal-quarter"),
	// electric
	attack("thunder-shock", game.TypeElectric, spec, 40, 100, 30, "paralyze", 10),
	attack("thunderbolt", game.TypeElectric, spec, 90, 100, 15, "paralyze", 10),
	attack("thunder-punch", game.TypeElectric, phys, 75, 100, 15, "paralyze", 10),
	attack("thunder", game.TypeElectric, spec, 110, 70, 10, "paralyze", 30),
	status("thunder-wave", game.TypeElectric, 90, 20, opp, "paralyze"),
	// grass
	attack("vine-whip", game.TypeGrass, phys, 45, 100, 25, "", 0),
	attack("razor-leaf", game.TypeGrass, phys, 55, 95, 25, "", 0),
	attack("leaf-blade", game.TypeGrass, phys, 90, 100, 15, "", 0),
	attack("energy-ball", game.TypeGrass, spec, 90, 100, 10, "lower-special-defense", 10),
	status("sleep-powder", game.TypeGrass, 75, 15, opp, "sleep"),
	status("stun-spore", game.TypeGrass, 75, 30, opp, "paralyze"),
	status("synthesis", game.TypeGrass, 0, 5, self, "heal-half"),
	// ice
	attack("powder-snow", game.TypeIce, spec, 40, 100, 25, "freeze", 10),
	attack("ice-punch", game.TypeIce, phys, 75, 100, 15, "freeze", 10),
	attack("ice-beam", game.TypeIce, spec, 90, 100, 10, "freeze", 10),
	attack("blizzard", game.TypeIce, spec, 110, 70, 5, "freeze", 10),
	// fighting
	attack("karate-chop", game.TypeFighting, phys, 50, 100, 25, "", 0),
	attack("brick-break", game.TypeFighting, phys, 75, 100, 15, "", 0),
	attack("aura-sphere", game.TypeFighting, spec, 80, 100, 20, "", 0),
	attack("close-combat", game.TypeFighting, phys, 120, 100, 5, "", 0),
	// poison
	attack("poison-sting", game.TypePoison, phys, 15, 100, 35, "poison", 30),
	attack("poison-jab", game.TypePoison, phys, 80, 100, 20, "poison", 30),
	attack("sludge-bomb", game.TypePoison, spec, 90, 100, 10, "poison", 30),
	status("toxic", game.TypePoison, 90, 10, opp, "toxic"),
	status("poison-powder", game.TypePoison, 75, 35, opp, "poison"),
	// ground
	attack("mud-slap", game.TypeGround, spec, 20, 100, 10, "lower-accuracy", 0),
	attack("bulldoze", game.TypeGround, phys, 60, 100, 20, "lower-speed", 0),
	attack("earthquake", game.TypeGround, phys, 100, 100, 10, "", 0),
	attack("earth-power", game.TypeGround, spec, 90, 100, 10, "lower-special-defense", 10),
	status("sand-attack", game.TypeGround, 100, 15, opp, "lower-accuracy"),
	// flying
	attack("gust", game.TypeFlying, spec, 40, 100, 35, "", 0),
	attack("wing-attack", game.TypeFlying, phys, 60, 100, 35, "", 0),
	attack("air-slash", game.TypeFlying, spec, 75, 95, 15, "flinch", 30),
	attack("drill-peck", game.TypeFlying, phys, 80, 100, 20, "", 0),
	status("roost", game.TypeFlying, 0, 5, self, "heal-half"),
	// psychic
	attack("confusion", game.TypePsychic, spec, 50, 100, 25, "confuse", 10),
	attack("psybeam", game.TypePsychic, spec, 65, 100, 20, "confuse", 10),
	attack("psychic", game.TypePsychic, spec, 90, 100, 10, "lower-special-defense", 10),
	attack("zen-headbutt", game.TypePsychic, phys, 80, 90, 15, "flinch", 20),
	status("hypnosis", game.TypePsychic, 60, 20, opp, "sleep"),
	status("agility", game.TypePsychic, 0, 30, self, "sharply-raise-speed"),
	status("amnesia", game.TypePsychic, 0, 20, self, "sharply-raise-special-defense"),
	status("rest", game.TypePsychic, 0, 5, self, "rest"),
	// bug
	attack("bug-bite", game.TypeBug, phys, 60, 100, 20, "", 0),
	attack("signal-beam", game.TypeBug, spec, 75, 100, 15, "confuse", 10),
	attack("x-scissor", game.TypeBug, phys, 80, 100, 15, "", 0),
	attack("bug-buzz", game.TypeBug, spec, 90, 100, 10, "lower-special-defense", 10),
	status("string-shot", game.TypeBug, 95, 40, opp, "harshly-lower-speed"),
	// rock
	attack("rock-throw", game.TypeRock, phys, 50, 90, 15, "", 0),
	attack("rock-slide", game.TypeRock, phys, 75, 90, 10, "flinch", 30),
	attack("power-gem", game.TypeRock, spec, 80, 100, 20, "", 0),
	attack("stone-edge", game.TypeRock, phys, 100, 80, 5, "", 0),
	// ghost
	attack("lick", game.TypeGhost, phys, 30, 100, 30, "paralyze", 30),
	attack("shadow-claw", game.TypeGhost, phys, 70, 100, 15, "", 0),
	attack("shadow-ball", game.TypeGhost, spec, 80, 100, 15, "lower-special-defense", 20),
	status("confuse-ray", game.TypeGhost, 100, 10, opp, "confuse"),
	// dragon
	attack("dragon-breath", game.TypeDragon, spec, 60, 100, 20, "paralyze", 30),
	attack("dragon-claw", game.TypeDragon, phys, 80, 100, 15, "", 0),
	attack("dragon-pulse", game.TypeDragon, spec, 85, 100, 10, "", 0),
	// dark
	attack("bite", game.TypeDark, phys, 60, 100, 25, "flinch", 30),
	attack("crunch", game.TypeDark, phys, 80, 100, 15, "lower-defense", 20),
	attack("dark-pulse", game.TypeDark, spec, 80, 100, 15, "flinch", 20),
	status("nasty-plot", game.TypeDark, 0, 20, self, "sharply-raise-special-attack"),
	// steel
	attack("metal-claw", game.TypeSteel, phys, 50, 95, 35, "raise-attack", 10),
	attack("iron-head", game.TypeSteel, phys, 80, 100, 15, "flinch", 30),
	attack("flash-cannon", game.TypeSteel, spec, 80, 100, 10, "lower-special-defense", 10),
	status("iron-defense", game.TypeSteel, 0, 15, self, "sharply-raise-defense"),
	// fairy
	attack("fairy-wind", game.TypeFairy, spec, 40, 100, 30, "", 0),
	attack("dazzling-gleam", game.TypeFairy, spec, 80, 100, 10, "", 0),
	attack("play-rough", game.TypeFairy, phys, 90, 90, 10, "lower-attack", 10),
	attack("moonblast", game.TypeFairy, spec, 95, 100, 15, "lower-special-attack", 30),
	status("charm", game.TypeFairy, 100, 20, opp, "harshly-lower-attack"),
	status("moonlight", game.TypeFairy, 0, 5, self, "heal-half"),
}

// fallbackMovesets maps a primary type to four built-in move names. Each set
// holds a Normal-type damaging move and at least one status move.
var fallbackMovesets = map[game.Type][]string{
	game.TypeNormal:   {"tackle", "body-slam", "quick-attack", "protect"},
	game.TypeFire:     {"tackle", "ember", "flamethrower", "will-o-wisp"},
	game.TypeWater:    {"tackle", "water-gun", "surf", "protect"},
	game.TypeElectric: {"quick-attack", "thunder-shock", "thunderbolt", "thunder-wave"},
	game.TypeGrass:    {"tackle", "vine-whip", "razor-leaf", "sleep-powder"},
	game.TypeIce:      {"tackle", "powder-snow", "ice-beam", "protect"},
	game.TypeFighting: {"tackle", "karate-chop", "brick-break", "leer"},
	game.TypePoison:   {"tackle", "poison-sting", "sludge-bomb", "toxic"},
	game.TypeGround:   {"tackle", "mud-slap", "earthquake", "sand-attack"},
	game.TypeFlying:   {"quick-attack", "gust", "wing-attack", "roost"},
	game.TypePsychic:  {"tackle", "confusion", "psychic", "hypnosis"},
	game.TypeBug:      {"tackle", "bug-bite", "x-scissor", "string-shot"},
	game.TypeRock:     {"tackle", "rock-throw", "rock-slide", "protect"},
	game.TypeGhost:    {"tackle", "lick", "shadow-ball", "confuse-ray"},
	game.TypeDragon:   {"tackle", "dragon-breath", "dragon-claw", "protect"},
	game.TypeDark:     {"tackle", "bite", "crunch", "nasty-plot"},
	game.TypeSteel:    {"tackle", "metal-claw", "iron-head", "iron-defense"},
	game.TypeFairy:    {"tackle", "fairy-wind", "dazzling-gleam", "charm"},
}

// defaultFallback covers templates whose primary type is unknown.
var defaultFallback = []string{"tackle", "scratch", "quick-attack", "protect"}
