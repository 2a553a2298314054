package ruleset

import "github.com/ericogr/pokebattle/internal/game"

func lv(move string, level int) game.LearnsetEntry {
	return game.LearnsetEntry{MoveName: move, LearnMethod: game.LearnLevelUp, LevelLearned: level}
}

func tm(move string) game.LearnsetEntry {
	return game.LearnsetEntry{MoveName: move, LearnMethod: game.LearnMachine}
}

func egg(move string) game.LearnsetEntry {
	return game.LearnsetEntry{MoveName: move, LearnMethod: game.LearnEgg}
}

// builtinSpecies is a small starter roster so a server without a data pack
// can still run battles.
var builtinSpecies = []game.PokemonTemplate{
	{
		ID: 6, Name: "charizard",
		Types:     []game.Type{game.TypeFire, game.TypeFlying},
		BaseStats: game.BaseStats{HP: 78, Attack: 84, Defense: 78, SpecialAttack: 109, SpecialDefense: 85, Speed: 100},
		Learnset: []game.LearnsetEntry{
			lv("scratch", 1), lv("growl", 1), lv("ember", 4), lv("scary-face", 19),
			lv("fire-fang", 24), lv("wing-attack", 36), lv("flamethrower", 46),
			tm("dragon-claw"), tm("earthquake"), tm("air-slash"), tm("will-o-wisp"),
			tm("protect"), tm("rest"), tm("swords-dance"), egg("dragon-pulse"),
		},
	},
	{
		ID: 3, Name: "venusaur",
		Types:     []game.Type{game.TypeGrass, game.TypePoison},
		BaseStats: game.BaseStats{HP: 80, Attack: 82, Defense: 83, SpecialAttack: 100, SpecialDefense: 100, Speed: 80},
		Learnset: []game.LearnsetEntry{
			lv("tackle", 1), lv("growl", 1), lv("vine-whip", 3), lv("poison-powder", 15),
			lv("sleep-powder", 15), lv("razor-leaf", 19), lv("synthesis", 33),
			tm("energy-ball"), tm("sludge-bomb"), tm("earthquake"), tm("toxic"),
			tm("protect"), tm("swords-dance"), tm("rest"),
		},
	},
	{
		ID: 9, Name: "blastoise",
		Types:     []game.Type{game.TypeWater},
		BaseStats: game.BaseStats{HP: 79, Attack: 83, Defense: 100, SpecialAttack: 85, SpecialDefense: 105, Speed: 78},
		Learnset: []game.LearnsetEntry{
			lv("tackle", 1), lv("water-gun", 3), lv("bite", 12), lv("bubble-beam", 15),
			lv("aqua-tail", 33), lv("iron-defense", 42), lv("hydro-pump", 60),
			tm("surf"), tm("ice-beam"), tm("flash-cannon"), tm("earthquake"),
			tm("protect"), tm("rest"), tm("toxic"),
		},
	},
	{
		ID: 25, Name: "pikachu",
		Types:     []game.Type{game.TypeElectric},
		BaseStats: game.BaseStats{HP: 35, Attack: 55, Defense: 40, SpecialAttack: 50, SpecialDefense: 50, Speed: 90},
		Learnset: []game.LearnsetEntry{
			lv("thunder-shock", 1), lv("growl", 1), lv("quick-attack", 1), lv("thunder-wave", 4),
			lv("double-team", 8), lv("thunderbolt", 36), lv("agility", 24), lv("thunder", 44),
			tm("thunder-punch"), tm("brick-break"), tm("protect"), tm("rest"),
		},
	},
	{
		ID: 94, Name: "gengar",
		Types:     []game.Type{game.TypeGhost, game.TypePoison},
		BaseStats: game.BaseStats{HP: 60, Attack: 65, Defense: 60, SpecialAttack: 130, SpecialDefense: 75, Speed: 110},
		Learnset: []game.LearnsetEntry{
			lv("lick", 1), lv("confuse-ray", 1), lv("hypnosis", 1), lv("shadow-claw", 12),
			lv("shadow-ball", 36), lv("dark-pulse", 48), tm("sludge-bomb"), tm("thunderbolt"),
			tm("energy-ball"), tm("will-o-wisp"), tm("toxic"), tm("protect"), tm("nasty-plot"),
		},
	},
	{
		ID: 143, Name: "snorlax",
		Types:     []game.Type{game.TypeNormal},
		BaseStats: game.BaseStats{HP: 160, Attack: 110, Defense: 65, SpecialAttack: 65, SpecialDefense: 110, Speed: 30},
		Learnset: []game.LearnsetEntry{
			lv("tackle", 1), lv("headbutt", 12), lv("amnesia", 20), lv("rest", 28),
			lv("body-slam", 36), lv("crunch", 44), tm("earthquake"), tm("fire-punch"),
			tm("ice-punch"), tm("thunder-punch"), tm("protect"), tm("hyper-voice"),
		},
	},
	{
		ID: 149, Name: "dragonite",
		Types:     []game.Type{game.TypeDragon, game.TypeFlying},
		BaseStats: game.BaseStats{HP: 91, Attack: 134, Defense: 95, SpecialAttack: 100, SpecialDefense: 100, Speed: 80},
		Learnset: []game.LearnsetEntry{
			lv("leer", 1), lv("thunder-wave", 5), lv("dragon-breath", 15), lv("wing-attack", 1),
			lv("agility", 25), lv("dragon-claw", 35), lv("aqua-tail", 41),
			tm("earthquake"), tm("fire-punch"), tm("ice-beam"), tm("dragon-pulse"),
			tm("protect"), tm("roost"),
		},
	},
	{
		ID: 282, Name: "gardevoir",
		Types:     []game.Type{game.TypePsychic, game.TypeFairy},
		BaseStats: game.BaseStats{HP: 68, Attack: 65, Defense: 65, SpecialAttack: 125, SpecialDefense: 115, Speed: 80},
		Learnset: []game.LearnsetEntry{
			lv("growl", 1), lv("confusion", 1), lv("double-team", 6), lv("psybeam", 17),
			lv("charm", 23), lv("psychic", 35), lv("hypnosis", 41), lv("moonblast", 49),
			tm("dazzling-gleam"), tm("shadow-ball"), tm("thunderbolt"), tm("energy-ball"),
			tm("protect"), tm("will-o-wisp"),
		},
	},
}
