package ruleset

import "github.com/ericogr/pokebattle/internal/game"

// TypeChart is a read-only 18x18 attack-type by defend-type matrix.
type TypeChart struct {
	m [game.NumTypes][game.NumTypes]float64
}

// non-neutral matchups per attacking type; everything else is 1.
// Fire resists into Poison in this ruleset, so Fire vs Grass/Poison is neutral.
var chartEntries = map[game.Type]map[game.Type]float64{
	game.TypeNormal:   {game.TypeRock: 0.5, game.TypeGhost: 0, game.TypeSteel: 0.5},
	game.TypeFire:     {game.TypeFire: 0.5, game.TypeWater: 0.5, game.TypeGrass: 2, game.TypeIce: 2, game.TypePoison: 0.5, game.TypeBug: 2, game.TypeRock: 0.5, game.TypeDragon: 0.5, game.TypeSteel: 2},
	game.TypeWater:    {game.TypeFire: 2, game.TypeWater: 0.5, game.TypeGrass: 0.5, game.TypeGround: 2, game.TypeRock: 2, game.TypeDragon: 0.5},
	game.TypeElectric: {game.TypeWater: 2, game.TypeElectric: 0.5, game.TypeGrass: 0.5, game.TypeGround: 0, game.TypeFlying: 2, game.TypeDragon: 0.5},
	game.TypeGrass:    {game.TypeFire: 0.5, game.TypeWater: 2, game.TypeGrass: 0.5, game.TypePoison: 0.5, game.TypeGround: 2, game.TypeFlying: 0.5, game.TypeBug: 0.5, game.TypeRock: 2, game.TypeDragon: 0.5, game.TypeSteel: 0.5},
	game.TypeIce:      {game.TypeFire: 0.5, game.TypeWater: 0.5, game.TypeGrass: 2, game.TypeIce: 0.5, game.TypeGround: 2, game.TypeFlying: 2, game.TypeDragon: 2, game.TypeSteel: 0.5},
	game.TypeFighting: {game.TypeNormal: 2, game.TypeIce: 2, game.TypePoison: 0.5, game.TypeFlying: 0.5, game.TypePsychic: 0.5, game.TypeBug: 0.5, game.TypeRock: 2, game.TypeGhost: 0, game.TypeDark: 2, game.TypeSteel: 2, game.TypeFairy: 0.5},
	game.TypePoison:   {game.TypeGrass: 2, game.TypePoison: 0.5, game.TypeGround: 0.5, game.TypeRock: 0.5, game.TypeGhost: 0.5, game.TypeSteel: 0, game.TypeFairy: 2},
	game.TypeGround:   {game.TypeFire: 2, game.TypeElectric: 2, game.TypeGrass: 0.5, game.TypePoison: 2, game.TypeFlying: 0, game.TypeBug: 0.5, game.TypeRock: 2, game.TypeSteel: 2},
	game.TypeFlying:   {game.TypeElectric: 0.5, game.TypeGrass: 2, game.TypeFighting: 2, game.TypeBug: 2, game.TypeRock: 0.5, game.TypeSteel: 0.5},
	game.TypePsychic:  {game.TypeFighting: 2, game.TypePoison: 2, game.TypePsychic: 0.5, game.TypeDark: 0, game.TypeSteel: 0.5},
	game.TypeBug:      {game.TypeFire: 0.5, game.TypeGrass: 2, game.TypeFighting: 0.5, game.TypePoison: 0.5, game.TypeFlying: 0.5, game.TypePsychic: 2, game.TypeGhost: 0.5, game.TypeDark: 2, game.TypeSteel: 0.5, game.TypeFairy: 0.5},
	game.TypeRock:     {game.TypeFire: 2, game.TypeIce: 2, game.TypeFighting: 0.5, game.TypeGround: 0.5, game.TypeFlying: 2, game.TypeBug: 2, game.TypeSteel: 0.5},
	game.TypeGhost:    {game.TypeNormal: 0, game.TypePsychic: 2, game.TypeGhost: 2, game.TypeDark: 0.5},
	game.TypeDragon:   {game.TypeDragon: 2, game.TypeSteel: 0.5, game.TypeFairy: 0},
	game.TypeDark:     {game.TypeFighting: 0.5, game.TypePsychic: 2, game.TypeGhost: 2, game.TypeDark: 0.5, game.TypeFairy: 0.5},
	game.TypeSteel:    {game.TypeFire: 0.5, game.TypeWater: 0.5, game.TypeElectric: 0.5, game.TypeIce: 2, game.TypeRock: 2, game.TypeSteel: 0.5, game.TypeFairy: 2},
	game.TypeFairy:    {game.TypeFire: 0.5, game.TypeFighting: 2, game.TypePoison: 0.5, game.TypeDragon: 2, game.TypeDark: 2, game.TypeSteel: 0.5},
}

var standardChart = buildChart()

func buildChart() *TypeChart {
	c := &TypeChart{}
	for i := range c.m {
		for j := range c.m[i] {
			c.m[i][j] = 1
		}
	}
	for atk, row := range chartEntries {
		for def, v := range row {
			c.m[atk.Index()][def.Index()] = v
		}
	}
	return c
}

// StandardChart returns the built-in chart. The value is shared and must
// be treated as read-only; it exposes no mutators.
func StandardChart() *TypeChart { return standardChart }

// Effectiveness returns the single-type matchup. Unknown types are neutral.
func (c *TypeChart) Effectiveness(attack, defend game.Type) float64 {
	ai, di := attack.Index(), defend.Index()
	if ai < 0 || di < 0 {
		return 1
	}
	return c.m[ai][di]
}

// Multiplier composes the matchup over every defending type. A 0 on any
// defending type zeroes the product.
func (c *TypeChart) Multiplier(attack game.Type, defend []game.Type) float64 {
	mult := 1.0
	for _, d := range defend {
		mult *= c.Effectiveness(attack, d)
	}
	return mult
}
