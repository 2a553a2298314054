package game

import "strings"

// Type is an elemental type shared by species and moves.
type Type string

const (
	TypeUnknown  Type = ""
	TypeNormal   Type = "normal"
	TypeFire     Type = "fire"
	TypeWater    Type = "water"
	TypeElectric Type = "electric"
	TypeGrass    Type = "grass"
	TypeIce      Type = "ice"
	TypeFighting Type = "fighting"
	TypePoison   Type = "poison"
	TypeGround   Type = "ground"
	TypeFlying   Type = "flying"
	TypePsychic  Type = "psychic"
	TypeBug      Type = "bug"
	TypeRock     Type = "rock"
	TypeGhost    Type = "ghost"
	TypeDragon   Type = "dragon"
	TypeDark     Type = "dark"
	TypeSteel    Type = "steel"
	TypeFairy    Type = "fairy"
)

// AllTypes lists the 18 known types in chart order.
var AllTypes = []Type{
	TypeNormal, TypeFire, TypeWater, TypeElectric, TypeGrass, TypeIce,
	TypeFighting, TypePoison, TypeGround, TypeFlying, TypePsychic, TypeBug,
	TypeRock, TypeGhost, TypeDragon, TypeDark, TypeSteel, TypeFairy,
}

// NumTypes is the size of each dimension of the type chart.
const NumTypes = 18

// ParseType normalizes s into a known Type. Unrecognized names map to
// TypeUnknown, which every chart lookup treats as neutral.
func ParseType(s string) Type {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if t.Index() < 0 {
		return TypeUnknown
	}
	return t
}

// Index returns the chart row/column for t, or -1 when t is not one of
// the 18 known types.
func (t Type) Index() int {
	for i, k := range AllTypes {
		if k == t {
			return i
		}
	}
	return -1
}
