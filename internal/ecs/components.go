package ecs

import "github.com/younwookim/tilequest/internal/domain/entity"

// Category groups entities the frame loop iterates separately
type Category uint8

const (
	CategoryNone Category = iota
	CategoryPlayer
	CategoryCoin
	CategoryWall
)

// Categories lists every spawnable category in iteration order
var Categories = []Category{CategoryPlayer, CategoryCoin, CategoryWall}

// String returns the string representation of the category
func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryCoin:
		return "coin"
	case CategoryWall:
		return "wall"
	default:
		return "none"
	}
}

// Pickup marks a collectible and what it is worth
type Pickup struct {
	Value int
}

// record is the arena slot for one entity
type record struct {
	actor    *entity.Actor
	category Category
}
