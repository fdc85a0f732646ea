package system

import (
	"fmt"

	"github.com/younwookim/tilequest/internal/domain/diag"
	"github.com/younwookim/tilequest/internal/domain/entity"
	"github.com/younwookim/tilequest/internal/ecs"
	"github.com/younwookim/tilequest/internal/infrastructure/config"
)

// Prototypes are the templates a stage is populated from
type Prototypes struct {
	Player    *entity.Actor
	Coin      *entity.Actor
	CoinValue int
	// WallImage is stretched over every wall; nil leaves walls invisible
	WallImage entity.Image
}

// StageInfo describes a loaded stage
type StageInfo struct {
	ID     string
	Name   string
	Width  float64 // pixels
	Height float64 // pixels
	Coins  int
	Walls  int
}

// LoadStage populates w from a stage config. Solid rectangles become walls,
// "coin" objects are cloned from the coin prototype and the "player" object
// positions a clone of the player prototype. Unknown tags are reported and
// skipped. Walls are spawned first and the player last, which is also the
// draw order.
func LoadStage(cfg *config.StageConfig, protos Prototypes, w *ecs.World, ch diag.Channel) (StageInfo, error) {
	if protos.Player == nil || protos.Coin == nil {
		return StageInfo{}, fmt.Errorf("stage %s: missing player or coin prototype", cfg.ID)
	}

	info := StageInfo{
		ID:     cfg.ID,
		Name:   cfg.Name,
		Width:  cfg.PixelWidth(),
		Height: cfg.PixelHeight(),
	}

	for _, r := range cfg.Solids {
		w.Spawn(ecs.CategoryWall, newWall(r, protos.WallImage, ch))
		info.Walls++
	}

	var spawn *config.ObjectConfig
	for i := range cfg.Objects {
		obj := &cfg.Objects[i]
		switch obj.Tag {
		case config.TagCoin:
			coin := protos.Coin.Clone()
			coin.SetPosition(obj.X, obj.Y)
			coin.Diag = ch
			id := w.Spawn(ecs.CategoryCoin, coin)
			w.PickupData[id] = ecs.Pickup{Value: protos.CoinValue}
			info.Coins++
		case config.TagPlayer:
			if spawn != nil {
				diag.Warn(ch, diag.KindUnknownMapObject, "duplicate player object ignored",
					diag.F("stage", cfg.ID), diag.F("x", obj.X), diag.F("y", obj.Y))
				continue
			}
			spawn = obj
		default:
			diag.Warn(ch, diag.KindUnknownMapObject, "unknown map object skipped",
				diag.F("stage", cfg.ID), diag.F("tag", obj.Tag), diag.F("x", obj.X), diag.F("y", obj.Y))
		}
	}

	if spawn == nil {
		return info, fmt.Errorf("stage %s: no player object", cfg.ID)
	}
	player := protos.Player.Clone()
	player.SetPosition(spawn.X, spawn.Y)
	player.Diag = ch
	w.Spawn(ecs.CategoryPlayer, player)

	return info, nil
}

func newWall(r config.RectConfig, img entity.Image, ch diag.Channel) *entity.Actor {
	wall := entity.New()
	wall.Name = "wall"
	wall.Diag = ch
	if img != nil {
		wall.Region = entity.NewRegion(img)
	} else {
		wall.Visible = false
	}
	wall.SetPosition(r.X, r.Y)
	wall.SetSize(r.W, r.H)
	wall.SetRectangleBoundary()
	return wall
}
