package level

import (
	"fmt"
	"slices"
	"strings"

	"github.com/younwookim/tilequest/internal/application/system"
	"github.com/younwookim/tilequest/internal/domain/diag"
	"github.com/younwookim/tilequest/internal/domain/entity"
	"github.com/younwookim/tilequest/internal/infrastructure/assets"
	"github.com/younwookim/tilequest/internal/infrastructure/config"
)

// BuildPrototypes creates the player and coin templates from entities.json
// and the image library
func BuildPrototypes(ents *config.EntitiesConfig, settings *config.SettingsConfig, lib *assets.Library, ch diag.Channel) (system.Prototypes, error) {
	segments := settings.Collision.EllipseSegments

	player := entity.NewPhysics()
	player.Name = "player"
	player.Diag = ch
	player.SetSize(ents.Player.Width, ents.Player.Height)

	clips, err := lib.SheetClips(ents.Player.Sprite, ents.Player.Clips)
	if err != nil {
		return system.Prototypes{}, fmt.Errorf("failed to build player clips: %w", err)
	}
	// the start clip goes first so it becomes the active one
	if start, ok := clips[ents.Player.StartClip]; ok {
		player.StoreClip(ents.Player.StartClip, start)
	}
	for _, name := range sortedKeys(clips) {
		player.StoreClip(name, clips[name])
	}
	player.SetOriginCenter()
	if err := setBoundary(player, ents.Player.Boundary, segments); err != nil {
		return system.Prototypes{}, fmt.Errorf("player: %w", err)
	}
	player.Motion.SetMaxSpeed(settings.Player.MaxSpeed)
	player.Motion.SetDeceleration(settings.Player.Deceleration)

	coinImg, err := lib.Image(ents.Coin.Image)
	if err != nil {
		return system.Prototypes{}, fmt.Errorf("failed to load coin image: %w", err)
	}
	coin := entity.New()
	coin.Name = "coin"
	coin.Diag = ch
	coin.StoreSingleFrameClip("coin", coinImg)
	if ents.Coin.Width > 0 && ents.Coin.Height > 0 {
		coin.SetSize(ents.Coin.Width, ents.Coin.Height)
	}
	coin.SetOriginCenter()
	if err := setBoundary(coin, ents.Coin.Boundary, segments); err != nil {
		return system.Prototypes{}, fmt.Errorf("coin: %w", err)
	}

	protos := system.Prototypes{
		Player:    player,
		Coin:      coin,
		CoinValue: max(ents.Coin.Value, 1),
	}
	if ents.Wall.Visible {
		wallImg, err := lib.Image(ents.Wall.Image)
		if err != nil {
			return system.Prototypes{}, fmt.Errorf("failed to load wall image: %w", err)
		}
		protos.WallImage = wallImg
	}
	return protos, nil
}

func setBoundary(a *entity.Actor, kind string, segments int) error {
	switch strings.ToLower(kind) {
	case "", "rectangle":
		a.SetRectangleBoundary()
	case "ellipse":
		a.SetEllipseBoundarySegments(segments)
	default:
		return fmt.Errorf("unknown boundary %q", kind)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
