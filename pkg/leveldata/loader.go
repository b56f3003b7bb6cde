package leveldata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/OdatNurd/ChronoSneak-sub000/internal/domain"
	"github.com/OdatNurd/ChronoSneak-sub000/internal/systems"
	"github.com/OdatNurd/ChronoSneak-sub000/pkg/logger"
)

// Конвейер загрузки уровня: YAML -> тайлсет -> сущности через реестр
// фабрик -> конструирование уровня -> привязка охранников к маршрутам.
// Все ошибки фатальны и описательны: уровень валидируется один раз,
// целиком, и не может быть принят частично.

// LoadFile загружает уровень из YAML-файла
func LoadFile(path string) (*domain.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level file %q: %w", path, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level file %q: %w", path, err)
	}
	return lvl, nil
}

// Parse собирает уровень из YAML-данных
func Parse(data []byte) (*domain.Level, error) {
	var desc LevelDescriptor
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return Build(&desc)
}

// Build конструирует уровень из разобранного дескриптора
func Build(desc *LevelDescriptor) (*domain.Level, error) {
	tileSize := desc.TileSize
	if tileSize <= 0 {
		tileSize = domain.DefaultTileSize
	}

	tiles := make([]domain.Tile, 0, len(desc.Tileset.Tiles))
	for _, td := range desc.Tileset.Tiles {
		tiles = append(tiles, domain.Tile{
			ID:             td.ID,
			Name:           td.Name,
			BlocksMovement: td.Blocks,
		})
	}
	ts, err := domain.NewTileset(desc.Tileset.Name, tiles)
	if err != nil {
		return nil, err
	}

	entities := make([]*domain.Entity, 0, len(desc.Entities))
	for i, ed := range desc.Entities {
		ctor, ok := registry[ed.Type]
		if !ok {
			return nil, fmt.Errorf("entity #%d: unknown type %q (known: %v)",
				i, ed.Type, RegisteredTags())
		}
		props := make(domain.Properties, len(ed.Props))
		for k, v := range ed.Props {
			props[k] = v
		}
		e, err := ctor(domain.Point{X: ed.X, Y: ed.Y}, props, tileSize)
		if err != nil {
			return nil, fmt.Errorf("entity #%d: %w", i, err)
		}
		entities = append(entities, e)
	}

	lvl, err := domain.NewLevel(desc.Name, desc.Width, desc.Height, desc.Tiles, ts, tileSize, entities)
	if err != nil {
		return nil, err
	}

	if err := systems.BindGuards(lvl); err != nil {
		return nil, fmt.Errorf("level %q: %w", desc.Name, err)
	}

	logger.WithComponent("leveldata").
		WithField("level", lvl.Name).
		WithField("size", fmt.Sprintf("%dx%d", lvl.Width, lvl.Height)).
		WithField("entities", len(lvl.Entities)).
		Info("Level loaded")

	return lvl, nil
}
