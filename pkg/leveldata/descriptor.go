package leveldata

// Формат авторских данных уровня (YAML). Дескриптор сущности несет тег
// типа и позицию на карте; все остальные ключи - свойства, которые
// передаются конструктору как есть.

// TileDescriptor - один тайл в определении тайлсета
type TileDescriptor struct {
	ID     int    `yaml:"id"`
	Name   string `yaml:"name"`
	Blocks bool   `yaml:"blocks"`
}

// TilesetDescriptor - встроенное определение тайлсета уровня
type TilesetDescriptor struct {
	Name  string           `yaml:"name"`
	Tiles []TileDescriptor `yaml:"tiles"`
}

// EntityDescriptor - одна сущность в данных уровня. Поля type/x/y
// вырезаются при конструировании; остаток - запись свойств.
type EntityDescriptor struct {
	Type  string         `yaml:"type"`
	X     int            `yaml:"x"`
	Y     int            `yaml:"y"`
	Props map[string]any `yaml:",inline"`
}

// LevelDescriptor - корень файла уровня
type LevelDescriptor struct {
	Name     string             `yaml:"name"`
	Width    int                `yaml:"width"`
	Height   int                `yaml:"height"`
	TileSize int                `yaml:"tileSize"`
	Tileset  TilesetDescriptor  `yaml:"tileset"`
	Tiles    []int              `yaml:"tiles"`
	Entities []EntityDescriptor `yaml:"entities"`
}
