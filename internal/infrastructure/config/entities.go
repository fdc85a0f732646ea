package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player PlayerConfig `json:"player"`
	Coin   CoinConfig   `json:"coin"`
	Wall   WallConfig   `json:"wall"`
}

type PlayerConfig struct {
	Sprite    SheetConfig           `json:"sprite"`
	Width     float64               `json:"width"`
	Height    float64               `json:"height"`
	Boundary  string                `json:"boundary"`
	StartClip string                `json:"startClip"`
	Clips     map[string]ClipConfig `json:"clips"`
}

// SheetConfig references a sprite sheet cut into a Columns x Rows grid
type SheetConfig struct {
	Image   string `json:"image"`
	Columns int    `json:"columns"`
	Rows    int    `json:"rows"`
}

// ClipConfig selects sheet cells (row-major) for one animation clip
type ClipConfig struct {
	Cells         []int   `json:"cells"`
	FrameDuration float64 `json:"frameDuration"`
	Mode          string  `json:"mode"`
}

type CoinConfig struct {
	Image    string  `json:"image"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Boundary string  `json:"boundary"`
	Value    int     `json:"value"`
}

type WallConfig struct {
	Image   string `json:"image"`
	Visible bool   `json:"visible"`
}
