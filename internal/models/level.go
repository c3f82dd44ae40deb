package models

// LevelResponse describes a generated level without its tiles
type LevelResponse struct {
	Generator string         `json:"generator"`
	RNG       string         `json:"rng"`
	Seed      uint64         `json:"seed"`
	Height    int            `json:"height"`
	Width     int            `json:"width"`
	Spawn     *Position      `json:"spawn,omitempty"`
	Tiles     map[string]int `json:"tiles"`
	Links     LevelLinks     `json:"links"`
}

// LevelLinks points at the renderings of a level
type LevelLinks struct {
	Map     string `json:"map"`
	Preview string `json:"preview"`
	ASCII   string `json:"ascii"`
}

// Position is a tile position, X is the column and Y the row
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// GeneratorsResponse lists the available generators and random sources
type GeneratorsResponse struct {
	Generators []string `json:"generators"`
	RNGs       []string `json:"rngs"`
}
