package config

import (
	"encoding/json"
	"os"

	"github.com/colinrgodsey/cartesius/f64"
	"github.com/hjson/hjson-go"
)

// Config describes a normal-field run for cmd/vec3d.
type Config struct {
	SamplesPath string   `json:"samples-path"`
	Max         f64.Vec2 `json:"max"`
	Stride      float64  `json:"stride"`
	OutPath     string   `json:"out-path"`
}

// LoadConfig reads an hjson config file from path.
func LoadConfig(path string) (conf Config, err error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var mdat map[string]interface{}
	if err = hjson.Unmarshal(bytes, &mdat); err != nil {
		return
	}
	if bytes, err = json.Marshal(mdat); err != nil {
		return
	}
	err = json.Unmarshal(bytes, &conf)
	return
}
