package surface

import (
	"encoding/json"
	"os"

	"github.com/colinrgodsey/cartesius/f64"
)

// Sample is one measured surface point.
type Sample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (s Sample) Vec3() f64.Vec3 {
	return f64.Vec3{s.X, s.Y, s.Z}
}

func LoadSampleFile(path string) (samples []Sample, err error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return
	}
	err = json.Unmarshal(bytes, &samples)
	return
}

func SaveSampleFile(path string, samples []Sample) error {
	bytes, err := json.Marshal(samples)
	if err != nil {
		return err
	}
	return os.WriteFile(path, bytes, 0644)
}
