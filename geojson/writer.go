package geojson

import (
	"encoding/json"
	"fmt"
	"os"
)

// Write serializes the collection to path, overwriting any existing
// file.
func Write(path string, fc *FeatureCollection) error {
	data, err := json.Marshal(fc)
	if err != nil {
		return fmt.Errorf("encode feature collection: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
