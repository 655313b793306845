package loader

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Decode unmarshals fetched asset bytes into v, choosing the codec by
// file extension: .yaml/.yml decode as YAML, everything else as JSON.
func Decode(assetPath string, data []byte, v any) error {
	switch strings.ToLower(path.Ext(assetPath)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("%w: parsing %q: %v", ErrInvalidAsset, assetPath, err)
		}
	default:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("%w: parsing %q: %v", ErrInvalidAsset, assetPath, err)
		}
	}
	return nil
}
