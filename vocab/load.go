package vocab

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/teranos/STC/errors"
)

// LoadFromFile reads and validates a vocabulary file.
//
// Decoding uses go-toml directly rather than the viper stack the config
// package uses: vocabulary keys are symbol names, and symbol names are
// case-sensitive, which viper's key folding would destroy.
func LoadFromFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read vocabulary file %s", path)
	}
	return Load(data)
}

// Load parses and validates vocabulary TOML.
func Load(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "failed to parse vocabulary TOML")
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}
