package config

import (
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/configblock/pkg/errors"
)

// Encode renders cfg as a TOML document.
func Encode(cfg *Config) ([]byte, error) {
	data, err := gotoml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return data, nil
}
