package intkeymap

import (
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

const (
	HashMix    = "mix"
	HashXXHash = "xxhash"
)

// Config describes a map in TOML, e.g.
//
//	initial-capacity = 1024
//	load-factor = 0.75
//	max-capacity = 1048576
//	hash = "xxhash"
type Config struct {
	InitialCapacity int     `toml:"initial-capacity"`
	LoadFactor      float64 `toml:"load-factor"`
	MaxCapacity     int     `toml:"max-capacity"`
	Hash            string  `toml:"hash"`
}

func NewConfig() Config {
	return Config{
		InitialCapacity: DefaultCapacity,
		LoadFactor:      DefaultLoadFactor,
		MaxCapacity:     MaxCapacity,
		Hash:            HashMix,
	}
}

// ParseConfig decodes TOML on top of the defaults and validates the result.
// Malformed input and unknown keys are reported as ErrInvalidConfig.
func ParseConfig(data string) (Config, error) {
	c := NewConfig()

	md, err := toml.Decode(data, &c)
	if err != nil {
		return c, errors.WithSecondaryError(errors.Wrapf(ErrInvalidConfig, "decode: %v", err), err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}

		return c, errors.Wrapf(ErrInvalidConfig, "unknown keys %s", strings.Join(keys, ", "))
	}

	return c, c.Validate()
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return NewConfig(), errors.Wrap(err, "read intkeymap config")
	}

	c, err := ParseConfig(string(data))
	if err != nil {
		return c, errors.Wrapf(err, "load %s", path)
	}

	return c, nil
}

func (c Config) Validate() error {
	if c.InitialCapacity < 0 {
		return errors.Wrapf(ErrInvalidConfig, "initial-capacity must not be negative, got %d", c.InitialCapacity)
	}
	if c.LoadFactor <= 0 || math.IsNaN(c.LoadFactor) {
		return errors.Wrapf(ErrInvalidConfig, "load-factor must be positive, got %v", c.LoadFactor)
	}
	if c.MaxCapacity < 1 || c.MaxCapacity > MaxCapacity {
		return errors.Wrapf(ErrInvalidConfig, "max-capacity must be in [1, %d], got %d", MaxCapacity, c.MaxCapacity)
	}

	switch c.Hash {
	case HashMix, HashXXHash:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown hash %q", c.Hash)
	}

	return nil
}

// NewFromConfig builds a map from c. Options passed explicitly override the config.
func NewFromConfig[K Key, V any](c Config, opts ...Option[K, V]) (*Map[K, V], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	base := []Option[K, V]{WithMaxCapacity[K, V](c.MaxCapacity)}
	if c.Hash == HashXXHash {
		base = append(base, WithHashFunc[K, V](XXHash[K]))
	}

	return New(c.InitialCapacity, c.LoadFactor, append(base, opts...)...)
}
