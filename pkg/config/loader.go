package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/configblock/pkg/errors"
	"github.com/arthur-debert/configblock/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "CONFIGBLOCK_"

// ProjectFiles are looked up, in order, in the working directory.
var ProjectFiles = []string{"configblock.toml", ".configblock.toml", "configblock.yaml"}

// Options tells Load where to look.
type Options struct {
	// Path is an explicit config file. When set, project files are skipped
	// and the file must exist.
	Path string

	// WorkDir is searched for project files. Defaults to ".".
	WorkDir string

	// Overrides are applied last, keyed by dotted path ("build.backend").
	Overrides map[string]interface{}
}

// Load reads every configuration layer and returns the validated result.
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config
	if path := UserConfigPath(); fileExists(path) {
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", path).Msg("Loaded user config")
	}

	// 3. Project config or explicit file
	if opts.Path != "" {
		if !fileExists(opts.Path) {
			return nil, errors.Newf(errors.ErrConfigLoad, "config file %s not found", opts.Path).
				WithDetail("path", opts.Path)
		}
		if err := loadFile(k, opts.Path); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", opts.Path).Msg("Loaded config file")
	} else if path := findProjectFile(opts.WorkDir); path != "" {
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", path).Msg("Loaded project config")
	}

	// 4. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 5. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UserConfigPath returns the per-user config file location.
func UserConfigPath() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, "configblock", "config.toml")
}

func findProjectFile(workDir string) string {
	if workDir == "" {
		workDir = "."
	}
	for _, name := range ProjectFiles {
		path := filepath.Join(workDir, name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

func loadFile(k *koanf.Koanf, path string) error {
	var p koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		p = yaml.Parser()
	default:
		p = toml.Parser()
	}
	if err := k.Load(file.Provider(path), p); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
