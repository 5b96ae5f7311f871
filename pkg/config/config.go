package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	cerr "github.com/drmbt/comfy-config/pkg/errors"
	"github.com/drmbt/comfy-config/pkg/logging"
	"github.com/drmbt/comfy-config/pkg/paths"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvFileName is the environment file read from the project root
const EnvFileName = ".env"

// ConfigFileNames are the project config files, tried in order
var ConfigFileNames = []string{"comfy-config.toml", "comfy-config.yaml"}

// Links holds the per-folder source directories that get symlinked into
// the workspace. Empty values mean "not configured"; interactive commands
// may still prompt for them.
type Links struct {
	Models    string `koanf:"models" toml:"models"`
	Input     string `koanf:"input" toml:"input"`
	Output    string `koanf:"output" toml:"output"`
	Workflows string `koanf:"workflows" toml:"workflows"`
	Snapshots string `koanf:"snapshots" toml:"snapshots"`
}

// Manager holds ComfyUI-Manager related sources
type Manager struct {
	// Config is the path to a config.ini to copy into the workspace
	Config string `koanf:"config" toml:"config"`
	// Snapshot is the path to a snapshot file to restore
	Snapshot string `koanf:"snapshot" toml:"snapshot"`
}

// Config is the resolved comfy-config configuration
type Config struct {
	// Workspace is the ComfyUI workspace root (COMFY_PATH)
	Workspace string `koanf:"workspace" toml:"workspace"`
	// GPU is the vendor flag passed to `comfy install` (nvidia, amd,
	// intel-arc, m-series, cpu)
	GPU string `koanf:"gpu" toml:"gpu"`
	// Python is the interpreter used to pip-install comfy-cli
	Python string `koanf:"python" toml:"python"`
	// SkipPrompt suppresses all interactive prompts
	SkipPrompt bool `koanf:"skip_prompt" toml:"skip_prompt"`

	Links   Links   `koanf:"links" toml:"links"`
	Manager Manager `koanf:"manager" toml:"manager"`
}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// ProjectRoot is the directory searched for config files and .env.
	// Empty means the current working directory.
	ProjectRoot string
	// EnvFile overrides the .env location
	EnvFile string
}

// rawBytesProvider feeds embedded bytes to koanf
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, cerr.New(cerr.ErrInternal, "not implemented")
}

// Load builds the configuration with the following precedence, lowest
// first: embedded defaults, project config file, project .env, process
// environment.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")

	root := opts.ProjectRoot
	if root == "" {
		root = "."
	}

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, cerr.Wrap(err, cerr.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Project config file, first match wins
	for _, name := range ConfigFileNames {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		parser := configParser(name)
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, cerr.Wrapf(err, cerr.ErrConfigParse, "failed to load config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded project config")
		break
	}

	// 3. Project .env
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = filepath.Join(root, EnvFileName)
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := k.Load(file.Provider(envFile), dotenv.ParserEnv("", ".", envToKey)); err != nil {
			return nil, cerr.Wrapf(err, cerr.ErrConfigParse, "failed to load env file %s", envFile)
		}
		logger.Debug().Str("path", envFile).Msg("Loaded env file")
	} else {
		logger.Debug().Str("path", envFile).Msg("No env file found")
	}

	// 4. Process environment
	if err := k.Load(env.Provider("", ".", envToKey), nil); err != nil {
		return nil, cerr.Wrap(err, cerr.ErrConfigLoad, "failed to load environment")
	}

	var cfg Config
	if err := unmarshal(k, &cfg); err != nil {
		return nil, cerr.Wrap(err, cerr.ErrConfigParse, "failed to decode configuration")
	}
	return &cfg, nil
}

// Default returns the embedded default configuration
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, cerr.Wrap(err, cerr.ErrConfigLoad, "failed to load defaults")
	}
	var cfg Config
	if err := unmarshal(k, &cfg); err != nil {
		return nil, cerr.Wrap(err, cerr.ErrConfigParse, "failed to decode defaults")
	}
	return &cfg, nil
}

// configParser picks the koanf parser matching a config file name
func configParser(name string) koanf.Parser {
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return yaml.Parser()
	}
	return toml.Parser()
}

// envToKey maps environment / .env variable names to config keys. The
// legacy names the original setup scripts used (COMFY_PATH,
// MANAGER_CONFIG, SNAPSHOT_PATH, *_PATH per folder) are honored next to
// the generic COMFY_* scheme. Returning "" drops the variable.
func envToKey(s string) string {
	switch s {
	case "COMFY_PATH":
		return "workspace"
	case "MANAGER_CONFIG":
		return "manager.config"
	case "SNAPSHOT_PATH":
		return "manager.snapshot"
	case "COMFY_SKIP_PROMPT":
		return "skip_prompt"
	case "MODELS_PATH":
		return "links.models"
	case "INPUT_PATH":
		return "links.input"
	case "OUTPUT_PATH":
		return "links.output"
	case "WORKFLOWS_PATH":
		return "links.workflows"
	case "SNAPSHOTS_PATH":
		return "links.snapshots"
	}

	if strings.HasPrefix(s, "COMFY_") {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "COMFY_")), "_", ".")
	}

	return ""
}

// unmarshal decodes the koanf tree into cfg, expanding ~ and environment
// references in every string field on the way.
func unmarshal(k *koanf.Koanf, cfg *Config) error {
	return k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook:       expandHomeHook(),
		},
	})
}

// expandHomeHook expands ~ and $VARS in string values during decoding
func expandHomeHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to.Kind() != reflect.String {
			return data, nil
		}
		s, ok := data.(string)
		if !ok || s == "" {
			return data, nil
		}
		return paths.ExpandHome(s)
	}
}
