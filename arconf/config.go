package arconf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/npillmayer/arabicfix/arfix"
)

// DefaultFileName is the name hosts use for the configuration file.
const DefaultFileName = "arabicfix.yml"

// DefaultYAML is the content written by SaveDefault.
const DefaultYAML = `# ArabicChatFix
#
# Reorders Arabic chat messages for clients without bidi support.
# Changes take effect after '/arabicfix reload'.

# Only touch messages which contain Arabic script.
apply_only_if_arabic: true

# Surround fixed messages with RIGHT-TO-LEFT MARKs.
wrap_with_direction_marks: true

# Replace 0-9 with Eastern Arabic-Indic digits.
convert_to_eastern_digits: false

# Only fix messages of players on the alternate (Bedrock) client.
only_bedrock_players: false
`

// ErrNoConfigPath is returned if a configuration is to be loaded from an
// empty path.
var ErrNoConfigPath = errors.New("no configuration file path given")

// file mirrors the configuration document.
type file struct {
	ApplyOnlyIfArabic      bool `yaml:"apply_only_if_arabic"`
	WrapWithDirectionMarks bool `yaml:"wrap_with_direction_marks"`
	ConvertToEasternDigits bool `yaml:"convert_to_eastern_digits"`
	OnlyBedrockPlayers     bool `yaml:"only_bedrock_players"`
}

func fileFrom(opts arfix.Options) file {
	return file{
		ApplyOnlyIfArabic:      opts.ApplyOnlyIfArabic,
		WrapWithDirectionMarks: opts.WrapWithDirectionMarks,
		ConvertToEasternDigits: opts.ConvertDigits,
		OnlyBedrockPlayers:     opts.PlatformFilter,
	}
}

func (f file) options() arfix.Options {
	return arfix.Options{
		ApplyOnlyIfArabic:      f.ApplyOnlyIfArabic,
		WrapWithDirectionMarks: f.WrapWithDirectionMarks,
		ConvertDigits:          f.ConvertToEasternDigits,
		PlatformFilter:         f.OnlyBedrockPlayers,
	}
}

// Parse decodes a configuration document. Keys not present in data keep
// their defaults; unknown keys are ignored.
func Parse(data []byte) (arfix.Options, error) {
	f := fileFrom(arfix.DefaultOptions())
	if err := yaml.Unmarshal(data, &f); err != nil {
		return arfix.DefaultOptions(), fmt.Errorf("malformed arabicfix configuration: %w", err)
	}
	return f.options(), nil
}

// Marshal encodes opts as a configuration document.
func Marshal(opts arfix.Options) ([]byte, error) {
	return yaml.Marshal(fileFrom(opts))
}

// Load reads the configuration file at path.
func Load(path string) (arfix.Options, error) {
	if path == "" {
		return arfix.DefaultOptions(), ErrNoConfigPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return arfix.DefaultOptions(), fmt.Errorf("cannot read arabicfix configuration: %w", err)
	}
	opts, err := Parse(data)
	if err != nil {
		return opts, fmt.Errorf("%s: %w", path, err)
	}
	tracer().Debugf("loaded configuration %s: %v", path, opts)
	return opts, nil
}

// SaveDefault writes DefaultYAML to path unless a file already exists there.
// It reports whether a file has been created.
func SaveDefault(path string) (bool, error) {
	if path == "" {
		return false, ErrNoConfigPath
	}
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("cannot check for arabicfix configuration: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("cannot create configuration directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(DefaultYAML), 0o644); err != nil {
		return false, fmt.Errorf("cannot write default arabicfix configuration: %w", err)
	}
	tracer().Infof("wrote default configuration to %s", path)
	return true, nil
}

// Source loads options from a fixed file path. It is what hosts hand to the
// reload command.
type Source struct {
	Path string
}

// Load reads the options from src.Path.
func (src Source) Load() (arfix.Options, error) {
	return Load(src.Path)
}
