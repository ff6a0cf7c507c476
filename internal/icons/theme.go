package icons

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	errorReadThemeFormat   = "read icon theme %s: %w"
	errorDecodeThemeFormat = "decode icon theme %s: %w"
)

// Theme overrides entries of a Set. Nil defaults leave the base defaults in place;
// an empty string disables the fallback icon.
type Theme struct {
	DefaultFile   *string           `yaml:"default_file"`
	DefaultFolder *string           `yaml:"default_folder"`
	Files         map[string]string `yaml:"files"`
	Folders       map[string]string `yaml:"folders"`
}

// LoadTheme reads a YAML icon theme from path.
func LoadTheme(path string) (Theme, error) {
	data, readError := os.ReadFile(path)
	if readError != nil {
		return Theme{}, fmt.Errorf(errorReadThemeFormat, path, readError)
	}
	return ParseTheme(data, path)
}

// ParseTheme decodes YAML theme data; source is used in error messages.
func ParseTheme(data []byte, source string) (Theme, error) {
	var theme Theme
	if decodeError := yaml.Unmarshal(data, &theme); decodeError != nil {
		return Theme{}, fmt.Errorf(errorDecodeThemeFormat, source, decodeError)
	}
	return theme, nil
}

// WithTheme returns a new Set with the theme applied. Dot-prefixed file keys are
// also registered lowercased so they match the normalized extension lookup.
func (set *Set) WithTheme(theme Theme) *Set {
	merged := NewSet(set.files, set.folders, set.defaultFile, set.defaultFolder)
	for key, icon := range theme.Files {
		merged.files[key] = icon
		if strings.HasPrefix(key, extensionSeparator) {
			merged.files[strings.ToLower(key)] = icon
		}
	}
	for key, icon := range theme.Folders {
		merged.folders[key] = icon
	}
	if theme.DefaultFile != nil {
		merged.defaultFile = *theme.DefaultFile
	}
	if theme.DefaultFolder != nil {
		merged.defaultFolder = *theme.DefaultFolder
	}
	return merged
}
