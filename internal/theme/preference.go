package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2png/internal/fileutil"
)

// appDir is the directory under the user config dir holding app state.
const appDir = "go-md2png"

// preferenceFile is the file storing the theme preference.
const preferenceFile = "theme"

// Preference persists the chosen theme. The file holds "dark" when the dark
// theme was chosen and is absent otherwise.
type Preference struct {
	path string
}

// NewPreference stores the preference in dir. An empty dir selects the
// user config directory.
func NewPreference(dir string) (*Preference, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("locating config directory: %w", err)
		}
		dir = filepath.Join(base, appDir)
	}
	return &Preference{path: filepath.Join(dir, preferenceFile)}, nil
}

// Path returns the preference file path.
func (p *Preference) Path() string {
	return p.path
}

// Load returns the stored theme, Light when nothing is stored.
func (p *Preference) Load() (Name, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Light, nil
		}
		return Light, fmt.Errorf("reading theme preference: %w", err)
	}
	return ParseName(strings.TrimSpace(string(data))), nil
}

// Save stores the theme. Saving Light removes the file.
func (p *Preference) Save(n Name) error {
	if n != Dark {
		if err := os.Remove(p.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("clearing theme preference: %w", err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := fileutil.WriteFileAtomic(p.path, []byte(Dark), 0o600); err != nil {
		return fmt.Errorf("writing theme preference: %w", err)
	}
	return nil
}
