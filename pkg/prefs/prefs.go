// Package prefs holds the two cross-cutting display preferences: the
// hide-amounts flag and the color theme. Both persist across runs in a
// JSON file under the config directory. The settings commands are the
// only writers; every other package just reads.
package prefs

import (
	"encoding/json"
	"os"

	"github.com/spendwise/cli/pkg/config"
)

// ThemeMode selects how colored output is decided
type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

// ValidTheme reports whether mode is one of the known theme modes
func ValidTheme(mode string) bool {
	switch ThemeMode(mode) {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// Preferences is the persisted shape of the display preferences
type Preferences struct {
	HideAmounts bool      `json:"hide_amounts"`
	Theme       ThemeMode `json:"theme"`
}

var current Preferences = defaults()

func defaults() Preferences {
	return Preferences{HideAmounts: false, Theme: ThemeSystem}
}

// Init loads preferences from disk. A missing or unreadable file yields
// the defaults: amounts visible, system theme.
func Init() {
	current = defaults()

	data, err := os.ReadFile(config.GetPrefsPath())
	if err != nil {
		return
	}

	var loaded Preferences
	if err := json.Unmarshal(data, &loaded); err != nil {
		return
	}
	if !ValidTheme(string(loaded.Theme)) {
		loaded.Theme = ThemeSystem
	}
	current = loaded
}

// HideAmounts reports whether monetary amounts should render masked
func HideAmounts() bool {
	return current.HideAmounts
}

// Theme returns the active theme mode
func Theme() ThemeMode {
	return current.Theme
}

// SetHideAmounts updates the hide-amounts flag and persists immediately
func SetHideAmounts(hide bool) error {
	current.HideAmounts = hide
	return save()
}

// SetTheme updates the theme mode and persists immediately
func SetTheme(mode ThemeMode) error {
	current.Theme = mode
	return save()
}

func save() error {
	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(config.GetPrefsPath(), data, 0600)
}
