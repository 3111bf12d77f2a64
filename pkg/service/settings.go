package service

import (
	"github.com/spendwise/cli/pkg/config"
	"github.com/spendwise/cli/pkg/errors"
	"github.com/spendwise/cli/pkg/formatter"
	"github.com/spendwise/cli/pkg/output"
	"github.com/spendwise/cli/pkg/prefs"
)

// SettingsService is the sole writer of the display preferences;
// everything else in the process only reads them.
type SettingsService struct{}

// NewSettingsService creates a new settings service
func NewSettingsService() *SettingsService {
	return &SettingsService{}
}

// SetHideAmounts toggles amount masking and persists the flag
func (s *SettingsService) SetHideAmounts(hide bool) error {
	if err := prefs.SetHideAmounts(hide); err != nil {
		formatter.PrintError("Failed to save preference: %v", err)
		return err
	}

	if hide {
		formatter.PrintSuccess("Amounts are now hidden")
	} else {
		formatter.PrintSuccess("Amounts are now visible")
	}
	return nil
}

// SetTheme switches the color theme and persists it
func (s *SettingsService) SetTheme(mode string) error {
	if !prefs.ValidTheme(mode) {
		return errors.ValidationError("theme", "must be light, dark, or system")
	}

	if err := prefs.SetTheme(prefs.ThemeMode(mode)); err != nil {
		formatter.PrintError("Failed to save preference: %v", err)
		return err
	}

	output.ApplyTheme(prefs.Theme())
	formatter.PrintSuccess("Theme set to %s", mode)
	return nil
}

// Show prints the active preferences and key config values
func (s *SettingsService) Show() error {
	formatter.PrintKeyValue(map[string]interface{}{
		"Hide amounts": prefs.HideAmounts(),
		"Theme":        string(prefs.Theme()),
		"API base URL": config.GetString("api.base_url"),
		"Currency":     config.GetString("api.currency"),
		"Download dir": config.GetString("output.download_dir"),
		"Config dir":   config.GetConfigDir(),
	})
	return nil
}
