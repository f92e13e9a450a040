package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/bizlens/internal/config"
	"github.com/theirongolddev/bizlens/internal/tui/theme"
)

// SetupValues holds the answers collected by the setup form.
type SetupValues struct {
	DataFile    string
	Sheet       string
	Currency    string
	GroupDigits bool
	Theme       string
	OllamaHost  string
}

// currencyOptions lists the symbols offered in setup. The empty value keeps
// the symbol detected from the data's header units.
var currencyOptions = []huh.Option[string]{
	huh.NewOption("Detect from data (default ₹)", ""),
	huh.NewOption("₹ Rupee", "INR"),
	huh.NewOption("$ Dollar", "USD"),
	huh.NewOption("€ Euro", "EUR"),
	huh.NewOption("£ Pound", "GBP"),
}

// SetupValuesFrom seeds the form from an existing config.
func SetupValuesFrom(cfg config.Config) SetupValues {
	return SetupValues{
		DataFile:    cfg.General.DataFile,
		Sheet:       cfg.General.Sheet,
		Currency:    cfg.Display.CurrencySymbol,
		GroupDigits: cfg.Display.GroupDigits,
		Theme:       cfg.Display.Theme,
		OllamaHost:  cfg.Retrieval.OllamaHost,
	}
}

// Apply writes the collected values into cfg.
func (v SetupValues) Apply(cfg *config.Config) {
	cfg.General.DataFile = strings.TrimSpace(v.DataFile)
	cfg.General.Sheet = strings.TrimSpace(v.Sheet)
	cfg.Display.CurrencySymbol = v.Currency
	cfg.Display.GroupDigits = v.GroupDigits
	if _, ok := theme.Lookup(v.Theme); ok {
		cfg.Display.Theme = v.Theme
	}
	if host := strings.TrimSpace(v.OllamaHost); host != "" {
		cfg.Retrieval.OllamaHost = strings.TrimRight(host, "/")
	}
}

func validateDataFile(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot read %s", path)
	}
	return nil
}

// NewSetupForm builds the first-run form bound to vals.
func NewSetupForm(vals *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to bizlens!").
				Description("Point bizlens at a CSV, XLSX or SQLite file of monthly business data.\nLeave the path empty to explore the built-in sample year."),
			huh.NewInput().
				Title("Data file").
				Placeholder("~/data/business_data.csv").
				Validate(validateDataFile).
				Value(&vals.DataFile),
			huh.NewInput().
				Title("Worksheet (xlsx only)").
				Description("Empty uses the first sheet.").
				Value(&vals.Sheet),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Currency").
				Options(currencyOptions...).
				Value(&vals.Currency),
			huh.NewConfirm().
				Title("Group digits with commas?").
				Affirmative("Yes").
				Negative("No").
				Value(&vals.GroupDigits),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Ollama host").
				Description("Used by `bizlens search` for embeddings.").
				Value(&vals.OllamaHost),
		),
	).WithTheme(huh.ThemeCharm())
}

// RunSetup runs the setup form in the terminal and saves the result.
func RunSetup(cfg config.Config) (config.Config, error) {
	vals := SetupValuesFrom(cfg)
	if err := NewSetupForm(&vals).Run(); err != nil {
		return cfg, fmt.Errorf("setup: %w", err)
	}
	vals.Apply(&cfg)
	if err := config.Save(cfg); err != nil {
		return cfg, fmt.Errorf("saving config: %w", err)
	}
	theme.SetActive(cfg.Display.Theme)
	return cfg, nil
}
