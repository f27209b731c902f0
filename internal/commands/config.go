package commands

import (
	"fmt"
	"io"

	"github.com/gerunddev/interviewer/internal/config"
	"github.com/gerunddev/interviewer/internal/styles"
)

// ConfigShow prints every setting and where the file lives
func ConfigShow(w io.Writer, path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if path == "" {
		path = config.ConfigPath()
	}

	fmt.Fprintln(w, styles.TitleStyle.Render("Configuration"))
	fmt.Fprintln(w, styles.DimStyle.Render(path))
	fmt.Fprintln(w)
	for _, key := range config.Keys {
		value, err := cfg.Get(key)
		if err != nil {
			return err
		}
		if value == "" {
			value = styles.DimStyle.Render("(default)")
		}
		fmt.Fprintf(w, "  %-18s %s\n", styles.HighlightStyle.Render(key), value)
	}
	return nil
}

// ConfigSet changes one setting and saves the file
func ConfigSet(w io.Writer, path, key, value string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := cfg.Save(path); err != nil {
		return err
	}

	fmt.Fprintln(w, styles.SuccessStyle.Render(fmt.Sprintf("✓ %s = %s", key, value)))
	return nil
}
