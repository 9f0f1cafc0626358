package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/commsbanner/internal/config"
	"github.com/jask/commsbanner/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// resolved before the log is redirected so the warning reaches stderr
	loc, err := loadLocation(cfg.UI.Timezone)
	if err != nil {
		log.Printf("warn: using local timezone due to load failure: %v", err)
	}
	clock := func() time.Time { return time.Now().In(loc) }

	// the TUI owns the terminal; log lines only go somewhere when debugging
	if path := debugLogPath(os.Getenv("COMMSBANNER_DEBUG")); path != "" {
		f, err := tea.LogToFile(path, "commsbanner")
		if err != nil {
			return fmt.Errorf("debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
		defer log.SetOutput(os.Stderr)
	}

	p := tea.NewProgram(tui.New(cfg, clock), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func debugLogPath(v string) string {
	v = strings.TrimSpace(v)
	if v == "1" || strings.EqualFold(v, "true") {
		return "debug.log"
	}
	return v
}

// loadLocation resolves the configured timezone. On failure it returns
// time.Local together with the load error.
func loadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local, err
	}
	return loc, nil
}
