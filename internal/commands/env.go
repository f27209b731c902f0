package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gerunddev/interviewer/internal/config"
	"github.com/gerunddev/interviewer/internal/logger"
	"github.com/gerunddev/interviewer/internal/question"
	"github.com/gerunddev/interviewer/internal/vault"
)

// Options are the global command-line settings
type Options struct {
	ConfigPath string
	VaultDir   string
	Dialect    string
	Force      bool
	Verbose    bool
}

// Env is what every command runs against
type Env struct {
	Config *config.Config
	Vault  *vault.Vault
	Log    *logger.Logger
	Out    io.Writer

	// Source is the dialect notes are read in, Output the dialect new
	// interview notes are written in
	Source question.Dialect
	Output question.Dialect

	// Force skips the interview tag check
	Force bool

	Now func() time.Time

	// Interactive hooks, replaced in tests
	EditAnswer   func(questionText, initial string) (string, bool, error)
	PickQuestion func(title string, items []Item) (Item, bool, error)
}

// Setup loads configuration, applies command-line overrides and opens the
// log. The returned cleanup closes the log file.
func Setup(opts Options) (*Env, func(), error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, nil, err
	}

	if opts.VaultDir != "" {
		cfg.VaultDir = opts.VaultDir
		if err := cfg.ExpandPaths(); err != nil {
			return nil, nil, fmt.Errorf("failed to expand vault path: %w", err)
		}
	}
	if opts.Dialect != "" {
		if err := cfg.Set("dialect", opts.Dialect); err != nil {
			return nil, nil, err
		}
	}

	source, output, err := cfg.Dialects()
	if err != nil {
		return nil, nil, err
	}

	level := log.InfoLevel
	if opts.Verbose {
		level = log.DebugLevel
	}

	l, cleanup := openLog(cfg.LogFile, level, opts.Verbose)
	l.ConfigLoaded(cfg.VaultDir, source.Name())

	env := NewEnv(cfg, l, os.Stdout)
	env.Source, env.Output = source, output
	env.Force = opts.Force
	return env, cleanup, nil
}

// NewEnv builds an Env for cfg with interactive prompts wired to the TUI
func NewEnv(cfg *config.Config, l *logger.Logger, out io.Writer) *Env {
	source, output, err := cfg.Dialects()
	if err != nil {
		source, output = question.Current, question.Current
	}

	return &Env{
		Config:       cfg,
		Vault:        vault.New(cfg.VaultDir),
		Log:          l,
		Out:          out,
		Source:       source,
		Output:       output,
		Now:          time.Now,
		EditAnswer:   editAnswer,
		PickQuestion: pickQuestion,
	}
}

// openLog logs to the configured file, and to stderr as well when verbose.
// A log file that cannot be opened is not fatal.
func openLog(path string, level log.Level, verbose bool) (*logger.Logger, func()) {
	noop := func() {}

	if path == "" {
		if verbose {
			return logger.NewWithLevel(os.Stderr, level), noop
		}
		return logger.Discard(), noop
	}

	var extra []io.Writer
	if verbose {
		extra = append(extra, os.Stderr)
	}

	l, cleanup, err := logger.NewFileLogger(path, level, extra...)
	if err != nil {
		l := logger.NewWithLevel(os.Stderr, log.WarnLevel)
		l.FileError(path, err)
		return l, noop
	}
	return l, cleanup
}
