package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"netprio/application/logging"
	"netprio/presentation/localization"
)

type programRunner interface {
	Run(model tea.Model, opts ...tea.ProgramOption) (tea.Model, error)
}

type bubbleProgramRunner struct{}

func (r bubbleProgramRunner) Run(model tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	p := tea.NewProgram(model, opts...)
	return p.Run()
}

type Runner struct {
	core       Core
	localizer  *localization.Localizer
	prefs      prefsStorage
	logger     logging.Logger
	autoCommit bool
	program    programRunner
}

// NewRunner keeps TUI preferences in prefsDir, next to the configuration file.
func NewRunner(
	core Core,
	localizer *localization.Localizer,
	prefsDir string,
	logger logging.Logger,
	autoCommit bool,
) *Runner {
	return &Runner{
		core:       core,
		localizer:  localizer,
		prefs:      newFilePrefsStorage(prefsDir),
		logger:     logger,
		autoCommit: autoCommit,
		program:    bubbleProgramRunner{},
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	prefs, err := loadPreferences(r.prefs)
	if err != nil {
		r.logger.Printf("tui: failed to load preferences, using defaults: %v", err)
	}
	if prefs.Language != "" {
		if err := r.localizer.SetLanguage(prefs.Language); err != nil {
			r.logger.Printf("tui: ignoring saved language: %v", err)
		}
	}

	model := NewModel(ctx, r.core, r.localizer, r.prefs, r.logger, r.autoCommit)
	if _, err := r.program.Run(model, tea.WithContext(ctx), tea.WithAltScreen()); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
