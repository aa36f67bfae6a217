package presentation

import (
	"fmt"

	"netprio/application/listing"
	"netprio/application/logging"
	"netprio/application/reconcile"
	"netprio/application/session"
	"netprio/domain/adapter"
	"netprio/infrastructure/PAL/exec_commander"
	"netprio/infrastructure/PAL/windows/netsh"
	"netprio/infrastructure/settings"
	"netprio/infrastructure/textdecode"
	"netprio/presentation/localization"
)

// AppDependencies is the wired core shared by every host surface.
type AppDependencies struct {
	config     *settings.Config
	logger     logging.Logger
	localizer  *localization.Localizer
	gateway    netsh.Contract
	reconciler *reconcile.Reconciler
	session    *session.Session
}

func NewAppDependencies(
	cfg *settings.Config,
	commander exec_commander.Commander,
	logger logging.Logger,
) (*AppDependencies, error) {
	decoder, err := textdecode.NewDecoder(cfg.Decoding.Encodings)
	if err != nil {
		return nil, fmt.Errorf("failed to build decoder: %w", err)
	}

	localizer, err := localization.NewLocalizer(cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("failed to build localizer: %w", err)
	}

	gateway, err := netsh.NewWrapper(commander, decoder, logger, netsh.Options{
		QueryCommand:      cfg.Commands.Query,
		SetMetricTemplate: cfg.Commands.SetMetric,
		Separator:         cfg.Commands.Separator,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build command gateway: %w", err)
	}

	classification := cfg.Classification
	parser := listing.NewParser(
		adapter.NewClassifier(classification.Wireless, classification.Wired, classification.Excluded),
		classification.ConnectedStates,
		classification.DisconnectedStates,
	)
	reconciler := reconcile.NewReconciler(gateway, logger, cfg.Metrics.Base, cfg.Metrics.Step)

	logger.Printf("settings: %q, language: %s", cfg.Path(), localizer.Language())

	return &AppDependencies{
		config:     cfg,
		logger:     logger,
		localizer:  localizer,
		gateway:    gateway,
		reconciler: reconciler,
		session:    session.NewSession(gateway, decoder, parser, reconciler, localizer, logger),
	}, nil
}

func (d *AppDependencies) Config() *settings.Config {
	return d.config
}

func (d *AppDependencies) Logger() logging.Logger {
	return d.logger
}

func (d *AppDependencies) Localizer() *localization.Localizer {
	return d.localizer
}

func (d *AppDependencies) Gateway() netsh.Contract {
	return d.gateway
}

func (d *AppDependencies) Reconciler() *reconcile.Reconciler {
	return d.reconciler
}

func (d *AppDependencies) Session() *session.Session {
	return d.session
}
