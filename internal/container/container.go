// Package container provides dependency injection for the extrato application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"time"

	"fjacquet/extrato-classifier/internal/classifier"
	"fjacquet/extrato-classifier/internal/config"
	"fjacquet/extrato-classifier/internal/logging"
	"fjacquet/extrato-classifier/internal/models"
	"fjacquet/extrato-classifier/internal/server"
	"fjacquet/extrato-classifier/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	table      models.RuleTable
	classifier *classifier.Classifier
	server     *server.Server
}

// NewContainer creates and wires all application dependencies, building the
// logger from cfg.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, config.ConfigureLoggingFromConfig(cfg))
}

// NewContainerWithLogger is NewContainer with an explicit logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = config.ConfigureLoggingFromConfig(cfg)
	}

	return NewContainerWithLoader(cfg, logger, store.NewRuleStore(cfg.Rules.File, logger))
}

// NewContainerWithLoader is NewContainerWithLogger with an explicit rule
// source.
func NewContainerWithLoader(cfg *config.Config, logger logging.Logger, loader store.RuleLoader) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = config.ConfigureLoggingFromConfig(cfg)
	}
	if loader == nil {
		return nil, fmt.Errorf("rule loader cannot be nil")
	}

	table, err := loader.LoadRules()
	if err != nil {
		return nil, fmt.Errorf("failed to load rule table: %w", err)
	}

	c := classifier.New(table, classifier.Options{
		MaxInputLength: cfg.Classifier.MaxInputLength,
	}, logger)

	srv := server.New(c, ServerOptions(cfg), logger)

	logger.Debug("Container initialized successfully",
		logging.Field{Key: logging.FieldCount, Value: table.Len()})

	return &Container{
		logger:     logger,
		config:     cfg,
		table:      table,
		classifier: c,
		server:     srv,
	}, nil
}

// ServerOptions converts the server section of cfg.
func ServerOptions(cfg *config.Config) server.Options {
	return server.Options{
		Address:         cfg.Server.Address,
		ReadTimeout:     time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:    time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		ShutdownTimeout: time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second,
		MaxBodyBytes:    cfg.Server.MaxBodyBytes,
	}
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetRuleTable returns the loaded rule table.
func (c *Container) GetRuleTable() models.RuleTable {
	return c.table
}

// GetClassifier returns the shared classifier.
func (c *Container) GetClassifier() *classifier.Classifier {
	return c.classifier
}

// GetServer returns the HTTP server wired to the classifier.
func (c *Container) GetServer() *server.Server {
	return c.server
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
