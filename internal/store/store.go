// Package store loads the classification rule table.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/extrato-classifier/internal/logging"
	"fjacquet/extrato-classifier/internal/models"

	"gopkg.in/yaml.v3"
)

// DefaultRulesFile is looked up when a bare file name is configured.
const DefaultRulesFile = "rules.yaml"

// RuleStore resolves and loads the rule table. An empty RulesFile selects the
// built-in table.
type RuleStore struct {
	RulesFile string
	logger    logging.Logger
}

// NewRuleStore creates a store for rulesFile.
func NewRuleStore(rulesFile string, logger logging.Logger) *RuleStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &RuleStore{
		RulesFile: rulesFile,
		logger:    logger,
	}
}

// FindConfigFile looks for a configuration file in standard locations: the
// path as given, ./config/ and ~/.config/extrato/.
func (s *RuleStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "extrato", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadRules returns the configured rule table.
//
// A configured file that cannot be found, read or parsed is an error; the
// built-in table is never silently substituted for it.
func (s *RuleStore) LoadRules() (models.RuleTable, error) {
	if s.RulesFile == "" {
		table := models.DefaultRuleTable()
		s.logger.Debug("Using built-in rule table",
			logging.Field{Key: logging.FieldCount, Value: table.Len()})
		return table, nil
	}

	path, err := s.FindConfigFile(s.RulesFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.RuleTable{}, fmt.Errorf("rules file not found: %s", s.RulesFile)
		}
		return models.RuleTable{}, fmt.Errorf("error resolving rules file: %w", err)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		return models.RuleTable{}, fmt.Errorf("error reading rules file: %w", err)
	}

	rules, err := parseRules(data)
	if err != nil {
		return models.RuleTable{}, fmt.Errorf("error parsing rules file %s: %w", path, err)
	}

	table, err := models.NewRuleTable(rules)
	if err != nil {
		return models.RuleTable{}, fmt.Errorf("invalid rules file %s: %w", path, err)
	}

	s.logger.Info("Loaded rule table",
		logging.Field{Key: logging.FieldRulesFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: table.Len()})
	return table, nil
}

// parseRules accepts either "categories: [...]" or a bare list of categories.
func parseRules(data []byte) ([]models.CategoryRule, error) {
	var cfg models.RulesConfig
	if err := yaml.Unmarshal(data, &cfg); err == nil && len(cfg.Categories) > 0 {
		return cfg.Categories, nil
	}

	var rules []models.CategoryRule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, errors.New("no categories defined")
	}
	return rules, nil
}

// SaveRules writes table to path in the "categories: [...]" format.
func SaveRules(path string, table models.RuleTable) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(models.RulesConfig{Categories: table.Rules()})
	if err != nil {
		return fmt.Errorf("error marshaling rules: %w", err)
	}

	if err := os.WriteFile(path, data, models.PermissionOutputFile); err != nil {
		return fmt.Errorf("error writing rules: %w", err)
	}
	return nil
}
