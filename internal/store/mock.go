package store

import (
	"fjacquet/extrato-classifier/internal/models"
)

// MockRuleStore is a mock implementation of RuleStore for testing.
type MockRuleStore struct {
	Table          models.RuleTable
	LoadRulesError error
	Calls          int
}

// LoadRules returns the mock table.
func (m *MockRuleStore) LoadRules() (models.RuleTable, error) {
	m.Calls++
	if m.LoadRulesError != nil {
		return models.RuleTable{}, m.LoadRulesError
	}
	return m.Table, nil
}
