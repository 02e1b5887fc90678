package store

import "fjacquet/extrato-classifier/internal/models"

// RuleLoader supplies the rule table the classifier is built from.
type RuleLoader interface {
	LoadRules() (models.RuleTable, error)
}

var (
	_ RuleLoader = (*RuleStore)(nil)
	_ RuleLoader = (*MockRuleStore)(nil)
)
