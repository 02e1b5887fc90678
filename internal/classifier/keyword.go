package classifier

import (
	"context"
	"strings"

	"fjacquet/extrato-classifier/internal/logging"
	"fjacquet/extrato-classifier/internal/models"
)

// KeywordStrategy matches descriptions against the rule table. Categories are
// tried in declaration order and keywords in listed order; the first keyword
// contained in the lower-cased description wins. There is no scoring.
type KeywordStrategy struct {
	rules  []models.CategoryRule
	logger logging.Logger
}

// NewKeywordStrategy creates a KeywordStrategy over table. The table is copied
// once so later changes to the caller's data cannot leak in.
func NewKeywordStrategy(table models.RuleTable, logger logging.Logger) *KeywordStrategy {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &KeywordStrategy{
		rules:  table.Rules(),
		logger: logger,
	}
}

// Name returns the name of this strategy for logging and debugging.
func (s *KeywordStrategy) Name() string {
	return "Keyword"
}

// Match returns the first (category, keyword) pair found in desc.
func (s *KeywordStrategy) Match(ctx context.Context, desc Description) (Match, bool) {
	for _, rule := range s.rules {
		for _, keyword := range rule.Keywords {
			if !strings.Contains(desc.Lower, keyword) {
				continue
			}

			s.logger.Debug("Transaction matched keyword rule",
				logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
				logging.Field{Key: logging.FieldKeyword, Value: keyword},
				logging.Field{Key: logging.FieldCategory, Value: rule.Name})

			return Match{
				Category: rule.Name,
				Keyword:  keyword,
				Path:     PathRule,
				Strategy: s.Name(),
			}, true
		}
	}
	return Match{}, false
}
