// Package classifier assigns a spending category and a clean, human-readable
// label to a raw bank or card statement line.
//
// Classification is a pure function of the input and the rule table: the Rule
// Matcher runs its strategies in order (Pix fast path, then the keyword
// table), falls back to "Outros" when nothing matches, and the Normalizer
// derives the label for whichever path was taken. A Classifier holds no
// mutable state and may be shared by any number of goroutines.
package classifier

import (
	"context"

	"fjacquet/extrato-classifier/internal/logging"
	"fjacquet/extrato-classifier/internal/models"
	"fjacquet/extrato-classifier/internal/textutils"
	"fjacquet/extrato-classifier/internal/validation"
)

// DefaultMaxInputLength bounds the characters accepted per description.
const DefaultMaxInputLength = 500

// Options tunes a Classifier.
type Options struct {
	// MaxInputLength rejects longer descriptions. Zero selects
	// DefaultMaxInputLength; a negative value disables the bound.
	MaxInputLength int
}

// Explanation describes how a result was reached.
type Explanation struct {
	Result   models.ClassificationResult `json:"result"`
	Strategy string                      `json:"strategy,omitempty"`
	Keyword  string                      `json:"keyword,omitempty"`
	Path     MatchPath                   `json:"path"`
	Tier     Tier                        `json:"tier"`
}

// Classifier is the entry point used by every transport.
type Classifier struct {
	table      models.RuleTable
	strategies []MatchStrategy
	normalizer *Normalizer
	maxLength  int
	logger     logging.Logger
}

// New builds a Classifier over table.
func New(table models.RuleTable, opts Options, logger logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.GetLogger()
	}

	maxLength := opts.MaxInputLength
	switch {
	case maxLength == 0:
		maxLength = DefaultMaxInputLength
	case maxLength < 0:
		maxLength = 0
	}

	return &Classifier{
		table: table,
		strategies: []MatchStrategy{
			NewPixStrategy(logger),
			NewKeywordStrategy(table, logger),
		},
		normalizer: NewNormalizer(table),
		maxLength:  maxLength,
		logger:     logger,
	}
}

// Classify returns the category and clean description of input.
//
// An empty, whitespace-only or oversize description yields an error matching
// classifyerror.ErrInvalidArgument. Once the input is valid Classify always
// succeeds.
func (c *Classifier) Classify(ctx context.Context, input models.ClassificationInput) (models.ClassificationResult, error) {
	explanation, err := c.Explain(ctx, input)
	if err != nil {
		return models.ClassificationResult{}, err
	}
	return explanation.Result, nil
}

// Explain is Classify plus the strategy, keyword, path and normalization tier
// behind the result.
func (c *Classifier) Explain(ctx context.Context, input models.ClassificationInput) (Explanation, error) {
	raw := textutils.NormalizeText(input.RawDescription)
	if err := validation.ValidateRawDescription(raw, c.maxLength); err != nil {
		return Explanation{}, err
	}

	desc := NewDescription(raw)
	match := c.match(ctx, desc)
	clean, tier := c.normalizer.Normalize(desc, match)

	c.logger.Debug("Transaction classified",
		logging.Field{Key: logging.FieldCategory, Value: match.Category},
		logging.Field{Key: logging.FieldPath, Value: string(match.Path)},
		logging.Field{Key: logging.FieldKeyword, Value: match.Keyword})

	return Explanation{
		Result: models.ClassificationResult{
			Category:         match.Category,
			CleanDescription: clean,
		},
		Strategy: match.Strategy,
		Keyword:  match.Keyword,
		Path:     match.Path,
		Tier:     tier,
	}, nil
}

// match runs the strategies in order and falls back to CategoryOthers.
func (c *Classifier) match(ctx context.Context, desc Description) Match {
	for _, strategy := range c.strategies {
		if m, ok := strategy.Match(ctx, desc); ok {
			return m
		}
	}
	return Match{Category: models.CategoryOthers, Path: PathOthers}
}

// Categories lists every category Classify can return, in matching order,
// followed by the catch-all.
func (c *Classifier) Categories() []string {
	names := c.table.Categories()
	hasPix := false
	for _, name := range names {
		if name == models.CategoryPix {
			hasPix = true
		}
	}
	if !hasPix {
		names = append([]string{models.CategoryPix}, names...)
	}
	return append(names, models.CategoryOthers)
}

// MaxInputLength reports the enforced bound, zero meaning unbounded.
func (c *Classifier) MaxInputLength() int {
	return c.maxLength
}
