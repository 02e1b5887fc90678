package classifier

import (
	"context"
	"strings"

	"fjacquet/extrato-classifier/internal/logging"
	"fjacquet/extrato-classifier/internal/models"
)

// PixKeyword triggers the Pix fast path wherever it appears.
const PixKeyword = "pix"

// PixStrategy claims every description mentioning Pix. It runs before the
// rule table because transfer lines carry a counterparty name that only the
// Pix extractor knows how to recover.
type PixStrategy struct {
	logger logging.Logger
}

// NewPixStrategy creates a PixStrategy.
func NewPixStrategy(logger logging.Logger) *PixStrategy {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &PixStrategy{logger: logger}
}

// Name returns the name of this strategy for logging and debugging.
func (s *PixStrategy) Name() string {
	return "Pix"
}

// Match reports CategoryPix when the lower-cased description contains "pix".
func (s *PixStrategy) Match(ctx context.Context, desc Description) (Match, bool) {
	if !strings.Contains(desc.Lower, PixKeyword) {
		return Match{}, false
	}

	s.logger.Debug("Transaction matched Pix fast path",
		logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
		logging.Field{Key: logging.FieldCategory, Value: models.CategoryPix})

	return Match{
		Category: models.CategoryPix,
		Keyword:  PixKeyword,
		Path:     PathPix,
		Strategy: s.Name(),
	}, true
}
