package models

import (
	"fjacquet/extrato-classifier/internal/logging"
)

// BatchRow is one line of a batch classification file. Category and
// CleanDescription stay empty when RawDescription was rejected.
type BatchRow struct {
	RawDescription   string `csv:"raw_description"`
	Category         string `csv:"category"`
	CleanDescription string `csv:"clean_description"`
}

// BatchStats counts the outcomes of a batch run.
type BatchStats struct {
	Total      int // Rows read
	Classified int // Rows matched by Pix or a table rule
	Fallback   int // Rows that fell back to CategoryOthers
	Invalid    int // Rows rejected as invalid input
}

// NewBatchStats creates an empty BatchStats.
func NewBatchStats() *BatchStats {
	return &BatchStats{}
}

// Record counts one classified row.
func (s *BatchStats) Record(category string) {
	s.Total++
	if category == CategoryOthers {
		s.Fallback++
		return
	}
	s.Classified++
}

// RecordInvalid counts one rejected row.
func (s *BatchStats) RecordInvalid() {
	s.Total++
	s.Invalid++
}

// MatchRate is the share of valid rows that matched a category, in percent.
func (s BatchStats) MatchRate() float64 {
	valid := s.Total - s.Invalid
	if valid == 0 {
		return 0.0
	}
	return float64(s.Classified) / float64(valid) * 100.0
}

// LogSummary logs the counters.
func (s BatchStats) LogSummary(logger logging.Logger, source string) {
	if logger == nil {
		return
	}

	logger.Info("Batch classification summary",
		logging.Field{Key: logging.FieldInputFile, Value: source},
		logging.Field{Key: "total", Value: s.Total},
		logging.Field{Key: "classified", Value: s.Classified},
		logging.Field{Key: "fallback", Value: s.Fallback},
		logging.Field{Key: "invalid", Value: s.Invalid},
		logging.Field{Key: "match_rate", Value: s.MatchRate()},
	)
}
