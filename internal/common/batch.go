package common

import (
	"context"

	"fjacquet/extrato-classifier/internal/classifyerror"
	"fjacquet/extrato-classifier/internal/logging"
	"fjacquet/extrato-classifier/internal/models"
)

// Classifier is the part of the classifier batch processing relies on.
type Classifier interface {
	Classify(ctx context.Context, input models.ClassificationInput) (models.ClassificationResult, error)
}

// ClassifyRows fills Category and CleanDescription of every row. Rows with an
// invalid description are left empty and counted; any other classifier error
// aborts the run. The input slice is not modified.
func ClassifyRows(
	ctx context.Context,
	rows []models.BatchRow,
	classifier Classifier,
	logger logging.Logger,
) ([]models.BatchRow, *models.BatchStats, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	stats := models.NewBatchStats()
	processed := make([]models.BatchRow, len(rows))

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}

		processed[i] = models.BatchRow{RawDescription: row.RawDescription}

		result, err := classifier.Classify(ctx, models.ClassificationInput{RawDescription: row.RawDescription})
		if err != nil {
			if !classifyerror.IsInvalidArgument(err) {
				return nil, stats, err
			}
			logger.Debug("Skipping invalid row",
				logging.Field{Key: "row", Value: i + 1},
				logging.Field{Key: logging.FieldError, Value: err.Error()})
			stats.RecordInvalid()
			continue
		}

		processed[i].Category = result.Category
		processed[i].CleanDescription = result.CleanDescription
		stats.Record(result.Category)
	}

	return processed, stats, nil
}
