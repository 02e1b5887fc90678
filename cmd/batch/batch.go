// Package batch handles classification of CSV files
package batch

import (
	"context"
	"fmt"
	"io"

	"fjacquet/extrato-classifier/cmd/root"
	"fjacquet/extrato-classifier/internal/common"
	"fjacquet/extrato-classifier/internal/logging"
	"fjacquet/extrato-classifier/internal/models"
	"fjacquet/extrato-classifier/internal/validation"

	"github.com/spf13/cobra"
)

var (
	input     string
	output    string
	delimiter string
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Classify every description of a CSV file",
	Long: `Classify every row of a CSV file carrying a raw_description column and
write raw_description, category and clean_description to the output file.

Rows whose description is empty are written with an empty category and
counted as invalid.

Example:
  extrato batch -i extrato.csv -o classified.csv`,
	RunE: batchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&input, "input", "i", "", "Input CSV file")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV file")
	Cmd.Flags().StringVar(&delimiter, "delimiter", "", "CSV delimiter (overrides csv.delimiter)")
	_ = Cmd.MarkFlagRequired("input")
	_ = Cmd.MarkFlagRequired("output")
}

func batchFunc(cmd *cobra.Command, args []string) error {
	c := root.AppContainer
	delim := delimiter
	if delim == "" {
		delim = c.GetConfig().CSV.Delimiter
	}

	return Run(cmd.Context(), Options{
		Input:     input,
		Output:    output,
		Delimiter: common.ParseDelimiter(delim),
	}, c.GetClassifier(), cmd.OutOrStdout(), c.GetLogger())
}

// Options are the resolved batch command arguments.
type Options struct {
	Input     string
	Output    string
	Delimiter rune
}

// Run classifies opts.Input into opts.Output and prints a summary to out.
func Run(ctx context.Context, opts Options, classifier common.Classifier, out io.Writer, logger logging.Logger) error {
	if err := validation.IsReadableFile(opts.Input); err != nil {
		return fmt.Errorf("invalid input file: %w", err)
	}

	rows, err := common.ReadBatchFile(opts.Input, opts.Delimiter, logger)
	if err != nil {
		return err
	}

	processed, stats, err := common.ClassifyRows(ctx, rows, classifier, logger)
	if err != nil {
		return fmt.Errorf("error classifying rows: %w", err)
	}

	if err := common.WriteBatchFile(processed, opts.Output, opts.Delimiter, logger); err != nil {
		return err
	}

	stats.LogSummary(logger, opts.Input)
	return printSummary(out, stats, opts.Output)
}

func printSummary(out io.Writer, stats *models.BatchStats, path string) error {
	_, err := fmt.Fprintf(out, "Processed %d rows into %s: %d classified, %d fallback (%s), %d invalid\n",
		stats.Total, path, stats.Classified, stats.Fallback, models.CategoryOthers, stats.Invalid)
	return err
}
