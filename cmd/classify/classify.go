// Package classify handles one-shot classification of a single description
package classify

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"fjacquet/extrato-classifier/cmd/root"
	"fjacquet/extrato-classifier/internal/classifier"
	"fjacquet/extrato-classifier/internal/classifyerror"
	"fjacquet/extrato-classifier/internal/models"
	"fjacquet/extrato-classifier/internal/validation"

	"github.com/spf13/cobra"
)

var (
	description string
	explain     bool
	format      string
)

// Cmd represents the classify command
var Cmd = &cobra.Command{
	Use:   "classify [description]",
	Short: "Classify a single statement description",
	Long: `Classify a single bank or card statement description and print its
category and clean description.

Example:
  extrato classify --description "PGTO *UBER DO BRASIL TEC"
  extrato classify "TRANSF PIX RECEBIDA - JOAO SILVA" --explain --format text`,
	RunE: classifyFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Raw statement description to classify")
	Cmd.Flags().BoolVarP(&explain, "explain", "e", false, "Also show the strategy, keyword and normalization tier")
	Cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json or text)")
}

func classifyFunc(cmd *cobra.Command, args []string) error {
	raw := description
	if raw == "" && len(args) > 0 {
		raw = strings.Join(args, " ")
	}
	return Run(cmd, root.AppContainer.GetClassifier(), raw, explain, format)
}

// Run classifies raw with c and writes the outcome to cmd's output.
func Run(cmd *cobra.Command, c *classifier.Classifier, raw string, withExplanation bool, outputFormat string) error {
	if err := validation.IsValidOutputFormat(outputFormat); err != nil {
		return err
	}

	explanation, err := c.Explain(cmd.Context(), models.ClassificationInput{RawDescription: raw})
	if err != nil {
		if classifyerror.IsInvalidArgument(err) {
			return fmt.Errorf("%s", classifyerror.Message(err))
		}
		return err
	}

	out := cmd.OutOrStdout()
	if outputFormat == "text" {
		return writeText(out, explanation, withExplanation)
	}
	return writeJSON(out, explanation, withExplanation)
}

func writeJSON(out io.Writer, explanation classifier.Explanation, withExplanation bool) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if withExplanation {
		return enc.Encode(explanation)
	}
	return enc.Encode(explanation.Result)
}

func writeText(out io.Writer, explanation classifier.Explanation, withExplanation bool) error {
	if _, err := fmt.Fprintf(out, "Category: %s\nClean description: %s\n",
		explanation.Result.Category, explanation.Result.CleanDescription); err != nil {
		return err
	}
	if !withExplanation {
		return nil
	}

	keyword := explanation.Keyword
	if keyword == "" {
		keyword = "-"
	}
	strategy := explanation.Strategy
	if strategy == "" {
		strategy = "-"
	}
	_, err := fmt.Fprintf(out, "Path: %s\nStrategy: %s\nKeyword: %s\nTier: %s\n",
		explanation.Path, strategy, keyword, explanation.Tier)
	return err
}
