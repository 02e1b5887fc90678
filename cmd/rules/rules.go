// Package rules handles inspection and export of the active rule table
package rules

import (
	"fmt"
	"io"

	"fjacquet/extrato-classifier/cmd/root"
	"fjacquet/extrato-classifier/internal/logging"
	"fjacquet/extrato-classifier/internal/models"
	"fjacquet/extrato-classifier/internal/store"

	"github.com/spf13/cobra"
)

var output string

// Cmd groups the rule table subcommands
var Cmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect the active rule table",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// ExportCmd writes the active rule table as YAML
var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the active rule table to a YAML file",
	Long: `Write the rule table in use (the built-in one, or the file given with
--rules) in the format accepted by --rules, so it can be edited and loaded back.

Example:
  extrato rules export -o rules.yaml`,
	RunE: exportFunc,
}

func init() {
	ExportCmd.Flags().StringVarP(&output, "output", "o", "", "Output YAML file")
	_ = ExportCmd.MarkFlagRequired("output")
	Cmd.AddCommand(ExportCmd)
}

func exportFunc(cmd *cobra.Command, args []string) error {
	c := root.AppContainer
	return Export(c.GetRuleTable(), output, cmd.OutOrStdout(), c.GetLogger())
}

// Export saves table to path and prints a one-line confirmation to out.
func Export(table models.RuleTable, path string, out io.Writer, logger logging.Logger) error {
	if err := store.SaveRules(path, table); err != nil {
		return err
	}

	logger.Info("Exported rule table",
		logging.Field{Key: logging.FieldOutputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: table.Len()})

	_, err := fmt.Fprintf(out, "Wrote %d categories to %s\n", table.Len(), path)
	return err
}
