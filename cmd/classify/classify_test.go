package classify_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"fjacquet/extrato-classifier/cmd/classify"
	"fjacquet/extrato-classifier/internal/classifier"
	"fjacquet/extrato-classifier/internal/classifyerror"
	"fjacquet/extrato-classifier/internal/logging"
	"fjacquet/extrato-classifier/internal/models"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())
	return cmd, &out
}

func newClassifier() *classifier.Classifier {
	return classifier.New(models.DefaultRuleTable(), classifier.Options{}, logging.NewMockLogger())
}

func TestClassifyCommand_Metadata(t *testing.T) {
	assert.Equal(t, "classify [description]", classify.Cmd.Use)
	assert.Contains(t, classify.Cmd.Short, "Classify a single statement description")
	assert.NotNil(t, classify.Cmd.RunE)
}

func TestClassifyCommand_Flags(t *testing.T) {
	descriptionFlag := classify.Cmd.Flags().Lookup("description")
	require.NotNil(t, descriptionFlag)
	assert.Equal(t, "d", descriptionFlag.Shorthand)

	explainFlag := classify.Cmd.Flags().Lookup("explain")
	require.NotNil(t, explainFlag)
	assert.Equal(t, "false", explainFlag.DefValue)

	formatFlag := classify.Cmd.Flags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "json", formatFlag.DefValue)
}

func TestRun_JSON(t *testing.T) {
	cmd, out := newCommand()

	err := classify.Run(cmd, newClassifier(), "PGTO *UBER DO BRASIL TEC", false, "json")
	require.NoError(t, err)

	assert.JSONEq(t, `{"category":"Transporte","clean_description":"Uber Do Brasil Tec"}`, out.String())
}

func TestRun_JSONExplain(t *testing.T) {
	cmd, out := newCommand()

	err := classify.Run(cmd, newClassifier(), "TRANSF PIX RECEBIDA - JOAO SILVA", true, "json")
	require.NoError(t, err)

	var explanation classifier.Explanation
	require.NoError(t, json.Unmarshal(out.Bytes(), &explanation))
	assert.Equal(t, "Pix", explanation.Result.Category)
	assert.Equal(t, "Joao Silva", explanation.Result.CleanDescription)
	assert.Equal(t, classifier.PathPix, explanation.Path)
	assert.Equal(t, classifier.TierPixName, explanation.Tier)
	assert.Equal(t, "pix", explanation.Keyword)
}

func TestRun_Text(t *testing.T) {
	cmd, out := newCommand()

	err := classify.Run(cmd, newClassifier(), "COMPRA CARTAO - LOJA ESTRELA", true, "text")
	require.NoError(t, err)

	assert.Equal(t,
		"Category: Outros\n"+
			"Clean description: Estrela\n"+
			"Path: others\n"+
			"Strategy: -\n"+
			"Keyword: -\n"+
			"Tier: trailing_token\n",
		out.String())
}

func TestRun_InvalidDescription(t *testing.T) {
	cmd, out := newCommand()

	err := classify.Run(cmd, newClassifier(), "", false, "json")
	require.Error(t, err)
	assert.Equal(t, classifyerror.MissingDescriptionMessage, err.Error())
	assert.Empty(t, out.String())
}

func TestRun_InvalidFormat(t *testing.T) {
	cmd, _ := newCommand()

	err := classify.Run(cmd, newClassifier(), "PIX", false, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}
