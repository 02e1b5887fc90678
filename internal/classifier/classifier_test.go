package classifier

import (
	"context"
	"strings"
	"sync"
	"testing"

	"fjacquet/extrato-classifier/internal/classifyerror"
	"fjacquet/extrato-classifier/internal/logging"
	"fjacquet/extrato-classifier/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	return New(models.DefaultRuleTable(), Options{}, logging.NewMockLogger())
}

func classify(t *testing.T, c *Classifier, raw string) models.ClassificationResult {
	t.Helper()
	result, err := c.Classify(context.Background(), models.ClassificationInput{RawDescription: raw})
	require.NoError(t, err)
	return result
}

func TestClassify_Scenarios(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		raw      string
		category string
		clean    string
	}{
		{"PGTO *UBER DO BRASIL TEC", models.CategoryTransport, "Uber Do Brasil Tec"},
		{"TRANSF PIX RECEBIDA - JOAO SILVA", models.CategoryPix, "Joao Silva"},
		{"PIX", models.CategoryPix, models.DefaultPixDescription},
		{"COMPRA CARTAO - PADARIA ESTRELA", models.CategoryFood, "Padaria Estrela"},
		{"COMPRA CARTAO - LOJA ESTRELA", models.CategoryOthers, "Estrela"},
		{"PAGAMENTO PIX - LOJA DE ROUPAS", models.CategoryPix, "Loja De Roupas"},
		{"PAGAMENTO BOLETO - ALUGUEL IMOB", models.CategoryHousing, "Aluguel Imob"},
		{"COMPRA MKTPLACE - AMAZON SERV", models.CategoryShopping, "Amazon Serv"},
		{"NETFLIX streaming", models.CategoryLeisure, "Netflix"},
		{"FARMACIA SAO PAULO", models.CategoryHealth, "Farmacia"},
		{"ASSINATURA *DISNEY+ BR", models.CategoryLeisure, "Disney+ Br"},
		{"DEBITO AUTOMATICO *SABESP 0123", models.CategoryHousing, "Sabesp 0123"},
		{"SUMUP *CHURRASCARIA GAUCHA", models.CategoryOthers, "Gaucha"},
		{"PAG X", models.CategoryOthers, "Pag X"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			result := classify(t, c, tt.raw)
			assert.Equal(t, tt.category, result.Category)
			assert.Equal(t, tt.clean, result.CleanDescription)
		})
	}
}

func TestClassify_InvalidInput(t *testing.T) {
	c := New(models.DefaultRuleTable(), Options{MaxInputLength: 20}, logging.NewMockLogger())

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "whitespace only", raw: "   \t "},
		{name: "control characters only", raw: "\x00\x01"},
		{name: "over the length bound", raw: strings.Repeat("A", 21)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := c.Classify(context.Background(), models.ClassificationInput{RawDescription: tt.raw})
			require.Error(t, err)
			assert.True(t, classifyerror.IsInvalidArgument(err))
			assert.Equal(t, models.ClassificationResult{}, result)
		})
	}
}

func TestClassify_Determinism(t *testing.T) {
	c := newTestClassifier(t)
	inputs := []string{
		"PGTO *UBER DO BRASIL TEC",
		"TRANSF PIX RECEBIDA - JOAO SILVA",
		"COMPRA CARTAO - LOJA ESTRELA",
	}

	for _, raw := range inputs {
		first := classify(t, c, raw)
		for i := 0; i < 20; i++ {
			assert.Equal(t, first, classify(t, c, raw))
		}
	}
}

func TestClassify_PixPriority(t *testing.T) {
	c := newTestClassifier(t)

	for _, raw := range []string{
		"UBER PIX - CARLOS",
		"ifood pix",
		"NETFLIX Pix enviado",
		"PIXEL PHONE STORE",
	} {
		t.Run(raw, func(t *testing.T) {
			assert.Equal(t, models.CategoryPix, classify(t, c, raw).Category)
		})
	}

	assert.Equal(t, "Carlos", classify(t, c, "UBER PIX - CARLOS").CleanDescription)
}

func TestClassify_FirstMatchOrder(t *testing.T) {
	c := newTestClassifier(t)

	// "ifood" comes first in the text but Transporte is declared first.
	result := classify(t, c, "IFOOD *RESTAURANTE UBER")
	assert.Equal(t, models.CategoryTransport, result.Category)
	assert.Equal(t, "Uber", result.CleanDescription)

	// "rappi" is listed under two categories; the earlier one wins.
	assert.Equal(t, models.CategoryTransport, classify(t, c, "COMPRA *RAPPI BRASIL").Category)

	// Within a category, listed keyword order wins over text position.
	explanation, err := c.Explain(context.Background(), models.ClassificationInput{RawDescription: "POSTO SHELL 99"})
	require.NoError(t, err)
	assert.Equal(t, "99", explanation.Keyword)
	assert.Equal(t, "99", explanation.Result.CleanDescription)
}

func TestClassify_CustomTableOrder(t *testing.T) {
	table := models.MustRuleTable([]models.CategoryRule{
		{Name: "Primeira", Keywords: []string{"ifood"}},
		{Name: "Segunda", Keywords: []string{"uber"}},
	})
	c := New(table, Options{}, logging.NewMockLogger())

	assert.Equal(t, "Primeira", classify(t, c, "UBER EATS IFOOD").Category)
}

func TestClassify_FallbackGuarantee(t *testing.T) {
	c := newTestClassifier(t)

	for _, raw := range []string{"X", "A-B", "***z", "TED 123", "Q R S T"} {
		t.Run(raw, func(t *testing.T) {
			result := classify(t, c, raw)
			assert.Equal(t, models.CategoryOthers, result.Category)
			assert.NotEmpty(t, result.CleanDescription)
		})
	}
}

func TestClassify_UnicodeInput(t *testing.T) {
	c := newTestClassifier(t)

	decomposed := "COMPRA - PADARIA CONCEIC\u0327A\u0303O"
	result := classify(t, c, decomposed)
	assert.Equal(t, models.CategoryFood, result.Category)
	assert.Equal(t, "Padaria Conceição", result.CleanDescription)

	pix := classify(t, c, "PIX - JOÃO DA SILVA")
	assert.Equal(t, "João Da Silva", pix.CleanDescription)
}

func TestClassify_DecomposedKeywordMatchesComposedInput(t *testing.T) {
	table := models.MustRuleTable([]models.CategoryRule{
		{Name: "Saúde", Keywords: []string{"farma\u0301cia"}},
	})
	c := New(table, Options{}, logging.NewMockLogger())

	assert.Equal(t, "Saúde", classify(t, c, "COMPRA FARMÁCIA CENTRAL").Category)
}

func TestExplain_ReportsPathAndTier(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		raw      string
		strategy string
		path     MatchPath
		tier     Tier
	}{
		{"PGTO *UBER DO BRASIL TEC", "Keyword", PathRule, TierKeywordAnchor},
		{"NETFLIX streaming", "Keyword", PathRule, TierKeyword},
		{"PIX - MARIA", "Pix", PathPix, TierPixName},
		{"PIX", "Pix", PathPix, TierPixDefault},
		{"COMPRA CARTAO - LOJA ESTRELA", "", PathOthers, TierTrailingToken},
		{"PAG X", "", PathOthers, TierFullDescription},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			explanation, err := c.Explain(context.Background(), models.ClassificationInput{RawDescription: tt.raw})
			require.NoError(t, err)
			assert.Equal(t, tt.strategy, explanation.Strategy)
			assert.Equal(t, tt.path, explanation.Path)
			assert.Equal(t, tt.tier, explanation.Tier)
		})
	}
}

func TestClassify_LogsDecision(t *testing.T) {
	logger := logging.NewMockLogger()
	c := New(models.DefaultRuleTable(), Options{}, logger)

	classify(t, c, "PGTO *UBER DO BRASIL TEC")

	require.True(t, logger.HasEntry("DEBUG", "Transaction matched keyword rule"))
	require.True(t, logger.HasEntry("DEBUG", "Transaction classified"))

	for _, entry := range logger.GetEntriesByLevel("DEBUG") {
		if entry.Message != "Transaction classified" {
			continue
		}
		category, ok := entry.FieldValue(logging.FieldCategory)
		require.True(t, ok)
		assert.Equal(t, models.CategoryTransport, category)
	}
}

func TestClassify_ConcurrentCalls(t *testing.T) {
	c := newTestClassifier(t)
	inputs := map[string]models.ClassificationResult{
		"PGTO *UBER DO BRASIL TEC":         {Category: models.CategoryTransport, CleanDescription: "Uber Do Brasil Tec"},
		"TRANSF PIX RECEBIDA - JOAO SILVA": {Category: models.CategoryPix, CleanDescription: "Joao Silva"},
		"COMPRA CARTAO - LOJA ESTRELA":     {Category: models.CategoryOthers, CleanDescription: "Estrela"},
	}

	var wg sync.WaitGroup
	errs := make(chan string, 300)
	for i := 0; i < 100; i++ {
		for raw, want := range inputs {
			wg.Add(1)
			go func(raw string, want models.ClassificationResult) {
				defer wg.Done()
				got, err := c.Classify(context.Background(), models.ClassificationInput{RawDescription: raw})
				if err != nil || got != want {
					errs <- raw
				}
			}(raw, want)
		}
	}
	wg.Wait()
	close(errs)

	var failures []string
	for raw := range errs {
		failures = append(failures, raw)
	}
	assert.Empty(t, failures)
}

func TestNew_MaxInputLength(t *testing.T) {
	assert.Equal(t, DefaultMaxInputLength, New(models.DefaultRuleTable(), Options{}, nil).MaxInputLength())
	assert.Equal(t, 42, New(models.DefaultRuleTable(), Options{MaxInputLength: 42}, nil).MaxInputLength())

	unbounded := New(models.DefaultRuleTable(), Options{MaxInputLength: -1}, logging.NewMockLogger())
	assert.Equal(t, 0, unbounded.MaxInputLength())
	_, err := unbounded.Classify(context.Background(), models.ClassificationInput{
		RawDescription: strings.Repeat("loja ", 1000),
	})
	assert.NoError(t, err)
}

func TestCategories(t *testing.T) {
	c := newTestClassifier(t)
	categories := c.Categories()

	assert.Equal(t, models.CategoryTransport, categories[0])
	assert.Equal(t, models.CategoryOthers, categories[len(categories)-1])
	assert.Contains(t, categories, models.CategoryPix)

	custom := New(models.MustRuleTable([]models.CategoryRule{{Name: "Lazer", Keywords: []string{"bar"}}}), Options{}, nil)
	assert.Equal(t, []string{models.CategoryPix, "Lazer", models.CategoryOthers}, custom.Categories())
}
