package classifier

import (
	"testing"

	"fjacquet/extrato-classifier/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestExtractPixName(t *testing.T) {
	tests := []struct {
		lower  string
		want   string
		wantOK bool
	}{
		{"transf pix recebida - joao silva", "joao silva", true},
		{"pagamento pix - loja de roupas", "loja de roupas", true},
		{"pix enviado - maria souza", "maria souza", true},
		{"pixrecebido carlos", "carlos", true},
		{"pix - j. pereira", "j. pereira", true},
		{"pix recebida recebida joana", "joana", true},
		{"pix", "", false},
		{"pix - ana", "", false},
		{"pix 12345", "", false},
		{"transferencia pix", "", false},
		{"pix enviado", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.lower, func(t *testing.T) {
			got, ok := extractPixName(tt.lower)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizer_KeywordAnchored(t *testing.T) {
	n := NewNormalizer(models.DefaultRuleTable())

	tests := []struct {
		raw     string
		keyword string
		want    string
		tier    Tier
	}{
		{"PGTO *UBER DO BRASIL TEC", "uber", "Uber Do Brasil Tec", TierKeywordAnchor},
		{"COMPRA CARTAO - PADARIA ESTRELA", "padaria", "Padaria Estrela", TierKeywordAnchor},
		{"PAG*MERCADO LIVRE", "mercado livre", "Mercado Livre", TierKeywordAnchor},
		{"pgto  uber  x", "uber", "Uber X", TierKeywordAnchor},
		// Keyword at the very start has no separator in front of it.
		{"NETFLIX streaming", "netflix", "Netflix", TierKeyword},
		// Capture "BK" is too short.
		{"COMPRA *BK", "bk", "Bk", TierKeyword},
		{"LANCHE *BURGER KING", "burger king", "Burger King", TierKeywordAnchor},
		{"BURGER KING 123", "burger king", "Burger king", TierKeyword},
		// A keyword outside the table is anchored on the fly.
		{"PGTO *TAXI AEROPORTO", "taxi", "Taxi Aeroporto", TierKeywordAnchor},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, tier := n.Normalize(NewDescription(tt.raw), Match{Path: PathRule, Keyword: tt.keyword})
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.tier, tier)
		})
	}
}

func TestNormalizer_PixPath(t *testing.T) {
	n := NewNormalizer(models.DefaultRuleTable())

	got, tier := n.Normalize(NewDescription("TRANSF PIX RECEBIDA - JOAO SILVA"), Match{Path: PathPix})
	assert.Equal(t, "Joao Silva", got)
	assert.Equal(t, TierPixName, tier)

	got, tier = n.Normalize(NewDescription("PIX"), Match{Path: PathPix})
	assert.Equal(t, models.DefaultPixDescription, got)
	assert.Equal(t, TierPixDefault, tier)
}

func TestNormalizer_GenericFallback(t *testing.T) {
	n := NewNormalizer(models.RuleTable{})

	tests := []struct {
		raw  string
		want string
		tier Tier
	}{
		{"COMPRA CARTAO - LOJA ESTRELA", "Estrela", TierTrailingToken},
		{"SUMUP *CHURRASCARIA GAUCHA", "Gaucha", TierTrailingToken},
		{"LOJA*ABC-XY", "Loja", TierTrailingToken},
		{"PAG X", "Pag X", TierFullDescription},
		{"  ted  ", "Ted", TierFullDescription},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, tier := n.Normalize(NewDescription(tt.raw), Match{Path: PathOthers})
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.tier, tier)
		})
	}
}

func TestTrailingToken(t *testing.T) {
	token, ok := trailingToken("COMPRA CARTAO - LOJA ESTRELA")
	assert.True(t, ok)
	assert.Equal(t, "ESTRELA", token)

	_, ok = trailingToken("A B-C*D")
	assert.False(t, ok)
}
