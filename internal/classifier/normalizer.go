package classifier

import (
	"regexp"
	"strings"

	"fjacquet/extrato-classifier/internal/models"
	"fjacquet/extrato-classifier/internal/textutils"
)

// Tier names the normalization step that produced a clean description.
type Tier string

const (
	TierPixName         Tier = "pix_name"
	TierPixDefault      Tier = "pix_default"
	TierKeywordAnchor   Tier = "keyword_anchor"
	TierKeyword         Tier = "keyword"
	TierTrailingToken   Tier = "trailing_token"
	TierFullDescription Tier = "full_description"
)

// minCaptureLength is the length a captured name must exceed to be used.
const minCaptureLength = 3

// minTokenLength is the shortest trailing token the generic fallback accepts.
const minTokenLength = 4

// pixCounterparty captures the counterparty of a lower-cased Pix line:
// "pix", optional letters glued to it, separators, an optional direction word
// and then the name itself.
var pixCounterparty = regexp.MustCompile(
	`pix\pL*[\s\-]*(?:(?:recebid[ao]|enviad[ao])[\s\-]*)?([\pL\s.]+)`)

// pixNoiseWords leak from the direction field into captured names.
var pixNoiseWords = map[string]bool{
	"recebida": true,
	"recebido": true,
	"enviado":  true,
	"enviada":  true,
}

// Normalizer turns a matched description into a short presentable label.
// Every mode is a chain of attempts; a miss falls through to the next one and
// the last one always produces a value.
type Normalizer struct {
	anchors map[string]*regexp.Regexp
}

// NewNormalizer precompiles the keyword anchors of table. The result is
// read-only and safe for concurrent use.
func NewNormalizer(table models.RuleTable) *Normalizer {
	anchors := make(map[string]*regexp.Regexp)
	for _, rule := range table.Rules() {
		for _, kw := range rule.Keywords {
			if _, ok := anchors[kw]; !ok {
				anchors[kw] = keywordAnchor(kw)
			}
		}
	}
	return &Normalizer{anchors: anchors}
}

// keywordAnchor matches a separator, optional blanks, then the keyword and the
// name characters following it; group 1 starts at the keyword.
func keywordAnchor(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)[*\- ]\s*(` + regexp.QuoteMeta(keyword) + `[\pL\pN .]*)`)
}

// Normalize returns the clean description for desc given the matcher's
// decision, along with the tier that produced it.
func (n *Normalizer) Normalize(desc Description, m Match) (string, Tier) {
	switch m.Path {
	case PathPix:
		if name, ok := extractPixName(desc.Lower); ok {
			return textutils.TitleCase(name), TierPixName
		}
		return models.DefaultPixDescription, TierPixDefault
	case PathRule:
		if name, ok := n.extractAnchored(desc.Raw, m.Keyword); ok {
			return textutils.TitleCase(name), TierKeywordAnchor
		}
		return textutils.Capitalize(m.Keyword), TierKeyword
	default:
		if token, ok := trailingToken(desc.Raw); ok {
			return textutils.TitleCase(token), TierTrailingToken
		}
		return textutils.TitleCase(desc.Raw), TierFullDescription
	}
}

// extractAnchored captures the keyword and the name that follows it in raw.
func (n *Normalizer) extractAnchored(raw, keyword string) (string, bool) {
	if keyword == "" {
		return "", false
	}
	re, ok := n.anchors[keyword]
	if !ok {
		re = keywordAnchor(keyword)
	}

	groups := re.FindStringSubmatch(raw)
	if len(groups) < 2 {
		return "", false
	}
	capture := strings.TrimSpace(groups[1])
	if textutils.RuneLen(capture) <= minCaptureLength {
		return "", false
	}
	return capture, true
}

// extractPixName recovers the counterparty of a lower-cased Pix line.
func extractPixName(lower string) (string, bool) {
	groups := pixCounterparty.FindStringSubmatch(lower)
	if len(groups) < 2 {
		return "", false
	}

	words := strings.Fields(groups[1])
	kept := words[:0]
	for _, w := range words {
		if !pixNoiseWords[w] {
			kept = append(kept, w)
		}
	}
	name := strings.Join(kept, " ")
	if textutils.RuneLen(name) <= minCaptureLength {
		return "", false
	}
	return name, true
}

// trailingToken returns the last separator-delimited token of raw that is at
// least minTokenLength characters long. Merchant names tend to trail
// boilerplate prefixes such as "COMPRA CARTAO".
func trailingToken(raw string) (string, bool) {
	tokens := textutils.SplitSeparators(raw)
	for i := len(tokens) - 1; i >= 0; i-- {
		token := strings.TrimSpace(tokens[i])
		if textutils.RuneLen(token) >= minTokenLength {
			return token, true
		}
	}
	return "", false
}
