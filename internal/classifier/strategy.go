package classifier

import (
	"context"
	"strings"
)

// MatchPath tells the normalizer which extraction mode applies.
type MatchPath string

const (
	// PathPix is the Pix transfer fast path.
	PathPix MatchPath = "pix"
	// PathRule is a hit in the general rule table.
	PathRule MatchPath = "rule"
	// PathOthers means nothing matched.
	PathOthers MatchPath = "others"
)

// Description is a raw statement line prepared for matching. Raw keeps the
// caller's casing for extraction; Lower is only used for matching.
type Description struct {
	Raw   string
	Lower string
}

// NewDescription prepares raw for matching.
func NewDescription(raw string) Description {
	return Description{Raw: raw, Lower: strings.ToLower(raw)}
}

// Match is the Rule Matcher's decision. Keyword is the literal table entry
// that triggered the match and is empty on PathOthers.
type Match struct {
	Category string
	Keyword  string
	Path     MatchPath
	Strategy string
}

// MatchStrategy is one step of the Rule Matcher. Strategies run in order and
// the first one reporting a match wins.
type MatchStrategy interface {
	// Match reports the category for desc, or false when the strategy does
	// not apply.
	Match(ctx context.Context, desc Description) (Match, bool)

	// Name returns the name of this strategy for logging and explanations.
	Name() string
}
