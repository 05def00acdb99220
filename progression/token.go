package progression

import "strings"

// TokenKind discriminates parsed template tokens.
type TokenKind int

const (
	TokenDiatonic TokenKind = iota
	TokenSecondaryDominant
	TokenSecondaryDiminished
	TokenModalInterchange
	TokenNeapolitan
)

// Token is a parsed template step. Templates are parsed once when a catalog
// or style pack loads; generation never inspects raw strings.
type Token struct {
	Kind    TokenKind
	Degree  int // 0-based diatonic degree (Diatonic, Secondary*)
	Variant int // index into the modal-interchange set (ModalInterchange)
}

// modalTokenIndex maps the five borrowed-chord spellings to their position
// in the modal-interchange layer.
var modalTokenIndex = map[string]int{
	"bIII": 0,
	"bVI":  1,
	"iv":   2,
	"bVII": 3,
	"ii°":  4,
}

var romanDegrees = map[string]int{
	"I": 0, "II": 1, "III": 2, "IV": 3, "V": 4, "VI": 5, "VII": 6,
}

// romanDegree resolves a Roman numeral (any case, ring decorations ignored)
// to a 0-based degree.
func romanDegree(raw string) (int, bool) {
	cleaned := strings.ToUpper(strings.TrimSuffix(strings.TrimSuffix(raw, "°"), "ø"))
	d, ok := romanDegrees[cleaned]
	return d, ok
}

// ParseToken reads one template token. Recognized forms: Roman numerals for
// diatonic degrees, "V/<degree>" for secondary dominants, "vii°/<degree>"
// for secondary diminished, the five modal-interchange spellings, and "bII"
// for the Neapolitan. Anything else resolves to the tonic, matching the
// generator's fallback behavior.
func ParseToken(raw string) Token {
	if raw == "bII" {
		return Token{Kind: TokenNeapolitan}
	}
	if idx, ok := modalTokenIndex[raw]; ok {
		return Token{Kind: TokenModalInterchange, Variant: idx}
	}
	if rest, ok := strings.CutPrefix(raw, "V/"); ok {
		if d, ok := romanDegree(rest); ok {
			return Token{Kind: TokenSecondaryDominant, Degree: d}
		}
		return Token{Kind: TokenDiatonic, Degree: 0}
	}
	if rest, ok := strings.CutPrefix(raw, "vii°/"); ok {
		if d, ok := romanDegree(rest); ok {
			return Token{Kind: TokenSecondaryDiminished, Degree: d}
		}
		return Token{Kind: TokenDiatonic, Degree: 0}
	}
	if d, ok := romanDegree(raw); ok {
		return Token{Kind: TokenDiatonic, Degree: d}
	}
	return Token{Kind: TokenDiatonic, Degree: 0}
}

// parseTokens maps a token string list through ParseToken.
func parseTokens(raw []string) []Token {
	tokens := make([]Token, len(raw))
	for i, r := range raw {
		tokens[i] = ParseToken(r)
	}
	return tokens
}
