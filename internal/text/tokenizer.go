// Package text holds the language collaborators of the preprocessor:
// a word tokenizer, stemmers and the stopword set.
package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Kind classifies a token.
type Kind int

const (
	// Word is a run of letters and digits, possibly joined by in-word hyphens.
	Word Kind = iota
	// Punct is a single punctuation or symbol rune.
	Punct
	// OpenBracket is "(".
	OpenBracket
	// CloseBracket is ")".
	CloseBracket
)

// Token is a single unit of tokenized text.
type Token struct {
	Text string
	Kind Kind
}

// WordTokenizer splits text on whitespace and punctuation. Brackets are
// emitted as their own tokens so callers can track bracketed spans.
type WordTokenizer struct{}

// NewTokenizer creates a WordTokenizer.
func NewTokenizer() *WordTokenizer {
	return &WordTokenizer{}
}

// Tokenize splits NFC-normalized text into tokens. Case is preserved.
func (t *WordTokenizer) Tokenize(s string) []Token {
	runes := []rune(norm.NFC.String(s))
	tokens := make([]Token, 0, len(runes)/4+1)

	var word strings.Builder
	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, Token{Text: word.String(), Kind: Word})
			word.Reset()
		}
	}

	for i, r := range runes {
		switch {
		case isWordRune(r):
			word.WriteRune(r)
		case r == '-' && word.Len() > 0 && i+1 < len(runes) && isWordRune(runes[i+1]):
			word.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		case r == '(':
			flush()
			tokens = append(tokens, Token{Text: "(", Kind: OpenBracket})
		case r == ')':
			flush()
			tokens = append(tokens, Token{Text: ")", Kind: CloseBracket})
		default:
			flush()
			tokens = append(tokens, Token{Text: string(r), Kind: Punct})
		}
	}
	flush()

	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}
