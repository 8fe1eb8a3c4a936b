package key

import (
	"fmt"
	"sync"
	"unicode"

	"github.com/dshills/keyhold/internal/trie"
)

// TokenKind identifies the type of a lexical token.
type TokenKind uint8

const (
	// TokenKey is a key label such as "Ctrl", "Space" or "a".
	TokenKey TokenKind = iota
	// TokenDash joins keys into a chord.
	TokenDash
)

// Token is a lexical token of the keybinding language.
type Token struct {
	Kind TokenKind
	// Text is the key label. Empty for dashes.
	Text string
}

// KeyToken returns a key token for label.
func KeyToken(label string) Token {
	return Token{Kind: TokenKey, Text: label}
}

// DashToken returns a dash token.
func DashToken() Token {
	return Token{Kind: TokenDash}
}

// String returns a debug representation such as Key(Ctrl) or Dash.
func (t Token) String() string {
	if t.Kind == TokenDash {
		return "Dash"
	}
	return "Key(" + t.Text + ")"
}

// Lexer splits keybinding text into tokens. Reserved words are matched with
// a character trie; every other character must stand alone as a symbol or
// a dash. A Lexer is immutable after construction and safe for concurrent use.
type Lexer struct {
	words *trie.Trie[rune, struct{}]
}

// NewLexer creates a lexer recognizing the reserved key labels.
func NewLexer() *Lexer {
	words := trie.NewSparse[rune, struct{}]()
	for _, w := range keywords {
		words.Insert([]rune(w), struct{}{})
	}
	return &Lexer{words: words}
}

var defaultLexer = sync.OnceValue(NewLexer)

// Tokenize tokenizes src with a shared default lexer.
func Tokenize(src string) ([]Token, error) {
	return defaultLexer().Tokenize(src)
}

// Tokenize converts src into tokens. Whitespace is ignored everywhere.
func (l *Lexer) Tokenize(src string) ([]Token, error) {
	var (
		tokens []Token
		word   []rune
		err    error
	)
	cursor := trie.Start

	for _, c := range src {
		if unicode.IsSpace(c) {
			continue
		}

		word = append(word, c)
		cursor = l.words.Advance(cursor, c)
		switch {
		case cursor.IsPartial():
			continue
		case cursor.IsComplete():
			tokens = append(tokens, KeyToken(string(word)))
		default:
			// Not a reserved word: every buffered char has to stand alone.
			if tokens, err = replay(tokens, word); err != nil {
				return nil, err
			}
		}

		word = word[:0]
		cursor = trie.Start
	}

	// An unfinished reserved word at the end of input gets the same
	// treatment as one interrupted by a foreign char.
	if len(word) > 0 {
		if tokens, err = replay(tokens, word); err != nil {
			return nil, err
		}
	}

	return tokens, nil
}

func replay(tokens []Token, chars []rune) ([]Token, error) {
	for _, c := range chars {
		switch {
		case c == '-':
			tokens = append(tokens, DashToken())
		case isSymChar(c):
			tokens = append(tokens, KeyToken(string(c)))
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnexpectedChar, c)
		}
	}
	return tokens, nil
}
