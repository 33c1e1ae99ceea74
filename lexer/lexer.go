// Package lexer is a minimal stand-in for the tokenizer the core treats as
// an external collaborator (see the root module's scope). It exists only
// so the cmd/cppdoc driver has something to feed the parser; it is not
// part of the specified core and makes no attempt at full C++ lexical
// coverage (no preprocessor, no raw strings, no digit separators).
package lexer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/cppdoc/cppdoc/token"
)

// Lex tokenizes src into a stream suitable for token.New / parser.New.
func Lex(src string) ([]token.Token, error) {
	var toks []token.Token
	i := 0
	n := len(src)

	for i < n {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == '/' && i+1 < n && src[i+1] == '/':
			for i < n && src[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < n && src[i+1] == '*':
			i += 2
			for i+1 < n && !(src[i] == '*' && src[i+1] == '/') {
				i++
			}
			i += 2
		case isIdentStart(rune(c)):
			start := i
			for i < n && isIdentPart(rune(src[i])) {
				i++
			}
			spelling := src[start:i]
			kind := token.Ident
			switch spelling {
			case "true":
				kind = token.KeywordTrue
			case "false":
				kind = token.KeywordFalse
			}
			toks = append(toks, token.Token{Kind: kind, Spelling: spelling, Start: start})
		case unicode.IsDigit(rune(c)):
			start := i
			for i < n && (unicode.IsDigit(rune(src[i])) || src[i] == '.' || isIdentPart(rune(src[i]))) {
				i++
			}
			toks = append(toks, token.Token{Kind: token.Number, Spelling: src[start:i], Start: start})
		case c == '"':
			start := i
			i++
			for i < n && src[i] != '"' {
				if src[i] == '\\' {
					i++
				}
				i++
			}
			i++
			toks = append(toks, token.Token{Kind: token.String, Spelling: src[start:i], Start: start})
		case c == '\'':
			start := i
			i++
			for i < n && src[i] != '\'' {
				if src[i] == '\\' {
					i++
				}
				i++
			}
			i++
			toks = append(toks, token.Token{Kind: token.Char, Spelling: src[start:i], Start: start})
		default:
			k, length, ok := punctAt(src[i:])
			if !ok {
				return nil, fmt.Errorf("lexer: unrecognized byte %q at %d", c, i)
			}
			toks = append(toks, token.Token{Kind: k, Spelling: src[i : i+length], Start: i})
			i += length
		}
	}
	return toks, nil
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// puncts is checked longest-spelling-first so e.g. "::" matches before ":".
var puncts = []struct {
	text string
	kind token.Kind
}{
	{"...", token.DotDotDot},
	{"::", token.ColonColon},
	{"->", token.Arrow},
	{"(", token.LParen}, {")", token.RParen},
	{"{", token.LBrace}, {"}", token.RBrace},
	{"[", token.LBracket}, {"]", token.RBracket},
	{",", token.Comma}, {";", token.Semicolon}, {":", token.Colon},
	{".", token.Dot}, {"=", token.Eq}, {"!", token.Not},
	{"~", token.Tilde}, {"^", token.Xor}, {"&", token.Amp},
	{"|", token.Or}, {"*", token.Mul}, {"/", token.Div},
	{"%", token.Percent}, {"+", token.Add}, {"-", token.Sub},
	{"<", token.Lt}, {">", token.Gt}, {"?", token.Question},
}

func punctAt(s string) (token.Kind, int, bool) {
	for _, p := range puncts {
		if strings.HasPrefix(s, p.text) {
			return p.kind, len(p.text), true
		}
	}
	return token.Invalid, 0, false
}
