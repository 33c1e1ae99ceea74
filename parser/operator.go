package parser

import "github.com/cppdoc/cppdoc/token"

// operatorSpelling is one entry of the longest-match operator-name table:
// the token-kind sequence that spells it (adjacency required between
// entries), and the canonical text stored in the resulting CppName.
type operatorSpelling struct {
	kinds []token.Kind
	text  string
}

// operatorTable is ordered longest-sequence first so greedy longest-match
// recognition (tryOperatorName) never has to backtrack across entries:
// multi-token spellings are listed ahead of any single-token prefix they
// share, e.g. "->*" ahead of "->".
var operatorTable = []operatorSpelling{
	{[]token.Kind{token.Arrow, token.Mul}, "->*"},
	{[]token.Kind{token.LBracket, token.RBracket}, "[]"},
	{[]token.Kind{token.LParen, token.RParen}, "()"},
	{[]token.Kind{token.Eq, token.Eq}, "=="},
	{[]token.Kind{token.Not, token.Eq}, "!="},
	{[]token.Kind{token.Lt, token.Eq}, "<="},
	{[]token.Kind{token.Gt, token.Eq}, ">="},
	{[]token.Kind{token.Lt, token.Lt, token.Eq}, "<<="},
	{[]token.Kind{token.Gt, token.Gt, token.Eq}, ">>="},
	{[]token.Kind{token.Lt, token.Lt}, "<<"},
	{[]token.Kind{token.Gt, token.Gt}, ">>"},
	{[]token.Kind{token.Amp, token.Amp}, "&&"},
	{[]token.Kind{token.Or, token.Or}, "||"},
	{[]token.Kind{token.Add, token.Eq}, "+="},
	{[]token.Kind{token.Sub, token.Eq}, "-="},
	{[]token.Kind{token.Mul, token.Eq}, "*="},
	{[]token.Kind{token.Div, token.Eq}, "/="},
	{[]token.Kind{token.Percent, token.Eq}, "%="},
	{[]token.Kind{token.Xor, token.Eq}, "^="},
	{[]token.Kind{token.Amp, token.Eq}, "&="},
	{[]token.Kind{token.Or, token.Eq}, "|="},
	{[]token.Kind{token.Arrow}, "->"},
	{[]token.Kind{token.Add}, "+"},
	{[]token.Kind{token.Sub}, "-"},
	{[]token.Kind{token.Mul}, "*"},
	{[]token.Kind{token.Div}, "/"},
	{[]token.Kind{token.Percent}, "%"},
	{[]token.Kind{token.Xor}, "^"},
	{[]token.Kind{token.Amp}, "&"},
	{[]token.Kind{token.Or}, "|"},
	{[]token.Kind{token.Not}, "!"},
	{[]token.Kind{token.Tilde}, "~"},
	{[]token.Kind{token.Eq}, "="},
	{[]token.Kind{token.Lt}, "<"},
	{[]token.Kind{token.Gt}, ">"},
	{[]token.Kind{token.Comma}, ","},
}

// tryOperatorName attempts to recognize an operator spelling at c,
// greedily matching the longest entry of operatorTable whose tokens are
// all present and mutually adjacent (no intervening whitespace). It
// returns the matched entry's token span and new cursor, or ok=false.
func tryOperatorName(c token.Cursor) (tokens []token.Token, text string, next token.Cursor, ok bool) {
	for _, entry := range operatorTable {
		if matchesAt(c, entry.kinds) {
			toks := make([]token.Token, len(entry.kinds))
			cur := c
			for i := range entry.kinds {
				toks[i] = cur.Peek()
				cur = cur.Advance()
			}
			return toks, entry.text, cur, true
		}
	}
	return nil, "", c, false
}

func matchesAt(c token.Cursor, kinds []token.Kind) bool {
	for i, k := range kinds {
		if c.PeekN(i).Kind != k {
			return false
		}
	}
	for i := 0; i < len(kinds)-1; i++ {
		if !c.Adjacent(i) {
			return false
		}
	}
	return true
}
