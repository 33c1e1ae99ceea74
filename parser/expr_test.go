package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cppdoc/cppdoc/ast"
	"github.com/cppdoc/cppdoc/index"
	"github.com/cppdoc/cppdoc/lexer"
	"github.com/cppdoc/cppdoc/parser"
	"github.com/cppdoc/cppdoc/token"
)

func initExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	p := parseSrc(t, src)
	v := p.Root().Children("x")[0].Decls[0].(*ast.VariableDecl)
	require.NotNil(t, v.Initializer)
	require.Len(t, v.Initializer.Arguments, 1)
	return v.Initializer.Arguments[0]
}

func TestBinaryPrecedenceClimbsMulOverAdd(t *testing.T) {
	e := initExpr(t, "int x = 1 + 2 * 3;")
	top := e.(*ast.BinaryOp)
	assert.Equal(t, token.Add, top.Operator)
	_, lhsIsLit := top.LHS.(*ast.LiteralExpr)
	assert.True(t, lhsIsLit)
	rhs := top.RHS.(*ast.BinaryOp)
	assert.Equal(t, token.Mul, rhs.Operator)
}

func TestBinaryEqualPrecedenceIsLeftAssociative(t *testing.T) {
	// "1 - 2 - 3" must parse as (1 - 2) - 3, not 1 - (2 - 3): parseBinary's
	// recursive call uses prec+1 for the right side, so equal-precedence
	// operators nest on the left.
	e := initExpr(t, "int x = 1 - 2 - 3;")
	top := e.(*ast.BinaryOp)
	assert.Equal(t, token.Sub, top.Operator)
	_, lhsIsBinary := top.LHS.(*ast.BinaryOp)
	assert.True(t, lhsIsBinary, "equal-precedence operators must nest to the left")
	_, rhsIsLit := top.RHS.(*ast.LiteralExpr)
	assert.True(t, rhsIsLit)
}

func TestUnaryOperatorWrapsOperand(t *testing.T) {
	e := initExpr(t, "int x = -1;")
	u := e.(*ast.UnaryOp)
	assert.Equal(t, token.Sub, u.Operator)
	_, ok := u.Operand.(*ast.LiteralExpr)
	assert.True(t, ok)
}

func TestCastDisambiguatesFromParenthesizedExpr(t *testing.T) {
	e := initExpr(t, "int x = (int)1;")
	cast, ok := e.(*ast.CastExpr)
	require.True(t, ok, "\"(int)1\" must parse as a cast, not a call on a parenthesized name")
	_, isPrim := cast.Type.(*ast.PrimitiveType)
	assert.True(t, isPrim)
}

func TestParenthesizedExprIsNotMisreadAsCast(t *testing.T) {
	e := initExpr(t, "int x = (y);")
	_, ok := e.(*ast.ParenthesisExpr)
	assert.True(t, ok, "\"(y)\" with y not a type name must fall back to a plain parenthesized expression")
}

func TestPostfixChainsFieldArrowAndCall(t *testing.T) {
	e := initExpr(t, "int x = a.b->c[0](1);")
	call := e.(*ast.CallExpr)
	require.Len(t, call.Arguments, 1)
	idx := call.Expr.(*ast.ArrayAccessExpr)
	arrow := idx.Expr.(*ast.FieldAccessExpr)
	assert.Equal(t, ast.FieldArrow, arrow.Kind)
	assert.Equal(t, "c", arrow.Name.Spelling)
	dot := arrow.Expr.(*ast.FieldAccessExpr)
	assert.Equal(t, ast.FieldDot, dot.Kind)
	assert.Equal(t, "b", dot.Name.Spelling)
}

func TestArrowStarIsNotConsumedAsFieldArrow(t *testing.T) {
	// "->*"  is reserved for the pointer-to-member-dereference operator
	// name, not ordinary "->" field access, so postfix parsing must stop
	// before it rather than treating '*' as a field name.
	toks, err := lexer.Lex("int x = a->*b;")
	require.NoError(t, err)
	p := parser.New(toks, index.Null{})
	_, err = p.ParseProgram()
	// "->*" has no expression form in this grammar, so the tokens after "a"
	// do not parse; "x" is already bound with its initializer by then.
	assert.Error(t, err)
	v := p.Root().Children("x")[0].Decls[0].(*ast.VariableDecl)
	require.NotNil(t, v.Initializer)
	require.Len(t, v.Initializer.Arguments, 1)
	_, isID := v.Initializer.Arguments[0].(*ast.IdExpr)
	assert.True(t, isID, "postfix parsing must stop before \"->*\" rather than reading \"*\" as a field name")
}
