package index_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cppdoc/cppdoc/ast"
	"github.com/cppdoc/cppdoc/index"
	"github.com/cppdoc/cppdoc/resolve"
)

func TestNullRecorderDiscardsEvents(t *testing.T) {
	var rec index.Recorder = index.Null{}
	assert.NotPanics(t, func() {
		rec.Index(ast.CppName{Spelling: "x"}, []resolve.Result{{}})
		rec.ExpectValueButType(ast.CppName{Spelling: "y"}, nil)
	})
}

type spyRecorder struct {
	indexed  []ast.CppName
	expected []ast.CppName
}

func (s *spyRecorder) Index(name ast.CppName, resolving []resolve.Result) {
	s.indexed = append(s.indexed, name)
}

func (s *spyRecorder) ExpectValueButType(name ast.CppName, resolving []resolve.Result) {
	s.expected = append(s.expected, name)
}

func TestRecorderInterfaceSatisfiedBySpy(t *testing.T) {
	var rec index.Recorder = &spyRecorder{}
	rec.Index(ast.CppName{Spelling: "a"}, nil)
	rec.ExpectValueButType(ast.CppName{Spelling: "b"}, nil)

	spy := rec.(*spyRecorder)
	assert.Equal(t, []ast.CppName{{Spelling: "a"}}, spy.indexed)
	assert.Equal(t, []ast.CppName{{Spelling: "b"}}, spy.expected)
}
