package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sample() *Program {
	// for x in y where z: pass
	return &Program{Statements: []Node{
		&ForStatement{
			Var:      &Identifier{Index: 1},
			Iterable: &Identifier{Index: 3},
			Where:    &Identifier{Index: 5},
			Body:     &Block{Statements: []Node{&PassStatement{Index: 7}}},
			Else:     &Null{},
		},
	}}
}

func TestWalkOrder(t *testing.T) {
	var got []Kind
	sample().Accept(VisitorFunc(func(n Node) Control {
		got = append(got, n.Kind())
		return Descend
	}))

	assert.Equal(t, []Kind{
		KindProgram, KindForStatement,
		KindIdentifier, KindIdentifier, KindIdentifier,
		KindBlock, KindPassStatement,
		KindNull,
	}, got)
}

func TestWalkPrune(t *testing.T) {
	var got []Kind
	Walk(VisitorFunc(func(n Node) Control {
		got = append(got, n.Kind())
		if n.Kind() == KindForStatement {
			return Prune
		}
		return Descend
	}), sample())

	assert.Equal(t, []Kind{KindProgram, KindForStatement}, got)
}

func TestNullIsVisitable(t *testing.T) {
	visits := 0
	var n Node = &Null{}
	n.Accept(VisitorFunc(func(Node) Control {
		visits++
		return Descend
	}))
	assert.Equal(t, 1, visits)
	assert.Empty(t, Children(n))
}

func TestTokenIndices(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		expected []int
	}{
		{"leaf", &Identifier{Index: 4}, []int{4}},
		{"null", &Null{}, nil},
		{
			"binary",
			&BinaryExpr{LHS: &Integer{Index: 0}, Op: &Operator{Op: 1, Rem: -1}, RHS: &Integer{Index: 2}},
			[]int{0, 1, 2},
		},
		{
			"two token operator",
			&BinaryExpr{LHS: &Integer{Index: 0}, Op: &Operator{Op: 1, Rem: 2}, RHS: &Integer{Index: 3}},
			[]int{0, 1, 2, 3},
		},
		{"statement", sample(), []int{1, 3, 5, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TokenIndices(tt.node))
		})
	}
}

func TestInspectCountsIdentifiers(t *testing.T) {
	count := 0
	Inspect(sample(), func(n Node) bool {
		if _, ok := n.(*Identifier); ok {
			count++
		}
		return true
	})
	assert.Equal(t, 3, count)
}

func TestBinaryOp(t *testing.T) {
	tests := []struct {
		op, rem string
		kind    BinaryOpKind
	}{
		{"-", "", OpMinus},
		{">=", "", OpGreaterEqual},
		{"<=", "", OpLessEqual},
		{"||", "", OpBinaryXor},
		{"^", "", OpPower},
		{"not", "in", OpNotIn},
		{"is", "not", OpIsNot},
	}
	for _, tt := range tests {
		kind, ok := BinaryOp(tt.op, tt.rem)
		if !ok || kind != tt.kind {
			t.Errorf("BinaryOp(%q, %q) = %v, %v; want %v", tt.op, tt.rem, kind, ok, tt.kind)
		}
	}
	if _, ok := BinaryOp("not", ""); ok {
		t.Errorf("BinaryOp(not) should not be a binary operator")
	}
}

func TestUnaryOp(t *testing.T) {
	kind, ok := UnaryOp("√")
	assert.True(t, ok)
	assert.Equal(t, OpSqrt, kind)
	assert.Equal(t, "²", OpSquare.String())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "BinaryExpr", KindBinaryExpr.String())
	assert.Equal(t, "Unknown", Kind(-1).String())
	assert.Equal(t, "list", ListComprehension.String())
}
