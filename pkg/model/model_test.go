package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/leapstack-labs/flowhigh/pkg/tree"
)

var (
	_ Stmt = (*Statement)(nil)
	_ Stmt = (*CreateViewStatement)(nil)
	_ Stmt = (*CreateTableStatement)(nil)
	_ Stmt = (*CreateStageStatement)(nil)
	_ Stmt = (*AlterTableStatement)(nil)
	_ Stmt = (*InsertStatement)(nil)
	_ Stmt = (*CopyStatement)(nil)
	_ Stmt = (*UpdateStatement)(nil)
	_ Stmt = (*DeleteStatement)(nil)
	_ Stmt = (*MergeStatement)(nil)
)

func attr(name string) *Attr {
	return NewAttrBuilder().WithRefAtt(name).Build()
}

func sameNodes(t assert.TestingT, want []Node, got []tree.Node) bool {
	if !assert.Len(t, got, len(want)) {
		return false
	}
	for i := range want {
		if !assert.Same(t, want[i], got[i], "child %d", i) {
			return false
		}
	}
	return true
}

func TestEmptyBuilders(t *testing.T) {
	tests := []struct {
		kind  string
		build func() Node
	}{
		{"ParSeQL", func() Node { return NewParSeQLBuilder().Build() }},
		{"Statement", func() Node { return NewStatementBuilder().Build() }},
		{"CreateViewStatement", func() Node { return NewCreateViewStatementBuilder().Build() }},
		{"MergeStatement", func() Node { return NewMergeStatementBuilder().Build() }},
		{"Ds", func() Node { return NewDsBuilder().Build() }},
		{"TableFunc", func() Node { return NewTableFuncBuilder().Build() }},
		{"Attr", func() Node { return NewAttrBuilder().Build() }},
		{"Case", func() Node { return NewCaseBuilder().Build() }},
		{"WrappedExpr", func() Node { return NewWrappedExprBuilder().Build() }},
		{"DBO", func() Node { return NewDBOBuilder().Build() }},
		{"AntiPattern", func() Node { return NewAntiPatternBuilder().Build() }},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			n := tt.build()
			assert.Equal(t, tt.kind, n.Kind())
			assert.Empty(t, n.Children())
			assert.Empty(t, n.Fields())
			assert.Nil(t, n.Parent())
			assert.False(t, n.Has("pos"))
		})
	}
}

func TestEmptyBuilderZeroFields(t *testing.T) {
	ds := NewDsBuilder().Build()
	assert.Empty(t, ds.Name)
	assert.Nil(t, ds.In)
	assert.Nil(t, ds.Out)
	assert.Nil(t, ds.SetOps)

	cv := NewCreateViewStatementBuilder().Build()
	assert.Nil(t, cv.DialExt)
	assert.Nil(t, cv.Ds)
	assert.Nil(t, cv.AntiPatterns)
	assert.Empty(t, cv.RawInput)
}

func TestMixedCollection(t *testing.T) {
	a := NewDsBuilder().WithName("a").Build()
	b := NewDsBuilder().WithName("b").Build()

	cv := NewCreateViewStatementBuilder().
		WithDs([]Element{a, Raw{Value: "raw_string"}, b}).
		Build()

	require.Len(t, cv.Ds, 3)
	assert.Same(t, a, cv.Ds[0])
	assert.Equal(t, Raw{Value: "raw_string"}, cv.Ds[1])
	assert.Same(t, b, cv.Ds[2])
	sameNodes(t, []Node{a, b}, cv.Children())
	assert.Same(t, cv, a.Parent())
	assert.Same(t, cv, b.Parent())
	assert.Equal(t, []*Ds{a, b}, cv.Datasets())
}

func TestDialectExtensionIsNotAChild(t *testing.T) {
	ext := DialectExtension{"secure": true}
	cv := NewCreateViewStatementBuilder().
		WithDialExt(ext).
		WithSubType("secure").
		WithType("view").
		Build()

	assert.Equal(t, ext, cv.DialExt)
	assert.Empty(t, cv.Children())
	assert.Equal(t, []string{"dialExt", "subType", "type"}, cv.Fields())
}

func TestSingleNodeFields(t *testing.T) {
	in := NewInBuilder().Build()
	out := NewOutBuilder().Build()
	ds := NewDsBuilder().
		WithOut(out).
		WithName("orders").
		WithIn(in).
		WithTableSample(nil).
		Build()

	sameNodes(t, []Node{out, in}, ds.Children())
	assert.Same(t, in, ds.In)
	assert.Same(t, out, ds.Out)
	assert.True(t, ds.Has("tableSample"))
	assert.Nil(t, ds.TableSample)
}

func TestExpressionFields(t *testing.T) {
	id := attr("id")
	cast := NewCastBuilder().
		WithExpr(id).
		WithDataType("int").
		Build()
	sameNodes(t, []Node{id}, cast.Children())

	raw := NewCastBuilder().WithExpr(Raw{Value: "1"}).Build()
	assert.Empty(t, raw.Children())
	assert.Equal(t, Raw{Value: "1"}, raw.Expr)

	var typedNil *Attr
	skipped := NewCastBuilder().WithExpr(typedNil).Build()
	assert.Empty(t, skipped.Children())
	assert.True(t, skipped.Has("expr"))

	none := NewCastBuilder().WithExpr(nil).Build()
	assert.Empty(t, none.Children())
}

func TestLastWriteWins(t *testing.T) {
	first := attr("a")
	second := attr("b")
	b := NewCaseBuilder().WithAlias("x").WithExpr(first)
	b.WithAlias("y").WithExpr(second)
	c := b.Build()

	assert.Equal(t, "y", c.Alias)
	assert.Same(t, second, c.Expr)
	sameNodes(t, []Node{first, second}, c.Children())
	assert.Equal(t, []string{"alias", "expr"}, c.Fields())
}

func TestBuildTwice(t *testing.T) {
	b := NewSortBuilder().WithPos("0-4")
	assert.False(t, b.Built())
	first := b.Build()
	second := b.Build()
	assert.Same(t, first, second)
	assert.True(t, b.Built())

	e := attr("late")
	b.WithExprs([]Element{e})
	sameNodes(t, []Node{e}, first.Children())
}

func TestAntiPatternPositions(t *testing.T) {
	ap := NewAntiPatternBuilder().
		WithType("AP_01").
		WithName("Ambiguous column").
		WithPos([]string{"7-2", "20-3"}).
		Build()
	assert.Equal(t, []string{"7-2", "20-3"}, ap.Pos)
	assert.Empty(t, ap.Children())
}

func TestStatementKinds(t *testing.T) {
	ds := NewDsBuilder().WithType("root").Build()
	ins := NewInsertStatementBuilder().
		WithPos("0-30").
		WithDs([]Element{ds}).
		Build()

	var s Stmt = ins
	assert.Equal(t, "InsertStatement", s.Kind())
	assert.Equal(t, "0-30", s.Stmt().Pos)
	assert.Equal(t, []*Ds{ds}, s.Stmt().Datasets())
	assert.Same(t, ins, ds.Parent())
}

func TestParsePos(t *testing.T) {
	tests := []struct {
		in      string
		want    Span
		wantErr bool
	}{
		{in: "0-6", want: Span{0, 6}},
		{in: "120-14", want: Span{120, 14}},
		{in: "", wantErr: true},
		{in: "12", wantErr: true},
		{in: "a-2", wantErr: true},
		{in: "3-b", wantErr: true},
		{in: "-1-2", wantErr: true},
		{in: "2-9223372036854775807", wantErr: true},
		{in: "0-9223372036854775807", want: Span{0, math.MaxInt}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePos(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPos)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
	assert.Equal(t, 10, Span{Offset: 4, Length: 6}.End())
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"attr", NewAttrBuilder().WithRefAtt("id").WithPos("7-2").Build(), "Attr refatt=id pos=7-2"},
		{"ds", NewDsBuilder().WithType("physical").WithName("orders").Build(), "Ds type=physical name=orders"},
		{"const", NewConstBuilder().WithValue("1").Build(), "Const value=1"},
		{"statement", NewStatementBuilder().WithPos("0-10").Build(), "Statement pos=0-10"},
		{"wrapped", NewWrappedExprBuilder().Build(), "WrappedExpr"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Label(tt.node))
		})
	}
}

// Children mirror the tree-capable values passed to the builder in call
// order, while each field holds the last value it was given.
func TestBuilderProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := NewFuncBuilder()
		var wantChildren []Node
		var wantName string
		var wantExprs []Element
		var wantSort *Sort

		steps := rapid.IntRange(0, 20).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 3).Draw(t, "op") {
			case 0:
				wantName = rapid.String().Draw(t, "name")
				b.WithName(wantName)
			case 1:
				var elems []Element
				for _, isNode := range rapid.SliceOf(rapid.Bool()).Draw(t, "mix") {
					if isNode {
						a := attr("x")
						elems = append(elems, a)
						wantChildren = append(wantChildren, a)
					} else {
						elems = append(elems, Raw{Value: "raw"})
					}
				}
				wantExprs = elems
				b.WithExprs(elems)
			case 2:
				if rapid.Bool().Draw(t, "nilSort") {
					wantSort = nil
				} else {
					wantSort = NewSortBuilder().Build()
					wantChildren = append(wantChildren, wantSort)
				}
				b.WithSort(wantSort)
			case 3:
				e := NewConstBuilder().Build()
				wantChildren = append(wantChildren, e)
				b.WithExpr(e)
			}
		}

		f := b.Build()
		assert.Same(t, f, b.Build())
		assert.Equal(t, wantName, f.Name)
		require.Len(t, f.Exprs, len(wantExprs))
		for i := range wantExprs {
			assert.Equal(t, wantExprs[i], f.Exprs[i])
		}
		assert.Equal(t, wantSort, f.Sort)
		sameNodes(t, wantChildren, f.Children())
		for _, c := range f.Children() {
			assert.Same(t, f, c.Parent())
		}
	})
}
