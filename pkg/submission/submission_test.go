package submission

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/flowhigh/internal/testutil"
	"github.com/leapstack-labs/flowhigh/pkg/model"
)

func load(t *testing.T) *Submission {
	t.Helper()
	s, err := Parse(testutil.OrdersResponse())
	require.NoError(t, err)
	return s
}

func firstStatement(t *testing.T, s *Submission) model.Stmt {
	t.Helper()
	stmts := s.Statements()
	require.Len(t, stmts, 1)
	return stmts[0]
}

func names(dbos []*model.DBO) []string {
	out := make([]string, 0, len(dbos))
	for _, d := range dbos {
		out = append(out, d.Name)
	}
	return out
}

func TestMessages(t *testing.T) {
	s := load(t)
	assert.Contains(t, s.XMLMessage(), "<parSeQL")

	data, err := s.JSONMessage()
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.NotContains(t, m, "xml")
	assert.Equal(t, "OK", m["status"])
}

func TestMainDataset(t *testing.T) {
	s := load(t)
	stmt := firstStatement(t, s)

	ds, err := MainDataset(stmt)
	require.NoError(t, err)
	assert.Equal(t, "root", ds.Type)

	in, err := Input(stmt)
	require.NoError(t, err)
	require.Len(t, in.Exprs, 1)
	assert.Equal(t, "orders", in.Exprs[0].(*model.Ds).Name)

	cols, err := OutColumns(stmt)
	require.NoError(t, err)
	require.Len(t, cols, 2)
	assert.Equal(t, "SUM", cols[1].(*model.Func).Name)

	_, err = MainDataset(model.NewStatementBuilder().Build())
	assert.ErrorIs(t, err, ErrNoMainDataset)
}

func TestAntiPatterns(t *testing.T) {
	s := load(t)
	stmt := firstStatement(t, s)

	aps := AntiPatterns(stmt)
	require.Len(t, aps, 1)
	assert.Equal(t, "AP_04", aps[0].Type)
	assert.Equal(t, aps, s.AllAntiPatterns())

	grouped := model.NewAntiPatternsBuilder().
		WithAntiPatterns([]model.Element{aps[0], model.Raw{Value: "x"}}).
		Build()
	st := model.NewStatementBuilder().WithAntiPatterns([]model.Element{grouped}).Build()
	assert.Len(t, AntiPatterns(st), 1)
}

func TestNodeRawText(t *testing.T) {
	s := load(t)
	stmt := firstStatement(t, s)

	cols, err := OutColumns(stmt)
	require.NoError(t, err)

	tests := []struct {
		name string
		node model.Node
		want string
	}{
		{"attr", cols[0].(model.Node), "o.id"},
		{"func", cols[1].(model.Node), "SUM(o.amount)"},
		{"statement collapses whitespace", stmt, "SELECT o.id, SUM(o.amount) AS total FROM shop.public.orders o WHERE o.status = 'paid' GROUP BY o.id HAVING total > 10 ORDER BY 2"},
		{"no position", model.NewWrappedExprBuilder().Build(), ""},
		{"detached", model.NewAttrBuilder().WithPos("0-3").Build(), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NodeRawText(tt.node))
		})
	}
	assert.Equal(t, testutil.OrdersSQL, RawQuery(stmt))
}

func TestNodeRawTextCountsCharacters(t *testing.T) {
	attr := model.NewAttrBuilder().WithPos("7-5").Build()
	model.NewStatementBuilder().
		WithRawInput("SELECT \"ü\" FROM t").
		WithDs([]model.Element{attr}).
		Build()
	assert.Equal(t, "\"ü\" F", NodeRawText(attr))
}

func TestSearch(t *testing.T) {
	s := load(t)

	n, ok := s.NodeByID(1)
	require.True(t, ok)
	assert.Equal(t, "AntiPattern", n.Kind())

	_, ok = s.NodeByID(1000)
	assert.False(t, ok)

	n, ok = s.NodeByPos("13-13")
	require.True(t, ok)
	assert.Equal(t, "SUM", n.(*model.Func).Name)

	n, ok = s.OriginReference("41-20")
	require.True(t, ok)
	assert.Equal(t, "orders", n.(*model.Ds).Name)

	_, ok = s.NodeByPos("")
	assert.False(t, ok)

	attrs := NodesOfType[*model.Attr](s)
	assert.Len(t, attrs, 6)
}

func TestDBOHierarchy(t *testing.T) {
	s := load(t)

	top := s.DBOHierarchy()
	require.Len(t, top, 1)
	assert.Equal(t, "SHOP", top[0].Name)

	tables := s.Tables()
	require.Len(t, tables, 1)
	assert.Equal(t, "ORDERS", tables[0].Name)
	assert.Equal(t, []string{"ID", "AMOUNT", "Status"}, names(TableColumns(tables[0])))

	status, ok := s.ObjectFromDBOHier("C3")
	require.True(t, ok)
	assert.Equal(t, "shop.public.orders.status", DBOFullRef(status))
	assert.Equal(t, "shop.public.orders", DBOFullRef(tables[0]))
	assert.Equal(t, "shop", DBOFullRef(top[0]))
	assert.Empty(t, DBOFullRef(nil))

	_, ok = s.ObjectFromDBOHier("missing")
	assert.False(t, ok)
}

func TestClauseColumns(t *testing.T) {
	s := load(t)
	stmt := firstStatement(t, s)

	assert.Equal(t, []string{"Status"}, names(s.WhereColumns(stmt)))
	assert.Equal(t, []string{"AMOUNT"}, names(s.HavingColumns(stmt)))
	assert.Equal(t, []string{"ID"}, names(s.GroupByColumns(stmt)))
	assert.Equal(t, []string{"AMOUNT"}, names(s.OrderByColumns(stmt)))
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(`[1,2]`))
	require.Error(t, err)

	_, err = Parse([]byte(`{"eltype":"Statement"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want ParSeQL")

	_, err = Parse([]byte(`{`))
	require.Error(t, err)
}

func TestNodeRawTextOversizedSpan(t *testing.T) {
	tests := []struct {
		name string
		pos  string
		want string
	}{
		{"length overflows offset", "2-9223372036854775807", ""},
		{"length reaches max int", "0-9223372036854775807", "SELECT 1"},
		{"length past end", "7-100", "1"},
		{"offset past end", "50-1", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := model.NewAttrBuilder().WithPos(tt.pos).Build()
			model.NewStatementBuilder().
				WithRawInput("SELECT 1").
				WithDs([]model.Element{attr}).
				Build()
			assert.NotPanics(t, func() { NodeRawText(attr) })
			assert.Equal(t, tt.want, NodeRawText(attr))
		})
	}
}
