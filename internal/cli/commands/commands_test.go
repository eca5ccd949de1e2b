package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/flowhigh/internal/cli/output"
	"github.com/leapstack-labs/flowhigh/internal/query"
	"github.com/leapstack-labs/flowhigh/internal/testutil"
	"github.com/leapstack-labs/flowhigh/pkg/submission"
)

func TestCommandMetadata(t *testing.T) {
	tests := []struct {
		ctor  func() *cobra.Command
		use   string
		flags []string
	}{
		{ctor: NewProcessCommand, use: "process [file...]", flags: []string{"sql", "query-name", "refresh", "raw"}},
		{ctor: NewInspectCommand, use: "inspect [file]", flags: []string{"sql", "response"}},
		{ctor: NewTreeCommand, use: "tree [file]", flags: []string{"sql", "response", "ids", "depth"}},
		{ctor: NewFormatCommand, use: "format [file]", flags: []string{"strip", "watch"}},
		{ctor: NewRealmCommand, use: "realm [realm-id]"},
		{ctor: NewCacheCommand, use: "cache"},
	}
	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			cmd := tt.ctor()
			assert.Equal(t, tt.use, cmd.Use)
			assert.NotEmpty(t, cmd.Short, "Short should not be empty")
			for _, f := range tt.flags {
				assert.NotNil(t, cmd.Flags().Lookup(f), "flag %q should exist", f)
			}
		})
	}

	var subs []string
	for _, c := range NewCacheCommand().Commands() {
		subs = append(subs, c.Name())
	}
	assert.ElementsMatch(t, []string{"list", "clear", "rm"}, subs)
}

func TestReadSources(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.sql"), []byte("SELECT 1"), 0o600))

	srcs, err := readSources(strings.NewReader("SELECT 2"), "SELECT 0", []string{
		filepath.Join(dir, "a.sql"),
		filepath.Join(dir, "a"), // extension added
		"-",
	})
	require.NoError(t, err)
	require.Len(t, srcs, 4)
	assert.Equal(t, Source{Name: "<inline>", SQL: "SELECT 0"}, srcs[0])
	assert.Equal(t, "SELECT 1", srcs[1].SQL)
	assert.Equal(t, filepath.Join(dir, "a.sql"), srcs[2].Name)
	assert.Equal(t, Source{Name: "<stdin>", SQL: "SELECT 2"}, srcs[3])

	_, err = readSources(strings.NewReader(""), "", nil)
	assert.ErrorContains(t, err, "no SQL given")

	_, err = readSources(strings.NewReader(""), "", []string{filepath.Join(dir, "missing")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadSourcesHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "revenue.sql")
	content := "/*---\nname: revenue\nquery_id: q-7\nrealm_id: finance\n---*/\nSELECT 1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	srcs, err := readSources(strings.NewReader(""), "", []string{path})
	require.NoError(t, err)
	require.Len(t, srcs, 1)
	assert.Equal(t, Source{
		Name:      path,
		SQL:       "SELECT 1",
		QueryName: "revenue",
		QueryID:   "q-7",
		RealmID:   "finance",
	}, srcs[0])

	bad := filepath.Join(dir, "bad.sql")
	require.NoError(t, os.WriteFile(bad, []byte("/*---\nmaterialized: view\n---*/\nSELECT 1"), 0o600))
	_, err = readSources(strings.NewReader(""), "", []string{bad})
	var he *query.HeaderError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, bad, he.File)
	assert.ErrorContains(t, err, bad+":2:")
}

func loadOrders(t *testing.T) *Analysis {
	t.Helper()
	sub, err := submission.Parse(testutil.OrdersResponse())
	require.NoError(t, err)
	return &Analysis{Source: Source{Name: "orders.sql", SQL: testutil.OrdersSQL}, Submission: sub}
}

func TestBuildInspectReport(t *testing.T) {
	rep := buildInspectReport(loadOrders(t))

	assert.Equal(t, "1.0.11", rep.Version)
	assert.Equal(t, "OK", rep.Status)
	assert.Equal(t, []string{"shop.public.orders"}, rep.Tables)
	require.Len(t, rep.Statements, 1)

	st := rep.Statements[0]
	assert.Equal(t, "Statement", st.Kind)
	assert.Equal(t, []string{"o.id", "SUM(o.amount)"}, st.Outputs)
	assert.Equal(t, []string{"shop.public.orders.status"}, st.Where)
	assert.Equal(t, []string{"shop.public.orders.amount"}, st.Having)
	assert.Equal(t, []string{"shop.public.orders.id"}, st.GroupBy)
	assert.Equal(t, []string{"shop.public.orders.amount"}, st.OrderBy)
	assert.Equal(t, []antiPatternReport{{Type: "AP_04", Name: "Ordinal in ORDER BY", Severity: "warning", Text: "2"}}, st.AntiPatterns)
}

func TestRenderInspectMarkdown(t *testing.T) {
	out := &strings.Builder{}
	r := output.NewRendererWithTTY(out, &strings.Builder{}, false, output.ModeMarkdown)
	renderInspect(r, buildInspectReport(loadOrders(t)))

	got := out.String()
	assert.Contains(t, got, "# orders.sql\n")
	assert.Contains(t, got, "## Statement 1 (Statement)")
	assert.Contains(t, got, "| shop.public.orders |")
	assert.Contains(t, got, "| Where | shop.public.orders.status |")
	assert.Contains(t, got, "| AP_04 | Ordinal in ORDER BY | warning | 2 |")
}

func TestBuildTree(t *testing.T) {
	root := loadOrders(t).Submission.Tree()

	full := buildTree(root, 0, 1)
	assert.Equal(t, "ParSeQL pos=0-128", full.Label)
	require.Len(t, full.Children, 2)
	assert.Equal(t, "Statement pos=0-128", full.Children[0].Label)
	assert.True(t, strings.HasPrefix(full.Children[1].Label, "DBOHier"))

	shallow := buildTree(root, 2, 1)
	require.Len(t, shallow.Children, 2)
	assert.Empty(t, shallow.Children[0].Children)
}

func TestOneLine(t *testing.T) {
	assert.Equal(t, "SELECT 1 FROM t", oneLine("SELECT 1\n  FROM t", 20))
	assert.Equal(t, "SELECT ...", oneLine("SELECT a, b FROM t", 10))
	assert.Equal(t, "äöü", oneLine("äöü", 3))
	assert.Equal(t, "abc", shortKey("abc"))
	assert.Equal(t, "0123456789ab", shortKey("0123456789abcdef"))
}
