package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clitest "github.com/leapstack-labs/flowhigh/internal/cli/testutil"
	"github.com/leapstack-labs/flowhigh/internal/testutil"
)

func setup(t *testing.T) (*clitest.FakeAPI, string) {
	t.Helper()
	dir := clitest.Isolate(t)
	api := clitest.NewFakeAPI(t)
	clitest.SetupTestProject(t, dir, api.URL)
	return api, dir
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	return clitest.Run(NewRootCmd(), stdin, args...)
}

func TestProcessUsesCache(t *testing.T) {
	api, dir := setup(t)

	out, _, err := run(t, "", "process", "orders.sql", "-o", "json")
	require.NoError(t, err)

	var results []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "orders.sql", results[0]["source"])
	assert.Equal(t, false, results[0]["cached"])
	assert.EqualValues(t, 1, results[0]["statements"])
	assert.EqualValues(t, 1, results[0]["antiPatterns"])
	assert.EqualValues(t, 1, api.ProcessCalls.Load())
	assert.Equal(t, "realm-1", api.LastBody()["realmID"])
	assert.FileExists(t, filepath.Join(dir, ".flowhigh", "cache.db"))

	out, _, err = run(t, "", "process", "orders", "-o", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.Equal(t, true, results[0]["cached"])
	assert.EqualValues(t, 1, api.ProcessCalls.Load(), "second run is served from the cache")

	_, _, err = run(t, "", "process", "orders.sql", "--refresh", "-o", "json")
	require.NoError(t, err)
	assert.EqualValues(t, 2, api.ProcessCalls.Load())

	_, _, err = run(t, "", "process", "orders.sql", "--no-cache", "-o", "json")
	require.NoError(t, err)
	assert.EqualValues(t, 3, api.ProcessCalls.Load())
}

func TestProcessQueryHeader(t *testing.T) {
	api, dir := setup(t)
	header := "/*---\nname: orders_by_amount\nquery_id: q-1\nrealm_id: realm-2\n---*/\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "named.sql"), []byte(header+testutil.OrdersSQL), 0o600))

	_, _, err := run(t, "", "process", "named.sql", "-o", "json")
	require.NoError(t, err)
	body := api.LastBody()
	assert.Equal(t, "realm-2", body["realmID"])
	assert.Equal(t, "q-1", body["queryID"])
	assert.Equal(t, "orders_by_amount", body["queryName"])

	// same SQL under another realm is a separate cache entry
	_, _, err = run(t, "", "process", "orders.sql", "-o", "json")
	require.NoError(t, err)
	assert.EqualValues(t, 2, api.ProcessCalls.Load())
}

func TestProcessConcurrent(t *testing.T) {
	api, dir := setup(t)
	var args []string
	for _, name := range []string{"a.sql", "b.sql", "c.sql"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT '"+name+"'"), 0o600))
		args = append(args, name)
	}

	out, _, err := run(t, "", append([]string{"process", "-j", "2", "-o", "markdown"}, args...)...)
	require.NoError(t, err)
	clitest.AssertValidMarkdown(t, out)
	clitest.AssertNoANSI(t, out)
	for _, name := range []string{"a.sql", "b.sql", "c.sql"} {
		assert.Contains(t, out, "| "+name+" | ok |")
	}
	assert.EqualValues(t, 3, api.ProcessCalls.Load())
}

func TestProcessReportsFailures(t *testing.T) {
	_, dir := setup(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flowhigh.yaml"),
		[]byte("api_url: http://127.0.0.1:1\ntoken: test-token\nno_cache: true\n"), 0o600))

	out, _, err := run(t, "", "process", "orders.sql", "-o", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 submissions failed")
	assert.Contains(t, out, "source: orders.sql")
	assert.Contains(t, out, "error:")
}

func TestProcessRaw(t *testing.T) {
	setup(t)

	out, _, err := run(t, testutil.OrdersSQL, "process", "-", "--raw", "-o", "json")
	require.NoError(t, err)
	var results []struct {
		Source   string         `json:"source"`
		Response map[string]any `json:"response"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "<stdin>", results[0].Source)
	assert.Equal(t, "ParSeQL", results[0].Response["eltype"])
	assert.NotContains(t, results[0].Response, "xml")
}

func TestInspect(t *testing.T) {
	setup(t)

	out, _, err := run(t, "", "inspect", "orders.sql", "-o", "json")
	require.NoError(t, err)

	var rep struct {
		Tables     []string `json:"tables"`
		Statements []struct {
			Where []string `json:"where"`
		} `json:"statements"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, []string{"shop.public.orders"}, rep.Tables)
	require.Len(t, rep.Statements, 1)
	assert.Equal(t, []string{"shop.public.orders.status"}, rep.Statements[0].Where)
}

func TestInspectSavedResponse(t *testing.T) {
	api, dir := setup(t)
	path := filepath.Join(dir, "orders.json")
	require.NoError(t, os.WriteFile(path, testutil.OrdersResponse(), 0o600))

	out, _, err := run(t, "", "inspect", "--response", path, "-o", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "| AP_04 | Ordinal in ORDER BY | warning | 2 |")
	assert.Zero(t, api.ProcessCalls.Load())
}

func TestTree(t *testing.T) {
	_, dir := setup(t)
	path := filepath.Join(dir, "orders.json")
	require.NoError(t, os.WriteFile(path, testutil.OrdersResponse(), 0o600))

	out, _, err := run(t, "", "tree", "--response", path, "--depth", "2", "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "ParSeQL pos=0-128\n  Statement pos=0-128\n  DBOHier\n", out)

	out, _, err = run(t, "", "tree", "--response", path, "--ids", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "[29] ParSeQL")
	assert.Regexp(t, `\n {8}\[\d+\] DBO type=TABLE name=ORDERS\n`, out)
}

func TestFormat(t *testing.T) {
	_, dir := setup(t)

	out, _, err := run(t, "SELECT a✖FROM t", "format", "--style", "compact")
	require.NoError(t, err)
	assert.Equal(t, "SELECT a\nFROM t\n", out)

	path := filepath.Join(dir, "marked.sql")
	require.NoError(t, os.WriteFile(path, []byte("SELECT⚓ a ✖FROM t"), 0o600))
	out, _, err = run(t, "", "format", path, "--strip")
	require.NoError(t, err)
	assert.Equal(t, "SELECT a FROM t\n", out)

	_, _, err = run(t, "", "format", "--watch")
	assert.ErrorContains(t, err, "--watch needs a file")

	_, _, err = run(t, "", "format", path, "--style", "roomy")
	assert.ErrorContains(t, err, "unknown format style")
}

func TestCacheCommands(t *testing.T) {
	setup(t)

	_, _, err := run(t, "", "process", "orders.sql", "-o", "json")
	require.NoError(t, err)

	out, _, err := run(t, "", "cache", "list", "-o", "json")
	require.NoError(t, err)
	var entries []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, testutil.OrdersSQL, entries[0]["sql"])
	assert.Equal(t, "realm-1", entries[0]["realmID"])
	key := entries[0]["key"].(string)

	out, _, err = run(t, "", "cache", "list", "-o", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "# Cached responses (1)")
	assert.Contains(t, out, key[:12])

	_, _, err = run(t, "", "cache", "rm", "zzz")
	assert.Error(t, err)

	out, _, err = run(t, "", "cache", "rm", key[:8], "-o", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed "+key[:12])

	out, _, err = run(t, "", "cache", "clear", "-o", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 0 cached responses")

	_, _, err = run(t, "", "cache", "list", "--no-cache")
	assert.ErrorContains(t, err, "cache is disabled")
}

func TestRealm(t *testing.T) {
	setup(t)

	out, _, err := run(t, "", "realm", "-o", "json")
	require.NoError(t, err)
	var queries []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &queries))
	require.Len(t, queries, 1)
	assert.Equal(t, "q1", queries[0]["queryID"])
	assert.Equal(t, map[string]any{"realm": "realm-1"}, queries[0]["extra"])
}

func TestUnauthorized(t *testing.T) {
	_, dir := setup(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flowhigh.yaml"),
		[]byte("token: wrong\nno_cache: true\n"), 0o600))
	api := clitest.NewFakeAPI(t)

	_, _, err := run(t, "", "inspect", "orders.sql", "--api-url", api.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestInvalidConfig(t *testing.T) {
	setup(t)
	_, _, err := run(t, "", "process", "orders.sql", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestVerboseLogsToStderr(t *testing.T) {
	setup(t)
	_, errOut, err := run(t, "", "process", "orders.sql", "-v", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, errOut, "using config file")
	assert.True(t, strings.Contains(errOut, "level=DEBUG"))
}

func TestCompletion(t *testing.T) {
	out, _, err := run(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "flowhigh")
}
