// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/flowhigh/internal/cli/config"
	"github.com/leapstack-labs/flowhigh/internal/cli/output"
	fixtures "github.com/leapstack-labs/flowhigh/internal/testutil"
)

// Isolate runs the test from a fresh directory with no FLOWHIGH_*
// variables and no user config, and returns that directory.
func Isolate(t *testing.T) string {
	t.Helper()
	config.ResetConfig()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	t.Setenv("HOME", dir)
	for _, kv := range os.Environ() {
		if name, _, _ := strings.Cut(kv, "="); strings.HasPrefix(name, config.EnvPrefix) {
			t.Setenv(name, "")
			_ = os.Unsetenv(name)
		}
	}
	return dir
}

// SetupTestProject writes orders.sql and a flowhigh.yaml pointing at apiURL
// into dir.
func SetupTestProject(t *testing.T, dir, apiURL string) {
	t.Helper()
	files := map[string]string{
		"orders.sql":    fixtures.OrdersSQL,
		"flowhigh.yaml": "api_url: " + apiURL + "\ntoken: test-token\nrealm_id: realm-1\ncache_path: .flowhigh/cache.db\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}
}

// FakeAPI is an in-process stand-in for the FlowHigh API. Every processed
// query gets the recorded orders response.
type FakeAPI struct {
	*httptest.Server

	ProcessCalls atomic.Int32

	mu       sync.Mutex
	lastBody map[string]any
}

// NewFakeAPI starts a FakeAPI that is closed when the test ends.
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()
	api := &FakeAPI{}
	r := chi.NewRouter()
	r.Post("/api/process", func(w http.ResponseWriter, req *http.Request) {
		api.ProcessCalls.Add(1)
		if req.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var body map[string]any
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		api.mu.Lock()
		api.lastBody = body
		api.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(fixtures.OrdersResponse())
	})
	r.Post("/api/realm", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"queries": []map[string]any{
			{"queryID": "q1", "queryName": "orders", "sql": fixtures.OrdersSQL, "created": "2024-05-02", "realm": req.URL.Query().Get("realmID")},
		}})
	})
	api.Server = httptest.NewServer(r)
	t.Cleanup(api.Close)
	return api
}

// LastBody returns the last decoded /api/process request body.
func (a *FakeAPI) LastBody() map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastBody
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a new test renderer with the specified mode and TTY state.
func NewTestRenderer(mode output.OutputMode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, isTTY, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// Output returns the stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ErrorOutput returns the stderr output as a string.
func (tr *TestRenderer) ErrorOutput() string {
	return tr.ErrOut.String()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// AssertValidMarkdown checks for unclosed code fences and empty headers.
func AssertValidMarkdown(t *testing.T, md string) {
	t.Helper()
	if n := strings.Count(md, "```"); n%2 != 0 {
		t.Errorf("unbalanced code fences in markdown: found %d occurrences", n)
	}
	for i, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") && strings.TrimLeft(trimmed, "# ") == "" {
			t.Errorf("empty header at line %d: %q", i+1, line)
		}
	}
}

// Runner is the part of *cobra.Command that Run needs.
type Runner interface {
	SetArgs(args []string)
	SetOut(w io.Writer)
	SetErr(w io.Writer)
	SetIn(r io.Reader)
	Execute() error
}

// Run executes cmd with args and stdin, returning stdout and stderr.
func Run(cmd Runner, stdin string, args ...string) (string, string, error) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}
