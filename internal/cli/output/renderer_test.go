package output

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func newTest(mode OutputMode, tty bool) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return NewRendererWithTTY(out, errOut, tty, mode), out, errOut
}

func TestMode(t *testing.T) {
	tests := map[string]OutputMode{
		"":         ModeAuto,
		"auto":     ModeAuto,
		"text":     ModeText,
		"markdown": ModeMarkdown,
		"json":     ModeJSON,
		"yaml":     ModeYAML,
		"xml":      ModeAuto,
	}
	for in, want := range tests {
		assert.Equal(t, want, Mode(in), in)
	}
}

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		mode OutputMode
		tty  bool
		want OutputMode
	}{
		{ModeAuto, true, ModeText},
		{ModeAuto, false, ModeMarkdown},
		{ModeJSON, true, ModeJSON},
		{ModeText, false, ModeText},
	}
	for _, tt := range tests {
		r, _, _ := newTest(tt.mode, tt.tty)
		assert.Equal(t, tt.want, r.EffectiveMode(), "%s tty=%v", tt.mode, tt.tty)
	}
}

func TestMarkdownOutput(t *testing.T) {
	r, out, errOut := newTest(ModeAuto, false)

	r.Header(1, "Tables")
	r.Table([]string{"Name", "Columns"}, [][]string{{"orders", "3"}})
	r.StatusLine("q.sql", "cached", "2 statements")
	r.Success("done")
	r.Warning("careful")

	got := out.String()
	assert.Contains(t, got, "# Tables\n")
	assert.Contains(t, got, "| Name | Columns |")
	assert.Contains(t, got, "| orders | 3 |")
	assert.Contains(t, got, "- cached q.sql (2 statements)")
	assert.Contains(t, got, "done\n")
	assert.Equal(t, "Warning: careful\n", errOut.String())
	assert.False(t, ansi.MatchString(got+errOut.String()))
}

func TestTextOutput(t *testing.T) {
	r, out, errOut := newTest(ModeText, false)

	r.Table([]string{"Name"}, [][]string{{"orders"}})
	r.StatusLine("q.sql", "success", "")
	r.Error("boom")

	got := out.String()
	assert.Contains(t, got, "┌")
	assert.Contains(t, got, "orders")
	assert.Contains(t, got, "✓ q.sql")
	assert.Contains(t, errOut.String(), "✗ boom")
	assert.False(t, ansi.MatchString(got), "no color without a terminal")
}

func TestData(t *testing.T) {
	v := map[string]any{"name": "orders", "columns": []string{"id"}}

	r, out, _ := newTest(ModeJSON, false)
	ok, err := r.Data(v)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"name":"orders","columns":["id"]}`, out.String())

	r, out, _ = newTest(ModeYAML, false)
	ok, err = r.Data(v)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "columns:\n  - id\nname: orders\n", out.String())

	r, out, _ = newTest(ModeText, false)
	ok, err = r.Data(v)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, out.String())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "## Where", FormatHeader(2, "Where"))
	assert.Equal(t, "- **Realm:** r1", FormatKeyValue("Realm", "r1"))
	assert.Equal(t, "- a\n- b", FormatList([]string{"a", "b"}))
	assert.Equal(t, "```sql\nSELECT 1\n```", FormatCodeBlock("sql", "SELECT 1\n"))
}
