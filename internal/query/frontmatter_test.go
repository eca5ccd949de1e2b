package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Header(t *testing.T) {
	content := `/*---
name: monthly_revenue
query_id: q-42
realm_id: finance
tags: [revenue, monthly]
meta:
  owner: data-team
---*/

SELECT * FROM orders`

	f, err := Parse(content)
	require.NoError(t, err)

	assert.True(t, f.HasHeader)
	assert.Equal(t, Header{
		Name:    "monthly_revenue",
		QueryID: "q-42",
		RealmID: "finance",
		Tags:    []string{"revenue", "monthly"},
		Meta:    map[string]any{"owner": "data-team"},
	}, f.Header)
	assert.Equal(t, "SELECT * FROM orders", f.SQL)
}

func TestParse_NoHeader(t *testing.T) {
	tests := []string{
		"SELECT 1",
		"",
		"/* plain comment */ SELECT 1",
		"SELECT 1 /*---\nname: late\n---*/",
	}
	for _, content := range tests {
		f, err := Parse(content)
		require.NoError(t, err, content)
		assert.False(t, f.HasHeader, content)
		assert.Equal(t, content, f.SQL)
		assert.Equal(t, Header{}, f.Header)
	}
}

func TestParse_EmptyHeader(t *testing.T) {
	f, err := Parse("/*---\n---*/\nSELECT 1")
	require.NoError(t, err)
	assert.True(t, f.HasHeader)
	assert.Equal(t, "SELECT 1", f.SQL)
}

func TestParse_LeadingWhitespaceAndBOM(t *testing.T) {
	f, err := ParseBytes([]byte("\xef\xbb\xbf\n  /*---\nname: x\n---*/\nSELECT 1"))
	require.NoError(t, err)
	assert.Equal(t, "x", f.Header.Name)
	assert.Equal(t, "SELECT 1", f.SQL)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		substr  string
	}{
		{
			name:    "unknown field",
			content: "/*---\nname: x\nmaterialized: table\n---*/\nSELECT 1",
			substr:  "field materialized not found",
		},
		{
			name:    "invalid yaml",
			content: "/*---\nname: [unclosed\n---*/\nSELECT 1",
			substr:  "invalid query header",
		},
		{
			name:    "wrong type",
			content: "/*---\ntags: nope\n---*/\nSELECT 1",
			substr:  "cannot unmarshal",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.content)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.substr)

			var he *HeaderError
			require.True(t, errors.As(err, &he))
			assert.Equal(t, 2, he.Line)
		})
	}
}

func TestHeaderError_File(t *testing.T) {
	err := &HeaderError{File: "q.sql", Line: 2, Err: errors.New("boom")}
	assert.Equal(t, "q.sql:2: invalid query header: boom", err.Error())
	assert.ErrorIs(t, err, err.Err)
}
