// Package query reads SQL query files. A file may open with a YAML header
// in a /*--- ... ---*/ comment naming the query and where to submit it:
//
//	/*---
//	name: monthly_revenue
//	query_id: q-42
//	realm_id: finance
//	---*/
//	SELECT ...
package query

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Header is the parsed frontmatter of a query file.
type Header struct {
	Name    string         `yaml:"name"`
	QueryID string         `yaml:"query_id"`
	RealmID string         `yaml:"realm_id"`
	Tags    []string       `yaml:"tags"`
	Meta    map[string]any `yaml:"meta"` // Extension point for custom fields
}

// File is a query file split into header and SQL.
type File struct {
	Header    Header
	SQL       string // SQL after the header
	HasHeader bool
}

// frontmatterPattern matches a leading /*--- ... ---*/ block.
var frontmatterPattern = regexp.MustCompile(`(?s)^\s*/\*---\s*\n(.*?)\s*---\*/`)

// Parse splits content into its header and SQL. Content without a header
// is returned unchanged.
func Parse(content string) (*File, error) {
	f := &File{SQL: content}

	m := frontmatterPattern.FindStringSubmatchIndex(content)
	if m == nil {
		return f, nil
	}

	f.HasHeader = true
	f.SQL = strings.TrimSpace(content[m[1]:])
	line := strings.Count(content[:m[2]], "\n") + 1

	dec := yaml.NewDecoder(strings.NewReader(content[m[2]:m[3]]))
	dec.KnownFields(true)
	if err := dec.Decode(&f.Header); err != nil && !errors.Is(err, io.EOF) {
		return nil, &HeaderError{Line: line, Err: err}
	}
	return f, nil
}

// ParseBytes is Parse for file contents.
func ParseBytes(data []byte) (*File, error) {
	return Parse(string(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))))
}

// HeaderError reports an invalid header. Line is where the YAML starts.
type HeaderError struct {
	File string
	Line int
	Err  error
}

func (e *HeaderError) Error() string {
	msg := fmt.Sprintf("invalid query header: %v", e.Err)
	if e.File != "" {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, msg)
	}
	return msg
}

func (e *HeaderError) Unwrap() error { return e.Err }
