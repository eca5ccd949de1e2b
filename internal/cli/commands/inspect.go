package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/flowhigh/internal/cli/output"
	"github.com/leapstack-labs/flowhigh/pkg/model"
	"github.com/leapstack-labs/flowhigh/pkg/submission"
)

// InspectOptions holds options for the inspect command.
type InspectOptions struct {
	SQL      string // Inline SQL
	Response string // Saved response file to read instead of calling the API
}

type antiPatternReport struct {
	Type     string `json:"type" yaml:"type"`
	Name     string `json:"name" yaml:"name"`
	Severity string `json:"severity,omitempty" yaml:"severity,omitempty"`
	Text     string `json:"text,omitempty" yaml:"text,omitempty"`
}

type statementReport struct {
	Kind         string              `json:"kind" yaml:"kind"`
	Outputs      []string            `json:"outputs" yaml:"outputs"`
	Where        []string            `json:"where" yaml:"where"`
	Having       []string            `json:"having" yaml:"having"`
	GroupBy      []string            `json:"groupBy" yaml:"groupBy"`
	OrderBy      []string            `json:"orderBy" yaml:"orderBy"`
	AntiPatterns []antiPatternReport `json:"antiPatterns" yaml:"antiPatterns"`
}

type inspectReport struct {
	Source     string            `json:"source" yaml:"source"`
	Cached     bool              `json:"cached" yaml:"cached"`
	Version    string            `json:"version,omitempty" yaml:"version,omitempty"`
	Status     string            `json:"status,omitempty" yaml:"status,omitempty"`
	Tables     []string          `json:"tables" yaml:"tables"`
	Statements []statementReport `json:"statements" yaml:"statements"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	opts := &InspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show tables, clause columns and anti-patterns of a query",
		Long: `Analyse one SQL source and report what it touches: the tables it reads,
the projected expressions, the columns used by WHERE, HAVING, GROUP BY and
ORDER BY, and the anti-patterns found in each statement.`,
		Example: `  # Inspect a file
  flowhigh inspect orders.sql

  # Inspect a saved response without calling the API
  flowhigh inspect --response orders.json -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.SQL, "sql", "", "SQL text to analyse")
	cmd.Flags().StringVar(&opts.Response, "response", "", "Read a saved API response instead of submitting SQL")

	return cmd
}

func runInspect(cmd *cobra.Command, opts *InspectOptions, args []string) error {
	cc := NewCommandContext(cmd)
	an, err := loadOne(cmd, cc, opts.Response, opts.SQL, args)
	if err != nil {
		return err
	}

	report := buildInspectReport(an)
	ok, err := cc.Renderer.Data(report)
	if err != nil || ok {
		return err
	}
	renderInspect(cc.Renderer, report)
	return nil
}

func buildInspectReport(an *Analysis) *inspectReport {
	s := an.Submission
	root := s.Tree()
	report := &inspectReport{
		Source:  an.Source.Name,
		Cached:  an.Cached,
		Version: root.Version,
		Status:  root.Status,
		Tables:  fullRefs(s.Tables()),
	}

	for _, stmt := range s.Statements() {
		sr := statementReport{
			Kind:    stmt.Kind(),
			Where:   fullRefs(s.WhereColumns(stmt)),
			Having:  fullRefs(s.HavingColumns(stmt)),
			GroupBy: fullRefs(s.GroupByColumns(stmt)),
			OrderBy: fullRefs(s.OrderByColumns(stmt)),
		}
		if outs, err := submission.OutColumns(stmt); err == nil {
			for _, e := range outs {
				sr.Outputs = append(sr.Outputs, exprText(e))
			}
		}
		for _, ap := range submission.AntiPatterns(stmt) {
			sr.AntiPatterns = append(sr.AntiPatterns, antiPatternReport{
				Type:     ap.Type,
				Name:     ap.Name,
				Severity: ap.Severity,
				Text:     antiPatternText(s, ap),
			})
		}
		report.Statements = append(report.Statements, sr)
	}
	return report
}

func fullRefs(dbos []*model.DBO) []string {
	out := make([]string, 0, len(dbos))
	for _, d := range dbos {
		out = append(out, submission.DBOFullRef(d))
	}
	return out
}

func exprText(e model.Element) string {
	switch v := e.(type) {
	case model.Node:
		if t := submission.NodeRawText(v); t != "" {
			return t
		}
		return model.Label(v)
	case model.Raw:
		return v.String()
	}
	return fmt.Sprint(e)
}

// antiPatternText returns the source text of the first node an
// anti-pattern points at.
func antiPatternText(s *submission.Submission, ap *model.AntiPattern) string {
	for _, pos := range ap.Pos {
		if n, ok := s.NodeByPos(pos); ok {
			return submission.NodeRawText(n)
		}
	}
	return ""
}

func renderInspect(r *output.Renderer, rep *inspectReport) {
	source := rep.Source
	if rep.Cached {
		source += " (cached)"
	}
	r.Header(1, source)
	r.Header(2, "Tables")
	rows := make([][]string, 0, len(rep.Tables))
	for _, t := range rep.Tables {
		rows = append(rows, []string{t})
	}
	r.Table([]string{"Table"}, rows)

	for i, st := range rep.Statements {
		r.Println()
		r.Header(2, fmt.Sprintf("Statement %d (%s)", i+1, st.Kind))
		clauses := [][]string{
			{"Outputs", strings.Join(st.Outputs, ", ")},
			{"Where", strings.Join(st.Where, ", ")},
			{"Having", strings.Join(st.Having, ", ")},
			{"Group by", strings.Join(st.GroupBy, ", ")},
			{"Order by", strings.Join(st.OrderBy, ", ")},
		}
		r.Table([]string{"Clause", "Columns"}, clauses)

		if len(st.AntiPatterns) == 0 {
			r.Success("No anti-patterns found")
			continue
		}
		aps := make([][]string, 0, len(st.AntiPatterns))
		for _, ap := range st.AntiPatterns {
			aps = append(aps, []string{ap.Type, ap.Name, ap.Severity, ap.Text})
		}
		r.Table([]string{"Type", "Anti-pattern", "Severity", "At"}, aps)
	}
}
