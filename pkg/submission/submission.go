// Package submission answers questions about one analysed SQL submission:
// its statements and datasets, the database objects they touch, the source
// text behind each node and the columns used by each clause.
package submission

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/leapstack-labs/flowhigh/pkg/convert"
	"github.com/leapstack-labs/flowhigh/pkg/model"
	"github.com/leapstack-labs/flowhigh/pkg/tree"
)

// ErrNoMainDataset is returned when a statement has no root dataset.
var ErrNoMainDataset = errors.New("statement has no root dataset")

// Submission wraps a decoded analysis response.
type Submission struct {
	message map[string]any
	root    *model.ParSeQL
	reg     *tree.Registry
}

// Parse decodes a raw response body.
func Parse(data []byte, opts ...convert.Option) (*Submission, error) {
	v, err := convert.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	msg, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is %T, want an object: %w", v, convert.ErrFieldType)
	}
	return New(msg, opts...)
}

// New converts an already unmarshalled response.
func New(message map[string]any, opts ...convert.Option) (*Submission, error) {
	c := convert.New(opts...)
	e, err := c.Convert(message)
	if err != nil {
		return nil, err
	}
	root, ok := e.(*model.ParSeQL)
	if !ok {
		return nil, fmt.Errorf("response root is %T, want ParSeQL: %w", e, convert.ErrFieldType)
	}
	return &Submission{message: message, root: root, reg: c.Registry()}, nil
}

// JSONMessage returns the response without its xml rendition, indented.
func (s *Submission) JSONMessage() ([]byte, error) {
	out := make(map[string]any, len(s.message))
	for k, v := range s.message {
		if k != "xml" {
			out[k] = v
		}
	}
	return json.MarshalIndent(out, "", "    ")
}

// XMLMessage returns the xml rendition of the response, if any.
func (s *Submission) XMLMessage() string {
	x, _ := s.message["xml"].(string)
	return x
}

// Tree returns the root of the converted tree.
func (s *Submission) Tree() *model.ParSeQL { return s.root }

// Registry returns the index of every converted node.
func (s *Submission) Registry() *tree.Registry { return s.reg }

// Statements returns the analysed statements in submission order.
func (s *Submission) Statements() []model.Stmt {
	var out []model.Stmt
	for _, e := range s.root.Statements {
		if st, ok := e.(model.Stmt); ok {
			out = append(out, st)
		}
	}
	return out
}

// MainDataset returns the dataset of type root.
func MainDataset(stmt model.Stmt) (*model.Ds, error) {
	for _, ds := range stmt.Stmt().Datasets() {
		if ds.Type == "root" {
			return ds, nil
		}
	}
	return nil, ErrNoMainDataset
}

// Input returns the inputs of the statement's main dataset.
func Input(stmt model.Stmt) (*model.In, error) {
	ds, err := MainDataset(stmt)
	if err != nil {
		return nil, err
	}
	return ds.In, nil
}

// OutColumns returns the projection of the statement's main dataset.
func OutColumns(stmt model.Stmt) ([]model.Element, error) {
	ds, err := MainDataset(stmt)
	if err != nil {
		return nil, err
	}
	if ds.Out == nil {
		return nil, nil
	}
	return ds.Out.Exprs, nil
}

// AntiPatterns returns the anti-patterns reported for stmt. Grouping
// AntiPatterns elements are flattened.
func AntiPatterns(stmt model.Stmt) []*model.AntiPattern {
	return flattenAntiPatterns(stmt.Stmt().AntiPatterns)
}

func flattenAntiPatterns(elems []model.Element) []*model.AntiPattern {
	var out []*model.AntiPattern
	for _, e := range elems {
		switch v := e.(type) {
		case *model.AntiPattern:
			out = append(out, v)
		case *model.AntiPatterns:
			out = append(out, flattenAntiPatterns(v.AntiPatterns)...)
		}
	}
	return out
}

// AllAntiPatterns returns the anti-patterns of every statement.
func (s *Submission) AllAntiPatterns() []*model.AntiPattern {
	var out []*model.AntiPattern
	for _, st := range s.Statements() {
		out = append(out, AntiPatterns(st)...)
	}
	return out
}

// NodesOfType returns every converted node of type T in registry order.
func NodesOfType[T tree.Node](s *Submission) []T {
	return tree.OfType[T](s.reg.All())
}

// RawQuery returns the SQL text of stmt.
func RawQuery(stmt model.Stmt) string {
	return stmt.Stmt().RawInput
}

// NodeRawText returns the source text covered by n's position, with runs
// of whitespace collapsed to single spaces. Positions count characters,
// not bytes.
func NodeRawText(n model.Node) string {
	pos, ok := model.PosOf(n)
	if !ok || pos == "" {
		return ""
	}
	span, err := model.ParsePos(pos)
	if err != nil {
		return ""
	}
	var raw string
	if st, ok := n.(model.Stmt); ok {
		raw = st.Stmt().RawInput
	} else if st, ok := tree.AncestorOf[model.Stmt](n); ok {
		raw = st.Stmt().RawInput
	}
	text := []rune(raw)
	if span.Offset >= len(text) {
		return ""
	}
	end := len(text)
	if span.Length < end-span.Offset {
		end = span.Offset + span.Length
	}
	return strings.Join(strings.Fields(string(text[span.Offset:end])), " ")
}

// NodeByID returns the node registered under id.
func (s *Submission) NodeByID(id int) (model.Node, bool) {
	n, ok := s.reg.Lookup(id)
	if !ok {
		return nil, false
	}
	return n.(model.Node), true
}

// NodeByPos returns the first registered node at pos.
func (s *Submission) NodeByPos(pos string) (model.Node, bool) {
	if pos == "" {
		return nil, false
	}
	n, ok := s.reg.Find(func(n tree.Node) bool {
		p, ok := model.PosOf(n.(model.Node))
		return ok && p == pos
	})
	if !ok {
		return nil, false
	}
	return n.(model.Node), true
}

// OriginReference resolves an sref to the node it points at.
func (s *Submission) OriginReference(sref string) (model.Node, bool) {
	return s.NodeByPos(sref)
}

// DBOHierarchy returns the top level database objects.
func (s *Submission) DBOHierarchy() []*model.DBO {
	if s.root.DBOHier == nil {
		return nil
	}
	return dbos(s.root.DBOHier.DBOs)
}

func dbos(elems []model.Element) []*model.DBO {
	var out []*model.DBO
	for _, e := range elems {
		if d, ok := e.(*model.DBO); ok {
			out = append(out, d)
		}
	}
	return out
}

// Tables returns every object of type TABLE in the hierarchy.
func (s *Submission) Tables() []*model.DBO {
	var out []*model.DBO
	for _, d := range s.DBOHierarchy() {
		for _, t := range tree.DescendantsOf[*model.DBO](d, true) {
			if t.Type == "TABLE" {
				out = append(out, t)
			}
		}
	}
	return out
}

// TableColumns returns the objects nested under table.
func TableColumns(table *model.DBO) []*model.DBO {
	return dbos(table.DBOs)
}

// ObjectFromDBOHier looks up a database object by its oid.
func (s *Submission) ObjectFromDBOHier(oref string) (*model.DBO, bool) {
	if oref == "" {
		return nil, false
	}
	for _, d := range s.DBOHierarchy() {
		for _, c := range tree.DescendantsOf[*model.DBO](d, true) {
			if c.OID == oref {
				return c, true
			}
		}
	}
	return nil, false
}

var fold = cases.Fold()

// DBOFullRef returns the dotted path of dbo within the hierarchy, e.g.
// "shop.public.orders.id". Every segment is case folded, the top-level one
// included.
func DBOFullRef(dbo *model.DBO) string {
	if dbo == nil {
		return ""
	}
	var parts []string
	for d := dbo; d != nil; {
		if d.Name != "" {
			parts = append(parts, fold.String(d.Name))
		}
		p, ok := d.Parent().(*model.DBO)
		if !ok {
			break
		}
		d = p
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}

// columnSet keeps database objects unique in first-seen order.
type columnSet struct {
	seen map[*model.DBO]bool
	list []*model.DBO
}

func (c *columnSet) add(d *model.DBO) {
	if d == nil || c.seen[d] {
		return
	}
	if c.seen == nil {
		c.seen = make(map[*model.DBO]bool)
	}
	c.seen[d] = true
	c.list = append(c.list, d)
}

func filters(ds *model.Ds, typ string) []model.Node {
	var out []model.Node
	for _, m := range ds.Modifiers {
		f, ok := m.(*model.Filter)
		if !ok || f.Type != typ {
			continue
		}
		if op, ok := f.Op.(model.Node); ok {
			out = append(out, op)
		}
	}
	return out
}

// WhereColumns returns the database columns referenced by WHERE clauses.
func (s *Submission) WhereColumns(stmt model.Stmt) []*model.DBO {
	var cols columnSet
	tree.Walk(stmt, func(n tree.Node) bool {
		ds, ok := n.(*model.Ds)
		if !ok {
			return true
		}
		for _, op := range filters(ds, "filtreg") {
			for _, a := range tree.DescendantsOf[*model.Attr](op, true) {
				if d, ok := s.ObjectFromDBOHier(a.ORef); ok {
					cols.add(d)
				}
			}
		}
		return true
	})
	return cols.list
}

// HavingColumns returns the database columns referenced by HAVING
// clauses. Attributes naming a projection alias are followed to the
// projected expression.
func (s *Submission) HavingColumns(stmt model.Stmt) []*model.DBO {
	var cols columnSet
	tree.Walk(stmt, func(n tree.Node) bool {
		ds, ok := n.(*model.Ds)
		if !ok {
			return true
		}
		s.resolve(filters(ds, "filtagg"), nil, &cols)
		return true
	})
	return cols.list
}

// GroupByColumns returns the database columns referenced by GROUP BY.
// Ordinals and aliases are resolved through the dataset projection.
func (s *Submission) GroupByColumns(stmt model.Stmt) []*model.DBO {
	var cols columnSet
	for _, agg := range tree.DescendantsOf[*model.Agg](stmt, true) {
		s.resolve(nodes(agg.Exprs), projection(agg), &cols)
	}
	return cols.list
}

// OrderByColumns returns the database columns referenced by ORDER BY.
// Ordinals and aliases are resolved through the dataset projection.
func (s *Submission) OrderByColumns(stmt model.Stmt) []*model.DBO {
	var cols columnSet
	for _, sort := range tree.DescendantsOf[*model.Sort](stmt, true) {
		s.resolve(nodes(sort.Exprs), projection(sort), &cols)
	}
	return cols.list
}

func nodes(elems []model.Element) []model.Node {
	var out []model.Node
	for _, e := range elems {
		if n, ok := e.(model.Node); ok {
			out = append(out, n)
		}
	}
	return out
}

func projection(n model.Node) *model.Out {
	ds, ok := tree.AncestorOf[*model.Ds](n)
	if !ok {
		return nil
	}
	return ds.Out
}

// resolve collects the columns behind the attributes of exprs. An
// attribute with refoutidx is replaced by the projected expression at that
// 1-based index, one with sref by the node it references. Anything else is
// looked up in the object hierarchy.
func (s *Submission) resolve(exprs []model.Node, out *model.Out, cols *columnSet) {
	visited := make(map[model.Node]bool)
	for len(exprs) > 0 {
		e := exprs[0]
		exprs = exprs[1:]
		if visited[e] {
			continue
		}
		visited[e] = true
		for _, a := range tree.DescendantsOf[*model.Attr](e, true) {
			if a.RefOutIdx != "" && out != nil {
				if target, ok := projected(out, a.RefOutIdx); ok {
					exprs = append(exprs, target)
				}
				continue
			}
			if a.SRef != "" {
				if target, ok := s.OriginReference(a.SRef); ok {
					exprs = append(exprs, target)
				}
				continue
			}
			if d, ok := s.ObjectFromDBOHier(a.ORef); ok {
				cols.add(d)
			}
		}
	}
}

func projected(out *model.Out, idx string) (model.Node, bool) {
	i, err := strconv.Atoi(idx)
	if err != nil || i < 1 || i > len(out.Exprs) {
		return nil, false
	}
	n, ok := out.Exprs[i-1].(model.Node)
	return n, ok
}
