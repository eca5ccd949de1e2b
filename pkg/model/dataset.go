package model

// ParSeQL is the root of an analysis result. It carries the realm metadata,
// the analysed statements and the database object hierarchy.
type ParSeQL struct {
	node

	RealmID    string
	Pos        string
	Statements []Element
	Namespace  string
	Location   string
	DBOHier    *DBOHier
	Errors     []Element
	Version    string
	TS         string
	Status     string
}

// Kind implements Node.
func (*ParSeQL) Kind() string { return "ParSeQL" }

func (n *ParSeQL) position() string { return n.Pos }

// ParSeQLBuilder assembles a ParSeQL.
type ParSeQLBuilder struct {
	node  *ParSeQL
	built bool
}

// NewParSeQLBuilder returns a builder bound to a fresh ParSeQL.
func NewParSeQLBuilder() *ParSeQLBuilder {
	n := &ParSeQL{}
	n.Bind(n)
	return &ParSeQLBuilder{node: n}
}

// WithRealmID sets realmID.
func (b *ParSeQLBuilder) WithRealmID(v string) *ParSeQLBuilder {
	b.node.RealmID = v
	b.node.set("realmID")
	return b
}

// WithPos sets pos.
func (b *ParSeQLBuilder) WithPos(v string) *ParSeQLBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithStatements sets statement.
func (b *ParSeQLBuilder) WithStatements(v []Element) *ParSeQLBuilder {
	attachAll(b.node, v)
	b.node.Statements = v
	b.node.set("statement")
	return b
}

// WithNamespace sets namespace.
func (b *ParSeQLBuilder) WithNamespace(v string) *ParSeQLBuilder {
	b.node.Namespace = v
	b.node.set("namespace")
	return b
}

// WithLocation sets location.
func (b *ParSeQLBuilder) WithLocation(v string) *ParSeQLBuilder {
	b.node.Location = v
	b.node.set("location")
	return b
}

// WithDBOHier sets DBOHier.
func (b *ParSeQLBuilder) WithDBOHier(v *DBOHier) *ParSeQLBuilder {
	if v != nil {
		b.node.AddChild(v)
	}
	b.node.DBOHier = v
	b.node.set("DBOHier")
	return b
}

// WithErrors sets error.
func (b *ParSeQLBuilder) WithErrors(v []Element) *ParSeQLBuilder {
	attachAll(b.node, v)
	b.node.Errors = v
	b.node.set("error")
	return b
}

// WithVersion sets version.
func (b *ParSeQLBuilder) WithVersion(v string) *ParSeQLBuilder {
	b.node.Version = v
	b.node.set("version")
	return b
}

// WithTS sets ts.
func (b *ParSeQLBuilder) WithTS(v string) *ParSeQLBuilder {
	b.node.TS = v
	b.node.set("ts")
	return b
}

// WithStatus sets status.
func (b *ParSeQLBuilder) WithStatus(v string) *ParSeQLBuilder {
	b.node.Status = v
	b.node.set("status")
	return b
}

// Build returns the ParSeQL. Repeated calls return the same node.
func (b *ParSeQLBuilder) Build() *ParSeQL {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *ParSeQLBuilder) Built() bool { return b.built }

// Ds is a dataset: a table reference, a derived table, a CTE or the query root.
type Ds struct {
	node

	RefSch         string
	FullRef        string
	RefDB          string
	In             *In
	MatchRecognize *MatchRecognize
	SetOps         []Element
	Type           string
	Modifiers      []Element
	Out            *Out
	ORef           string
	TableSample    *TableSample
	Pos            string
	SRef           string
	RefDs          string
	Name           string
	Alias          string
	Action         string
	SubType        string
	Direction      string
}

// Kind implements Node.
func (*Ds) Kind() string { return "Ds" }

func (n *Ds) position() string { return n.Pos }

// DsBuilder assembles a Ds.
type DsBuilder struct {
	node  *Ds
	built bool
}

// NewDsBuilder returns a builder bound to a fresh Ds.
func NewDsBuilder() *DsBuilder {
	n := &Ds{}
	n.Bind(n)
	return &DsBuilder{node: n}
}

// WithRefSch sets refsch.
func (b *DsBuilder) WithRefSch(v string) *DsBuilder {
	b.node.RefSch = v
	b.node.set("refsch")
	return b
}

// WithFullRef sets fullref.
func (b *DsBuilder) WithFullRef(v string) *DsBuilder {
	b.node.FullRef = v
	b.node.set("fullref")
	return b
}

// WithRefDB sets refdb.
func (b *DsBuilder) WithRefDB(v string) *DsBuilder {
	b.node.RefDB = v
	b.node.set("refdb")
	return b
}

// WithIn sets in.
func (b *DsBuilder) WithIn(v *In) *DsBuilder {
	if v != nil {
		b.node.AddChild(v)
	}
	b.node.In = v
	b.node.set("in")
	return b
}

// WithMatchRecognize sets matchRecognize.
func (b *DsBuilder) WithMatchRecognize(v *MatchRecognize) *DsBuilder {
	if v != nil {
		b.node.AddChild(v)
	}
	b.node.MatchRecognize = v
	b.node.set("matchRecognize")
	return b
}

// WithSetOps sets setOp.
func (b *DsBuilder) WithSetOps(v []Element) *DsBuilder {
	attachAll(b.node, v)
	b.node.SetOps = v
	b.node.set("setOp")
	return b
}

// WithType sets type.
func (b *DsBuilder) WithType(v string) *DsBuilder {
	b.node.Type = v
	b.node.set("type")
	return b
}

// WithModifiers sets modifiers.
func (b *DsBuilder) WithModifiers(v []Element) *DsBuilder {
	attachAll(b.node, v)
	b.node.Modifiers = v
	b.node.set("modifiers")
	return b
}

// WithOut sets out.
func (b *DsBuilder) WithOut(v *Out) *DsBuilder {
	if v != nil {
		b.node.AddChild(v)
	}
	b.node.Out = v
	b.node.set("out")
	return b
}

// WithORef sets oref.
func (b *DsBuilder) WithORef(v string) *DsBuilder {
	b.node.ORef = v
	b.node.set("oref")
	return b
}

// WithTableSample sets tableSample.
func (b *DsBuilder) WithTableSample(v *TableSample) *DsBuilder {
	if v != nil {
		b.node.AddChild(v)
	}
	b.node.TableSample = v
	b.node.set("tableSample")
	return b
}

// WithPos sets pos.
func (b *DsBuilder) WithPos(v string) *DsBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithSRef sets sref.
func (b *DsBuilder) WithSRef(v string) *DsBuilder {
	b.node.SRef = v
	b.node.set("sref")
	return b
}

// WithRefDs sets refds.
func (b *DsBuilder) WithRefDs(v string) *DsBuilder {
	b.node.RefDs = v
	b.node.set("refds")
	return b
}

// WithName sets name.
func (b *DsBuilder) WithName(v string) *DsBuilder {
	b.node.Name = v
	b.node.set("name")
	return b
}

// WithAlias sets alias.
func (b *DsBuilder) WithAlias(v string) *DsBuilder {
	b.node.Alias = v
	b.node.set("alias")
	return b
}

// WithAction sets action.
func (b *DsBuilder) WithAction(v string) *DsBuilder {
	b.node.Action = v
	b.node.set("action")
	return b
}

// WithSubType sets subType.
func (b *DsBuilder) WithSubType(v string) *DsBuilder {
	b.node.SubType = v
	b.node.set("subType")
	return b
}

// WithDirection sets direction.
func (b *DsBuilder) WithDirection(v string) *DsBuilder {
	b.node.Direction = v
	b.node.set("direction")
	return b
}

// Build returns the Ds. Repeated calls return the same node.
func (b *DsBuilder) Build() *Ds {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *DsBuilder) Built() bool { return b.built }

// In lists the inputs of a dataset.
type In struct {
	node

	Pos   string
	Exprs []Element
}

// Kind implements Node.
func (*In) Kind() string { return "In" }

func (n *In) position() string { return n.Pos }

// InBuilder assembles an In.
type InBuilder struct {
	node  *In
	built bool
}

// NewInBuilder returns a builder bound to a fresh In.
func NewInBuilder() *InBuilder {
	n := &In{}
	n.Bind(n)
	return &InBuilder{node: n}
}

// WithPos sets pos.
func (b *InBuilder) WithPos(v string) *InBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithExprs sets exprs.
func (b *InBuilder) WithExprs(v []Element) *InBuilder {
	attachAll(b.node, v)
	b.node.Exprs = v
	b.node.set("exprs")
	return b
}

// Build returns the In. Repeated calls return the same node.
func (b *InBuilder) Build() *In {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *InBuilder) Built() bool { return b.built }

// Out lists the projected expressions of a dataset.
type Out struct {
	node

	Pos   string
	Exprs []Element
	Type  string
}

// Kind implements Node.
func (*Out) Kind() string { return "Out" }

func (n *Out) position() string { return n.Pos }

// OutBuilder assembles an Out.
type OutBuilder struct {
	node  *Out
	built bool
}

// NewOutBuilder returns a builder bound to a fresh Out.
func NewOutBuilder() *OutBuilder {
	n := &Out{}
	n.Bind(n)
	return &OutBuilder{node: n}
}

// WithPos sets pos.
func (b *OutBuilder) WithPos(v string) *OutBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithExprs sets exprs.
func (b *OutBuilder) WithExprs(v []Element) *OutBuilder {
	attachAll(b.node, v)
	b.node.Exprs = v
	b.node.set("exprs")
	return b
}

// WithType sets type.
func (b *OutBuilder) WithType(v string) *OutBuilder {
	b.node.Type = v
	b.node.set("type")
	return b
}

// Build returns the Out. Repeated calls return the same node.
func (b *OutBuilder) Build() *Out {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *OutBuilder) Built() bool { return b.built }

// Join is a join modifier attached to a dataset.
type Join struct {
	node

	Op        Element
	DefinedAs string
	Pos       string
	Alias     string
	SubType   string
	Type      string
	Ds        *Ds
	Direction string
}

// Kind implements Node.
func (*Join) Kind() string { return "Join" }

func (n *Join) position() string { return n.Pos }

// JoinBuilder assembles a Join.
type JoinBuilder struct {
	node  *Join
	built bool
}

// NewJoinBuilder returns a builder bound to a fresh Join.
func NewJoinBuilder() *JoinBuilder {
	n := &Join{}
	n.Bind(n)
	return &JoinBuilder{node: n}
}

// WithOp sets op.
func (b *JoinBuilder) WithOp(v Element) *JoinBuilder {
	attach(b.node, v)
	b.node.Op = v
	b.node.set("op")
	return b
}

// WithDefinedAs sets definedAs.
func (b *JoinBuilder) WithDefinedAs(v string) *JoinBuilder {
	b.node.DefinedAs = v
	b.node.set("definedAs")
	return b
}

// WithPos sets pos.
func (b *JoinBuilder) WithPos(v string) *JoinBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithAlias sets alias.
func (b *JoinBuilder) WithAlias(v string) *JoinBuilder {
	b.node.Alias = v
	b.node.set("alias")
	return b
}

// WithSubType sets subType.
func (b *JoinBuilder) WithSubType(v string) *JoinBuilder {
	b.node.SubType = v
	b.node.set("subType")
	return b
}

// WithType sets type.
func (b *JoinBuilder) WithType(v string) *JoinBuilder {
	b.node.Type = v
	b.node.set("type")
	return b
}

// WithDs sets ds.
func (b *JoinBuilder) WithDs(v *Ds) *JoinBuilder {
	if v != nil {
		b.node.AddChild(v)
	}
	b.node.Ds = v
	b.node.set("ds")
	return b
}

// WithDirection sets direction.
func (b *JoinBuilder) WithDirection(v string) *JoinBuilder {
	b.node.Direction = v
	b.node.set("direction")
	return b
}

// Build returns the Join. Repeated calls return the same node.
func (b *JoinBuilder) Build() *Join {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *JoinBuilder) Built() bool { return b.built }

// Filter is a WHERE, HAVING or QUALIFY predicate.
type Filter struct {
	node

	Op   Element
	Pos  string
	Type string
}

// Kind implements Node.
func (*Filter) Kind() string { return "Filter" }

func (n *Filter) position() string { return n.Pos }

// FilterBuilder assembles a Filter.
type FilterBuilder struct {
	node  *Filter
	built bool
}

// NewFilterBuilder returns a builder bound to a fresh Filter.
func NewFilterBuilder() *FilterBuilder {
	n := &Filter{}
	n.Bind(n)
	return &FilterBuilder{node: n}
}

// WithOp sets op.
func (b *FilterBuilder) WithOp(v Element) *FilterBuilder {
	attach(b.node, v)
	b.node.Op = v
	b.node.set("op")
	return b
}

// WithPos sets pos.
func (b *FilterBuilder) WithPos(v string) *FilterBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithType sets type.
func (b *FilterBuilder) WithType(v string) *FilterBuilder {
	b.node.Type = v
	b.node.set("type")
	return b
}

// Build returns the Filter. Repeated calls return the same node.
func (b *FilterBuilder) Build() *Filter {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *FilterBuilder) Built() bool { return b.built }

// Agg is a GROUP BY clause.
type Agg struct {
	node

	Filters []Element
	Pos     string
	Exprs   []Element
	Type    string
}

// Kind implements Node.
func (*Agg) Kind() string { return "Agg" }

func (n *Agg) position() string { return n.Pos }

// AggBuilder assembles an Agg.
type AggBuilder struct {
	node  *Agg
	built bool
}

// NewAggBuilder returns a builder bound to a fresh Agg.
func NewAggBuilder() *AggBuilder {
	n := &Agg{}
	n.Bind(n)
	return &AggBuilder{node: n}
}

// WithFilters sets filter.
func (b *AggBuilder) WithFilters(v []Element) *AggBuilder {
	attachAll(b.node, v)
	b.node.Filters = v
	b.node.set("filter")
	return b
}

// WithPos sets pos.
func (b *AggBuilder) WithPos(v string) *AggBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithExprs sets exprs.
func (b *AggBuilder) WithExprs(v []Element) *AggBuilder {
	attachAll(b.node, v)
	b.node.Exprs = v
	b.node.set("exprs")
	return b
}

// WithType sets type.
func (b *AggBuilder) WithType(v string) *AggBuilder {
	b.node.Type = v
	b.node.set("type")
	return b
}

// Build returns the Agg. Repeated calls return the same node.
func (b *AggBuilder) Build() *Agg {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *AggBuilder) Built() bool { return b.built }

// Sort is an ORDER BY clause.
type Sort struct {
	node

	Pos   string
	Exprs []Element
}

// Kind implements Node.
func (*Sort) Kind() string { return "Sort" }

func (n *Sort) position() string { return n.Pos }

// SortBuilder assembles a Sort.
type SortBuilder struct {
	node  *Sort
	built bool
}

// NewSortBuilder returns a builder bound to a fresh Sort.
func NewSortBuilder() *SortBuilder {
	n := &Sort{}
	n.Bind(n)
	return &SortBuilder{node: n}
}

// WithPos sets pos.
func (b *SortBuilder) WithPos(v string) *SortBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithExprs sets exprs.
func (b *SortBuilder) WithExprs(v []Element) *SortBuilder {
	attachAll(b.node, v)
	b.node.Exprs = v
	b.node.set("exprs")
	return b
}

// Build returns the Sort. Repeated calls return the same node.
func (b *SortBuilder) Build() *Sort {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *SortBuilder) Built() bool { return b.built }

// Page is a LIMIT, OFFSET, TOP or FETCH clause.
type Page struct {
	node

	Pos   string
	Type  string
	Value Element
}

// Kind implements Node.
func (*Page) Kind() string { return "Page" }

func (n *Page) position() string { return n.Pos }

// PageBuilder assembles a Page.
type PageBuilder struct {
	node  *Page
	built bool
}

// NewPageBuilder returns a builder bound to a fresh Page.
func NewPageBuilder() *PageBuilder {
	n := &Page{}
	n.Bind(n)
	return &PageBuilder{node: n}
}

// WithPos sets pos.
func (b *PageBuilder) WithPos(v string) *PageBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithType sets type.
func (b *PageBuilder) WithType(v string) *PageBuilder {
	b.node.Type = v
	b.node.set("type")
	return b
}

// WithValue sets value.
func (b *PageBuilder) WithValue(v Element) *PageBuilder {
	attach(b.node, v)
	b.node.Value = v
	b.node.set("value")
	return b
}

// Build returns the Page. Repeated calls return the same node.
func (b *PageBuilder) Build() *Page {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *PageBuilder) Built() bool { return b.built }

// Frame is a window frame specification.
type Frame struct {
	node

	LowVal    Element
	Pos       string
	HiRel     string
	Alias     string
	Exprs     []Element
	LowRel    string
	Type      string
	Direction string
	HiVal     Element
}

// Kind implements Node.
func (*Frame) Kind() string { return "Frame" }

func (n *Frame) position() string { return n.Pos }

// FrameBuilder assembles a Frame.
type FrameBuilder struct {
	node  *Frame
	built bool
}

// NewFrameBuilder returns a builder bound to a fresh Frame.
func NewFrameBuilder() *FrameBuilder {
	n := &Frame{}
	n.Bind(n)
	return &FrameBuilder{node: n}
}

// WithLowVal sets low_val.
func (b *FrameBuilder) WithLowVal(v Element) *FrameBuilder {
	attach(b.node, v)
	b.node.LowVal = v
	b.node.set("low_val")
	return b
}

// WithPos sets pos.
func (b *FrameBuilder) WithPos(v string) *FrameBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithHiRel sets hi_rel.
func (b *FrameBuilder) WithHiRel(v string) *FrameBuilder {
	b.node.HiRel = v
	b.node.set("hi_rel")
	return b
}

// WithAlias sets alias.
func (b *FrameBuilder) WithAlias(v string) *FrameBuilder {
	b.node.Alias = v
	b.node.set("alias")
	return b
}

// WithExprs sets exprs.
func (b *FrameBuilder) WithExprs(v []Element) *FrameBuilder {
	attachAll(b.node, v)
	b.node.Exprs = v
	b.node.set("exprs")
	return b
}

// WithLowRel sets low_rel.
func (b *FrameBuilder) WithLowRel(v string) *FrameBuilder {
	b.node.LowRel = v
	b.node.set("low_rel")
	return b
}

// WithType sets type.
func (b *FrameBuilder) WithType(v string) *FrameBuilder {
	b.node.Type = v
	b.node.set("type")
	return b
}

// WithDirection sets direction.
func (b *FrameBuilder) WithDirection(v string) *FrameBuilder {
	b.node.Direction = v
	b.node.set("direction")
	return b
}

// WithHiVal sets hi_val.
func (b *FrameBuilder) WithHiVal(v Element) *FrameBuilder {
	attach(b.node, v)
	b.node.HiVal = v
	b.node.set("hi_val")
	return b
}

// Build returns the Frame. Repeated calls return the same node.
func (b *FrameBuilder) Build() *Frame {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *FrameBuilder) Built() bool { return b.built }

// TableSample is a TABLESAMPLE or SAMPLE clause.
type TableSample struct {
	node

	SampleMethod string
	Seed         string
	SeedType     string
	Pos          string
	Probability  Element
	Num          Element
	Alias        string
	SampleType   string
	Direction    string
}

// Kind implements Node.
func (*TableSample) Kind() string { return "TableSample" }

func (n *TableSample) position() string { return n.Pos }

// TableSampleBuilder assembles a TableSample.
type TableSampleBuilder struct {
	node  *TableSample
	built bool
}

// NewTableSampleBuilder returns a builder bound to a fresh TableSample.
func NewTableSampleBuilder() *TableSampleBuilder {
	n := &TableSample{}
	n.Bind(n)
	return &TableSampleBuilder{node: n}
}

// WithSampleMethod sets sampleMethod.
func (b *TableSampleBuilder) WithSampleMethod(v string) *TableSampleBuilder {
	b.node.SampleMethod = v
	b.node.set("sampleMethod")
	return b
}

// WithSeed sets seed.
func (b *TableSampleBuilder) WithSeed(v string) *TableSampleBuilder {
	b.node.Seed = v
	b.node.set("seed")
	return b
}

// WithSeedType sets seedType.
func (b *TableSampleBuilder) WithSeedType(v string) *TableSampleBuilder {
	b.node.SeedType = v
	b.node.set("seedType")
	return b
}

// WithPos sets pos.
func (b *TableSampleBuilder) WithPos(v string) *TableSampleBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithProbability sets probability.
func (b *TableSampleBuilder) WithProbability(v Element) *TableSampleBuilder {
	attach(b.node, v)
	b.node.Probability = v
	b.node.set("probability")
	return b
}

// WithNum sets num.
func (b *TableSampleBuilder) WithNum(v Element) *TableSampleBuilder {
	attach(b.node, v)
	b.node.Num = v
	b.node.set("num")
	return b
}

// WithAlias sets alias.
func (b *TableSampleBuilder) WithAlias(v string) *TableSampleBuilder {
	b.node.Alias = v
	b.node.set("alias")
	return b
}

// WithSampleType sets sampleType.
func (b *TableSampleBuilder) WithSampleType(v string) *TableSampleBuilder {
	b.node.SampleType = v
	b.node.set("sampleType")
	return b
}

// WithDirection sets direction.
func (b *TableSampleBuilder) WithDirection(v string) *TableSampleBuilder {
	b.node.Direction = v
	b.node.set("direction")
	return b
}

// Build returns the TableSample. Repeated calls return the same node.
func (b *TableSampleBuilder) Build() *TableSample {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *TableSampleBuilder) Built() bool { return b.built }

// TableFunc is a table valued function used as a dataset.
type TableFunc struct {
	node

	Type              string
	Modifiers         []Element
	Out               *Out
	Partition         []Element
	Pos               string
	RefDs             string
	Options           []Element
	Action            string
	Alias             string
	TableFuncType     string
	Direction         string
	RefSch            string
	FullRef           string
	RefDB             string
	In                *In
	MatchRecognize    *MatchRecognize
	SetOps            []Element
	Sort              *Sort
	SubQuery          *Ds
	ORef              string
	TableSample       *TableSample
	Names             []Element
	SRef              string
	Name              string
	UnnestExpressions []Element
	SubType           string
	Frame             *Frame
}

// Kind implements Node.
func (*TableFunc) Kind() string { return "TableFunc" }

func (n *TableFunc) position() string { return n.Pos }

// TableFuncBuilder assembles a TableFunc.
type TableFuncBuilder struct {
	node  *TableFunc
	built bool
}

// NewTableFuncBuilder returns a builder bound to a fresh TableFunc.
func NewTableFuncBuilder() *TableFuncBuilder {
	n := &TableFunc{}
	n.Bind(n)
	return &TableFuncBuilder{node: n}
}

// WithType sets type.
func (b *TableFuncBuilder) WithType(v string) *TableFuncBuilder {
	b.node.Type = v
	b.node.set("type")
	return b
}

// WithModifiers sets modifiers.
func (b *TableFuncBuilder) WithModifiers(v []Element) *TableFuncBuilder {
	attachAll(b.node, v)
	b.node.Modifiers = v
	b.node.set("modifiers")
	return b
}

// WithOut sets out.
func (b *TableFuncBuilder) WithOut(v *Out) *TableFuncBuilder {
	if v != nil {
		b.node.AddChild(v)
	}
	b.node.Out = v
	b.node.set("out")
	return b
}

// WithPartition sets partition.
func (b *TableFuncBuilder) WithPartition(v []Element) *TableFuncBuilder {
	attachAll(b.node, v)
	b.node.Partition = v
	b.node.set("partition")
	return b
}

// WithPos sets pos.
func (b *TableFuncBuilder) WithPos(v string) *TableFuncBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithRefDs sets refds.
func (b *TableFuncBuilder) WithRefDs(v string) *TableFuncBuilder {
	b.node.RefDs = v
	b.node.set("refds")
	return b
}

// WithOptions sets options.
func (b *TableFuncBuilder) WithOptions(v []Element) *TableFuncBuilder {
	attachAll(b.node, v)
	b.node.Options = v
	b.node.set("options")
	return b
}

// WithAction sets action.
func (b *TableFuncBuilder) WithAction(v string) *TableFuncBuilder {
	b.node.Action = v
	b.node.set("action")
	return b
}

// WithAlias sets alias.
func (b *TableFuncBuilder) WithAlias(v string) *TableFuncBuilder {
	b.node.Alias = v
	b.node.set("alias")
	return b
}

// WithTableFuncType sets tableFuncType.
func (b *TableFuncBuilder) WithTableFuncType(v string) *TableFuncBuilder {
	b.node.TableFuncType = v
	b.node.set("tableFuncType")
	return b
}

// WithDirection sets direction.
func (b *TableFuncBuilder) WithDirection(v string) *TableFuncBuilder {
	b.node.Direction = v
	b.node.set("direction")
	return b
}

// WithRefSch sets refsch.
func (b *TableFuncBuilder) WithRefSch(v string) *TableFuncBuilder {
	b.node.RefSch = v
	b.node.set("refsch")
	return b
}

// WithFullRef sets fullref.
func (b *TableFuncBuilder) WithFullRef(v string) *TableFuncBuilder {
	b.node.FullRef = v
	b.node.set("fullref")
	return b
}

// WithRefDB sets refdb.
func (b *TableFuncBuilder) WithRefDB(v string) *TableFuncBuilder {
	b.node.RefDB = v
	b.node.set("refdb")
	return b
}

// WithIn sets in.
func (b *TableFuncBuilder) WithIn(v *In) *TableFuncBuilder {
	if v != nil {
		b.node.AddChild(v)
	}
	b.node.In = v
	b.node.set("in")
	return b
}

// WithMatchRecognize sets matchRecognize.
func (b *TableFuncBuilder) WithMatchRecognize(v *MatchRecognize) *TableFuncBuilder {
	if v != nil {
		b.node.AddChild(v)
	}
	b.node.MatchRecognize = v
	b.node.set("matchRecognize")
	return b
}

// WithSetOps sets setOp.
func (b *TableFuncBuilder) WithSetOps(v []Element) *TableFuncBuilder {
	attachAll(b.node, v)
	b.node.SetOps = v
	b.node.set("setOp")
	return b
}

// WithSort sets sort.
func (b *TableFuncBuilder) WithSort(v *Sort) *TableFuncBuilder {
	if v != nil {
		b.node.AddChild(v)
	}
	b.node.Sort = v
	b.node.set("sort")
	return b
}

// WithSubQuery sets subQuery.
func (b *TableFuncBuilder) WithSubQuery(v *Ds) *TableFuncBuilder {
	if v != nil {
		b.node.AddChild(v)
	}
	b.node.SubQuery = v
	b.node.set("subQuery")
	return b
}

// WithORef sets oref.
func (b *TableFuncBuilder) WithORef(v string) *TableFuncBuilder {
	b.node.ORef = v
	b.node.set("oref")
	return b
}

// WithTableSample sets tableSample.
func (b *TableFuncBuilder) WithTableSample(v *TableSample) *TableFuncBuilder {
	if v != nil {
		b.node.AddChild(v)
	}
	b.node.TableSample = v
	b.node.set("tableSample")
	return b
}

// WithNames sets names.
func (b *TableFuncBuilder) WithNames(v []Element) *TableFuncBuilder {
	attachAll(b.node, v)
	b.node.Names = v
	b.node.set("names")
	return b
}

// WithSRef sets sref.
func (b *TableFuncBuilder) WithSRef(v string) *TableFuncBuilder {
	b.node.SRef = v
	b.node.set("sref")
	return b
}

// WithName sets name.
func (b *TableFuncBuilder) WithName(v string) *TableFuncBuilder {
	b.node.Name = v
	b.node.set("name")
	return b
}

// WithUnnestExpressions sets unnestExpressions.
func (b *TableFuncBuilder) WithUnnestExpressions(v []Element) *TableFuncBuilder {
	attachAll(b.node, v)
	b.node.UnnestExpressions = v
	b.node.set("unnestExpressions")
	return b
}

// WithSubType sets subType.
func (b *TableFuncBuilder) WithSubType(v string) *TableFuncBuilder {
	b.node.SubType = v
	b.node.set("subType")
	return b
}

// WithFrame sets frame.
func (b *TableFuncBuilder) WithFrame(v *Frame) *TableFuncBuilder {
	if v != nil {
		b.node.AddChild(v)
	}
	b.node.Frame = v
	b.node.set("frame")
	return b
}

// Build returns the TableFunc. Repeated calls return the same node.
func (b *TableFuncBuilder) Build() *TableFunc {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *TableFuncBuilder) Built() bool { return b.built }

// MatchRecognize is a MATCH_RECOGNIZE clause.
type MatchRecognize struct {
	node

	PartitionBy       Element
	Measures          Element
	Pos               string
	Define            Element
	Pattern           Element
	RowMatchAction    Element
	OrderBy           Element
	Alias             string
	RowMatchCondition Element
	Direction         string
}

// Kind implements Node.
func (*MatchRecognize) Kind() string { return "MatchRecognize" }

func (n *MatchRecognize) position() string { return n.Pos }

// MatchRecognizeBuilder assembles a MatchRecognize.
type MatchRecognizeBuilder struct {
	node  *MatchRecognize
	built bool
}

// NewMatchRecognizeBuilder returns a builder bound to a fresh MatchRecognize.
func NewMatchRecognizeBuilder() *MatchRecognizeBuilder {
	n := &MatchRecognize{}
	n.Bind(n)
	return &MatchRecognizeBuilder{node: n}
}

// WithPartitionBy sets partitionBy.
func (b *MatchRecognizeBuilder) WithPartitionBy(v Element) *MatchRecognizeBuilder {
	attach(b.node, v)
	b.node.PartitionBy = v
	b.node.set("partitionBy")
	return b
}

// WithMeasures sets measures.
func (b *MatchRecognizeBuilder) WithMeasures(v Element) *MatchRecognizeBuilder {
	attach(b.node, v)
	b.node.Measures = v
	b.node.set("measures")
	return b
}

// WithPos sets pos.
func (b *MatchRecognizeBuilder) WithPos(v string) *MatchRecognizeBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithDefine sets define.
func (b *MatchRecognizeBuilder) WithDefine(v Element) *MatchRecognizeBuilder {
	attach(b.node, v)
	b.node.Define = v
	b.node.set("define")
	return b
}

// WithPattern sets pattern.
func (b *MatchRecognizeBuilder) WithPattern(v Element) *MatchRecognizeBuilder {
	attach(b.node, v)
	b.node.Pattern = v
	b.node.set("pattern")
	return b
}

// WithRowMatchAction sets rowMatchAction.
func (b *MatchRecognizeBuilder) WithRowMatchAction(v Element) *MatchRecognizeBuilder {
	attach(b.node, v)
	b.node.RowMatchAction = v
	b.node.set("rowMatchAction")
	return b
}

// WithOrderBy sets orderBy.
func (b *MatchRecognizeBuilder) WithOrderBy(v Element) *MatchRecognizeBuilder {
	attach(b.node, v)
	b.node.OrderBy = v
	b.node.set("orderBy")
	return b
}

// WithAlias sets alias.
func (b *MatchRecognizeBuilder) WithAlias(v string) *MatchRecognizeBuilder {
	b.node.Alias = v
	b.node.set("alias")
	return b
}

// WithRowMatchCondition sets rowMatchCondition.
func (b *MatchRecognizeBuilder) WithRowMatchCondition(v Element) *MatchRecognizeBuilder {
	attach(b.node, v)
	b.node.RowMatchCondition = v
	b.node.set("rowMatchCondition")
	return b
}

// WithDirection sets direction.
func (b *MatchRecognizeBuilder) WithDirection(v string) *MatchRecognizeBuilder {
	b.node.Direction = v
	b.node.set("direction")
	return b
}

// Build returns the MatchRecognize. Repeated calls return the same node.
func (b *MatchRecognizeBuilder) Build() *MatchRecognize {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *MatchRecognizeBuilder) Built() bool { return b.built }

// QueryingStage is a query against a staged file location.
type QueryingStage struct {
	node

	Pos        string
	Pattern    string
	Alias      string
	Location   string
	FileFormat string
	Direction  string
}

// Kind implements Node.
func (*QueryingStage) Kind() string { return "QueryingStage" }

func (n *QueryingStage) position() string { return n.Pos }

// QueryingStageBuilder assembles a QueryingStage.
type QueryingStageBuilder struct {
	node  *QueryingStage
	built bool
}

// NewQueryingStageBuilder returns a builder bound to a fresh QueryingStage.
func NewQueryingStageBuilder() *QueryingStageBuilder {
	n := &QueryingStage{}
	n.Bind(n)
	return &QueryingStageBuilder{node: n}
}

// WithPos sets pos.
func (b *QueryingStageBuilder) WithPos(v string) *QueryingStageBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithPattern sets pattern.
func (b *QueryingStageBuilder) WithPattern(v string) *QueryingStageBuilder {
	b.node.Pattern = v
	b.node.set("pattern")
	return b
}

// WithAlias sets alias.
func (b *QueryingStageBuilder) WithAlias(v string) *QueryingStageBuilder {
	b.node.Alias = v
	b.node.set("alias")
	return b
}

// WithLocation sets location.
func (b *QueryingStageBuilder) WithLocation(v string) *QueryingStageBuilder {
	b.node.Location = v
	b.node.set("location")
	return b
}

// WithFileFormat sets fileFormat.
func (b *QueryingStageBuilder) WithFileFormat(v string) *QueryingStageBuilder {
	b.node.FileFormat = v
	b.node.set("fileFormat")
	return b
}

// WithDirection sets direction.
func (b *QueryingStageBuilder) WithDirection(v string) *QueryingStageBuilder {
	b.node.Direction = v
	b.node.set("direction")
	return b
}

// Build returns the QueryingStage. Repeated calls return the same node.
func (b *QueryingStageBuilder) Build() *QueryingStage {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *QueryingStageBuilder) Built() bool { return b.built }

// Rotate is a PIVOT or UNPIVOT clause.
type Rotate struct {
	node

	NameColumn  Element
	Pos         string
	ValueColumn Element
	ColumnList  []Element
	PivotColumn Element
	Alias       string
	Type        string
	ColumnAlias []Element
	Aggregate   Element
	Direction   string
}

// Kind implements Node.
func (*Rotate) Kind() string { return "Rotate" }

func (n *Rotate) position() string { return n.Pos }

// RotateBuilder assembles a Rotate.
type RotateBuilder struct {
	node  *Rotate
	built bool
}

// NewRotateBuilder returns a builder bound to a fresh Rotate.
func NewRotateBuilder() *RotateBuilder {
	n := &Rotate{}
	n.Bind(n)
	return &RotateBuilder{node: n}
}

// WithNameColumn sets nameColumn.
func (b *RotateBuilder) WithNameColumn(v Element) *RotateBuilder {
	attach(b.node, v)
	b.node.NameColumn = v
	b.node.set("nameColumn")
	return b
}

// WithPos sets pos.
func (b *RotateBuilder) WithPos(v string) *RotateBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithValueColumn sets valueColumn.
func (b *RotateBuilder) WithValueColumn(v Element) *RotateBuilder {
	attach(b.node, v)
	b.node.ValueColumn = v
	b.node.set("valueColumn")
	return b
}

// WithColumnList sets columnList.
func (b *RotateBuilder) WithColumnList(v []Element) *RotateBuilder {
	attachAll(b.node, v)
	b.node.ColumnList = v
	b.node.set("columnList")
	return b
}

// WithPivotColumn sets pivotColumn.
func (b *RotateBuilder) WithPivotColumn(v Element) *RotateBuilder {
	attach(b.node, v)
	b.node.PivotColumn = v
	b.node.set("pivotColumn")
	return b
}

// WithAlias sets alias.
func (b *RotateBuilder) WithAlias(v string) *RotateBuilder {
	b.node.Alias = v
	b.node.set("alias")
	return b
}

// WithType sets type.
func (b *RotateBuilder) WithType(v string) *RotateBuilder {
	b.node.Type = v
	b.node.set("type")
	return b
}

// WithColumnAlias sets columnAlias.
func (b *RotateBuilder) WithColumnAlias(v []Element) *RotateBuilder {
	attachAll(b.node, v)
	b.node.ColumnAlias = v
	b.node.set("columnAlias")
	return b
}

// WithAggregate sets aggregate.
func (b *RotateBuilder) WithAggregate(v Element) *RotateBuilder {
	attach(b.node, v)
	b.node.Aggregate = v
	b.node.set("aggregate")
	return b
}

// WithDirection sets direction.
func (b *RotateBuilder) WithDirection(v string) *RotateBuilder {
	b.node.Direction = v
	b.node.set("direction")
	return b
}

// Build returns the Rotate. Repeated calls return the same node.
func (b *RotateBuilder) Build() *Rotate {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *RotateBuilder) Built() bool { return b.built }

// Edge is a graph edge generator.
type Edge struct {
	node

	Pos         string
	Exprs       []Element
	Generator   Element
	Alias       string
	Type        string
	ColumnAlias []Element
	Direction   string
}

// Kind implements Node.
func (*Edge) Kind() string { return "Edge" }

func (n *Edge) position() string { return n.Pos }

// EdgeBuilder assembles an Edge.
type EdgeBuilder struct {
	node  *Edge
	built bool
}

// NewEdgeBuilder returns a builder bound to a fresh Edge.
func NewEdgeBuilder() *EdgeBuilder {
	n := &Edge{}
	n.Bind(n)
	return &EdgeBuilder{node: n}
}

// WithPos sets pos.
func (b *EdgeBuilder) WithPos(v string) *EdgeBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithExprs sets exprs.
func (b *EdgeBuilder) WithExprs(v []Element) *EdgeBuilder {
	attachAll(b.node, v)
	b.node.Exprs = v
	b.node.set("exprs")
	return b
}

// WithGenerator sets generator.
func (b *EdgeBuilder) WithGenerator(v Element) *EdgeBuilder {
	attach(b.node, v)
	b.node.Generator = v
	b.node.set("generator")
	return b
}

// WithAlias sets alias.
func (b *EdgeBuilder) WithAlias(v string) *EdgeBuilder {
	b.node.Alias = v
	b.node.set("alias")
	return b
}

// WithType sets type.
func (b *EdgeBuilder) WithType(v string) *EdgeBuilder {
	b.node.Type = v
	b.node.set("type")
	return b
}

// WithColumnAlias sets columnAlias.
func (b *EdgeBuilder) WithColumnAlias(v []Element) *EdgeBuilder {
	attachAll(b.node, v)
	b.node.ColumnAlias = v
	b.node.set("columnAlias")
	return b
}

// WithDirection sets direction.
func (b *EdgeBuilder) WithDirection(v string) *EdgeBuilder {
	b.node.Direction = v
	b.node.set("direction")
	return b
}

// Build returns the Edge. Repeated calls return the same node.
func (b *EdgeBuilder) Build() *Edge {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *EdgeBuilder) Built() bool { return b.built }
