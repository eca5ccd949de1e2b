package model

// Attr is a column reference.
type Attr struct {
	node

	ORef      string
	RefSch    string
	FullRef   string
	RefVar    string
	RefDB     string
	SRef      string
	Pos       string
	RefDs     string
	RefAtt    string
	Alias     string
	RefOutIdx string
	Direction string
}

// Kind implements Node.
func (*Attr) Kind() string { return "Attr" }

func (n *Attr) position() string { return n.Pos }

// AttrBuilder assembles an Attr.
type AttrBuilder struct {
	node  *Attr
	built bool
}

// NewAttrBuilder returns a builder bound to a fresh Attr.
func NewAttrBuilder() *AttrBuilder {
	n := &Attr{}
	n.Bind(n)
	return &AttrBuilder{node: n}
}

// WithORef sets oref.
func (b *AttrBuilder) WithORef(v string) *AttrBuilder {
	b.node.ORef = v
	b.node.set("oref")
	return b
}

// WithRefSch sets refsch.
func (b *AttrBuilder) WithRefSch(v string) *AttrBuilder {
	b.node.RefSch = v
	b.node.set("refsch")
	return b
}

// WithFullRef sets fullref.
func (b *AttrBuilder) WithFullRef(v string) *AttrBuilder {
	b.node.FullRef = v
	b.node.set("fullref")
	return b
}

// WithRefVar sets refvar.
func (b *AttrBuilder) WithRefVar(v string) *AttrBuilder {
	b.node.RefVar = v
	b.node.set("refvar")
	return b
}

// WithRefDB sets refdb.
func (b *AttrBuilder) WithRefDB(v string) *AttrBuilder {
	b.node.RefDB = v
	b.node.set("refdb")
	return b
}

// WithSRef sets sref.
func (b *AttrBuilder) WithSRef(v string) *AttrBuilder {
	b.node.SRef = v
	b.node.set("sref")
	return b
}

// WithPos sets pos.
func (b *AttrBuilder) WithPos(v string) *AttrBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithRefDs sets refds.
func (b *AttrBuilder) WithRefDs(v string) *AttrBuilder {
	b.node.RefDs = v
	b.node.set("refds")
	return b
}

// WithRefAtt sets refatt.
func (b *AttrBuilder) WithRefAtt(v string) *AttrBuilder {
	b.node.RefAtt = v
	b.node.set("refatt")
	return b
}

// WithAlias sets alias.
func (b *AttrBuilder) WithAlias(v string) *AttrBuilder {
	b.node.Alias = v
	b.node.set("alias")
	return b
}

// WithRefOutIdx sets refoutidx.
func (b *AttrBuilder) WithRefOutIdx(v string) *AttrBuilder {
	b.node.RefOutIdx = v
	b.node.set("refoutidx")
	return b
}

// WithDirection sets direction.
func (b *AttrBuilder) WithDirection(v string) *AttrBuilder {
	b.node.Direction = v
	b.node.set("direction")
	return b
}

// Build returns the Attr. Repeated calls return the same node.
func (b *AttrBuilder) Build() *Attr {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *AttrBuilder) Built() bool { return b.built }

// Const is a literal value.
type Const struct {
	node

	Pos       string
	Alias     string
	Value     string
	Direction string
}

// Kind implements Node.
func (*Const) Kind() string { return "Const" }

func (n *Const) position() string { return n.Pos }

// ConstBuilder assembles a Const.
type ConstBuilder struct {
	node  *Const
	built bool
}

// NewConstBuilder returns a builder bound to a fresh Const.
func NewConstBuilder() *ConstBuilder {
	n := &Const{}
	n.Bind(n)
	return &ConstBuilder{node: n}
}

// WithPos sets pos.
func (b *ConstBuilder) WithPos(v string) *ConstBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithAlias sets alias.
func (b *ConstBuilder) WithAlias(v string) *ConstBuilder {
	b.node.Alias = v
	b.node.set("alias")
	return b
}

// WithValue sets value.
func (b *ConstBuilder) WithValue(v string) *ConstBuilder {
	b.node.Value = v
	b.node.set("value")
	return b
}

// WithDirection sets direction.
func (b *ConstBuilder) WithDirection(v string) *ConstBuilder {
	b.node.Direction = v
	b.node.set("direction")
	return b
}

// Build returns the Const. Repeated calls return the same node.
func (b *ConstBuilder) Build() *Const {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *ConstBuilder) Built() bool { return b.built }

// Op is an operator applied to its operand expressions.
type Op struct {
	node

	NonANSI   string
	Pos       string
	Alias     string
	Exprs     []Element
	Type      string
	Direction string
}

// Kind implements Node.
func (*Op) Kind() string { return "Op" }

func (n *Op) position() string { return n.Pos }

// OpBuilder assembles an Op.
type OpBuilder struct {
	node  *Op
	built bool
}

// NewOpBuilder returns a builder bound to a fresh Op.
func NewOpBuilder() *OpBuilder {
	n := &Op{}
	n.Bind(n)
	return &OpBuilder{node: n}
}

// WithNonANSI sets nonANSI.
func (b *OpBuilder) WithNonANSI(v string) *OpBuilder {
	b.node.NonANSI = v
	b.node.set("nonANSI")
	return b
}

// WithPos sets pos.
func (b *OpBuilder) WithPos(v string) *OpBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithAlias sets alias.
func (b *OpBuilder) WithAlias(v string) *OpBuilder {
	b.node.Alias = v
	b.node.set("alias")
	return b
}

// WithExprs sets exprs.
func (b *OpBuilder) WithExprs(v []Element) *OpBuilder {
	attachAll(b.node, v)
	b.node.Exprs = v
	b.node.set("exprs")
	return b
}

// WithType sets type.
func (b *OpBuilder) WithType(v string) *OpBuilder {
	b.node.Type = v
	b.node.set("type")
	return b
}

// WithDirection sets direction.
func (b *OpBuilder) WithDirection(v string) *OpBuilder {
	b.node.Direction = v
	b.node.set("direction")
	return b
}

// Build returns the Op. Repeated calls return the same node.
func (b *OpBuilder) Build() *Op {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *OpBuilder) Built() bool { return b.built }

// Func is a scalar, aggregate or window function call.
type Func struct {
	node

	Partition   []Element
	Pos         string
	WithinGroup Element
	Name        string
	Exprs       []Element
	Alias       string
	Expr        Element
	SubType     string
	Sort        *Sort
	Quantifier  string
	Type        string
	Frame       *Frame
	Direction   string
}

// Kind implements Node.
func (*Func) Kind() string { return "Func" }

func (n *Func) position() string { return n.Pos }

// FuncBuilder assembles a Func.
type FuncBuilder struct {
	node  *Func
	built bool
}

// NewFuncBuilder returns a builder bound to a fresh Func.
func NewFuncBuilder() *FuncBuilder {
	n := &Func{}
	n.Bind(n)
	return &FuncBuilder{node: n}
}

// WithPartition sets partition.
func (b *FuncBuilder) WithPartition(v []Element) *FuncBuilder {
	attachAll(b.node, v)
	b.node.Partition = v
	b.node.set("partition")
	return b
}

// WithPos sets pos.
func (b *FuncBuilder) WithPos(v string) *FuncBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithWithinGroup sets withinGroup.
func (b *FuncBuilder) WithWithinGroup(v Element) *FuncBuilder {
	attach(b.node, v)
	b.node.WithinGroup = v
	b.node.set("withinGroup")
	return b
}

// WithName sets name.
func (b *FuncBuilder) WithName(v string) *FuncBuilder {
	b.node.Name = v
	b.node.set("name")
	return b
}

// WithExprs sets exprs.
func (b *FuncBuilder) WithExprs(v []Element) *FuncBuilder {
	attachAll(b.node, v)
	b.node.Exprs = v
	b.node.set("exprs")
	return b
}

// WithAlias sets alias.
func (b *FuncBuilder) WithAlias(v string) *FuncBuilder {
	b.node.Alias = v
	b.node.set("alias")
	return b
}

// WithExpr sets expr.
func (b *FuncBuilder) WithExpr(v Element) *FuncBuilder {
	attach(b.node, v)
	b.node.Expr = v
	b.node.set("expr")
	return b
}

// WithSubType sets subType.
func (b *FuncBuilder) WithSubType(v string) *FuncBuilder {
	b.node.SubType = v
	b.node.set("subType")
	return b
}

// WithSort sets sort.
func (b *FuncBuilder) WithSort(v *Sort) *FuncBuilder {
	if v != nil {
		b.node.AddChild(v)
	}
	b.node.Sort = v
	b.node.set("sort")
	return b
}

// WithQuantifier sets quantifier.
func (b *FuncBuilder) WithQuantifier(v string) *FuncBuilder {
	b.node.Quantifier = v
	b.node.set("quantifier")
	return b
}

// WithType sets type.
func (b *FuncBuilder) WithType(v string) *FuncBuilder {
	b.node.Type = v
	b.node.set("type")
	return b
}

// WithFrame sets frame.
func (b *FuncBuilder) WithFrame(v *Frame) *FuncBuilder {
	if v != nil {
		b.node.AddChild(v)
	}
	b.node.Frame = v
	b.node.set("frame")
	return b
}

// WithDirection sets direction.
func (b *FuncBuilder) WithDirection(v string) *FuncBuilder {
	b.node.Direction = v
	b.node.set("direction")
	return b
}

// Build returns the Func. Repeated calls return the same node.
func (b *FuncBuilder) Build() *Func {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *FuncBuilder) Built() bool { return b.built }

// Cast is a type conversion.
type Cast struct {
	node

	Pos       string
	DataType  string
	Alias     string
	Expr      Element
	Direction string
}

// Kind implements Node.
func (*Cast) Kind() string { return "Cast" }

func (n *Cast) position() string { return n.Pos }

// CastBuilder assembles a Cast.
type CastBuilder struct {
	node  *Cast
	built bool
}

// NewCastBuilder returns a builder bound to a fresh Cast.
func NewCastBuilder() *CastBuilder {
	n := &Cast{}
	n.Bind(n)
	return &CastBuilder{node: n}
}

// WithPos sets pos.
func (b *CastBuilder) WithPos(v string) *CastBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithDataType sets dataType.
func (b *CastBuilder) WithDataType(v string) *CastBuilder {
	b.node.DataType = v
	b.node.set("dataType")
	return b
}

// WithAlias sets alias.
func (b *CastBuilder) WithAlias(v string) *CastBuilder {
	b.node.Alias = v
	b.node.set("alias")
	return b
}

// WithExpr sets expr.
func (b *CastBuilder) WithExpr(v Element) *CastBuilder {
	attach(b.node, v)
	b.node.Expr = v
	b.node.set("expr")
	return b
}

// WithDirection sets direction.
func (b *CastBuilder) WithDirection(v string) *CastBuilder {
	b.node.Direction = v
	b.node.set("direction")
	return b
}

// Build returns the Cast. Repeated calls return the same node.
func (b *CastBuilder) Build() *Cast {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *CastBuilder) Built() bool { return b.built }

// Case is a CASE expression.
type Case struct {
	node

	Pos       string
	Else      *Else
	Alias     string
	Expr      Element
	When      []Element
	Direction string
}

// Kind implements Node.
func (*Case) Kind() string { return "Case" }

func (n *Case) position() string { return n.Pos }

// CaseBuilder assembles a Case.
type CaseBuilder struct {
	node  *Case
	built bool
}

// NewCaseBuilder returns a builder bound to a fresh Case.
func NewCaseBuilder() *CaseBuilder {
	n := &Case{}
	n.Bind(n)
	return &CaseBuilder{node: n}
}

// WithPos sets pos.
func (b *CaseBuilder) WithPos(v string) *CaseBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithElse sets Else.
func (b *CaseBuilder) WithElse(v *Else) *CaseBuilder {
	if v != nil {
		b.node.AddChild(v)
	}
	b.node.Else = v
	b.node.set("Else")
	return b
}

// WithAlias sets alias.
func (b *CaseBuilder) WithAlias(v string) *CaseBuilder {
	b.node.Alias = v
	b.node.set("alias")
	return b
}

// WithExpr sets expr.
func (b *CaseBuilder) WithExpr(v Element) *CaseBuilder {
	attach(b.node, v)
	b.node.Expr = v
	b.node.set("expr")
	return b
}

// WithWhen sets when.
func (b *CaseBuilder) WithWhen(v []Element) *CaseBuilder {
	attachAll(b.node, v)
	b.node.When = v
	b.node.set("when")
	return b
}

// WithDirection sets direction.
func (b *CaseBuilder) WithDirection(v string) *CaseBuilder {
	b.node.Direction = v
	b.node.set("direction")
	return b
}

// Build returns the Case. Repeated calls return the same node.
func (b *CaseBuilder) Build() *Case {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *CaseBuilder) Built() bool { return b.built }

// When is one WHEN branch of a CASE expression.
type When struct {
	node

	Pos       string
	Alias     string
	Expr      Element
	Then      *Then
	Direction string
}

// Kind implements Node.
func (*When) Kind() string { return "When" }

func (n *When) position() string { return n.Pos }

// WhenBuilder assembles a When.
type WhenBuilder struct {
	node  *When
	built bool
}

// NewWhenBuilder returns a builder bound to a fresh When.
func NewWhenBuilder() *WhenBuilder {
	n := &When{}
	n.Bind(n)
	return &WhenBuilder{node: n}
}

// WithPos sets pos.
func (b *WhenBuilder) WithPos(v string) *WhenBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithAlias sets alias.
func (b *WhenBuilder) WithAlias(v string) *WhenBuilder {
	b.node.Alias = v
	b.node.set("alias")
	return b
}

// WithExpr sets expr.
func (b *WhenBuilder) WithExpr(v Element) *WhenBuilder {
	attach(b.node, v)
	b.node.Expr = v
	b.node.set("expr")
	return b
}

// WithThen sets then.
func (b *WhenBuilder) WithThen(v *Then) *WhenBuilder {
	if v != nil {
		b.node.AddChild(v)
	}
	b.node.Then = v
	b.node.set("then")
	return b
}

// WithDirection sets direction.
func (b *WhenBuilder) WithDirection(v string) *WhenBuilder {
	b.node.Direction = v
	b.node.set("direction")
	return b
}

// Build returns the When. Repeated calls return the same node.
func (b *WhenBuilder) Build() *When {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *WhenBuilder) Built() bool { return b.built }

// Then is the result of a WHEN branch.
type Then struct {
	node

	Pos       string
	Alias     string
	Expr      Element
	Direction string
}

// Kind implements Node.
func (*Then) Kind() string { return "Then" }

func (n *Then) position() string { return n.Pos }

// ThenBuilder assembles a Then.
type ThenBuilder struct {
	node  *Then
	built bool
}

// NewThenBuilder returns a builder bound to a fresh Then.
func NewThenBuilder() *ThenBuilder {
	n := &Then{}
	n.Bind(n)
	return &ThenBuilder{node: n}
}

// WithPos sets pos.
func (b *ThenBuilder) WithPos(v string) *ThenBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithAlias sets alias.
func (b *ThenBuilder) WithAlias(v string) *ThenBuilder {
	b.node.Alias = v
	b.node.set("alias")
	return b
}

// WithExpr sets expr.
func (b *ThenBuilder) WithExpr(v Element) *ThenBuilder {
	attach(b.node, v)
	b.node.Expr = v
	b.node.set("expr")
	return b
}

// WithDirection sets direction.
func (b *ThenBuilder) WithDirection(v string) *ThenBuilder {
	b.node.Direction = v
	b.node.set("direction")
	return b
}

// Build returns the Then. Repeated calls return the same node.
func (b *ThenBuilder) Build() *Then {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *ThenBuilder) Built() bool { return b.built }

// Else is the fallback branch of a CASE expression.
type Else struct {
	node

	Pos       string
	Alias     string
	Expr      Element
	Direction string
}

// Kind implements Node.
func (*Else) Kind() string { return "Else" }

func (n *Else) position() string { return n.Pos }

// ElseBuilder assembles an Else.
type ElseBuilder struct {
	node  *Else
	built bool
}

// NewElseBuilder returns a builder bound to a fresh Else.
func NewElseBuilder() *ElseBuilder {
	n := &Else{}
	n.Bind(n)
	return &ElseBuilder{node: n}
}

// WithPos sets pos.
func (b *ElseBuilder) WithPos(v string) *ElseBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithAlias sets alias.
func (b *ElseBuilder) WithAlias(v string) *ElseBuilder {
	b.node.Alias = v
	b.node.set("alias")
	return b
}

// WithExpr sets expr.
func (b *ElseBuilder) WithExpr(v Element) *ElseBuilder {
	attach(b.node, v)
	b.node.Expr = v
	b.node.set("expr")
	return b
}

// WithDirection sets direction.
func (b *ElseBuilder) WithDirection(v string) *ElseBuilder {
	b.node.Direction = v
	b.node.set("direction")
	return b
}

// Build returns the Else. Repeated calls return the same node.
func (b *ElseBuilder) Build() *Else {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *ElseBuilder) Built() bool { return b.built }

// StructRef addresses a path inside a semi-structured value.
type StructRef struct {
	node

	Pos       string
	RefPath   string
	Alias     string
	Expr      Element
	Direction string
}

// Kind implements Node.
func (*StructRef) Kind() string { return "StructRef" }

func (n *StructRef) position() string { return n.Pos }

// StructRefBuilder assembles a StructRef.
type StructRefBuilder struct {
	node  *StructRef
	built bool
}

// NewStructRefBuilder returns a builder bound to a fresh StructRef.
func NewStructRefBuilder() *StructRefBuilder {
	n := &StructRef{}
	n.Bind(n)
	return &StructRefBuilder{node: n}
}

// WithPos sets pos.
func (b *StructRefBuilder) WithPos(v string) *StructRefBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithRefPath sets refpath.
func (b *StructRefBuilder) WithRefPath(v string) *StructRefBuilder {
	b.node.RefPath = v
	b.node.set("refpath")
	return b
}

// WithAlias sets alias.
func (b *StructRefBuilder) WithAlias(v string) *StructRefBuilder {
	b.node.Alias = v
	b.node.set("alias")
	return b
}

// WithExpr sets expr.
func (b *StructRefBuilder) WithExpr(v Element) *StructRefBuilder {
	attach(b.node, v)
	b.node.Expr = v
	b.node.set("expr")
	return b
}

// WithDirection sets direction.
func (b *StructRefBuilder) WithDirection(v string) *StructRefBuilder {
	b.node.Direction = v
	b.node.set("direction")
	return b
}

// Build returns the StructRef. Repeated calls return the same node.
func (b *StructRefBuilder) Build() *StructRef {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *StructRefBuilder) Built() bool { return b.built }

// Asterisk is a * or qualified t.* projection.
type Asterisk struct {
	node

	RefSch    string
	FullRef   string
	RefDB     string
	Pos       string
	RefDs     string
	RefAtt    string
	Exprs     []Element
	Alias     string
	Direction string
}

// Kind implements Node.
func (*Asterisk) Kind() string { return "Asterisk" }

func (n *Asterisk) position() string { return n.Pos }

// AsteriskBuilder assembles an Asterisk.
type AsteriskBuilder struct {
	node  *Asterisk
	built bool
}

// NewAsteriskBuilder returns a builder bound to a fresh Asterisk.
func NewAsteriskBuilder() *AsteriskBuilder {
	n := &Asterisk{}
	n.Bind(n)
	return &AsteriskBuilder{node: n}
}

// WithRefSch sets refsch.
func (b *AsteriskBuilder) WithRefSch(v string) *AsteriskBuilder {
	b.node.RefSch = v
	b.node.set("refsch")
	return b
}

// WithFullRef sets fullref.
func (b *AsteriskBuilder) WithFullRef(v string) *AsteriskBuilder {
	b.node.FullRef = v
	b.node.set("fullref")
	return b
}

// WithRefDB sets refdb.
func (b *AsteriskBuilder) WithRefDB(v string) *AsteriskBuilder {
	b.node.RefDB = v
	b.node.set("refdb")
	return b
}

// WithPos sets pos.
func (b *AsteriskBuilder) WithPos(v string) *AsteriskBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithRefDs sets refds.
func (b *AsteriskBuilder) WithRefDs(v string) *AsteriskBuilder {
	b.node.RefDs = v
	b.node.set("refds")
	return b
}

// WithRefAtt sets refatt.
func (b *AsteriskBuilder) WithRefAtt(v string) *AsteriskBuilder {
	b.node.RefAtt = v
	b.node.set("refatt")
	return b
}

// WithExprs sets exprs.
func (b *AsteriskBuilder) WithExprs(v []Element) *AsteriskBuilder {
	attachAll(b.node, v)
	b.node.Exprs = v
	b.node.set("exprs")
	return b
}

// WithAlias sets alias.
func (b *AsteriskBuilder) WithAlias(v string) *AsteriskBuilder {
	b.node.Alias = v
	b.node.set("alias")
	return b
}

// WithDirection sets direction.
func (b *AsteriskBuilder) WithDirection(v string) *AsteriskBuilder {
	b.node.Direction = v
	b.node.set("direction")
	return b
}

// Build returns the Asterisk. Repeated calls return the same node.
func (b *AsteriskBuilder) Build() *Asterisk {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *AsteriskBuilder) Built() bool { return b.built }

// Array is an array constructor.
type Array struct {
	node

	Pos       string
	Alias     string
	Type      string
	Items     []Element
	Direction string
}

// Kind implements Node.
func (*Array) Kind() string { return "Array" }

func (n *Array) position() string { return n.Pos }

// ArrayBuilder assembles an Array.
type ArrayBuilder struct {
	node  *Array
	built bool
}

// NewArrayBuilder returns a builder bound to a fresh Array.
func NewArrayBuilder() *ArrayBuilder {
	n := &Array{}
	n.Bind(n)
	return &ArrayBuilder{node: n}
}

// WithPos sets pos.
func (b *ArrayBuilder) WithPos(v string) *ArrayBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithAlias sets alias.
func (b *ArrayBuilder) WithAlias(v string) *ArrayBuilder {
	b.node.Alias = v
	b.node.set("alias")
	return b
}

// WithType sets type.
func (b *ArrayBuilder) WithType(v string) *ArrayBuilder {
	b.node.Type = v
	b.node.set("type")
	return b
}

// WithItems sets items.
func (b *ArrayBuilder) WithItems(v []Element) *ArrayBuilder {
	attachAll(b.node, v)
	b.node.Items = v
	b.node.set("items")
	return b
}

// WithDirection sets direction.
func (b *ArrayBuilder) WithDirection(v string) *ArrayBuilder {
	b.node.Direction = v
	b.node.set("direction")
	return b
}

// Build returns the Array. Repeated calls return the same node.
func (b *ArrayBuilder) Build() *Array {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *ArrayBuilder) Built() bool { return b.built }

// Row is a row value constructor.
type Row struct {
	node

	Pos       string
	Exprs     []Element
	Alias     string
	Direction string
}

// Kind implements Node.
func (*Row) Kind() string { return "Row" }

func (n *Row) position() string { return n.Pos }

// RowBuilder assembles a Row.
type RowBuilder struct {
	node  *Row
	built bool
}

// NewRowBuilder returns a builder bound to a fresh Row.
func NewRowBuilder() *RowBuilder {
	n := &Row{}
	n.Bind(n)
	return &RowBuilder{node: n}
}

// WithPos sets pos.
func (b *RowBuilder) WithPos(v string) *RowBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithExprs sets exprs.
func (b *RowBuilder) WithExprs(v []Element) *RowBuilder {
	attachAll(b.node, v)
	b.node.Exprs = v
	b.node.set("exprs")
	return b
}

// WithAlias sets alias.
func (b *RowBuilder) WithAlias(v string) *RowBuilder {
	b.node.Alias = v
	b.node.set("alias")
	return b
}

// WithDirection sets direction.
func (b *RowBuilder) WithDirection(v string) *RowBuilder {
	b.node.Direction = v
	b.node.set("direction")
	return b
}

// Build returns the Row. Repeated calls return the same node.
func (b *RowBuilder) Build() *Row {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *RowBuilder) Built() bool { return b.built }

// Position is a POSITION(sub IN str) call.
type Position struct {
	node

	Str       Element
	SubStr    Element
	Pos       string
	Alias     string
	Direction string
}

// Kind implements Node.
func (*Position) Kind() string { return "Position" }

func (n *Position) position() string { return n.Pos }

// PositionBuilder assembles a Position.
type PositionBuilder struct {
	node  *Position
	built bool
}

// NewPositionBuilder returns a builder bound to a fresh Position.
func NewPositionBuilder() *PositionBuilder {
	n := &Position{}
	n.Bind(n)
	return &PositionBuilder{node: n}
}

// WithStr sets string.
func (b *PositionBuilder) WithStr(v Element) *PositionBuilder {
	attach(b.node, v)
	b.node.Str = v
	b.node.set("string")
	return b
}

// WithSubStr sets subString.
func (b *PositionBuilder) WithSubStr(v Element) *PositionBuilder {
	attach(b.node, v)
	b.node.SubStr = v
	b.node.set("subString")
	return b
}

// WithPos sets pos.
func (b *PositionBuilder) WithPos(v string) *PositionBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithAlias sets alias.
func (b *PositionBuilder) WithAlias(v string) *PositionBuilder {
	b.node.Alias = v
	b.node.set("alias")
	return b
}

// WithDirection sets direction.
func (b *PositionBuilder) WithDirection(v string) *PositionBuilder {
	b.node.Direction = v
	b.node.set("direction")
	return b
}

// Build returns the Position. Repeated calls return the same node.
func (b *PositionBuilder) Build() *Position {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *PositionBuilder) Built() bool { return b.built }

// Current is CURRENT_DATE, CURRENT_TIMESTAMP and friends.
type Current struct {
	node

	Pos       string
	Alias     string
	Type      string
	Direction string
}

// Kind implements Node.
func (*Current) Kind() string { return "Current" }

func (n *Current) position() string { return n.Pos }

// CurrentBuilder assembles a Current.
type CurrentBuilder struct {
	node  *Current
	built bool
}

// NewCurrentBuilder returns a builder bound to a fresh Current.
func NewCurrentBuilder() *CurrentBuilder {
	n := &Current{}
	n.Bind(n)
	return &CurrentBuilder{node: n}
}

// WithPos sets pos.
func (b *CurrentBuilder) WithPos(v string) *CurrentBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithAlias sets alias.
func (b *CurrentBuilder) WithAlias(v string) *CurrentBuilder {
	b.node.Alias = v
	b.node.set("alias")
	return b
}

// WithType sets type.
func (b *CurrentBuilder) WithType(v string) *CurrentBuilder {
	b.node.Type = v
	b.node.set("type")
	return b
}

// WithDirection sets direction.
func (b *CurrentBuilder) WithDirection(v string) *CurrentBuilder {
	b.node.Direction = v
	b.node.set("direction")
	return b
}

// Build returns the Current. Repeated calls return the same node.
func (b *CurrentBuilder) Build() *Current {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *CurrentBuilder) Built() bool { return b.built }

// WrappedExpr is a parenthesised expression.
type WrappedExpr struct {
	node

	Expr Element
}

// Kind implements Node.
func (*WrappedExpr) Kind() string { return "WrappedExpr" }

// WrappedExprBuilder assembles a WrappedExpr.
type WrappedExprBuilder struct {
	node  *WrappedExpr
	built bool
}

// NewWrappedExprBuilder returns a builder bound to a fresh WrappedExpr.
func NewWrappedExprBuilder() *WrappedExprBuilder {
	n := &WrappedExpr{}
	n.Bind(n)
	return &WrappedExprBuilder{node: n}
}

// WithExpr sets expr.
func (b *WrappedExprBuilder) WithExpr(v Element) *WrappedExprBuilder {
	attach(b.node, v)
	b.node.Expr = v
	b.node.set("expr")
	return b
}

// Build returns the WrappedExpr. Repeated calls return the same node.
func (b *WrappedExprBuilder) Build() *WrappedExpr {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *WrappedExprBuilder) Built() bool { return b.built }
