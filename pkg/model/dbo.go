package model

// DBOHier is the hierarchy of database objects referenced by a submission.
type DBOHier struct {
	node

	DBOs []Element
}

// Kind implements Node.
func (*DBOHier) Kind() string { return "DBOHier" }

// DBOHierBuilder assembles a DBOHier.
type DBOHierBuilder struct {
	node  *DBOHier
	built bool
}

// NewDBOHierBuilder returns a builder bound to a fresh DBOHier.
func NewDBOHierBuilder() *DBOHierBuilder {
	n := &DBOHier{}
	n.Bind(n)
	return &DBOHierBuilder{node: n}
}

// WithDBOs sets dbo.
func (b *DBOHierBuilder) WithDBOs(v []Element) *DBOHierBuilder {
	attachAll(b.node, v)
	b.node.DBOs = v
	b.node.set("dbo")
	return b
}

// Build returns the DBOHier. Repeated calls return the same node.
func (b *DBOHierBuilder) Build() *DBOHier {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *DBOHierBuilder) Built() bool { return b.built }

// DBO is a database, schema, table or column in the object hierarchy.
type DBO struct {
	node

	DBOs       []Element
	Name       string
	Index      string
	DType      string
	Constraint string
	OID        string
	Type       string
}

// Kind implements Node.
func (*DBO) Kind() string { return "DBO" }

// DBOBuilder assembles a DBO.
type DBOBuilder struct {
	node  *DBO
	built bool
}

// NewDBOBuilder returns a builder bound to a fresh DBO.
func NewDBOBuilder() *DBOBuilder {
	n := &DBO{}
	n.Bind(n)
	return &DBOBuilder{node: n}
}

// WithDBOs sets dbo.
func (b *DBOBuilder) WithDBOs(v []Element) *DBOBuilder {
	attachAll(b.node, v)
	b.node.DBOs = v
	b.node.set("dbo")
	return b
}

// WithName sets name.
func (b *DBOBuilder) WithName(v string) *DBOBuilder {
	b.node.Name = v
	b.node.set("name")
	return b
}

// WithIndex sets index.
func (b *DBOBuilder) WithIndex(v string) *DBOBuilder {
	b.node.Index = v
	b.node.set("index")
	return b
}

// WithDType sets dtype.
func (b *DBOBuilder) WithDType(v string) *DBOBuilder {
	b.node.DType = v
	b.node.set("dtype")
	return b
}

// WithConstraint sets constraint.
func (b *DBOBuilder) WithConstraint(v string) *DBOBuilder {
	b.node.Constraint = v
	b.node.set("constraint")
	return b
}

// WithOID sets oid.
func (b *DBOBuilder) WithOID(v string) *DBOBuilder {
	b.node.OID = v
	b.node.set("oid")
	return b
}

// WithType sets type.
func (b *DBOBuilder) WithType(v string) *DBOBuilder {
	b.node.Type = v
	b.node.set("type")
	return b
}

// Build returns the DBO. Repeated calls return the same node.
func (b *DBOBuilder) Build() *DBO {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *DBOBuilder) Built() bool { return b.built }

// AntiPatterns groups the anti-patterns detected in a statement.
type AntiPatterns struct {
	node

	AntiPatterns []Element
}

// Kind implements Node.
func (*AntiPatterns) Kind() string { return "AntiPatterns" }

// AntiPatternsBuilder assembles an AntiPatterns.
type AntiPatternsBuilder struct {
	node  *AntiPatterns
	built bool
}

// NewAntiPatternsBuilder returns a builder bound to a fresh AntiPatterns.
func NewAntiPatternsBuilder() *AntiPatternsBuilder {
	n := &AntiPatterns{}
	n.Bind(n)
	return &AntiPatternsBuilder{node: n}
}

// WithAntiPatterns sets antiPattern.
func (b *AntiPatternsBuilder) WithAntiPatterns(v []Element) *AntiPatternsBuilder {
	attachAll(b.node, v)
	b.node.AntiPatterns = v
	b.node.set("antiPattern")
	return b
}

// Build returns the AntiPatterns. Repeated calls return the same node.
func (b *AntiPatternsBuilder) Build() *AntiPatterns {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *AntiPatternsBuilder) Built() bool { return b.built }

// AntiPattern is a single detected anti-pattern.
type AntiPattern struct {
	node

	Severity    string
	Readability string
	Correctness string
	Performance string
	Pos         []string
	Link        string
	Type        string
	Name        string
}

// Kind implements Node.
func (*AntiPattern) Kind() string { return "AntiPattern" }

// AntiPatternBuilder assembles an AntiPattern.
type AntiPatternBuilder struct {
	node  *AntiPattern
	built bool
}

// NewAntiPatternBuilder returns a builder bound to a fresh AntiPattern.
func NewAntiPatternBuilder() *AntiPatternBuilder {
	n := &AntiPattern{}
	n.Bind(n)
	return &AntiPatternBuilder{node: n}
}

// WithSeverity sets severity.
func (b *AntiPatternBuilder) WithSeverity(v string) *AntiPatternBuilder {
	b.node.Severity = v
	b.node.set("severity")
	return b
}

// WithReadability sets readability.
func (b *AntiPatternBuilder) WithReadability(v string) *AntiPatternBuilder {
	b.node.Readability = v
	b.node.set("readability")
	return b
}

// WithCorrectness sets correctness.
func (b *AntiPatternBuilder) WithCorrectness(v string) *AntiPatternBuilder {
	b.node.Correctness = v
	b.node.set("correctness")
	return b
}

// WithPerformance sets performance.
func (b *AntiPatternBuilder) WithPerformance(v string) *AntiPatternBuilder {
	b.node.Performance = v
	b.node.set("performance")
	return b
}

// WithPos sets pos.
func (b *AntiPatternBuilder) WithPos(v []string) *AntiPatternBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithLink sets link.
func (b *AntiPatternBuilder) WithLink(v string) *AntiPatternBuilder {
	b.node.Link = v
	b.node.set("link")
	return b
}

// WithType sets type.
func (b *AntiPatternBuilder) WithType(v string) *AntiPatternBuilder {
	b.node.Type = v
	b.node.set("type")
	return b
}

// WithName sets name.
func (b *AntiPatternBuilder) WithName(v string) *AntiPatternBuilder {
	b.node.Name = v
	b.node.set("name")
	return b
}

// Build returns the AntiPattern. Repeated calls return the same node.
func (b *AntiPatternBuilder) Build() *AntiPattern {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *AntiPatternBuilder) Built() bool { return b.built }
