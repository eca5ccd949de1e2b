package model

// Statement holds the fields shared by every statement kind. A bare
// Statement is emitted for SELECT queries and anything unclassified.
type Statement struct {
	node

	Pos                 string
	RawInput            string
	AntiPatterns        []Element
	ClusterLogicalID    string
	ClusterRawID        string
	ClusterTopologyHiID string
	ClusterTopologyLoID string
	Ds                  []Element
}

// Kind implements Node.
func (*Statement) Kind() string { return "Statement" }

func (n *Statement) position() string { return n.Pos }

// Stmt implements Stmt.
func (s *Statement) Stmt() *Statement { return s }

// StatementBuilder assembles a Statement.
type StatementBuilder struct {
	node  *Statement
	built bool
}

// NewStatementBuilder returns a builder bound to a fresh Statement.
func NewStatementBuilder() *StatementBuilder {
	n := &Statement{}
	n.Bind(n)
	return &StatementBuilder{node: n}
}

// WithPos sets pos.
func (b *StatementBuilder) WithPos(v string) *StatementBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithRawInput sets rawInput.
func (b *StatementBuilder) WithRawInput(v string) *StatementBuilder {
	b.node.RawInput = v
	b.node.set("rawInput")
	return b
}

// WithAntiPatterns sets antiPatterns.
func (b *StatementBuilder) WithAntiPatterns(v []Element) *StatementBuilder {
	attachAll(b.node, v)
	b.node.AntiPatterns = v
	b.node.set("antiPatterns")
	return b
}

// WithClusterLogicalID sets clusterLogicalID.
func (b *StatementBuilder) WithClusterLogicalID(v string) *StatementBuilder {
	b.node.ClusterLogicalID = v
	b.node.set("clusterLogicalID")
	return b
}

// WithClusterRawID sets clusterRawID.
func (b *StatementBuilder) WithClusterRawID(v string) *StatementBuilder {
	b.node.ClusterRawID = v
	b.node.set("clusterRawID")
	return b
}

// WithClusterTopologyHiID sets clusterTopologyHiID.
func (b *StatementBuilder) WithClusterTopologyHiID(v string) *StatementBuilder {
	b.node.ClusterTopologyHiID = v
	b.node.set("clusterTopologyHiID")
	return b
}

// WithClusterTopologyLoID sets clusterTopologyLoID.
func (b *StatementBuilder) WithClusterTopologyLoID(v string) *StatementBuilder {
	b.node.ClusterTopologyLoID = v
	b.node.set("clusterTopologyLoID")
	return b
}

// WithDs sets ds.
func (b *StatementBuilder) WithDs(v []Element) *StatementBuilder {
	attachAll(b.node, v)
	b.node.Ds = v
	b.node.set("ds")
	return b
}

// Build returns the Statement. Repeated calls return the same node.
func (b *StatementBuilder) Build() *Statement {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *StatementBuilder) Built() bool { return b.built }

// CreateViewStatement is CREATE VIEW.
type CreateViewStatement struct {
	Statement

	DialExt DialectExtension
	SubType string
	Type    string
}

// Kind implements Node.
func (*CreateViewStatement) Kind() string { return "CreateViewStatement" }

// CreateViewStatementBuilder assembles a CreateViewStatement.
type CreateViewStatementBuilder struct {
	node  *CreateViewStatement
	built bool
}

// NewCreateViewStatementBuilder returns a builder bound to a fresh CreateViewStatement.
func NewCreateViewStatementBuilder() *CreateViewStatementBuilder {
	n := &CreateViewStatement{}
	n.Bind(n)
	return &CreateViewStatementBuilder{node: n}
}

// WithPos sets pos.
func (b *CreateViewStatementBuilder) WithPos(v string) *CreateViewStatementBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithRawInput sets rawInput.
func (b *CreateViewStatementBuilder) WithRawInput(v string) *CreateViewStatementBuilder {
	b.node.RawInput = v
	b.node.set("rawInput")
	return b
}

// WithAntiPatterns sets antiPatterns.
func (b *CreateViewStatementBuilder) WithAntiPatterns(v []Element) *CreateViewStatementBuilder {
	attachAll(b.node, v)
	b.node.AntiPatterns = v
	b.node.set("antiPatterns")
	return b
}

// WithClusterLogicalID sets clusterLogicalID.
func (b *CreateViewStatementBuilder) WithClusterLogicalID(v string) *CreateViewStatementBuilder {
	b.node.ClusterLogicalID = v
	b.node.set("clusterLogicalID")
	return b
}

// WithClusterRawID sets clusterRawID.
func (b *CreateViewStatementBuilder) WithClusterRawID(v string) *CreateViewStatementBuilder {
	b.node.ClusterRawID = v
	b.node.set("clusterRawID")
	return b
}

// WithClusterTopologyHiID sets clusterTopologyHiID.
func (b *CreateViewStatementBuilder) WithClusterTopologyHiID(v string) *CreateViewStatementBuilder {
	b.node.ClusterTopologyHiID = v
	b.node.set("clusterTopologyHiID")
	return b
}

// WithClusterTopologyLoID sets clusterTopologyLoID.
func (b *CreateViewStatementBuilder) WithClusterTopologyLoID(v string) *CreateViewStatementBuilder {
	b.node.ClusterTopologyLoID = v
	b.node.set("clusterTopologyLoID")
	return b
}

// WithDs sets ds.
func (b *CreateViewStatementBuilder) WithDs(v []Element) *CreateViewStatementBuilder {
	attachAll(b.node, v)
	b.node.Ds = v
	b.node.set("ds")
	return b
}

// WithDialExt sets dialExt.
func (b *CreateViewStatementBuilder) WithDialExt(v DialectExtension) *CreateViewStatementBuilder {
	b.node.DialExt = v
	b.node.set("dialExt")
	return b
}

// WithSubType sets subType.
func (b *CreateViewStatementBuilder) WithSubType(v string) *CreateViewStatementBuilder {
	b.node.SubType = v
	b.node.set("subType")
	return b
}

// WithType sets type.
func (b *CreateViewStatementBuilder) WithType(v string) *CreateViewStatementBuilder {
	b.node.Type = v
	b.node.set("type")
	return b
}

// Build returns the CreateViewStatement. Repeated calls return the same node.
func (b *CreateViewStatementBuilder) Build() *CreateViewStatement {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *CreateViewStatementBuilder) Built() bool { return b.built }

// CreateTableStatement is CREATE TABLE, including CTAS.
type CreateTableStatement struct {
	Statement

	DialExt DialectExtension
	SubType string
	Type    string
}

// Kind implements Node.
func (*CreateTableStatement) Kind() string { return "CreateTableStatement" }

// CreateTableStatementBuilder assembles a CreateTableStatement.
type CreateTableStatementBuilder struct {
	node  *CreateTableStatement
	built bool
}

// NewCreateTableStatementBuilder returns a builder bound to a fresh CreateTableStatement.
func NewCreateTableStatementBuilder() *CreateTableStatementBuilder {
	n := &CreateTableStatement{}
	n.Bind(n)
	return &CreateTableStatementBuilder{node: n}
}

// WithPos sets pos.
func (b *CreateTableStatementBuilder) WithPos(v string) *CreateTableStatementBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithRawInput sets rawInput.
func (b *CreateTableStatementBuilder) WithRawInput(v string) *CreateTableStatementBuilder {
	b.node.RawInput = v
	b.node.set("rawInput")
	return b
}

// WithAntiPatterns sets antiPatterns.
func (b *CreateTableStatementBuilder) WithAntiPatterns(v []Element) *CreateTableStatementBuilder {
	attachAll(b.node, v)
	b.node.AntiPatterns = v
	b.node.set("antiPatterns")
	return b
}

// WithClusterLogicalID sets clusterLogicalID.
func (b *CreateTableStatementBuilder) WithClusterLogicalID(v string) *CreateTableStatementBuilder {
	b.node.ClusterLogicalID = v
	b.node.set("clusterLogicalID")
	return b
}

// WithClusterRawID sets clusterRawID.
func (b *CreateTableStatementBuilder) WithClusterRawID(v string) *CreateTableStatementBuilder {
	b.node.ClusterRawID = v
	b.node.set("clusterRawID")
	return b
}

// WithClusterTopologyHiID sets clusterTopologyHiID.
func (b *CreateTableStatementBuilder) WithClusterTopologyHiID(v string) *CreateTableStatementBuilder {
	b.node.ClusterTopologyHiID = v
	b.node.set("clusterTopologyHiID")
	return b
}

// WithClusterTopologyLoID sets clusterTopologyLoID.
func (b *CreateTableStatementBuilder) WithClusterTopologyLoID(v string) *CreateTableStatementBuilder {
	b.node.ClusterTopologyLoID = v
	b.node.set("clusterTopologyLoID")
	return b
}

// WithDs sets ds.
func (b *CreateTableStatementBuilder) WithDs(v []Element) *CreateTableStatementBuilder {
	attachAll(b.node, v)
	b.node.Ds = v
	b.node.set("ds")
	return b
}

// WithDialExt sets dialExt.
func (b *CreateTableStatementBuilder) WithDialExt(v DialectExtension) *CreateTableStatementBuilder {
	b.node.DialExt = v
	b.node.set("dialExt")
	return b
}

// WithSubType sets subType.
func (b *CreateTableStatementBuilder) WithSubType(v string) *CreateTableStatementBuilder {
	b.node.SubType = v
	b.node.set("subType")
	return b
}

// WithType sets type.
func (b *CreateTableStatementBuilder) WithType(v string) *CreateTableStatementBuilder {
	b.node.Type = v
	b.node.set("type")
	return b
}

// Build returns the CreateTableStatement. Repeated calls return the same node.
func (b *CreateTableStatementBuilder) Build() *CreateTableStatement {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *CreateTableStatementBuilder) Built() bool { return b.built }

// CreateStageStatement is CREATE STAGE.
type CreateStageStatement struct {
	Statement

	DialExt DialectExtension
	Type    string
}

// Kind implements Node.
func (*CreateStageStatement) Kind() string { return "CreateStageStatement" }

// CreateStageStatementBuilder assembles a CreateStageStatement.
type CreateStageStatementBuilder struct {
	node  *CreateStageStatement
	built bool
}

// NewCreateStageStatementBuilder returns a builder bound to a fresh CreateStageStatement.
func NewCreateStageStatementBuilder() *CreateStageStatementBuilder {
	n := &CreateStageStatement{}
	n.Bind(n)
	return &CreateStageStatementBuilder{node: n}
}

// WithPos sets pos.
func (b *CreateStageStatementBuilder) WithPos(v string) *CreateStageStatementBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithRawInput sets rawInput.
func (b *CreateStageStatementBuilder) WithRawInput(v string) *CreateStageStatementBuilder {
	b.node.RawInput = v
	b.node.set("rawInput")
	return b
}

// WithAntiPatterns sets antiPatterns.
func (b *CreateStageStatementBuilder) WithAntiPatterns(v []Element) *CreateStageStatementBuilder {
	attachAll(b.node, v)
	b.node.AntiPatterns = v
	b.node.set("antiPatterns")
	return b
}

// WithClusterLogicalID sets clusterLogicalID.
func (b *CreateStageStatementBuilder) WithClusterLogicalID(v string) *CreateStageStatementBuilder {
	b.node.ClusterLogicalID = v
	b.node.set("clusterLogicalID")
	return b
}

// WithClusterRawID sets clusterRawID.
func (b *CreateStageStatementBuilder) WithClusterRawID(v string) *CreateStageStatementBuilder {
	b.node.ClusterRawID = v
	b.node.set("clusterRawID")
	return b
}

// WithClusterTopologyHiID sets clusterTopologyHiID.
func (b *CreateStageStatementBuilder) WithClusterTopologyHiID(v string) *CreateStageStatementBuilder {
	b.node.ClusterTopologyHiID = v
	b.node.set("clusterTopologyHiID")
	return b
}

// WithClusterTopologyLoID sets clusterTopologyLoID.
func (b *CreateStageStatementBuilder) WithClusterTopologyLoID(v string) *CreateStageStatementBuilder {
	b.node.ClusterTopologyLoID = v
	b.node.set("clusterTopologyLoID")
	return b
}

// WithDs sets ds.
func (b *CreateStageStatementBuilder) WithDs(v []Element) *CreateStageStatementBuilder {
	attachAll(b.node, v)
	b.node.Ds = v
	b.node.set("ds")
	return b
}

// WithDialExt sets dialExt.
func (b *CreateStageStatementBuilder) WithDialExt(v DialectExtension) *CreateStageStatementBuilder {
	b.node.DialExt = v
	b.node.set("dialExt")
	return b
}

// WithType sets type.
func (b *CreateStageStatementBuilder) WithType(v string) *CreateStageStatementBuilder {
	b.node.Type = v
	b.node.set("type")
	return b
}

// Build returns the CreateStageStatement. Repeated calls return the same node.
func (b *CreateStageStatementBuilder) Build() *CreateStageStatement {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *CreateStageStatementBuilder) Built() bool { return b.built }

// AlterTableStatement is ALTER TABLE.
type AlterTableStatement struct {
	Statement

	DialExt DialectExtension
	Type    string
}

// Kind implements Node.
func (*AlterTableStatement) Kind() string { return "AlterTableStatement" }

// AlterTableStatementBuilder assembles an AlterTableStatement.
type AlterTableStatementBuilder struct {
	node  *AlterTableStatement
	built bool
}

// NewAlterTableStatementBuilder returns a builder bound to a fresh AlterTableStatement.
func NewAlterTableStatementBuilder() *AlterTableStatementBuilder {
	n := &AlterTableStatement{}
	n.Bind(n)
	return &AlterTableStatementBuilder{node: n}
}

// WithPos sets pos.
func (b *AlterTableStatementBuilder) WithPos(v string) *AlterTableStatementBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithRawInput sets rawInput.
func (b *AlterTableStatementBuilder) WithRawInput(v string) *AlterTableStatementBuilder {
	b.node.RawInput = v
	b.node.set("rawInput")
	return b
}

// WithAntiPatterns sets antiPatterns.
func (b *AlterTableStatementBuilder) WithAntiPatterns(v []Element) *AlterTableStatementBuilder {
	attachAll(b.node, v)
	b.node.AntiPatterns = v
	b.node.set("antiPatterns")
	return b
}

// WithClusterLogicalID sets clusterLogicalID.
func (b *AlterTableStatementBuilder) WithClusterLogicalID(v string) *AlterTableStatementBuilder {
	b.node.ClusterLogicalID = v
	b.node.set("clusterLogicalID")
	return b
}

// WithClusterRawID sets clusterRawID.
func (b *AlterTableStatementBuilder) WithClusterRawID(v string) *AlterTableStatementBuilder {
	b.node.ClusterRawID = v
	b.node.set("clusterRawID")
	return b
}

// WithClusterTopologyHiID sets clusterTopologyHiID.
func (b *AlterTableStatementBuilder) WithClusterTopologyHiID(v string) *AlterTableStatementBuilder {
	b.node.ClusterTopologyHiID = v
	b.node.set("clusterTopologyHiID")
	return b
}

// WithClusterTopologyLoID sets clusterTopologyLoID.
func (b *AlterTableStatementBuilder) WithClusterTopologyLoID(v string) *AlterTableStatementBuilder {
	b.node.ClusterTopologyLoID = v
	b.node.set("clusterTopologyLoID")
	return b
}

// WithDs sets ds.
func (b *AlterTableStatementBuilder) WithDs(v []Element) *AlterTableStatementBuilder {
	attachAll(b.node, v)
	b.node.Ds = v
	b.node.set("ds")
	return b
}

// WithDialExt sets dialExt.
func (b *AlterTableStatementBuilder) WithDialExt(v DialectExtension) *AlterTableStatementBuilder {
	b.node.DialExt = v
	b.node.set("dialExt")
	return b
}

// WithType sets type.
func (b *AlterTableStatementBuilder) WithType(v string) *AlterTableStatementBuilder {
	b.node.Type = v
	b.node.set("type")
	return b
}

// Build returns the AlterTableStatement. Repeated calls return the same node.
func (b *AlterTableStatementBuilder) Build() *AlterTableStatement {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *AlterTableStatementBuilder) Built() bool { return b.built }

// InsertStatement is INSERT.
type InsertStatement struct {
	Statement

	DialExt DialectExtension
	SubType string
	Type    string
}

// Kind implements Node.
func (*InsertStatement) Kind() string { return "InsertStatement" }

// InsertStatementBuilder assembles an InsertStatement.
type InsertStatementBuilder struct {
	node  *InsertStatement
	built bool
}

// NewInsertStatementBuilder returns a builder bound to a fresh InsertStatement.
func NewInsertStatementBuilder() *InsertStatementBuilder {
	n := &InsertStatement{}
	n.Bind(n)
	return &InsertStatementBuilder{node: n}
}

// WithPos sets pos.
func (b *InsertStatementBuilder) WithPos(v string) *InsertStatementBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithRawInput sets rawInput.
func (b *InsertStatementBuilder) WithRawInput(v string) *InsertStatementBuilder {
	b.node.RawInput = v
	b.node.set("rawInput")
	return b
}

// WithAntiPatterns sets antiPatterns.
func (b *InsertStatementBuilder) WithAntiPatterns(v []Element) *InsertStatementBuilder {
	attachAll(b.node, v)
	b.node.AntiPatterns = v
	b.node.set("antiPatterns")
	return b
}

// WithClusterLogicalID sets clusterLogicalID.
func (b *InsertStatementBuilder) WithClusterLogicalID(v string) *InsertStatementBuilder {
	b.node.ClusterLogicalID = v
	b.node.set("clusterLogicalID")
	return b
}

// WithClusterRawID sets clusterRawID.
func (b *InsertStatementBuilder) WithClusterRawID(v string) *InsertStatementBuilder {
	b.node.ClusterRawID = v
	b.node.set("clusterRawID")
	return b
}

// WithClusterTopologyHiID sets clusterTopologyHiID.
func (b *InsertStatementBuilder) WithClusterTopologyHiID(v string) *InsertStatementBuilder {
	b.node.ClusterTopologyHiID = v
	b.node.set("clusterTopologyHiID")
	return b
}

// WithClusterTopologyLoID sets clusterTopologyLoID.
func (b *InsertStatementBuilder) WithClusterTopologyLoID(v string) *InsertStatementBuilder {
	b.node.ClusterTopologyLoID = v
	b.node.set("clusterTopologyLoID")
	return b
}

// WithDs sets ds.
func (b *InsertStatementBuilder) WithDs(v []Element) *InsertStatementBuilder {
	attachAll(b.node, v)
	b.node.Ds = v
	b.node.set("ds")
	return b
}

// WithDialExt sets dialExt.
func (b *InsertStatementBuilder) WithDialExt(v DialectExtension) *InsertStatementBuilder {
	b.node.DialExt = v
	b.node.set("dialExt")
	return b
}

// WithSubType sets subType.
func (b *InsertStatementBuilder) WithSubType(v string) *InsertStatementBuilder {
	b.node.SubType = v
	b.node.set("subType")
	return b
}

// WithType sets type.
func (b *InsertStatementBuilder) WithType(v string) *InsertStatementBuilder {
	b.node.Type = v
	b.node.set("type")
	return b
}

// Build returns the InsertStatement. Repeated calls return the same node.
func (b *InsertStatementBuilder) Build() *InsertStatement {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *InsertStatementBuilder) Built() bool { return b.built }

// CopyStatement is COPY INTO.
type CopyStatement struct {
	Statement

	DialExt DialectExtension
	Type    string
}

// Kind implements Node.
func (*CopyStatement) Kind() string { return "CopyStatement" }

// CopyStatementBuilder assembles a CopyStatement.
type CopyStatementBuilder struct {
	node  *CopyStatement
	built bool
}

// NewCopyStatementBuilder returns a builder bound to a fresh CopyStatement.
func NewCopyStatementBuilder() *CopyStatementBuilder {
	n := &CopyStatement{}
	n.Bind(n)
	return &CopyStatementBuilder{node: n}
}

// WithPos sets pos.
func (b *CopyStatementBuilder) WithPos(v string) *CopyStatementBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithRawInput sets rawInput.
func (b *CopyStatementBuilder) WithRawInput(v string) *CopyStatementBuilder {
	b.node.RawInput = v
	b.node.set("rawInput")
	return b
}

// WithAntiPatterns sets antiPatterns.
func (b *CopyStatementBuilder) WithAntiPatterns(v []Element) *CopyStatementBuilder {
	attachAll(b.node, v)
	b.node.AntiPatterns = v
	b.node.set("antiPatterns")
	return b
}

// WithClusterLogicalID sets clusterLogicalID.
func (b *CopyStatementBuilder) WithClusterLogicalID(v string) *CopyStatementBuilder {
	b.node.ClusterLogicalID = v
	b.node.set("clusterLogicalID")
	return b
}

// WithClusterRawID sets clusterRawID.
func (b *CopyStatementBuilder) WithClusterRawID(v string) *CopyStatementBuilder {
	b.node.ClusterRawID = v
	b.node.set("clusterRawID")
	return b
}

// WithClusterTopologyHiID sets clusterTopologyHiID.
func (b *CopyStatementBuilder) WithClusterTopologyHiID(v string) *CopyStatementBuilder {
	b.node.ClusterTopologyHiID = v
	b.node.set("clusterTopologyHiID")
	return b
}

// WithClusterTopologyLoID sets clusterTopologyLoID.
func (b *CopyStatementBuilder) WithClusterTopologyLoID(v string) *CopyStatementBuilder {
	b.node.ClusterTopologyLoID = v
	b.node.set("clusterTopologyLoID")
	return b
}

// WithDs sets ds.
func (b *CopyStatementBuilder) WithDs(v []Element) *CopyStatementBuilder {
	attachAll(b.node, v)
	b.node.Ds = v
	b.node.set("ds")
	return b
}

// WithDialExt sets dialExt.
func (b *CopyStatementBuilder) WithDialExt(v DialectExtension) *CopyStatementBuilder {
	b.node.DialExt = v
	b.node.set("dialExt")
	return b
}

// WithType sets type.
func (b *CopyStatementBuilder) WithType(v string) *CopyStatementBuilder {
	b.node.Type = v
	b.node.set("type")
	return b
}

// Build returns the CopyStatement. Repeated calls return the same node.
func (b *CopyStatementBuilder) Build() *CopyStatement {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *CopyStatementBuilder) Built() bool { return b.built }

// UpdateStatement is UPDATE.
type UpdateStatement struct {
	Statement

	Type string
}

// Kind implements Node.
func (*UpdateStatement) Kind() string { return "UpdateStatement" }

// UpdateStatementBuilder assembles an UpdateStatement.
type UpdateStatementBuilder struct {
	node  *UpdateStatement
	built bool
}

// NewUpdateStatementBuilder returns a builder bound to a fresh UpdateStatement.
func NewUpdateStatementBuilder() *UpdateStatementBuilder {
	n := &UpdateStatement{}
	n.Bind(n)
	return &UpdateStatementBuilder{node: n}
}

// WithPos sets pos.
func (b *UpdateStatementBuilder) WithPos(v string) *UpdateStatementBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithRawInput sets rawInput.
func (b *UpdateStatementBuilder) WithRawInput(v string) *UpdateStatementBuilder {
	b.node.RawInput = v
	b.node.set("rawInput")
	return b
}

// WithAntiPatterns sets antiPatterns.
func (b *UpdateStatementBuilder) WithAntiPatterns(v []Element) *UpdateStatementBuilder {
	attachAll(b.node, v)
	b.node.AntiPatterns = v
	b.node.set("antiPatterns")
	return b
}

// WithClusterLogicalID sets clusterLogicalID.
func (b *UpdateStatementBuilder) WithClusterLogicalID(v string) *UpdateStatementBuilder {
	b.node.ClusterLogicalID = v
	b.node.set("clusterLogicalID")
	return b
}

// WithClusterRawID sets clusterRawID.
func (b *UpdateStatementBuilder) WithClusterRawID(v string) *UpdateStatementBuilder {
	b.node.ClusterRawID = v
	b.node.set("clusterRawID")
	return b
}

// WithClusterTopologyHiID sets clusterTopologyHiID.
func (b *UpdateStatementBuilder) WithClusterTopologyHiID(v string) *UpdateStatementBuilder {
	b.node.ClusterTopologyHiID = v
	b.node.set("clusterTopologyHiID")
	return b
}

// WithClusterTopologyLoID sets clusterTopologyLoID.
func (b *UpdateStatementBuilder) WithClusterTopologyLoID(v string) *UpdateStatementBuilder {
	b.node.ClusterTopologyLoID = v
	b.node.set("clusterTopologyLoID")
	return b
}

// WithDs sets ds.
func (b *UpdateStatementBuilder) WithDs(v []Element) *UpdateStatementBuilder {
	attachAll(b.node, v)
	b.node.Ds = v
	b.node.set("ds")
	return b
}

// WithType sets type.
func (b *UpdateStatementBuilder) WithType(v string) *UpdateStatementBuilder {
	b.node.Type = v
	b.node.set("type")
	return b
}

// Build returns the UpdateStatement. Repeated calls return the same node.
func (b *UpdateStatementBuilder) Build() *UpdateStatement {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *UpdateStatementBuilder) Built() bool { return b.built }

// DeleteStatement is DELETE.
type DeleteStatement struct {
	Statement

	Type string
}

// Kind implements Node.
func (*DeleteStatement) Kind() string { return "DeleteStatement" }

// DeleteStatementBuilder assembles a DeleteStatement.
type DeleteStatementBuilder struct {
	node  *DeleteStatement
	built bool
}

// NewDeleteStatementBuilder returns a builder bound to a fresh DeleteStatement.
func NewDeleteStatementBuilder() *DeleteStatementBuilder {
	n := &DeleteStatement{}
	n.Bind(n)
	return &DeleteStatementBuilder{node: n}
}

// WithPos sets pos.
func (b *DeleteStatementBuilder) WithPos(v string) *DeleteStatementBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithRawInput sets rawInput.
func (b *DeleteStatementBuilder) WithRawInput(v string) *DeleteStatementBuilder {
	b.node.RawInput = v
	b.node.set("rawInput")
	return b
}

// WithAntiPatterns sets antiPatterns.
func (b *DeleteStatementBuilder) WithAntiPatterns(v []Element) *DeleteStatementBuilder {
	attachAll(b.node, v)
	b.node.AntiPatterns = v
	b.node.set("antiPatterns")
	return b
}

// WithClusterLogicalID sets clusterLogicalID.
func (b *DeleteStatementBuilder) WithClusterLogicalID(v string) *DeleteStatementBuilder {
	b.node.ClusterLogicalID = v
	b.node.set("clusterLogicalID")
	return b
}

// WithClusterRawID sets clusterRawID.
func (b *DeleteStatementBuilder) WithClusterRawID(v string) *DeleteStatementBuilder {
	b.node.ClusterRawID = v
	b.node.set("clusterRawID")
	return b
}

// WithClusterTopologyHiID sets clusterTopologyHiID.
func (b *DeleteStatementBuilder) WithClusterTopologyHiID(v string) *DeleteStatementBuilder {
	b.node.ClusterTopologyHiID = v
	b.node.set("clusterTopologyHiID")
	return b
}

// WithClusterTopologyLoID sets clusterTopologyLoID.
func (b *DeleteStatementBuilder) WithClusterTopologyLoID(v string) *DeleteStatementBuilder {
	b.node.ClusterTopologyLoID = v
	b.node.set("clusterTopologyLoID")
	return b
}

// WithDs sets ds.
func (b *DeleteStatementBuilder) WithDs(v []Element) *DeleteStatementBuilder {
	attachAll(b.node, v)
	b.node.Ds = v
	b.node.set("ds")
	return b
}

// WithType sets type.
func (b *DeleteStatementBuilder) WithType(v string) *DeleteStatementBuilder {
	b.node.Type = v
	b.node.set("type")
	return b
}

// Build returns the DeleteStatement. Repeated calls return the same node.
func (b *DeleteStatementBuilder) Build() *DeleteStatement {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *DeleteStatementBuilder) Built() bool { return b.built }

// MergeStatement is MERGE.
type MergeStatement struct {
	Statement

	Type string
}

// Kind implements Node.
func (*MergeStatement) Kind() string { return "MergeStatement" }

// MergeStatementBuilder assembles a MergeStatement.
type MergeStatementBuilder struct {
	node  *MergeStatement
	built bool
}

// NewMergeStatementBuilder returns a builder bound to a fresh MergeStatement.
func NewMergeStatementBuilder() *MergeStatementBuilder {
	n := &MergeStatement{}
	n.Bind(n)
	return &MergeStatementBuilder{node: n}
}

// WithPos sets pos.
func (b *MergeStatementBuilder) WithPos(v string) *MergeStatementBuilder {
	b.node.Pos = v
	b.node.set("pos")
	return b
}

// WithRawInput sets rawInput.
func (b *MergeStatementBuilder) WithRawInput(v string) *MergeStatementBuilder {
	b.node.RawInput = v
	b.node.set("rawInput")
	return b
}

// WithAntiPatterns sets antiPatterns.
func (b *MergeStatementBuilder) WithAntiPatterns(v []Element) *MergeStatementBuilder {
	attachAll(b.node, v)
	b.node.AntiPatterns = v
	b.node.set("antiPatterns")
	return b
}

// WithClusterLogicalID sets clusterLogicalID.
func (b *MergeStatementBuilder) WithClusterLogicalID(v string) *MergeStatementBuilder {
	b.node.ClusterLogicalID = v
	b.node.set("clusterLogicalID")
	return b
}

// WithClusterRawID sets clusterRawID.
func (b *MergeStatementBuilder) WithClusterRawID(v string) *MergeStatementBuilder {
	b.node.ClusterRawID = v
	b.node.set("clusterRawID")
	return b
}

// WithClusterTopologyHiID sets clusterTopologyHiID.
func (b *MergeStatementBuilder) WithClusterTopologyHiID(v string) *MergeStatementBuilder {
	b.node.ClusterTopologyHiID = v
	b.node.set("clusterTopologyHiID")
	return b
}

// WithClusterTopologyLoID sets clusterTopologyLoID.
func (b *MergeStatementBuilder) WithClusterTopologyLoID(v string) *MergeStatementBuilder {
	b.node.ClusterTopologyLoID = v
	b.node.set("clusterTopologyLoID")
	return b
}

// WithDs sets ds.
func (b *MergeStatementBuilder) WithDs(v []Element) *MergeStatementBuilder {
	attachAll(b.node, v)
	b.node.Ds = v
	b.node.set("ds")
	return b
}

// WithType sets type.
func (b *MergeStatementBuilder) WithType(v string) *MergeStatementBuilder {
	b.node.Type = v
	b.node.set("type")
	return b
}

// Build returns the MergeStatement. Repeated calls return the same node.
func (b *MergeStatementBuilder) Build() *MergeStatement {
	b.built = true
	return b.node
}

// Built reports whether Build has been called.
func (b *MergeStatementBuilder) Built() bool { return b.built }
