package core

// Statement represents a SQL statement node. Once built, a statement is
// immutable; normalization produces a new result without mutating it.
type Statement interface {
	stmtNode()
}

// SelectStmt represents a single SELECT pipeline (one set-operation operand).
type SelectStmt struct {
	Distinct   bool
	DistinctOn []Expr
	Items      []SelectItem
	From       []FromItem
	Where      Expr
	GroupBy    []Expr
	Having     Expr
	Qualify    Expr
	Windows    []WindowDef
	OrderBy    []OrderItem
	Limit      Expr
	Offset     Expr
	Locking    *LockingClause
}

func (*SelectStmt) stmtNode() {}

// SelectItem represents one projection with an optional alias.
type SelectItem struct {
	Expr  Expr
	Alias string
}

// WindowDef represents a named window definition in the WINDOW clause.
type WindowDef struct {
	Name string
	Spec *WindowSpec
}

// FromItem is one source in the FROM list. The first item has an empty Join;
// subsequent items carry the join keyword that introduced them ("" for a
// comma-separated implicit cross join).
type FromItem struct {
	Join   string // "", "join", "inner join", "left join", "join lateral", ...
	Source TableRef
	On     Expr
	Using  []Expr
}

// TableRef represents a table reference in the FROM clause.
type TableRef interface {
	tableRefNode()
}

// TableName represents a plain (possibly qualified) table reference.
type TableName struct {
	Name   *Ident
	Alias  string
	Sample *TableSample
}

func (*TableName) tableRefNode() {}

// SubqueryTable represents a derived table, optionally LATERAL.
type SubqueryTable struct {
	Query   Statement
	Alias   string
	Lateral bool
}

func (*SubqueryTable) tableRefNode() {}

// TableSample represents a TABLESAMPLE method (arg) [PERCENT|ROWS] modifier.
type TableSample struct {
	Method  string
	Value   Expr
	Percent bool
	Rows    bool
}

// LockingClause represents FOR UPDATE|SHARE [OF table] [NOWAIT|SKIP LOCKED].
type LockingClause struct {
	Mode       string // "update" or "share"
	Table      *Ident // nil without OF
	Nowait     bool
	SkipLocked bool
}

// SetOpStmt combines two statement operands with a set operation.
// Chains are strictly left-associative: the left operand of an outer node
// may itself be a SetOpStmt, the right operand never is for the same chain.
type SetOpStmt struct {
	Op    string // "union", "intersect", "except"
	All   bool
	Left  Statement
	Right Statement
}

func (*SetOpStmt) stmtNode() {}

// WithStmt represents WITH bindings wrapping a body statement.
type WithStmt struct {
	Recursive bool
	CTEs      []CTE
	Body      Statement
}

func (*WithStmt) stmtNode() {}

// CTE is one name → statement binding of a WITH clause.
type CTE struct {
	Name  string
	Query Statement
}

// InsertStmt represents INSERT INTO with a VALUES payload or a query.
type InsertStmt struct {
	Table     *Ident
	Columns   []string
	Values    [][]Expr  // literal VALUES rows; nil when Query is set
	Query     Statement // SELECT payload; nil when Values is set
	Returning []SelectItem
}

func (*InsertStmt) stmtNode() {}

// UpdateStmt represents UPDATE ... SET ... [WHERE ...].
type UpdateStmt struct {
	Table     *Ident
	Set       []SetItem
	Where     Expr
	Returning []SelectItem
}

func (*UpdateStmt) stmtNode() {}

// SetItem is one column = value assignment.
type SetItem struct {
	Column string
	Value  Expr
}

// DeleteStmt represents DELETE FROM ... [WHERE ...].
type DeleteStmt struct {
	Table     *Ident
	Where     Expr
	Returning []SelectItem
}

func (*DeleteStmt) stmtNode() {}

// CreateTableStmt represents CREATE TABLE with column definitions and
// table-level constraints in source order.
type CreateTableStmt struct {
	Name        *Ident
	Columns     []ColumnDef
	Constraints []TableConstraint
}

func (*CreateTableStmt) stmtNode() {}

// ColumnDef is one column definition.
type ColumnDef struct {
	Name       string
	Type       *TypeSpec
	NotNull    bool
	Default    Expr
	PrimaryKey bool
	Unique     bool
	Identity   *IdentitySpec
}

// IdentitySpec represents GENERATED ALWAYS|BY DEFAULT AS IDENTITY [START WITH n].
type IdentitySpec struct {
	Generated string // "always" or "by_default"
	StartWith Expr   // nil when absent
}

// TableConstraint is one table-level constraint.
type TableConstraint struct {
	Name       string
	PrimaryKey []string
	Unique     []string
	ForeignKey *ForeignKey
	Check      Expr
}

// ForeignKey represents FOREIGN KEY (cols) REFERENCES table (cols) [ON DELETE ...].
type ForeignKey struct {
	Columns    []string
	RefTable   *Ident
	RefColumns []string
	OnDelete   string
	OnUpdate   string
}
