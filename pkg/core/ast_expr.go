package core

import "github.com/paull87/mo-sql-parsing/pkg/token"

// Expr represents a scalar expression node in the parse tree.
// Nodes are built bottom-up during parsing and are strictly tree-shaped:
// each node is owned by exactly one parent.
type Expr interface {
	exprNode()
}

// LiteralKind classifies literal values.
type LiteralKind int

// LiteralKind constants for SQL literal value types.
const (
	LiteralNumber LiteralKind = iota
	LiteralString
	LiteralBool
	LiteralNull
)

// Literal represents a literal value. Value holds the raw text for numbers
// and the unquoted content for strings.
type Literal struct {
	Kind  LiteralKind
	Value string
}

func (*Literal) exprNode() {}

// IdentPart is one dot-separated component of an identifier.
// Quoted parts preserve their content verbatim (including dots).
type IdentPart struct {
	Name   string
	Quoted bool
}

// Ident represents a possibly-qualified identifier such as a column or
// table reference.
type Ident struct {
	Parts []IdentPart
}

func (*Ident) exprNode() {}

// Name returns a new single-part unquoted identifier.
func Name(s string) *Ident {
	return &Ident{Parts: []IdentPart{{Name: s}}}
}

// Star represents a * expression, optionally qualified (t.*).
type Star struct {
	Table string
}

func (*Star) exprNode() {}

// Binary represents a binary operator expression.
type Binary struct {
	Op    token.TokenType
	Left  Expr
	Right Expr
}

func (*Binary) exprNode() {}

// Unary represents a unary operator expression.
type Unary struct {
	Op   token.TokenType
	Expr Expr
}

func (*Unary) exprNode() {}

// FuncCall represents an ordinary function call, possibly with a FILTER
// clause or a window OVER clause attached.
type FuncCall struct {
	Name     string
	Distinct bool
	Star     bool // COUNT(*)
	Args     []Expr
	Filter   Expr
	Over     *WindowSpec
}

func (*FuncCall) exprNode() {}

// Case represents a CASE expression.
type Case struct {
	Operand Expr // simple CASE operand, nil for searched CASE
	Whens   []When
	Else    Expr
}

func (*Case) exprNode() {}

// When is one WHEN ... THEN ... arm of a CASE expression.
type When struct {
	Condition Expr
	Result    Expr
}

// TypePart is one component of a type specification: a name with optional
// parameters, e.g. varchar(255) or day(3).
type TypePart struct {
	Name string
	Args []Expr
}

// TypeSpec is a type specification. Most types have a single part; interval
// unit ranges (MINUTE TO SECOND) carry one part per endpoint.
type TypeSpec struct {
	Parts []TypePart
}

// Cast represents CAST(expr AS type) and the postfix expr::type form.
type Cast struct {
	Expr Expr
	Type *TypeSpec
}

func (*Cast) exprNode() {}

// Trim represents the multi-keyword TRIM([mode] [chars] FROM string) form
// and the plain TRIM(string) call.
type Trim struct {
	Expr  Expr
	Chars Expr   // nil when absent
	Mode  string // "", "leading", "trailing", "both"
}

func (*Trim) exprNode() {}

// Substring represents SUBSTRING(string FROM start [FOR length]).
type Substring struct {
	Expr Expr
	From Expr
	For  Expr // nil when absent
}

func (*Substring) exprNode() {}

// Extract represents EXTRACT(unit FROM expr).
type Extract struct {
	Unit string
	Expr Expr
}

func (*Extract) exprNode() {}

// IntervalTerm is one signed (amount, unit) pair of an interval literal.
type IntervalTerm struct {
	Amount Expr
	Unit   string
}

// IntervalExpr represents an interval literal decomposed into terms in
// descending unit order (year first, second last).
type IntervalExpr struct {
	Terms []IntervalTerm
}

func (*IntervalExpr) exprNode() {}

// In represents an [NOT] IN expression with a value list or subquery.
type In struct {
	Expr   Expr
	Not    bool
	Values []Expr
	Query  Statement
}

func (*In) exprNode() {}

// Between represents a [NOT] BETWEEN expression.
type Between struct {
	Expr Expr
	Not  bool
	Low  Expr
	High Expr
}

func (*Between) exprNode() {}

// Like represents a [NOT] LIKE/ILIKE expression.
type Like struct {
	Expr            Expr
	Not             bool
	Pattern         Expr
	CaseInsensitive bool // ILIKE
}

func (*Like) exprNode() {}

// IsNull represents IS [NOT] NULL.
type IsNull struct {
	Expr Expr
	Not  bool
}

func (*IsNull) exprNode() {}

// Exists represents [NOT] EXISTS (subquery).
type Exists struct {
	Not   bool
	Query Statement
}

func (*Exists) exprNode() {}

// Subquery represents a parenthesized statement used as a scalar expression.
type Subquery struct {
	Query Statement
}

func (*Subquery) exprNode() {}

// AtTimeZone represents the postfix expr AT TIME ZONE zone operator.
type AtTimeZone struct {
	Expr Expr
	Zone Expr
}

func (*AtTimeZone) exprNode() {}

// WindowSpec represents a window specification (OVER clause).
type WindowSpec struct {
	Name        string // named window reference
	PartitionBy []Expr
	OrderBy     []OrderItem
	Frame       *FrameSpec
}

// OrderItem represents one ordering expression with direction.
type OrderItem struct {
	Expr       Expr
	Sort       string // "", "asc", "desc"
	NullsFirst *bool  // nil means default
}

// FrameSpec represents a window frame specification.
type FrameSpec struct {
	Type  FrameType
	Start *FrameBound
	End   *FrameBound
}

// FrameType represents the type of window frame.
type FrameType string

// FrameType constants for window frame specification types.
const (
	FrameRows   FrameType = "rows"
	FrameRange  FrameType = "range"
	FrameGroups FrameType = "groups"
)

// FrameBound represents a window frame bound.
type FrameBound struct {
	Type   FrameBoundType
	Offset Expr // for N PRECEDING / N FOLLOWING
}

// FrameBoundType represents the type of frame bound.
type FrameBoundType string

// FrameBoundType constants for window frame bound types.
const (
	FrameUnboundedPreceding FrameBoundType = "unbounded_preceding"
	FrameUnboundedFollowing FrameBoundType = "unbounded_following"
	FrameCurrentRow         FrameBoundType = "current_row"
	FrameExprPreceding      FrameBoundType = "preceding"
	FrameExprFollowing      FrameBoundType = "following"
)
