// Package ast declares the syntax tree produced by the Corona parser.
//
// Leaves refer to tokens by their index in the token sequence the tree was
// parsed from; composite nodes own their children. Optional single children
// are never nil: an omitted clause is represented by *Null, which is still
// visited like any other node.
package ast

// Node is implemented by every syntax tree node.
type Node interface {
	Kind() Kind
	// Accept calls v.Act on the node and, when it returns Descend, accepts
	// each child in source order.
	Accept(v Visitor)
}

// Null stands for an optional production that matched nothing.
type Null struct{}

type Identifier struct{ Index int }
type Integer struct{ Index int }
type Float struct{ Index int }
type ImagInteger struct{ Index int }
type ImagFloat struct{ Index int }
type String struct{ Index int }
type ByteString struct{ Index int }
type PrefixedString struct{ Index int }

// StringList is two or more adjacent string literals.
type StringList struct {
	Strings []Node
}

type NoneLiteral struct{ Index int }

type Bool struct {
	Index int
	Value bool
}

// Operator refers to the token(s) spelling an operator. Rem is the index of
// the second token of two-token operators such as `not in` and `is not`, or
// -1.
type Operator struct {
	Op  int
	Rem int
}

// HasRem reports whether the operator spans two tokens.
func (o *Operator) HasRem() bool { return o.Rem >= 0 }

type UnaryExpr struct {
	Expr Node
	Op   *Operator
}

type BinaryExpr struct {
	LHS Node
	Op  *Operator
	RHS Node
}

// IfExpr is the conditional expression `Then if Cond else Else`.
type IfExpr struct {
	Then Node
	Cond Node
	Else Node
}

// NamedExpression is `Name := Expr`.
type NamedExpression struct {
	Name *Identifier
	Expr Node
}

// FuncExpr is a lambda. Body holds a single expression for inline lambdas
// and the statements of the block for block lambdas.
type FuncExpr struct {
	Params  Node
	Body    []Node
	IsBlock bool
}

type TupleRestExpr struct{ Expr Node }
type NamedTupleRestExpr struct{ Expr Node }

// Comprehension is a generator, list, set or dict comprehension. KeyExpr is
// Null except for dict comprehensions.
type Comprehension struct {
	Type    ComprehensionType
	KeyExpr Node
	Expr    Node
	For     *ComprehensionFor
}

// ComprehensionFor is one `async? for Var in Iterable where Where` clause.
// Nested is the following clause or Null.
type ComprehensionFor struct {
	IsAsync  bool
	Var      Node
	Iterable Node
	Where    Node
	Nested   Node
}

type Yield struct {
	Exprs  []Node
	IsFrom bool
}

type Dict struct {
	Pairs []*KeyValue
}

type KeyValue struct {
	Key   Node
	Value Node
}

type Set struct{ Exprs []Node }
type List struct{ Exprs []Node }
type Tuple struct{ Exprs []Node }

// SubscriptIndex is either a plain index (IsSlice false, From set) or a
// slice `From:Skip:To` where any part may be Null.
type SubscriptIndex struct {
	From    Node
	Skip    Node
	To      Node
	IsSlice bool
}

type Subscript struct {
	Expr    Node
	Indices []*SubscriptIndex
}

// Argument is a call argument; Name is Null for positional arguments.
type Argument struct {
	Name Node
	Expr Node
}

type Call struct {
	Expr      Node
	Arguments []*Argument
}

type Field struct {
	Expr Node
	Name *Identifier
}

type AwaitedExpr struct{ Expr Node }

type FuncParam struct {
	Name    *Identifier
	Type    Node
	Default Node
}

// PositionalParamsSeparator is the `/` in a parameter list.
type PositionalParamsSeparator struct{ Index int }

// FuncParams groups a parameter list. Params holds *FuncParam and
// *PositionalParamsSeparator entries in source order.
type FuncParams struct {
	Params         []Node
	TupleRest      Node
	KeywordOnly    []*FuncParam
	NamedTupleRest Node
}

type TupleLHS struct{ Exprs []Node }
type ListLHS struct{ Exprs []Node }

type Program struct{ Statements []Node }

// Block is a suite: the statements of an inline body or an indented block.
type Block struct{ Statements []Node }

type ExprStatement struct{ Expr Node }

// AssignmentStatement covers plain, chained, augmented and annotated
// assignment. Op is `=` or the augmented operator; for a bare annotated
// declaration Op is nil and Value is Null.
type AssignmentStatement struct {
	Targets []Node
	Type    Node
	Op      *Operator
	Value   Node
}

type PassStatement struct{ Index int }
type BreakStatement struct{ Index int }
type ContinueStatement struct{ Index int }

type ReturnStatement struct{ Exprs []Node }

type RaiseStatement struct {
	Expr Node
	From Node
}

type AssertStatement struct {
	Cond    Node
	Message Node
}

type DelStatement struct{ Targets []Node }

type Globals struct{ Names []*Identifier }
type NonLocals struct{ Names []*Identifier }

// ImportStatement is `import Main, More...` or `from Main import SubPaths`.
type ImportStatement struct {
	Main     *MainPath
	More     []*MainPath
	SubPaths []*SubPath
}

type MainPath struct {
	RelativeLevel int
	Names         []*Identifier
	Alias         Node
}

type SubPath struct {
	Names       []*Identifier
	Alias       Node
	IsImportAll bool
}

// Decorator is `@path` or `@path(arguments)`.
type Decorator struct {
	Path      []*Identifier
	IsCall    bool
	Arguments []*Argument
}

type Function struct {
	Decorators []*Decorator
	IsAsync    bool
	Name       *Identifier
	Generics   Node
	Params     Node
	ReturnType Node
	Body       *Block
}

type Class struct {
	Decorators []*Decorator
	Name       *Identifier
	Generics   Node
	Parents    []Node
	Body       *Block
}

type IfStatement struct {
	Cond  Node
	Body  *Block
	Elifs []*Elif
	Else  Node
}

type Elif struct {
	Cond Node
	Body *Block
}

type WhileStatement struct {
	Cond  Node
	Where Node
	Body  *Block
	Else  Node
}

type ForStatement struct {
	IsAsync  bool
	Var      Node
	Iterable Node
	Where    Node
	Body     *Block
	Else     Node
}

type TryStatement struct {
	Body    *Block
	Excepts []*Except
	Else    Node
	Finally Node
}

type Except struct {
	Expr Node
	Name Node
	Body *Block
}

type WithStatement struct {
	IsAsync bool
	Items   []*WithArgument
	Body    *Block
}

type WithArgument struct {
	Expr Node
	Name Node
}

// Type is a nominal type: an identifier or None.
type Type struct{ Name Node }

type GenericType struct {
	Name *Identifier
	Args []Node
}

type FunctionType struct {
	Params []Node
	Return Node
}

type ListType struct{ Types []Node }
type TupleType struct{ Types []Node }
type IntersectionType struct{ Types []Node }
type UnionType struct{ Types []Node }
type GenericsAnnotation struct{ Types []Node }
