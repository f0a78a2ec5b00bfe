package ast

// Control tells a traversal whether to visit the children of the node just
// acted upon.
type Control int

const (
	Descend Control = iota
	Prune
)

// Visitor is the consumer side of a traversal.
type Visitor interface {
	Act(n Node) Control
}

// VisitorFunc adapts a function to the Visitor interface.
type VisitorFunc func(n Node) Control

func (f VisitorFunc) Act(n Node) Control { return f(n) }

// Walk calls v.Act on n and, unless it returns Prune, walks each child of n
// in the order reported by Children.
func Walk(v Visitor, n Node) {
	if n == nil {
		return
	}
	if v.Act(n) == Prune {
		return
	}
	for _, child := range Children(n) {
		child.Accept(v)
	}
}

// Inspect walks n depth-first, descending while f returns true.
func Inspect(n Node, f func(Node) bool) {
	Walk(VisitorFunc(func(n Node) Control {
		if f(n) {
			return Descend
		}
		return Prune
	}), n)
}

// Children returns the direct children of n. The order is fixed per node
// kind and follows source order, except that UnaryExpr always yields its
// operator before its operand.
func Children(n Node) []Node {
	var c children
	switch n := n.(type) {
	case *StringList:
		c.list(n.Strings)
	case *UnaryExpr:
		c.add(n.Op, n.Expr)
	case *BinaryExpr:
		c.add(n.LHS, n.Op, n.RHS)
	case *IfExpr:
		c.add(n.Then, n.Cond, n.Else)
	case *NamedExpression:
		c.add(n.Name, n.Expr)
	case *FuncExpr:
		c.add(n.Params)
		c.list(n.Body)
	case *TupleRestExpr:
		c.add(n.Expr)
	case *NamedTupleRestExpr:
		c.add(n.Expr)
	case *Comprehension:
		c.add(n.KeyExpr, n.Expr, n.For)
	case *ComprehensionFor:
		c.add(n.Var, n.Iterable, n.Where, n.Nested)
	case *Yield:
		c.list(n.Exprs)
	case *Dict:
		for _, p := range n.Pairs {
			c.add(p)
		}
	case *KeyValue:
		c.add(n.Key, n.Value)
	case *Set:
		c.list(n.Exprs)
	case *List:
		c.list(n.Exprs)
	case *Tuple:
		c.list(n.Exprs)
	case *SubscriptIndex:
		c.add(n.From, n.Skip, n.To)
	case *Subscript:
		c.add(n.Expr)
		for _, i := range n.Indices {
			c.add(i)
		}
	case *Argument:
		c.add(n.Name, n.Expr)
	case *Call:
		c.add(n.Expr)
		for _, a := range n.Arguments {
			c.add(a)
		}
	case *Field:
		c.add(n.Expr, n.Name)
	case *AwaitedExpr:
		c.add(n.Expr)
	case *FuncParam:
		c.add(n.Name, n.Type, n.Default)
	case *FuncParams:
		c.list(n.Params)
		c.add(n.TupleRest)
		for _, p := range n.KeywordOnly {
			c.add(p)
		}
		c.add(n.NamedTupleRest)
	case *TupleLHS:
		c.list(n.Exprs)
	case *ListLHS:
		c.list(n.Exprs)
	case *Program:
		c.list(n.Statements)
	case *Block:
		c.list(n.Statements)
	case *ExprStatement:
		c.add(n.Expr)
	case *AssignmentStatement:
		c.list(n.Targets)
		c.add(n.Type)
		if n.Op != nil {
			c.add(n.Op)
		}
		c.add(n.Value)
	case *ReturnStatement:
		c.list(n.Exprs)
	case *RaiseStatement:
		c.add(n.Expr, n.From)
	case *AssertStatement:
		c.add(n.Cond, n.Message)
	case *DelStatement:
		c.list(n.Targets)
	case *Globals:
		c.idents(n.Names)
	case *NonLocals:
		c.idents(n.Names)
	case *ImportStatement:
		c.add(n.Main)
		for _, m := range n.More {
			c.add(m)
		}
		for _, s := range n.SubPaths {
			c.add(s)
		}
	case *MainPath:
		c.idents(n.Names)
		c.add(n.Alias)
	case *SubPath:
		c.idents(n.Names)
		c.add(n.Alias)
	case *Decorator:
		c.idents(n.Path)
		for _, a := range n.Arguments {
			c.add(a)
		}
	case *Function:
		for _, d := range n.Decorators {
			c.add(d)
		}
		c.add(n.Name, n.Generics, n.Params, n.ReturnType, n.Body)
	case *Class:
		for _, d := range n.Decorators {
			c.add(d)
		}
		c.add(n.Name, n.Generics)
		c.list(n.Parents)
		c.add(n.Body)
	case *IfStatement:
		c.add(n.Cond, n.Body)
		for _, e := range n.Elifs {
			c.add(e)
		}
		c.add(n.Else)
	case *Elif:
		c.add(n.Cond, n.Body)
	case *WhileStatement:
		c.add(n.Cond, n.Where, n.Body, n.Else)
	case *ForStatement:
		c.add(n.Var, n.Iterable, n.Where, n.Body, n.Else)
	case *TryStatement:
		c.add(n.Body)
		for _, e := range n.Excepts {
			c.add(e)
		}
		c.add(n.Else, n.Finally)
	case *Except:
		c.add(n.Expr, n.Name, n.Body)
	case *WithStatement:
		for _, i := range n.Items {
			c.add(i)
		}
		c.add(n.Body)
	case *WithArgument:
		c.add(n.Expr, n.Name)
	case *Type:
		c.add(n.Name)
	case *GenericType:
		c.add(n.Name)
		c.list(n.Args)
	case *FunctionType:
		c.list(n.Params)
		c.add(n.Return)
	case *ListType:
		c.list(n.Types)
	case *TupleType:
		c.list(n.Types)
	case *IntersectionType:
		c.list(n.Types)
	case *UnionType:
		c.list(n.Types)
	case *GenericsAnnotation:
		c.list(n.Types)
	}
	return c
}

type children []Node

func (c *children) add(nodes ...Node) {
	for _, n := range nodes {
		if n != nil {
			*c = append(*c, n)
		}
	}
}

func (c *children) list(nodes []Node) {
	c.add(nodes...)
}

func (c *children) idents(names []*Identifier) {
	for _, n := range names {
		*c = append(*c, n)
	}
}
