package ast

func (*Null) Kind() Kind { return KindNull }
func (*Identifier) Kind() Kind { return KindIdentifier }
func (*Integer) Kind() Kind { return KindInteger }
func (*Float) Kind() Kind { return KindFloat }
func (*ImagInteger) Kind() Kind { return KindImagInteger }
func (*ImagFloat) Kind() Kind { return KindImagFloat }
func (*String) Kind() Kind { return KindString }
func (*ByteString) Kind() Kind { return KindByteString }
func (*PrefixedString) Kind() Kind { return KindPrefixedString }
func (*StringList) Kind() Kind { return KindStringList }
func (*NoneLiteral) Kind() Kind { return KindNoneLiteral }
func (*Bool) Kind() Kind { return KindBool }
func (*Operator) Kind() Kind { return KindOperator }
func (*UnaryExpr) Kind() Kind { return KindUnaryExpr }
func (*BinaryExpr) Kind() Kind { return KindBinaryExpr }
func (*IfExpr) Kind() Kind { return KindIfExpr }
func (*NamedExpression) Kind() Kind { return KindNamedExpression }
func (*FuncExpr) Kind() Kind { return KindFuncExpr }
func (*TupleRestExpr) Kind() Kind { return KindTupleRestExpr }
func (*NamedTupleRestExpr) Kind() Kind { return KindNamedTupleRestExpr }
func (*Comprehension) Kind() Kind { return KindComprehension }
func (*ComprehensionFor) Kind() Kind { return KindComprehensionFor }
func (*Yield) Kind() Kind { return KindYield }
func (*Dict) Kind() Kind { return KindDict }
func (*KeyValue) Kind() Kind { return KindKeyValue }
func (*Set) Kind() Kind { return KindSet }
func (*List) Kind() Kind { return KindList }
func (*Tuple) Kind() Kind { return KindTuple }
func (*SubscriptIndex) Kind() Kind { return KindSubscriptIndex }
func (*Subscript) Kind() Kind { return KindSubscript }
func (*Argument) Kind() Kind { return KindArgument }
func (*Call) Kind() Kind { return KindCall }
func (*Field) Kind() Kind { return KindField }
func (*AwaitedExpr) Kind() Kind { return KindAwaitedExpr }
func (*FuncParam) Kind() Kind { return KindFuncParam }
func (*PositionalParamsSeparator) Kind() Kind { return KindPositionalParamsSeparator }
func (*FuncParams) Kind() Kind { return KindFuncParams }
func (*TupleLHS) Kind() Kind { return KindTupleLHS }
func (*ListLHS) Kind() Kind { return KindListLHS }
func (*Program) Kind() Kind { return KindProgram }
func (*Block) Kind() Kind { return KindBlock }
func (*ExprStatement) Kind() Kind { return KindExprStatement }
func (*AssignmentStatement) Kind() Kind { return KindAssignmentStatement }
func (*PassStatement) Kind() Kind { return KindPassStatement }
func (*BreakStatement) Kind() Kind { return KindBreakStatement }
func (*ContinueStatement) Kind() Kind { return KindContinueStatement }
func (*ReturnStatement) Kind() Kind { return KindReturnStatement }
func (*RaiseStatement) Kind() Kind { return KindRaiseStatement }
func (*AssertStatement) Kind() Kind { return KindAssertStatement }
func (*DelStatement) Kind() Kind { return KindDelStatement }
func (*Globals) Kind() Kind { return KindGlobals }
func (*NonLocals) Kind() Kind { return KindNonLocals }
func (*ImportStatement) Kind() Kind { return KindImportStatement }
func (*MainPath) Kind() Kind { return KindMainPath }
func (*SubPath) Kind() Kind { return KindSubPath }
func (*Decorator) Kind() Kind { return KindDecorator }
func (*Function) Kind() Kind { return KindFunction }
func (*Class) Kind() Kind { return KindClass }
func (*IfStatement) Kind() Kind { return KindIfStatement }
func (*Elif) Kind() Kind { return KindElif }
func (*WhileStatement) Kind() Kind { return KindWhileStatement }
func (*ForStatement) Kind() Kind { return KindForStatement }
func (*TryStatement) Kind() Kind { return KindTryStatement }
func (*Except) Kind() Kind { return KindExcept }
func (*WithStatement) Kind() Kind { return KindWithStatement }
func (*WithArgument) Kind() Kind { return KindWithArgument }
func (*Type) Kind() Kind { return KindType }
func (*GenericType) Kind() Kind { return KindGenericType }
func (*FunctionType) Kind() Kind { return KindFunctionType }
func (*ListType) Kind() Kind { return KindListType }
func (*TupleType) Kind() Kind { return KindTupleType }
func (*IntersectionType) Kind() Kind { return KindIntersectionType }
func (*UnionType) Kind() Kind { return KindUnionType }
func (*GenericsAnnotation) Kind() Kind { return KindGenericsAnnotation }

func (n *Null) Accept(v Visitor) { Walk(v, n) }
func (n *Identifier) Accept(v Visitor) { Walk(v, n) }
func (n *Integer) Accept(v Visitor) { Walk(v, n) }
func (n *Float) Accept(v Visitor) { Walk(v, n) }
func (n *ImagInteger) Accept(v Visitor) { Walk(v, n) }
func (n *ImagFloat) Accept(v Visitor) { Walk(v, n) }
func (n *String) Accept(v Visitor) { Walk(v, n) }
func (n *ByteString) Accept(v Visitor) { Walk(v, n) }
func (n *PrefixedString) Accept(v Visitor) { Walk(v, n) }
func (n *StringList) Accept(v Visitor) { Walk(v, n) }
func (n *NoneLiteral) Accept(v Visitor) { Walk(v, n) }
func (n *Bool) Accept(v Visitor) { Walk(v, n) }
func (n *Operator) Accept(v Visitor) { Walk(v, n) }
func (n *UnaryExpr) Accept(v Visitor) { Walk(v, n) }
func (n *BinaryExpr) Accept(v Visitor) { Walk(v, n) }
func (n *IfExpr) Accept(v Visitor) { Walk(v, n) }
func (n *NamedExpression) Accept(v Visitor) { Walk(v, n) }
func (n *FuncExpr) Accept(v Visitor) { Walk(v, n) }
func (n *TupleRestExpr) Accept(v Visitor) { Walk(v, n) }
func (n *NamedTupleRestExpr) Accept(v Visitor) { Walk(v, n) }
func (n *Comprehension) Accept(v Visitor) { Walk(v, n) }
func (n *ComprehensionFor) Accept(v Visitor) { Walk(v, n) }
func (n *Yield) Accept(v Visitor) { Walk(v, n) }
func (n *Dict) Accept(v Visitor) { Walk(v, n) }
func (n *KeyValue) Accept(v Visitor) { Walk(v, n) }
func (n *Set) Accept(v Visitor) { Walk(v, n) }
func (n *List) Accept(v Visitor) { Walk(v, n) }
func (n *Tuple) Accept(v Visitor) { Walk(v, n) }
func (n *SubscriptIndex) Accept(v Visitor) { Walk(v, n) }
func (n *Subscript) Accept(v Visitor) { Walk(v, n) }
func (n *Argument) Accept(v Visitor) { Walk(v, n) }
func (n *Call) Accept(v Visitor) { Walk(v, n) }
func (n *Field) Accept(v Visitor) { Walk(v, n) }
func (n *AwaitedExpr) Accept(v Visitor) { Walk(v, n) }
func (n *FuncParam) Accept(v Visitor) { Walk(v, n) }
func (n *PositionalParamsSeparator) Accept(v Visitor) { Walk(v, n) }
func (n *FuncParams) Accept(v Visitor) { Walk(v, n) }
func (n *TupleLHS) Accept(v Visitor) { Walk(v, n) }
func (n *ListLHS) Accept(v Visitor) { Walk(v, n) }
func (n *Program) Accept(v Visitor) { Walk(v, n) }
func (n *Block) Accept(v Visitor) { Walk(v, n) }
func (n *ExprStatement) Accept(v Visitor) { Walk(v, n) }
func (n *AssignmentStatement) Accept(v Visitor) { Walk(v, n) }
func (n *PassStatement) Accept(v Visitor) { Walk(v, n) }
func (n *BreakStatement) Accept(v Visitor) { Walk(v, n) }
func (n *ContinueStatement) Accept(v Visitor) { Walk(v, n) }
func (n *ReturnStatement) Accept(v Visitor) { Walk(v, n) }
func (n *RaiseStatement) Accept(v Visitor) { Walk(v, n) }
func (n *AssertStatement) Accept(v Visitor) { Walk(v, n) }
func (n *DelStatement) Accept(v Visitor) { Walk(v, n) }
func (n *Globals) Accept(v Visitor) { Walk(v, n) }
func (n *NonLocals) Accept(v Visitor) { Walk(v, n) }
func (n *ImportStatement) Accept(v Visitor) { Walk(v, n) }
func (n *MainPath) Accept(v Visitor) { Walk(v, n) }
func (n *SubPath) Accept(v Visitor) { Walk(v, n) }
func (n *Decorator) Accept(v Visitor) { Walk(v, n) }
func (n *Function) Accept(v Visitor) { Walk(v, n) }
func (n *Class) Accept(v Visitor) { Walk(v, n) }
func (n *IfStatement) Accept(v Visitor) { Walk(v, n) }
func (n *Elif) Accept(v Visitor) { Walk(v, n) }
func (n *WhileStatement) Accept(v Visitor) { Walk(v, n) }
func (n *ForStatement) Accept(v Visitor) { Walk(v, n) }
func (n *TryStatement) Accept(v Visitor) { Walk(v, n) }
func (n *Except) Accept(v Visitor) { Walk(v, n) }
func (n *WithStatement) Accept(v Visitor) { Walk(v, n) }
func (n *WithArgument) Accept(v Visitor) { Walk(v, n) }
func (n *Type) Accept(v Visitor) { Walk(v, n) }
func (n *GenericType) Accept(v Visitor) { Walk(v, n) }
func (n *FunctionType) Accept(v Visitor) { Walk(v, n) }
func (n *ListType) Accept(v Visitor) { Walk(v, n) }
func (n *TupleType) Accept(v Visitor) { Walk(v, n) }
func (n *IntersectionType) Accept(v Visitor) { Walk(v, n) }
func (n *UnionType) Accept(v Visitor) { Walk(v, n) }
func (n *GenericsAnnotation) Accept(v Visitor) { Walk(v, n) }
