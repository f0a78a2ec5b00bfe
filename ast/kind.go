package ast

type Kind int

const (
	KindNull Kind = iota

	// Literals
	KindIdentifier
	KindInteger
	KindFloat
	KindImagInteger
	KindImagFloat
	KindString
	KindByteString
	KindPrefixedString
	KindStringList
	KindNoneLiteral
	KindBool

	// Expressions
	KindOperator
	KindUnaryExpr
	KindBinaryExpr
	KindIfExpr
	KindNamedExpression
	KindFuncExpr
	KindTupleRestExpr
	KindNamedTupleRestExpr
	KindComprehension
	KindComprehensionFor
	KindYield
	KindDict
	KindKeyValue
	KindSet
	KindList
	KindTuple
	KindSubscriptIndex
	KindSubscript
	KindArgument
	KindCall
	KindField
	KindAwaitedExpr

	// Parameters
	KindFuncParam
	KindPositionalParamsSeparator
	KindFuncParams

	// Left-hand sides
	KindTupleLHS
	KindListLHS

	// Statements
	KindProgram
	KindBlock
	KindExprStatement
	KindAssignmentStatement
	KindPassStatement
	KindBreakStatement
	KindContinueStatement
	KindReturnStatement
	KindRaiseStatement
	KindAssertStatement
	KindDelStatement
	KindGlobals
	KindNonLocals
	KindImportStatement
	KindMainPath
	KindSubPath
	KindDecorator
	KindFunction
	KindClass
	KindIfStatement
	KindElif
	KindWhileStatement
	KindForStatement
	KindTryStatement
	KindExcept
	KindWithStatement
	KindWithArgument

	// Types
	KindType
	KindGenericType
	KindFunctionType
	KindListType
	KindTupleType
	KindIntersectionType
	KindUnionType
	KindGenericsAnnotation
)

var kindNames = map[Kind]string{
	KindNull:                      "Null",
	KindIdentifier:                "Identifier",
	KindInteger:                   "Integer",
	KindFloat:                     "Float",
	KindImagInteger:               "ImagInteger",
	KindImagFloat:                 "ImagFloat",
	KindString:                    "String",
	KindByteString:                "ByteString",
	KindPrefixedString:            "PrefixedString",
	KindStringList:                "StringList",
	KindNoneLiteral:               "NoneLiteral",
	KindBool:                      "Bool",
	KindOperator:                  "Operator",
	KindUnaryExpr:                 "UnaryExpr",
	KindBinaryExpr:                "BinaryExpr",
	KindIfExpr:                    "IfExpr",
	KindNamedExpression:           "NamedExpression",
	KindFuncExpr:                  "FuncExpr",
	KindTupleRestExpr:             "TupleRestExpr",
	KindNamedTupleRestExpr:        "NamedTupleRestExpr",
	KindComprehension:             "Comprehension",
	KindComprehensionFor:          "ComprehensionFor",
	KindYield:                     "Yield",
	KindDict:                      "Dict",
	KindKeyValue:                  "KeyValue",
	KindSet:                       "Set",
	KindList:                      "List",
	KindTuple:                     "Tuple",
	KindSubscriptIndex:            "SubscriptIndex",
	KindSubscript:                 "Subscript",
	KindArgument:                  "Argument",
	KindCall:                      "Call",
	KindField:                     "Field",
	KindAwaitedExpr:               "AwaitedExpr",
	KindFuncParam:                 "FuncParam",
	KindPositionalParamsSeparator: "PositionalParamsSeparator",
	KindFuncParams:                "FuncParams",
	KindTupleLHS:                  "TupleLHS",
	KindListLHS:                   "ListLHS",
	KindProgram:                   "Program",
	KindBlock:                     "Block",
	KindExprStatement:             "ExprStatement",
	KindAssignmentStatement:       "AssignmentStatement",
	KindPassStatement:             "PassStatement",
	KindBreakStatement:            "BreakStatement",
	KindContinueStatement:         "ContinueStatement",
	KindReturnStatement:           "ReturnStatement",
	KindRaiseStatement:            "RaiseStatement",
	KindAssertStatement:           "AssertStatement",
	KindDelStatement:              "DelStatement",
	KindGlobals:                   "Globals",
	KindNonLocals:                 "NonLocals",
	KindImportStatement:           "ImportStatement",
	KindMainPath:                  "MainPath",
	KindSubPath:                   "SubPath",
	KindDecorator:                 "Decorator",
	KindFunction:                  "Function",
	KindClass:                     "Class",
	KindIfStatement:               "IfStatement",
	KindElif:                      "Elif",
	KindWhileStatement:            "WhileStatement",
	KindForStatement:              "ForStatement",
	KindTryStatement:              "TryStatement",
	KindExcept:                    "Except",
	KindWithStatement:             "WithStatement",
	KindWithArgument:              "WithArgument",
	KindType:                      "Type",
	KindGenericType:               "GenericType",
	KindFunctionType:              "FunctionType",
	KindListType:                  "ListType",
	KindTupleType:                 "TupleType",
	KindIntersectionType:          "IntersectionType",
	KindUnionType:                 "UnionType",
	KindGenericsAnnotation:        "GenericsAnnotation",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ComprehensionType distinguishes the bracket a comprehension was written in.
type ComprehensionType int

const (
	Generator ComprehensionType = iota
	ListComprehension
	DictComprehension
	SetComprehension
)

func (t ComprehensionType) String() string {
	switch t {
	case Generator:
		return "generator"
	case ListComprehension:
		return "list"
	case DictComprehension:
		return "dict"
	case SetComprehension:
		return "set"
	}
	return "unknown"
}
