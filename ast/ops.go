package ast

type BinaryOpKind int

const (
	OpPower BinaryOpKind = iota
	OpMul
	OpMatMul
	OpDiv
	OpMod
	OpIntegerDiv
	OpPlus
	OpMinus
	OpShiftLeft
	OpShiftRight
	OpBinaryAnd
	OpBinaryXor
	OpBinaryOr
	OpLessThan
	OpGreaterThan
	OpEqual
	OpLessEqual
	OpGreaterEqual
	OpNotEqual
	OpIn
	OpNotIn
	OpIs
	OpIsNot
	OpAnd
	OpOr
)

var binaryOps = map[string]BinaryOpKind{
	"^":      OpPower,
	"*":      OpMul,
	"@":      OpMatMul,
	"/":      OpDiv,
	"%":      OpMod,
	"//":     OpIntegerDiv,
	"+":      OpPlus,
	"-":      OpMinus,
	"<<":     OpShiftLeft,
	">>":     OpShiftRight,
	"&":      OpBinaryAnd,
	"||":     OpBinaryXor,
	"|":      OpBinaryOr,
	"<":      OpLessThan,
	">":      OpGreaterThan,
	"==":     OpEqual,
	"<=":     OpLessEqual,
	">=":     OpGreaterEqual,
	"!=":     OpNotEqual,
	"in":     OpIn,
	"not in": OpNotIn,
	"is":     OpIs,
	"is not": OpIsNot,
	"and":    OpAnd,
	"or":     OpOr,
}

// BinaryOp maps operator text to its kind. rem is the text of the second
// token of a two-token operator, or "".
func BinaryOp(op, rem string) (BinaryOpKind, bool) {
	if rem != "" {
		op += " " + rem
	}
	kind, ok := binaryOps[op]
	return kind, ok
}

func (k BinaryOpKind) String() string {
	for text, kind := range binaryOps {
		if kind == k {
			return text
		}
	}
	return "?"
}

type UnaryOpKind int

const (
	OpPositive UnaryOpKind = iota
	OpNegative
	OpInvert
	OpNot
	OpSqrt
	OpSquare
)

var unaryOps = map[string]UnaryOpKind{
	"+":   OpPositive,
	"-":   OpNegative,
	"~":   OpInvert,
	"not": OpNot,
	"√":   OpSqrt,
	"²":   OpSquare,
}

func UnaryOp(op string) (UnaryOpKind, bool) {
	kind, ok := unaryOps[op]
	return kind, ok
}

func (k UnaryOpKind) String() string {
	for text, kind := range unaryOps {
		if kind == k {
			return text
		}
	}
	return "?"
}
