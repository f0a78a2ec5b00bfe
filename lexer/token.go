package lexer

import (
	"fmt"
	"sort"
)

type TokenKind int

const (
	TokenEOF TokenKind = iota

	TokenIdentifier
	TokenKeyword
	TokenOperator

	// Numeric literals
	TokenDecInteger
	TokenHexInteger
	TokenBinInteger
	TokenOctInteger
	TokenDecFloat
	TokenDecIntegerImag
	TokenDecFloatImag

	// String literals
	TokenString
	TokenByteString
	TokenPrefixedString

	// Layout
	TokenNewline
	TokenIndent
	TokenDedent
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:            "EOF",
	TokenIdentifier:     "Identifier",
	TokenKeyword:        "Keyword",
	TokenOperator:       "Operator",
	TokenDecInteger:     "DecInteger",
	TokenHexInteger:     "HexInteger",
	TokenBinInteger:     "BinInteger",
	TokenOctInteger:     "OctInteger",
	TokenDecFloat:       "DecFloat",
	TokenDecIntegerImag: "DecIntegerImag",
	TokenDecFloatImag:   "DecFloatImag",
	TokenString:         "String",
	TokenByteString:     "ByteString",
	TokenPrefixedString: "PrefixedString",
	TokenNewline:        "Newline",
	TokenIndent:         "Indent",
	TokenDedent:         "Dedent",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is a single lexical unit. Data is the exact source text of the token;
// for Indent it is the indentation run and for Dedent it is empty. Row and
// Column are 1-based, Column counts bytes.
type Token struct {
	Kind   TokenKind
	Data   string
	Row    int
	Column int
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q (%d:%d)", t.Kind, t.Data, t.Row, t.Column)
}

var keywords = map[string]bool{
	"False":    true,
	"None":     true,
	"True":     true,
	"and":      true,
	"as":       true,
	"assert":   true,
	"async":    true,
	"await":    true,
	"break":    true,
	"class":    true,
	"continue": true,
	"def":      true,
	"del":      true,
	"elif":     true,
	"else":     true,
	"except":   true,
	"finally":  true,
	"for":      true,
	"from":     true,
	"global":   true,
	"if":       true,
	"import":   true,
	"in":       true,
	"is":       true,
	"lambda":   true,
	"nonlocal": true,
	"not":      true,
	"or":       true,
	"pass":     true,
	"raise":    true,
	"return":   true,
	"try":      true,
	"where":    true,
	"while":    true,
	"with":     true,
	"yield":    true,
}

// IsKeyword reports whether ident is reserved.
func IsKeyword(ident string) bool {
	return keywords[ident]
}

func LookupIdentifier(ident string) TokenKind {
	if keywords[ident] {
		return TokenKeyword
	}
	return TokenIdentifier
}

// Keywords returns the reserved words in sorted order.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for word := range keywords {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// Operators returns the operator and delimiter spellings, longest first.
func Operators() []string {
	return append([]string(nil), operators...)
}

// operators is ordered longest first so that scanning can take the first
// prefix match.
var operators = []string{
	"//=", "<<=", ">>=", "||=",
	"**", "//", "<<", ">>", "<=", ">=", "==", "!=", "->", ":=",
	"+=", "-=", "*=", "/=", "%=", "@=", "&=", "|=", "^=", "||",
	"+", "-", "*", "/", "%", "@", "&", "|", "^", "~",
	"<", ">", "=", ".", ",", ":", ";",
	"(", ")", "[", "]", "{", "}",
	"√", "²",
}
