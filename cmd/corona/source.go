package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/corona/lexer"
	"github.com/dhamidi/corona/parser"
	"github.com/fatih/color"
	"github.com/spf13/afero"
)

// readSource returns the program text and a display name. code wins over
// args; no argument or "-" reads stdin.
func readSource(fs afero.Fs, stdin io.Reader, code string, args []string) ([]byte, string, error) {
	if code != "" {
		return []byte(code), "<code>", nil
	}
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return data, "<stdin>", nil
	}
	data, err := afero.ReadFile(fs, args[0])
	if err != nil {
		return nil, "", fmt.Errorf("read source: %w", err)
	}
	return data, args[0], nil
}

// errorLocation extracts the position of a lexer or syntax error.
func errorLocation(err error) (row, column int, message string, ok bool) {
	var syntaxErr *parser.SyntaxError
	var lexErr *lexer.Error
	switch {
	case errors.As(err, &syntaxErr):
		return syntaxErr.Row, syntaxErr.Column, syntaxErr.Message, true
	case errors.As(err, &lexErr):
		return lexErr.Row, lexErr.Column, lexErr.Message, true
	}
	return 0, 0, "", false
}

// printSourceError reports err as name:row:col, followed by the offending
// line and a caret under the column.
func printSourceError(w io.Writer, name string, src []byte, err error) {
	row, column, message, ok := errorLocation(err)
	if !ok {
		fmt.Fprintf(w, "%s: %s\n", name, color.RedString(err.Error()))
		return
	}

	fmt.Fprintf(w, "%s:%d:%d: %s\n", name, row, column, color.RedString(message))
	lines := strings.Split(string(src), "\n")
	if row < 1 || row > len(lines) {
		return
	}
	line := strings.TrimRight(lines[row-1], "\r")
	fmt.Fprintf(w, "    %s\n", line)
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", max(column-1, 0)), color.New(color.FgRed, color.Bold).Sprint("^"))
}
