package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dhamidi/corona/parser"
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	stdout, stderr string
	err            error
}

func run(t *testing.T, fs afero.Fs, stdin string, args ...string) result {
	t.Helper()
	color.NoColor = true

	if fs == nil {
		fs = afero.NewMemMapFs()
	}
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&app{fs: fs})
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return result{stdout.String(), stderr.String(), err}
}

func TestParseCmd(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/main.corona", []byte("x = 1\n"), 0o644))

	tests := []struct {
		name     string
		stdin    string
		args     []string
		expected string
	}{
		{"code", "", []string{"parse", "-c", "x = 1", "-f", "sexpr"}, "(Program (AssignmentStatement x _ = 1))\n"},
		{"file", "", []string{"parse", "/src/main.corona", "-f", "sexpr"}, "(Program (AssignmentStatement x _ = 1))\n"},
		{"stdin", "x = 1\n", []string{"parse", "-f", "sexpr"}, "(Program (AssignmentStatement x _ = 1))\n"},
		{"rule", "", []string{"parse", "-c", "5 - x", "--rule", "expr", "-f", "sexpr"}, "(BinaryExpr 5 - x)\n"},
		{"tree", "", []string{"parse", "-c", "5 - x", "--rule", "expr"}, "BinaryExpr @1:1\n  Integer \"5\" @1:1\n  Operator \"-\" @1:3\n  Identifier \"x\" @1:5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, fs, tt.stdin, tt.args...)
			require.NoError(t, res.err, res.stderr)
			assert.Equal(t, tt.expected, res.stdout)
		})
	}
}

func TestParseCmdJSON(t *testing.T) {
	res := run(t, nil, "", "parse", "-c", "x", "--rule", "atom", "-f", "json")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `"Identifier"`)
}

func TestParseCmdReportsErrors(t *testing.T) {
	res := run(t, nil, "", "parse", "-c", "if x\n  pass\n")
	require.Error(t, res.err)
	var syntaxErr *parser.SyntaxError
	require.True(t, errors.As(res.err, &syntaxErr))
	assert.Equal(t, "<code>:1:5: "+syntaxErr.Message+"\n    if x\n        ^\n", res.stderr)
	assert.Empty(t, res.stdout)

	res = run(t, nil, "", "parse", "-c", "if x\n  pass\n", "--lenient")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "invalid syntax")

	res = run(t, nil, "", "parse", "-c", "x = \"open\n")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "<code>:1:5: unterminated string literal")

	res = run(t, nil, "", "parse", "-c", "x", "--rule", "nope")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "unknown rule")

	res = run(t, nil, "", "parse", "/missing.corona")
	assert.Error(t, res.err)
}

func TestParseCmdUsesConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/proj/corona.toml", []byte("format = \"sexpr\"\n\n[parser]\nmax_depth = 100\n"), 0o644))

	res := run(t, fs, "", "--config", "/proj/corona.toml", "parse", "-c", "x = 1")
	require.NoError(t, res.err)
	assert.Equal(t, "(Program (AssignmentStatement x _ = 1))\n", res.stdout)

	res = run(t, fs, "", "--config", "/proj/corona.toml", "parse", "-c", strings.Repeat("(", 40)+"1"+strings.Repeat(")", 40))
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "maximum nesting depth")

	res = run(t, fs, "", "--config", "/proj/corona.toml", "parse", "-c", strings.Repeat("(", 40)+"1"+strings.Repeat(")", 40), "--max-depth", "2000")
	assert.NoError(t, res.err)

	res = run(t, fs, "", "--config", "/proj/missing.toml", "parse", "-c", "x")
	assert.Error(t, res.err)
}

func TestParseCmdStats(t *testing.T) {
	res := run(t, nil, "", "parse", "-c", "x = 1", "--stats", "-f", "sexpr")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "memo: ")

	res = run(t, nil, "", "parse", "-c", "x = 1", "--stats", "--no-memo", "-f", "sexpr")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "memo: 0 hits")
}

func TestTokensCmd(t *testing.T) {
	res := run(t, nil, "", "tokens", "-c", "x = 1", "--check")
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, "1:1\tIdentifier\t\"x\"\n1:3\tOperator\t\"=\"\n1:5\tDecInteger\t\"1\"\n1:6\tNewline\t\"\"\n", res.stdout)

	res = run(t, nil, "", "tokens", "-c", "x = \"open")
	assert.Error(t, res.err)
}

func TestGrammarCmd(t *testing.T) {
	res := run(t, nil, "", "grammar", "check")
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, "corona.ebnf: ok\n", res.stdout)

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/bad.ebnf", []byte("A = B .\nC = \"x\" .\n"), 0o644))
	res = run(t, fs, "", "grammar", "check", "/bad.ebnf", "--start", "A")
	require.Error(t, res.err)
	assert.GreaterOrEqual(t, strings.Count(res.stderr, "\n"), 2)

	res = run(t, nil, "", "grammar", "print")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Program")

	res = run(t, nil, "", "grammar", "rules")
	require.NoError(t, res.err)
	rules := strings.Fields(res.stdout)
	assert.Contains(t, rules, "program")
	assert.Contains(t, rules, "expr")
	assert.IsIncreasing(t, rules)
}

func TestVersionCmd(t *testing.T) {
	res := run(t, nil, "", "version")
	require.NoError(t, res.err)
	assert.Equal(t, "corona "+version+"\n", res.stdout)
}
