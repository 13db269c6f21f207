package rewrite_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/james-woods/format-sql/pkg/format"
	"github.com/james-woods/format-sql/pkg/locator"
	. "github.com/james-woods/format-sql/pkg/rewrite"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func newRewriter() *Rewriter {
	return New(format.New(format.Defaults), nil)
}

func TestGoldenFiles(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("testdata", "*.before.*"))
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	r := newRewriter()
	for _, inputFile := range matches {
		// "example.before.py" -> "example.after.py"
		outputName := strings.Replace(filepath.Base(inputFile), ".before.", ".after.", 1)

		t.Run(outputName, func(t *testing.T) {
			data, err := os.ReadFile(inputFile)
			require.NoError(t, err)

			rewrite := r.EmbeddedSQL
			if filepath.Ext(inputFile) == ".sql" {
				rewrite = r.SQLText
			}

			result := rewrite(string(data))
			golden.Assert(t, result, outputName)
			require.Equal(t, result, rewrite(result), "rewriting is not idempotent")
		})
	}
}

func TestRewriter_SQLText(t *testing.T) {
	r := newRewriter()

	require.Equal(t, "SELECT\n    x\nFROM\n    k", r.SQLText("SELECT x FROM k"))
	require.Equal(t, "SELECT\n    x\nFROM\n    k;\n", r.SQLText("SELECT x FROM k;\n"))

	t.Run("nothing to format", func(t *testing.T) {
		for _, text := range []string{"", "\n\n", "-- just a comment\n", "CREATE TABLE t (a int);"} {
			require.Equal(t, text, r.SQLText(text))
		}
	})

	t.Run("separators are kept", func(t *testing.T) {
		require.Equal(t, "\n\nSELECT\n    1;\n\n  -- end\n", r.SQLText("\n\nSELECT 1;\n\n  -- end\n"))
	})
}

func TestRewriter_EmbeddedSQL(t *testing.T) {
	r := newRewriter()

	t.Run("triple quoted", func(t *testing.T) {
		require.Equal(t,
			"s = \"\"\"\n    select\n        x\n\"\"\"",
			r.EmbeddedSQL(`s = """ select x """`),
		)
	})

	t.Run("quotes inside the statement", func(t *testing.T) {
		require.Equal(t,
			"s = \"\"\"\n    select\n        x\n    where\n        t = \"1\"\n\"\"\"",
			r.EmbeddedSQL(`s = """ select x where t = "1" """`),
		)
	})

	t.Run("mismatched quote leaves the text alone", func(t *testing.T) {
		text := `s = ''' select x where t = '1' """`
		require.Equal(t, text, r.EmbeddedSQL(text))
	})

	t.Run("no sql", func(t *testing.T) {
		text := "print('hello')\n"
		require.Equal(t, text, r.EmbeddedSQL(text))
	})

	t.Run("multi-line tokens keep their content", func(t *testing.T) {
		tests := []struct {
			name     string
			text     string
			expected string
		}{
			{
				name:     "string literal",
				text:     "q = \"\"\"select 'a\nb' from t\"\"\"\n",
				expected: "q = \"\"\"\n    select\n        'a\nb'\n    from\n        t\n\"\"\"\n",
			},
			{
				name:     "block comment",
				text:     "    q = '''select a /* multi\n   line */ from t'''\n",
				expected: "    q = '''\n        select\n            a /* multi\n   line */\n        from\n            t\n    '''\n",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				once := r.EmbeddedSQL(tt.text)
				require.Equal(t, tt.expected, once)
				require.Equal(t, once, r.EmbeddedSQL(once), "rewriting is not idempotent")
			})
		}
	})

	t.Run("one-line literal", func(t *testing.T) {
		require.Equal(t, `q = 'select a, b from t'`, r.EmbeddedSQL(`q = 'select a,b from t'`))
	})

	t.Run("prose led by a statement keyword", func(t *testing.T) {
		// literals are recognized by their first word only
		text := "def save(user):\n    \"\"\"Update the user record.\"\"\"\n"
		once := r.EmbeddedSQL(text)
		require.Equal(t, "def save(user):\n    \"\"\"\n        Update\n            the user record.\n    \"\"\"\n", once)
		require.Equal(t, once, r.EmbeddedSQL(once))

		// prose led by any other word is left alone
		text = "def save(user):\n    \"\"\"Store the user record, then update it.\"\"\"\n"
		require.Equal(t, text, r.EmbeddedSQL(text))
	})
}

func TestApply(t *testing.T) {
	text := "a = '''select 1''' and b = 'x'"

	t.Run("unchanged matches", func(t *testing.T) {
		m := locator.Match{Original: "select 1", Formatted: "select 1", Quote: locator.TripleSingle, Start: 7, End: 15}
		require.Equal(t, text, Apply(text, slices.Values([]locator.Match{m})))
	})

	t.Run("block replacement", func(t *testing.T) {
		m := locator.Match{
			Original:   "select 1",
			Formatted:  "  select\n      1",
			Indent:     "  ",
			LineIndent: "",
			Quote:      locator.TripleSingle,
			Start:      7,
			End:        15,
		}
		require.Equal(t, "a = '''\n  select\n      1\n''' and b = 'x'", Apply(text, slices.Values([]locator.Match{m})))
	})

	t.Run("inline replacement and overlaps", func(t *testing.T) {
		matches := []locator.Match{
			{Original: "select 1", Formatted: "SELECT 1", Quote: locator.Single, Start: 7, End: 15},
			{Original: "ect", Formatted: "xxx", Quote: locator.Single, Start: 10, End: 13},
			{Original: "x", Formatted: "y", Quote: locator.Single, Start: 28, End: 29},
		}
		require.Equal(t, "a = '''SELECT 1''' and b = 'y'", Apply(text, slices.Values(matches)))
	})

	t.Run("no matches", func(t *testing.T) {
		require.Equal(t, text, Apply(text, slices.Values([]locator.Match(nil))))
	})
}

func TestRewriter_Logging(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := New(format.New(format.Defaults), logger)

	text := "CREATE TABLE t (a int);\n"
	require.Equal(t, text, r.SQLText(text))

	text = "a = '''CREATE TABLE t (a int)'''\nb = \"\"\"select 1\n"
	require.Equal(t, text, r.EmbeddedSQL(text))

	out := logs.String()
	require.Equal(t, 2, strings.Count(out, "unsupported clause"))
	require.Equal(t, 1, strings.Count(out, "mismatched quote"))
	// reasons are logged as messages, never with their stack traces
	require.NotContains(t, out, ".go:")
}
