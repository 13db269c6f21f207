package format_test

import (
	"strings"
	"testing"

	"github.com/james-woods/format-sql/pkg/clause"
	. "github.com/james-woods/format-sql/pkg/format"
	"github.com/james-woods/format-sql/pkg/lexer"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func lines(l ...string) string {
	return strings.Join(l, "\n")
}

func TestFormatter_SQL(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		expected string
	}{
		{
			name:     "select",
			sql:      "SELECT x FROM k",
			expected: "SELECT\n    x\nFROM\n    k",
		},
		{
			name:     "terminator kept",
			sql:      "SELECT x FROM k;",
			expected: "SELECT\n    x\nFROM\n    k;",
		},
		{
			name: "list and predicate bodies",
			sql:  "select a, b from t where a = 1 and b = 2 or c",
			expected: lines(
				"select",
				"    a,",
				"    b",
				"from",
				"    t",
				"where",
				"    a = 1",
				"    and b = 2",
				"    or c",
			),
		},
		{
			name: "distinct stays on keyword line",
			sql:  "SELECT DISTINCT a, b FROM t",
			expected: lines(
				"SELECT DISTINCT",
				"    a,",
				"    b",
				"FROM",
				"    t",
			),
		},
		{
			name: "between and case",
			sql:  "SELECT a FROM t WHERE a BETWEEN 1 AND 2 AND CASE WHEN x OR y THEN 1 END = 1",
			expected: lines(
				"SELECT",
				"    a",
				"FROM",
				"    t",
				"WHERE",
				"    a BETWEEN 1 AND 2",
				"    AND CASE WHEN x OR y THEN 1 END = 1",
			),
		},
		{
			name: "joins",
			sql:  "SELECT a FROM t LEFT  JOIN u ON t.id = u.id AND u.x = 1",
			expected: lines(
				"SELECT",
				"    a",
				"FROM",
				"    t",
				"LEFT JOIN",
				"    u",
				"ON",
				"    t.id = u.id",
				"    AND u.x = 1",
			),
		},
		{
			name: "subqueries",
			sql:  "SELECT a FROM (SELECT a FROM t) x WHERE a IN (SELECT b FROM u)",
			expected: lines(
				"SELECT",
				"    a",
				"FROM",
				"    (",
				"        SELECT",
				"            a",
				"        FROM",
				"            t",
				"    ) x",
				"WHERE",
				"    a IN (",
				"        SELECT",
				"            b",
				"        FROM",
				"            u",
				"    )",
			),
		},
		{
			name: "insert",
			sql:  "INSERT INTO t (a, b) VALUES (1, 2), (3, 4);",
			expected: lines(
				"INSERT INTO",
				"    t (a, b)",
				"VALUES",
				"    (1, 2),",
				"    (3, 4);",
			),
		},
		{
			name: "with",
			sql:  "WITH x AS (SELECT 1) SELECT * FROM x",
			expected: lines(
				"WITH",
				"    x AS (",
				"        SELECT",
				"            1",
				"    )",
				"SELECT",
				"    *",
				"FROM",
				"    x",
			),
		},
		{
			name: "union",
			sql:  "SELECT 1 UNION ALL SELECT 2",
			expected: lines(
				"SELECT",
				"    1",
				"UNION ALL",
				"SELECT",
				"    2",
			),
		},
		{
			name: "comments",
			sql:  "-- head\nSELECT a, -- first\n b FROM t",
			expected: lines(
				"-- head",
				"SELECT",
				"    a, -- first",
				"    b",
				"FROM",
				"    t",
			),
		},
		{
			name: "on conflict",
			sql:  "INSERT INTO t (a) VALUES (1) ON CONFLICT (a) DO UPDATE SET a = excluded.a",
			expected: lines(
				"INSERT INTO",
				"    t (a)",
				"VALUES",
				"    (1) ON CONFLICT (a) DO UPDATE",
				"SET",
				"    a = excluded.a",
			),
		},
		{
			name: "comment on its own line",
			sql:  "SELECT a\n-- standalone\nFROM t",
			expected: lines(
				"SELECT",
				"    a",
				"    -- standalone",
				"FROM",
				"    t",
			),
		},
		{
			name: "own-line comments between items",
			sql:  "SELECT a,\n  -- second\n  b FROM t WHERE a = 1\n/* both */\nAND b = 2",
			expected: lines(
				"SELECT",
				"    a,",
				"    -- second",
				"    b",
				"FROM",
				"    t",
				"WHERE",
				"    a = 1",
				"    /* both */",
				"    AND b = 2",
			),
		},
		{
			name: "line comment before terminator",
			sql:  "SELECT a -- c\n;",
			expected: lines(
				"SELECT",
				"    a -- c",
				"    ;",
			),
		},
		{
			name:     "literals untouched",
			sql:      "SELECT 'a,  b' FROM t WHERE x = \"y AND z\"",
			expected: "SELECT\n    'a,  b'\nFROM\n    t\nWHERE\n    x = \"y AND z\"",
		},
	}

	f := New(Defaults)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := f.SQL(tt.sql)
			require.NoError(t, err)
			require.Equal(t, tt.expected, out)

			again, err := f.SQL(out)
			require.NoError(t, err)
			require.Equal(t, out, again)
		})
	}
}

func TestFormatter_SQLPassThrough(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		err  error
	}{
		{"unsupported", "  CREATE TABLE t (id int)  ", clause.ErrUnsupportedClause},
		{"not sql", "\nhello world\n", clause.ErrUnsupportedClause},
		{"unbalanced", "SELECT f(a FROM t", clause.ErrUnbalancedParens},
		{"unterminated", "SELECT 'x FROM t ", lexer.ErrUnterminatedLiteral},
	}

	f := New(Defaults)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := f.SQL(tt.sql)
			require.Error(t, err)
			require.Equal(t, tt.err, errors.Cause(err))
			require.Equal(t, strings.TrimSpace(tt.sql), out)
		})
	}
}

func TestFormatter_Options(t *testing.T) {
	t.Run("uppercase keywords", func(t *testing.T) {
		f := New(FormatterOptions{IndentSize: 4, UppercaseKeywords: true})

		out, err := f.SQL("select a from t group   by a")
		require.NoError(t, err)
		require.Equal(t, "SELECT\n    a\nFROM\n    t\nGROUP BY\n    a", out)
	})

	t.Run("custom indent", func(t *testing.T) {
		f := New(FormatterOptions{IndentSize: 2})

		out, err := f.SQL("SELECT a FROM (SELECT a FROM t) x")
		require.NoError(t, err)
		require.Equal(t, lines(
			"SELECT",
			"  a",
			"FROM",
			"  (",
			"    SELECT",
			"      a",
			"    FROM",
			"      t",
			"  ) x",
		), out)
	})

	t.Run("invalid indent uses default", func(t *testing.T) {
		f := New(FormatterOptions{IndentSize: 0})
		require.Equal(t, "    ", f.Unit())
	})
}

func TestFormatter_Inline(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		expected string
		ok       bool
	}{
		{"spacing", "select  a,b   from t where x=1 and y = 2", "select a, b from t where x=1 and y = 2", true},
		{"subquery", "SELECT a FROM (SELECT b FROM t) x", "SELECT a FROM (SELECT b FROM t) x", true},
		{"multi line", "SELECT a,\n  b\nFROM t;", "SELECT a, b FROM t;", true},
		{"trailing line comment", "SELECT a -- c", "SELECT a -- c", true},
		{"line comment swallows", "SELECT a -- c\nFROM t", "SELECT a -- c FROM t", false},
	}

	f := New(Defaults)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := clause.ParseString(tt.sql)
			require.NoError(t, err)

			out, ok := f.Inline(stmt)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.expected, out)
		})
	}
}

func TestFormatter_Indented(t *testing.T) {
	f := New(Defaults)

	t.Run("prefix on broken lines", func(t *testing.T) {
		stmt, err := clause.ParseString("select a, b from t where a = 1")
		require.NoError(t, err)
		require.Equal(t, lines(
			"\tselect",
			"\t    a,",
			"\t    b",
			"\tfrom",
			"\t    t",
			"\twhere",
			"\t    a = 1",
		), f.Indented(stmt, "\t"))
	})

	t.Run("multi-line tokens are kept", func(t *testing.T) {
		stmt, err := clause.ParseString("select 'a\nb' /* multi\n   line */ from t")
		require.NoError(t, err)
		require.Equal(t, lines(
			"  select",
			"      'a",
			"b' /* multi",
			"   line */",
			"  from",
			"      t",
		), f.Indented(stmt, "  "))
	})

	t.Run("empty prefix", func(t *testing.T) {
		stmt, err := clause.ParseString("select a from t")
		require.NoError(t, err)
		require.Equal(t, f.Statement(stmt), f.Indented(stmt, ""))
		require.Empty(t, f.Indented(nil, "  "))
	})
}
