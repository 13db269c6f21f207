package lexer

import "strings"

// keywords are the identifiers lexed as Keyword tokens. Words that commonly
// double as column names (key, first, row) are not included.
var keywords = toSet(
	"ALL", "ALTER", "AND", "AS", "ASC", "BETWEEN", "BY", "CASE", "CAST",
	"CREATE", "CROSS", "DELETE", "DESC", "DISTINCT", "DROP", "ELSE", "END",
	"EXCEPT", "EXISTS", "FALSE", "FROM", "FULL", "GROUP", "HAVING", "ILIKE",
	"IN", "INNER", "INSERT", "INTERSECT", "INTO", "IS", "JOIN", "LEFT",
	"LIKE", "LIMIT", "MERGE", "NATURAL", "NOT", "NULL", "OFFSET", "ON", "OR",
	"ORDER", "OUTER", "OVER", "PARTITION", "RECURSIVE", "REPLACE",
	"RETURNING", "RIGHT", "SELECT", "SET", "THEN", "TRUE", "TRUNCATE",
	"UNION", "UPDATE", "USING", "VALUES", "WHEN", "WHERE", "WINDOW", "WITH",
)

// phrases are the keyword sequences merged into a single token.
var phrases = buildPhrases(
	"GROUP BY",
	"ORDER BY",
	"PARTITION BY",
	"INSERT INTO",
	"DELETE FROM",
	"UNION ALL",
	"UNION DISTINCT",
	"INTERSECT ALL",
	"EXCEPT ALL",
	"INNER JOIN",
	"CROSS JOIN",
	"LEFT JOIN",
	"LEFT OUTER JOIN",
	"RIGHT JOIN",
	"RIGHT OUTER JOIN",
	"FULL JOIN",
	"FULL OUTER JOIN",
	"NATURAL JOIN",
	"NATURAL INNER JOIN",
	"NATURAL LEFT JOIN",
	"NATURAL LEFT OUTER JOIN",
	"NATURAL RIGHT JOIN",
	"NATURAL RIGHT OUTER JOIN",
	"NATURAL FULL JOIN",
	"NATURAL FULL OUTER JOIN",
)

// IsKeyword reports whether word (any case) is lexed as a keyword.
func IsKeyword(word string) bool {
	_, ok := keywords[strings.ToUpper(word)]
	return ok
}

type phraseNode struct {
	next     map[string]*phraseNode
	terminal bool
}

func (n *phraseNode) child(word string) *phraseNode {
	if n == nil || n.next == nil {
		return nil
	}
	return n.next[word]
}

func buildPhrases(list ...string) *phraseNode {
	root := &phraseNode{}
	for _, phrase := range list {
		node := root
		for _, word := range strings.Fields(phrase) {
			if node.next == nil {
				node.next = make(map[string]*phraseNode)
			}
			child, ok := node.next[word]
			if !ok {
				child = &phraseNode{}
				node.next[word] = child
			}
			node = child
		}
		node.terminal = true
	}
	return root
}

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
