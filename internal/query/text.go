package query

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// TextMatch queries the collection's full-text index. With SQLite the
// index is an FTS5 table whose rowids mirror the primary keys of the
// content table.
type TextMatch struct {
	Table string
	Term  string
}

func (p TextMatch) Apply(tx *gorm.DB) *gorm.DB {
	sub := fmt.Sprintf("id IN (SELECT rowid FROM %s WHERE %s MATCH ?)", p.Table, p.Table)
	return tx.Where(sub, p.Term)
}

// TextFallback is the degraded strategy: an OR of case-insensitive
// substring matches over each text field individually.
type TextFallback struct {
	Fields []string
	Term   string
}

func (p TextFallback) Apply(tx *gorm.DB) *gorm.DB {
	var clauses []string
	var args []any
	for _, field := range p.Fields {
		clauses = append(clauses, fmt.Sprintf("LOWER(%s) LIKE ?", field))
		args = append(args, contains(p.Term))
	}
	return tx.Where(strings.Join(clauses, " OR "), args...)
}

// TextPredicate resolves a free-text term against the collection's
// capabilities. It returns the indexed predicate when a text index is
// declared, the substring fallback otherwise, and nil for a blank term.
// An absent term or a term matching nothing are both normal outcomes,
// never errors.
func TextPredicate(term string, caps Capabilities) Predicate {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	if caps.HasTextIndex && caps.TextIndexTable != "" {
		return TextMatch{Table: caps.TextIndexTable, Term: term}
	}
	fields := caps.TextFields
	if len(fields) == 0 {
		fields = []string{"title", "description"}
	}
	return TextFallback{Fields: fields, Term: term}
}
