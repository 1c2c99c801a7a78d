package query

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

// Predicate is a single store-agnostic filter condition. Predicates are
// immutable once built and know how to apply themselves to a gorm query.
type Predicate interface {
	Apply(tx *gorm.DB) *gorm.DB
}

// Filter is a conjunction of predicates.
type Filter struct {
	preds []Predicate
}

// NewFilter builds a filter from the given predicates.
func NewFilter(preds ...Predicate) *Filter {
	return &Filter{preds: preds}
}

// And appends a predicate. A nil predicate is a no-op, which lets callers
// chain optional conditions without nil checks.
func (f *Filter) And(p Predicate) *Filter {
	if p != nil {
		f.preds = append(f.preds, p)
	}
	return f
}

// Apply applies every predicate to tx in order.
func (f *Filter) Apply(tx *gorm.DB) *gorm.DB {
	if f == nil {
		return tx
	}
	for _, p := range f.preds {
		tx = p.Apply(tx)
	}
	return tx
}

// Len returns the number of predicates in the filter.
func (f *Filter) Len() int {
	if f == nil {
		return 0
	}
	return len(f.preds)
}

// Eq matches rows where column equals value.
type Eq struct {
	Column string
	Value  any
}

func (p Eq) Apply(tx *gorm.DB) *gorm.DB {
	return tx.Where(fmt.Sprintf("%s = ?", p.Column), p.Value)
}

// Like matches rows where column contains the term, case-insensitively.
type Like struct {
	Column string
	Term   string
}

func (p Like) Apply(tx *gorm.DB) *gorm.DB {
	return tx.Where(fmt.Sprintf("LOWER(%s) LIKE ?", p.Column), contains(p.Term))
}

// In matches rows where column is one of the given values.
type In struct {
	Column string
	Values []string
}

func (p In) Apply(tx *gorm.DB) *gorm.DB {
	return tx.Where(fmt.Sprintf("%s IN ?", p.Column), p.Values)
}

// Cmp matches rows by ordered comparison. Op is one of the SQL operators
// produced by the compiler's token rewrite.
type Cmp struct {
	Column string
	Op     string
	Value  string
}

func (p Cmp) Apply(tx *gorm.DB) *gorm.DB {
	return tx.Where(fmt.Sprintf("%s %s ?", p.Column, p.Op), p.Value)
}

// None matches nothing. The compiler emits it for keys that do not name a
// filterable column, mirroring a document store's behavior of returning
// zero matches for filters on nonexistent fields instead of erroring.
type None struct{}

func (None) Apply(tx *gorm.DB) *gorm.DB {
	return tx.Where("1 = 0")
}

// comparator token -> SQL operator rewrite table.
var cmpOps = map[string]string{
	"gt":  ">",
	"gte": ">=",
	"lt":  "<",
	"lte": "<=",
}

// key[op] form, e.g. price[lte]=40.
var opKeyPattern = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\[([A-Za-z]+)\]$`)

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Columns is the set of filterable column names for one collection.
type Columns map[string]bool

// NewColumns builds a column set from names.
func NewColumns(names ...string) Columns {
	set := make(Columns, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// Compile turns raw listing parameters into a Filter. Reserved keys
// (select, sort, page, limit) are stripped, comparator tokens are rewritten
// to SQL operators, repeated or comma-joined values become set membership,
// and everything else becomes an equality predicate.
//
// Malformed input is never rejected: a key that is not a filterable column
// of the collection compiles to a predicate that matches nothing.
func Compile(values url.Values, cols Columns) *Filter {
	f := NewFilter()
	for key, vals := range values {
		if key == KeySelect || key == KeySort || key == KeyPage || key == KeyLimit {
			continue
		}
		if len(vals) == 0 {
			continue
		}
		f.And(compileKey(key, vals, cols))
	}
	return f
}

func compileKey(key string, vals []string, cols Columns) Predicate {
	column := key
	op := ""
	if m := opKeyPattern.FindStringSubmatch(key); m != nil {
		column, op = m[1], strings.ToLower(m[2])
	}
	if !identPattern.MatchString(column) || !cols[column] {
		return None{}
	}

	switch {
	case op == "in":
		return In{Column: column, Values: splitList(vals)}
	case op != "":
		sqlOp, ok := cmpOps[op]
		if !ok {
			// Unknown comparator tokens behave like filters on a field no
			// document has.
			return None{}
		}
		return Cmp{Column: column, Op: sqlOp, Value: vals[0]}
	case len(vals) > 1:
		return In{Column: column, Values: vals}
	default:
		return Eq{Column: column, Value: vals[0]}
	}
}

// splitList flattens repeated and comma-joined values into one list.
func splitList(vals []string) []string {
	var out []string
	for _, v := range vals {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// SelectedColumns parses the select parameter into a projection restricted
// to the collection's known columns. An empty result means no projection.
func SelectedColumns(values url.Values, cols Columns) []string {
	var out []string
	for _, part := range strings.Split(values.Get(KeySelect), ",") {
		part = strings.TrimSpace(part)
		if part != "" && cols[part] {
			out = append(out, part)
		}
	}
	return out
}

func contains(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
