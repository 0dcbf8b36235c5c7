package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

var ErrEmptyFieldSet = errors.New("field set is empty")

// Field колонка и значение, которое в нее пишется
type Field struct {
	Column string
	Value  any
}

// FieldSet упорядоченный набор полей. Порядок колонок в запросе совпадает с порядком добавления.
type FieldSet []Field

func (fs FieldSet) Add(column string, value any) FieldSet {
	return append(fs, Field{Column: column, Value: value})
}

func (fs FieldSet) Columns() []string {
	columns := make([]string, 0, len(fs))
	for _, f := range fs {
		columns = append(columns, f.Column)
	}
	return columns
}

func (fs FieldSet) Values() []any {
	values := make([]any, 0, len(fs))
	for _, f := range fs {
		values = append(values, f.Value)
	}
	return values
}

// Statement параметризованный запрос, готовый к выполнению
type Statement struct {
	SQL  string
	Args []any
}

// Insert собирает INSERT ровно по переданным полям.
func Insert(table string, fields FieldSet, returning ...string) (Statement, error) {
	if len(fields) == 0 {
		return Statement{}, fmt.Errorf("insert into %s: %w", table, ErrEmptyFieldSet)
	}

	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(ident(table))
	b.WriteString(" (")
	b.WriteString(identList(fields.Columns()))
	b.WriteString(") VALUES (")
	b.WriteString(placeholders(1, len(fields)))
	b.WriteString(")")
	writeReturning(&b, returning)

	return Statement{
		SQL:  b.String(),
		Args: fields.Values(),
	}, nil
}

// Update собирает частичный UPDATE: SET (c1, c2) = ROW ($1, $2) WHERE key = $3.
// ROW нужен, чтобы запрос оставался корректным и для одной колонки.
func Update(table string, fields FieldSet, key Field, returning ...string) (Statement, error) {
	if len(fields) == 0 {
		return Statement{}, fmt.Errorf("update %s: %w", table, ErrEmptyFieldSet)
	}

	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(ident(table))
	b.WriteString(" SET (")
	b.WriteString(identList(fields.Columns()))
	b.WriteString(") = ROW (")
	b.WriteString(placeholders(1, len(fields)))
	b.WriteString(") WHERE ")
	b.WriteString(ident(key.Column))
	b.WriteString(fmt.Sprintf(" = $%d", len(fields)+1))
	writeReturning(&b, returning)

	args := append(fields.Values(), key.Value)
	return Statement{
		SQL:  b.String(),
		Args: args,
	}, nil
}

func writeReturning(b *strings.Builder, returning []string) {
	if len(returning) == 0 {
		return
	}
	b.WriteString(" RETURNING ")
	b.WriteString(identList(returning))
}

func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func identList(names []string) string {
	quoted := make([]string, 0, len(names))
	for _, n := range names {
		quoted = append(quoted, ident(n))
	}
	return strings.Join(quoted, ", ")
}

func placeholders(from, n int) string {
	ph := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ph = append(ph, fmt.Sprintf("$%d", from+i))
	}
	return strings.Join(ph, ", ")
}
