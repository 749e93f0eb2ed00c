// Package patch turns a sparse field map from a request body into a single
// parameterized UPDATE statement.
//
// Column names only ever come from a Registry declared in code. Every value
// is a bound parameter.
package patch

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

var (
	ErrEmptyPatch         = errors.New("no fields provided for update")
	ErrNoRecognizedFields = errors.New("no valid field provided for update")
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Coercer validates a raw JSON value and converts it to the value bound for
// its column. Returning an error rejects the field.
type Coercer func(value any) (any, error)

// Field maps a request key onto a column.
type Field struct {
	Name   string
	Column string
	Coerce Coercer
}

// FieldErrors collects per-field coercion failures.
type FieldErrors map[string]error

func (e FieldErrors) Error() string {
	return "invalid fields: " + strings.Join(e.Messages(), "; ")
}

// Messages returns "field: reason" strings sorted by field name.
func (e FieldErrors) Messages() []string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)

	msgs := make([]string, 0, len(names))
	for _, name := range names {
		msgs = append(msgs, fmt.Sprintf("%s: %s", name, e[name].Error()))
	}
	return msgs
}

// Registry is the fixed, ordered set of updatable fields of one table.
type Registry struct {
	table     string
	keys      []string
	fields    []Field
	touch     string
	scope     string
	returning []string
}

type Option func(*Registry)

// WithTouch sets column = NOW() on every update.
func WithTouch(column string) Option {
	return func(r *Registry) { r.touch = column }
}

// WithScope adds a parameterless predicate, e.g. "deleted_at IS NULL".
func WithScope(predicate string) Option {
	return func(r *Registry) { r.scope = predicate }
}

// WithReturning appends RETURNING with the given columns.
func WithReturning(columns ...string) Option {
	return func(r *Registry) { r.returning = columns }
}

// NewRegistry panics on duplicate field names: registries are package-level
// declarations and a duplicate is a programming error.
func NewRegistry(table string, keys []string, fields []Field, opts ...Option) *Registry {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := seen[f.Name]; dup {
			panic(fmt.Sprintf("patch: duplicate field %q in registry for %s", f.Name, table))
		}
		seen[f.Name] = struct{}{}
	}

	r := &Registry{table: table, keys: keys, fields: fields}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) Table() string { return r.table }

// Names returns the recognized request keys in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.Name
	}
	return names
}

// Assignment is one coerced column value.
type Assignment struct {
	Field  string
	Column string
	Value  any
}

// Resolve picks the recognized keys of values in registry order and coerces
// them. Unrecognized keys are ignored.
func (r *Registry) Resolve(values map[string]any) ([]Assignment, error) {
	if len(values) == 0 {
		return nil, ErrEmptyPatch
	}

	var (
		out  []Assignment
		errs = FieldErrors{}
	)
	for _, f := range r.fields {
		raw, ok := values[f.Name]
		if !ok {
			continue
		}

		v := raw
		if f.Coerce != nil {
			var err error
			if v, err = f.Coerce(raw); err != nil {
				errs[f.Name] = err
				continue
			}
		}
		out = append(out, Assignment{Field: f.Name, Column: f.Column, Value: v})
	}

	if len(errs) > 0 {
		return nil, errs
	}
	if len(out) == 0 {
		return nil, ErrNoRecognizedFields
	}
	return out, nil
}

// Validate runs Resolve for its error only.
func (r *Registry) Validate(values map[string]any) error {
	_, err := r.Resolve(values)
	return err
}

// Statement is the built UPDATE.
type Statement struct {
	SQL     string
	Args    []any
	Applied []string
}

// Build produces the UPDATE for values keyed by keyValues, given in the same
// order as the registry keys. Assignment parameters come first in registry
// order, the key parameters are always last.
func (r *Registry) Build(values map[string]any, keyValues ...any) (*Statement, error) {
	if len(keyValues) != len(r.keys) {
		return nil, fmt.Errorf("patch: %s expects %d key values, got %d", r.table, len(r.keys), len(keyValues))
	}

	assignments, err := r.Resolve(values)
	if err != nil {
		return nil, err
	}

	ub := psql.Update(r.table)
	applied := make([]string, 0, len(assignments))
	for _, a := range assignments {
		ub = ub.Set(pq.QuoteIdentifier(a.Column), a.Value)
		applied = append(applied, a.Field)
	}
	if r.touch != "" {
		ub = ub.Set(pq.QuoteIdentifier(r.touch), sq.Expr("NOW()"))
	}
	for i, key := range r.keys {
		ub = ub.Where(pq.QuoteIdentifier(key)+" = ?", keyValues[i])
	}
	if r.scope != "" {
		ub = ub.Where(r.scope)
	}
	if len(r.returning) > 0 {
		ub = ub.Suffix("RETURNING " + strings.Join(r.returning, ", "))
	}

	query, args, err := ub.ToSql()
	if err != nil {
		return nil, fmt.Errorf("patch: build %s update: %w", r.table, err)
	}

	return &Statement{SQL: query, Args: args, Applied: applied}, nil
}
