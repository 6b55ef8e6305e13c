// Package view turns backend resources into the tables the pages render.
//
// A List is built once per resource kind and loaded per request:
//
//	rooms := view.NewList[backend.Room]().
//		Columns("Name", "Capacity").
//		Empty("No rooms available").
//		Row(func(r backend.Room) []string { return []string{r.Name, strconv.Itoa(r.Capacity)} }).
//		Build()
//	table, err := rooms.Load(ctx, fetch)
package view

import (
	"context"
	"errors"
)

// Action is a per-row control. Confirm marks destructive actions that go
// through a confirmation page before the request is sent.
type Action struct {
	Label   string
	Href    string
	Class   string
	Confirm bool
}

// Row is one rendered table row.
type Row struct {
	Cells       []string
	Actions     []Action
	Placeholder bool
}

// Table is the rendered state of a resource list.
// Loaded is false when the fetch failed and no rows were produced.
type Table struct {
	Columns []string
	Rows    []Row
	Loaded  bool
}

// Span is the colspan a placeholder row needs.
func (t Table) Span() int {
	if len(t.Columns) == 0 {
		return 1
	}
	return len(t.Columns)
}

// FetchFunc loads the items of one list.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Builder assembles a List.
type Builder[T any] struct {
	list List[T]
}

// List maps fetched items to table rows.
type List[T any] struct {
	columns   []string
	emptyText string
	row       func(T) []string
	actions   []func(T) (Action, bool)
}

// NewList starts a list builder.
func NewList[T any]() *Builder[T] {
	return &Builder[T]{list: List[T]{emptyText: "No data"}}
}

func (b *Builder[T]) Columns(names ...string) *Builder[T] {
	b.list.columns = append([]string(nil), names...)
	return b
}

func (b *Builder[T]) Empty(text string) *Builder[T] {
	b.list.emptyText = text
	return b
}

func (b *Builder[T]) Row(fn func(T) []string) *Builder[T] {
	b.list.row = fn
	return b
}

// Action adds a per-row control; fn returns false to omit it for an item.
func (b *Builder[T]) Action(fn func(T) (Action, bool)) *Builder[T] {
	b.list.actions = append(b.list.actions, fn)
	return b
}

func (b *Builder[T]) Build() List[T] {
	l := b.list
	l.actions = append([]func(T) (Action, bool)(nil), b.list.actions...)
	return l
}

var errNoRowMapper = errors.New("view: list has no row mapper")

// Load fetches the items and renders them. An empty result yields exactly
// one placeholder row; a failed fetch yields no rows and the error.
func (l List[T]) Load(ctx context.Context, fetch FetchFunc[T]) (Table, error) {
	table := Table{Columns: l.columns}
	if l.row == nil {
		return table, errNoRowMapper
	}

	items, err := fetch(ctx)
	if err != nil {
		return table, err
	}
	return l.Render(items), nil
}

// Render maps already-fetched items to a loaded table.
func (l List[T]) Render(items []T) Table {
	table := Table{Columns: l.columns, Loaded: true}
	if len(items) == 0 {
		table.Rows = []Row{{Cells: []string{l.emptyText}, Placeholder: true}}
		return table
	}

	table.Rows = make([]Row, 0, len(items))
	for _, item := range items {
		row := Row{Cells: l.row(item)}
		for _, fn := range l.actions {
			if a, ok := fn(item); ok {
				row.Actions = append(row.Actions, a)
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}
