package listview

import (
	"hms-console/internal/app/services/store"
	"hms-console/internal/pkg/constvars"
	"hms-console/internal/pkg/exceptions"
	"slices"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type SortSpec struct {
	Field string
	Desc  bool
}

func (s SortSpec) Order() string {
	if s.Desc {
		return constvars.SortOrderDesc
	}
	return constvars.SortOrderAsc
}

// Definition parameterises a list view for one row type. SortKeys overrides
// the displayed value of a field when rows are ordered by it.
type Definition[T any] struct {
	Resource     constvars.Resource
	Fields       map[string]func(T) string
	SortKeys     map[string]func(T) string
	FilterFields []string
	DefaultSort  SortSpec
}

func (d Definition[T]) sortKey(field string) (func(T) string, bool) {
	if key, ok := d.SortKeys[field]; ok {
		return key, true
	}
	key, ok := d.Fields[field]
	return key, ok
}

func (d Definition[T]) HasField(field string) bool {
	_, ok := d.Fields[field]
	return ok
}

// FieldNames lists the sortable fields in a stable order.
func (d Definition[T]) FieldNames() []string {
	names := make([]string, 0, len(d.Fields))
	for name := range d.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Derive filters and sorts rows into a new slice. rows is never modified.
func Derive[T any](rows []T, def Definition[T], query string, spec SortSpec) []T {
	filtered := make([]T, 0, len(rows))
	if query == "" {
		filtered = append(filtered, rows...)
	} else {
		lowerQuery := strings.ToLower(query)
		for _, row := range rows {
			for _, field := range def.FilterFields {
				if matchesQuery(def.Fields[field](row), lowerQuery) {
					filtered = append(filtered, row)
					break
				}
			}
		}
	}

	accessor, ok := def.sortKey(spec.Field)
	if !ok {
		return filtered
	}
	slices.SortStableFunc(filtered, func(a, b T) int {
		result := compareValues(accessor(a), accessor(b))
		if spec.Desc {
			return -result
		}
		return result
	})
	return filtered
}

// Snapshot is the query, sort and rows of a view read under one lock.
type Snapshot[T any] struct {
	Query string
	Sort  SortSpec
	Rows  []T
}

// Change is a query and sort update applied as one step. A nil Query keeps
// the current query. An empty SortField with Desc set re-orders the current
// sort field.
type Change struct {
	Query     *string
	SortField string
	Desc      *bool
}

// Controller keeps the derived rows of one list view current. Rows are
// recomputed eagerly on every query, sort or source change.
type Controller[T any] struct {
	mu          sync.Mutex
	def         Definition[T]
	source      func() []T
	query       string
	sort        SortSpec
	rows        []T
	unsubscribe func()
	Log         *zap.Logger
}

func NewController[T any](def Definition[T], source func() []T, logger *zap.Logger) *Controller[T] {
	c := &Controller[T]{
		def:    def,
		source: source,
		sort:   def.DefaultSort,
		Log:    logger,
	}
	c.rows = Derive(source(), def, c.query, c.sort)
	return c
}

// Attach recomputes the rows whenever st reports a change of the view's slot.
func (c *Controller[T]) Attach(st *store.Store) {
	unsubscribe := st.Subscribe(func(event store.ChangeEvent) {
		if event.Resource == c.def.Resource {
			c.Refresh()
		}
	})

	c.mu.Lock()
	if c.unsubscribe != nil {
		c.unsubscribe()
	}
	c.unsubscribe = unsubscribe
	c.mu.Unlock()

	c.Refresh()
}

func (c *Controller[T]) Detach() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

func (c *Controller[T]) Definition() Definition[T] {
	return c.def
}

func (c *Controller[T]) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recompute()
}

func (c *Controller[T]) SetQuery(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = query
	c.recompute()
}

func (c *Controller[T]) SetSort(field string, desc bool) error {
	if !c.def.HasField(field) {
		return exceptions.ErrInvalidSortField(nil, field)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.sort = SortSpec{Field: field, Desc: desc}
	c.recompute()
	return nil
}

// ToggleSort flips an ascending sort on field to descending; any other state
// becomes an ascending sort on field. It returns the state it produced.
func (c *Controller[T]) ToggleSort(field string) (Snapshot[T], error) {
	if !c.def.HasField(field) {
		return Snapshot[T]{}, exceptions.ErrInvalidSortField(nil, field)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sort.Field == field && !c.sort.Desc {
		c.sort = SortSpec{Field: field, Desc: true}
	} else {
		c.sort = SortSpec{Field: field}
	}
	c.recompute()
	return c.snapshot(), nil
}

// Apply updates the query and sort and returns the resulting state without
// letting another change interleave. An unknown sort field changes nothing.
func (c *Controller[T]) Apply(change Change) (Snapshot[T], error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	field := change.SortField
	if field == "" && change.Desc != nil {
		field = c.sort.Field
	}
	if field != "" && !c.def.HasField(field) {
		return Snapshot[T]{}, exceptions.ErrInvalidSortField(nil, field)
	}

	if change.Query != nil {
		c.query = *change.Query
	}
	if field != "" {
		c.sort = SortSpec{Field: field, Desc: change.Desc != nil && *change.Desc}
	}
	if change.Query != nil || field != "" {
		c.recompute()
	}
	return c.snapshot(), nil
}

func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Controller[T]) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

func (c *Controller[T]) Sort() SortSpec {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sort
}

// Rows returns the current projection. Callers must not modify it.
func (c *Controller[T]) Rows() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clip(c.rows)
}

func (c *Controller[T]) snapshot() Snapshot[T] {
	return Snapshot[T]{Query: c.query, Sort: c.sort, Rows: slices.Clip(c.rows)}
}

func (c *Controller[T]) recompute() {
	c.rows = Derive(c.source(), c.def, c.query, c.sort)
	c.Log.Debug("listview.Controller recomputed",
		zap.String(constvars.LoggingResourceKey, string(c.def.Resource)),
		zap.String(constvars.URLQueryParamSort, c.sort.Field),
		zap.String(constvars.URLQueryParamOrder, c.sort.Order()),
		zap.Int(constvars.LoggingRowCountKey, len(c.rows)),
	)
}
