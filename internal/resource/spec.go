// Package resource is the generic list/filter/CRUD engine. Every resource
// module instantiates it with a declarative Spec instead of carrying its own
// repository, service, and handler code.
package resource

// FilterKind selects how a declared filter key is interpreted and bound.
type FilterKind int

const (
	// FilterString matches the column exactly against the raw value.
	FilterString FilterKind = iota
	// FilterNumber parses the value as a number and matches exactly.
	FilterNumber
	// FilterBool accepts "true"/"false".
	FilterBool
	// FilterRange accepts the base key for exact numeric match plus
	// "{key}_min" and "{key}_max" bounds.
	FilterRange
)

// FilterField declares one filterable query key for a resource.
type FilterField struct {
	Key    string
	Column string
	Kind   FilterKind
}

// ReferenceGuard declares a dependent table/foreign-key pair checked before
// deletion. Cascade marks references that do not block a delete.
type ReferenceGuard struct {
	Table   string
	Column  string
	Cascade bool
}

// Spec is the declarative configuration of one resource: everything the
// generic repository, service, and handler need to serve it.
type Spec struct {
	// Name is the public resource name, e.g. "companies". It is used in
	// permission strings, field allow-list lookups, and log entries.
	Name string

	// Table is the backing table name.
	Table string

	// MaxLimit caps the page size. Zero means the engine fallback cap.
	MaxLimit int

	// DefaultSort is the "field:direction" order applied when a request
	// names no recognized sort field, e.g. "id:desc".
	DefaultSort string

	// SearchFields are the columns matched by case-insensitive substring
	// search. Empty means the resource does not support search.
	SearchFields []string

	// SortFields maps public sort field names to storage columns. Sort keys
	// absent from this map are ignored.
	SortFields map[string]string

	// Filters declares the recognized filter keys. Query keys absent from
	// this list are ignored, never interpolated.
	Filters []FilterField

	// Guards lists the foreign-key references checked before deletion.
	Guards []ReferenceGuard
}
