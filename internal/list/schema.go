package list

// Record is the contract every managed entity satisfies: a stable identifier
// assigned by the backend, unique within its collection.
type Record interface {
	RecordID() string
}

// FieldFunc extracts a string projection of a record, used for search
// matching, filter matching and export columns.
type FieldFunc[T Record] func(T) string

// Schema declares how a domain type plugs into a Controller: which fields
// are searchable, which are filterable, how status transitions work and how
// records flatten into export rows. Controllers are parameterized by a
// Schema value rather than by inheritance.
type Schema[T Record] struct {
	// Resource is the REST collection name, e.g. "students".
	Resource string

	// Searchable fields participate in case-insensitive substring search.
	Searchable []FieldFunc[T]

	// Filterable maps filter-field names to value extractors. Filters
	// match exactly and combine with logical AND.
	Filterable map[string]FieldFunc[T]

	// Status extracts the primary status value; nil when the domain has
	// no activation workflow.
	Status FieldFunc[T]

	// StatusField is the JSON field name patched by ToggleStatus and
	// bulk deactivation. Defaults to "status".
	StatusField string

	// Transitions is the fixed toggle table: current status -> next.
	Transitions map[string]string

	// Terminal marks statuses with no outgoing transition.
	Terminal map[string]bool

	// InactiveStatus is the value written by bulk deactivation; empty
	// when the domain does not support it.
	InactiveStatus string

	// Fields maps export column names to value extractors.
	Fields map[string]FieldFunc[T]

	// ValidateDraft checks a create/update draft before any network
	// call. Implementations typically delegate to validator.Struct.
	ValidateDraft func(draft interface{}) error
}

func (s Schema[T]) statusField() string {
	if s.StatusField == "" {
		return "status"
	}
	return s.StatusField
}
