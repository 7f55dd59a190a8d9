package document

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/joshradin/data-eater/pkg/snowflake"
)

// Document is a single entity. Fields preserve insertion order.
type Document struct {
	ID     snowflake.Snowflake                       `json:"id"`
	Fields *orderedmap.OrderedMap[string, *Document] `json:"fields"`
}

// New returns an empty document keyed by id.
func New(id snowflake.Snowflake) *Document {
	return &Document{
		ID:     id,
		Fields: orderedmap.New[string, *Document](),
	}
}

// Set stores a nested document under name, appending the field when new and
// keeping its position when it already exists.
func (d *Document) Set(name string, child *Document) {
	if d.Fields == nil {
		d.Fields = orderedmap.New[string, *Document]()
	}
	d.Fields.Set(name, child)
}

// Get returns the nested document stored under name.
func (d *Document) Get(name string) (*Document, bool) {
	if d.Fields == nil {
		return nil, false
	}
	return d.Fields.Get(name)
}

// FieldNames returns the field names in insertion order.
func (d *Document) FieldNames() []string {
	if d.Fields == nil {
		return nil
	}
	names := make([]string, 0, d.Fields.Len())
	for pair := d.Fields.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Len returns the number of fields.
func (d *Document) Len() int {
	if d.Fields == nil {
		return 0
	}
	return d.Fields.Len()
}

// DocumentRef points at another document by its identifier. Comparable and
// usable as a map key.
type DocumentRef struct {
	ID snowflake.Snowflake
}

// Ref wraps an identifier as a reference.
func Ref(id snowflake.Snowflake) DocumentRef { return DocumentRef{ID: id} }

// MarshalJSON encodes the reference as the raw identifier.
func (r DocumentRef) MarshalJSON() ([]byte, error) { return r.ID.MarshalJSON() }

// UnmarshalJSON decodes and validates a raw identifier.
func (r *DocumentRef) UnmarshalJSON(b []byte) error { return r.ID.UnmarshalJSON(b) }
