// Package catalog holds product records parsed from the published sheet.
package catalog

// Well known header names.
const (
	FieldID        = "id"
	FieldName      = "nameKo"
	FieldPrice     = "price"
	FieldImage     = "image"
	FieldCountry   = "country"
	FieldCharacter = "character"
	FieldCompany   = "company"
	FieldGroup     = "group"
	FieldSubGroup  = "subGroup"
)

// Record is one product row keyed by the sheet's header names. Records are
// built once per load and treated as read-only afterwards.
type Record map[string]string

// Get returns the value for a header name, or "" when absent.
func (r Record) Get(field string) string {
	return r[field]
}

func (r Record) ID() string        { return r[FieldID] }
func (r Record) Name() string      { return r[FieldName] }
func (r Record) Price() string     { return r[FieldPrice] }
func (r Record) Image() string     { return r[FieldImage] }
func (r Record) Country() string   { return r[FieldCountry] }
func (r Record) Character() string { return r[FieldCharacter] }
func (r Record) Company() string   { return r[FieldCompany] }
func (r Record) Group() string     { return r[FieldGroup] }
func (r Record) SubGroup() string  { return r[FieldSubGroup] }

// Snapshot is the ordered catalog of a session. It is replaced as a whole on
// every load.
type Snapshot []Record

// Find returns the record with the given id.
func (s Snapshot) Find(id string) (Record, bool) {
	for _, r := range s {
		if r.ID() == id {
			return r, true
		}
	}
	return nil, false
}

// IDs returns the record ids in catalog order.
func (s Snapshot) IDs() []string {
	ids := make([]string, 0, len(s))
	for _, r := range s {
		ids = append(ids, r.ID())
	}
	return ids
}
