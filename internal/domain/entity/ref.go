package entity

import "encoding/json"

// Ref is a relation field that is persisted as a bare id and may be expanded
// into the referenced record at read time. Resolution is a read-time
// projection only; a resolved Ref is never written back to the backing
// collection.
type Ref[T any] struct {
	ID     string
	Record *T
}

func NewRef[T any](id string) Ref[T] {
	return Ref[T]{ID: id}
}

func Resolved[T any](id string, record *T) Ref[T] {
	return Ref[T]{ID: id, Record: record}
}

// IsResolved reports whether the referenced record is embedded.
func (r Ref[T]) IsResolved() bool {
	return r.Record != nil
}

func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.Record != nil {
		return json.Marshal(r.Record)
	}
	return json.Marshal(r.ID)
}

func (r *Ref[T]) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		r.Record = nil
		return json.Unmarshal(data, &r.ID)
	}

	record := new(T)
	if err := json.Unmarshal(data, record); err != nil {
		return err
	}

	// Recover the id so an embedded record still resolves as a reference.
	var probe struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(data, &probe)

	r.ID = probe.ID
	r.Record = record
	return nil
}

// RefIDs projects a list of references back to their ids.
func RefIDs[T any](refs []Ref[T]) []string {
	ids := make([]string, len(refs))
	for i, ref := range refs {
		ids[i] = ref.ID
	}
	return ids
}
