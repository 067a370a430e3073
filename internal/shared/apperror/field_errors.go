package apperror

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors maps a json field name to its messages. It is serialised as the
// whole response body of a validation failure: {"field": ["message", ...]}.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

func (f FieldErrors) Merge(other FieldErrors) {
	for field, msgs := range other {
		f[field] = append(f[field], msgs...)
	}
}

func (f FieldErrors) Has(field string) bool {
	return len(f[field]) > 0
}

func (f FieldErrors) Clone() FieldErrors {
	if f == nil {
		return nil
	}
	out := make(FieldErrors, len(f))
	for field, msgs := range f {
		out[field] = append([]string(nil), msgs...)
	}
	return out
}

// Err returns nil when no field failed.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return NewValidation(f)
}

func (f FieldErrors) String() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(f[k], "; ")))
	}
	return strings.Join(parts, ", ")
}

// InvalidPK is the message for a reference to a row that does not exist.
func InvalidPK(id any) string {
	return fmt.Sprintf(`Invalid pk "%v" - object does not exist.`, id)
}
