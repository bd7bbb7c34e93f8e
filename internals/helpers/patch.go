// file: internals/helpers/patch.go
package helper

import "encoding/json"

// OptString: field merge-patch untuk kolom teks opsional.
// Membedakan tiga keadaan dari body JSON:
//   - key tidak ada          → Set=false  → no-op
//   - key ada, nilai null    → Set=true, Valid=false → kosongkan kolom
//   - key ada, nilai string  → Set=true, Valid=true  → simpan nilai
type OptString struct {
	Set   bool
	Valid bool
	Value string
}

func (o *OptString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Valid = false
		o.Value = ""
		return nil
	}
	if err := json.Unmarshal(b, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o OptString) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Ptr mengembalikan *string untuk disimpan ke model (nil kalau di-null-kan)
func (o OptString) Ptr() *string {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
