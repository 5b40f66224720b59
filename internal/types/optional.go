package types

import (
	"bytes"
	"encoding/json"
)

// Optional is a PATCH-body field that distinguishes three states:
// absent from the request (Set == false), explicitly null (Set == true,
// Value == nil), and a concrete value. UnmarshalJSON only runs when the
// key is present, which is what makes the first two distinguishable.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}
