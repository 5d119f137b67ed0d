package model

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// ApplyPatch shallow-merges the top-level keys of patch onto dst, which must be
// a pointer to a JSON-tagged struct. Keys absent from patch keep their current
// value; nested objects such as Address are replaced wholesale. Unknown keys are
// dropped and values are not otherwise validated.
func ApplyPatch(dst any, patch []byte) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("patch target must be a non-nil pointer, got %T", dst)
	}

	current, err := json.Marshal(dst)
	if err != nil {
		return fmt.Errorf("failed to encode current record: %w", err)
	}

	merged := make(map[string]json.RawMessage)
	if err := json.Unmarshal(current, &merged); err != nil {
		return fmt.Errorf("failed to decode current record: %w", err)
	}

	var overlay map[string]json.RawMessage
	if err := json.Unmarshal(patch, &overlay); err != nil {
		return fmt.Errorf("invalid patch body: %w", err)
	}
	for k, v := range overlay {
		merged[k] = v
	}

	out, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("failed to encode merged record: %w", err)
	}
	// Decode into a zero value so a partial nested object does not inherit
	// the old fields.
	fresh := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(out, fresh.Interface()); err != nil {
		return fmt.Errorf("invalid patch value: %w", err)
	}
	rv.Elem().Set(fresh.Elem())
	return nil
}
