// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// Payload is one unit of application data pushed by the feed server.
//
// The client never validates its fields: a payload is stored and replaced
// wholesale. Values follow encoding/json decoding rules with numbers kept as
// json.Number, so integers of any size survive unchanged; nested objects are
// map[string]any and arrays are []any.
type Payload map[string]any

// DecodePayload decodes a JSON object into a Payload, keeping numbers as
// json.Number. A JSON null yields a nil Payload and no error.
func DecodePayload(data []byte) (Payload, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var p Payload
	if err := dec.Decode(&p); err != nil {
		return nil, err
	}
	return p, nil
}

// Clone returns a deep copy of p. Nested maps and slices are copied so that a
// stored payload cannot be mutated through a reference held by the caller.
// Cloning a nil payload returns nil.
func (p Payload) Clone() Payload {
	if p == nil {
		return nil
	}

	dup := make(Payload, len(p))
	for k, v := range p {
		dup[k] = cloneValue(v)
	}
	return dup
}

// Equal reports whether p and other hold the same values.
func (p Payload) Equal(other Payload) bool {
	return reflect.DeepEqual(p, other)
}

func cloneValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		dup := make(map[string]any, len(value))
		for k, nested := range value {
			dup[k] = cloneValue(nested)
		}
		return dup
	case Payload:
		return value.Clone()
	case []any:
		dup := make([]any, len(value))
		for i, nested := range value {
			dup[i] = cloneValue(nested)
		}
		return dup
	default:
		return v
	}
}
