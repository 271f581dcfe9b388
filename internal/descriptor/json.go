// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package descriptor

import (
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Fields returns every record field path of the descriptor schema.
func Fields() []string {
	return append([]string(nil), FieldPaths...)
}

// MarshalValue encodes a descriptor value as plain JSON, without type
// information.
func MarshalValue(v cty.Value) ([]byte, error) {
	return ctyjson.SimpleJSONValue{Value: v}.MarshalJSON()
}

// JSON encodes the whole descriptor as a JSON object keyed by field name.
func (d *Descriptor) JSON() ([]byte, error) {
	return MarshalValue(d.AsValue())
}
