// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package descriptor

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// sensitiveKeywords mark keys that must never reach client code. Any key
// containing one of them (case-insensitive) is rejected.
var sensitiveKeywords = []string{
	"password",
	"passwd",
	"secret",
	"token",
	"apikey",
	"api_key",
	"credential",
	"privatekey",
	"private_key",
}

func isSensitiveKey(key string) bool {
	lowerKey := strings.ToLower(key)
	for _, keyword := range sensitiveKeywords {
		if strings.Contains(lowerKey, keyword) {
			return true
		}
	}
	return false
}

// validatePublic enforces that runtimeConfig.public holds plain data only:
// primitives, or lists and objects of them, with no nulls and no keys that
// look like secrets.
func validatePublic(pub cty.Value) []string {
	var problems []string
	var walk func(path string, v cty.Value)
	walk = func(path string, v cty.Value) {
		if !v.IsKnown() || v.IsNull() {
			problems = append(problems, fmt.Sprintf("%s must not be null", path))
			return
		}
		ty := v.Type()
		switch {
		case ty.IsPrimitiveType():
			return
		case ty.IsObjectType() || ty.IsMapType():
			it := v.ElementIterator()
			for it.Next() {
				k, ev := it.Element()
				key := k.AsString()
				if isSensitiveKey(key) {
					problems = append(problems, fmt.Sprintf("%s.%s looks like a secret and cannot be exposed to client code", path, key))
					continue
				}
				walk(path+"."+key, ev)
			}
		case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
			it := v.ElementIterator()
			for i := 0; it.Next(); i++ {
				_, ev := it.Element()
				walk(fmt.Sprintf("%s[%d]", path, i), ev)
			}
		default:
			problems = append(problems, fmt.Sprintf("%s has unsupported type %s", path, ty.FriendlyName()))
		}
	}
	walk("runtimeConfig.public", pub)
	return problems
}
