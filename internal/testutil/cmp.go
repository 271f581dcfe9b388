// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package testutil

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/vk/resumedesc/internal/descriptor"
	"github.com/zclconf/go-cty/cty"
)

// DescriptorOptions are the cmp options for comparing two descriptors loaded
// from different sources: cty values compare semantically, nil and empty
// collections are equal, and Source is ignored.
func DescriptorOptions() cmp.Options {
	return cmp.Options{
		cmp.Comparer(func(a, b cty.Value) bool {
			a, b = descriptor.ObjectOrEmpty(a), descriptor.ObjectOrEmpty(b)
			return a.RawEquals(b) || a.Equals(b).True()
		}),
		cmpopts.EquateEmpty(),
		cmpopts.IgnoreFields(descriptor.Descriptor{}, "Source"),
	}
}
