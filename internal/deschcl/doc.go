// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package deschcl collects the small HCL and cty helpers shared by the
// descriptor model and its loaders: unique block lookup, field path parsing,
// and conversion between cty values and plain Go data.
package deschcl
