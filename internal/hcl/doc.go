// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package hcl provides the HCL implementation of the descriptor.Loader
// interface, the embedded static definition of the resume editor, and an
// encoder that writes a descriptor back out in canonical HCL form.
package hcl
