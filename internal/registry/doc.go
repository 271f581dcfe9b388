// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package registry provides the central "glue" for the module system.
//
// The Registry maps the module identifiers listed in a descriptor (e.g.
// "@nuxt/ui") to the compiled capabilities that understand them. Each
// capability may own one descriptor section and validate its contents.
//
// During application startup, the registry is populated from Go code and
// then checked against the loaded descriptor, so that a descriptor naming an
// unknown module or carrying a malformed module section fails at boot rather
// than at build time in the browser toolchain.
package registry
