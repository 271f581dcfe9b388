// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package descriptor defines the format-agnostic Application Descriptor: the
// static record a hosting web framework reads once at boot to configure
// itself (modules, rendering mode, document head tags, stylesheets, UI
// options, client-exposed runtime config, compatibility date, pre-bundling
// hints and lint style).
//
// # Lifecycle
//
// A Descriptor is produced by a Loader (see the hcl and yamlcfg packages),
// validated once, and then only read. Nothing in this package mutates a
// loaded value; WithPublicEnv returns a new Descriptor instead. Because the
// value is never written after load it can be shared between goroutines
// without locking.
//
// # Field paths
//
// Get and Value address fields by camelCase paths that mirror the record
// layout rather than the source syntax, for example `documentHead.metaTags`,
// `runtimeConfig.public["partykitHost"]` or `buildOptimization.include[0]`.
// Paths that do not exist fail with *UnknownFieldError; no default is ever
// substituted.
//
// # Errors
//
// Loading and validation report *ConfigurationError. Module identifiers that
// no registered capability provides are reported as *ModuleResolutionError.
// All of them are boot-time failures.
package descriptor
