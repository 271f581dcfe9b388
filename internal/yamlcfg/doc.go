// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package yamlcfg reads and writes the application descriptor as a YAML
// document shaped like the host framework's own configuration object:
//
//	modules: ["@nuxt/eslint", "@nuxt/ui"]
//	ssr: true
//	app:
//	  head:
//	    meta:
//	      - charset: utf-8
//	      - name: viewport
//	        content: width=device-width, initial-scale=1
//	compatibilityDate: "2025-01-15"
//
// Unknown keys are rejected.
package yamlcfg
