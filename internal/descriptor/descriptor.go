// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package descriptor

import (
	"fmt"
	"time"

	"github.com/zclconf/go-cty/cty"
)

// DateLayout is the only accepted compatibility date format.
const DateLayout = "2006-01-02"

// RenderingMode selects server-side pre-rendering or client-only rendering.
type RenderingMode string

const (
	// RenderingUniversal pre-renders pages on the server and hydrates them in the browser.
	RenderingUniversal RenderingMode = "universal"
	// RenderingClient renders pages in the browser only.
	RenderingClient RenderingMode = "client"
)

// RenderingModeFromSSR maps the host framework's `ssr` switch to a mode.
func RenderingModeFromSSR(ssr bool) RenderingMode {
	if ssr {
		return RenderingUniversal
	}
	return RenderingClient
}

// SSR reports whether the mode requires server-side rendering.
func (m RenderingMode) SSR() bool {
	return m == RenderingUniversal
}

// Valid reports whether m is one of the known modes.
func (m RenderingMode) Valid() bool {
	return m == RenderingUniversal || m == RenderingClient
}

// MetaKind is the attribute a meta tag is keyed by.
type MetaKind string

const (
	MetaName     MetaKind = "name"
	MetaProperty MetaKind = "property"
)

// Valid reports whether k is one of the known meta kinds.
func (k MetaKind) Valid() bool {
	return k == MetaName || k == MetaProperty
}

// Descriptor is the fully populated application descriptor.
type Descriptor struct {
	// Source names the file(s) the descriptor was loaded from. It is used in
	// error messages only and is not part of the record.
	Source string

	Modules           []string
	RenderingMode     RenderingMode
	DevTools          bool
	Head              DocumentHead
	Stylesheets       []string
	UIOptions         cty.Value
	RuntimeConfig     RuntimeConfig
	CompatibilityDate time.Time
	Build             BuildOptimization
	LintStyle         cty.Value
}

// DocumentHead holds the tags injected into every rendered document head.
type DocumentHead struct {
	Title          string
	Charset        string
	HTMLAttributes map[string]string
	MetaTags       []MetaTag
	LinkTags       []LinkTag
}

// MetaTag is a single `<meta>` entry.
type MetaTag struct {
	Kind  MetaKind
	Key   string
	Value string
}

// LinkTag is a single `<link>` entry. Type and Sizes are optional.
type LinkTag struct {
	Rel   string
	Type  string
	Sizes string
	Href  string
}

// RuntimeConfig holds runtime settings. Public is exposed to client code.
type RuntimeConfig struct {
	Public cty.Value
}

// BuildOptimization holds bundler hints.
type BuildOptimization struct {
	// Include lists package identifiers to pre-bundle eagerly.
	Include []string
}

// ParseDate parses a compatibility date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("compatibilityDate %q is not a valid %s date", s, DateLayout)
	}
	return t, nil
}

// ObjectOrEmpty normalizes an absent free-form section to an empty object.
func ObjectOrEmpty(v cty.Value) cty.Value {
	if v.IsNull() {
		return cty.EmptyObjectVal
	}
	return v
}

// PublicString returns the client-exposed string value stored under key.
// The boolean is false when the key is absent or not a string.
func (d *Descriptor) PublicString(key string) (string, bool) {
	pub := ObjectOrEmpty(d.RuntimeConfig.Public)
	if !pub.Type().IsObjectType() || !pub.Type().HasAttribute(key) {
		return "", false
	}
	v := pub.GetAttr(key)
	if v.IsNull() || !v.IsKnown() || !v.Type().Equals(cty.String) {
		return "", false
	}
	return v.AsString(), true
}

// Populated reports whether a free-form section holds any value. A null
// section and an empty object or map are both unpopulated.
func Populated(v cty.Value) bool {
	if v.IsNull() {
		return false
	}
	if !v.IsKnown() {
		return true
	}
	if t := v.Type(); t.IsObjectType() || t.IsMapType() {
		return v.LengthInt() > 0
	}
	return true
}
