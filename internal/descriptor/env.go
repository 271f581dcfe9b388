// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package descriptor

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/zclconf/go-cty/cty"
)

// DefaultEnvPrefix is the prefix the host framework uses for deploy-time
// overrides of runtimeConfig.public.
const DefaultEnvPrefix = "NUXT_PUBLIC_"

// EnvName returns the environment variable that overrides the public key,
// e.g. partykitHost -> NUXT_PUBLIC_PARTYKIT_HOST.
func EnvName(prefix, key string) string {
	var b strings.Builder
	b.WriteString(prefix)
	runes := []rune(key)
	for i, r := range runes {
		switch {
		case r == '-' || r == '.' || r == ' ':
			b.WriteByte('_')
		case unicode.IsUpper(r):
			if i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])) {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// WithPublicEnv returns a copy of the descriptor whose runtimeConfig.public
// values are replaced by matching environment variables. Only keys already
// declared can be overridden; a key with no variable set keeps its declared
// value, so an empty default stays empty. The names of the overridden keys
// are returned in sorted order. The receiver is not modified.
func (d *Descriptor) WithPublicEnv(environ []string, prefix string) (*Descriptor, []string, error) {
	env := make(map[string]string)
	for _, e := range environ {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) == 2 && strings.HasPrefix(pair[0], prefix) {
			env[pair[0]] = pair[1]
		}
	}

	pub := ObjectOrEmpty(d.RuntimeConfig.Public)
	if len(env) == 0 || prefix == "" || !pub.Type().IsObjectType() {
		clone := *d
		return &clone, nil, nil
	}

	attrs := pub.AsValueMap()
	var applied, problems []string
	for key, current := range attrs {
		raw, ok := env[EnvName(prefix, key)]
		if !ok {
			continue
		}
		next, err := overrideValue(current, raw)
		if err != nil {
			problems = append(problems, fmt.Sprintf("runtimeConfig.public.%s: %s %v", key, EnvName(prefix, key), err))
			continue
		}
		attrs[key] = next
		applied = append(applied, key)
	}
	if len(problems) > 0 {
		sort.Strings(problems)
		return nil, nil, &ConfigurationError{Source: d.Source, Problems: problems}
	}
	sort.Strings(applied)

	clone := *d
	clone.RuntimeConfig = RuntimeConfig{Public: cty.ObjectVal(attrs)}
	return &clone, applied, nil
}

func overrideValue(current cty.Value, raw string) (cty.Value, error) {
	ty := current.Type()
	switch {
	case ty.Equals(cty.String):
		return cty.StringVal(raw), nil
	case ty.Equals(cty.Bool):
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return cty.NilVal, fmt.Errorf("is not a boolean: %q", raw)
		}
		return cty.BoolVal(b), nil
	case ty.Equals(cty.Number):
		n, err := cty.ParseNumberVal(raw)
		if err != nil {
			return cty.NilVal, fmt.Errorf("is not a number: %q", raw)
		}
		return n, nil
	default:
		return cty.NilVal, fmt.Errorf("cannot override a %s value from the environment", ty.FriendlyName())
	}
}
