// Package designtokens turns the design tokens stored in site settings into CSS custom
// properties that the public site loads at runtime.
package designtokens

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	namePattern  = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	unsafeValues = strings.NewReplacer(";", "", "{", "", "}", "", "<", "", ">", "", "\n", " ", "\r", " ")
)

// Defaults are applied underneath whatever the admin has saved.
var Defaults = map[string]string{
	"color-primary":       "#2563eb",
	"color-primary-hover": "#1d4ed8",
	"color-secondary":     "#7c3aed",
	"color-background":    "#ffffff",
	"color-foreground":    "#0f172a",
	"color-muted":         "#64748b",
	"font-sans":           "Inter, system-ui, sans-serif",
	"font-heading":        "Inter, system-ui, sans-serif",
	"radius-base":         "0.5rem",
	"section-padding-y":   "6rem",
	"container-max-width": "80rem",
	"shadow-card":         "0 1px 3px rgba(15, 23, 42, 0.1)",
}

// Validate rejects token names that cannot be CSS custom property names.
func Validate(tokens map[string]string) error {
	for name, value := range tokens {
		if !namePattern.MatchString(name) {
			return fmt.Errorf("invalid token name %q", name)
		}
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("token %q has an empty value", name)
		}
	}
	return nil
}

// Merge overlays tokens on Defaults. Invalid names are dropped.
func Merge(tokens map[string]string) map[string]string {
	merged := make(map[string]string, len(Defaults)+len(tokens))
	for k, v := range Defaults {
		merged[k] = v
	}
	for k, v := range tokens {
		if namePattern.MatchString(k) && strings.TrimSpace(v) != "" {
			merged[k] = v
		}
	}
	return merged
}

// RenderCSS emits a :root block with one --name: value; line per token, sorted by name.
func RenderCSS(tokens map[string]string) string {
	merged := Merge(tokens)
	names := make([]string, 0, len(merged))
	for k := range merged {
		names = append(names, k)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  --%s: %s;\n", name, strings.TrimSpace(unsafeValues.Replace(merged[name])))
	}
	b.WriteString("}\n")
	return b.String()
}
