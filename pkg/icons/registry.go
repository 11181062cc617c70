// Package icons resolves the icon identifiers stored on features and chips against
// the icon libraries the public site bundles.
//
// Two spellings are accepted:
//
//	"lucide:bar-chart"   library-qualified kebab name
//	"LuBarChart"         component name, library taken from the prefix
//
// A bare kebab name ("zap") is looked up in the default library.
package icons

import (
	"sort"
	"strings"
	"unicode"
)

const DefaultLibrary = "lucide"

// Icon is a resolved icon reference.
type Icon struct {
	Id      string `json:"id"`
	Library string `json:"library"`
	Name    string `json:"name"`
}

type library struct {
	key        string
	label      string
	prefix     string
	variants   []string
	names      map[string]struct{}
	sortedKeys []string
}

var libraries = map[string]*library{}

// component prefixes ordered longest first so "Hi2" wins over "Hi"
var prefixes []*library

func register(key, label, prefix string, variants []string, names ...string) {
	lib := &library{key: key, label: label, prefix: prefix, variants: variants, names: map[string]struct{}{}}
	for _, n := range names {
		lib.names[n] = struct{}{}
		lib.sortedKeys = append(lib.sortedKeys, n)
	}
	sort.Strings(lib.sortedKeys)
	libraries[key] = lib
	prefixes = append(prefixes, lib)
	sort.Slice(prefixes, func(i, j int) bool { return len(prefixes[i].prefix) > len(prefixes[j].prefix) })
}

func init() {
	register("lucide", "Lucide", "Lu", nil,
		"activity", "bar-chart", "bar-chart-3", "bell", "bot", "brain", "calendar", "check", "check-circle",
		"cloud", "code", "cpu", "database", "file-text", "gauge", "git-branch", "globe", "headphones",
		"key", "layers", "layout", "life-buoy", "line-chart", "lock", "mail", "message-square", "pie-chart",
		"plug", "rocket", "search", "settings", "shield", "shield-check", "sparkles", "star", "target",
		"timer", "trending-up", "users", "wand", "workflow", "zap")
	register("heroicons", "Heroicons", "Hi", []string{"Outline", "Solid", "Mini"},
		"academic-cap", "adjustments", "arrow-path", "bolt", "chart-bar", "chart-pie", "chat-bubble-left",
		"check-badge", "cloud", "cog", "command-line", "cpu-chip", "cube", "document-text", "envelope",
		"globe-alt", "light-bulb", "lock-closed", "puzzle-piece", "rocket-launch", "server", "shield-check",
		"sparkles", "squares-plus", "user-group", "wrench")
	register("fontawesome", "Font Awesome", "Fa", []string{"Regular"},
		"bolt", "brain", "chart-line", "cloud", "code", "cogs", "comments", "database", "envelope",
		"headset", "lock", "plug", "robot", "rocket", "shield-alt", "sync", "tools", "user-shield", "users")
	register("material", "Material", "Md", []string{"Outlined", "Outline", "Round", "Sharp"},
		"analytics", "api", "auto-awesome", "autorenew", "cloud", "dashboard", "extension", "hub",
		"insights", "integration-instructions", "lock", "psychology", "security", "settings", "smart-toy",
		"speed", "support-agent", "sync")
}

// Resolve parses and validates an icon identifier.
func Resolve(id string) (Icon, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Icon{}, false
	}

	if lib, name, found := strings.Cut(id, ":"); found {
		return lookup(strings.ToLower(lib), name)
	}

	if first := rune(id[0]); unicode.IsUpper(first) {
		for _, lib := range prefixes {
			if !strings.HasPrefix(id, lib.prefix) {
				continue
			}
			rest := strings.TrimPrefix(id, lib.prefix)
			for _, v := range lib.variants {
				rest = strings.TrimPrefix(rest, v)
			}
			if icon, ok := lookup(lib.key, kebab(rest)); ok {
				return icon, true
			}
		}
		return Icon{}, false
	}

	return lookup(DefaultLibrary, id)
}

func lookup(libKey, name string) (Icon, bool) {
	lib, ok := libraries[libKey]
	if !ok {
		return Icon{}, false
	}
	if _, ok := lib.names[name]; !ok {
		return Icon{}, false
	}
	return Icon{Id: libKey + ":" + name, Library: libKey, Name: name}, true
}

// Search lists icons whose name contains query. An empty library searches all of them.
func Search(libKey, query string, limit int) []Icon {
	query = strings.ToLower(strings.TrimSpace(query))

	keys := make([]string, 0, len(libraries))
	if libKey != "" {
		if _, ok := libraries[libKey]; ok {
			keys = append(keys, libKey)
		}
	} else {
		for k := range libraries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
	}

	result := make([]Icon, 0)
	for _, k := range keys {
		for _, name := range libraries[k].sortedKeys {
			if query != "" && !strings.Contains(name, query) {
				continue
			}
			result = append(result, Icon{Id: k + ":" + name, Library: k, Name: name})
			if limit > 0 && len(result) >= limit {
				return result
			}
		}
	}
	return result
}

// Library describes one registered icon set for the picker's tab bar.
type Library struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

func Libraries() []Library {
	out := make([]Library, 0, len(libraries))
	for _, lib := range libraries {
		out = append(out, Library{Key: lib.key, Label: lib.label, Count: len(lib.names)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// kebab turns "ChartBar3" into "chart-bar-3".
func kebab(s string) string {
	var b strings.Builder
	var prev rune
	for i, r := range s {
		switch {
		case unicode.IsUpper(r):
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsDigit(r):
			if i > 0 && !unicode.IsDigit(prev) {
				b.WriteByte('-')
			}
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}
