package mapper

import "strings"

func nilIfEmpty(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func mapSlice[S any, D any](in []S, fn func(*S) *D) []*D {
	out := make([]*D, 0, len(in))
	for i := range in {
		out = append(out, fn(&in[i]))
	}
	return out
}

func unmapSlice[S any, D any](in []*S, fn func(*S) *D) []D {
	out := make([]D, 0, len(in))
	for _, v := range in {
		if d := fn(v); d != nil {
			out = append(out, *d)
		}
	}
	return out
}
