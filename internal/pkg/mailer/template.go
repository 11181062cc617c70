package mailer

import (
	"fmt"
	"html"
	"regexp"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

var placeholder = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.\-\[\]#]+)\s*\}\}`)

// TemplateData is what a notification template can reference besides the submitted fields.
type TemplateData struct {
	FormName    string
	SubmittedAt string
	FormData    []byte
}

// RenderText replaces {{FIELD}} placeholders with submitted values.
// FIELD is a gjson path into the form data ("email", "company.name", "tags.0"); a top-level key
// also matches case-insensitively so {{EMAIL}} finds "email". FORM_NAME, SUBMITTED_AT and
// ALL_FIELDS are built in. Unknown fields render empty.
func RenderText(tmpl string, data TemplateData) string {
	return render(tmpl, data, false)
}

// RenderHTML is RenderText with values HTML-escaped, for message bodies.
func RenderHTML(tmpl string, data TemplateData) string {
	return render(tmpl, data, true)
}

func render(tmpl string, data TemplateData, escape bool) string {
	doc := gjson.ParseBytes(data.FormData)
	return placeholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		key := placeholder.FindStringSubmatch(match)[1]
		value, raw := lookup(doc, key, data)
		if escape && !raw {
			return html.EscapeString(value)
		}
		return value
	})
}

func lookup(doc gjson.Result, key string, data TemplateData) (string, bool) {
	switch strings.ToUpper(key) {
	case "FORM_NAME":
		return data.FormName, false
	case "SUBMITTED_AT":
		return data.SubmittedAt, false
	case "ALL_FIELDS":
		return allFields(doc), false
	}

	if res := doc.Get(key); res.Exists() {
		return stringify(res), false
	}

	var found gjson.Result
	doc.ForEach(func(k, v gjson.Result) bool {
		if strings.EqualFold(k.String(), key) {
			found = v
			return false
		}
		return true
	})
	if found.Exists() {
		return stringify(found), false
	}
	return "", false
}

func stringify(res gjson.Result) string {
	if res.IsArray() {
		parts := make([]string, 0, len(res.Array()))
		for _, item := range res.Array() {
			parts = append(parts, stringify(item))
		}
		return strings.Join(parts, ", ")
	}
	if res.IsObject() {
		return res.Raw
	}
	return res.String()
}

// allFields lists every top-level field as "key: value" lines, sorted by key.
func allFields(doc gjson.Result) string {
	var lines []string
	doc.ForEach(func(k, v gjson.Result) bool {
		lines = append(lines, fmt.Sprintf("%s: %s", k.String(), stringify(v)))
		return true
	})
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

// DefaultSubject and DefaultBody are used while site settings hold no templates.
const (
	DefaultSubject = "New {{FORM_NAME}} submission"
	DefaultBody    = "<p>A new <strong>{{FORM_NAME}}</strong> form was submitted at {{SUBMITTED_AT}}.</p><pre>{{ALL_FIELDS}}</pre>"
)
