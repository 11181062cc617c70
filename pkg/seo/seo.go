// Package seo builds the <head> metadata and JSON-LD documents served with public pages.
package seo

import (
	"encoding/json"
	"strings"
)

const schemaContext = "https://schema.org"

// Site carries the site-wide values every page inherits.
type Site struct {
	Name    string
	BaseURL string
	LogoURL string
	// SameAs lists social profile URLs for the Organization document
	SameAs []string
}

// Page is the per-page input.
type Page struct {
	Slug        string
	Title       string
	MetaTitle   string
	Description string
	Image       string
}

// QA is one question/answer pair for FAQPage documents.
type QA struct {
	Question string
	Answer   string
}

// Metadata is the rendered head data.
type Metadata struct {
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Canonical   string            `json:"canonical"`
	OpenGraph   map[string]string `json:"openGraph"`
	Twitter     map[string]string `json:"twitter"`
	JSONLD      []json.RawMessage `json:"jsonLd"`
}

// URL joins the base URL and a slug. The "home" slug maps to the site root.
func (s Site) URL(slug string) string {
	base := strings.TrimRight(s.BaseURL, "/")
	if slug == "" || slug == "home" {
		return base + "/"
	}
	return base + "/" + strings.TrimLeft(slug, "/")
}

// ForPage assembles metadata for a CMS page. faqs may be empty.
func ForPage(site Site, page Page, faqs []QA) Metadata {
	title := page.MetaTitle
	if title == "" {
		title = page.Title
	}
	if site.Name != "" && !strings.Contains(title, site.Name) {
		title = title + " | " + site.Name
	}
	canonical := site.URL(page.Slug)

	meta := Metadata{
		Title:       title,
		Description: page.Description,
		Canonical:   canonical,
		OpenGraph: map[string]string{
			"og:type":      "website",
			"og:title":     title,
			"og:url":       canonical,
			"og:site_name": site.Name,
		},
		Twitter: map[string]string{
			"twitter:card":  "summary_large_image",
			"twitter:title": title,
		},
	}
	if page.Description != "" {
		meta.OpenGraph["og:description"] = page.Description
		meta.Twitter["twitter:description"] = page.Description
	}
	if page.Image != "" {
		meta.OpenGraph["og:image"] = page.Image
		meta.Twitter["twitter:image"] = page.Image
	}

	docs := []interface{}{
		Organization(site),
		WebPage(site, page, title),
	}
	if page.Slug != "" && page.Slug != "home" {
		docs = append(docs, Breadcrumbs(site, page))
	}
	if len(faqs) > 0 {
		docs = append(docs, FAQPage(faqs))
	}
	meta.JSONLD = encodeAll(docs)
	return meta
}

func Organization(site Site) map[string]interface{} {
	doc := map[string]interface{}{
		"@context": schemaContext,
		"@type":    "Organization",
		"name":     site.Name,
		"url":      site.URL(""),
	}
	if site.LogoURL != "" {
		doc["logo"] = site.LogoURL
	}
	if len(site.SameAs) > 0 {
		doc["sameAs"] = site.SameAs
	}
	return doc
}

func WebPage(site Site, page Page, title string) map[string]interface{} {
	doc := map[string]interface{}{
		"@context": schemaContext,
		"@type":    "WebPage",
		"name":     title,
		"url":      site.URL(page.Slug),
		"isPartOf": map[string]interface{}{
			"@type": "WebSite",
			"name":  site.Name,
			"url":   site.URL(""),
		},
	}
	if page.Description != "" {
		doc["description"] = page.Description
	}
	return doc
}

func Breadcrumbs(site Site, page Page) map[string]interface{} {
	return map[string]interface{}{
		"@context": schemaContext,
		"@type":    "BreadcrumbList",
		"itemListElement": []map[string]interface{}{
			{"@type": "ListItem", "position": 1, "name": "Home", "item": site.URL("")},
			{"@type": "ListItem", "position": 2, "name": page.Title, "item": site.URL(page.Slug)},
		},
	}
}

func FAQPage(faqs []QA) map[string]interface{} {
	entities := make([]map[string]interface{}, 0, len(faqs))
	for _, qa := range faqs {
		entities = append(entities, map[string]interface{}{
			"@type": "Question",
			"name":  qa.Question,
			"acceptedAnswer": map[string]interface{}{
				"@type": "Answer",
				"text":  qa.Answer,
			},
		})
	}
	return map[string]interface{}{
		"@context":   schemaContext,
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
}

// QAPage is used by the single-question FAQ detail route.
func QAPage(site Site, path string, qa QA) Metadata {
	canonical := site.URL(path)
	title := qa.Question
	if site.Name != "" {
		title += " | " + site.Name
	}
	doc := map[string]interface{}{
		"@context": schemaContext,
		"@type":    "QAPage",
		"mainEntity": map[string]interface{}{
			"@type":       "Question",
			"name":        qa.Question,
			"answerCount": 1,
			"acceptedAnswer": map[string]interface{}{
				"@type": "Answer",
				"text":  qa.Answer,
				"url":   canonical,
			},
		},
	}
	return Metadata{
		Title:       title,
		Description: truncate(qa.Answer, 160),
		Canonical:   canonical,
		OpenGraph:   map[string]string{"og:type": "article", "og:title": title, "og:url": canonical},
		Twitter:     map[string]string{"twitter:card": "summary", "twitter:title": title},
		JSONLD:      encodeAll([]interface{}{doc}),
	}
}

func encodeAll(docs []interface{}) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(docs))
	for _, d := range docs {
		raw, err := json.Marshal(d)
		if err != nil {
			continue
		}
		out = append(out, raw)
	}
	return out
}

func truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return strings.TrimSpace(string(r[:n-1])) + "…"
}
