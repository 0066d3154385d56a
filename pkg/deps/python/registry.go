package python

import (
	"slices"
	"strings"
)

// DefaultRegistryURL is the PyPI endpoint used when no source overrides it.
const DefaultRegistryURL = "https://pypi.org/pypi/"

// defaultSourceName is the source name that replaces the default registry.
const defaultSourceName = "pypi"

// RegistrySource is an alternate or overriding package index declared by
// the manifest (e.g., [[tool.pdm.source]]).
type RegistrySource struct {
	Name      string
	URL       string
	VerifySSL bool
}

// IsDefaultOverride reports whether the source replaces the default registry.
func (s RegistrySource) IsDefaultOverride() bool {
	return strings.EqualFold(s.Name, defaultSourceName)
}

// pdmSources reads [[tool.pdm.source]] entries in declaration order.
// Entries without a URL are ignored.
func pdmSources(doc *document) []RegistrySource {
	v, ok := doc.lookup("tool", "pdm", "source")
	if !ok {
		return nil
	}
	var sources []RegistrySource
	for _, t := range tableList(v) {
		url, _ := t["url"].(string)
		if url == "" {
			continue
		}
		name, _ := t["name"].(string)
		src := RegistrySource{Name: name, URL: url, VerifySSL: true}
		if verify, ok := t["verify_ssl"].(bool); ok {
			src.VerifySSL = verify
		}
		sources = append(sources, src)
	}
	return sources
}

// resolveRegistryURLs orders registry URLs for a document: the default
// registry (or the source overriding it) first, then every other source in
// declaration order. It returns nil when no source is declared so that
// dependencies fall back to the datasource default.
func resolveRegistryURLs(sources []RegistrySource) []string {
	if len(sources) == 0 {
		return nil
	}
	urls := make([]string, 0, len(sources)+1)
	urls = append(urls, DefaultRegistryURL)
	overridden := false
	for _, s := range sources {
		if s.IsDefaultOverride() && !overridden {
			urls[0] = s.URL
			overridden = true
			continue
		}
		urls = append(urls, s.URL)
	}
	return urls
}

// withRegistryURLs returns a copy of urls for a single dependency.
func withRegistryURLs(urls []string) []string {
	if urls == nil {
		return nil
	}
	return slices.Clone(urls)
}
