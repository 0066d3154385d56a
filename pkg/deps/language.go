package deps

import "fmt"

// Language describes the manifests and datasource of one ecosystem.
type Language struct {
	Name            string
	Datasource      string
	ManifestTypes   []string
	ManifestAliases map[string]string
	NewExtractor    func(name string, files FileReader) ManifestExtractor
	Extractors      func(files FileReader) []ManifestExtractor
}

// Extractor returns the extractor registered under name or one of its aliases.
func (l *Language) Extractor(name string, files FileReader) (ManifestExtractor, error) {
	if l.NewExtractor != nil {
		if e := l.NewExtractor(l.alias(name), files); e != nil {
			return e, nil
		}
	}
	return nil, fmt.Errorf("unknown %s manifest type %q (available: %v)", l.Name, name, l.ManifestTypes)
}

// Detect picks the extractor supporting path.
func (l *Language) Detect(path string, files FileReader) (ManifestExtractor, error) {
	return DetectManifest(path, l.Extractors(files)...)
}

func (l *Language) alias(name string) string {
	if v, ok := l.ManifestAliases[name]; ok {
		return v
	}
	return name
}
