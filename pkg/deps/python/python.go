package python

import (
	"regexp"
	"strings"

	"github.com/matzehuels/pep621/pkg/deps"
)

// Language provides Python manifest extraction.
// Supports pyproject.toml and requirements.txt manifest files.
var Language = &deps.Language{
	Name:          "python",
	Datasource:    deps.DatasourcePyPI,
	ManifestTypes: []string{"pyproject", "requirements"},
	ManifestAliases: map[string]string{
		"pyproject.toml":   "pyproject",
		"pep621":           "pyproject",
		"requirements.txt": "requirements",
	},
	NewExtractor: newExtractor,
	Extractors:   extractors,
}

func newExtractor(name string, files deps.FileReader) deps.ManifestExtractor {
	switch name {
	case "pyproject":
		return NewPyproject(files)
	case "requirements":
		return &Requirements{}
	default:
		return nil
	}
}

func extractors(files deps.FileReader) []deps.ManifestExtractor {
	return []deps.ManifestExtractor{
		NewPyproject(files),
		&Requirements{},
	}
}

var separatorRE = regexp.MustCompile(`[-_.]+`)

// normalize converts a package name to its PEP 503 canonical form:
// lowercase with runs of '-', '_' and '.' collapsed to '-'.
func normalize(name string) string {
	return separatorRE.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}
