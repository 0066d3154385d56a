package python

import (
	"regexp"
	"strings"

	"github.com/matzehuels/pep621/pkg/deps"
)

var (
	specifierRE = regexp.MustCompile(`^\s*([A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?)\s*(?:\[([^\]]*)\])?\s*([^;]*?)\s*(?:;\s*(.*?))?\s*$`)
	exactPinRE  = regexp.MustCompile(`^==\s*([^=,*\s][^,*\s]*)$`)
)

// Specifier is a parsed PEP 508 dependency specifier.
type Specifier struct {
	Name       string   // Package name as written
	Extras     []string // Requested extras, e.g. [security]
	Constraint string   // Version constraint, empty when absent
	Marker     string   // Environment marker after ';'
	URL        string   // Direct reference after '@'
}

// ParseSpecifier splits a dependency specifier such as
// "requests[security]>=2.8.1; python_version < '3.8'" into its parts.
// It returns false when no package name can be recovered or the text after
// the name is not a version constraint.
func ParseSpecifier(s string) (Specifier, bool) {
	m := specifierRE.FindStringSubmatch(s)
	if m == nil {
		return Specifier{}, false
	}
	spec := Specifier{Name: m[1], Marker: m[4]}
	for _, e := range strings.Split(m[2], ",") {
		if e = strings.TrimSpace(e); e != "" {
			spec.Extras = append(spec.Extras, e)
		}
	}

	rest := m[3]
	if strings.HasPrefix(rest, "(") && strings.HasSuffix(rest, ")") {
		rest = strings.TrimSpace(rest[1 : len(rest)-1])
	}
	switch {
	case rest == "":
	case rest[0] == '@':
		spec.URL = strings.TrimSpace(rest[1:])
		if spec.URL == "" {
			return Specifier{}, false
		}
	case strings.ContainsRune("<>=!~", rune(rest[0])):
		spec.Constraint = rest
	default:
		return Specifier{}, false
	}
	return spec, true
}

// ExactVersion returns the pinned version when the constraint is a single
// "==X" clause without wildcards.
func (s Specifier) ExactVersion() (string, bool) {
	m := exactPinRE.FindStringSubmatch(s.Constraint)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Dependency converts the specifier into a dependency record labeled depType.
func (s Specifier) Dependency(depType string) deps.Dependency {
	dep := deps.Dependency{
		PackageName: s.Name,
		DepName:     s.Name,
		Datasource:  deps.DatasourcePyPI,
		DepType:     depType,
	}
	switch {
	case s.URL != "":
		dep.SkipReason = deps.SkipUnsupportedURL
	case s.Constraint == "":
		dep.SkipReason = deps.SkipUnspecifiedVersion
	default:
		dep.CurrentValue = s.Constraint
		if v, ok := s.ExactVersion(); ok {
			dep.CurrentVersion = v
		}
	}
	return dep
}
