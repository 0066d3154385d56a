package python

import "strings"

// Dependency type labels.
const (
	DepTypeProject      = "project.dependencies"
	DepTypeOptional     = "project.optional-dependencies"
	DepTypeBuildSystem  = "build-system.requires"
	DepTypePDMDev       = "tool.pdm.dev-dependencies"
	DepTypeRequirements = "requirements"

	hatchEnvPrefix = "tool.hatch.envs."
)

// HatchEnvDepType returns the dependency type for a Hatch environment.
func HatchEnvDepType(env string) string {
	return hatchEnvPrefix + env
}

// rawDeclaration is an uninterpreted specifier tagged with its section.
type rawDeclaration struct {
	Specifier string
	DepType   string
}

// walker collects declarations from one manifest convention. A missing
// section yields nothing; a malformed section is reported through logf and
// yields nothing.
type walker func(doc *document, logf func(string, ...any)) []rawDeclaration

// walkers run in this order; their outputs are concatenated.
var walkers = []walker{
	walkProjectDependencies,
	walkOptionalDependencies,
	walkBuildRequires,
	walkPDMDevDependencies,
	walkHatchEnvironments,
}

func walkProjectDependencies(doc *document, logf func(string, ...any)) []rawDeclaration {
	return walkList(doc, logf, DepTypeProject, "project", "dependencies")
}

func walkBuildRequires(doc *document, logf func(string, ...any)) []rawDeclaration {
	return walkList(doc, logf, DepTypeBuildSystem, "build-system", "requires")
}

// walkOptionalDependencies flattens every extra group into one label.
func walkOptionalDependencies(doc *document, logf func(string, ...any)) []rawDeclaration {
	return walkGroups(doc, logf, DepTypeOptional, "project", "optional-dependencies")
}

// walkPDMDevDependencies accepts both the grouped form
// ([tool.pdm.dev-dependencies] test = [...]) and a flat list.
func walkPDMDevDependencies(doc *document, logf func(string, ...any)) []rawDeclaration {
	path := []string{"tool", "pdm", "dev-dependencies"}
	v, ok := doc.lookup(path...)
	if !ok {
		return nil
	}
	if _, isTable := v.(map[string]any); isTable {
		return walkGroups(doc, logf, DepTypePDMDev, path...)
	}
	return walkList(doc, logf, DepTypePDMDev, path...)
}

// walkHatchEnvironments labels each environment separately so that
// environments stay distinguishable.
func walkHatchEnvironments(doc *document, logf func(string, ...any)) []rawDeclaration {
	path := []string{"tool", "hatch", "envs"}
	if !doc.has(path...) {
		return nil
	}
	if _, ok := doc.table(path...); !ok {
		logf("ignoring malformed section %s", strings.Join(path, "."))
		return nil
	}
	var out []rawDeclaration
	for _, env := range doc.childKeys(path...) {
		envPath := append(append([]string{}, path...), env)
		if _, ok := doc.table(envPath...); !ok {
			logf("ignoring malformed hatch environment %q", env)
			continue
		}
		depType := HatchEnvDepType(env)
		for _, key := range []string{"dependencies", "extra-dependencies"} {
			out = append(out, walkList(doc, logf, depType, append(envPath, key)...)...)
		}
	}
	return out
}

func walkList(doc *document, logf func(string, ...any), depType string, path ...string) []rawDeclaration {
	v, ok := doc.lookup(path...)
	if !ok {
		return nil
	}
	specs, ok := stringList(v)
	if !ok {
		logf("ignoring malformed section %s", strings.Join(path, "."))
		return nil
	}
	out := make([]rawDeclaration, 0, len(specs))
	for _, s := range specs {
		out = append(out, rawDeclaration{Specifier: s, DepType: depType})
	}
	return out
}

func walkGroups(doc *document, logf func(string, ...any), depType string, path ...string) []rawDeclaration {
	if !doc.has(path...) {
		return nil
	}
	if _, ok := doc.table(path...); !ok {
		logf("ignoring malformed section %s", strings.Join(path, "."))
		return nil
	}
	var out []rawDeclaration
	for _, group := range doc.childKeys(path...) {
		groupPath := append(append([]string{}, path...), group)
		out = append(out, walkList(doc, logf, depType, groupPath...)...)
	}
	return out
}
