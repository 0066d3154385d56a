package python

import (
	"context"
	"strings"

	"github.com/matzehuels/pep621/pkg/deps"
)

// Pyproject extracts dependencies from pyproject.toml files: PEP 621
// [project] tables, [build-system] requirements, PDM dev-dependencies and
// Hatch environments. Locked versions come from a sibling pdm.lock or
// poetry.lock read through the FileReader.
//
// A Pyproject holds no per-call state and is safe for concurrent use.
type Pyproject struct {
	files deps.FileReader
}

// NewPyproject creates an extractor reading lock files through files.
// A nil files disables lock file lookups.
func NewPyproject(files deps.FileReader) *Pyproject {
	return &Pyproject{files: files}
}

func (p *Pyproject) Type() string              { return "pyproject.toml" }
func (p *Pyproject) Supports(name string) bool { return name == "pyproject.toml" }
func (p *Pyproject) LockFiles() []string       { return LockFileNames() }

// Extract returns the dependencies declared in content, or nil when content
// is blank, is not valid TOML, or declares no dependencies, project version
// or Python constraint.
func (p *Pyproject) Extract(ctx context.Context, content, fileName string, opts deps.Options) *deps.PackageFile {
	opts = opts.WithDefaults()
	logf := opts.Logger

	if strings.TrimSpace(content) == "" {
		return nil
	}
	doc, err := parseDocument(content)
	if err != nil {
		logf("%s: invalid toml: %v", fileName, err)
		return nil
	}

	registryURLs := resolveRegistryURLs(pdmSources(doc))

	list := []deps.Dependency{}
	for _, walk := range walkers {
		for _, raw := range walk(doc, logf) {
			spec, ok := ParseSpecifier(raw.Specifier)
			if !ok {
				logf("%s: dropping unparseable specifier %q in %s", fileName, raw.Specifier, raw.DepType)
				continue
			}
			dep := spec.Dependency(raw.DepType)
			dep.RegistryURLs = withRegistryURLs(registryURLs)
			list = append(list, dep)
		}
	}

	if !opts.SkipLockFiles {
		applyLockedVersions(list, lockedVersions(ctx, p.files, doc, fileName, logf))
	}

	pf := &deps.PackageFile{Deps: list}
	if v, ok := doc.str("project", "version"); ok && v != "" {
		pf.PackageFileVersion = v
	}
	if v, ok := doc.str("project", "requires-python"); ok && v != "" {
		pf.ExtractedConstraints = &deps.Constraints{Python: v}
	}

	if len(pf.Deps) == 0 && pf.PackageFileVersion == "" && pf.ExtractedConstraints.IsZero() {
		return nil
	}
	return pf
}

var _ deps.ManifestExtractor = (*Pyproject)(nil)
