package python

import (
	"context"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pep621/pkg/deps"
)

// lockSource ties a tool table in pyproject.toml to the lock file that
// tool writes next to it.
type lockSource struct {
	tool string
	file string
}

// lockSources are checked in order; the first tool present wins.
var lockSources = []lockSource{
	{tool: "pdm", file: "pdm.lock"},
	{tool: "poetry", file: "poetry.lock"},
}

// LockFileNames lists every lock file a pyproject.toml may refer to.
func LockFileNames() []string {
	names := make([]string, len(lockSources))
	for i, s := range lockSources {
		names[i] = s.file
	}
	return names
}

func lockFileFor(doc *document) (string, bool) {
	for _, s := range lockSources {
		if doc.has("tool", s.tool) {
			return s.file, true
		}
	}
	return "", false
}

// lockFile covers the [[package]] layout shared by pdm.lock and poetry.lock.
type lockFile struct {
	Packages []lockPackage `toml:"package"`
}

type lockPackage struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// parseLock maps normalized package names to their locked versions.
func parseLock(content string) (map[string]string, error) {
	var lock lockFile
	if _, err := toml.Decode(content, &lock); err != nil {
		return nil, err
	}
	versions := make(map[string]string, len(lock.Packages))
	for _, pkg := range lock.Packages {
		if pkg.Name == "" || pkg.Version == "" {
			continue
		}
		versions[normalize(pkg.Name)] = pkg.Version
	}
	return versions, nil
}

// lockedVersions reads and parses the lock file referenced by doc. Any
// failure yields nil.
func lockedVersions(ctx context.Context, files deps.FileReader, doc *document, fileName string, logf func(string, ...any)) map[string]string {
	if files == nil {
		return nil
	}
	name, ok := lockFileFor(doc)
	if !ok {
		return nil
	}
	path := deps.SiblingPath(fileName, name)
	content, err := files.ReadLocalFile(ctx, path)
	if err != nil {
		logf("lock file %s unavailable: %v", path, err)
		return nil
	}
	if strings.TrimSpace(content) == "" {
		logf("lock file %s is empty", path)
		return nil
	}
	versions, err := parseLock(content)
	if err != nil {
		logf("lock file %s unparseable: %v", path, err)
		return nil
	}
	return versions
}

// applyLockedVersions annotates dependencies that declare a constraint.
func applyLockedVersions(list []deps.Dependency, versions map[string]string) {
	if len(versions) == 0 {
		return
	}
	for i := range list {
		if list[i].CurrentValue == "" {
			continue
		}
		if v, ok := versions[normalize(list[i].PackageName)]; ok {
			list[i].LockedVersion = v
		}
	}
}
