package deps

// Datasource identifiers. The update pipeline resolves upstream versions
// through the named datasource; extraction only records the name.
const (
	DatasourcePyPI = "pypi" // Python Package Index
)

// Skip reasons attached to dependencies without a usable constraint.
const (
	SkipUnspecifiedVersion = "unspecified-version" // No version constraint declared
	SkipUnsupportedURL     = "unsupported-url"     // Direct URL reference (name @ url)
)

// Options configures extraction behavior.
type Options struct {
	SkipLockFiles bool                 // Do not consult sibling lock files
	Logger        func(string, ...any) // Diagnostic callback (optional)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// Dependency is a single declared dependency extracted from a manifest.
//
// Exactly one of CurrentValue and SkipReason is set. PackageName and DepName
// are never empty.
type Dependency struct {
	PackageName    string   `json:"packageName"`              // Name as declared (casing preserved)
	DepName        string   `json:"depName"`                  // Display name, same as PackageName
	Datasource     string   `json:"datasource"`               // Upstream lookup source (e.g., "pypi")
	DepType        string   `json:"depType"`                  // Section or group label
	CurrentValue   string   `json:"currentValue,omitempty"`   // Raw constraint (e.g., ">=1.0,<2")
	CurrentVersion string   `json:"currentVersion,omitempty"` // Pinned version for "==X" constraints
	SkipReason     string   `json:"skipReason,omitempty"`     // Why no constraint could be extracted
	RegistryURLs   []string `json:"registryUrls,omitempty"`   // Ordered registry URLs, nil for defaults
	LockedVersion  string   `json:"lockedVersion,omitempty"`  // Version resolved from a lock file
}

// Constraints holds language or tool version constraints declared by a manifest.
type Constraints struct {
	Python string `json:"python,omitempty"` // requires-python
}

// IsZero reports whether no constraint is set.
func (c *Constraints) IsZero() bool {
	return c == nil || c.Python == ""
}

// PackageFile is the result of extracting one manifest.
// It is never modified after being returned by an extractor.
type PackageFile struct {
	// Deps is empty, not nil, when only a version or constraint was found.
	Deps                 []Dependency `json:"deps"`
	PackageFileVersion   string       `json:"packageFileVersion,omitempty"`
	ExtractedConstraints *Constraints `json:"extractedConstraints,omitempty"`
}

// DepsOfType returns the dependencies whose DepType equals depType,
// in extraction order.
func (p *PackageFile) DepsOfType(depType string) []Dependency {
	if p == nil {
		return nil
	}
	var out []Dependency
	for _, d := range p.Deps {
		if d.DepType == depType {
			out = append(out, d)
		}
	}
	return out
}
