// Package deps defines the data model shared by manifest extractors.
//
// # Overview
//
// An extractor turns the text of a manifest into a [PackageFile]: an ordered
// list of [Dependency] declarations plus the project's own version and any
// language constraints it declares. The result feeds an update pipeline
// that compares declared constraints against upstream releases; the
// upstream lookup itself lives elsewhere and is referenced here only by
// datasource name (see [DatasourcePyPI]).
//
// # Extractors
//
// Extractors implement [ManifestExtractor]. They never return errors:
// malformed input yields nil (nothing usable) or a partial result where
// only the malformed sections are missing.
//
//	e, _ := python.Language.Detect("pyproject.toml", deps.OSFiles{})
//	pf := e.Extract(ctx, content, "pyproject.toml", deps.Options{})
//	if pf == nil {
//	    // nothing of interest
//	}
//
// # Storage
//
// Sibling lock files are read through a [FileReader]. [OSFiles] reads from
// disk; [MapFiles] serves contents from memory, which is what the HTTP
// service and tests use.
//
// # Dependencies
//
// Each [Dependency] carries exactly one of CurrentValue (the declared
// constraint) or SkipReason (why there is none):
//
//   - PackageName, DepName: the declared name, casing preserved
//   - DepType: the section or group label the declaration came from
//   - CurrentVersion: set when the constraint pins one version ("==X")
//   - RegistryURLs: ordered registry URLs when the manifest declares sources
//   - LockedVersion: the version recorded by a lock file, when available
//
// # Supported Languages
//
//   - [python]: pyproject.toml (PEP 621, PDM, Hatch), requirements.txt
//
// [python]: github.com/matzehuels/pep621/pkg/deps/python
package deps
