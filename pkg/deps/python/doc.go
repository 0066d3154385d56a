// Package python extracts dependency declarations from Python manifests.
//
// # Overview
//
// This package implements [deps.Language] for Python, supporting:
//
//   - pyproject.toml: PEP 621 [project] tables plus build-backend tool tables
//   - requirements.txt: pip requirement lines and index options
//
// # pyproject.toml
//
// [Pyproject] reads these sections, in this order:
//
//   - project.dependencies
//   - project.optional-dependencies (all groups share one depType)
//   - build-system.requires
//   - tool.pdm.dev-dependencies
//   - tool.hatch.envs.<env> dependencies and extra-dependencies
//     (depType "tool.hatch.envs.<env>")
//
// A missing or malformed section contributes nothing; the rest of the
// document is still extracted. Invalid TOML yields nil.
//
//	pf := python.NewPyproject(deps.OSFiles{}).Extract(ctx, content, "pyproject.toml", deps.Options{})
//
// # Registries
//
// When [[tool.pdm.source]] entries exist, every dependency gets the same
// ordered RegistryURLs: the source named "pypi" (or [DefaultRegistryURL])
// first, then the remaining sources in declaration order. Without sources
// the field is omitted.
//
// # Lock Files
//
// A [tool.pdm] table selects the sibling pdm.lock, a [tool.poetry] table
// the sibling poetry.lock. Dependencies with a constraint whose name
// appears in the lock get LockedVersion. An unreadable lock is ignored.
//
// # Package Name Normalization
//
// Lock lookups normalize names following PEP 503: converted to lowercase
// with runs of [_.-] replaced by single hyphens. Extracted names keep the
// casing they were declared with.
//
// [deps.Language]: github.com/matzehuels/pep621/pkg/deps.Language
package python
