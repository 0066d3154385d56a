// Package pkg provides the libraries behind pep621, a dependency extractor
// for Python project manifests.
//
// # Overview
//
//  1. [deps] - Data model, manifest detection and file access
//  2. [deps/python] - pyproject.toml and requirements extraction
//  3. [pipeline] - Cached extraction used by the CLI and HTTP service
//  4. [cache] - Null, file, in-memory LRU and Redis result caches
//  5. [errors], [observability], [buildinfo] - Ambient support
//
// # Architecture
//
//	pyproject.toml (+ pdm.lock / poetry.lock)
//	         ↓
//	    [pipeline] Runner (cache lookup by content hash)
//	         ↓
//	    [deps/python] walkers → specifier parser → registry resolver → lock
//	         ↓
//	    deps.PackageFile (JSON)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/pep621/pkg/deps"
//	    "github.com/matzehuels/pep621/pkg/deps/python"
//	)
//
//	pf := python.NewPyproject(deps.OSFiles{}).Extract(ctx, content, "pyproject.toml", deps.Options{})
//	if pf == nil {
//	    return // nothing of interest declared
//	}
//	for _, d := range pf.Deps {
//	    fmt.Println(d.DepType, d.DepName, d.CurrentValue, d.LockedVersion)
//	}
//
// [deps]: https://pkg.go.dev/github.com/matzehuels/pep621/pkg/deps
// [deps/python]: https://pkg.go.dev/github.com/matzehuels/pep621/pkg/deps/python
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/pep621/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/pep621/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/pep621/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/pep621/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/pep621/pkg/buildinfo
package pkg
