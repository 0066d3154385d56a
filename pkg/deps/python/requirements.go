package python

import (
	"bufio"
	"context"
	"regexp"
	"strings"

	"github.com/matzehuels/pep621/pkg/deps"
)

var (
	// commentRE matches a comment: '#' at line start or after whitespace.
	commentRE = regexp.MustCompile(`(^|\s)#`)
	// optionRE matches the first per-requirement option, e.g. --hash.
	optionRE = regexp.MustCompile(`\s--`)
)

// Requirements extracts dependencies from pip requirements files.
// --index-url and --extra-index-url options become registry URLs, the same
// way [[tool.pdm.source]] entries do for pyproject.toml.
type Requirements struct{}

func (r *Requirements) Type() string        { return "requirements.txt" }
func (r *Requirements) LockFiles() []string { return nil }

func (r *Requirements) Supports(name string) bool {
	return name == "requirements.txt" ||
		(strings.HasPrefix(name, "requirements") && strings.HasSuffix(name, ".txt"))
}

// Extract returns one dependency per requirement line, or nil when the file
// declares none. Comments, options, editable installs and URL requirements
// are skipped; trailing per-requirement options such as --hash are ignored.
func (r *Requirements) Extract(ctx context.Context, content, fileName string, opts deps.Options) *deps.PackageFile {
	opts = opts.WithDefaults()

	var (
		list    []deps.Dependency
		sources []RegistrySource
	)
	lines, err := logicalLines(content)
	if err != nil {
		opts.Logger("%s: %v", fileName, err)
		return nil
	}
	for _, line := range lines {
		line = stripComment(line)
		if line == "" {
			continue
		}
		if line[0] == '-' {
			if src, ok := indexOption(line); ok {
				sources = append(sources, src)
			}
			continue
		}
		if loc := optionRE.FindStringIndex(line); loc != nil {
			line = strings.TrimSpace(line[:loc[0]])
		}
		if strings.Contains(line, "://") || strings.HasPrefix(line, "git+") {
			continue
		}
		spec, ok := ParseSpecifier(line)
		if !ok {
			opts.Logger("%s: dropping unparseable requirement %q", fileName, line)
			continue
		}
		list = append(list, spec.Dependency(DepTypeRequirements))
	}
	if len(list) == 0 {
		return nil
	}

	urls := resolveRegistryURLs(sources)
	for i := range list {
		list[i].RegistryURLs = withRegistryURLs(urls)
	}
	return &deps.PackageFile{Deps: list}
}

// indexOption parses "--index-url URL", "-i URL" and "--extra-index-url URL"
// (with a space or '=' separator).
func indexOption(line string) (RegistrySource, bool) {
	name, value, ok := strings.Cut(line, "=")
	if !ok || strings.ContainsAny(name, " \t") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return RegistrySource{}, false
		}
		name, value = fields[0], fields[1]
	}
	value = strings.TrimSpace(value)
	switch strings.TrimSpace(name) {
	case "--index-url", "-i":
		return RegistrySource{Name: defaultSourceName, URL: value, VerifySSL: true}, value != ""
	case "--extra-index-url":
		return RegistrySource{URL: value, VerifySSL: true}, value != ""
	}
	return RegistrySource{}, false
}

// logicalLines joins physical lines ending in a backslash with the line
// that follows, as pip does before parsing.
func logicalLines(content string) ([]string, error) {
	var (
		lines   []string
		pending strings.Builder
	)
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		text := scanner.Text()
		if trimmed := strings.TrimRight(text, " \t"); strings.HasSuffix(trimmed, "\\") {
			pending.WriteString(strings.TrimSuffix(trimmed, "\\"))
			pending.WriteByte(' ')
			continue
		}
		pending.WriteString(text)
		lines = append(lines, pending.String())
		pending.Reset()
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if pending.Len() > 0 {
		lines = append(lines, pending.String())
	}
	return lines, nil
}

func stripComment(line string) string {
	if loc := commentRE.FindStringIndex(line); loc != nil {
		line = line[:loc[0]]
	}
	return strings.TrimSpace(line)
}

var _ deps.ManifestExtractor = (*Requirements)(nil)
