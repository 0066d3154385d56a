package python

import (
	"context"
	"testing"

	"github.com/matzehuels/pep621/pkg/deps"
)

func TestRequirements_Supports(t *testing.T) {
	r := &Requirements{}

	tests := []struct {
		filename string
		want     bool
	}{
		{"requirements.txt", true},
		{"requirements-dev.txt", true},
		{"requirements_prod.txt", true},
		{"requirements-test.txt", true},
		{"pyproject.toml", false},
		{"poetry.lock", false},
		{"Pipfile", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := r.Supports(tt.filename); got != tt.want {
				t.Errorf("Supports(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestRequirements_Extract(t *testing.T) {
	content := `# Test requirements
requests>=2.28.0
click==8.1.0
pydantic[email]>=2.0  # trailing comment
# Comment line
httpx

# Empty lines above

-e ./local-package  # editable, should be skipped
-r other.txt
git+https://github.com/user/repo.git  # git URL, should be skipped
??? not a requirement
`
	got := (&Requirements{}).Extract(context.Background(), content, "requirements.txt", deps.Options{Logger: t.Logf})
	if got == nil {
		t.Fatal("Extract() returned nil")
	}

	assertDeps(t, got.Deps, []deps.Dependency{
		dep("requests", DepTypeRequirements, ">=2.28.0"),
		pinned("click", DepTypeRequirements, "8.1.0"),
		dep("pydantic", DepTypeRequirements, ">=2.0"),
		dep("httpx", DepTypeRequirements, ""),
	})
}

func TestRequirements_LineShapes(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []deps.Dependency
	}{
		{
			name:    "hash option",
			content: "foo==1.0 --hash=sha256:abcd\n",
			want:    []deps.Dependency{pinned("foo", DepTypeRequirements, "1.0")},
		},
		{
			name:    "tab before comment",
			content: "bar>=2\t# pinned\n",
			want:    []deps.Dependency{dep("bar", DepTypeRequirements, ">=2")},
		},
		{
			name:    "line continuation",
			content: "baz==3 \\\n    --hash=sha256:ef \\\n    --hash=sha256:01\nqux<4\n",
			want: []deps.Dependency{
				pinned("baz", DepTypeRequirements, "3"),
				dep("qux", DepTypeRequirements, "<4"),
			},
		},
		{
			name:    "marker kept out of value",
			content: "attrs==23.1.0 ; python_version >= '3.8' --hash=sha256:aa\n",
			want:    []deps.Dependency{pinned("attrs", DepTypeRequirements, "23.1.0")},
		},
		{
			name:    "trailing continuation at end of file",
			content: "click>=8 \\",
			want:    []deps.Dependency{dep("click", DepTypeRequirements, ">=8")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := (&Requirements{}).Extract(context.Background(), tt.content, "requirements.txt", deps.Options{Logger: t.Logf})
			if got == nil {
				t.Fatal("Extract() returned nil")
			}
			assertDeps(t, got.Deps, tt.want)
		})
	}
}

func TestStripComment(t *testing.T) {
	tests := map[string]string{
		"# only a comment":                   "",
		"flask>=3  # web":                    "flask>=3",
		"flask>=3\t#web":                     "flask>=3",
		"--index-url https://a/simple#egg=x": "--index-url https://a/simple#egg=x",
		"  requests  ":                       "requests",
	}
	for in, want := range tests {
		if got := stripComment(in); got != want {
			t.Errorf("stripComment(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRequirements_IndexURLs(t *testing.T) {
	content := `--extra-index-url https://extra.example/simple
--index-url=https://mirror.example/simple
flask>=3
`
	got := (&Requirements{}).Extract(context.Background(), content, "requirements.txt", deps.Options{})
	assertDeps(t, got.Deps, withURLs([]deps.Dependency{
		dep("flask", DepTypeRequirements, ">=3"),
	}, "https://mirror.example/simple", "https://extra.example/simple"))
}

func TestRequirements_Empty(t *testing.T) {
	for _, content := range []string{"", "# only comments\n", "-r base.txt\n"} {
		if got := (&Requirements{}).Extract(context.Background(), content, "requirements.txt", deps.Options{}); got != nil {
			t.Errorf("Extract(%q) = %+v, want nil", content, got)
		}
	}
}

func TestIndexOption(t *testing.T) {
	tests := []struct {
		line   string
		want   RegistrySource
		wantOK bool
	}{
		{"--index-url https://a/simple", RegistrySource{Name: "pypi", URL: "https://a/simple", VerifySSL: true}, true},
		{"-i https://a/simple", RegistrySource{Name: "pypi", URL: "https://a/simple", VerifySSL: true}, true},
		{"--extra-index-url=https://b/simple?x=1", RegistrySource{URL: "https://b/simple?x=1", VerifySSL: true}, true},
		{"--extra-index-url https://b/simple?x=1", RegistrySource{URL: "https://b/simple?x=1", VerifySSL: true}, true},
		{"-r base.txt", RegistrySource{}, false},
		{"--index-url", RegistrySource{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := indexOption(tt.line)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("indexOption(%q) = %+v, %v; want %+v, %v", tt.line, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRequirements_Type(t *testing.T) {
	r := &Requirements{}
	if got := r.Type(); got != "requirements.txt" {
		t.Errorf("Type() = %q, want %q", got, "requirements.txt")
	}
	if r.LockFiles() != nil {
		t.Error("LockFiles() should be nil")
	}
}
