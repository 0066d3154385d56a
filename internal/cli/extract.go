package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pep621/pkg/deps"
	"github.com/matzehuels/pep621/pkg/pipeline"
)

// Output formats for the extract command.
const (
	formatTable = "table"
	formatJSON  = "json"
)

// extractOpts holds the command-line flags for the extract command.
type extractOpts struct {
	format       string
	output       string
	manifestType string
	noCache      bool
	refresh      bool
	noLock       bool
}

// extractCommand creates the extract command.
func (c *CLI) extractCommand() *cobra.Command {
	opts := extractOpts{format: formatTable}

	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Extract declared dependencies from a manifest",
		Long: `Extract reads a pyproject.toml or requirements file and lists every
declared dependency. Sibling pdm.lock or poetry.lock files are consulted
for locked versions unless --no-lock is given.`,
		Example: `  pep621 extract pyproject.toml
  pep621 extract services/api/pyproject.toml --format json -o deps.json
  pep621 extract deps.in --type requirements`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExtract(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: table or json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write output to file instead of stdout")
	cmd.Flags().StringVarP(&opts.manifestType, "type", "t", "", "manifest type (pyproject, requirements); detected from the file name by default")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results")
	cmd.Flags().BoolVar(&opts.noLock, "no-lock", false, "do not read lock files")

	return cmd
}

func (c *CLI) runExtract(cmd *cobra.Command, path string, opts extractOpts) error {
	if opts.format != formatTable && opts.format != formatJSON {
		return fmt.Errorf("invalid format %q (want %s or %s)", opts.format, formatTable, formatJSON)
	}

	ctx := cmd.Context()
	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	res, err := runner.Extract(ctx, path, pipeline.Options{
		ManifestType:  opts.manifestType,
		Refresh:       opts.refresh,
		SkipLockFiles: opts.noLock,
		TTL:           c.Config.Cache.TTL,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Extracted %d dependencies from %s", res.DepCount(), res.Type))

	var buf bytes.Buffer
	if err := render(&buf, res.PackageFile, opts.format); err != nil {
		return err
	}

	if opts.output == "" {
		_, err := io.Copy(cmd.OutOrStdout(), &buf)
		return err
	}
	if err := os.WriteFile(opts.output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	printSuccess("Extracted %s", path)
	printStats(res.DepCount(), res.CacheHit)
	printFile(opts.output)
	return nil
}

// render writes pf in the requested format. A nil pf renders as JSON
// null or a warning in table mode.
func render(w io.Writer, pf *deps.PackageFile, format string) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(pf)
	}

	if pf == nil {
		printWarning("No dependencies found")
		return nil
	}
	if len(pf.Deps) > 0 {
		fmt.Fprintln(w, depsTable(pf.Deps))
	} else {
		printInfo("No dependencies declared")
	}
	writeSummary(w, pf)
	return nil
}
