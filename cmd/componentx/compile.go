package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/componentx/pkg/style"
	"github.com/vango-dev/componentx/pkg/styleserver"
)

func compileCmd(opts *globalOptions) *cobra.Command {
	var (
		name   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "compile [file...]",
		Short: "Compile style files to scoped CSS",
		Long: `Compile style descriptions into CSS scoped to their component.

The component name is the file name without .style.json/.style.yaml,
or --name when a single file is given. Without arguments every style
file in the configured styles directory is compiled.

Examples:
  componentx compile styles/Card.style.json
  componentx compile --name Badge badge.yaml
  componentx compile --output dist/components.css`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			if name != "" && len(args) != 1 {
				return usageError("--name needs exactly one file")
			}
			if output == "" {
				output = cfg.Styles.Output
			}

			if len(args) == 0 {
				args, err = sourceFiles(cfg.StylesPath())
				if err != nil {
					return err
				}
			}

			reg, err := compileFiles(args, name, logger)
			if err != nil {
				return err
			}

			if output == "" {
				return writeRegistry(cmd.OutOrStdout(), reg)
			}
			if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
				return err
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := writeRegistry(f, reg); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			success("Compiled %d stylesheets to %s", reg.Len(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Component name (single file only)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

// sourceFiles lists the style files in dir.
func sourceFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if !e.IsDir() && styleserver.IsSourceFile(e.Name()) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// compileFiles compiles each file into a fresh registry. A second file for
// an already compiled component is skipped with a warning.
func compileFiles(paths []string, name string, logger *slog.Logger) (*style.Registry, error) {
	reg := style.NewRegistry(style.WithLogger(logger))
	for _, p := range paths {
		sheet, err := style.LoadFile(p)
		if err != nil {
			return nil, err
		}
		component := name
		if component == "" {
			component = style.ComponentName(p)
		}
		if reg.Has(component) {
			logger.Warn("duplicate component style skipped", "component", component, "file", p)
			continue
		}
		reg.Inject(component, style.Compile(sheet, component))
	}
	return reg, nil
}

func writeRegistry(w io.Writer, reg *style.Registry) error {
	var b strings.Builder
	for _, n := range reg.Names() {
		css, _ := reg.Get(n)
		b.WriteString("/* " + style.ElementID(n) + " */")
		b.WriteString(css)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
