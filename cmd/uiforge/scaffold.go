package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/uiforge/uiforge/internal/adapter"
	"github.com/uiforge/uiforge/internal/component"
	"github.com/uiforge/uiforge/internal/generator"
	"github.com/uiforge/uiforge/internal/logger"
)

type scaffoldOptions struct {
	DefinitionPath string
	Target         string
	OutputDir      string
}

func newScaffoldCmd(root *rootFlags, log *logger.Logger) *cobra.Command {
	opts := scaffoldOptions{}

	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Generate a project structure for every component in a definition file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScaffold(cmd, opts, log)
		},
	}

	cmd.Flags().StringVarP(&opts.DefinitionPath, "file", "f", "", "Path to component definition file")
	cmd.Flags().StringVarP(&opts.Target, "target", "t", "", "Target framework (react, vue, svelte, nextjs)")
	cmd.Flags().StringVar(&opts.OutputDir, "out", "", "Directory to write generated files into")
	cmd.MarkFlagRequired("file")   //nolint:errcheck
	cmd.MarkFlagRequired("target") //nolint:errcheck
	cmd.MarkFlagRequired("out")    //nolint:errcheck

	return cmd
}

// runScaffold owns the file writing: the generator returns a pure
// filename-to-source mapping and never touches the filesystem.
func runScaffold(cmd *cobra.Command, opts scaffoldOptions, log *logger.Logger) error {
	defs, err := component.LoadDefinitions(opts.DefinitionPath)
	if err != nil {
		return err
	}

	files, err := generator.GenerateProject(defs, adapter.Framework(opts.Target))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", opts.OutputDir, err)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(opts.OutputDir, name)
		if err := os.WriteFile(path, []byte(files[name]), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		log.WithFields(map[string]any{"file": name}).Debug("file written")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %d files in %s\n", len(names), opts.OutputDir)
	return nil
}
