package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uiforge/uiforge/internal/adapter"
	"github.com/uiforge/uiforge/internal/component"
	"github.com/uiforge/uiforge/internal/generator"
	"github.com/uiforge/uiforge/internal/logger"
)

type generateOptions struct {
	DefinitionPath string
	Target         string
	ComponentName  string
	OutputPath     string
}

func newGenerateCmd(root *rootFlags, log *logger.Logger) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate framework-specific source for a component definition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, log)
		},
	}

	cmd.Flags().StringVarP(&opts.DefinitionPath, "file", "f", "", "Path to component definition file")
	cmd.Flags().StringVarP(&opts.Target, "target", "t", "", "Target framework (react, vue, svelte, nextjs)")
	cmd.Flags().StringVar(&opts.ComponentName, "component", "", "Component to generate when the file declares several")
	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "", "Write output to a file instead of stdout")
	cmd.MarkFlagRequired("file")   //nolint:errcheck
	cmd.MarkFlagRequired("target") //nolint:errcheck

	return cmd
}

func runGenerate(cmd *cobra.Command, opts generateOptions, log *logger.Logger) error {
	defs, err := component.LoadDefinitions(opts.DefinitionPath)
	if err != nil {
		return err
	}

	def, err := selectDefinition(defs, opts.ComponentName)
	if err != nil {
		return err
	}

	code, err := generator.GenerateComponent(def, adapter.Framework(opts.Target))
	if err != nil {
		return err
	}

	if opts.OutputPath != "" {
		if err := os.WriteFile(opts.OutputPath, []byte(code), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", opts.OutputPath, err)
		}
		log.WithFields(map[string]any{"component": def.Name, "target": opts.Target}).Info("component written")
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), code)
	return nil
}

func selectDefinition(defs []component.Definition, name string) (*component.Definition, error) {
	if name == "" {
		if len(defs) > 1 {
			return nil, fmt.Errorf("definition file declares %d components; pick one with --component", len(defs))
		}
		return &defs[0], nil
	}

	for i := range defs {
		if defs[i].Name == name {
			return &defs[i], nil
		}
	}

	return nil, fmt.Errorf("component %q not found in definition file", name)
}
