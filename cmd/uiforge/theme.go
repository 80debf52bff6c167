package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/uiforge/uiforge/internal/logger"
	"github.com/uiforge/uiforge/internal/theme"
	forgeerrors "github.com/uiforge/uiforge/pkg/errors"
)

type themeFlags struct {
	dir string
}

func newThemeCmd(root *rootFlags, log *logger.Logger) *cobra.Command {
	flags := &themeFlags{}

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage design-token themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.dir, "dir", "themes", "Directory holding persisted theme records")

	cmd.AddCommand(newThemeCreateCmd(flags, log))
	cmd.AddCommand(newThemeShowCmd(flags))
	cmd.AddCommand(newThemeListCmd(flags))
	cmd.AddCommand(newThemeUpdateCmd(flags, log))
	cmd.AddCommand(newThemeDeleteCmd(flags, log))
	cmd.AddCommand(newThemeExportCmd(flags))

	return cmd
}

func openStore(flags *themeFlags) (*theme.Store, error) {
	return theme.NewStore(flags.dir)
}

func newThemeCreateCmd(flags *themeFlags, log *logger.Logger) *cobra.Command {
	var payloadPath string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a theme from a payload file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(flags)
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(payloadPath)
			if err != nil {
				return fmt.Errorf("reading %s: %w", payloadPath, err)
			}

			t, err := store.Create(raw)
			if err != nil {
				return err
			}

			log.WithFields(map[string]any{"theme": t.Name}).Info("theme created")
			fmt.Fprintf(cmd.OutOrStdout(), "Created theme %q\n", t.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&payloadPath, "file", "f", "", "Path to theme payload file")
	cmd.MarkFlagRequired("file") //nolint:errcheck

	return cmd
}

func newThemeUpdateCmd(flags *themeFlags, log *logger.Logger) *cobra.Command {
	var payloadPath string

	cmd := &cobra.Command{
		Use:   "update <name>",
		Short: "Replace an existing theme with a new payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(flags)
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(payloadPath)
			if err != nil {
				return fmt.Errorf("reading %s: %w", payloadPath, err)
			}

			t, err := store.Update(args[0], raw)
			if err != nil {
				return err
			}

			log.WithFields(map[string]any{"theme": t.Name}).Info("theme updated")
			fmt.Fprintf(cmd.OutOrStdout(), "Updated theme %q\n", t.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&payloadPath, "file", "f", "", "Path to theme payload file")
	cmd.MarkFlagRequired("file") //nolint:errcheck

	return cmd
}

func newThemeDeleteCmd(flags *themeFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a theme and its persisted record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(flags)
			if err != nil {
				return err
			}

			if err := store.Delete(args[0]); err != nil {
				return err
			}

			log.WithFields(map[string]any{"theme": args[0]}).Info("theme deleted")
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted theme %q\n", args[0])
			return nil
		},
	}

	return cmd
}

func newThemeListCmd(flags *themeFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(flags)
			if err != nil {
				return err
			}

			themes := store.List()
			if len(themes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No themes stored yet.")
				return nil
			}

			styled := isTerminal(cmd.OutOrStdout())
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "NAME\tSCHEMES\tFONT\tSWATCH")

			for _, t := range themes {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n",
					t.Name,
					schemeSummary(t),
					t.Typography.FontFamily,
					swatches(t, styled),
				)
			}

			return writer.Flush()
		},
	}

	return cmd
}

func newThemeShowCmd(flags *themeFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show a theme's design tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(flags)
			if err != nil {
				return err
			}

			t, ok := store.Get(args[0])
			if !ok {
				return forgeerrors.NewNotFoundError(args[0])
			}

			styled := isTerminal(cmd.OutOrStdout())
			title := t.Name
			if styled {
				title = lipgloss.NewStyle().Bold(true).Render(t.Name)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, title)
			for _, sp := range t.ColorSchemes {
				fmt.Fprintf(out, "  %s:\n", sp.Scheme)
				for _, slot := range sp.Palette.Entries() {
					fmt.Fprintf(out, "    %-10s %s %s\n", slot.Name, swatch(slot.Value, styled), slot.Value)
				}
			}
			fmt.Fprintf(out, "  typography: %s / %s / %s\n",
				t.Typography.FontFamily, t.Typography.FontSizeBase, t.Typography.LineHeightBase)
			fmt.Fprintf(out, "  spacing: unit %s, %d scale entries, %d custom\n",
				t.Spacing.Unit, len(t.Spacing.Scale), len(t.Spacing.Custom))
			for _, bp := range t.Breakpoints.Entries() {
				fmt.Fprintf(out, "  breakpoint %-4s %s\n", bp.Name, bp.Value)
			}

			return nil
		},
	}

	return cmd
}

func newThemeExportCmd(flags *themeFlags) *cobra.Command {
	var (
		format     string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Export a theme as stylesheet variables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(flags)
			if err != nil {
				return err
			}

			text, err := store.Export(args[0], theme.Format(format))
			if err != nil {
				return err
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, []byte(text), 0644); err != nil {
					return fmt.Errorf("writing %s: %w", outputPath, err)
				}
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "css", "Export format (css or scss)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write output to a file instead of stdout")

	return cmd
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// swatch renders a colored block for a palette value when the output is a
// terminal; otherwise it degrades to plain text.
func swatch(color string, styled bool) string {
	if !styled {
		return "■"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("■")
}

func swatches(t *theme.Theme, styled bool) string {
	if len(t.ColorSchemes) == 0 {
		return ""
	}

	out := ""
	for _, slot := range t.ColorSchemes[0].Palette.Entries() {
		out += swatch(slot.Value, styled)
	}
	return out
}

func schemeSummary(t *theme.Theme) string {
	if len(t.ColorSchemes) == 0 {
		return "(none)"
	}

	out := ""
	for i, sp := range t.ColorSchemes {
		if i > 0 {
			out += ","
		}
		out += sp.Scheme.String()
	}
	return out
}
