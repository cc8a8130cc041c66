package internal

import (
	"fmt"

	"github.com/duat-editor/duatflake/internal/plan"
	"github.com/duat-editor/duatflake/internal/resolve"
	"github.com/duat-editor/duatflake/mod/module"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var resolveWith []string

var resolveCmd = &cobra.Command{
	Use:   "resolve [default|devShell]",
	Short: "Resolve a named output of the project",
	Long: `Resolve prints the artifact a named output resolves to on the target platform.
Extra packages given with --with are added to the development environment.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringSliceVar(&resolveWith, "with", nil, "Extra packages (path[@version]) for the development environment")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	name := resolve.DefaultOutput
	if len(args) == 1 {
		name = args[0]
	}
	kind, err := resolve.ParseKind(name)
	if err != nil {
		return err
	}
	extra, err := module.ParseAll(resolveWith)
	if err != nil {
		return err
	}

	reg, ctx, err := loadProject()
	if err != nil {
		return err
	}
	a, err := resolve.Resolve(rootProjectName, reg, ctx, kind, extra...)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(plan.NewOutput(a))
	if err != nil {
		return fmt.Errorf("failed to marshal artifact: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
