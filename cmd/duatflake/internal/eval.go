package internal

import (
	"github.com/duat-editor/duatflake/formula"
	"github.com/duat-editor/duatflake/internal/configlib"
	"github.com/duat-editor/duatflake/internal/deploy"
	"github.com/duat-editor/duatflake/internal/env"
	"github.com/duat-editor/duatflake/internal/options"
	"github.com/duat-editor/duatflake/internal/plan"
	"github.com/duat-editor/duatflake/internal/resolve"
	"github.com/duat-editor/duatflake/internal/units"
	"github.com/duat-editor/duatflake/mod/module"
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	evalOptions      string
	evalEnable       bool
	evalPackage      string
	evalConfigSource string
	evalConfigRoot   string
	evalWith         []string
	evalLibs         string
	evalOutput       string
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate the configuration module into a deployment plan",
	Long: `Eval evaluates the options of the Duat configuration module and prints the
resulting deployment plan as YAML. Options are read from --options and then
overridden by the option flags given on the command line.`,
	Args: cobra.NoArgs,
	RunE: runEval,
}

func init() {
	flags := evalCmd.Flags()
	flags.StringVarP(&evalOptions, "options", "f", "", "Options file (.hcl, .yaml, .yml or .json)")
	flags.BoolVar(&evalEnable, "enable", false, "Enable the module")
	flags.StringVar(&evalPackage, "package", "", "Output name or artifact reference to install")
	flags.StringVar(&evalConfigSource, "config-source", "", "Configuration directory to link")
	flags.StringVar(&evalConfigRoot, "config-root", "", "Per-user configuration root (default $XDG_CONFIG_HOME or ~/.config)")
	flags.StringSliceVar(&evalWith, "with", nil, "Extra packages (path[@version]) for the development environment")
	flags.StringVar(&evalLibs, "libs", "", "List config library search paths for a build profile (release or debug)")
	flags.StringVarP(&evalOutput, "output", "o", "", "Write the plan to this file instead of stdout")
	rootCmd.AddCommand(evalCmd)
}

// flagOptions returns the options set by command line flags.
func flagOptions(flags *pflag.FlagSet) options.Options {
	var o options.Options
	if flags.Changed("enable") {
		o.Enable = options.Bool(evalEnable)
	}
	if flags.Changed("package") {
		o.Package = options.String(evalPackage)
	}
	if flags.Changed("config-source") {
		o.ConfigSource = options.String(evalConfigSource)
	}
	return o
}

// evaluator returns the evaluation shared by eval and watch: options from
// the file merged with overrides, evaluated against the project schema.
func evaluator(reg *units.Registry, ctx *formula.Context, overrides options.Options) func(options.Options) (*options.Value, deploy.Result, error) {
	schema := options.NewSchema(rootProjectName, reg, ctx)
	root := evalConfigRoot
	if root == "" {
		root = env.ConfigRoot()
	}
	return func(file options.Options) (*options.Value, deploy.Result, error) {
		v, err := schema.Evaluate(options.MergeAll(file, overrides))
		if err != nil {
			return nil, deploy.Result{}, err
		}
		return v, deploy.Evaluate(v, root), nil
	}
}

func runEval(cmd *cobra.Command, args []string) error {
	extra, err := module.ParseAll(evalWith)
	if err != nil {
		return err
	}
	var profile configlib.Profile
	if evalLibs != "" {
		if profile, err = configlib.ParseProfile(evalLibs); err != nil {
			return err
		}
	}

	reg, ctx, err := loadProject()
	if err != nil {
		return err
	}

	var fileOpts options.Options
	if evalOptions != "" {
		if fileOpts, err = options.ReadFile(evalOptions); err != nil {
			return err
		}
		log.Debugf("read options from %s", evalOptions)
	}

	v, result, err := evaluator(reg, ctx, flagOptions(cmd.Flags()))(fileOpts)
	if err != nil {
		return err
	}
	outputs, err := resolve.Outputs(rootProjectName, reg, ctx, extra...)
	if err != nil {
		return err
	}

	p := plan.New(rootProjectName, ctx.Platform, outputs, result)
	if evalLibs != "" && result.State == deploy.Enabled {
		if p.Libraries, err = configlib.Candidates(v.ConfigSource, ctx, profile); err != nil {
			return err
		}
		p.Build = configlib.BuildArgs(v.ConfigSource, profile)
	}

	if evalOutput != "" {
		if err := plan.Write(evalOutput, p); err != nil {
			return err
		}
		log.Infof("wrote %s plan to %s", result.State, evalOutput)
		return nil
	}
	data, err := p.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
