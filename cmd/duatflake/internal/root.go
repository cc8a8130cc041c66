package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/duat-editor/duatflake/formula"
	"github.com/duat-editor/duatflake/internal/env"
	"github.com/duat-editor/duatflake/internal/units"
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var (
	rootProjectDir  string
	rootProjectName string
	rootPlatform    string
	rootChannel     string
	rootVersion     string
	rootVerbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "duatflake",
	Short: "duatflake describes how Duat is built and deployed",
	Long: `duatflake resolves the build units of the Duat editor into output artifacts
and evaluates the options of its configuration module into a deployment plan.
It never builds or installs anything itself.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if rootVerbose {
			log.SetOutputLevel(log.Ldebug)
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&rootProjectDir, "project", "C", ".", "Project root containing "+units.ProjectFile)
	flags.StringVar(&rootProjectName, "name", "duat", "Project name")
	flags.StringVar(&rootPlatform, "platform", env.HostPlatform(), "Target platform identifier")
	flags.StringVar(&rootChannel, "toolchain-channel", formula.Nightly.Channel, "Toolchain release channel")
	flags.StringVar(&rootVersion, "toolchain-version", "", "Pin the toolchain to a release")
	flags.BoolVarP(&rootVerbose, "verbose", "v", false, "Enable verbose output")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}

// loadProject creates the toolchain context from the root flags and the
// registry of the selected project. A project root without a project file
// gets the built-in Duat registry.
func loadProject() (*units.Registry, *formula.Context, error) {
	tc := formula.Nightly
	tc.Channel = rootChannel
	tc.Version = rootVersion

	ctx, err := formula.NewContext(rootPlatform, tc)
	if err != nil {
		return nil, nil, err
	}

	proj := &formula.Project{Name: rootProjectName, DirFS: os.DirFS(rootProjectDir)}
	reg, err := units.Load(proj, ctx)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if rootProjectName != "duat" {
			return nil, nil, fmt.Errorf("no %s in %s for project %q", units.ProjectFile, rootProjectDir, rootProjectName)
		}
		log.Debugf("no %s in %s, using the built-in duat units", units.ProjectFile, rootProjectDir)
		reg = units.Duat(ctx)
	case err != nil:
		return nil, nil, err
	default:
		log.Debugf("loaded %d units of %s from %s", reg.Len(), rootProjectName, rootProjectDir)
	}
	if systems := reg.Systems(); !systems.Contains(ctx.Platform) {
		return nil, nil, fmt.Errorf("project %q is not built for %s: want one of %v",
			rootProjectName, ctx.Platform, systems.Platforms())
	}
	return reg, ctx, nil
}
