package internal

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/duat-editor/duatflake/internal/deploy"
	"github.com/duat-editor/duatflake/internal/options"
	"github.com/duat-editor/duatflake/internal/watch"
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <options-file>",
	Short: "Re-evaluate the configuration module whenever its options file changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	reg, ctx, err := loadProject()
	if err != nil {
		return err
	}
	eval := evaluator(reg, ctx, options.Options{})
	out := cmd.OutOrStdout()

	w := &watch.Watcher{
		Path: args[0],
		Eval: func(o options.Options) (deploy.Result, error) {
			_, r, err := eval(o)
			return r, err
		},
		Report: func(r deploy.Result, err error) {
			if err != nil {
				log.Error(err)
				return
			}
			e := r.Effect()
			fmt.Fprintf(out, "%s", r.State)
			for _, a := range e.Packages {
				fmt.Fprintf(out, " install=%s", a.Ref())
			}
			for _, l := range e.Links {
				fmt.Fprintf(out, " link=%s<-%s", l.Target, l.Source)
			}
			fmt.Fprintln(out)
		},
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	sigCtx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	log.Infof("watching %s", args[0])
	return w.Run(sigCtx)
}
