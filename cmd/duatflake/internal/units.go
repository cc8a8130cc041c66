package internal

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the build units of the project",
	Args:  cobra.NoArgs,
	RunE:  runUnits,
}

func init() {
	rootCmd.AddCommand(unitsCmd)
}

func runUnits(cmd *cobra.Command, args []string) error {
	reg, _, err := loadProject()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, name := range reg.Names() {
		u, err := reg.Lookup(name)
		if err != nil {
			return err
		}
		inputs := make([]string, 0, len(u.Inputs))
		for _, in := range u.Inputs {
			inputs = append(inputs, in.String())
		}
		marker := " "
		if name == reg.Primary() {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-12s %-12s %s\n", marker, u.Name, u.Source, strings.Join(inputs, " "))
	}
	return nil
}
