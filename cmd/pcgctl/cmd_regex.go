package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-pcg/pkg/logging"
	"github.com/dd0wney/cluso-pcg/pkg/pcg"
	"github.com/dd0wney/cluso-pcg/pkg/pcgconfig"
)

var regexFrom string

func init() {
	regexCmd.Flags().StringVar(&regexFrom, "from", "", "location to extract the regex from")
	rootCmd.AddCommand(regexCmd)
}

var regexCmd = &cobra.Command{
	Use:   "regex <scenario.yaml>",
	Short: "extract the regex of paths reaching a location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.NewDefaultLogger()

		scenario, err := pcgconfig.Load(args[0])
		if err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			return err
		}
		topo, err := scenario.BuildTopology()
		if err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			return err
		}
		cg, err := pcg.BuildFromAutomata(topo, scenario.BuildDFAs(), logger)
		if err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			return err
		}
		cg = pcg.Minimize(cg, logger)

		states, ok := cg.StatesAtLocation()[regexFrom]
		if !ok || len(states) == 0 {
			err := fmt.Errorf("no state at location %q", regexFrom)
			fmt.Println(errorStyle.Render(err.Error()))
			return err
		}

		for _, s := range states {
			r := pcg.ConstructRegex(cg, s.Id, logger)
			fmt.Printf("%s (state %d): %s\n", regexFrom, s.Id, r.String())
		}
		return nil
	},
}
