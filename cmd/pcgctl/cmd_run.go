package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-pcg/pkg/logging"
	"github.com/dd0wney/cluso-pcg/pkg/pcg"
	"github.com/dd0wney/cluso-pcg/pkg/pcgconfig"
)

var runLogFile string

func init() {
	runCmd.Flags().StringVar(&runLogFile, "log-file", "", "also persist this run's log trail to a file")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>",
	Short: "build, minimize, and order the PCG for a scenario",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var logger logging.Logger = logging.NewDefaultLogger()
		if runLogFile != "" {
			sink, err := logging.OpenScenarioSink(runLogFile, logging.InfoLevel)
			if err != nil {
				fmt.Println(errorStyle.Render(err.Error()))
				return err
			}
			defer sink.Close()
			logger = sink.Logger
		}

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

		fmt.Println(headingStyle.Render("built"))
		fmt.Printf("  states: %d  edges: %d\n", cg.G.NumVertices(), cg.G.NumEdges())

		cg = pcg.Minimize(cg, logger)
		fmt.Println(headingStyle.Render("minimized"))
		fmt.Printf("  states: %d  edges: %d\n", cg.G.NumVertices(), cg.G.NumEdges())

		ordering, err := pcg.FindOrderingConservative(cg, logger)
		if err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			return err
		}

		fmt.Println(headingStyle.Render("ordering"))
		for loc, states := range ordering {
			fmt.Printf("  %s: %d state(s)\n", loc, len(states))
		}

		fmt.Println(okStyle.Render("done"))
		return nil
	},
}
