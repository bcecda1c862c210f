package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-pcg/pkg/logging"
	"github.com/dd0wney/cluso-pcg/pkg/pcg"
	"github.com/dd0wney/cluso-pcg/pkg/pcgconfig"
)

var (
	dotOut string
	dotPNG bool
)

func init() {
	dotCmd.Flags().StringVar(&dotOut, "out", "pcg", "output file base name (without extension)")
	dotCmd.Flags().BoolVar(&dotPNG, "png", false, "also render a PNG via the dot binary")
	rootCmd.AddCommand(dotCmd)
}

var dotCmd = &cobra.Command{
	Use:   "dot <scenario.yaml>",
	Short: "render the PCG as Graphviz DOT, optionally as a PNG",
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

		if dotPNG {
			if err := pcg.GeneratePNG(cg, args[0], dotOut, logger); err != nil {
				fmt.Println(errorStyle.Render(err.Error()))
				return err
			}
			fmt.Println(okStyle.Render(fmt.Sprintf("wrote %s.dot and %s.png", dotOut, dotOut)))
			return nil
		}

		dotStr := pcg.ToDot(cg, args[0])
		if err := os.WriteFile(dotOut+".dot", []byte(dotStr), 0o644); err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			return err
		}
		fmt.Println(okStyle.Render(fmt.Sprintf("wrote %s.dot", dotOut)))
		return nil
	},
}
