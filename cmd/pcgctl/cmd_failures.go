package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-pcg/pkg/logging"
	"github.com/dd0wney/cluso-pcg/pkg/pcg"
	"github.com/dd0wney/cluso-pcg/pkg/pcgconfig"
)

var (
	failuresK   int
	failuresSrc string
	failuresDst string
)

func init() {
	failuresCmd.Flags().IntVar(&failuresK, "k", 1, "number of simultaneous failures to simulate")
	failuresCmd.Flags().StringVar(&failuresSrc, "src", "", "source location")
	failuresCmd.Flags().StringVar(&failuresDst, "dst", "", "destination location")
	rootCmd.AddCommand(failuresCmd)
}

var failuresCmd = &cobra.Command{
	Use:   "failures <scenario.yaml>",
	Short: "enumerate failures and report the min-cut between two locations",
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

		combos := pcg.AllFailures(failuresK, topo)
		fmt.Printf("%d combinations of %d failure(s)\n", len(combos), failuresK)

		srcStates, ok := cg.StatesAtLocation()[failuresSrc]
		if !ok || len(srcStates) == 0 {
			err := fmt.Errorf("no state at source location %q", failuresSrc)
			fmt.Println(errorStyle.Render(err.Error()))
			return err
		}
		srcs := make([]uint32, len(srcStates))
		for i, s := range srcStates {
			srcs[i] = s.Id
		}

		result, ok := pcg.DisconnectLocs(cg, srcs, failuresDst, logger)
		if !ok {
			err := fmt.Errorf("could not find a cut between %q and %q", failuresSrc, failuresDst)
			fmt.Println(errorStyle.Render(err.Error()))
			return err
		}

		fmt.Println(headingStyle.Render("min cut"))
		fmt.Printf("  k=%d witness=%s->%s\n", result.K, result.SrcLoc, result.DstLoc)
		return nil
	},
}
