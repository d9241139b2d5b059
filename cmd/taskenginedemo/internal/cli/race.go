package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/corework/taskengine/core"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(raceCmd)
	raceCmd.Flags().IntP("racers", "r", 4, "number of racing tasks")
}

var raceCmd = &cobra.Command{
	Use:   "race",
	Short: "Submit racing tasks and report whichever finishes first (WhenFirst)",
	RunE:  runRace,
}

func runRace(cmd *cobra.Command, args []string) error {
	racers, _ := cmd.Flags().GetInt("racers")

	executor := core.MakeThreadPoolExecutor(racers)
	defer executor.Close()

	futures := make([]*core.Future[int], racers)
	for i := 0; i < racers; i++ {
		i := i
		futures[i] = core.Invoke(executor, func() (int, error) {
			time.Sleep(time.Duration(rand.Intn(100)) * time.Millisecond)
			return i, nil
		})
	}

	winner, err := core.WhenFirst(executor, futures).Get()
	if err != nil {
		return err
	}
	fmt.Printf("racer %d finished first\n", winner)
	return nil
}
