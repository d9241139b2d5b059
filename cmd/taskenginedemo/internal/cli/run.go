package cli

import (
	"fmt"
	"time"

	"github.com/corework/taskengine/core"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntP("workers", "w", 4, "worker pool size")
	runCmd.Flags().IntP("tasks", "n", 10, "number of tasks to submit")
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Submit a batch of independent tasks and report their timing",
	RunE:  runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	workers, _ := cmd.Flags().GetInt("workers")
	n, _ := cmd.Flags().GetInt("tasks")

	executor := core.MakeThreadPoolExecutor(workers)
	defer executor.Close()

	start := time.Now()
	futures := make([]*core.Future[int], n)
	for i := 0; i < n; i++ {
		i := i
		futures[i] = core.Invoke(executor, func() (int, error) {
			time.Sleep(10 * time.Millisecond)
			return i, nil
		})
	}

	for i, f := range futures {
		v, err := f.Get()
		if err != nil {
			return fmt.Errorf("task %d: %w", i, err)
		}
		fmt.Printf("task %d -> %d\n", i, v)
	}
	fmt.Printf("%d tasks on %d workers took %v\n", n, workers, time.Since(start))
	return nil
}
