package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jvs-project/uuidgen/pkg/logging"
	"github.com/jvs-project/uuidgen/pkg/metrics"
	"github.com/jvs-project/uuidgen/pkg/uuid"
)

// maxNewCount caps a single invocation of the new command.
const maxNewCount = 1000

var newCount int

// generate is swapped in tests to simulate entropy failures.
var generate = uuid.New

type newResult struct {
	UUIDs []string `json:"uuids"`
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate random version 4 UUIDs",
	Long: `Generate one or more version 4 UUIDs and print them in canonical
lowercase 8-4-4-4-12 form, one per line.

Examples:
  uuidgen new
  uuidgen new -n 5
  uuidgen new -n 3 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if newCount < 1 || newCount > maxNewCount {
			return fmt.Errorf("-n must be between 1 and %d, got %d", maxNewCount, newCount)
		}

		reg := metricsRegistry()
		result := newResult{UUIDs: make([]string, 0, newCount)}
		for i := 0; i < newCount; i++ {
			start := time.Now()
			u, err := generate()
			reg.RecordGenerate(metrics.SurfaceCLI, err == nil, time.Since(start))
			if err != nil {
				logging.ErrorErr("generate uuid", err)
				return err
			}
			result.UUIDs = append(result.UUIDs, u.String())
		}
		logging.Debug("generated uuids", map[string]any{"count": newCount})

		if jsonOutput {
			return outputJSON(result)
		}
		for _, s := range result.UUIDs {
			fmt.Println(s)
		}
		return nil
	},
}

func init() {
	newCmd.Flags().IntVarP(&newCount, "count", "n", 1, fmt.Sprintf("number of UUIDs to generate (1-%d)", maxNewCount))
	rootCmd.AddCommand(newCmd)
}
