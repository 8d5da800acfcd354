package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvs-project/uuidgen/pkg/color"
	"github.com/jvs-project/uuidgen/pkg/uuid"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <uuid>",
	Short: "Decode version, variant and fields of a UUID",
	Long: `Decode an existing UUID. Upper case, braces and a urn:uuid: prefix
are accepted.

Examples:
  uuidgen inspect 123e4567-e89b-42d3-a456-426614174000
  uuidgen inspect "{123E4567-E89B-42D3-A456-426614174000}" --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := parseArg(args[0])
		if err != nil {
			return err
		}
		info := uuid.Inspect(u)
		if jsonOutput {
			return outputJSON(info)
		}

		f := info.Fields
		fmt.Printf("UUID:     %s\n", color.UUID(info.UUID.String()))
		fmt.Printf("Version:  %d\n", info.Version)
		fmt.Printf("Variant:  %d (%s)\n", info.Variant, info.VariantName)
		fmt.Println(color.Header("Fields:"))
		fmt.Printf("  time_low:            %s\n", f.TimeLow)
		fmt.Printf("  time_mid:            %s\n", f.TimeMid)
		fmt.Printf("  time_hi_and_version: %s\n", f.TimeHiAndVersion)
		fmt.Printf("  clock_seq:           %s\n", f.ClockSeq)
		fmt.Printf("  node:                %s\n", f.Node)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
