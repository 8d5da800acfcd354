package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvs-project/uuidgen/pkg/color"
)

type compareResult struct {
	A     string `json:"a"`
	B     string `json:"b"`
	Equal bool   `json:"equal"`
}

var compareCmd = &cobra.Command{
	Use:   "compare <a> <b>",
	Short: "Report whether two UUIDs are equal",
	Long: `Compare two UUIDs byte for byte. Text forms that differ only in
letter case, braces or a urn:uuid: prefix compare equal.

The exit status is 0 whether or not they match.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseArg(args[0])
		if err != nil {
			return err
		}
		b, err := parseArg(args[1])
		if err != nil {
			return err
		}

		result := compareResult{A: a.String(), B: b.String(), Equal: a.Equal(b)}
		if jsonOutput {
			return outputJSON(result)
		}
		if result.Equal {
			fmt.Println(color.Success("equal"))
		} else {
			fmt.Println(color.Warning("not equal"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
