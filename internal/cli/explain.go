package cli

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jvs-project/uuidgen/pkg/color"
	"github.com/jvs-project/uuidgen/pkg/errclass"
	"github.com/jvs-project/uuidgen/pkg/uuid"
)

// randomSource feeds the explain walkthrough.
var randomSource io.Reader = rand.Reader

type explainResult struct {
	Raw         string    `json:"raw"`
	Byte6Before string    `json:"byte6_before"`
	Byte6After  string    `json:"byte6_after"`
	Byte8Before string    `json:"byte8_before"`
	Byte8After  string    `json:"byte8_after"`
	TimeHi      string    `json:"time_hi"`
	ClockSeq    string    `json:"clock_seq"`
	Info        uuid.Info `json:"info"`
}

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Walk through the generation of one UUID",
	Long: `Generate one version 4 UUID and show each step: the raw random
bytes, the version and variant fixups on bytes 6 and 8, and the resulting
field layout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := explain(randomSource)
		if err != nil {
			return err
		}
		if jsonOutput {
			return outputJSON(res)
		}
		printExplain(res)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func explain(r io.Reader) (explainResult, error) {
	raw := make([]byte, uuid.Size)
	if _, err := io.ReadFull(r, raw); err != nil {
		return explainResult{}, errclass.ErrEntropyUnavailable.WithMessage("read random bytes").WithCause(err)
	}
	u, err := uuid.NewFromReader(bytes.NewReader(raw))
	if err != nil {
		return explainResult{}, err
	}
	b := u.Bytes()
	return explainResult{
		Raw:         hex.EncodeToString(raw),
		Byte6Before: fmt.Sprintf("%02x", raw[6]),
		Byte6After:  fmt.Sprintf("%02x", b[6]),
		Byte8Before: fmt.Sprintf("%02x", raw[8]),
		Byte8After:  fmt.Sprintf("%02x", b[8]),
		TimeHi:      fmt.Sprintf("%03x", u.TimeHi()),
		ClockSeq:    fmt.Sprintf("%04x", u.ClockSeq()),
		Info:        uuid.Inspect(u),
	}, nil
}

func printExplain(res explainResult) {
	info := res.Info
	b := info.UUID.Bytes()

	fmt.Println(color.Header("Layout (16 bytes)"))
	fmt.Println("  0-3   time_low             random")
	fmt.Println("  4-5   time_mid             random")
	fmt.Println("  6-7   time_hi_and_version  12 random bits + 4 version bits")
	fmt.Println("  8-9   clock_seq            14 random bits + 2 variant bits")
	fmt.Println("  10-15 node                 random")
	fmt.Println()

	fmt.Println(color.Header("Step 1: read 16 random bytes"))
	fmt.Printf("  %s\n\n", res.Raw)

	fmt.Println(color.Header("Step 2: set the version nibble of byte 6 to 0100"))
	fmt.Printf("  byte 6: %s -> %s (upper nibble %s)\n\n",
		res.Byte6Before, res.Byte6After, color.VersionBits(fmt.Sprintf("%04b", b[6]>>4)))

	fmt.Println(color.Header("Step 3: set the top two bits of byte 8 to 10"))
	fmt.Printf("  byte 8: %s -> %s (upper bits %s)\n\n",
		res.Byte8Before, res.Byte8After, color.VariantBits(fmt.Sprintf("%02b", b[8]>>6)))

	f := info.Fields
	fmt.Println(color.Header("Result"))
	fmt.Printf("  uuid:                %s\n", color.UUID(info.UUID.String()))
	fmt.Printf("  version:             %d\n", info.Version)
	fmt.Printf("  variant:             %d (%s)\n", info.Variant, info.VariantName)
	fmt.Printf("  time_low:            %s\n", f.TimeLow)
	fmt.Printf("  time_mid:            %s\n", f.TimeMid)
	fmt.Printf("  time_hi_and_version: %s (time_hi %s)\n", f.TimeHiAndVersion, res.TimeHi)
	fmt.Printf("  clock_seq:           %s (clock_seq %s)\n", f.ClockSeq, res.ClockSeq)
	fmt.Printf("  node:                %s\n", f.Node)
}
