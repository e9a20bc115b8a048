package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/pathmap/bloom"
	"github.com/spf13/cobra"
)

var bloomCheckCmd = &cobra.Command{
	Use:   "bloom-check <bloom-sidecar> <value>",
	Short: "Check whether value possibly belongs to a bloom filter sidecar built by 'pathmap build'",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sidecarPath, value := args[0], args[1]

		data, err := os.ReadFile(sidecarPath)
		if err != nil {
			return fmt.Errorf("read bloom sidecar: %w", err)
		}

		var sidecar bloomSidecar
		if err := json.Unmarshal(data, &sidecar); err != nil {
			return fmt.Errorf("decode bloom sidecar: %w", err)
		}

		bits, err := base64.StdEncoding.DecodeString(sidecar.Bits)
		if err != nil {
			return fmt.Errorf("decode bloom bits: %w", err)
		}

		filter := bloom.Restore(bits, sidecar.M, sidecar.K, sidecar.S)
		if filter.Has(value) {
			cmd.Println("possibly present")
			return nil
		}
		cmd.Println("absent")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bloomCheckCmd)
}
