package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/pathmap"
	"github.com/spf13/cobra"
)

var errAbsent = errors.New("pathmap: path not found")

var getCmd = &cobra.Command{
	Use:   "get <trie-file> <path>",
	Short: "Look up a single path in a PathMap trie file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		trieFile, path := args[0], args[1]

		data, err := os.ReadFile(trieFile)
		if err != nil {
			return fmt.Errorf("read trie file: %w", err)
		}

		r, err := pathmap.NewReader(data)
		if err != nil {
			return fmt.Errorf("open trie file: %w", err)
		}

		payload, ok, err := r.Find(path)
		if err != nil {
			return fmt.Errorf("find %q: %w", path, err)
		}
		if !ok {
			return fmt.Errorf("%w: %q", errAbsent, path)
		}

		out, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode payload: %w", err)
		}
		cmd.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
