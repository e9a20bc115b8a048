package main

import (
	"bufio"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/pathmap"
	"github.com/charmbracelet/pathmap/internal/pmstore"
	"github.com/spf13/cobra"
)

type bloomSidecar struct {
	M    uint64 `json:"m"`
	K    int    `json:"k"`
	S    uint64 `json:"s"`
	Bits string `json:"bits"`
}

var buildCmd = &cobra.Command{
	Use:   "build <input> <trie-out>",
	Short: "Build a PathMap trie file (and bloom companion) from tab-separated path/payload input",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath, triePath := args[0], args[1]
		skipBloom, _ := cmd.Flags().GetBool("skip-bloom")
		bloomPath, _ := cmd.Flags().GetString("bloom-out")
		falsePositiveRate, _ := cmd.Flags().GetFloat64("false-positive-rate")

		pairs, err := readPairs(inputPath)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		cfg := pmstore.DefaultConfig(len(pairs))
		cfg.Bloom.P = falsePositiveRate
		cfg.SkipBloom = skipBloom

		result, err := pmstore.Build(context.Background(), pairs, cfg, slog.Default())
		if err != nil {
			return err
		}

		if err := os.WriteFile(triePath, result.TrieFile, 0o644); err != nil {
			return fmt.Errorf("write trie file: %w", err)
		}
		cmd.Printf("pathmap build: %d keys, %d lines, %d bytes\n", len(pairs), result.Stats.Lines, result.Stats.Bytes)

		if result.Filter == nil {
			return nil
		}
		sidecar := bloomSidecar{
			M:    result.Filter.M(),
			K:    result.Filter.K(),
			S:    result.Filter.S(),
			Bits: base64.StdEncoding.EncodeToString(result.Filter.Bytes()),
		}
		data, err := json.Marshal(sidecar)
		if err != nil {
			return fmt.Errorf("encode bloom sidecar: %w", err)
		}
		if bloomPath == "" {
			bloomPath = triePath + ".bloom.json"
		}
		if err := os.WriteFile(bloomPath, data, 0o644); err != nil {
			return fmt.Errorf("write bloom sidecar: %w", err)
		}
		cmd.Printf("pathmap build: bloom filter m=%d k=%d written to %s\n", sidecar.M, sidecar.K, bloomPath)
		return nil
	},
}

func init() {
	buildCmd.Flags().Bool("skip-bloom", false, "Build only the trie file")
	buildCmd.Flags().String("bloom-out", "", "Path for the bloom filter sidecar JSON (default <trie-out>.bloom.json)")
	buildCmd.Flags().Float64("false-positive-rate", 0.01, "Bloom filter target false-positive rate")
	rootCmd.AddCommand(buildCmd)
}

// readPairs reads "path\tjson-payload" lines from path, one entry per line.
// Blank lines and lines starting with "#" are skipped.
func readPairs(path string) (map[string]pathmap.Payload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pairs := make(map[string]pathmap.Payload)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("line %d: expected <path>\\t<json-payload>", lineNo)
		}
		var payload pathmap.Payload
		if err := json.Unmarshal([]byte(value), &payload); err != nil {
			return nil, fmt.Errorf("line %d: decode payload: %w", lineNo, err)
		}
		pairs[key] = payload
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}
