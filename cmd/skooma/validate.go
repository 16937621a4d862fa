package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davidjamesknight/Skooma/frame"
	"github.com/davidjamesknight/Skooma/frame/gojson"
	"github.com/davidjamesknight/Skooma/i18n"
	"github.com/davidjamesknight/Skooma/schemafile"
)

var validateCmd = &cobra.Command{
	Use:   "validate [flags] DATA",
	Short: "Validate a dataset against a schema file",
	Long: `Loads a CSV or JSON dataset, applies the schema, and prints one
report line per finding. Exit status is 0 when the dataset is valid, 1 when
it is not, and 2 on usage errors.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ok, err := runValidate(cmd, args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		if !ok {
			os.Exit(1)
		}
	},
}

func init() {
	validateCmd.Flags().StringP("schema", "s", "", "YAML schema file (required)")
	validateCmd.Flags().String("json-driver", "", "JSON token driver: encoding/json or go-json")
	validateCmd.Flags().String("language", "", "Message language: en or ja")
	validateCmd.Flags().BoolP("quiet", "q", false, "Suppress report lines; rely on the exit status")
	validateCmd.Flags().Bool("detect-times", false, "Parse date-like text columns as timestamps")
	validateCmd.Flags().StringP("delimiter", "d", "", "CSV field delimiter")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, dataPath string) (bool, error) {
	cfgPath, err := rootCmd.PersistentFlags().GetString("config")
	if err != nil {
		return false, err
	}
	cfg, err := loadConfig(cmd, cfgPath)
	if err != nil {
		return false, err
	}
	if cfg.Schema == "" {
		return false, errors.New("a schema file is required (--schema)")
	}
	if cfg.Language != "" {
		i18n.SetLanguage(cfg.Language)
	}
	switch cfg.JSONDriver {
	case "", "encoding/json":
		frame.UseDefaultJSONDriver()
	case "go-json", "gojson":
		frame.SetJSONDriver(gojson.Driver())
	default:
		return false, fmt.Errorf("unknown json driver %q", cfg.JSONDriver)
	}

	s, err := schemafile.Load(cfg.Schema)
	if err != nil {
		return false, err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	f, err := loadDataset(ctx, dataPath, cfg)
	if err != nil {
		return false, err
	}

	r := s.Check(f)
	if !r.OK() && !cfg.Quiet {
		if _, err := r.WriteTo(os.Stdout); err != nil {
			return false, err
		}
	}
	return r.OK(), nil
}

// loadDataset picks the loader from the file extension.
func loadDataset(ctx context.Context, path string, cfg *config) (*frame.Frame, error) {
	lo := frame.LoadOpt{DetectTimes: cfg.DetectTimes}
	if cfg.Delimiter != "" {
		rs := []rune(cfg.Delimiter)
		if len(rs) != 1 {
			return nil, fmt.Errorf("delimiter must be a single character, got %q", cfg.Delimiter)
		}
		lo.Comma = rs[0]
	}

	var load func(context.Context, io.Reader, ...frame.LoadOpt) (*frame.Frame, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		load = frame.FromCSV
	case ".json":
		load = frame.FromJSON
	default:
		return nil, fmt.Errorf("unsupported data format %q (expected .csv or .json)", ext)
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return load(ctx, fh, lo)
}
