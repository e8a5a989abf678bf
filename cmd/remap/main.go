package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/go-remap/remap"
	"github.com/go-remap/remap/datasource/dsv"
	"github.com/go-remap/remap/datasource/file"
	"github.com/go-remap/remap/engine"
	"github.com/go-remap/remap/logging"
	"github.com/go-remap/remap/template"
)

var (
	templatePaths []string
	outputDir     string
	delimiter     string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "remap",
	Short: "remap derives new tabular datasets from CSV files via transform templates",
}

var applyCmd = &cobra.Command{
	Use:   "apply [flags] input.csv...",
	Short: "Apply transform templates to one or more CSV files",
	Long: `Apply loads each input file, runs the given templates against it (the
first template against the input, each subsequent template cascaded onto
the previous output) and writes the result next to the input or into
--output. Files ending in .lz4 are read and written compressed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringArrayVarP(&templatePaths, "template", "t", nil, "template file (YAML or JSON); repeat to cascade")
	applyCmd.Flags().StringVarP(&outputDir, "output", "o", "", "directory for output files (defaults to each input's directory)")
	applyCmd.Flags().StringVarP(&delimiter, "delimiter", "d", ",", "column delimiter")
	applyCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each transform pass")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, inputs []string) error {
	if len(templatePaths) == 0 {
		return fmt.Errorf("at least one --template is required")
	}
	if len(delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character")
	}
	templates := make([]remap.RawTemplate, len(templatePaths))
	for i, path := range templatePaths {
		tpl, err := template.LoadFile(path)
		if err != nil {
			return err
		}
		templates[i] = tpl
	}
	logLevel := logging.WarnLevel
	if verbose {
		logLevel = logging.InfoLevel
	}
	parser := dsv.CreateParser(&dsv.ParserConf{Delimiter: rune(delimiter[0])})

	// each input gets its own single-owner Mapper
	var g errgroup.Group
	for _, input := range inputs {
		input := input
		g.Go(func() error {
			mapper := engine.CreateMapper(&engine.MapperConf{
				Parser: parser,
				Logger: logging.CreateLogger(logLevel, os.Stderr),
			})
			ds, err := file.LoadDataset(input, parser)
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			mapper.LoadData(ds)
			for i, tpl := range templates {
				if _, err := mapper.Apply(tpl, i > 0); err != nil {
					return fmt.Errorf("%s: %w", input, err)
				}
			}
			dest := outputPath(input)
			if err := mapper.SaveData(dest); err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func outputPath(input string) string {
	dir := filepath.Dir(input)
	if outputDir != "" {
		dir = outputDir
	}
	base := filepath.Base(input)
	compressed := strings.HasSuffix(strings.ToLower(base), ".lz4")
	if compressed {
		base = base[:len(base)-len(".lz4")]
	}
	ext := filepath.Ext(base)
	base = strings.TrimSuffix(base, ext) + ".out" + ext
	if compressed {
		base += ".lz4"
	}
	return filepath.Join(dir, base)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
