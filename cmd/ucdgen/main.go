// Command ucdgen compiles the Unicode character database into the
// two-stage property tables consumed by the regex runtime.
//
// It expects Scripts.txt, DerivedGeneralCategory.txt, and
// UnicodeData.txt in the tables directory and writes the generated C
// source to stdout or to --output.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/npillmayer/ucdtables"
	"github.com/npillmayer/ucdtables/emit"
	"github.com/npillmayer/ucdtables/ucd"
)

var (
	tablesDir string
	output    string
	blockSize int

	root = &cobra.Command{
		Use:          "ucdgen",
		Short:        "ucdgen digests the Unicode data tables into compact two-stage lookup tables.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout())
		},
	}
)

func init() {
	root.Flags().StringVar(&tablesDir, "tables", "Unicode.tables", "directory holding the Unicode data files")
	root.Flags().StringVar(&output, "output", "", "output file (default stdout)")
	root.Flags().IntVar(&blockSize, "block-size", 128, "block size the runtime expects; 0 skips the check")
}

func run(stdout io.Writer) error {
	scripts, err := os.Open(filepath.Join(tablesDir, "Scripts.txt"))
	if err != nil {
		return err
	}
	defer scripts.Close()
	categories, err := os.Open(filepath.Join(tablesDir, "DerivedGeneralCategory.txt"))
	if err != nil {
		return err
	}
	defer categories.Close()
	unicodeData, err := os.Open(filepath.Join(tablesDir, "UnicodeData.txt"))
	if err != nil {
		return err
	}
	defer unicodeData.Close()

	cfg := ucdtables.DefaultConfig()
	cfg.ExpectedBlockSize = blockSize
	tables, err := ucdtables.Compile(cfg, []ucdtables.Column{
		{Name: "script", Default: ucd.DefaultScript(), Reader: ucd.NewPropertyReader(scripts, ucd.ScriptNames)},
		{Name: "chartype", Default: ucd.DefaultCategory(), Reader: ucd.NewPropertyReader(categories, ucd.CategoryNames)},
		{Name: "othercase", Default: 0, Reader: ucd.NewCaseOffsetReader(unicodeData)},
	})
	if err != nil {
		return err
	}

	out := stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return emit.WriteCSource(out, tables)
}

func main() {
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
