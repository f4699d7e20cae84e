package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/nifikit/nifigen"
	"github.com/nifikit/nifigen/extractor"
	"github.com/nifikit/nifigen/parser"
	"github.com/nifikit/nifigen/patcher"
)

// ExtractFlags contains flags for the extract command
type ExtractFlags struct {
	Format  string
	Raw     bool
	Verbose bool
}

// SetupExtractFlags creates and configures a FlagSet for the extract command.
// Returns the FlagSet and an ExtractFlags struct with bound flag variables.
func SetupExtractFlags() (*flag.FlagSet, *ExtractFlags) {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	flags := &ExtractFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format (text, json)")
	fs.StringVar(&flags.Format, "f", FormatText, "output format (text, json)")
	fs.BoolVar(&flags.Raw, "raw", false, "skip the correction registry and extract the document as-is")
	fs.BoolVar(&flags.Verbose, "v", false, "verbose mode: log debug output to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "verbose mode: log debug output to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: nifigen extract [flags] <file>\n\n")
		Writef(fs.Output(), "Extract the corrected schema collection from a NiFi OpenAPI document.\n")
		Writef(fs.Output(), "Schema names are listed in source document order, which is also the\n")
		Writef(fs.Output(), "order generated types are emitted in.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  nifigen extract swagger.json\n")
		Writef(fs.Output(), "  nifigen extract --format json swagger.json\n")
		Writef(fs.Output(), "  nifigen extract --raw swagger.json\n")
	}

	return fs, flags
}

// extractReport is the JSON output shape of the extract command
type extractReport struct {
	Specification string   `json:"specification"`
	SchemaCount   int      `json:"schema_count"`
	PatchCount    int      `json:"patch_count"`
	Names         []string `json:"names"`
}

// HandleExtract executes the extract command
func HandleExtract(args []string) error {
	fs, flags := SetupExtractFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("extract command requires exactly one file path")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	specPath := fs.Arg(0)
	logger := NewLogger(flags.Verbose)

	startTime := time.Now()
	parsed, err := parser.ParseWithOptions(
		parser.WithFilePath(specPath),
		parser.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("parsing file: %w", err)
	}

	patchCount := 0
	if !flags.Raw {
		patched, err := patcher.PatchWithOptions(
			patcher.WithParsed(parsed),
			patcher.WithLogger(logger),
		)
		if err != nil {
			return fmt.Errorf("patching file: %w", err)
		}
		patchCount = patched.PatchCount
	}

	ext, err := extractor.ExtractWithOptions(
		extractor.WithParsed(parsed),
		extractor.WithLogger(logger),
	)
	totalTime := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("extracting schemas: %w", err)
	}

	if flags.Format == FormatJSON {
		return OutputJSON(extractReport{
			Specification: specPath,
			SchemaCount:   ext.Len(),
			PatchCount:    patchCount,
			Names:         ext.Names,
		})
	}

	Writef(os.Stderr, "NiFi Schema Extractor\n")
	Writef(os.Stderr, "=====================\n\n")
	Writef(os.Stderr, "nifigen version: %s\n", nifigen.Version())
	Writef(os.Stderr, "Specification: %s\n", specPath)
	Writef(os.Stderr, "Source Size: %s\n", parser.FormatBytes(parsed.SourceSize))
	Writef(os.Stderr, "Patches Applied: %d\n", patchCount)
	Writef(os.Stderr, "Schemas: %d\n", ext.Len())
	Writef(os.Stderr, "Total Time: %v\n\n", totalTime)

	for _, name := range ext.Names {
		fmt.Println(name)
	}
	return nil
}
