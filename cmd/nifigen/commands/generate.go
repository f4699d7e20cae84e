package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/nifikit/nifigen"
	"github.com/nifikit/nifigen/pipeline"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	OutputDir   string
	PackageName string
	Verbose     bool
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.OutputDir, "o", "", "output directory for generated files (required)")
	fs.StringVar(&flags.OutputDir, "output-dir", "", "output directory for generated files (required)")
	fs.StringVar(&flags.PackageName, "package", "", "Go package name for generated code (default: nifi)")
	fs.BoolVar(&flags.Verbose, "v", false, "verbose mode: log debug output to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "verbose mode: log debug output to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: nifigen generate [flags] <file>\n\n")
		Writef(fs.Output(), "Generate Go type declarations from a NiFi OpenAPI document.\n")
		Writef(fs.Output(), "The document is corrected by the patch registry and its schemas\n")
		Writef(fs.Output(), "extracted in source order before generation, so output is stable\n")
		Writef(fs.Output(), "across runs for an unchanged document.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  nifigen generate -o ./nifi swagger.json\n")
		Writef(fs.Output(), "  nifigen generate -o ./nifi --package nifiapi swagger.json\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Generation completed successfully\n")
		Writef(fs.Output(), "  1    Failed to parse, patch, extract, or generate\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate command requires exactly one file path")
	}

	if flags.OutputDir == "" {
		fs.Usage()
		return fmt.Errorf("output directory is required (use -o or --output-dir)")
	}

	specPath := fs.Arg(0)

	opts := []pipeline.Option{
		pipeline.WithSpecPath(specPath),
		pipeline.WithOutputDir(flags.OutputDir),
		pipeline.WithLogger(NewLogger(flags.Verbose)),
	}
	if flags.PackageName != "" {
		opts = append(opts, pipeline.WithPackageName(flags.PackageName))
	}

	startTime := time.Now()
	result, err := pipeline.Run(opts...)
	totalTime := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("generating types: %w", err)
	}

	Writef(os.Stderr, "NiFi Type Generator\n")
	Writef(os.Stderr, "===================\n\n")
	Writef(os.Stderr, "nifigen version: %s\n", nifigen.Version())
	Writef(os.Stderr, "Specification: %s\n", specPath)
	Writef(os.Stderr, "Patches Applied: %d\n", result.Patched.PatchCount)
	Writef(os.Stderr, "Schemas: %d\n", result.Extraction.Len())
	Writef(os.Stderr, "Generated Types: %d\n", result.Generated.GeneratedTypes)
	Writef(os.Stderr, "Total Time: %v\n\n", totalTime)

	Writef(os.Stderr, "Files:\n")
	for _, file := range result.Generated.Files {
		Writef(os.Stderr, "  %s/%s (%d bytes)\n", flags.OutputDir, file.Name, len(file.Content))
	}

	if result.Generated.HasIssues() {
		Writef(os.Stderr, "\nIssues (%d):\n", len(result.Generated.Issues))
		for _, issue := range result.Generated.Issues {
			Writef(os.Stderr, "  - %s\n", issue.String())
		}
	}

	Writef(os.Stderr, "\n✓ Generation completed successfully\n")
	return nil
}
