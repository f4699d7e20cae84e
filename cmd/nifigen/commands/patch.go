package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/nifikit/nifigen"
	"github.com/nifikit/nifigen/internal/fileutil"
	"github.com/nifikit/nifigen/patcher"
)

// PatchFlags contains flags for the patch command
type PatchFlags struct {
	Output  string
	Quiet   bool
	Verbose bool
}

// SetupPatchFlags creates and configures a FlagSet for the patch command.
// Returns the FlagSet and a PatchFlags struct with bound flag variables.
func SetupPatchFlags() (*flag.FlagSet, *PatchFlags) {
	fs := flag.NewFlagSet("patch", flag.ContinueOnError)
	flags := &PatchFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Verbose, "v", false, "verbose mode: log debug output to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "verbose mode: log debug output to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: nifigen patch [flags] <file>\n\n")
		Writef(fs.Output(), "Apply the schema correction registry to a NiFi OpenAPI document.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nApplied Corrections:\n")
		Writef(fs.Output(), "  - String maps whose entries the server may omit or null are widened\n")
		Writef(fs.Output(), "    to nullable ([\"string\",\"null\"] value type), wherever they appear.\n")
		Writef(fs.Output(), "  - ProcessorConfigDTO.properties is corrected explicitly; a missing\n")
		Writef(fs.Output(), "    path is an error, catching upstream document shape changes.\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  nifigen patch swagger.json\n")
		Writef(fs.Output(), "  nifigen patch -o corrected.json swagger.json\n")
		Writef(fs.Output(), "  nifigen patch -q swagger.json > corrected.json\n")
		Writef(fs.Output(), "\nNotes:\n")
		Writef(fs.Output(), "  - The registry is idempotent: patching a corrected document reports\n")
		Writef(fs.Output(), "    zero rewrites and leaves it byte-identical.\n")
		Writef(fs.Output(), "  - Output preserves the original format and key order (JSON or YAML)\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Corrections applied successfully (or none needed)\n")
		Writef(fs.Output(), "  1    Failed to parse or patch the document\n")
	}

	return fs, flags
}

// HandlePatch executes the patch command
func HandlePatch(args []string) error {
	fs, flags := SetupPatchFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("patch command requires exactly one file path")
	}

	specPath := fs.Arg(0)

	startTime := time.Now()
	result, err := patcher.PatchWithOptions(
		patcher.WithFilePath(specPath),
		patcher.WithLogger(NewLogger(flags.Verbose)),
	)
	totalTime := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("patching file: %w", err)
	}

	// Diagnostics go to stderr to keep stdout clean for pipelining
	if !flags.Quiet {
		Writef(os.Stderr, "NiFi Schema Patcher\n")
		Writef(os.Stderr, "===================\n\n")
		Writef(os.Stderr, "nifigen version: %s\n", nifigen.Version())
		Writef(os.Stderr, "Specification: %s\n", specPath)
		Writef(os.Stderr, "Total Time: %v\n\n", totalTime)

		if result.HasPatches() {
			Writef(os.Stderr, "Patches Applied (%d):\n", result.PatchCount)
			for _, applied := range result.Applied {
				Writef(os.Stderr, "  - [%s] %s: %s\n", applied.Patch, applied.Path, applied.Description)
			}
			Writef(os.Stderr, "\n✓ Applied %d patch(es)\n", result.PatchCount)
		} else {
			Writef(os.Stderr, "✓ No patches needed - document is already corrected\n")
		}
	}

	data, err := MarshalDocument(result.Parsed)
	if err != nil {
		return fmt.Errorf("marshaling patched document: %w", err)
	}

	if flags.Output != "" {
		if err := os.WriteFile(flags.Output, data, fileutil.OwnerReadWrite); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		if !flags.Quiet {
			Writef(os.Stderr, "\nOutput written to: %s\n", flags.Output)
		}
	} else {
		if _, err = os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing patched document to stdout: %w", err)
		}
	}

	return nil
}
