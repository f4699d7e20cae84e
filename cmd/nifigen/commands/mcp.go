package commands

import (
	"context"
	"errors"
	"flag"
	"os/signal"
	"syscall"

	"github.com/nifikit/nifigen/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: nifigen mcp\n\n")
		Writef(fs.Output(), "Run the MCP (Model Context Protocol) server over stdio.\n")
		Writef(fs.Output(), "Exposes the patch, extract, and generate tools to MCP clients.\n\n")
		Writef(fs.Output(), "The server runs until the client disconnects or the process\n")
		Writef(fs.Output(), "receives SIGINT or SIGTERM.\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
