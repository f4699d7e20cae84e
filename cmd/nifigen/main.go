package main

import (
	"fmt"
	"os"

	"github.com/nifikit/nifigen"
	"github.com/nifikit/nifigen/cmd/nifigen/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("nifigen v%s\n", nifigen.Version())
	case "help", "-h", "--help":
		printUsage()
	case "patch":
		if err := commands.HandlePatch(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "extract":
		if err := commands.HandleExtract(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "generate":
		if err := commands.HandleGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// suggestCommand returns the closest known command within edit
// distance 2 of the input, or "" when nothing is close enough.
func suggestCommand(input string) string {
	known := []string{"patch", "extract", "generate", "mcp", "version", "help"}

	best := ""
	bestDist := 3
	for _, cmd := range known {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`nifigen - NiFi REST API schema correction and type generation

Usage:
  nifigen <command> [options]

Commands:
  patch       Apply the schema correction registry to a NiFi OpenAPI document
  extract     List the corrected schemas in source document order
  generate    Generate Go type declarations from a NiFi OpenAPI document
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  nifigen patch swagger.json
  nifigen patch -o corrected.json swagger.json
  nifigen extract --format json swagger.json
  nifigen generate -o ./nifi --package nifi swagger.json

Run 'nifigen <command> --help' for more information on a command.`)
}
