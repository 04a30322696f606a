// Command faktc drives the Fakt core pipeline outside a real host compiler,
// for integration testing. It is deliberately not the host-compiler
// plugin's own option parser (out of scope per spec.md §1); it exists only
// to exercise the orchestrator end to end (SPEC_FULL.md §11.3). Modeled on
// cmd/tsgonest/main.go's hand-rolled os.Args switch rather than a CLI
// framework.
package main

import (
	"context"
	"fmt"
	"os"
)

const version = "0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "generate":
		return runGenerate(args[1:])
	case "--version", "-v":
		fmt.Println("faktc", version)
		return 0
	case "--help", "-h":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Println("faktc - standalone driver for the Fakt fake-generation pipeline")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  faktc generate --routing <path> --decls <dir> [--level <level>]")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  --routing <path>   path to a routing record file (raw JSON or base64)")
	fmt.Println("  --decls <dir>      directory of declaration fixtures (*.json, hostir.Decl shape)")
	fmt.Println("  --level <level>    telemetry level: silent, normal, verbose, debug (default normal)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  faktc generate --routing routing.json --decls ./fixtures")
}

func runGenerate(args []string) int {
	var routingPath, declsDir, level string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--routing":
			if i+1 < len(args) {
				i++
				routingPath = args[i]
			}
		case "--decls":
			if i+1 < len(args) {
				i++
				declsDir = args[i]
			}
		case "--level":
			if i+1 < len(args) {
				i++
				level = args[i]
			}
		default:
			fmt.Fprintf(os.Stderr, "unknown flag: %s\n", args[i])
			return 1
		}
	}

	if routingPath == "" || declsDir == "" {
		fmt.Fprintln(os.Stderr, "both --routing and --decls are required")
		printUsage()
		return 1
	}

	cfg, err := loadConfig(routingPath, declsDir, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	comp, err := cfg.buildCompilation()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	if err := runCompilation(context.Background(), comp); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	if comp.Diagnostic.HasErrors() {
		for _, d := range comp.Diagnostic.All() {
			fmt.Fprintln(os.Stderr, d.String())
		}
		return 1
	}

	return 0
}
