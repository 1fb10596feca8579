package main

import (
	"fmt"
	"os"

	"github.com/gnana997/tokenforge/pkg/util"
)

const version = "0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := loadProjectConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", configPath, err)
		os.Exit(1)
	}
	logLevel := ""
	if cfg != nil {
		logLevel = cfg.LogLevel
	}
	logger := util.NewLogger(util.LoggerConfig{Level: logLevel})

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "generate":
		err = runGenerate(args, cfg)
	case "validate":
		err = runValidate(args, cfg)
	case "report":
		err = runReport(args, cfg)
	case "swatch":
		err = runSwatch(args, cfg)
	case "build":
		err = runBuild(args, cfg, logger)
	case "watch":
		err = runWatch(args, cfg, logger)
	case "serve":
		err = runServe(args, cfg)
	case "version":
		fmt.Printf("tokenforge %s\n", version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: tokenforge <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  generate   Generate a token tree from a design brief")
	fmt.Println("  validate   Check the contrast of a foreground/background pair")
	fmt.Println("  report     Print the accessibility report for a brief's tokens")
	fmt.Println("  swatch     Render the HTML swatch page for a brief's tokens")
	fmt.Println("  build      Build every brief in a workspace into full output sets")
	fmt.Println("  watch      Build, then rebuild briefs as they change")
	fmt.Println("  serve      Start the MCP server on stdin/stdout")
	fmt.Println("  version    Print version")
	fmt.Println("  help       Show this help message")
}
