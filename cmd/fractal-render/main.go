package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/fractal-render/internal/job"
	"github.com/ironsheep/fractal-render/internal/render"
	"github.com/ironsheep/fractal-render/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	// Configure logging to stderr (stdout is for results and the MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func debugEnabled() bool {
	return os.Getenv("FRACTAL_LOG_LEVEL") == "debug"
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		switch args[0] {
		case "--version", "-v", "version":
			fmt.Fprintf(stdout, "fractal-render %s\n", Version)
			fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
			return exitOK
		case "--help", "-h", "help":
			printUsage(stdout)
			return exitOK
		case "serve":
			return runServe(args[1:], stderr)
		}
	}
	return runRender(args, stdout, stderr)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "fractal-render - escape-time fractal renderer")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  fractal-render [-out dir] [-json] <job.toml>...")
	fmt.Fprintln(w, "  fractal-render serve [-out dir]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -out dir         Directory for rendered images (default \"images\")")
	fmt.Fprintln(w, "  -json            Print the run summary as JSON")
	fmt.Fprintln(w, "  --version, -v    Print version information")
	fmt.Fprintln(w, "  --help, -h       Print this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintln(w, "  FRACTAL_LOG_LEVEL=debug    Enable debug logging")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The serve command runs an MCP server over stdin/stdout.")
}

func runRender(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fractal-render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }
	imageDir := fs.String("out", job.DefaultImageDir, "directory for rendered images")
	asJSON := fs.Bool("json", false, "print the run summary as JSON")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "fractal-render: missing job description path")
		printUsage(stderr)
		return exitUsage
	}

	debug := debugEnabled()
	if debug {
		log.Printf("fractal-render v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	for _, path := range fs.Args() {
		j, err := job.Load(path, job.WithImageDir(*imageDir))
		if err != nil {
			fmt.Fprintf(stderr, "fractal-render: %s: %v\n", path, err)
			return exitError
		}

		summary, err := render.Execute(j, render.Options{Debug: debug})
		if err != nil {
			fmt.Fprintf(stderr, "fractal-render: %s: %v\n", path, err)
			return exitError
		}

		if *asJSON {
			enc := json.NewEncoder(stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(summary); err != nil {
				fmt.Fprintf(stderr, "fractal-render: failed to encode summary: %v\n", err)
				return exitError
			}
			continue
		}
		fmt.Fprintf(stdout, "%s: wrote %s (%dx%d, %.1f%% inside, %dms)\n",
			path, summary.OutputPath, summary.Width, summary.Height,
			summary.InsidePercent, summary.ElapsedMillis)
		if summary.ThumbnailPath != "" {
			fmt.Fprintf(stdout, "%s: wrote %s\n", path, summary.ThumbnailPath)
		}
	}
	return exitOK
}

func runServe(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	imageDir := fs.String("out", job.DefaultImageDir, "directory for rendered images")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	debug := debugEnabled()
	if debug {
		log.Printf("fractal-render MCP server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	server.Version = Version
	srv := server.New(server.Config{ImageDir: *imageDir, Debug: debug})
	if err := srv.Run(); err != nil {
		log.Printf("Server error: %v", err)
		return exitError
	}
	return exitOK
}
