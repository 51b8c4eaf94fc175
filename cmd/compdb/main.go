// Package main provides the compdb command, which writes compile_commands.json
// for the workspace described by a JSON configuration file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Cyclone1070/compdb/internal/compdb"
	"github.com/Cyclone1070/compdb/internal/config"
	"github.com/Cyclone1070/compdb/internal/fsutil"
	"github.com/Cyclone1070/compdb/internal/gitutil"
	"github.com/Cyclone1070/compdb/internal/pattern"
	"github.com/Cyclone1070/compdb/internal/sourceset"
	"github.com/Cyclone1070/compdb/internal/ui"
	"github.com/spf13/pflag"
)

// Exit codes
const (
	exitOK         = 0
	exitInternal   = 1
	exitInvocation = 2
	exitNotFound   = 3
	exitNotJSON    = 4
	exitConfig     = 5
	exitWrite      = 6
)

const usageLine = "usage: compdb [-v] <config.json>"

// fileSystem is everything a run needs from the disk.
type fileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFileAtomic(path string, content []byte, perm os.FileMode) error
}

// ignoreMatcher drops root-relative paths named by .gitignore.
type ignoreMatcher interface {
	ShouldIgnore(relativePath string) bool
}

// Dependencies holds the components required to run the application.
type Dependencies struct {
	FS     fileSystem
	Getwd  func() (string, error)
	Stdout io.Writer
	Stderr io.Writer
}

func createRealDependencies() Dependencies {
	return Dependencies{
		FS:     fsutil.NewOSFileSystem(),
		Getwd:  os.Getwd,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func main() {
	os.Exit(run(os.Args[1:], createRealDependencies()))
}

// run parses args and executes one generation, returning the exit code.
func run(args []string, deps Dependencies) int {
	flags := pflag.NewFlagSet("compdb", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	verbose := flags.BoolP("verbose", "v", false, "print the configuration summary and per-folder file counts")
	help := flags.BoolP("help", "h", false, "show this help")

	stderr := ui.NewReporter(deps.Stderr, false)

	if err := flags.Parse(args); err != nil {
		stderr.Errorf("%v", err)
		fmt.Fprintln(deps.Stderr, usageLine)
		return exitInvocation
	}

	if *help {
		fmt.Fprintln(deps.Stdout, usageLine)
		fmt.Fprint(deps.Stdout, flags.FlagUsages())
		return exitOK
	}

	positional := flags.Args()
	if len(positional) > 1 {
		stderr.Errorf("expected one configuration file, got %d arguments", len(positional))
		fmt.Fprintln(deps.Stderr, usageLine)
		return exitInvocation
	}
	if len(positional) == 0 || positional[0] == "" {
		fmt.Fprintln(deps.Stdout, usageLine)
		return exitOK
	}

	return generate(positional[0], *verbose, deps)
}

func generate(configPath string, verbose bool, deps Dependencies) int {
	log := ui.NewReporter(deps.Stderr, verbose)
	out := ui.NewReporter(deps.Stdout, verbose)

	cfg, err := config.NewLoaderWithFS(deps.FS).Load(configPath)
	if err != nil {
		log.Errorf("%v", err)
		return exitCode(err)
	}

	for _, key := range cfg.UnknownKeys {
		log.Warnf("ignoring unknown configuration key %q", key)
	}

	if verbose {
		out.Print(ui.RenderMarkdown(cfg.Markdown(), ui.NewMarkdownRenderer(deps.Stdout)))
	}

	cwd, err := deps.Getwd()
	if err != nil {
		log.Errorf("cannot determine working directory: %v", err)
		return exitInternal
	}

	collector := sourceset.NewCollector(pattern.NewResolver(log), createIgnoreMatcher(cfg.Workspace, deps.FS, log))
	entries := compdb.NewGenerator(collector, log).Generate(cfg)

	path, err := compdb.Write(deps.FS, cwd, entries)
	if err != nil {
		log.Errorf("%v", err)
		return exitCode(err)
	}

	out.Infof("wrote %d entries to %s", len(entries), path)
	return exitOK
}

// createIgnoreMatcher returns nil unless respect_gitignore is set. A
// .gitignore that exists but cannot be read disables filtering with a warning.
func createIgnoreMatcher(ws config.WorkspaceSettings, fs fileSystem, log *ui.Reporter) ignoreMatcher {
	if !ws.RespectGitignore {
		return nil
	}

	root := ws.RootFolder
	if root == "" {
		root = "."
	}

	m, err := gitutil.NewIgnoreMatcher(root, fs)
	if err != nil {
		log.Warnf("%v", err)
		return &gitutil.NoOpMatcher{}
	}
	return m
}

// exitCode maps a fatal error to the process exit status.
func exitCode(err error) int {
	var (
		notFound   *config.NotFoundError
		notJSON    *config.NotJSONError
		decode     *config.DecodeError
		validation *config.ValidationError
		write      *compdb.WriteError
	)

	switch {
	case errors.As(err, &notFound):
		return exitNotFound
	case errors.As(err, &notJSON):
		return exitNotJSON
	case errors.Is(err, config.ErrMissingFolders),
		errors.As(err, &decode),
		errors.As(err, &validation):
		return exitConfig
	case errors.As(err, &write):
		return exitWrite
	default:
		return exitInternal
	}
}
