package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2png/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUsage marks invalid command lines.
var ErrUsage = errors.New("invalid usage")

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches args to a command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	err := dispatch(ctx, args[1], args[2:], env)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}

	fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, env))
	return exitCodeFor(err)
}

// dispatch runs the named command.
func dispatch(ctx context.Context, cmd string, args []string, env *Environment) error {
	switch cmd {
	case "render":
		return runRender(ctx, args, env)
	case "format":
		return runFormat(args, env)
	case "table":
		return runTable(args, env)
	case "stats":
		return runStats(args, env)
	case "theme":
		return runTheme(args, env)
	case "config":
		return runConfig(args, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "go-md2png %s\n", Version)
		return nil
	case "help", "-h", "--help":
		return runHelp(args, env)
	}

	// A bare input path or flag implies render
	if looksLikeInput(cmd) {
		return runRender(ctx, append([]string{cmd}, args...), env)
	}

	printUsage(env.Stderr)
	return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
}

// looksLikeInput reports whether arg is something render accepts in
// place of a command name: stdin, a flag, a markup file or a directory.
func looksLikeInput(arg string) bool {
	if arg == stdinArg || strings.HasPrefix(arg, "-") {
		return true
	}
	if fileutil.HasExtension(arg, inputExtensions...) {
		return true
	}
	info, err := os.Stat(arg)
	return err == nil && info.IsDir()
}
