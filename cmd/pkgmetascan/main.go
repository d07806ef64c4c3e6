// Command pkgmetascan walks a directory tree, runs every registered
// decoder against the files it finds, and prints the consolidated
// package/dependency graph.
//
// Modeled on claircore's cmd/cctool: a single flag.FlagSet, a
// context cancelled on SIGINT/SIGTERM, log.Fatal on top-level errors.
// Flags stay few and deliberately flag-package-simple (§ "Configuration"
// in SPEC_FULL.md) — this tool has no subcommands, so cctool's
// subcommand dispatch isn't reused, just its signal/flag idiom.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/quay/pkgmeta/registry"
	toolkitlog "github.com/quay/pkgmeta/toolkit/log"

	_ "github.com/quay/pkgmeta/decoder/about"
	_ "github.com/quay/pkgmeta/decoder/bazel"
	_ "github.com/quay/pkgmeta/decoder/bower"
	_ "github.com/quay/pkgmeta/decoder/buck"
	_ "github.com/quay/pkgmeta/decoder/cargolock"
	_ "github.com/quay/pkgmeta/decoder/cargotoml"
	_ "github.com/quay/pkgmeta/decoder/composer"
	_ "github.com/quay/pkgmeta/decoder/conan"
	_ "github.com/quay/pkgmeta/decoder/condameta"
	_ "github.com/quay/pkgmeta/decoder/cpan"
	_ "github.com/quay/pkgmeta/decoder/gemfile"
	_ "github.com/quay/pkgmeta/decoder/gitmodules"
	_ "github.com/quay/pkgmeta/decoder/gradle"
	_ "github.com/quay/pkgmeta/decoder/jarmanifest"
	_ "github.com/quay/pkgmeta/decoder/mum"
	_ "github.com/quay/pkgmeta/decoder/npm"
	_ "github.com/quay/pkgmeta/decoder/nuget"
	_ "github.com/quay/pkgmeta/decoder/nupkg"
	_ "github.com/quay/pkgmeta/decoder/opam"
	_ "github.com/quay/pkgmeta/decoder/osrelease"
	_ "github.com/quay/pkgmeta/decoder/piprequirements"
	_ "github.com/quay/pkgmeta/decoder/pnpmlock"
	_ "github.com/quay/pkgmeta/decoder/pnpmworkspace"
	_ "github.com/quay/pkgmeta/decoder/podfilelock"
	_ "github.com/quay/pkgmeta/decoder/podspec"
	_ "github.com/quay/pkgmeta/decoder/pydistinfo"
	_ "github.com/quay/pkgmeta/decoder/pyproject"
	_ "github.com/quay/pkgmeta/decoder/rpmarchive"
	_ "github.com/quay/pkgmeta/decoder/rpminstalled"
	_ "github.com/quay/pkgmeta/decoder/rpmlicenses"
	_ "github.com/quay/pkgmeta/decoder/swiftresolved"
	_ "github.com/quay/pkgmeta/decoder/yarnberry"
	_ "github.com/quay/pkgmeta/decoder/yarnlock"
)

type config struct {
	root    string
	workers int
	format  string
}

func main() {
	var exit int
	defer func() {
		if exit != 0 {
			os.Exit(exit)
		}
	}()

	ctx, done := context.WithCancel(context.Background())
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT)
		<-ch
		done()
	}()

	slog.SetDefault(slog.New(toolkitlog.WrapHandler(slog.NewTextHandler(os.Stderr, nil))))

	var cfg config
	fs := flag.NewFlagSet("pkgmetascan", flag.ExitOnError)
	fs.StringVar(&cfg.root, "root", ".", "directory to scan")
	fs.IntVar(&cfg.workers, "workers", 4, "number of concurrent scan workers")
	fs.StringVar(&cfg.format, "format", "json", "output format: json or summary")
	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	if cfg.workers < 1 {
		log.Fatal("-workers must be >= 1")
	}
	switch cfg.format {
	case "json", "summary":
	default:
		log.Fatalf("unknown -format %q", cfg.format)
	}

	registry.Default.Freeze()

	scan, err := runScan(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	out := os.Stdout
	var reportErr error
	switch cfg.format {
	case "summary":
		reportErr = writeSummary(out, scan)
	default:
		reportErr = writeJSON(out, scan)
	}
	if reportErr != nil {
		fmt.Fprintln(os.Stderr, reportErr)
		exit = 1
	}
}
