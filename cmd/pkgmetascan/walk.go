package main

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

// runScan walks cfg.root, fans file-level decoding out across cfg.workers
// goroutines draining a queue (§5 "recommended model: worker pool draining
// a queue of files"), then runs the C4/C5 assembly passes once every
// worker has finished — those passes need the full, merged file list and
// must not run concurrently with decoding (§5 "no concurrency").
func runScan(ctx context.Context, cfg config) (*Scan, error) {
	paths := make(chan string, cfg.workers*2)
	results := make(chan *pkgmeta.FileInfo, cfg.workers*2)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(paths)
		return filepath.WalkDir(cfg.root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			select {
			case paths <- path:
			case <-gctx.Done():
				return gctx.Err()
			}
			return nil
		})
	})

	for range cfg.workers {
		g.Go(func() error {
			for path := range paths {
				fi, err := scanFile(gctx, cfg.root, path)
				if err != nil {
					return err
				}
				select {
				case results <- fi:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	done := make(chan struct{})
	var files []*pkgmeta.FileInfo
	go func() {
		for fi := range results {
			files = append(files, fi)
		}
		close(done)
	}()

	err := g.Wait()
	close(results)
	<-done
	if err != nil {
		return nil, err
	}

	return assemble(ctx, files), nil
}

// scanFile stats path, then runs every decoder the registry matches
// against it, accumulating PackageData and per-decoder-failure
// ScanErrors on the returned FileInfo (§7, SPEC_FULL.md's scan_errors[]
// supplement).
func scanFile(ctx context.Context, root, path string) (*pkgmeta.FileInfo, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	fi := &pkgmeta.FileInfo{
		Path:    path,
		RelPath: rel,
		Kind:    pkgmeta.FileKindFile,
		Size:    info.Size(),
	}

	for _, desc := range registry.Default.Matches(path) {
		p := desc.Factory()
		if !p.IsMatch(path) {
			continue
		}
		fi.PackageData = append(fi.PackageData, extractWithErrors(ctx, p, desc, path, fi)...)
	}
	return fi, nil
}

// extractWithErrors runs ExtractPackages and appends one ScanErrors line
// to fi for every returned record whose ExtraData carries an "error" key
// (the failure-placeholder convention some decoders use). A failure that
// a decoder only logs, returning a record without that key, adds nothing
// to ScanErrors.
func extractWithErrors(ctx context.Context, p parser.Parser, desc parser.Descriptor, path string, fi *pkgmeta.FileInfo) []pkgmeta.PackageData {
	pds := p.ExtractPackages(ctx, path)
	for _, pd := range pds {
		if _, ok := pd.ExtraData["error"]; ok {
			fi.ScanErrors = append(fi.ScanErrors, desc.DatasourceID+": "+fi.RelPath)
		}
	}
	return pds
}
