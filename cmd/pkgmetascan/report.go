package main

import (
	"encoding/json"
	"fmt"
	"io"
)

func writeJSON(w io.Writer, scan *Scan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(scan)
}

func writeSummary(w io.Writer, scan *Scan) error {
	s := scan.Summary()
	_, err := fmt.Fprintf(w, "files scanned: %d\npackages found: %d\ndecoder errors: %d\n",
		s.FilesScanned, s.PackageCount, s.ErrorCount)
	return err
}
