package pkgmeta

// FileKind distinguishes an ordinary file from a directory.
type FileKind string

const (
	FileKindFile = FileKind("file")
	FileKindDir  = FileKind("dir")
)

// Hashes holds whichever digests were available for a file. Any field may
// be empty; none are computed by this package, they are carried through
// from the walker or a decoder that happened to read one off a manifest
// (e.g. a lockfile's recorded sha256).
type Hashes struct {
	SHA1   string `json:"sha1,omitempty"`
	SHA256 string `json:"sha256,omitempty"`
	SHA512 string `json:"sha512,omitempty"`
	MD5    string `json:"md5,omitempty"`
}

// FileInfo is an ordinary file encountered by the walker.
//
// PackageData and ForPackages are mutable: the core populates the former
// as decoders match the file (C3), the latter after assembly (C4) and
// attribution (C5).
type FileInfo struct {
	// Path is the absolute path to the file.
	Path string `json:"path"`
	// RelPath is the path relative to the scan root.
	RelPath string `json:"rel_path"`
	// Kind is file or dir.
	Kind FileKind `json:"kind"`
	// Size is the file size in bytes. Meaningless for directories.
	Size int64 `json:"size,omitempty"`
	// Hashes holds whichever digests are known for the file.
	Hashes Hashes `json:"hashes,omitempty"`
	// MIME is a best-effort content type, when known.
	MIME string `json:"mime,omitempty"`
	// Language is a best-effort primary language, when known.
	Language string `json:"language,omitempty"`

	// PackageData holds every record emitted by a decoder that matched
	// this file, in registration order of the matched parsers.
	PackageData []PackageData `json:"package_data,omitempty"`
	// ForPackages holds the package_uid of every consolidated Package
	// this file belongs to, populated by C4/C5.
	ForPackages []string `json:"for_packages,omitempty"`
	// ScanErrors carries one terse line for each record a decoder returned
	// for this file with an ExtraData["error"] entry, supplementing
	// PackageData rather than replacing it.
	ScanErrors []string `json:"scan_errors,omitempty"`
}
