package pkgmeta

// ResolvedPackage carries the concrete, pinned attributes of a dependency
// once a lockfile or resolver has settled on one. Ownership is strictly
// downward: a ResolvedPackage may itself carry nested Dependencies (a
// Podfile.lock subspec tree, a Yarn Berry peerDependencies block), but
// there is no need for shared ownership or an arena, since the graph is
// tree-shaped at the level of a single manifest's extraction.
type ResolvedPackage struct {
	Purl         string       `json:"purl,omitempty"`
	Version      string       `json:"version,omitempty"`
	Hashes       Hashes       `json:"hashes,omitempty"`
	Dependencies []Dependency `json:"dependencies,omitempty"`
}

// Dependency is one entry in a manifest's dependency table.
//
// Invariants (§3):
//   - IsPinned == true implies ExtractedRequirement denotes a single
//     concrete version, or is empty because a lockfile already resolved
//     it into ResolvedPackage.
//   - IsDirect == true means the dependency is declared in the manifest
//     under analysis, not pulled in through transitive closure.
type Dependency struct {
	// Purl may be a bare "pkg:type/name" if no version is known yet.
	Purl                 string           `json:"purl,omitempty"`
	ExtractedRequirement string           `json:"extracted_requirement,omitempty"`
	Scope                string           `json:"scope,omitempty"`
	IsRuntime            bool             `json:"is_runtime"`
	IsOptional           bool             `json:"is_optional"`
	IsPinned             bool             `json:"is_pinned"`
	IsDirect             bool             `json:"is_direct"`
	ResolvedPackage      *ResolvedPackage `json:"resolved_package,omitempty"`
	ExtraData            map[string]any   `json:"extra_data,omitempty"`
}

// TopLevelDependency is a Dependency detached from its owning manifest and
// tagged with the package_uid of the consolidated Package that declared
// it. Used to flatten lockfile-declared top-level requirements into the
// orchestrator's top-level output stream (§6.2).
type TopLevelDependency struct {
	Dependency
	PackageUID string `json:"package_uid"`
}
