package bdb

//go:generate go run golang.org/x/tools/cmd/stringer@latest -linecomment -type=PageType,HashPageType

// PageType identifies what a BerkeleyDB page holds. libdb always stores it
// at byte offset 25 of the page, regardless of page type, which is how
// [PackageDB.readHashpage] and [PackageDB.readOverflowpage] can sanity-check
// a page before trusting the rest of its header.
//
// The line comments give the matching libdb C constant name, consumed by
// the stringer directive above.
type PageType byte

// Page types this package's page-walk can encounter. Most of these never
// show up in an RPM "Packages" database (no btree/recno/heap access
// methods are used for it), but the type byte has to be checked against
// the full enum to detect a page that genuinely doesn't belong.
const (
	PageTypeInvalid PageType = iota // P_INVALID
	// Deprecated: Deprecated in version 3.1.
	PageTypeDuplicate     // P_DUPLICATE
	PageTypeHashUnsorted  // P_HASH_UNSORTED
	PageTypeBtreeInternal // P_IBTREE
	PageTypeRecnoInternal // P_IRECNO
	PageTypeBtreeLeaf     // P_LBTREE
	PageTypeRecnoLeaf     // P_LRECNO
	PageTypeOverflow      // P_OVERFLOW
	PageTypeHashMeta      // P_HASHMETA
	PageTypeBtreeMeta     // P_BTREEMETA
	PageTypeQamMeta       // P_QAMMETA
	PageTypeQamData       // P_QAMDATA
	PageTypeDupLeaf       // P_LDUP
	PageTypeHash          // P_HASH
	PageTypeHeapMeta      // P_HEAPMETA
	PageTypeHeap          // P_HEAP
	PageTypeHeapInternal  // P_IHEAP
)

// HashPageType is the per-entry type byte inside a hash page, distinct
// from [PageType]: a hash page is a container of entries, and each entry
// carries its own type (plain key/data, an offpage pointer, a duplicate
// set, ...).
type HashPageType byte

// Entry kinds [PackageDB.Headers] switches on while walking a hash page.
const (
	HashPageTypeInvalid HashPageType = iota
	HashPageTypeKeyData
	HashPageTypeDuplicate
	HashPageTypeOffpage
	HashPageTypeOffDup
	HashPageTypeBlob
)
