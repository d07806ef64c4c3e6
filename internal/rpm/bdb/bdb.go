// Package bdb reads RHEL/CentOS-through-7-era installed RPM databases:
// the BerkeleyDB hash database libdb's C library calls "Packages", read
// here by reimplementing just enough of libdb's on-disk hash-page format
// to walk every stored key/value pair without linking against libdb
// itself. decoder/rpminstalled drives this package directly; the header
// bytes it yields from [PackageDB.Headers] go straight into
// internal/rpm/rpmdb.ParseHeader, the same entry point decoder/rpmarchive
// uses for standalone .rpm files.
package bdb

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"iter"
	"math/bits"
)

// PackageDB is an opened handle onto a BerkeleyDB hash database
// ("Packages" is the filename RPM gives this database on disk).
type PackageDB struct {
	r   io.ReaderAt
	ord binary.ByteOrder
	m   hashmeta
}

// Parse reads and validates the database's metadata page from r, and
// readies db for [PackageDB.Headers]. r must remain valid for the
// lifetime of db, since page reads happen lazily during iteration.
func (db *PackageDB) Parse(r io.ReaderAt) error {
	const (
		hashmagic   = 0x00061561
		hashmagicBE = 0x61150600
	)
	db.ord = binary.LittleEndian
Again:
	pg := io.NewSectionReader(r, 0, 512)
	if err := binary.Read(pg, db.ord, &db.m); err != nil {
		return err
	}
	if db.m.Magic == hashmagicBE {
		// Swap, try again.
		db.ord = binary.BigEndian
		goto Again
	}

	if db.m.Magic != hashmagic {
		return fmt.Errorf("bdb: nonsense magic: %08x", db.m.Magic)
	}
	if db.m.Type != PageTypeHashMeta {
		return fmt.Errorf("bdb: nonsense page type: %08x", db.m.Type)
	}
	if db.m.EncryptAlg != 0 { // none
		return errors.New("bdb: database encryption not supported")
	}
	ok := false
	for i := range 8 {
		var sz uint32 = (1 << i) * 512
		if db.m.PageSize == sz {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("bdb: nonsense page size: %d", db.m.PageSize)
	}

	db.r = r
	return nil
}

/*
The structs below mirror libdb's on-disk page headers field-for-field;
the trailing comments record the byte range each field occupies, since
that's what [binary.Read] relies on instead of any tag.

LSN is libdb's log sequence number, used to detect a page written by a
transaction that never committed. This package never replays a log, so
it only checks that a page's LSN matches the database-wide one recorded
in the metadata page, treating any mismatch as unreadable.

libdb's C implementation walks these pages via pointer arithmetic over
a mapped buffer; here the same walk happens over [io.SectionReader]
slices instead of a mapping.

Reference: libdb's src/dbinc/db_page.h, src/dbinc/hash.h.
*/

// meta is the generic metadata page header shared by every libdb access
// method (hash, btree, ...); hashmeta embeds it and appends the
// hash-specific fields.
type meta struct {
	LSN         uint64   /* 00-07: LSN. */
	PageNo      uint32   /* 08-11: Current page number. */
	Magic       uint32   /* 12-15: Magic number. */
	Version     uint32   /* 16-19: Version. */
	PageSize    uint32   /* 20-23: Pagesize. */
	EncryptAlg  byte     /*    24: Encryption algorithm. */
	Type        PageType /*    25: Page type. */
	Metaflags   byte     /* 26: Meta-only flags */
	_           byte     /* 27: Unused. */
	Free        uint32   /* 28-31: Free list page number. */
	LastPageNo  uint32   /* 32-35: Page number of last page in db. */
	NParts      uint32   /* 36-39: Number of partitions. */
	KeyCount    uint32   /* 40-43: Cached key count. */
	RecordCount uint32   /* 44-47: Cached record count. */
	Flags       uint32   /* 48-51: Flags: unique to each AM. */
	UID         [20]byte /* 52-71: Unique file ID. */
}

// pageSize is the fixed length of an overflow page's header, i.e. the
// offset at which that page's payload bytes begin.
const (
	pageSize = 26
)

// hashmeta is the metadata page at the start of a hash database, with
// the generic [meta] header followed by fields specific to the hash
// access method (bucket counts, spare-page table, blob thresholds).
type hashmeta struct {
	meta                     /* 00-71: Generic meta-data page header. */
	MaxBucket     uint32     /* 72-75: ID of Maximum bucket in use */
	HighMask      uint32     /* 76-79: Modulo mask into table */
	LowMask       uint32     /* 80-83: Modulo mask into table lower half */
	FllFactor     uint32     /* 84-87: Fill factor */
	NElem         uint32     /* 88-91: Number of keys in hash table */
	HashCharKey   uint32     /* 92-95: Value of hash(CHARKEY) */
	Spares        [32]uint32 /* 96-223: Spare pages for overflow */
	BlobThreshold uint32     /* 224-227: Minimum blob file size. */
	BlobFileLo    uint32     /* 228-231: Blob file dir id lo. */
	BlobFileHi    uint32     /* 232-235: Blob file dir id hi. */
	BlobSdbLo     uint32     /* 236-239: Blob sdb dir id lo. */
	BlobSdbHi     uint32     /* 240-243: Blob sdb dir id hi. */
	_             [54]uint32 /* 244-459: Unused space */
	CryptoMagic   uint32     /* 460-463: Crypto magic number */
	_             [3]uint32  /* 464-475: Trash space - Do not use */
	IV            [16]byte   /* 476-491: Crypto IV */
	Checksum      [20]byte   /* 492-511: Page chksum */
}

// hashpage is the header every regular hash page starts with (libdb
// calls the underlying struct PAGE and reuses it across access methods;
// this package only ever sees it in the hash shape). Entry offsets and
// item bytes are packed into the remainder of the [meta.PageSize] block
// that follows this header, growing backward from the end of the page.
type hashpage struct {
	LSN        uint64   /* 00-07: Log sequence number. */
	PageNo     uint32   /* 08-11: Current page number. */
	PrevPageNo uint32   /* 12-15: Previous page number. */
	NextPageNo uint32   /* 16-19: Next page number. */
	Entries    uint16   /* 20-21: Number of items on the page. */
	_          uint16   /* 22-23: High free byte page offset. */
	_          byte     /*    24: Btree tree level. */
	Type       PageType /*    25: Page type. */
}

// overflowpage is the header an overflow page starts with, holding the
// payload for any hash entry too large to fit inline in its bucket
// page. Same underlying PAGE struct as [hashpage], but the "entries"
// field is reinterpreted as a byte length for this page kind.
type overflowpage struct {
	LSN        uint64   /* 00-07: Log sequence number. */
	PageNo     uint32   /* 08-11: Current page number. */
	PrevPageNo uint32   /* 12-15: Previous page number. */
	NextPageNo uint32   /* 16-19: Next page number. */
	_          uint16   /* 20-21: Number of items on the page. */
	Length     uint16   /* 22-23: High free byte page offset. Interpreted as length for overflow page.*/
	_          byte     /*    24: Btree tree level. */
	Type       PageType /*    25: Page type. */
}

// hashoffpage is the pointer record a hash entry holds in place of its
// value when that value didn't fit on the bucket page: the page number
// where the overflow chain starts, plus the chain's total byte length.
type hashoffpage struct {
	Type   HashPageType /*    00: Page type and delete flag. */
	_      [3]byte      /* 01-03: Padding, unused. */
	PageNo uint32       /* 04-07: Offpage page number. */
	Length uint32       /* 08-11: Total length of item. */
}

// unimplementedPageError reports a hash entry type this package doesn't
// decode the value of. RPM's own "Packages" databases never produce
// duplicate, off-page-duplicate, or blob entries, so hitting one of
// these in practice points at a database this package wasn't written
// to read (a btree-backed database, for instance).
type unimplementedPageError struct {
	Kind HashPageType
}

// Error implements [error].
func (e *unimplementedPageError) Error() string {
	return fmt.Sprintf("bdb: unimplemented hash page type: %v", e.Kind)
}

// unknownPageType constructs an [unimplementedPageError].
func unknownPageType(k HashPageType) *unimplementedPageError {
	return &unimplementedPageError{Kind: k}
}

// Sentinel errors, one per [HashPageType] this package declines to decode.
var (
	ErrHashPageDuplicate error = unknownPageType(HashPageTypeDuplicate)
	ErrHashPageOffDup    error = unknownPageType(HashPageTypeOffDup)
	ErrHashPageBlob      error = unknownPageType(HashPageTypeBlob)
)

// Headers walks every bucket chain in db and yields one reader per
// stored RPM header blob (a key/value pair's value half; keys are
// consumed internally and never yielded).
func (db *PackageDB) Headers(_ context.Context) iter.Seq2[io.ReaderAt, error] {
	return func(yield func(io.ReaderAt, error) bool) {
		// Holds the one byte needed to peek at an entry's HashPageType
		// before deciding how to read the rest of it.
		peek := make([]byte, 1)
		// RPM stores a zero-length key once per database holding the key
		// count; once seen, every later key can be skipped without
		// inspecting it. Scoped to the whole walk, not one page, since the
		// zero key can appear on any bucket's root page.
		var seenZeroKey bool
		var pg *io.SectionReader

	HandlePage:
		for pg = range db.rootPages() {
			for pg != nil {
				h, err := db.readHashpage(pg)
				if err != nil {
					if !yield(nil, err) {
						return
					}
					continue HandlePage
				}
				// Decode all the entry offsets immediately, because they'll be
				// needed for calculating entry lengths in some cases.
				entOffs := make([]uint16, int(h.Entries))
				if err := binary.Read(pg, db.ord, entOffs); err != nil {
					if !yield(nil, fmt.Errorf("bdb: error reading hash entry pointer: %w", err)) {
						return
					}
					continue HandlePage
				}

			HandleEntry:
				// Don't do an int range so that the code can skip uninteresting
				// pairs.
				for i := 0; i < int(h.Entries); i++ {
					isKey := (i & 1) == 0
					if isKey && seenZeroKey {
						continue HandleEntry
					}

					off := int64(entOffs[i])
					if _, err := pg.Seek(off, io.SeekStart); err != nil {
						if !yield(nil, fmt.Errorf("bdb: error reading hash entry: %w", err)) {
							return
						}
						continue HandleEntry
					}
					if _, err := pg.Read(peek); err != nil {
						if !yield(nil, fmt.Errorf("bdb: error reading hash entry pointer: %w", err)) {
							return
						}
						continue HandleEntry
					}
					if _, err := pg.Seek(-1, io.SeekCurrent); err != nil {
						if !yield(nil, fmt.Errorf("bdb: error reading hash entry: %w", err)) {
							return
						}
						continue HandleEntry
					}

					// Handle the HashPage per-type:
					typ := HashPageType(peek[0])
					switch typ {
					case HashPageTypeKeyData:
						// Read the variable-length data into a buffer.
						var itemLen int64
						if i == 0 {
							itemLen = int64(db.m.PageSize) - off
						} else {
							itemLen = int64(entOffs[i-1]) - off
						}
						var buf bytes.Buffer
						buf.Grow(int(itemLen))
						if _, err := io.CopyN(&buf, pg, itemLen); err != nil {
							if !yield(nil, fmt.Errorf("bdb: error reading hash entry: %w", err)) {
								return
							}
							continue HandleEntry
						}
						// Skip over "type".
						if _, err := buf.ReadByte(); err != nil {
							if !yield(nil, fmt.Errorf("bdb: error reading hash entry: %w", err)) {
								return
							}
							continue HandleEntry
						}

						switch {
						case isKey && bytes.Equal(buf.Bytes(), zeroKey):
							// Skip the value stored at the zeroKey.
							seenZeroKey = true
							i++
							fallthrough
						case isKey:
							continue HandleEntry
						default:
							// Otherwise, return this buffer
							if !yield(bytes.NewReader(buf.Bytes()), nil) {
								return
							}
						}

					case HashPageTypeOffpage:
						var hoff hashoffpage
						if err := binary.Read(pg, db.ord, &hoff); err != nil {
							if !yield(nil, fmt.Errorf("bdb: error reading hash entry: %w", err)) {
								return
							}
							continue HandleEntry
						}
						r, err := db.overflow(hoff.PageNo)
						if err != nil {
							if !yield(nil, fmt.Errorf("bdb: error reading hash entry: %w", err)) {
								return
							}
							continue HandleEntry
						}
						if !yield(r, err) {
							return
						}
					case HashPageTypeDuplicate:
						if !yield(nil, ErrHashPageDuplicate) {
							return
						}
					case HashPageTypeOffDup:
						if !yield(nil, ErrHashPageOffDup) {
							return
						}
					case HashPageTypeBlob:
						if !yield(nil, ErrHashPageBlob) {
							return
						}
					default:
						if !yield(nil, unknownPageType(typ)) {
							return
						}
					}
				}

				// Load to next page if needed.
				if h.NextPageNo == 0 {
					pg = nil
				} else {
					pg = db.page(h.NextPageNo)
				}
			}
		}
	}
}

// zeroKey is the sentinel 4-byte all-zero key RPM stores once per
// database; its paired value holds the hash table's cached key count.
var zeroKey = []byte{0, 0, 0, 0}

// pageoffset converts a page number to its byte offset from the start
// of the underlying reader.
func (db *PackageDB) pageoffset(pageno uint32) int64 {
	return int64(pageno) * int64(db.m.PageSize)
}

// page returns a section reader scoped to exactly one page's bytes.
func (db *PackageDB) page(pageno uint32) *io.SectionReader {
	return io.NewSectionReader(db.r, db.pageoffset(pageno), int64(db.m.PageSize))
}

// bucketToPage resolves a bucket number to the page number of that
// bucket's first page, using libdb's spare-page table: the table is
// indexed by bit length of the bucket number, since buckets double in
// count each time the hash table grows and the spare table only needs
// one entry per growth generation.
func (db *PackageDB) bucketToPage(b uint32) *io.SectionReader {
	pn := uint32(b) + db.m.Spares[bits.Len32(b)]
	return db.page(pn)
}

// rootPages iterates over every bucket's first page, in bucket order.
func (db *PackageDB) rootPages() iter.Seq[*io.SectionReader] {
	return func(yield func(*io.SectionReader) bool) {
		for bn := range db.m.MaxBucket + 1 {
			if !yield(db.bucketToPage(bn)) {
				return
			}
		}
	}
}

// readHashpage and readOverflowpage stay separate functions, rather
// than one generic helper, because each checks its LSN against a
// different expected [PageType].

// readHashpage reads and validates a [hashpage] header from pg.
func (db *PackageDB) readHashpage(pg *io.SectionReader) (hashpage, error) {
	var h hashpage
	if err := binary.Read(pg, db.ord, &h); err != nil {
		return h, fmt.Errorf("bdb: error reading hashpage: %w", err)
	}
	if got, want := h.LSN, db.m.LSN; got != want {
		return h, fmt.Errorf("bdb: stale lsn: %016x != %016x", got, want)
	}
	if got, want := h.Type, PageTypeHash; got != want {
		return h, fmt.Errorf("bdb: unexpected page type: %v != %v", got, want)
	}
	return h, nil
}

// readOverflowpage reads and validates an [overflowpage] header from pg.
func (db *PackageDB) readOverflowpage(pg *io.SectionReader) (overflowpage, error) {
	var ov overflowpage
	if err := binary.Read(pg, db.ord, &ov); err != nil {
		return ov, fmt.Errorf("bdb: error reading overflowpage: %w", err)
	}
	if got, want := ov.LSN, db.m.LSN; got != want {
		return ov, fmt.Errorf("bdb: stale lsn: %016x != %016x", got, want)
	}
	if got, want := ov.Type, PageTypeOverflow; got != want {
		return ov, fmt.Errorf("bdb: unexpected page type: %v != %v", got, want)
	}
	return ov, nil
}

// overflow walks the overflow page chain starting at start and returns
// a [rope] presenting the concatenated payload as a single [io.ReaderAt].
func (db *PackageDB) overflow(start uint32) (*rope, error) {
	var r rope
	pgno := start
	for pgno != 0 {
		pg := db.page(pgno)
		ov, err := db.readOverflowpage(pg)
		if err != nil {
			return nil, err
		}
		data := io.NewSectionReader(db.r, db.pageoffset(ov.PageNo)+pageSize, int64(ov.Length))
		if err := r.add(data); err != nil {
			return nil, err
		}
		pgno = ov.NextPageNo
	}
	return &r, nil
}

// rope presents an ordered chain of [io.SectionReader]s backing
// successive overflow pages as one contiguous [io.ReaderAt]. It's
// append-only, which is all an overflow chain needs.
type rope struct {
	rd  []*io.SectionReader
	off []int64
}

var _ io.ReaderAt = (*rope)(nil)

// ReadAt implements [io.ReaderAt], splitting a read across as many
// underlying segments as it spans.
func (r *rope) ReadAt(b []byte, off int64) (int, error) {
	// Find which segment off falls in.
	idx := 0
	for i, roff := range r.off {
		if roff > off {
			break
		}
		idx = i
	}

	// Read forward across segments until b is full or the chain ends.
	n := 0
	rdoff := off - r.off[idx] // offset into the reader at "idx"
	for {
		rn, err := r.rd[idx].ReadAt(b[n:], rdoff)
		n += rn
		switch {
		case errors.Is(err, nil):
		case errors.Is(err, io.EOF):
			idx++
			if idx != len(r.rd) {
				rdoff = 0 // Reading from the start, now that we're on the next one.
				break     // May return EOF or nil on an exact-sized read, so hit the post-switch check.
			}
			fallthrough
		// Don't need to handle non-EOF short reads because [io.ReaderAt] is documented
		// to error on short reads.
		default:
			return n, err
		}
		if n == len(b) {
			break
		}
	}
	return n, nil
}

// Size reports the combined size of every segment in the chain.
func (r *rope) Size() (s int64) {
	for _, rd := range r.rd {
		s += rd.Size()
	}
	return s
}

// add appends rd as the next segment of the chain.
func (r *rope) add(rd *io.SectionReader) error {
	var off int64
	for _, rd := range r.rd {
		off += rd.Size()
	}
	r.rd = append(r.rd, rd)
	r.off = append(r.off, off)
	return nil
}
