package rpmdb

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unsafe"
)

// Header is a single parsed RPM header: a tag index plus the data arena
// that index's offsets point into.
type Header struct {
	tags   *io.SectionReader
	data   *io.SectionReader
	Infos  []EntryInfo
	region Tag
}

/*
The blob this package parses is almost the format described in section
2.4 of RPM's header file-format documentation, with one difference:
there's no leading magic/version/reserved block here. Decoding starts
directly at the "INDEXCOUNT" entry, since by the time a caller has an
[io.ReaderAt] for a header it has already stripped whatever
container-specific framing (lead+signature, bdb value, sqlite blob
column) came before it.
*/

// Byte sizes used when walking the header's on-disk layout.
const (
	entryInfoSize = 16 // sizeof(uint32)*4
	preambleSize  = 8  // sizeof(uint32)*2
)

// ParseHeader is equivalent to
//
//	var h Header
//	err := h.Parse(ctx, r)
//	return &h, err
func ParseHeader(ctx context.Context, r io.ReaderAt) (*Header, error) {
	var h Header
	if err := h.Parse(ctx, r); err != nil {
		return nil, err
	}
	return &h, nil
}

// Parse reads the header index and data arenas from r and populates h.
//
// r must stay valid for the lifetime of h, since entry values are read
// lazily through [Header.ReadData].
func (h *Header) Parse(ctx context.Context, r io.ReaderAt) error {
	if err := h.loadArenas(ctx, r); err != nil {
		return fmt.Errorf("rpmdb: failed to parse header: %w", err)
	}
	var isBDB bool
	switch err := h.verifyRegion(ctx); {
	case errors.Is(err, nil):
	case errors.Is(err, errNoRegion):
		isBDB = true
	default:
		return fmt.Errorf("rpmdb: failed to parse header: %w", err)
	}
	if err := h.verifyInfo(ctx, isBDB); err != nil {
		return fmt.Errorf("rpmdb: failed to parse header: %w", err)
	}
	return nil
}

// ReadData decodes and returns the value an [EntryInfo] points at.
//
// On success, the returned interface{}'s dynamic type matches e.Type.
//
// TypeChar, TypeInt8, TypeInt16, TypeInt32, TypeInt64, and
// TypeI18nString all decode to slices, even when count is 1.
func (h *Header) ReadData(_ context.Context, e *EntryInfo) (interface{}, error) {
	// TODO(hank) Provide a generic function like `func[T any](*Header, *EntryInfo) T` to do this.
	switch e.Type {
	case TypeBin:
		if /* is region */ false {
			return nil, errors.New("todo: handle region tags")
		}
		b := make([]byte, e.count)
		if _, err := h.data.ReadAt(b, int64(e.offset)); err != nil {
			return nil, fmt.Errorf("rpmdb: header: error reading binary: %w", err)
		}
		return b, nil
	case TypeI18nString, TypeStringArray:
		sc := bufio.NewScanner(io.NewSectionReader(h.data, int64(e.offset), -1))
		sc.Split(splitCString)
		s := make([]string, int(e.count))
		for i, lim := 0, int(e.count); i < lim && sc.Scan(); i++ {
			s[i] = sc.Text()
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("rpmdb: header: error reading string array: %w", err)
		}
		return s, nil
	case TypeString:
		// C-terminated string.
		r := bufio.NewReader(io.NewSectionReader(h.data, int64(e.offset), -1))
		s, err := r.ReadString(0x00)
		if err != nil {
			return nil, fmt.Errorf("rpmdb: header: error reading string: %w", err)
		}
		// ReadString includes the delimiter, be sure to remove it.
		return s[:len(s)-1], nil
	case TypeChar, TypeInt8, TypeInt16, TypeInt32, TypeInt64:
		sr := io.NewSectionReader(h.data, int64(e.offset), -1)
		switch e.Type {
		case TypeInt64:
			r := make([]uint64, int(e.count))
			b := make([]byte, 8)
			for i := range r {
				if _, err := io.ReadFull(sr, b); err != nil {
					return nil, fmt.Errorf("rpmdb: header: error reading %T: %w", r[0], err)
				}
				r[i] = binary.BigEndian.Uint64(b)
			}
			return r, nil
		case TypeInt32:
			r := make([]int32, int(e.count))
			b := make([]byte, 4)
			for i := range r {
				if _, err := io.ReadFull(sr, b); err != nil {
					return nil, fmt.Errorf("rpmdb: header: error reading %T: %w", r[0], err)
				}
				r[i] = int32(binary.BigEndian.Uint32(b))
			}
			return r, nil
		case TypeInt16:
			r := make([]int16, int(e.count))
			b := make([]byte, 2)
			for i := range r {
				if _, err := io.ReadFull(sr, b); err != nil {
					return nil, fmt.Errorf("rpmdb: header: error reading %T: %w", r[0], err)
				}
				r[i] = int16(binary.BigEndian.Uint16(b))
			}
			return r, nil
		case TypeInt8:
			b := make([]byte, int(e.count))
			if _, err := io.ReadFull(sr, b); err != nil {
				return nil, fmt.Errorf("rpmdb: header: error reading int8: %w", err)
			}
			// Despite byte == uint8 and uint8 being convertible to int8, this is
			// the only way I can figure out to avoid an extra copy or using a
			// ByteReader, which would just have an internal buffer and be slower.
			r := unsafe.Slice((*int8)(unsafe.Pointer(&b[0])), len(b))
			return r, nil
		case TypeChar: // Char and Bin are different because they're offset differently.
			r := make([]byte, int(e.count))
			if _, err := sr.ReadAt(r, 0); err != nil {
				return nil, fmt.Errorf("rpmdb: header: error reading char: %w", err)
			}
			return r, nil
		}
		panic("unreachable")
	default:
	}
	return nil, fmt.Errorf("unknown type: %v", e.Type)
}

// splitCString is a [bufio.SplitFunc] that splits at NUL bytes, the way
// RPM's string and string-array entries are terminated on disk.
func splitCString(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\x00'); i >= 0 {
		return i + 1, data[0:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// loadArenas reads the 8-byte preamble (tag count, data length) from r
// and sets up h.tags/h.data as section readers over the two arenas that
// follow it, sanity-checking the sizes against whatever r can report
// about its own length.
func (h *Header) loadArenas(_ context.Context, r io.ReaderAt) error {
	const (
		headerSz = 8
		tagsMax  = 0x0000ffff
		dataMax  = 0x0fffffff
		sizeMax  = 256 * 1024 * 1024
	)
	b := make([]byte, headerSz)
	if _, err := r.ReadAt(b, 0); err != nil {
		return fmt.Errorf("header: failed to read: %w", err)
	}
	tagsCt := binary.BigEndian.Uint32(b[0:])
	dataSz := binary.BigEndian.Uint32(b[4:])
	if tagsCt > tagsMax {
		return fmt.Errorf("header botch: number of tags (%d) out of range", tagsCt)
	}
	if dataSz > dataMax {
		return fmt.Errorf("header botch: data length (%d) out of range", dataSz)
	}
	tagsSz := int64(tagsCt) * entryInfoSize

	// Sanity check, if possible:
	var inSz int64
	switch v := r.(type) {
	case interface{ Size() int64 }:
		// Check for Size method. [ioSectionReader]s and [byte.Buffer]s have these.
		inSz = v.Size()
	case io.Seeker:
		// Seek if present.
		var err error
		inSz, err = v.Seek(0, io.SeekEnd)
		if err != nil {
			return err
		}
	default:
		// Do a read for the end of the segment.
		end := preambleSize + tagsSz + int64(dataSz)
		if _, err := r.ReadAt(b, end-int64(len(b))); err != nil {
			return err
		}
		inSz = end
	}
	if sz := preambleSize + tagsSz + int64(dataSz); sz >= sizeMax || sz != inSz {
		return fmt.Errorf("not enough data")
	}
	if tagsCt == 0 {
		return fmt.Errorf("no tags")
	}

	h.tags = io.NewSectionReader(r, headerSz, tagsSz)
	h.data = io.NewSectionReader(r, headerSz+tagsSz, int64(dataSz))
	h.Infos = make([]EntryInfo, tagsCt)

	return nil
}

// errNoRegion signals that the header's first tag isn't one of the
// recognized region tags. bdb-backed headers are stored without a
// region wrapper, so callers treat this as "fall back to lax
// verification" rather than a hard parse failure.
var errNoRegion = errors.New("no initial region tag, this is probably a bdb database")

// verifyRegion checks the header's leading region tag and its matching
// trailer entry at the end of the region, the mechanism RPM uses to
// detect a header's index/data arenas being truncated or reordered.
func (h *Header) verifyRegion(ctx context.Context) error {
	const regionTagCount = 16
	region, err := h.loadTag(ctx, 0)
	if err != nil {
		return err
	}
	switch region.Tag {
	case TagHeaderSignatures:
	case TagHeaderImmutable:
	case TagHeaderImage:
	default:
		return fmt.Errorf("region tag not found, got %v: %w", region.Tag, errNoRegion)
	}
	if region.Type != TypeBin || region.count != regionTagCount {
		return fmt.Errorf("nonsense region tag: %v, count: %d", region.Type, region.count)
	}
	if off := region.offset + regionTagCount; off < 0 || off > int32(h.data.Size()) {
		return fmt.Errorf("nonsense region offset")
	}

	var trailer EntryInfo
	b := make([]byte, entryInfoSize)
	if _, err := h.data.ReadAt(b, int64(region.offset)); err != nil {
		return err
	}
	if err := trailer.UnmarshalBinary(b); err != nil {
		return err
	}
	rDataLen := region.offset + regionTagCount
	trailer.offset = -trailer.offset // trailer offset is stored negated.
	rIdxLen := trailer.offset / entryInfoSize
	// librpm special-cases the signature region's tag this way; keep
	// matching it so signature headers verify the same as librpm sees them.
	if region.Tag == TagHeaderSignatures && trailer.Tag == TagHeaderImage {
		trailer.Tag = TagHeaderSignatures
	}
	if trailer.Tag != region.Tag || trailer.Type != TypeRegionTag || trailer.count != regionTagCount {
		return fmt.Errorf("bad region trailer: %v", trailer)
	}

	if (trailer.offset%entryInfoSize != 0) ||
		int64(rIdxLen) > h.tags.Size() ||
		int64(rDataLen) > h.data.Size() {
		return fmt.Errorf("region %d size incorrect: ril %d il %d rdl %d dl %d",
			region.Tag, rIdxLen, h.tags.Size(), rDataLen, h.data.Size())
	}
	h.region = region.Tag
	return nil
}

// verifyInfo walks every [EntryInfo] checking offsets are monotonic,
// types are in range, and (outside bdb headers) tags fall after the
// i18n table tag. bdb-backed headers aren't always sorted the way a
// region-wrapped header is, so isBDB relaxes the ordering and tag-range
// checks rather than rejecting a header libdb itself considers valid.
func (h *Header) verifyInfo(ctx context.Context, isBDB bool) error {
	lim := len(h.Infos)
	typecheck := h.region == TagHeaderImmutable || h.region == TagHeaderImage
	var prev int32
	start := 1
	if isBDB {
		start--
	}

	for i := start; i < lim; i++ {
		e, err := h.loadTag(ctx, i)
		if err != nil {
			return err
		}
		switch {
		case prev > e.offset:
			return fmt.Errorf("botched entry: prev > offset (%d > %d)", prev, e.offset)
		case e.Tag < TagHeaderI18nTable && !isBDB:
			return fmt.Errorf("botched entry: bad tag %v (%[1]d < %d)", e.Tag, TagHeaderI18nTable)
		case e.Type < TypeMin || e.Type > TypeMax:
			return fmt.Errorf("botched entry: bad type %v", e.Type)
		case e.count == 0 || int64(e.count) > h.data.Size():
			return fmt.Errorf("botched entry: bad count %d", e.count)
		case (e.Type.alignment()-1)&e.offset != 0:
			return fmt.Errorf("botched entry: weird alignment: type alignment %d, offset %d", e.Type.alignment(), e.offset)
		case e.offset < 0 || int64(e.offset) > h.data.Size():
			return fmt.Errorf("botched entry: bad offset %d", e.offset)
		case typecheck && !checkTagType(e.Tag, e.Type):
			return fmt.Errorf("botched entry: typecheck fail: %v is not %v", e.Tag, e.Type)
		}
	}
	return nil
}

// checkTagType reports whether typ is an acceptable type for a known
// tag, accepting same-class mismatches (e.g. string vs i18n string)
// since some RPM builds write those interchangeably.
func checkTagType(key Tag, typ Kind) bool {
	if i, ok := tagByValue[key]; ok {
		t := tagTable[i].Type
		return t == typ || t.class() == typ.class()
	}
	// Tags this package doesn't know about get a pass; RPM's tag set
	// grows over time and an unrecognized tag isn't necessarily invalid.
	return true
}

// loadTag reads and caches the i'th [EntryInfo], decoding it from the
// tag index on first access.
func (h *Header) loadTag(_ context.Context, i int) (*EntryInfo, error) {
	e := &h.Infos[i]
	if e.Tag == Tag(0) {
		b := make([]byte, entryInfoSize)
		if _, err := h.tags.ReadAt(b, int64(i)*entryInfoSize); err != nil {
			return nil, fmt.Errorf("header: error reading EntryInfo: %w", err)
		}
		if err := e.UnmarshalBinary(b); err != nil {
			return nil, fmt.Errorf("header: martian EntryInfo: %w", err)
		}
	}
	return e, nil
}

// EntryInfo describes an entry for the given Tag.
type EntryInfo struct {
	Tag    Tag
	Type   Kind
	offset int32
	count  uint32
}

func (e *EntryInfo) String() string {
	return fmt.Sprintf("tag %v type %v offset %d count %d", e.Tag, e.Type, e.offset, e.count)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (e *EntryInfo) UnmarshalBinary(b []byte) error {
	if len(b) < 16 {
		return io.ErrShortBuffer
	}
	e.Tag = Tag(int32(binary.BigEndian.Uint32(b[0:4])))
	e.Type = Kind(binary.BigEndian.Uint32(b[4:8]))
	e.offset = int32(binary.BigEndian.Uint32(b[8:12]))
	e.count = binary.BigEndian.Uint32(b[12:16])
	return nil
}
