// Package rpmdb decodes the tagged-header blob format RPM uses to store a
// package's metadata, independent of which on-disk database wraps that
// blob (a standalone .rpm archive's lead+signature+header section, a
// BerkeleyDB "Packages" file, or an rpmdb.sqlite row's blob column all
// carry the same header bytes).
//
// decoder/rpmarchive and decoder/rpminstalled both hand this package raw
// [io.ReaderAt]s and get back a [Header] they can walk with ReadData;
// everything about which container the bytes came from is the caller's
// problem, not this package's.
//
// Reference: https://rpm-software-management.github.io/rpm/manual/.
package rpmdb
