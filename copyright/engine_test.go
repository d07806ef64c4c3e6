package copyright_test

import (
	"testing"
	"time"

	"github.com/quay/pkgmeta/copyright"
)

func tok(text string, tag copyright.PosTag) copyright.PosToken {
	return copyright.PosToken{Text: text, Tag: tag, Start: -1, End: -1}
}

// TestCopyrightTree covers scenario S5: a simple "Copyright 2024 Acme Corp
// Inc All rights reserved" span folds into a single COPYRIGHT node.
func TestCopyrightTree(t *testing.T) {
	tokens := []copyright.PosToken{
		tok("Copyright", copyright.TagCOPY),
		tok("2024", copyright.TagYR),
		tok("Acme", copyright.TagNNP),
		tok("Corp", copyright.TagNNP),
		tok("Inc", copyright.TagNNP),
		tok("All", copyright.TagNN),
		tok("rights", copyright.TagRIGHT),
		tok("reserved", copyright.TagRESERVED),
	}

	forest := copyright.Parse(tokens)
	records := copyright.Extract(forest)

	if len(records) != 1 {
		t.Fatalf("want 1 record, got %d: %+v", len(records), records)
	}
	want := "Copyright 2024 Acme Corp Inc All rights reserved"
	if records[0].Text != want {
		t.Errorf("text = %q, want %q", records[0].Text, want)
	}
	if records[0].Label != "copyright" {
		t.Errorf("label = %q, want copyright", records[0].Label)
	}
}

// TestRoundTrip checks that flattening the parsed forest back to leaves
// recovers the original token sequence (property #10).
func TestRoundTrip(t *testing.T) {
	tokens := []copyright.PosToken{
		tok("Copyright", copyright.TagCOPY),
		tok("2024", copyright.TagYR),
		tok("Jane", copyright.TagNNP),
		tok("Doe", copyright.TagNNP),
	}
	forest := copyright.Parse(tokens)
	var got []copyright.PosToken
	for _, c := range forest {
		for _, leaf := range copyright.Leaves(c) {
			got = append(got, *leaf)
		}
	}
	if len(got) != len(tokens) {
		t.Fatalf("got %d leaves, want %d", len(got), len(tokens))
	}
	for i := range tokens {
		if got[i].Text != tokens[i].Text || got[i].Tag != tokens[i].Tag {
			t.Errorf("leaf %d = %+v, want %+v", i, got[i], tokens[i])
		}
	}
}

// TestTerminates is a loose fuzz-ish check that parsing doesn't hang on
// inputs built from the full tag alphabet in varied small combinations.
func TestTerminates(t *testing.T) {
	tags := []copyright.PosTag{
		copyright.TagCOPY, copyright.TagYR, copyright.TagNNP, copyright.TagNN,
		copyright.TagCAPS, copyright.TagCC, copyright.TagBY, copyright.TagRIGHT,
		copyright.TagRESERVED, copyright.TagAUTH, copyright.TagDASH,
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for n := 1; n <= 6; n++ {
			idx := make([]int, n)
			for {
				toks := make([]copyright.PosToken, n)
				for i, ti := range idx {
					toks[i] = tok(string(tags[ti]), tags[ti])
				}
				copyright.Parse(toks)

				pos := n - 1
				for pos >= 0 {
					idx[pos]++
					if idx[pos] < len(tags) {
						break
					}
					idx[pos] = 0
					pos--
				}
				if pos < 0 {
					break
				}
			}
		}
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("Parse did not terminate within the test budget")
	}
}
