// Package copyright implements the bottom-up parse-tree engine that turns
// POS-tagged tokens into COPYRIGHT and AUTHOR spans.
//
// The grammar ([Rules]) is a fixed, ordered table; [Parse] applies it to a
// fixpoint. Tokenizing the source text into [PosToken]s is the job of an
// external POS/lex interface ([Tokenizer]) and out of scope here.
package copyright

// Tokenizer yields POS-tagged tokens from an arbitrary source-file text
// span. It is the C8 boundary this engine consumes but does not implement:
// claircore-style scanners feed it whatever upstream lexer they have.
type Tokenizer interface {
	Tokenize(text string) ([]PosToken, error)
}

// Record is an extracted COPYRIGHT or AUTHOR span.
type Record struct {
	Text  string
	Label TreeLabel
}

// firedSpan identifies a (rule, start, end) triple that has already fired
// during the current Parse call (the set is not reset between passes). The
// engine refuses to re-fire it, which is
// what guarantees termination for the handful of 1->1 relabel rules (e.g.
// NAME-CAPS: {<CAPS>}): once such a rule succeeds at a position it will not
// try again against the identical resulting span.
type firedSpan struct {
	rule       int
	start, end int
}

// Parse runs the grammar to a fixpoint over tokens (in document order) and
// returns the resulting forest of children, each either a *PosToken or a
// *Node.
//
// Termination: every successful match either shrinks the child slice (a
// pattern of length > 1 folds to one node) or is barred from refiring by
// the firedSpan guard (length-1 patterns, the 1->1 relabels). Since the
// child slice only ever shrinks or stays the same length while new
// (rule,start,end) triples are exhausted, the loop always reaches a state
// where no rule can fire and exits.
func Parse(tokens []PosToken) []Child {
	children := prepass(tokens)

	fired := make(map[firedSpan]struct{})
	changed := true
	for changed {
		changed = false
		for ruleIdx, r := range Rules {
			i := 0
			for i <= len(children)-len(r.Pattern) {
				end := i + len(r.Pattern)
				if !patternMatches(r.Pattern, children[i:end]) {
					i++
					continue
				}
				span := firedSpan{rule: ruleIdx, start: i, end: end}
				if _, seen := fired[span]; seen {
					i++
					continue
				}
				node := &Node{Label: r.Label, Children: append([]Child(nil), children[i:end]...)}
				children = append(children[:i:i], append([]Child{node}, children[end:]...)...)
				fired[span] = struct{}{}
				changed = true
				i++
			}
		}
	}
	return children
}

func patternMatches(pattern []matcher, span []Child) bool {
	for i, m := range pattern {
		if !m.matches(span[i]) {
			return false
		}
	}
	return true
}

// prepass applies the three non-rule-table adjustments the grammar depends
// on before the main fixpoint loop: promoting stray BARE-YR tokens to CD,
// merging consecutive CC tokens, and composing EMAIL/URL leaves out of
// their constituent parts.
func prepass(tokens []PosToken) []Child {
	promoted := promoteBareYear(tokens)
	merged := mergeConsecutiveCC(promoted)
	composed := composeEmailAndURL(merged)
	out := make([]Child, len(composed))
	for i := range composed {
		t := composed[i]
		out[i] = &t
	}
	return out
}

// promoteBareYear retags a BARE-YR token to CD whenever it isn't adjacent
// to another year-like token, since outside of a year-range context a bare
// 2-to-4 digit number is just a cardinal number, not a year.
func promoteBareYear(tokens []PosToken) []PosToken {
	isYearLike := func(t PosTag) bool {
		switch t {
		case TagYR, TagBAREYR, TagCD, TagCDS:
			return true
		default:
			return false
		}
	}
	out := make([]PosToken, len(tokens))
	copy(out, tokens)
	for i, t := range out {
		if t.Tag != TagBAREYR {
			continue
		}
		prevYearlike := i > 0 && isYearLike(out[i-1].Tag)
		nextYearlike := i < len(out)-1 && isYearLike(out[i+1].Tag)
		if !prevYearlike && !nextYearlike {
			out[i].Tag = TagCD
		}
	}
	return out
}

// mergeConsecutiveCC collapses runs of CC (conjunction, e.g. "and"/"&")
// leaf tokens into a single CC leaf so that grammar rules matching a single CC
// don't need a separate expansion for repeated conjunctions.
func mergeConsecutiveCC(tokens []PosToken) []PosToken {
	out := make([]PosToken, 0, len(tokens))
	for _, t := range tokens {
		if t.Tag == TagCC && len(out) > 0 && out[len(out)-1].Tag == TagCC {
			last := &out[len(out)-1]
			last.Text = last.Text + " " + t.Text
			last.End = t.End
			continue
		}
		out = append(out, t)
	}
	return out
}

// composeEmailAndURL rewrites a <NAME|NN|NNP> "@" <NN|NNP> "." <NN|NNP> span
// into a single EMAIL leaf, and a PARENS URL PARENS span into a single URL
// leaf. EMAIL and URL are leaf-level POS tags, not tree labels, so this
// composition has to happen before the grammar runs rather than as a rule.
//
// "@" and "." aren't grammar-visible POS tags of their own — the tokenizer
// emits them as JUNK — so the match is on literal text rather than tag.
//
// The upstream tokenizer is expected to emit EMAIL/URL directly in the
// common case; this pass only fires when it instead handed back the
// decomposed pieces.
func composeEmailAndURL(tokens []PosToken) []PosToken {
	out := make([]PosToken, 0, len(tokens))
	i := 0
	for i < len(tokens) {
		if i+4 < len(tokens) &&
			isEmailWord(tokens[i].Tag) && tokens[i+1].Text == "@" &&
			isEmailWord(tokens[i+2].Tag) && tokens[i+3].Text == "." &&
			isEmailWord(tokens[i+4].Tag) {
			start, end := tokens[i].Start, tokens[i+4].End
			text := tokens[i].Text + "@" + tokens[i+2].Text + "." + tokens[i+4].Text
			out = append(out, PosToken{Text: text, Tag: TagEMAIL, Start: start, End: end})
			i += 5
			continue
		}
		if i+2 < len(tokens) &&
			tokens[i].Tag == TagPARENS && tokens[i+1].Tag == TagURL && tokens[i+2].Tag == TagPARENS {
			out = append(out, PosToken{Text: tokens[i+1].Text, Tag: TagURL, Start: tokens[i].Start, End: tokens[i+2].End})
			i += 3
			continue
		}
		out = append(out, tokens[i])
		i++
	}
	return out
}

func isEmailWord(t PosTag) bool {
	switch t {
	case TagNN, TagNNP:
		return true
	default:
		return false
	}
}

// Extract walks a parsed forest once and emits one [Record] per COPYRIGHT,
// COPYRIGHT2, or NAME-COPY node (as "copyright") and one per AUTHOR node (as
// "author"). Nodes that never reached one of those labels are ignored.
func Extract(forest []Child) []Record {
	var out []Record
	for _, c := range forest {
		out = append(out, extractNode(c)...)
	}
	return out
}

func extractNode(c Child) []Record {
	node, ok := c.(*Node)
	if !ok {
		return nil
	}
	var out []Record
	switch node.Label {
	case LabelCOPYRIGHT, LabelCOPYRIGHT2, LabelNAMECOPY:
		out = append(out, Record{Text: node.text(), Label: "copyright"})
	case LabelAUTHOR:
		out = append(out, Record{Text: node.text(), Label: "author"})
	}
	for _, ch := range node.Children {
		out = append(out, extractNode(ch)...)
	}
	return out
}
