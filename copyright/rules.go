package copyright

// matcher is a single position in a grammar rule's pattern. It is pure
// data — a closed sum of the five matcher kinds the grammar supports — so
// that [Rules] stays a declarative table rather than a bundle of closures.
type matcher struct {
	tags   []PosTag
	labels []TreeLabel
}

// matches reports whether child c satisfies this matcher.
func (m matcher) matches(c Child) bool {
	if tag, ok := c.leafTag(); ok {
		for _, t := range m.tags {
			if t == tag {
				return true
			}
		}
		return false
	}
	if lbl, ok := c.label(); ok {
		for _, l := range m.labels {
			if l == lbl {
				return true
			}
		}
		return false
	}
	return false
}

func tag(t PosTag) matcher { return matcher{tags: []PosTag{t}} }

func label(l TreeLabel) matcher { return matcher{labels: []TreeLabel{l}} }

func anyTag(ts ...PosTag) matcher { return matcher{tags: ts} }

func anyLabel(ls ...TreeLabel) matcher { return matcher{labels: ls} }

func anyTagOrLabel(ts []PosTag, ls []TreeLabel) matcher {
	return matcher{tags: ts, labels: ls}
}

// Rule is a single grammar production: a pattern of matchers that, when
// found contiguously in the child sequence, is folded into one [Node]
// labeled Label.
type Rule struct {
	Label   TreeLabel
	Pattern []matcher
}

// Rules is the fixed, ordered grammar table. Rule ordering is normative:
// within one scan of the child sequence the engine tries rule 0 at every
// position, then rule 1, and so on (see [Parse]). The table below is the
// pre-expanded enumeration of the original regex-style grammar: a rule
// written with `+`/`?`/`*`/`{n}` quantifiers becomes one rule per arity the
// quantifier allows.
var Rules = []Rule{
	{Label: LabelYRRANGE, Pattern: []matcher{tag(TagYR), tag(TagCC), tag(TagYR)}},
	{Label: LabelYRRANGE, Pattern: []matcher{tag(TagYR), tag(TagYR), tag(TagCC), tag(TagYR)}},
	{Label: LabelYRRANGE, Pattern: []matcher{tag(TagYR), tag(TagCC), tag(TagCC), tag(TagYR)}},
	{Label: LabelYRRANGE, Pattern: []matcher{tag(TagYR), anyTag(TagYR, TagBAREYR)}},
	{Label: LabelYRRANGE, Pattern: []matcher{tag(TagYR), anyTag(TagDASH, TagTO), anyTag(TagYR, TagBAREYR)}},
	{Label: LabelYRRANGE, Pattern: []matcher{tag(TagYR), anyTag(TagDASH, TagTO), anyTag(TagYR, TagBAREYR), anyTag(TagYR, TagBAREYR)}},
	{Label: LabelYRRANGE, Pattern: []matcher{tag(TagYR)}},
	{Label: LabelYRRANGE, Pattern: []matcher{anyTag(TagCD, TagCDS, TagBAREYR), tag(TagYR)}},
	{Label: LabelYRRANGE, Pattern: []matcher{tag(TagYR), tag(TagBAREYR)}},
	{Label: LabelYRRANGE, Pattern: []matcher{anyTag(TagCD, TagCDS, TagBAREYR), tag(TagYR), tag(TagBAREYR)}},
	{Label: LabelYRRANGE, Pattern: []matcher{tag(TagYR), tag(TagYR)}},
	{Label: LabelYRRANGE, Pattern: []matcher{tag(TagYR), tag(TagYR), tag(TagBAREYR)}},
	{Label: LabelYRAND, Pattern: []matcher{tag(TagYR), tag(TagCC), tag(TagYR)}},
	{Label: LabelYRAND, Pattern: []matcher{tag(TagCC), tag(TagYR), tag(TagCC), tag(TagYR)}},
	{Label: LabelYRAND, Pattern: []matcher{tag(TagYR), tag(TagYR), tag(TagCC), tag(TagYR)}},
	{Label: LabelYRAND, Pattern: []matcher{tag(TagCC), tag(TagYR), tag(TagYR), tag(TagCC), tag(TagYR)}},
	{Label: LabelYRRANGE, Pattern: []matcher{label(LabelYRAND)}},
	{Label: LabelYRRANGE, Pattern: []matcher{label(LabelYRAND), label(LabelYRAND)}},
	{Label: LabelYRRANGE, Pattern: []matcher{label(LabelYRRANGE), anyTag(TagDASH, TagTO), label(LabelYRRANGE)}},
	{Label: LabelYRRANGE, Pattern: []matcher{label(LabelYRRANGE), label(LabelYRRANGE), anyTag(TagDASH, TagTO), label(LabelYRRANGE)}},
	{Label: LabelYRRANGE, Pattern: []matcher{label(LabelYRRANGE), anyTag(TagDASH, TagTO), label(LabelYRRANGE), label(LabelYRRANGE)}},
	{Label: LabelYRRANGE, Pattern: []matcher{label(LabelYRRANGE), tag(TagDASH)}},
	{Label: LabelYRRANGE, Pattern: []matcher{label(LabelYRRANGE), label(LabelYRRANGE)}},
	{Label: LabelYRRANGE, Pattern: []matcher{label(LabelYRRANGE), label(LabelYRRANGE), tag(TagDASH)}},
	{Label: LabelYRRANGE, Pattern: []matcher{label(LabelYRRANGE), anyTag(TagCD, TagCDS)}},
	{Label: LabelYRRANGE, Pattern: []matcher{label(LabelYRRANGE), anyTag(TagCD, TagCDS), anyTag(TagCD, TagCDS)}},
	{Label: LabelYRRANGE, Pattern: []matcher{label(LabelYRRANGE), anyTag(TagCD, TagCDS), anyTag(TagCD, TagCDS), anyTag(TagCD, TagCDS)}},
	{Label: LabelYRRANGE, Pattern: []matcher{tag(TagCDS), tag(TagNNP), label(LabelYRRANGE)}},
	{Label: LabelALLRIGHTRESERVED, Pattern: []matcher{anyTag(TagNNP, TagNN, TagCAPS), tag(TagRIGHT), tag(TagRESERVED)}},
	{Label: LabelALLRIGHTRESERVED, Pattern: []matcher{anyTag(TagNNP, TagNN, TagCAPS), tag(TagRIGHT), anyTag(TagNNP, TagNN, TagCAPS), tag(TagRESERVED)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagEMAILSTART), tag(TagCC), tag(TagEMAILEND)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagEMAILSTART), tag(TagCC), tag(TagNN), tag(TagEMAILEND)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagEMAILSTART), tag(TagCC), tag(TagNN), tag(TagNN), tag(TagEMAILEND)}},
	{Label: LabelDASHCAPS, Pattern: []matcher{tag(TagDASH), tag(TagCAPS)}},
	{Label: LabelNAME, Pattern: []matcher{label(LabelNAME), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{anyTag(TagNN, TagNNP), tag(TagCC), anyTag(TagURL, TagURL2)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), anyTag(TagVAN, TagOF), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), tag(TagNNP), anyTag(TagVAN, TagOF), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), anyTag(TagVAN, TagOF), tag(TagNNP), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), tag(TagNNP), anyTag(TagVAN, TagOF), tag(TagNNP), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), anyTag(TagVAN, TagOF), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), anyTag(TagVAN, TagOF), tag(TagNN), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), tag(TagPN), tag(TagVAN), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagBY), tag(TagNN), tag(TagEMAIL)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagBY), tag(TagNN), tag(TagNN), tag(TagEMAIL)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), tag(TagPN), tag(TagCAPS)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), tag(TagCAPS), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagBY), tag(TagCAPS), tag(TagPN), tag(TagCAPS)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), tag(TagNNP), tag(TagMIXEDCAP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), tag(TagNNP), tag(TagCAPS)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), tag(TagNNP), tag(TagCC), tag(TagNNP), tag(TagNN), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), tag(TagNNP), tag(TagCC), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), tag(TagNNP), tag(TagCC), tag(TagNNP), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagPN), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{anyTag(TagNNP, TagPN), anyTag(TagNNP, TagPN), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{anyTag(TagNNP, TagPN), anyTag(TagNNP, TagPN), tag(TagNNP), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNN), tag(TagNNP), tag(TagNNP), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagEMAIL), label(LabelNAME)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNN), tag(TagEMAIL), label(LabelNAME)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNN), tag(TagNN), tag(TagEMAIL), label(LabelNAME)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), tag(TagCAPS)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), tag(TagPN)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), tag(TagPN), tag(TagPN)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), anyTag(TagNN, TagNNP), tag(TagEMAIL)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), anyTag(TagPN, TagVAN), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), anyTag(TagPN, TagVAN), anyTag(TagPN, TagVAN), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), tag(TagNN), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), tag(TagCOMMIT)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), tag(TagMAINT), tag(TagCOMP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNN), tag(TagNNP), tag(TagMAINT), tag(TagCOMP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), tag(TagMAINT)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), tag(TagNN), tag(TagMAINT)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), tag(TagCC), label(LabelNAME)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNN), tag(TagNNP), tag(TagCC), label(LabelNAME)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), tag(TagOF), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), tag(TagOF), tag(TagNNP), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNN), tag(TagNNP), tag(TagOF), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNN), tag(TagNNP), tag(TagOF), tag(TagNNP), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), tag(TagOF), tag(TagNN), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), tag(TagOF), tag(TagNN), tag(TagNNP), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNN), tag(TagNNP), tag(TagOF), tag(TagNN), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNN), tag(TagNNP), tag(TagOF), tag(TagNN), tag(TagNNP), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{anyTag(TagNNP, TagPN), tag(TagCC), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{anyTag(TagNNP, TagPN), anyTag(TagNNP, TagPN), tag(TagCC), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{anyTag(TagNNP, TagPN), tag(TagCC), tag(TagNNP), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{anyTag(TagNNP, TagPN), anyTag(TagNNP, TagPN), tag(TagCC), tag(TagNNP), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{label(LabelNAME), tag(TagCC), label(LabelNAME)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagCC), tag(TagNNP), tag(TagMIXEDCAP)}},
	{Label: LabelNAME, Pattern: []matcher{label(LabelNAME), tag(TagUNI)}},
	{Label: LabelNAME, Pattern: []matcher{anyLabel(LabelNAME, LabelNAMEEMAIL), tag(TagOF), tag(TagNNP), tag(TagOF), label(LabelCOMPANY)}},
	{Label: LabelNAME, Pattern: []matcher{anyLabel(LabelNAME, LabelNAMEEMAIL), tag(TagOF), tag(TagNNP), tag(TagOF), tag(TagNN), label(LabelCOMPANY)}},
	{Label: LabelNAME, Pattern: []matcher{anyLabel(LabelNAME, LabelNAMEEMAIL), anyLabel(LabelNAME, LabelNAMEEMAIL, LabelCOMPANY)}},
	{Label: LabelNAME, Pattern: []matcher{anyLabel(LabelNAME, LabelNAMEEMAIL), anyTag(TagCC, TagOF), anyLabel(LabelNAME, LabelNAMEEMAIL, LabelCOMPANY)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), tag(TagOF), tag(TagVAN), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{label(LabelNAME), tag(TagCC), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagPORTIONS), tag(TagOF), tag(TagNN), label(LabelNAME)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagPORTIONS), tag(TagOF), tag(TagNN), label(LabelNAME), label(LabelNAME)}},
	{Label: LabelNAME, Pattern: []matcher{anyTag(TagNN, TagNNP, TagCAPS), tag(TagCC), tag(TagOTH)}},
	{Label: LabelNAME, Pattern: []matcher{anyTag(TagNN, TagNNP, TagCAPS), anyTag(TagNN, TagNNP, TagCAPS), tag(TagCC), tag(TagOTH)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagCAPS), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagCAPS), label(LabelNAME)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagCAPS), tag(TagDASH), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagCAPS), tag(TagDASH), label(LabelNAME)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), anyTag(TagCD, TagCDS), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagCOMP), label(LabelNAME)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagCOMP), label(LabelNAME), label(LabelNAME)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagCC), tag(TagCONTRIBUTORS)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagCC), tag(TagNN), tag(TagCONTRIBUTORS)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagAUTHS), tag(TagCC), tag(TagCONTRIBUTORS)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagAUTHS), tag(TagCC), tag(TagNN), tag(TagCONTRIBUTORS)}},
	{Label: LabelNAME, Pattern: []matcher{anyTag(TagNNP, TagCAPS), anyTag(TagAUTHS, TagAUTHDOT, TagCONTRIBUTORS)}},
	{Label: LabelNAME, Pattern: []matcher{anyTag(TagNNP, TagCAPS), anyTag(TagNNP, TagCAPS), anyTag(TagAUTHS, TagAUTHDOT, TagCONTRIBUTORS)}},
	{Label: LabelNAME, Pattern: []matcher{anyTag(TagNNP, TagCAPS), anyTag(TagNNP, TagCAPS), anyTag(TagNNP, TagCAPS), anyTag(TagAUTHS, TagAUTHDOT, TagCONTRIBUTORS)}},
	{Label: LabelNAME, Pattern: []matcher{anyTag(TagVAN, TagOF), label(LabelNAME)}},
	{Label: LabelNAME, Pattern: []matcher{label(LabelNAMEYEAR), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY})}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), label(LabelNAME)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagIN), label(LabelNAME)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagIN), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagCC), tag(TagIN), label(LabelNAME)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagCC), tag(TagIN), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{label(LabelNAME), tag(TagIN), tag(TagNNP), anyTag(TagCC, TagIN), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{label(LabelNAME), tag(TagIN), tag(TagNNP), anyTag(TagCC, TagIN), anyTag(TagCC, TagIN), tag(TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagBY), tag(TagNNP), tag(TagURL)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), tag(TagURL), tag(TagEMAIL)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNN), tag(TagNNP), tag(TagOF), tag(TagNN), label(LabelCOMPANY)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), label(LabelANDCO)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), label(LabelANDCO), label(LabelANDCO)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagVAN), tag(TagNNP), label(LabelANDCO)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagVAN), tag(TagNNP), label(LabelANDCO), label(LabelANDCO)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagBY), tag(TagNN), anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS)}},
	{Label: LabelNAME, Pattern: []matcher{label(LabelCOMPANY), tag(TagOF), anyTag(TagNN, TagNNP)}},
	{Label: LabelNAME, Pattern: []matcher{label(LabelNAME), label(LabelCOMPANY)}},
	{Label: LabelNAME, Pattern: []matcher{anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelNAME}), tag(TagCC), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelNAME})}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), label(LabelANDCO)}},
	{Label: LabelNAME, Pattern: []matcher{label(LabelNAME), tag(TagCC), tag(TagNN), tag(TagCONTRIBUTORS)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNN), tag(TagNN), anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), tag(TagNN), anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS, TagAUTHDOT)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNN), label(LabelNAME), anyTag(TagCONTRIBUTORS, TagAUTHS)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), tag(TagPN), tag(TagEMAIL)}},
	{Label: LabelNAME, Pattern: []matcher{label(LabelNAME), tag(TagDASH), label(LabelNAME), tag(TagCAPS)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagPARENS), label(LabelNAME), tag(TagPARENS)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagUNI), tag(TagOF), tag(TagCAPS)}},
	{Label: LabelNAMEEMAIL, Pattern: []matcher{label(LabelNAME), tag(TagEMAIL)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{label(LabelYRRANGE), tag(TagNNP), tag(TagNNP)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{label(LabelYRRANGE), tag(TagNNP), tag(TagNNP), tag(TagNNP)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{label(LabelYRRANGE), anyLabel(LabelNAMEEMAIL, LabelCOMPANY)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{label(LabelYRRANGE), anyLabel(LabelNAMEEMAIL, LabelCOMPANY), tag(TagNNP)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{label(LabelYRRANGE), anyLabel(LabelNAMEEMAIL, LabelCOMPANY), tag(TagPARENS)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{tag(TagPARENS), label(LabelYRRANGE), anyLabel(LabelNAMEEMAIL, LabelCOMPANY)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{tag(TagPARENS), label(LabelYRRANGE), anyLabel(LabelNAMEEMAIL, LabelCOMPANY), tag(TagNNP)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{tag(TagPARENS), label(LabelYRRANGE), anyLabel(LabelNAMEEMAIL, LabelCOMPANY), tag(TagNNP), tag(TagPARENS)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{tag(TagPARENS), label(LabelYRRANGE), anyLabel(LabelNAMEEMAIL, LabelCOMPANY), tag(TagPARENS)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{label(LabelYRRANGE), anyLabel(LabelNAMEEMAIL, LabelCOMPANY), tag(TagCC), label(LabelYRRANGE)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{label(LabelNAME), label(LabelYRRANGE)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{label(LabelNAME), label(LabelNAME), label(LabelYRRANGE)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{label(LabelYRRANGE), tag(TagNNP)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{label(LabelYRRANGE), tag(TagNNP), tag(TagCAPS)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{label(LabelYRRANGE), tag(TagNNP), tag(TagLINUX)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{label(LabelYRRANGE), tag(TagNNP), tag(TagCAPS), tag(TagLINUX)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{label(LabelYRRANGE), tag(TagNNP), tag(TagNNP), tag(TagCAPS)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{label(LabelYRRANGE), label(LabelNAME)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{label(LabelYRRANGE), label(LabelNAME), tag(TagCONTRIBUTORS)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{label(LabelYRRANGE), label(LabelNAME), label(LabelNAME)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{label(LabelYRRANGE), label(LabelNAME), label(LabelNAME), tag(TagCONTRIBUTORS)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{label(LabelNAMEYEAR), tag(TagCDS), tag(TagNNP)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{label(LabelNAMEYEAR), tag(TagVAN)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{label(LabelNAMEYEAR), tag(TagEMAIL)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{label(LabelNAMEYEAR), tag(TagURL)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{label(LabelNAMEYEAR), tag(TagVAN), tag(TagEMAIL)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{label(LabelNAMEYEAR), tag(TagVAN), tag(TagURL)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{label(LabelNAMEYEAR), tag(TagEMAIL), tag(TagURL)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{label(LabelNAMEYEAR), tag(TagVAN), tag(TagEMAIL), tag(TagURL)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{label(LabelNAMEYEAR), tag(TagNN), tag(TagDASH), label(LabelNAME)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{label(LabelNAMEYEAR), label(LabelNAMEYEAR)}},
	{Label: LabelNAMEYEAR, Pattern: []matcher{label(LabelNAMEYEAR), label(LabelNAMEYEAR), label(LabelNAMEYEAR)}},
	{Label: LabelANDCO, Pattern: []matcher{tag(TagCC), tag(TagNN), label(LabelCOMPANY)}},
	{Label: LabelANDCO, Pattern: []matcher{tag(TagCC), tag(TagNN), tag(TagURL)}},
	{Label: LabelANDCO, Pattern: []matcher{tag(TagCC), tag(TagNNP), tag(TagNN), tag(TagURL)}},
	{Label: LabelANDCO, Pattern: []matcher{tag(TagCC), tag(TagNNP), tag(TagNNP)}},
	{Label: LabelANDCO, Pattern: []matcher{tag(TagCC), tag(TagNNP), tag(TagNNP), tag(TagNNP)}},
	{Label: LabelANDCO, Pattern: []matcher{tag(TagCC), tag(TagOTH)}},
	{Label: LabelANDCO, Pattern: []matcher{tag(TagCC), tag(TagNN), label(LabelNAME)}},
	{Label: LabelANDCO, Pattern: []matcher{tag(TagCC), tag(TagNN), label(LabelNAME), label(LabelNAME)}},
	{Label: LabelANDCO, Pattern: []matcher{tag(TagCC), anyTagOrLabel([]PosTag{TagCAPS}, []TreeLabel{LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR})}},
	{Label: LabelANDCO, Pattern: []matcher{tag(TagCC), anyTagOrLabel([]PosTag{TagCAPS}, []TreeLabel{LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR}), anyTagOrLabel([]PosTag{TagCAPS}, []TreeLabel{LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR})}},
	{Label: LabelANDCO, Pattern: []matcher{tag(TagCC), tag(TagNN), tag(TagNNP)}},
	{Label: LabelANDCO, Pattern: []matcher{tag(TagCC), tag(TagNN), tag(TagNNP), anyTag(TagUNI, TagCOMP)}},
	{Label: LabelANDCO, Pattern: []matcher{tag(TagCC), tag(TagNN), tag(TagNNP), tag(TagNNP)}},
	{Label: LabelANDCO, Pattern: []matcher{tag(TagCC), tag(TagNN), tag(TagNNP), tag(TagNNP), anyTag(TagUNI, TagCOMP)}},
	{Label: LabelANDCO, Pattern: []matcher{tag(TagCC), tag(TagNNP), tag(TagNNP), anyTag(TagUNI, TagCOMP)}},
	{Label: LabelANDCO, Pattern: []matcher{tag(TagCC), tag(TagNNP), tag(TagNNP), tag(TagNNP), anyTag(TagUNI, TagCOMP)}},
	{Label: LabelANDCO, Pattern: []matcher{tag(TagCC), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), anyTag(TagUNI, TagCOMP)}},
	{Label: LabelANDCO, Pattern: []matcher{tag(TagCC), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR)}},
	{Label: LabelANDCO, Pattern: []matcher{tag(TagCC), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), anyTag(TagUNI, TagCOMP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagCOMP), tag(TagNN), tag(TagNNP), tag(TagNNP), tag(TagCOMP), tag(TagNNP), tag(TagCOMP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagCOMP), tag(TagNN), tag(TagNNP), tag(TagNNP), tag(TagCOMP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), tag(TagNNP), tag(TagVAN), tag(TagNNP), tag(TagOF), tag(TagNNP), tag(TagCC), tag(TagCOMP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagCOMP), label(LabelDASHCAPS)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagCOMP), label(LabelDASHCAPS), label(LabelDASHCAPS)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagCOMP), label(LabelDASHCAPS), label(LabelDASHCAPS), label(LabelDASHCAPS)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagCOMP), tag(TagMAINT), tag(TagNNP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagCOMP), tag(TagMAINT), tag(TagNNP), tag(TagNNP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNN), tag(TagNNP), tag(TagOF), tag(TagNN), tag(TagUNI), tag(TagOF), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNN), tag(TagNNP), tag(TagOF), tag(TagNN), tag(TagUNI), tag(TagOF), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL), tag(TagCOMP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagBY), tag(TagNN), tag(TagNNP), tag(TagOF), tag(TagNN), tag(TagUNI), tag(TagOF), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagBY), tag(TagNN), tag(TagNNP), tag(TagOF), tag(TagNN), tag(TagUNI), tag(TagOF), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL), tag(TagCOMP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{anyTag(TagNN, TagNNP), tag(TagNNP), tag(TagCOMP), tag(TagCOMP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), tag(TagCOMP), tag(TagEMAIL)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), tag(TagNNP), tag(TagCOMP), tag(TagEMAIL)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagCOMP), tag(TagNN), tag(TagNNP), tag(TagCOMP), tag(TagNNP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagCOMP), tag(TagCOMP), tag(TagNNP), tag(TagNNP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagCOMP), tag(TagCOMP), tag(TagNNP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagCOMP), anyTag(TagCD, TagCDS), tag(TagCOMP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), tag(TagIN), tag(TagNN), tag(TagNNP), tag(TagNNP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), tag(TagIN), tag(TagNN), tag(TagNNP), tag(TagNNP), tag(TagCOMP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), tag(TagIN), tag(TagNN), tag(TagNNP), tag(TagNNP), tag(TagNNP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), tag(TagIN), tag(TagNN), tag(TagNNP), tag(TagNNP), tag(TagNNP), tag(TagCOMP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), tag(TagNNP), tag(TagCC), tag(TagNNP), tag(TagCOMP), tag(TagNNP), tag(TagCAPS)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), tag(TagCC), tag(TagNNP), tag(TagCOMP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), tag(TagCC), tag(TagNNP), tag(TagCOMP), tag(TagNNP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNN), tag(TagNNP), tag(TagCOMP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNN), tag(TagNN), tag(TagNNP), tag(TagCOMP)}},
	{Label: LabelNAME, Pattern: []matcher{tag(TagNNP), tag(TagNNP), tag(TagCOMP), tag(TagCONTRIBUTORS), anyTag(TagURL, TagURL2)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), tag(TagNN), tag(TagNNP), tag(TagNNP), tag(TagCOMP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), tag(TagNN), tag(TagNNP), tag(TagNNP), tag(TagCOMP), tag(TagCOMP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY}), tag(TagOF), tag(TagNNP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY}), tag(TagOF), tag(TagNNP), tag(TagNNP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{anyTag(TagNNP, TagCAPS), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY})}},
	{Label: LabelCOMPANY, Pattern: []matcher{anyTag(TagNNP, TagCAPS), anyTag(TagNNP, TagCAPS), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY})}},
	{Label: LabelCOMPANY, Pattern: []matcher{anyTag(TagNNP, TagCAPS), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY}), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY})}},
	{Label: LabelCOMPANY, Pattern: []matcher{anyTag(TagNNP, TagCAPS), anyTag(TagNNP, TagCAPS), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY}), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY})}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagUNI), tag(TagOF), label(LabelCOMPANY), tag(TagCAPS)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagUNI), tag(TagOF), label(LabelCOMPANY)}},
	{Label: LabelCOMPANY, Pattern: []matcher{anyTag(TagUNI, TagNNP), anyTag(TagVAN, TagOF), tag(TagNNP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{anyTag(TagUNI, TagNNP), anyTag(TagVAN, TagOF), tag(TagNNP), tag(TagUNI)}},
	{Label: LabelCOMPANY, Pattern: []matcher{anyTag(TagUNI, TagNNP), anyTag(TagVAN, TagOF), tag(TagNNP), tag(TagNNP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{anyTag(TagUNI, TagNNP), anyTag(TagVAN, TagOF), tag(TagNNP), tag(TagNNP), tag(TagUNI)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), tag(TagUNI)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), tag(TagNNP), tag(TagUNI)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagUNI), tag(TagOF), anyTag(TagNN, TagNNP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{label(LabelCOMPANY), tag(TagCC), label(LabelCOMPANY)}},
	{Label: LabelCOMPANY, Pattern: []matcher{label(LabelCOMPANY), label(LabelCOMPANY), tag(TagCAPS)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagUNI), tag(TagOF), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY})}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagCAPS), tag(TagNN), tag(TagCOMP), tag(TagNN), tag(TagNNP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagCAPS), tag(TagNN), tag(TagCOMP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagCOMP), tag(TagCONTRIBUTORS)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), tag(TagJUNK), tag(TagNN), tag(TagCOMP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagCOMP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagCOMP), tag(TagCOMP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagLINUX), tag(TagCOMP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagLINUX), tag(TagCOMP), tag(TagCOMP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{label(LabelCOMPANY), tag(TagCC), tag(TagNN), label(LabelCOMPANY)}},
	{Label: LabelCOMPANY, Pattern: []matcher{label(LabelCOMPANY), tag(TagCC), tag(TagNNP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{label(LabelCOMPANY), tag(TagCC), tag(TagNNP), tag(TagNNP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{label(LabelCOMPANY), tag(TagDASH), anyTag(TagNNP, TagNN)}},
	{Label: LabelCOMPANY, Pattern: []matcher{label(LabelCOMPANY), tag(TagDASH), anyTag(TagNNP, TagNN), tag(TagEMAIL)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), tag(TagIN), label(LabelCOMPANY)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), tag(TagIN), tag(TagNN), label(LabelCOMPANY)}},
	{Label: LabelCOMPANY, Pattern: []matcher{label(LabelCOMPANY), tag(TagOF), label(LabelCOMPANY), label(LabelNAME)}},
	{Label: LabelCOMPANY, Pattern: []matcher{label(LabelCOMPANY), tag(TagNNP), tag(TagOF), label(LabelCOMPANY)}},
	{Label: LabelCOMPANY, Pattern: []matcher{label(LabelCOMPANY), tag(TagCAPS), tag(TagDASH), label(LabelCOMPANY), label(LabelNAME)}},
	{Label: LabelCOMPANY, Pattern: []matcher{label(LabelCOMPANY), tag(TagOF), tag(TagNNP), tag(TagCC), label(LabelCOMPANY)}},
	{Label: LabelCOMPANY, Pattern: []matcher{label(LabelCOMPANY), tag(TagNNP), tag(TagVAN), label(LabelCOMPANY)}},
	{Label: LabelCOMPANY, Pattern: []matcher{anyLabel(LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), tag(TagOF), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY})}},
	{Label: LabelCOMPANY, Pattern: []matcher{anyLabel(LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), tag(TagOF), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY}), tag(TagNNP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{anyLabel(LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), tag(TagOF), tag(TagNN), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY})}},
	{Label: LabelCOMPANY, Pattern: []matcher{anyLabel(LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), tag(TagOF), tag(TagNN), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY}), tag(TagNNP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), tag(TagOF), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY})}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), tag(TagOF), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY}), tag(TagNNP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), tag(TagOF), tag(TagNN), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY})}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY}), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY})}},
	{Label: LabelCOMPANY, Pattern: []matcher{anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL), tag(TagCC), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNN), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL), tag(TagCC), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL)}},
	{Label: LabelCOMPANY, Pattern: []matcher{anyTagOrLabel([]PosTag{TagCOMP, TagNNP}, []TreeLabel{LabelCOMPANY}), tag(TagNN), label(LabelCOMPANY), tag(TagNNP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{anyTagOrLabel([]PosTag{TagCOMP, TagNNP}, []TreeLabel{LabelCOMPANY}), tag(TagNN), label(LabelCOMPANY), tag(TagNNP), tag(TagNNP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagBY), tag(TagNN), label(LabelCOMPANY), tag(TagOF), tag(TagNNP), tag(TagCC), label(LabelCOMPANY)}},
	{Label: LabelCOMPANY, Pattern: []matcher{label(LabelCOMPANY), tag(TagCC), anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNN), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY}), tag(TagOF), tag(TagMAINT)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNN), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY})}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNN), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY}), tag(TagAUTHS)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNN), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY}), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY})}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNN), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY}), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY}), tag(TagAUTHS)}},
	{Label: LabelCOMPANY, Pattern: []matcher{anyTag(TagURL, TagURL2)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), anyTag(TagURL, TagURL2)}},
	{Label: LabelCOMPANY, Pattern: []matcher{label(LabelCOMPANY), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY})}},
	{Label: LabelCOMPANY, Pattern: []matcher{label(LabelCOMPANY), tag(TagOF), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY})}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagUNI), label(LabelCOMPANY)}},
	{Label: LabelCOMPANY, Pattern: []matcher{anyLabel(LabelNAME, LabelNAMEEMAIL), tag(TagCONTRIBUTORS)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), tag(TagCONTRIBUTORS)}},
	{Label: LabelCOMPANY, Pattern: []matcher{anyLabel(LabelNAME, LabelNAMEEMAIL), anyLabel(LabelNAME, LabelNAMEEMAIL), tag(TagCONTRIBUTORS)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), tag(TagNNP), tag(TagCONTRIBUTORS)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagPN), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY})}},
	{Label: LabelCOMPANY, Pattern: []matcher{anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), label(LabelANDCO)}},
	{Label: LabelCOMPANY, Pattern: []matcher{anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), label(LabelANDCO), label(LabelANDCO)}},
	{Label: LabelCOMPANY, Pattern: []matcher{anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), tag(TagPARENS), label(LabelANDCO)}},
	{Label: LabelCOMPANY, Pattern: []matcher{anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), tag(TagPARENS), label(LabelANDCO), label(LabelANDCO)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), label(LabelCOMPANY), anyTag(TagNN, TagNNP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), label(LabelCOMPANY), anyTag(TagNN, TagNNP), label(LabelNAME)}},
	{Label: LabelCOMPANY, Pattern: []matcher{label(LabelCOMPANY), tag(TagCC), tag(TagOTH)}},
	{Label: LabelCOMPANY, Pattern: []matcher{label(LabelNAMEYEAR), tag(TagCC), tag(TagOTH)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), label(LabelCOMPANY), tag(TagCC), tag(TagCOMP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), label(LabelCOMPANY), label(LabelNAME)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNN), tag(TagNN), label(LabelCOMPANY)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNN), tag(TagNN), tag(TagNN), label(LabelCOMPANY)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNN), tag(TagNNP), label(LabelCOMPANY)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), tag(TagIN), tag(TagNN), label(LabelCOMPANY)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), tag(TagIN), tag(TagNN), tag(TagNN), label(LabelCOMPANY)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagOU), label(LabelCOMPANY)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagCAPS), label(LabelCOMPANY)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagCAPS), tag(TagCAPS), label(LabelCOMPANY)}},
	{Label: LabelCOMPANY, Pattern: []matcher{label(LabelCOMPANY), tag(TagEMAIL)}},
	{Label: LabelCOMPANY, Pattern: []matcher{label(LabelCOMPANY), tag(TagEMAIL), tag(TagEMAIL)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagBY), tag(TagNN), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY})}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagBY), tag(TagNN), tag(TagNN), anyTagOrLabel([]PosTag{TagCOMP}, []TreeLabel{LabelCOMPANY})}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNN), tag(TagNNP), tag(TagOF), tag(TagNN), tag(TagUNI), tag(TagOF), label(LabelCOMPANY)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNN), tag(TagNNP), tag(TagOF), tag(TagNN), tag(TagUNI), tag(TagOF), label(LabelCOMPANY), label(LabelCOMPANY)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagUNI), tag(TagUNI), tag(TagNNP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{label(LabelCOMPANY), label(LabelCOMPANY)}},
	{Label: LabelCOMPANY, Pattern: []matcher{label(LabelCOMPANY), label(LabelCOMPANY), label(LabelCOMPANY)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagCC), tag(TagIN), label(LabelCOMPANY)}},
	{Label: LabelCOMPANY, Pattern: []matcher{label(LabelCOMPANY), tag(TagCC), tag(TagNN), tag(TagCONTRIBUTORS)}},
	{Label: LabelCOMPANY, Pattern: []matcher{label(LabelNAME), tag(TagCC), tag(TagNN), label(LabelCOMPANY)}},
	{Label: LabelCOMPANY, Pattern: []matcher{label(LabelNAME), tag(TagCC), tag(TagNN), label(LabelCOMPANY), label(LabelCOMPANY)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNN), label(LabelCOMPANY), tag(TagCC), tag(TagNN), label(LabelCOMPANY)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagBY), label(LabelCOMPANY), tag(TagOF), label(LabelCOMPANY)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNNP), label(LabelCOMPANY), tag(TagOF), label(LabelCOMPANY), tag(TagNNP)}},
	{Label: LabelCOMPANY, Pattern: []matcher{tag(TagNN), tag(TagCAPS), tag(TagNN), tag(TagMAINT), label(LabelCOMPANY)}},
	{Label: LabelCOMPANY, Pattern: []matcher{label(LabelCOMPANY), tag(TagMAINT)}},
	{Label: LabelINITIALDEV, Pattern: []matcher{tag(TagNN), tag(TagNN), tag(TagMAINT)}},
	{Label: LabelINITIALDEV, Pattern: []matcher{tag(TagBY), tag(TagNN), tag(TagNN), tag(TagMAINT)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelNAME), tag(TagCOPY), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagBY), tag(TagEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagBY), tag(TagEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), anyLabel(LabelCOMPANY, LabelNAME), tag(TagEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), anyLabel(LabelCOMPANY, LabelNAME), tag(TagEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), anyLabel(LabelCOMPANY, LabelNAME), tag(TagBY), tag(TagEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagBY), tag(TagEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), anyLabel(LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), tag(TagCAPS), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), anyLabel(LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), tag(TagCAPS), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNN), label(LabelNAMEYEAR)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagNN), label(LabelNAMEYEAR)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelNAMEYEAR), tag(TagIN), tag(TagNN), tag(TagNN), tag(TagNNP)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelNAMEYEAR), tag(TagIN), tag(TagNN), tag(TagNN), tag(TagNNP)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagNNP), tag(TagCOPY), label(LabelNAMEYEAR), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagNNP), tag(TagCOPY), tag(TagCOPY), label(LabelNAMEYEAR), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelNAMEYEAR), anyTag(TagNN, TagNNP), tag(TagAUTHS)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelNAMEYEAR), anyTag(TagNN, TagNNP), tag(TagAUTHS)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelNAMEYEAR), anyTag(TagNN, TagNNP), anyTag(TagNN, TagNNP), tag(TagAUTHS)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelNAME), tag(TagCC), tag(TagNN), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelNAME), tag(TagCC), tag(TagNN), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelNAMEYEAR), anyTag(TagNN, TagDASH), tag(TagEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelNAMEYEAR), anyTag(TagNN, TagDASH), tag(TagEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelNAMEYEAR), tag(TagNN), tag(TagCAPS), tag(TagNN), tag(TagOF), label(LabelCOMPANY), label(LabelNAME)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelNAMEYEAR), tag(TagNN), tag(TagCAPS), tag(TagNN), tag(TagOF), label(LabelCOMPANY), label(LabelNAME)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), anyLabel(LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), anyLabel(LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), anyLabel(LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), anyLabel(LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), anyLabel(LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), anyLabel(LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), anyLabel(LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), anyLabel(LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), tag(TagNN), tag(TagUNI), label(LabelNAME)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), anyTag(TagCAPS, TagNNP), tag(TagCC), tag(TagNN), tag(TagCOPY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), anyTag(TagCAPS, TagNNP), tag(TagCC), tag(TagNN), tag(TagCOPY), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), anyTag(TagCAPS, TagNNP), anyTag(TagCAPS, TagNNP), tag(TagCC), tag(TagNN), tag(TagCOPY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), anyTag(TagCAPS, TagNNP), tag(TagCC), tag(TagNN), tag(TagCOPY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), anyTag(TagBY, TagTO), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), anyTag(TagBY, TagTO), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), anyTag(TagBY, TagTO), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelCOMPANY, LabelNAME, LabelNAMEEMAIL})}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagBY), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelCOMPANY, LabelNAME, LabelNAMEEMAIL})}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagNN), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelCOMPANY, LabelNAME, LabelNAMEEMAIL})}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagBY), tag(TagNN), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelCOMPANY, LabelNAME, LabelNAMEEMAIL})}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelCOMPANY, LabelNAME, LabelNAMEEMAIL}), tag(TagEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelCOMPANY, LabelNAME, LabelNAMEEMAIL}), anyTag(TagAUTHDOT, TagMAINT)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelCOMPANY, LabelNAME, LabelNAMEEMAIL})}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagBY), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelCOMPANY, LabelNAME, LabelNAMEEMAIL})}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagNN), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelCOMPANY, LabelNAME, LabelNAMEEMAIL})}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagNNP), tag(TagCOPY), label(LabelYRRANGE), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelCOMPANY, LabelNAME, LabelNAMEEMAIL})}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelCOMPANY, LabelNAME, LabelNAMEEMAIL}), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelCOMPANY, LabelNAME, LabelNAMEEMAIL})}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNN), label(LabelNAME), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagNN), label(LabelNAME), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagBY), anyLabel(LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagBY), anyLabel(LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagBY), anyLabel(LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), anyLabel(LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagCOMP)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagCOMP), tag(TagCOMP)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagMIT)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagNN), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagNN), tag(TagNN), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagNN), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagNN), tag(TagNNP), tag(TagNN), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNN), tag(TagCOMP)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNN), tag(TagCOMP), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNN), tag(TagNN), tag(TagCOMP)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNN), tag(TagNN), tag(TagCOMP), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagNN), tag(TagCOMP)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagNN), tag(TagCOMP), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNN), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNN), label(LabelCOMPANY), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNN), tag(TagNN), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNN), tag(TagNN), label(LabelCOMPANY), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelYRRANGE}), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelYRRANGE, LabelNAME})}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelYRRANGE}), anyTag(TagCAPS, TagBY), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelYRRANGE, LabelNAME})}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelYRRANGE}), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelYRRANGE, LabelNAME}), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelYRRANGE, LabelNAME})}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelYRRANGE}), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelYRRANGE, LabelNAME})}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagNNP)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagNNP), tag(TagNNP)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagNNP), tag(TagNNP), tag(TagNNP)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagYRPLUS), anyLabel(LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagYRPLUS), anyLabel(LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), anyLabel(LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagCOMP), tag(TagNNP), tag(TagNN)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagNN), tag(TagNNP), label(LabelANDCO)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagNN), anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagDASH), tag(TagNN)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagDASH), tag(TagNN)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagNN), tag(TagNNP), tag(TagNN)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagNN), tag(TagNNP), tag(TagNN)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{label(LabelCOPYRIGHT), label(LabelCOMPANY), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{label(LabelCOPYRIGHT), label(LabelCOMPANY), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagBY), tag(TagNN), tag(TagNN), label(LabelNAME)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagBY), tag(TagNN), tag(TagNN), label(LabelNAME)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagBY), tag(TagNN)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagNN), tag(TagCOPY), label(LabelYRRANGE), tag(TagBY), tag(TagNN)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagBY), tag(TagNN)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagBY), tag(TagNN), tag(TagNNP)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagNN), tag(TagCOPY), label(LabelYRRANGE), tag(TagBY), tag(TagNN)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagNN), tag(TagCOPY), label(LabelYRRANGE), tag(TagBY), tag(TagNN), tag(TagNNP)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagNN), label(LabelYRRANGE), tag(TagBY), label(LabelNAME)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagNN), label(LabelYRRANGE), tag(TagBY), label(LabelNAME)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagDASH), anyLabel(LabelNAMEEMAIL, LabelNAME)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagDASH), tag(TagBY), anyLabel(LabelNAMEEMAIL, LabelNAME)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagDASH), anyLabel(LabelNAMEEMAIL, LabelNAME)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagNNP), label(LabelNAME)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagNNP), label(LabelNAME)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagCOMP), anyTag(TagAUTHS, TagCONTRIBUTORS)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagCOMP), anyTag(TagAUTHS, TagCONTRIBUTORS)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagCOMP)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagCOMP)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagMIXEDCAP)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagCAPS), tag(TagMIXEDCAP)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{label(LabelNAME), tag(TagCOPY), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagCAPS), tag(TagEMAIL)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagCAPS), tag(TagCAPS)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagCAPS), tag(TagCAPS), tag(TagCAPS)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagCAPS), tag(TagCAPS), tag(TagCAPS), tag(TagCAPS)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), anyTag(TagNN, TagCAPS), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), anyTag(TagNN, TagCAPS), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagPN)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagPN)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), anyTag(TagNN, TagCAPS), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), anyTag(TagNN, TagCAPS), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), anyTag(TagNN, TagCAPS)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), anyTag(TagNN, TagCAPS)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagDASH), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagDASH), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), anyTag(TagNN, TagCAPS), tag(TagDASH), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelNAME, LabelCOMPANY}), label(LabelCOPYRIGHT2)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagBY), anyTag(TagNN, TagNNP)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagBY), anyTag(TagNN, TagNNP)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{label(LabelCOPYRIGHT2), tag(TagJUNK), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{label(LabelNAMECOPY), label(LabelCOPYRIGHT2)}},
	{Label: LabelNAMECOPY, Pattern: []matcher{tag(TagNNP), tag(TagCOPY)}},
	{Label: LabelCOPYRIGHT2, Pattern: []matcher{label(LabelNAMECOPY), label(LabelYRRANGE)}},
	{Label: LabelNAMECAPS, Pattern: []matcher{tag(TagCAPS)}},
	{Label: LabelNAMECAPS, Pattern: []matcher{tag(TagCAPS), tag(TagCAPS)}},
	{Label: LabelNAMECAPS, Pattern: []matcher{tag(TagCAPS), tag(TagCAPS), tag(TagCAPS)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNOTICE), label(LabelNAMEYEAR)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNOTICE), label(LabelNAMEYEAR), label(LabelALLRIGHTRESERVED)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelNAMECOPY), tag(TagNNP)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), label(LabelCOPYRIGHT)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), label(LabelCOPYRIGHT)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagCONTRIBUTORS), tag(TagOTH)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagCONTRIBUTORS), anyTag(TagCAPS, TagAUTHS, TagAUTH), tag(TagJUNK)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagCONTRIBUTORS), tag(TagNN), anyTag(TagCAPS, TagAUTHS, TagAUTH), tag(TagJUNK)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagCONTRIBUTORS), tag(TagIN), anyTag(TagCAPS, TagAUTHS, TagAUTH), tag(TagJUNK)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagCONTRIBUTORS), tag(TagNN), tag(TagIN), tag(TagNN), anyTag(TagCAPS, TagAUTHS, TagAUTH), tag(TagJUNK)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), tag(TagCOPY), label(LabelYRRANGE), label(LabelALLRIGHTRESERVED)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), label(LabelALLRIGHTRESERVED)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagNN), tag(TagNNP)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagCONTRIBUTORS), tag(TagTO), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagCONTRIBUTORS), tag(TagTO), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagCONTRIBUTORS)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagCONTRIBUTORS), label(LabelALLRIGHTRESERVED)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagCONTRIBUTORS)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagCONTRIBUTORS), label(LabelALLRIGHTRESERVED)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), anyTag(TagLINUX, TagNN), tag(TagNNP)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), anyTag(TagLINUX, TagNN), tag(TagNNP)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNN), anyTag(TagCONTRIBUTORS, TagCOMMIT, TagAUTHS, TagMAINT), tag(TagCOPY), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagNN), anyTag(TagCONTRIBUTORS, TagCOMMIT, TagAUTHS, TagMAINT), tag(TagCOPY), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagNN)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagNN)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagNN), tag(TagNN)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagNN), anyTag(TagCONTRIBUTORS, TagCOMMIT, TagAUTHS, TagMAINT)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagNN), tag(TagEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagNN), label(LabelALLRIGHTRESERVED)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagNN), anyTag(TagCONTRIBUTORS, TagCOMMIT, TagAUTHS, TagMAINT)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagNN), tag(TagNN)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagNN), anyTag(TagCONTRIBUTORS, TagCOMMIT, TagAUTHS, TagMAINT), tag(TagEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagNN), anyTag(TagCONTRIBUTORS, TagCOMMIT, TagAUTHS, TagMAINT), label(LabelALLRIGHTRESERVED)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNN), tag(TagEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNN), tag(TagEMAIL), label(LabelALLRIGHTRESERVED)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagNN), tag(TagEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagNN), tag(TagEMAIL), label(LabelALLRIGHTRESERVED)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOMPANY), label(LabelALLRIGHTRESERVED), label(LabelCOPYRIGHT)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagCOPY), tag(TagNNP)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagCAPS), anyTag(TagNN, TagLINUX), tag(TagNNP)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelNAMEEMAIL), label(LabelYRRANGE), tag(TagAUTH2), tag(TagBY), label(LabelNAMEEMAIL), tag(TagCOPY), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelYRRANGE), tag(TagAUTH), label(LabelNAMEEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT2), tag(TagBY), anyLabel(LabelNAMEYEAR, LabelNAMEEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT2), tag(TagBY), anyLabel(LabelNAMEYEAR, LabelNAMEEMAIL), anyLabel(LabelNAMEYEAR, LabelNAMEEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT2), tag(TagBY), anyLabel(LabelNAMEYEAR, LabelNAMEEMAIL), tag(TagBY), anyLabel(LabelNAMEYEAR, LabelNAMEEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT2), tag(TagMAINT), tag(TagOF), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{anyLabel(LabelCOPYRIGHT, LabelCOPYRIGHT2), anyTag(TagNN, TagNNP, TagCONTRIBUTORS), label(LabelALLRIGHTRESERVED)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{anyLabel(LabelCOPYRIGHT, LabelCOPYRIGHT2), anyTag(TagNN, TagNNP, TagCONTRIBUTORS), anyTag(TagNN, TagNNP, TagCONTRIBUTORS), label(LabelALLRIGHTRESERVED)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), tag(TagNN), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagBY), tag(TagNN), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagBY), tag(TagNN), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOMPANY), tag(TagNN), label(LabelNAME), label(LabelCOPYRIGHT2)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT2), tag(TagCOMP), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT2), tag(TagNNP), tag(TagCC), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT2), anyLabel(LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT2), anyLabel(LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), anyLabel(LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT2), label(LabelALLRIGHTRESERVED), tag(TagBY), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), label(LabelNAME)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagNNP), tag(TagNN), tag(TagCOPY), tag(TagNNP)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagNNP), tag(TagCOPY), tag(TagNNP)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNN), tag(TagCOPY), label(LabelYRRANGE), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNN), tag(TagCOPY), label(LabelYRRANGE), label(LabelCOMPANY), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{anyLabel(LabelCOPYRIGHT, LabelCOPYRIGHT2), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{anyLabel(LabelCOPYRIGHT, LabelCOPYRIGHT2), label(LabelCOMPANY), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{anyLabel(LabelCOPYRIGHT, LabelCOPYRIGHT2), label(LabelCOMPANY), label(LabelNAME)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{anyLabel(LabelCOPYRIGHT, LabelCOPYRIGHT2), label(LabelCOMPANY), label(LabelCOMPANY), label(LabelNAME)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelANDCO), label(LabelCOPYRIGHT2)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelANDCO), tag(TagNN), label(LabelCOPYRIGHT2)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagPORTIONS), label(LabelCOPYRIGHT), tag(TagNN), tag(TagNNP)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagPORTIONS), label(LabelCOPYRIGHT), tag(TagNN), tag(TagNNP), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagPORTIONS), anyLabel(LabelCOPYRIGHT, LabelCOPYRIGHT2)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNOTICE), label(LabelCOMPANY), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT2), label(LabelANDCO)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagPN), label(LabelYRRANGE), tag(TagBY), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), tag(TagMIXEDCAP)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), tag(TagDASH), label(LabelNAME)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), tag(TagNN), label(LabelNAME)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT2), tag(TagEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), tag(TagCAPS), label(LabelNAMEEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), tag(TagNNP), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT2), tag(TagDASH), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), tag(TagNNP), label(LabelNAMEYEAR)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagYRPLUS), label(LabelCOPYRIGHT)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), tag(TagEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), anyLabel(LabelNAME, LabelNAMEYEAR)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), anyLabel(LabelNAME, LabelNAMEYEAR), anyLabel(LabelNAME, LabelNAMEYEAR)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagBY), anyTag(TagNNP, TagCAPS)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNN), tag(TagOF), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagPN)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagCAPS), tag(TagNN), tag(TagEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagCAPS)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagBY), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagBY), tag(TagNN), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagBY), tag(TagNNP), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagBY), tag(TagNN), tag(TagNNP), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelYRRANGE), tag(TagBY), tag(TagNN), label(LabelNAME)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagPN), label(LabelYRRANGE), tag(TagBY), tag(TagNN), label(LabelNAME)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT2), anyTagOrLabel([]PosTag{TagCAPS}, []TreeLabel{LabelCOMPANY}), anyTag(TagNN, TagLINUX), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT2), tag(TagCAPS), anyTag(TagCD, TagCDS), label(LabelCOMPANY), label(LabelNAME)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT2), tag(TagCAPS)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT2), tag(TagCAPS), tag(TagCAPS)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagPN), label(LabelYRRANGE), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT2), tag(TagUNI), tag(TagOF), tag(TagCAPS)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelNAMECAPS), label(LabelNAMEYEAR)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNN), tag(TagCOPY), anyLabel(LabelCOPYRIGHT, LabelNAMECAPS)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT2), tag(TagBY), label(LabelNAMECAPS)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT2), tag(TagNN), tag(TagNNP)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), label(LabelANDCO)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelNAMEEMAIL), label(LabelCOPYRIGHT2)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagPN)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagOF), tag(TagPN)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT2), tag(TagCOPY), tag(TagNN), tag(TagNNP), label(LabelALLRIGHTRESERVED)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), tag(TagOF), label(LabelCOMPANY), label(LabelNAME), label(LabelNAME), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), tag(TagOF), tag(TagNN), tag(TagUNI), label(LabelALLRIGHTRESERVED)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), tag(TagOF), tag(TagNN), tag(TagUNI), anyTag(TagNN, TagOF), label(LabelALLRIGHTRESERVED)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), tag(TagOF), tag(TagNN), tag(TagUNI), tag(TagNNP), label(LabelALLRIGHTRESERVED)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), tag(TagOF), tag(TagNN), tag(TagUNI), anyTag(TagNN, TagOF), tag(TagNNP), label(LabelALLRIGHTRESERVED)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNNP), tag(TagNN), tag(TagOF), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagNNP), tag(TagNN), tag(TagOF), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOMPANY), label(LabelALLRIGHTRESERVED), label(LabelCOPYRIGHT2)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), tag(TagNN), tag(TagNN), anyTag(TagNN, TagNNP), tag(TagBY), tag(TagNN), label(LabelNAME), label(LabelALLRIGHTRESERVED)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT2), tag(TagBY), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), label(LabelNAMECAPS), label(LabelANDCO)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT2), tag(TagNN), label(LabelNAMECAPS), tag(TagNN), label(LabelNAME)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelNAMEYEAR), tag(TagAUTHS)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelNAMEYEAR), tag(TagAUTHS)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNN), tag(TagNNP), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNN), tag(TagNN), tag(TagNNP), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), tag(TagNN), tag(TagNNP), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), tag(TagCC), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelANDCO)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), tag(TagNN), tag(TagAUTHDOT)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOMPANY), tag(TagCOPY), tag(TagCOPY), label(LabelALLRIGHTRESERVED), tag(TagBY), label(LabelNAME)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOMPANY), tag(TagCOPY), tag(TagCOPY), label(LabelALLRIGHTRESERVED)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOMPANY), tag(TagCOPY), tag(TagCOPY), label(LabelALLRIGHTRESERVED), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelNAMECOPY), anyTagOrLabel([]PosTag{TagCOPY}, []TreeLabel{LabelNAMECAPS}), label(LabelALLRIGHTRESERVED)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelALLRIGHTRESERVED), anyLabel(LabelNAME, LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelALLRIGHTRESERVED), tag(TagBY), anyLabel(LabelNAME, LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelALLRIGHTRESERVED), anyLabel(LabelNAME, LabelCOMPANY), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelALLRIGHTRESERVED), tag(TagBY), label(LabelNAME), anyLabel(LabelNAME, LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelALLRIGHTRESERVED), anyLabel(LabelNAME, LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelALLRIGHTRESERVED), tag(TagBY), anyLabel(LabelNAME, LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelALLRIGHTRESERVED), anyLabel(LabelNAME, LabelNAMEYEAR, LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelALLRIGHTRESERVED), anyLabel(LabelNAME, LabelNAMEYEAR, LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelALLRIGHTRESERVED), label(LabelDASHCAPS), tag(TagNNP)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagDASH), label(LabelALLRIGHTRESERVED), label(LabelDASHCAPS), tag(TagNNP)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelALLRIGHTRESERVED), label(LabelDASHCAPS), tag(TagNNP)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelALLRIGHTRESERVED), tag(TagBY), anyLabel(LabelNAME, LabelCOMPANY), tag(TagNN), label(LabelNAME)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelALLRIGHTRESERVED), tag(TagBY), anyLabel(LabelNAME, LabelCOMPANY), tag(TagNN), label(LabelNAME)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelALLRIGHTRESERVED), tag(TagBY), anyLabel(LabelNAME, LabelNAMEYEAR, LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelALLRIGHTRESERVED), tag(TagBY), anyLabel(LabelNAME, LabelNAMEYEAR, LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelALLRIGHTRESERVED), tag(TagNNP), label(LabelCOMPANY), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelALLRIGHTRESERVED), tag(TagNNP), label(LabelCOMPANY), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNNP), label(LabelNAMEYEAR)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNNP), label(LabelNAMEYEAR), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), anyTag(TagCD, TagCDS), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT2), tag(TagNN), tag(TagNN), tag(TagEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOMPANY), label(LabelYRRANGE), tag(TagCOPY), label(LabelALLRIGHTRESERVED)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOMPANY), label(LabelYRRANGE), tag(TagCOPY), tag(TagCOPY), label(LabelALLRIGHTRESERVED)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), tag(TagDASH), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagHOLDER), label(LabelNAME)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagHOLDER), tag(TagIS), label(LabelNAMEEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNN), tag(TagCONTRIBUTORS)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagBY), anyTag(TagNN, TagNNP), anyTag(TagNN, TagNNP), anyTag(TagNN, TagNNP), label(LabelNAME)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagBY), tag(TagNN), tag(TagNN), tag(TagAUTHDOT)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagBY), tag(TagNN), tag(TagNN)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagBY), tag(TagNN), tag(TagNN), tag(TagMAINT)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNNP), tag(TagAUTHS)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNNP), tag(TagNNP), tag(TagAUTHS)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNN), tag(TagNNP), tag(TagAUTHS)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), tag(TagMAINT)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagNN), tag(TagAUTHDOT)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), tag(TagNN), label(LabelYRRANGE), tag(TagBY), label(LabelCOMPANY)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagPORTIONS), tag(TagCOPY), tag(TagNN), label(LabelNAME)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagPORTIONS), tag(TagAUTH2), label(LabelINITIALDEV), tag(TagIS), tag(TagCOPY), label(LabelINITIALDEV)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagPORTIONS), tag(TagAUTH2), label(LabelINITIALDEV), tag(TagIS), label(LabelCOPYRIGHT2), label(LabelINITIALDEV)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagPORTIONS), tag(TagAUTH2), label(LabelINITIALDEV), tag(TagIS), tag(TagCOPY), label(LabelYRRANGE), label(LabelINITIALDEV)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagPORTIONS), tag(TagAUTH2), label(LabelINITIALDEV), tag(TagIS), label(LabelCOPYRIGHT2), label(LabelYRRANGE), label(LabelINITIALDEV)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{anyLabel(LabelCOPYRIGHT, LabelCOPYRIGHT2), label(LabelINITIALDEV)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{anyLabel(LabelCOPYRIGHT, LabelCOPYRIGHT2), label(LabelINITIALDEV), label(LabelALLRIGHTRESERVED)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelINITIALDEV)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), label(LabelINITIALDEV)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOMPANY), tag(TagCOPY), label(LabelNAMEYEAR)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOMPANY), tag(TagCOPY), tag(TagCOPY), label(LabelNAMEYEAR)}},
	{Label: LabelNAMEEMAIL, Pattern: []matcher{tag(TagNNP), label(LabelNAMEEMAIL)}},
	{Label: LabelNAMEEMAIL, Pattern: []matcher{tag(TagDASH), label(LabelNAMEEMAIL)}},
	{Label: LabelNAMEEMAIL, Pattern: []matcher{tag(TagDASH), label(LabelNAMEEMAIL), tag(TagNN)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT2), tag(TagFOLLOWING), tag(TagAUTHS), label(LabelNAMEEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT2), tag(TagFOLLOWING), tag(TagAUTHS), label(LabelNAMEEMAIL), label(LabelNAMEEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagIS), tag(TagHELD), tag(TagBY), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelNAME, LabelCOMPANY, LabelNAMEEMAIL})}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagIS), tag(TagHELD), tag(TagBY), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelNAME, LabelCOMPANY, LabelNAMEEMAIL}), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelNAME, LabelCOMPANY, LabelNAMEEMAIL})}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagBY, TagMAINT), label(LabelNAMEEMAIL)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagBY, TagMAINT), label(LabelNAMEEMAIL), label(LabelYRRANGE)}},
	{Label: LabelAUTHOR, Pattern: []matcher{tag(TagSPDXCONTRIB), anyTagOrLabel([]PosTag{TagEMAIL}, []TreeLabel{LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR})}},
	{Label: LabelAUTHOR, Pattern: []matcher{tag(TagSPDXCONTRIB), anyTagOrLabel([]PosTag{TagEMAIL}, []TreeLabel{LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR}), anyTagOrLabel([]PosTag{TagEMAIL, TagNN}, []TreeLabel{LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR})}},
	{Label: LabelAUTHOR, Pattern: []matcher{tag(TagAUTH2), tag(TagBY), label(LabelCOMPANY), tag(TagNNP)}},
	{Label: LabelAUTHOR, Pattern: []matcher{tag(TagAUTH2), tag(TagAUTH2), tag(TagBY), label(LabelCOMPANY), tag(TagNNP)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), tag(TagEMAIL)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), tag(TagNN), tag(TagEMAIL)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), anyLabel(LabelCOMPANY, LabelNAME), tag(TagEMAIL)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), tag(TagNN), anyLabel(LabelCOMPANY, LabelNAME), tag(TagEMAIL)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), label(LabelYRRANGE), tag(TagEMAIL)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), tag(TagBY), tag(TagEMAIL)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), anyLabel(LabelCOMPANY, LabelNAME), tag(TagBY), tag(TagEMAIL)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), tag(TagEMAIL), label(LabelNAME)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), tag(TagEMAIL)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), tag(TagNN), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), tag(TagNN), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), label(LabelYRRANGE)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), tag(TagNN), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), label(LabelYRRANGE)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), tag(TagNN), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR), label(LabelYRRANGE)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR)}},
	{Label: LabelAUTHOR, Pattern: []matcher{label(LabelAUTHOR), tag(TagNN), tag(TagNN), label(LabelNAME), tag(TagNN), tag(TagOF), tag(TagNN), label(LabelNAME)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), label(LabelYRRANGE), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), label(LabelYRRANGE), tag(TagBY), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), label(LabelYRRANGE), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelYRRANGE}), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelYRRANGE})}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelYRRANGE}), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelYRRANGE}), anyTagOrLabel([]PosTag{TagNNP}, []TreeLabel{LabelYRRANGE})}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), label(LabelYRRANGE)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), anyTag(TagNN, TagCAPS), label(LabelYRRANGE)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), label(LabelYRRANGE), label(LabelYRRANGE)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL), anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), label(LabelYRRANGE)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL), anyLabel(LabelCOMPANY, LabelNAME, LabelNAMEEMAIL), anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), label(LabelYRRANGE)}},
	{Label: LabelAUTHOR, Pattern: []matcher{tag(TagBY), label(LabelNAMEEMAIL)}},
	{Label: LabelAUTHOR, Pattern: []matcher{tag(TagBY), tag(TagCC), label(LabelNAMEEMAIL)}},
	{Label: LabelAUTHOR, Pattern: []matcher{tag(TagBY), label(LabelNAMEEMAIL), label(LabelNAMEEMAIL)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), label(LabelNAMEEMAIL)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagCONTRIBUTORS, TagAUTHS), label(LabelNAMEEMAIL), label(LabelNAMEEMAIL)}},
	{Label: LabelAUTHOR, Pattern: []matcher{label(LabelAUTHOR), tag(TagCC), anyTag(TagAUTH, TagAUTHS)}},
	{Label: LabelAUTHOR, Pattern: []matcher{label(LabelAUTHOR), tag(TagCC), tag(TagNN), anyTag(TagAUTH, TagAUTHS)}},
	{Label: LabelAUTHOR, Pattern: []matcher{tag(TagBY), tag(TagEMAIL)}},
	{Label: LabelANDAUTH, Pattern: []matcher{tag(TagCC), anyTagOrLabel([]PosTag{TagAUTH, TagCONTRIBUTORS}, []TreeLabel{LabelNAME})}},
	{Label: LabelANDAUTH, Pattern: []matcher{tag(TagCC), anyTagOrLabel([]PosTag{TagAUTH, TagCONTRIBUTORS}, []TreeLabel{LabelNAME}), anyTagOrLabel([]PosTag{TagAUTH, TagCONTRIBUTORS}, []TreeLabel{LabelNAME})}},
	{Label: LabelAUTHOR, Pattern: []matcher{label(LabelAUTHOR), label(LabelANDAUTH)}},
	{Label: LabelAUTHOR, Pattern: []matcher{label(LabelAUTHOR), label(LabelANDAUTH), label(LabelANDAUTH)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagAUTHS, TagAUTH2), tag(TagNNP), tag(TagCC), tag(TagPN)}},
	{Label: LabelAUTHOR, Pattern: []matcher{anyTag(TagAUTH, TagAUTHS, TagAUTH2), tag(TagBY), tag(TagNNP), tag(TagCC), tag(TagPN)}},
	{Label: LabelAUTHOR, Pattern: []matcher{label(LabelAUTHOR), tag(TagNN), anyLabel(LabelNAME, LabelCOMPANY)}},
	{Label: LabelAUTHOR, Pattern: []matcher{label(LabelAUTHOR), tag(TagNN), anyLabel(LabelNAME, LabelCOMPANY), anyLabel(LabelNAME, LabelCOMPANY)}},
	{Label: LabelAUTHOR, Pattern: []matcher{tag(TagAUTH2), tag(TagCC), label(LabelAUTHOR), tag(TagNN), label(LabelNAME), tag(TagNN), tag(TagNN), tag(TagNNP)}},
	{Label: LabelAUTHOR, Pattern: []matcher{tag(TagAUTH2), label(LabelCOMPANY)}},
	{Label: LabelAUTHOR, Pattern: []matcher{tag(TagAUTH2), label(LabelCOMPANY), label(LabelNAME)}},
	{Label: LabelAUTHOR, Pattern: []matcher{tag(TagAUTH), tag(TagNN), tag(TagNNP)}},
	{Label: LabelAUTHOR, Pattern: []matcher{tag(TagAUTH), tag(TagNNP), tag(TagNNP)}},
	{Label: LabelAUTHOR, Pattern: []matcher{tag(TagAUTH), tag(TagNNP), tag(TagNNP), tag(TagNNP)}},
	{Label: LabelAUTHOR, Pattern: []matcher{tag(TagAUTH), tag(TagNNP), tag(TagEMAIL)}},
	{Label: LabelAUTHOR, Pattern: []matcher{tag(TagAUTH), tag(TagNNP), tag(TagNNP), tag(TagEMAIL)}},
	{Label: LabelAUTHOR, Pattern: []matcher{tag(TagAUTH), tag(TagNNP), tag(TagEMAIL), tag(TagEMAIL)}},
	{Label: LabelAUTHOR, Pattern: []matcher{tag(TagAUTH), tag(TagNNP), tag(TagCC), tag(TagAUTHDOT)}},
	{Label: LabelAUTHOR, Pattern: []matcher{tag(TagAUTH), tag(TagNNP), tag(TagNNP), tag(TagCC), tag(TagAUTHDOT)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelAUTHOR)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagBY), label(LabelAUTHOR)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelAUTHOR), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagBY), label(LabelAUTHOR), label(LabelYRRANGE)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), label(LabelAUTHOR), label(LabelAUTHOR)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelAUTHOR), label(LabelCOPYRIGHT2)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagBY), tag(TagMIT)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT2), tag(TagNN), label(LabelNAMECAPS), tag(TagNN), tag(TagNN), tag(TagAUTHS)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelAUTHOR), tag(TagNN), label(LabelYRRANGE), label(LabelCOPYRIGHT2), label(LabelALLRIGHTRESERVED)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOPYRIGHT), tag(TagCONTRIBUTORS)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOMPANY), tag(TagCOPY), label(LabelALLRIGHTRESERVED)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{label(LabelCOMPANY), tag(TagCOPY), tag(TagCOPY), label(LabelALLRIGHTRESERVED)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{anyTagOrLabel([]PosTag{TagCOPY}, []TreeLabel{LabelCOPYRIGHT, LabelCOPYRIGHT2, LabelNAMECOPY}), anyTagOrLabel([]PosTag{TagCOPY, TagNNP, TagAUTHDOT, TagCAPS, TagCD, TagCDS, TagPN, TagCOMP, TagUNI, TagCC, TagOF, TagIN, TagBY, TagOTH, TagVAN, TagEMAIL, TagMIXEDCAP, TagNN}, []TreeLabel{LabelYRRANGE, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR, LabelNAMECOPY, LabelNAMECAPS, LabelCOMPANY}), label(LabelALLRIGHTRESERVED)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{anyTagOrLabel([]PosTag{TagCOPY}, []TreeLabel{LabelCOPYRIGHT, LabelCOPYRIGHT2, LabelNAMECOPY}), anyTagOrLabel([]PosTag{TagCOPY, TagNNP, TagAUTHDOT, TagCAPS, TagCD, TagCDS, TagPN, TagCOMP, TagUNI, TagCC, TagOF, TagIN, TagBY, TagOTH, TagVAN, TagEMAIL, TagMIXEDCAP, TagNN}, []TreeLabel{LabelYRRANGE, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR, LabelNAMECOPY, LabelNAMECAPS, LabelCOMPANY}), anyTagOrLabel([]PosTag{TagCOPY, TagNNP, TagAUTHDOT, TagCAPS, TagCD, TagCDS, TagPN, TagCOMP, TagUNI, TagCC, TagOF, TagIN, TagBY, TagOTH, TagVAN, TagEMAIL, TagMIXEDCAP, TagNN}, []TreeLabel{LabelYRRANGE, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR, LabelNAMECOPY, LabelNAMECAPS, LabelCOMPANY}), label(LabelALLRIGHTRESERVED)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{anyTagOrLabel([]PosTag{TagCOPY}, []TreeLabel{LabelCOPYRIGHT, LabelCOPYRIGHT2, LabelNAMECOPY}), anyTagOrLabel([]PosTag{TagCOPY, TagNNP, TagAUTHDOT, TagCAPS, TagCD, TagCDS, TagPN, TagCOMP, TagUNI, TagCC, TagOF, TagIN, TagBY, TagOTH, TagVAN, TagEMAIL, TagMIXEDCAP, TagNN}, []TreeLabel{LabelYRRANGE, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR, LabelNAMECOPY, LabelNAMECAPS, LabelCOMPANY}), anyTagOrLabel([]PosTag{TagCOPY, TagNNP, TagAUTHDOT, TagCAPS, TagCD, TagCDS, TagPN, TagCOMP, TagUNI, TagCC, TagOF, TagIN, TagBY, TagOTH, TagVAN, TagEMAIL, TagMIXEDCAP, TagNN}, []TreeLabel{LabelYRRANGE, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR, LabelNAMECOPY, LabelNAMECAPS, LabelCOMPANY}), anyTagOrLabel([]PosTag{TagCOPY, TagNNP, TagAUTHDOT, TagCAPS, TagCD, TagCDS, TagPN, TagCOMP, TagUNI, TagCC, TagOF, TagIN, TagBY, TagOTH, TagVAN, TagEMAIL, TagMIXEDCAP, TagNN}, []TreeLabel{LabelYRRANGE, LabelNAME, LabelNAMEEMAIL, LabelNAMEYEAR, LabelNAMECOPY, LabelNAMECAPS, LabelCOMPANY}), label(LabelALLRIGHTRESERVED)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), tag(TagCOPY), anyTag(TagCD, TagCDS), label(LabelNAMEEMAIL)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{tag(TagCOPY), anyLabel(LabelCOPYRIGHT, LabelCOPYRIGHT2)}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{anyTagOrLabel([]PosTag{TagCOPY}, []TreeLabel{LabelNAMECOPY}), anyTagOrLabel([]PosTag{TagCOPY}, []TreeLabel{LabelNAMECOPY})}},
	{Label: LabelCOPYRIGHT, Pattern: []matcher{anyLabel(LabelCOPYRIGHT, LabelCOPYRIGHT2), label(LabelALLRIGHTRESERVED)}},
}
