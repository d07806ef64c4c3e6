package copyright

// PosTag is a part-of-speech-like label assigned to a leaf token by the
// upstream tokenizer before the grammar runs. The set is closed: every
// tag a [Tokenizer] can produce is declared here, and the grammar rules in
// [Rules] only ever reference tags from this set.
type PosTag string

// Leaf token tags.
const (
	TagYR           PosTag = "YR"
	TagCC           PosTag = "CC"
	TagNNP          PosTag = "NNP"
	TagNN           PosTag = "NN"
	TagCAPS         PosTag = "CAPS"
	TagEMAIL        PosTag = "EMAIL"
	TagURL          PosTag = "URL"
	TagCOPY         PosTag = "COPY"
	TagBY           PosTag = "BY"
	TagOF           PosTag = "OF"
	TagVAN          PosTag = "VAN"
	TagDASH         PosTag = "DASH"
	TagTO           PosTag = "TO"
	TagCOMP         PosTag = "COMP"
	TagUNI          PosTag = "UNI"
	TagMAINT        PosTag = "MAINT"
	TagAUTHS        PosTag = "AUTHS"
	TagAUTH         PosTag = "AUTH"
	TagCONTRIBUTORS PosTag = "CONTRIBUTORS"
	TagPORTIONS     PosTag = "PORTIONS"
	TagNOTICE       PosTag = "NOTICE"
	TagRIGHT        PosTag = "RIGHT"
	TagRESERVED     PosTag = "RESERVED"
	TagSPDXCONTRIB  PosTag = "SPDX-CONTRIB"
	TagMIT          PosTag = "MIT"
	TagPARENS       PosTag = "PARENS"
	TagPN           PosTag = "PN"
	TagIN           PosTag = "IN"
	TagLINUX        PosTag = "LINUX"
	TagCDS          PosTag = "CDS"
	TagCD           PosTag = "CD"
	TagBAREYR       PosTag = "BARE-YR"
	TagMIXEDCAP     PosTag = "MIXEDCAP"
	TagHELD         PosTag = "HELD"
	TagHOLDER       PosTag = "HOLDER"
	TagIS           PosTag = "IS"
	TagAUTHDOT      PosTag = "AUTH-DOT"
	TagAUTH2        PosTag = "AUTH2"
	TagFOLLOWING    PosTag = "FOLLOWING"
	TagCOMMIT       PosTag = "COMMIT"
	TagJUNK         PosTag = "JUNK"
	TagDASHCAPSLEAF PosTag = "DASHCAPS-LEAF"
	TagOU           PosTag = "OU"
	TagOTH          PosTag = "OTH"
	TagURL2         PosTag = "URL2"
	TagYRPLUS       PosTag = "YR-PLUS"
	TagEMAILSTART   PosTag = "EMAIL_START"
	TagEMAILEND     PosTag = "EMAIL_END"
)

// TreeLabel names a node produced by folding a span of children during the
// bottom-up parse. Like [PosTag], the set is closed.
type TreeLabel string

// Tree node labels.
const (
	LabelYRRANGE         TreeLabel = "YR-RANGE"
	LabelYRAND           TreeLabel = "YR-AND"
	LabelNAME            TreeLabel = "NAME"
	LabelCOMPANY         TreeLabel = "COMPANY"
	LabelANDCO           TreeLabel = "AND-CO"
	LabelDASHCAPS        TreeLabel = "DASH-CAPS"
	LabelNAMEEMAIL       TreeLabel = "NAME-EMAIL"
	LabelNAMEYEAR        TreeLabel = "NAME-YEAR"
	LabelINITIALDEV      TreeLabel = "INITIAL-DEV"
	LabelCOPYRIGHT       TreeLabel = "COPYRIGHT"
	LabelCOPYRIGHT2      TreeLabel = "COPYRIGHT2"
	LabelNAMECOPY        TreeLabel = "NAME-COPY"
	LabelNAMECAPS        TreeLabel = "NAME-CAPS"
	LabelAUTHOR          TreeLabel = "AUTHOR"
	LabelANDAUTH         TreeLabel = "AND-AUTH"
	LabelALLRIGHTRESERVED TreeLabel = "ALL-RIGHT-RESERVED"
)
