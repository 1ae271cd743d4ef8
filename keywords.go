// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import "sort"

// KeywordID is the interned identifier for a well-known PDF/content-stream
// keyword. KeywordUnknown covers any bare identifier outside the table
// (most commonly a content-stream operator this parser does not special
// case); the raw text still rides along on the Token.
type KeywordID int

const (
	KeywordUnknown KeywordID = iota
	KeywordObj
	KeywordEndobj
	KeywordStream
	KeywordEndstream
	KeywordXref
	KeywordTrailer
	KeywordStartxref
	KeywordR
	KeywordN
	KeywordF
	KeywordTrue
	KeywordFalse
	KeywordNull
	KeywordBT
	KeywordET
	KeywordTf
	KeywordTd
	KeywordTD
	KeywordTj
	KeywordTJ
	KeywordTc
	KeywordTw
	KeywordTz
	KeywordTL
	KeywordTm
	KeywordTr
	KeywordTs
	KeywordTstar
	KeywordQuote
	KeywordDoubleQuote
	KeywordCm
	KeywordQ
	KeywordQSave
	KeywordCs
	KeywordCS
	KeywordScn
	KeywordSCN
	KeywordRe
	KeywordL
	KeywordM
	KeywordFOp
	KeywordGOp
	KeywordRg
	KeywordRG
	KeywordK
	KeywordGs
	KeywordW
	KeywordDo
)

var keywordTable = []struct {
	text string
	id   KeywordID
}{
	{"\"", KeywordDoubleQuote},
	{"'", KeywordQuote},
	{"BT", KeywordBT},
	{"cm", KeywordCm},
	{"cs", KeywordCs},
	{"CS", KeywordCS},
	{"Do", KeywordDo},
	{"endobj", KeywordEndobj},
	{"endstream", KeywordEndstream},
	{"ET", KeywordET},
	{"f", KeywordFOp},
	{"false", KeywordFalse},
	{"g", KeywordGOp},
	{"gs", KeywordGs},
	{"k", KeywordK},
	{"l", KeywordL},
	{"m", KeywordM},
	{"n", KeywordN},
	{"null", KeywordNull},
	{"obj", KeywordObj},
	{"q", KeywordQ},
	{"Q", KeywordQSave},
	{"R", KeywordR},
	{"re", KeywordRe},
	{"rg", KeywordRg},
	{"RG", KeywordRG},
	{"scn", KeywordScn},
	{"SCN", KeywordSCN},
	{"startxref", KeywordStartxref},
	{"stream", KeywordStream},
	{"T*", KeywordTstar},
	{"Tc", KeywordTc},
	{"Td", KeywordTd},
	{"TD", KeywordTD},
	{"Tf", KeywordTf},
	{"Tj", KeywordTj},
	{"TJ", KeywordTJ},
	{"TL", KeywordTL},
	{"Tm", KeywordTm},
	{"trailer", KeywordTrailer},
	{"Tr", KeywordTr},
	{"true", KeywordTrue},
	{"Ts", KeywordTs},
	{"Tw", KeywordTw},
	{"Tz", KeywordTz},
	{"w", KeywordW},
	{"xref", KeywordXref},
}

func init() {
	sort.Slice(keywordTable, func(i, j int) bool { return keywordTable[i].text < keywordTable[j].text })
}

// lookupKeyword returns the interned KeywordID for text, or
// (KeywordUnknown, false) when text is not a recognized keyword. "f" is
// both the fill operator and the free-xref-entry flag; both senses map
// to KeywordFOp, which the xref reader treats as the free flag.
func lookupKeyword(text string) (KeywordID, bool) {
	i := sort.Search(len(keywordTable), func(i int) bool { return keywordTable[i].text >= text })
	if i < len(keywordTable) && keywordTable[i].text == text {
		return keywordTable[i].id, true
	}
	return KeywordUnknown, false
}

func (k KeywordID) String() string {
	for _, e := range keywordTable {
		if e.id == k {
			return e.text
		}
	}
	return "Unknown"
}
