// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import "sort"

// NameID is the interned identifier for a well-known PDF name. NameUnknown
// marks a name outside the closed table; such names surface as Symbol
// objects instead, carrying their raw text.
type NameID int

const (
	NameUnknown NameID = iota
	NameType
	NameCatalog
	NamePages
	NamePage
	NameRoot
	NameSize
	NamePrev
	NameKids
	NameCount
	NameParent
	NameContents
	NameResources
	NameMediaBox
	NameCropBox
	NameBleedBox
	NameTrimBox
	NameArtBox
	NameRotate
	NameFilter
	NameDecodeParms
	NameLength
	NameInfo
	NameEncrypt
	NameID_
	NameFont
	NameBaseFont
	NameFirstChar
	NameLastChar
	NameWidths
	NameEncoding
	NameSubtype
	NameProcSet
	NameXObject
	NameImage
	NameColorSpace
	NameBitsPerComponent
	NameWidth
	NameHeight
	NameTitle
	NameAuthor
	NameSubject
	NameKeywords
	NameCreator
	NameProducer
	NameCreationDate
	NameModDate
	NameMetadata
	NameOutlines
	NamePageMode
	NamePageLayout
	NameOpenAction
	NameAcroForm
	NameStructTreeRoot
	NameLang
	NameMarkInfo
	NameAnnots
	NameGroup
	NameThumb
	NameUserUnit
	NameP
	NamePredictor
	NameColors
	NameVersion
	NameExtGState
	NameFlateDecode
	NameASCIIHexDecode
	NameASCII85Decode
	NameLZWDecode
	NameRunLengthDecode
	NameCCITTFaxDecode
	NameJBIG2Decode
	NameDCTDecode
	NameCrypt
	NameColumns
)

// nameTable is kept sorted by text; lookup is binary search, as the
// Design Notes' "sorted table with binary search" option.
var nameTable = []struct {
	text string
	id   NameID
}{
	{"AcroForm", NameAcroForm},
	{"Annots", NameAnnots},
	{"ArtBox", NameArtBox},
	{"ASCII85Decode", NameASCII85Decode},
	{"ASCIIHexDecode", NameASCIIHexDecode},
	{"Author", NameAuthor},
	{"BaseFont", NameBaseFont},
	{"BitsPerComponent", NameBitsPerComponent},
	{"BleedBox", NameBleedBox},
	{"Catalog", NameCatalog},
	{"CCITTFaxDecode", NameCCITTFaxDecode},
	{"ColorSpace", NameColorSpace},
	{"Colors", NameColors},
	{"Columns", NameColumns},
	{"Contents", NameContents},
	{"Count", NameCount},
	{"Creator", NameCreator},
	{"CreationDate", NameCreationDate},
	{"CropBox", NameCropBox},
	{"Crypt", NameCrypt},
	{"DCTDecode", NameDCTDecode},
	{"DecodeParms", NameDecodeParms},
	{"Encoding", NameEncoding},
	{"Encrypt", NameEncrypt},
	{"ExtGState", NameExtGState},
	{"Filter", NameFilter},
	{"FirstChar", NameFirstChar},
	{"FlateDecode", NameFlateDecode},
	{"Font", NameFont},
	{"Group", NameGroup},
	{"Height", NameHeight},
	{"ID", NameID_},
	{"Image", NameImage},
	{"Info", NameInfo},
	{"JBIG2Decode", NameJBIG2Decode},
	{"Keywords", NameKeywords},
	{"Kids", NameKids},
	{"Lang", NameLang},
	{"LastChar", NameLastChar},
	{"Length", NameLength},
	{"LZWDecode", NameLZWDecode},
	{"MarkInfo", NameMarkInfo},
	{"MediaBox", NameMediaBox},
	{"Metadata", NameMetadata},
	{"ModDate", NameModDate},
	{"OpenAction", NameOpenAction},
	{"Outlines", NameOutlines},
	{"P", NameP},
	{"Page", NamePage},
	{"PageLayout", NamePageLayout},
	{"PageMode", NamePageMode},
	{"Pages", NamePages},
	{"Parent", NameParent},
	{"Predictor", NamePredictor},
	{"Prev", NamePrev},
	{"ProcSet", NameProcSet},
	{"Producer", NameProducer},
	{"Resources", NameResources},
	{"Root", NameRoot},
	{"Rotate", NameRotate},
	{"RunLengthDecode", NameRunLengthDecode},
	{"Size", NameSize},
	{"StructTreeRoot", NameStructTreeRoot},
	{"Subject", NameSubject},
	{"Subtype", NameSubtype},
	{"Thumb", NameThumb},
	{"Title", NameTitle},
	{"TrimBox", NameTrimBox},
	{"Type", NameType},
	{"UserUnit", NameUserUnit},
	{"Version", NameVersion},
	{"Widths", NameWidths},
	{"Width", NameWidth},
	{"XObject", NameXObject},
}

func init() {
	sort.Slice(nameTable, func(i, j int) bool { return nameTable[i].text < nameTable[j].text })
}

// lookupName returns the interned NameID for text, or (NameUnknown, false)
// if text is not a well-known name.
func lookupName(text string) (NameID, bool) {
	i := sort.Search(len(nameTable), func(i int) bool { return nameTable[i].text >= text })
	if i < len(nameTable) && nameTable[i].text == text {
		return nameTable[i].id, true
	}
	return NameUnknown, false
}

func (n NameID) String() string {
	for _, e := range nameTable {
		if e.id == n {
			return e.text
		}
	}
	return "Unknown"
}
