// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import (
	"encoding/json"
	"encoding/xml"
	"io"
	"strings"

	"github.com/kestrel-data/pdflex/logger"
)

// Meta is the unified metadata model (Info + XMP fields), XMP taking
// precedence over /Info when both are present.
type Meta struct {
	Title        string `json:"title,omitempty"`
	Author       string `json:"author,omitempty"`
	Subject      string `json:"subject,omitempty"`
	Keywords     string `json:"keywords,omitempty"`
	Creator      string `json:"creator,omitempty"`
	Producer     string `json:"producer,omitempty"`
	CreationDate string `json:"creationDate,omitempty"`
	ModDate      string `json:"modDate,omitempty"`
}

type xmpPacket struct {
	XMLName xml.Name `xml:"xmpmeta"`
	RDF     rdfRDF   `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# RDF"`
}

type rdfRDF struct {
	Descriptions []rdfDescription `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# Description"`
}

type rdfDescription struct {
	Title       altString `xml:"http://purl.org/dc/elements/1.1/ title"`
	Description altString `xml:"http://purl.org/dc/elements/1.1/ description"`
	Creator     seqString `xml:"http://purl.org/dc/elements/1.1/ creator"`

	PDFProducer string `xml:"http://ns.adobe.com/pdf/1.3/ Producer"`
	PDFKeywords string `xml:"http://ns.adobe.com/pdf/1.3/ Keywords"`

	XMPCreatorTool string `xml:"http://ns.adobe.com/xap/1.0/ CreatorTool"`
	XMPCreateDate  string `xml:"http://ns.adobe.com/xap/1.0/ CreateDate"`
	XMPModifyDate  string `xml:"http://ns.adobe.com/xap/1.0/ ModifyDate"`
}

type altString struct {
	Alt struct {
		LI []string `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# li"`
	} `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# Alt"`
}

func (a altString) First() string {
	if len(a.Alt.LI) > 0 {
		return strings.TrimSpace(a.Alt.LI[0])
	}
	return ""
}

type seqString struct {
	Seq struct {
		LI []string `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# li"`
	} `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# Seq"`
}

func (s seqString) First() string {
	if len(s.Seq.LI) > 0 {
		return strings.TrimSpace(s.Seq.LI[0])
	}
	return ""
}

type xmpFields struct {
	Title, Creator, Subject, Keywords, CreatorTool, Producer, CreateDate, ModifyDate string
}

// AccessPermission reports the Encrypt /P permission bits per ISO
// 32000-1 §7.6.3. No decryption is attempted; this is a read-only
// report of what the dictionary claims.
type AccessPermission struct {
	CanPrint                bool `json:"can_print"`
	CanPrintFaithful        bool `json:"can_print_faithful"`
	CanModify               bool `json:"can_modify"`
	ExtractContent          bool `json:"extract_content"`
	ModifyAnnotations       bool `json:"modify_annotations"`
	FillInForm              bool `json:"fill_in_form"`
	ExtractForAccessibility bool `json:"extract_for_accessibility"`
	AssembleDocument        bool `json:"assemble_document"`
}

// MetadataFull is a comprehensive metadata report for a document.
type MetadataFull struct {
	Title        string `json:"title,omitempty"`
	Author       string `json:"author,omitempty"`
	Subject      string `json:"subject,omitempty"`
	Keywords     string `json:"keywords,omitempty"`
	Creator      string `json:"creator,omitempty"`
	Producer     string `json:"producer,omitempty"`
	CreationDate string `json:"creationDate,omitempty"`
	ModDate      string `json:"modDate,omitempty"`

	HasXMP    bool `json:"pdf:hasXMP"`
	Encrypted bool `json:"pdf:encrypted"`
	NPages    int  `json:"xmpTPg:NPages,omitempty"`

	AccessPermission AccessPermission `json:"access_permission"`
}

func prefer(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}

func textOf(dict Dictionary, n NameID) string {
	if dict == nil {
		return ""
	}
	s, ok := dict.GetString(n)
	if !ok {
		return ""
	}
	return string(s)
}

// GetString is the peek-family counterpart to WantString.
func (d Dictionary) GetString(n NameID) ([]byte, bool) {
	o, ok := d[n]
	if !ok || o.Kind != ObjString {
		return nil, false
	}
	return o.Str, true
}

func (d *Document) infoDict() Dictionary {
	trailer := d.Trailer()
	return trailer.Info
}

func (d *Document) readInfo() Meta {
	info := d.infoDict()
	return Meta{
		Title:        textOf(info, NameTitle),
		Author:       textOf(info, NameAuthor),
		Subject:      textOf(info, NameSubject),
		Keywords:     textOf(info, NameKeywords),
		Creator:      textOf(info, NameCreator),
		Producer:     textOf(info, NameProducer),
		CreationDate: textOf(info, NameCreationDate),
		ModDate:      textOf(info, NameModDate),
	}
}

func (d *Document) readXMP() (string, error) {
	cat, err := d.Catalog()
	if err != nil || cat.Metadata == nil {
		return "", nil
	}
	raw, err := d.readStream(*cat.Metadata)
	if err != nil {
		logger.Error("readXMP: failed to read XMP stream")
		return "", err
	}
	return string(raw), nil
}

func parseXMPWithXML(x string) (xmpFields, bool) {
	var pkt xmpPacket
	dec := xml.NewDecoder(strings.NewReader(x))
	dec.Strict = false
	dec.AutoClose = xml.HTMLAutoClose
	dec.Entity = xml.HTMLEntity

	if err := dec.Decode(&pkt); err != nil {
		return xmpFields{}, false
	}
	var f xmpFields
	for _, desc := range pkt.RDF.Descriptions {
		if t := desc.Title.First(); t != "" {
			f.Title = t
		}
		if c := desc.Creator.First(); c != "" {
			f.Creator = c
		}
		if s := desc.Description.First(); s != "" {
			f.Subject = s
		}
		if k := strings.TrimSpace(desc.PDFKeywords); k != "" {
			f.Keywords = k
		}
		if p := strings.TrimSpace(desc.PDFProducer); p != "" {
			f.Producer = p
		}
		if ct := strings.TrimSpace(desc.XMPCreatorTool); ct != "" {
			f.CreatorTool = ct
		}
		if cd := strings.TrimSpace(desc.XMPCreateDate); cd != "" {
			f.CreateDate = cd
		}
		if md := strings.TrimSpace(desc.XMPModifyDate); md != "" {
			f.ModifyDate = md
		}
	}
	return f, true
}

// Metadata returns unified metadata with XMP taking precedence over
// /Info.
func (d *Document) Metadata() (Meta, error) {
	info := d.readInfo()

	xmpXML, err := d.readXMP()
	if err != nil {
		return Meta{}, err
	}
	var xf xmpFields
	if xmpXML != "" {
		xf, _ = parseXMPWithXML(xmpXML)
	}

	return Meta{
		Title:        prefer(xf.Title, info.Title),
		Author:       prefer(xf.Creator, info.Author),
		Subject:      prefer(xf.Subject, info.Subject),
		Keywords:     prefer(xf.Keywords, info.Keywords),
		Creator:      prefer(xf.CreatorTool, info.Creator),
		Producer:     prefer(xf.Producer, info.Producer),
		CreationDate: prefer(xf.CreateDate, info.CreationDate),
		ModDate:      prefer(xf.ModifyDate, info.ModDate),
	}, nil
}

// MetadataJSON writes the full metadata report as pretty JSON.
func (d *Document) MetadataJSON(w io.Writer) error {
	mf, err := d.MetadataFull()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(mf)
}

func (d *Document) hasXMP() bool {
	cat, err := d.Catalog()
	return err == nil && cat.Metadata != nil
}

// accessPermissions computes the effective access permissions from
// Encrypt.P. Without an /Encrypt dictionary every permission is granted.
func (d *Document) accessPermissions() AccessPermission {
	trailer := d.Trailer()
	if trailer.Encrypt == nil {
		return AccessPermission{
			CanPrint: true, CanModify: true, ExtractContent: true,
			ModifyAnnotations: true, FillInForm: true,
			ExtractForAccessibility: true, AssembleDocument: true,
			CanPrintFaithful: true,
		}
	}
	pval, _ := trailer.Encrypt.WantI32(NameP)
	p := uint32(pval)
	var ap AccessPermission
	ap.CanPrint = p&(1<<2) != 0
	ap.CanModify = p&(1<<3) != 0
	ap.ExtractContent = p&(1<<4) != 0
	ap.ModifyAnnotations = p&(1<<5) != 0
	ap.FillInForm = p&(1<<8) != 0 || ap.ModifyAnnotations
	ap.ExtractForAccessibility = p&(1<<9) != 0
	ap.AssembleDocument = p&(1<<10) != 0
	ap.CanPrintFaithful = p&(1<<11) != 0 || ap.CanPrint
	return ap
}

// MetadataFull returns a comprehensive metadata report for the
// document. Font-embedding introspection is intentionally omitted:
// this parser carries no font/glyph model (rasterization is a
// Non-goal), so "contains non-embedded font" cannot be answered here.
func (d *Document) MetadataFull() (MetadataFull, error) {
	var out MetadataFull

	md, err := d.Metadata()
	if err != nil {
		return out, err
	}
	out.Title = md.Title
	out.Author = md.Author
	out.Subject = md.Subject
	out.Keywords = md.Keywords
	out.Creator = md.Creator
	out.Producer = md.Producer
	out.CreationDate = md.CreationDate
	out.ModDate = md.ModDate

	out.HasXMP = d.hasXMP()
	out.Encrypted = d.Trailer().Encrypt != nil
	out.NPages = d.PageCount()
	out.AccessPermission = d.accessPermissions()

	return out, nil
}
