package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// ErrWritePackage indicates the ZIP package could not be produced.
var ErrWritePackage = errors.New("failed to write document package")

// AppName is recorded in docProps/app.xml.
var AppName = "go-md2docx"

// Content types and relationship types.
const (
	ctRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML           = "application/xml"
	ctDocument      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ctStyles        = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	ctNumbering     = "application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"
	ctSettings      = "application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"
	ctCore          = "application/vnd.openxmlformats-package.core-properties+xml"
	ctApp           = "application/vnd.openxmlformats-officedocument.extended-properties+xml"

	relOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relAppProps       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relNumbering      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"
	relSettings       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/settings"
	relHyperlink      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
)

// Part names inside the package.
const (
	PartContentTypes = "[Content_Types].xml"
	PartRootRels     = "_rels/.rels"
	PartCore         = "docProps/core.xml"
	PartApp          = "docProps/app.xml"
	PartDocument     = "word/document.xml"
	PartStyles       = "word/styles.xml"
	PartNumbering    = "word/numbering.xml"
	PartSettings     = "word/settings.xml"
	PartDocumentRels = "word/_rels/document.xml.rels"
)

type contentTypesXML struct {
	XMLName   xml.Name      `xml:"http://schemas.openxmlformats.org/package/2006/content-types Types"`
	Defaults  []defaultXML  `xml:"Default"`
	Overrides []overrideXML `xml:"Override"`
}

type defaultXML struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type overrideXML struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type relationshipsXML struct {
	XMLName xml.Name          `xml:"http://schemas.openxmlformats.org/package/2006/relationships Relationships"`
	Items   []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// corePropertiesXML represents docProps/core.xml.
type corePropertiesXML struct {
	XMLName     xml.Name    `xml:"cp:coreProperties"`
	NSCP        string      `xml:"xmlns:cp,attr"`
	NSDC        string      `xml:"xmlns:dc,attr"`
	NSDCTerms   string      `xml:"xmlns:dcterms,attr"`
	NSXSI       string      `xml:"xmlns:xsi,attr"`
	Title       string      `xml:"dc:title,omitempty"`
	Creator     string      `xml:"dc:creator,omitempty"`
	Keywords    string      `xml:"cp:keywords,omitempty"`
	Description string      `xml:"dc:description,omitempty"`
	Identifier  string      `xml:"dc:identifier,omitempty"`
	Revision    string      `xml:"cp:revision"`
	Created     *w3cDateXML `xml:"dcterms:created,omitempty"`
	Modified    *w3cDateXML `xml:"dcterms:modified,omitempty"`
}

type w3cDateXML struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

type appPropertiesXML struct {
	XMLName     xml.Name `xml:"http://schemas.openxmlformats.org/officeDocument/2006/extended-properties Properties"`
	Application string   `xml:"Application"`
}

type settingsXML struct {
	XMLName        xml.Name `xml:"w:settings"`
	NSW            string   `xml:"xmlns:w,attr"`
	DefaultTabStop valXML   `xml:"w:defaultTabStop"`
}

func w3cDate(t time.Time) *w3cDateXML {
	if t.IsZero() {
		return nil
	}
	return &w3cDateXML{Type: "dcterms:W3CDTF", Value: t.UTC().Format(time.RFC3339)}
}

func (p Properties) toXML() corePropertiesXML {
	return corePropertiesXML{
		NSCP:        nsCP,
		NSDC:        nsDC,
		NSDCTerms:   nsDCTerms,
		NSXSI:       nsXSI,
		Title:       p.Title,
		Creator:     p.Creator,
		Keywords:    strings.Join(p.Keywords, ", "),
		Description: p.Description,
		Identifier:  p.Identifier,
		Revision:    "1",
		Created:     w3cDate(p.Created),
		Modified:    w3cDate(p.Modified),
	}
}

// part is one named entry of the ZIP package.
type part struct {
	name string
	data any
}

// parts builds every package part in write order.
func (d *Document) parts() []part {
	rels := &relTable{}
	document := d.documentToXML(rels)

	docRels := relationshipsXML{Items: []relationshipXML{
		{ID: "rId1", Type: relStyles, Target: "styles.xml"},
		{ID: "rId2", Type: relNumbering, Target: "numbering.xml"},
		{ID: "rId3", Type: relSettings, Target: "settings.xml"},
	}}
	for _, url := range rels.urls {
		docRels.Items = append(docRels.Items, relationshipXML{
			ID:         rels.ids[url],
			Type:       relHyperlink,
			Target:     url,
			TargetMode: "External",
		})
	}

	return []part{
		{PartContentTypes, contentTypesXML{
			Defaults: []defaultXML{
				{Extension: "rels", ContentType: ctRelationships},
				{Extension: "xml", ContentType: ctXML},
			},
			Overrides: []overrideXML{
				{PartName: "/" + PartDocument, ContentType: ctDocument},
				{PartName: "/" + PartStyles, ContentType: ctStyles},
				{PartName: "/" + PartNumbering, ContentType: ctNumbering},
				{PartName: "/" + PartSettings, ContentType: ctSettings},
				{PartName: "/" + PartCore, ContentType: ctCore},
				{PartName: "/" + PartApp, ContentType: ctApp},
			},
		}},
		{PartRootRels, relationshipsXML{Items: []relationshipXML{
			{ID: "rId1", Type: relOfficeDocument, Target: PartDocument},
			{ID: "rId2", Type: relCoreProps, Target: PartCore},
			{ID: "rId3", Type: relAppProps, Target: PartApp},
		}}},
		{PartCore, d.Properties.toXML()},
		{PartApp, appPropertiesXML{Application: AppName}},
		{PartDocument, document},
		{PartStyles, d.Styles.toXML()},
		{PartNumbering, d.numbering.toXML()},
		{PartSettings, settingsXML{NSW: nsW, DefaultTabStop: valXML{Val: "720"}}},
		{PartDocumentRels, docRels},
	}
}

// WriteTo writes the document as a ZIP package to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)

	modified := d.Properties.Modified
	if modified.IsZero() {
		modified = time.Now()
	}

	for _, p := range d.parts() {
		data, err := xml.Marshal(p.data)
		if err != nil {
			return cw.n, fmt.Errorf("%w: encoding %s: %v", ErrWritePackage, p.name, err)
		}
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     p.name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return cw.n, fmt.Errorf("%w: creating %s: %v", ErrWritePackage, p.name, err)
		}
		if _, err := io.WriteString(fw, xml.Header); err != nil {
			return cw.n, fmt.Errorf("%w: writing %s: %v", ErrWritePackage, p.name, err)
		}
		if _, err := fw.Write(data); err != nil {
			return cw.n, fmt.Errorf("%w: writing %s: %v", ErrWritePackage, p.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("%w: %v", ErrWritePackage, err)
	}
	return cw.n, nil
}

// Bytes returns the serialized package.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
