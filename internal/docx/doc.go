// Package docx writes Office Open XML word-processing documents.
//
// A Document is built in memory from paragraphs, runs, hyperlinks and
// tables, then serialized as a ZIP package:
//
//	[Content_Types].xml
//	_rels/.rels
//	docProps/core.xml
//	docProps/app.xml
//	word/document.xml
//	word/styles.xml
//	word/numbering.xml
//	word/settings.xml
//	word/_rels/document.xml.rels
//
// Only the subset of WordprocessingML needed for article-style documents is
// modelled: named paragraph styles, direct run formatting, bullet and
// numbered lists, external hyperlinks, bordered and shaded tables (nested
// tables included), and page breaks.
package docx
