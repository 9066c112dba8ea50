// Package io provides JSON import and export for GEDCOM documents.
//
// # Overview
//
// The JSON form mirrors the element tree one to one. It is used as the cache
// format for parsed documents and by the document stores, and it lets other
// tools consume a parsed file without a GEDCOM parser:
//
//	{
//	  "version": 1,
//	  "records": [
//	    {"pointer": "@I1@", "tag": "INDI", "children": [
//	      {"tag": "NAME", "value": "John /Doe/"}
//	    ]}
//	  ]
//	}
//
// # Node Fields
//
// Required:
//   - tag: The GEDCOM tag
//
// Optional:
//   - pointer: Cross-reference id including the '@' delimiters
//   - value: Line value
//   - eol: Line terminator, omitted when it is "\n"
//   - children: Nested elements in source order
//
// Levels are not stored; they follow from the nesting depth.
//
// # Import and Export
//
// Use [ReadJSON] and [WriteJSON] for streams, [ImportJSON] and [ExportJSON]
// for files. A document written with [WriteJSON] and read back with [ReadJSON]
// produces the same GEDCOM text.
package io
