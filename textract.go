// Package textract extracts plain text from HTML documents.
// It parses markup with a forgiving HTML5 parser, selects the primary
// content container and joins the visible text inside it into a single
// string.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, trafilatura/, sqlite/).
package textract
