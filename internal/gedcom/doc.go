// Package gedcom reads GEDCOM genealogy files into a genealogy.Graph.
//
// Reading happens in two steps. Scan splits the raw bytes into level-tagged
// lines, tolerating CRLF or LF line endings and a leading UTF-8 byte order
// mark. Import then drives a small state machine over those lines: level 0
// records open individuals and families, level 1 lines fill in their fields
// and level 2 DATE lines attach years to the birth, death or marriage block
// opened just before them. Tags that are not needed for drawing a family tree
// are skipped.
//
// Any malformed line stops the import. The returned *LineError carries the
// line number and the raw text of the offending line.
package gedcom
