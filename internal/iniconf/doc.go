// Package iniconf reads ged2dot options from INI configuration files, the
// format of the ged2dotrc files used by earlier versions of the tool:
//
//	[ged2dot]
//	input = test.ged
//	output = test.dot
//	rootfamily = F1
//
// Section and key names are case-insensitive; other sections are ignored.
package iniconf
