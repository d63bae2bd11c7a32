// Package config defines the options of a single GEDCOM to DOT conversion
// and the Loader interface implemented by the configuration file readers.
//
// The options form a flat, string-keyed set, the same keys whether they come
// from a config file or from the command line:
//
//	input, output, rootfamily, familydepth, imagedir, nameorder,
//	direction, birthformat, relpath, format, inline, assetdir
//
// Config is the typed form used by the rest of the program. Config.Set
// applies one key/value pair and Config.Map renders the flat form back.
// Concrete file formats live in separate packages (hcl, iniconf).
package config
