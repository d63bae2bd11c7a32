// Package assets ships the images referenced by exported graphs: the
// portrait placeholders used when an individual has no photo and the
// marriage icon of families without a known marriage year.
//
// Graphviz resolves image paths on disk, so the embedded files are written
// out to a directory with Materialize before rendering.
package assets
