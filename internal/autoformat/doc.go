// Package autoformat rewrites unstructured text into markup by heuristics:
// headers, bold emphasis, list markers, step boxes and info boxes.
//
// Every heuristic is line based and gated by an option. They run in a fixed
// order so later passes see earlier rewrites:
//
//	headers -> bold -> lists -> steps -> info
//
// Keyword tables live in a Lexicon loaded from YAML, so adding a language
// is a data change. Format never fails; a line no heuristic matches is left
// as it is.
package autoformat
