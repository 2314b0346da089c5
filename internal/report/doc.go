// Package report renders election results.
//
// A [Reporter] receives the run parameters once, every election result in
// order, and finally the run summary. [New] selects an implementation by
// format name: "text" prints the human-readable report, while "json",
// "yaml", "toml" and "csv" produce machine-readable exports.
package report
