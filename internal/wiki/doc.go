// Package wiki fetches quest pages from a MediaWiki site and runs the
// requirement parser over them.
package wiki
