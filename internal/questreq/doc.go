// Package questreq turns the quest requirement table of a wiki page into a
// prerequisite tree and then into a flat adjacency list that graph code can
// consume without knowing about nesting.
//
// Everything in this package is a pure function of its input: it never
// fetches, logs, or keeps state between calls.
package questreq
