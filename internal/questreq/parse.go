package questreq

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
)

// Result is the outcome of parsing one page. Duplicates lists labels the
// page gives two different sets of prerequisites.
type Result struct {
	Found      bool
	Tree       *Tree
	Adjacency  Adjacency
	Duplicates []Duplicate
}

// ParseDocument runs the whole pipeline on an already parsed document.
func ParseDocument(doc *goquery.Document, class string) Result {
	table, ok := Locate(doc, class)
	if !ok {
		return Result{Tree: &Tree{}, Adjacency: Adjacency{}}
	}

	list, ok := RequirementList(table)
	if !ok {
		return Result{Tree: &Tree{}, Adjacency: Adjacency{}}
	}

	tree := Flatten(list)
	adj, dups := SimplifyDuplicates(tree)
	return Result{Found: true, Tree: tree, Adjacency: adj, Duplicates: dups}
}

// Parse reads HTML from r. The HTML parser is lenient, so only read errors
// are returned.
func Parse(r io.Reader, class string) (Result, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Result{}, fmt.Errorf("parse html: %w", err)
	}

	return ParseDocument(doc, class), nil
}
