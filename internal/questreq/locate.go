package questreq

import (
	"github.com/PuerkitoBio/goquery"
)

const DefaultTableClass = "questreq"

const listSelector = "ul, ol"

// Locate returns the first <table> element whose class attribute contains
// class. Other elements carrying the same class are ignored. A missing table
// is reported through ok and is not an error.
func Locate(doc *goquery.Document, class string) (*goquery.Selection, bool) {
	if doc == nil {
		return nil, false
	}

	table := doc.Find("table").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.HasClass(class)
	}).First()

	if table.Length() == 0 {
		return nil, false
	}

	return table, true
}

const cellSelector = "tr, td, th"

// RequirementList returns the top-level list of a located table.
//
// The HTML5 parser moves a list that sits directly inside <table> (without
// <tr><td>) in front of the table. Only a table left without any rows or
// cells can have lost its list that way, so only then is the element
// immediately preceding it taken.
func RequirementList(table *goquery.Selection) (*goquery.Selection, bool) {
	if table == nil || table.Length() == 0 {
		return nil, false
	}

	if list := table.Find(listSelector).First(); list.Length() > 0 {
		return list, true
	}

	if table.Find(cellSelector).Length() > 0 {
		return nil, false
	}

	if prev := table.Prev(); prev.Is(listSelector) {
		return prev, true
	}

	return nil, false
}
