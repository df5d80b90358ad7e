package questreq

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

type pendingList struct {
	list   *goquery.Selection
	parent int
}

// Flatten walks a requirement list and every list nested below it. Only the
// direct <li> children of each list are items; a nested list is looked up
// anywhere below its item, so lists wrapped in <a> or <div> are found too.
func Flatten(list *goquery.Selection) *Tree {
	t := &Tree{}
	if list == nil || list.Length() == 0 {
		return t
	}

	queue := []pendingList{{list: list, parent: -1}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		parentLabel := ""
		if cur.parent >= 0 {
			parentLabel = t.nodes[cur.parent].Label
		}

		cur.list.ChildrenFiltered("li").Each(func(pos int, li *goquery.Selection) {
			label := ownText(li)
			nested := li.Find(listSelector).First()

			n := Node{Label: label, Kind: Leaf}
			if nested.Length() > 0 {
				n.Kind = Branch
			} else if cur.parent >= 0 {
				n.Label = Normalize(label)
			}

			if n.Label == "" {
				t.anomalies = append(t.anomalies, Anomaly{Parent: parentLabel, Position: pos})
			}

			idx := t.add(cur.parent, n)
			if n.Kind == Branch {
				queue = append(queue, pendingList{list: nested, parent: idx})
			}
		})
	}

	return t
}

// ownText concatenates the text nodes below li in document order, skipping
// anything inside a nested list. Whitespace runs collapse to a single space.
func ownText(li *goquery.Selection) string {
	var b strings.Builder

	for _, root := range li.Nodes {
		stack := []*html.Node{}
		for c := root.LastChild; c != nil; c = c.PrevSibling {
			stack = append(stack, c)
		}

		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			switch n.Type {
			case html.TextNode:
				b.WriteString(n.Data)
				continue
			case html.ElementNode:
				if n.Data == "ul" || n.Data == "ol" {
					continue
				}
			default:
				continue
			}

			for c := n.LastChild; c != nil; c = c.PrevSibling {
				stack = append(stack, c)
			}
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
