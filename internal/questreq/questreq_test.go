package questreq

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const questTable = `<table class="questreq"><ul><li>Thing</li><li>Other</li><li>Another<ul><li>More</li></ul></li><li>Last</li></ul></table>`

func newDoc(t *testing.T, src string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

func firstList(t *testing.T, src string) *goquery.Selection {
	t.Helper()

	list := newDoc(t, src).Find("ul").First()
	require.Equal(t, 1, list.Length(), "fixture has no list")
	return list
}

func TestLocate(t *testing.T) {
	input := `<html><table class="this"><tbody></tbody></table>` + questTable + `</html>`

	t.Run("finds table by class", func(t *testing.T) {
		table, ok := Locate(newDoc(t, input), "questreq")
		require.True(t, ok)
		assert.Equal(t, 1, table.Length())
		assert.Equal(t, "table", goquery.NodeName(table))
		assert.True(t, table.HasClass("questreq"))
		assert.False(t, table.HasClass("this"))
	})

	t.Run("finds a different table by class", func(t *testing.T) {
		table, ok := Locate(newDoc(t, input), "this")
		require.True(t, ok)
		assert.True(t, table.HasClass("this"))
		assert.Equal(t, 1, table.Find("tbody").Length())
		assert.Equal(t, 0, table.Find("li").Length())
	})

	t.Run("ignores non-table elements with the class", func(t *testing.T) {
		doc := newDoc(t, `<html><p class="questreq">nope</p>`+questTable+`</html>`)
		table, ok := Locate(doc, "questreq")
		require.True(t, ok)
		assert.Equal(t, "table", goquery.NodeName(table))
	})

	t.Run("matches one of several classes", func(t *testing.T) {
		doc := newDoc(t, `<table class="wikitable questreq plainlinks"><tr><td>x</td></tr></table>`)
		_, ok := Locate(doc, "questreq")
		assert.True(t, ok)
	})

	t.Run("missing table is not an error", func(t *testing.T) {
		table, ok := Locate(newDoc(t, `<html><p class="questreq"></p></html>`), "questreq")
		assert.False(t, ok)
		assert.Nil(t, table)
	})

	t.Run("nil document", func(t *testing.T) {
		_, ok := Locate(nil, "questreq")
		assert.False(t, ok)
	})
}

func TestRequirementList(t *testing.T) {
	t.Run("list inside table cell", func(t *testing.T) {
		doc := newDoc(t, `<table class="questreq"><tbody><tr><th>junk</th></tr><tr><td><ul><li>A</li></ul></td></tr></tbody></table>`)
		table, ok := Locate(doc, "questreq")
		require.True(t, ok)

		list, ok := RequirementList(table)
		require.True(t, ok)
		assert.Equal(t, "A", list.Find("li").Text())
	})

	t.Run("list moved in front of the table", func(t *testing.T) {
		doc := newDoc(t, `<html><table class="this"><tbody></tbody></table>`+questTable+`</html>`)
		table, ok := Locate(doc, "questreq")
		require.True(t, ok)

		list, ok := RequirementList(table)
		require.True(t, ok)
		assert.Equal(t, 4, list.ChildrenFiltered("li").Length())
	})

	t.Run("list before a table with rows is not taken", func(t *testing.T) {
		doc := newDoc(t, `<ul><li>Home</li><li>Random page</li></ul><table class="questreq"><tr><td>None</td></tr></table>`)
		table, ok := Locate(doc, "questreq")
		require.True(t, ok)

		_, ok = RequirementList(table)
		assert.False(t, ok)
	})

	t.Run("table without a list", func(t *testing.T) {
		doc := newDoc(t, `<table class="questreq"><tr><td>None</td></tr></table>`)
		table, ok := Locate(doc, "questreq")
		require.True(t, ok)

		_, ok = RequirementList(table)
		assert.False(t, ok)
	})
}

func TestFlattenAndSimplify(t *testing.T) {
	tests := []struct {
		name string
		html string
		want Adjacency
	}{
		{
			name: "single item",
			html: `<table class="questreq"><ul><li><a>Thing</a></li></ul></table>`,
			want: Adjacency{"Thing": {}},
		},
		{
			name: "flat list",
			html: `<table class="questreq"><tbody><ul><li><a>content</a></li><li><a>other</a></li></ul></tbody></table>`,
			want: Adjacency{"content": {}, "other": {}},
		},
		{
			name: "nested list under plain text",
			html: `<table class="questreq"><tbody><tr><th>junk</th></tr><tr><td><ul><li>outer<ul><li><a>content</a></li><li><a>other</a></li></ul></li></ul></td></tr></tbody></table>`,
			want: Adjacency{"outer": {"content", "other"}, "content": {}, "other": {}},
		},
		{
			name: "nested list under a link",
			html: `<table class="questreq"><tbody><tr><th>junk</th></tr><tr><td><ul><li><a>outer</a><ul><li><a>content</a></li><li><a>other</a></li></ul></li></ul></td></tr></tbody></table>`,
			want: Adjacency{"outer": {"content", "other"}, "content": {}, "other": {}},
		},
		{
			name: "text split by inline tags",
			html: `<table class="questreq"><tbody><tr><td><ul><li><a>outer</a><ul><li>extra<a>content</a></li><li><a>other</a></li></ul></li></ul></td></tr></tbody></table>`,
			want: Adjacency{"outer": {"extracontent", "other"}, "extracontent": {}, "other": {}},
		},
		{
			name: "doubly nested list",
			html: `<ul><li>outer<ul><li>first child</li><li>nested parent<ul><li>second child</li></ul></li></ul></li></ul>`,
			want: Adjacency{
				"outer":         {"first child", "nested parent"},
				"nested parent": {"second child"},
				"first child":   {},
				"second child":  {},
			},
		},
		{
			name: "items without anchors",
			html: `<ul><li>  Cook's   Assistant </li><li>Rune<i>scape</i> Mysteries</li></ul>`,
			want: Adjacency{"Cook's Assistant": {}, "Runescape Mysteries": {}},
		},
		{
			name: "nested list wrapped in a div",
			html: `<ul><li><b>Wanted!</b><div><ul><li>Rune Mysteries</li></ul></div></li></ul>`,
			want: Adjacency{"Wanted!": {"Rune Mysteries"}, "Rune Mysteries": {}},
		},
		{
			name: "nested list inside a link",
			html: `<ul><li><a>Thing</a></li><li><a>Another<ul><li><a>More</a></li></ul></a></li></ul>`,
			want: Adjacency{"Thing": {}, "Another": {"More"}, "More": {}},
		},
		{
			name: "ordered lists",
			html: `<ol><li>A<ol><li>B</li></ol></li></ol>`,
			want: Adjacency{"A": {"B"}, "B": {}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := newDoc(t, tt.html).Find(listSelector).First()
			require.Equal(t, 1, list.Length())

			got := Simplify(Flatten(list))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlattenTree(t *testing.T) {
	tree := Flatten(firstList(t, `<ul><li>outer<ul><li>leaf</li><li>empty<ul></ul></li></ul></li><li>top</li></ul>`))

	require.Len(t, tree.Roots(), 2)
	outer := tree.Node(tree.Roots()[0])
	assert.Equal(t, "outer", outer.Label)
	assert.Equal(t, Branch, outer.Kind)
	assert.Equal(t, []string{"leaf", "empty"}, tree.Labels(outer.Children))

	empty := tree.Node(outer.Children[1])
	assert.Equal(t, Branch, empty.Kind, "an empty nested list still makes a branch")
	assert.Empty(t, empty.Children)

	top := tree.Node(tree.Roots()[1])
	assert.Equal(t, Leaf, top.Kind)
	assert.Equal(t, "leaf", top.Kind.String())
	assert.Equal(t, 4, tree.Len())
}

func TestFlattenEmptyInput(t *testing.T) {
	assert.Equal(t, 0, Flatten(nil).Len())
	assert.Equal(t, Adjacency{}, Simplify(Flatten(nil)))
	assert.Equal(t, Adjacency{}, Simplify(nil))
}

func TestFlattenRecordsEmptyLabels(t *testing.T) {
	tree := Flatten(firstList(t, `<ul><li>   </li><li>Quest<ul><li>ok</li><li><span> </span></li></ul></li></ul>`))

	assert.Equal(t, []Anomaly{
		{Parent: "", Position: 0},
		{Parent: "Quest", Position: 1},
	}, tree.Anomalies())

	adj := Simplify(tree)
	assert.Contains(t, adj, "")
	assert.Equal(t, []string{"ok", ""}, adj["Quest"])
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"5", "5 QPs"},
		{"120", "120 QPs"},
		{"Senliten", "Senliten fully restored"},
		{"senliten", "senliten"},
		{"5a", "5a"},
		{"", ""},
		{"Dragon Slayer", "Dragon Slayer"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestNormalizeOnlyNestedLeaves(t *testing.T) {
	adj := Simplify(Flatten(firstList(t, `<ul><li>5</li><li>Senliten</li><li>Quest<ul><li>5</li><li>Senliten</li></ul></li></ul>`)))

	assert.Equal(t, Adjacency{
		"5":                       {},
		"Senliten":                {},
		"Quest":                   {"5 QPs", "Senliten fully restored"},
		"5 QPs":                   {},
		"Senliten fully restored": {},
	}, adj)
}

func TestSimplifyCoversEveryChild(t *testing.T) {
	adj := Simplify(Flatten(firstList(t,
		`<ul><li>A<ul><li>B<ul><li>C<ul><li>D</li></ul></li></ul></li><li>E</li></ul></li><li>F<ul><li>B</li></ul></li></ul>`)))

	for key, children := range adj {
		for _, c := range children {
			assert.Contains(t, adj, c, "child %q of %q has no key", c, key)
		}
	}
	assert.Equal(t, []string{"C"}, adj["B"], "a later leaf mention keeps the known children")
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, adj.Keys())
	assert.Equal(t, 5, adj.Edges())
}

func TestSimplifyDuplicateLabels(t *testing.T) {
	t.Run("different children are joined and reported", func(t *testing.T) {
		tree := Flatten(firstList(t, `<ul><li>Top<ul>`+
			`<li>Shared<ul><li>X</li></ul></li>`+
			`<li>Other<ul><li>Shared<ul><li>Y</li></ul></li></ul></li>`+
			`</ul></li></ul>`))

		adj, dups := SimplifyDuplicates(tree)
		assert.Equal(t, []string{"X", "Y"}, adj["Shared"])
		assert.Equal(t, []string{"Shared"}, adj["Other"])
		assert.Contains(t, adj, "Y")
		assert.Equal(t, []Duplicate{{Label: "Shared", First: []string{"X"}, Second: []string{"Y"}}}, dups)
	})

	t.Run("same children in another order are not reported", func(t *testing.T) {
		tree := Flatten(firstList(t, `<ul><li>A<ul><li>X</li><li>Y</li></ul></li>`+
			`<li>B<ul><li>A<ul><li>Y</li><li>X</li></ul></li></ul></li></ul>`))

		adj, dups := SimplifyDuplicates(tree)
		assert.Empty(t, dups)
		assert.Equal(t, []string{"X", "Y"}, adj["A"])
	})

	t.Run("leaf after branch is not reported", func(t *testing.T) {
		tree := Flatten(firstList(t, `<ul><li>A<ul><li>X</li></ul></li><li>B<ul><li>A</li></ul></li></ul>`))

		adj, dups := SimplifyDuplicates(tree)
		assert.Empty(t, dups)
		assert.Equal(t, []string{"X"}, adj["A"])
	})
}

func TestParseEndToEnd(t *testing.T) {
	input := `<html><table class="this"><tbody></tbody></table>` + questTable + `</html>`

	res, err := Parse(strings.NewReader(input), DefaultTableClass)
	require.NoError(t, err)
	require.True(t, res.Found)

	assert.Equal(t, Adjacency{
		"Thing":   {},
		"Other":   {},
		"Another": {"More"},
		"More":    {},
		"Last":    {},
	}, res.Adjacency)
	assert.Empty(t, res.Duplicates)
}

func TestParseWithoutTable(t *testing.T) {
	res, err := Parse(strings.NewReader(`<html><body><p>No requirements.</p></body></html>`), DefaultTableClass)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Adjacency)
	assert.Equal(t, 0, res.Tree.Len())
}

func TestParseIgnoresListOutsideTableWithRows(t *testing.T) {
	page := `<html><body><ul><li>Home</li><li>Random page</li></ul>` +
		`<table class="questreq"><tr><td>None</td></tr></table></body></html>`

	res, err := Parse(strings.NewReader(page), DefaultTableClass)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Adjacency)
}

func TestParseMalformedMarkup(t *testing.T) {
	input := `<table class="questreq"><tr><td><ul><li>Open<ul><li>Child<li>Sibling</ul><li>Tail</td></tr>`

	res, err := Parse(strings.NewReader(input), DefaultTableClass)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []string{"Child", "Sibling"}, res.Adjacency["Open"])
	assert.Contains(t, res.Adjacency, "Tail")
}
