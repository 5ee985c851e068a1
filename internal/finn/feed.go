package finn

import (
	"strconv"

	domain "github.com/donaldgifford/finn-client/pkg/types"
)

// ParseResultSet parses a search feed: feed metadata, sort options,
// navigation links and every entry in document order.
func ParseResultSet(raw []byte) (*domain.ResultSet, error) {
	feed, ns, err := decodeDocument(raw)
	if err != nil {
		return nil, &ParseError{Op: "parse result set", Err: err}
	}

	atom := ns.Default()

	rs := &domain.ResultSet{
		Title:    feed.ChildText(atom, "title"),
		Subtitle: feed.ChildText(atom, "subtitle"),
		Sort:     parseSortOptions(feed, ns),
		Links:    parseLinks(feed, atom),
	}

	if os, ok := ns.Lookup(prefixOpenSearch); ok {
		rs.TotalResults = parseCount(feed.ChildText(os, "totalResults"))
	}

	entries := feed.ChildrenNS(atom, "entry")
	rs.Results = make([]domain.Listing, 0, len(entries))
	for _, e := range entries {
		rs.Results = append(rs.Results, ParseEntry(e, ns))
	}

	return rs, nil
}

// parseSortOptions walks f:sort/os:Query. Both prefixes must be declared.
func parseSortOptions(feed *Node, ns Namespaces) []domain.SortOption {
	f, okF := ns.Lookup(prefixFeed)
	os, okOS := ns.Lookup(prefixOpenSearch)
	if !okF || !okOS {
		return nil
	}

	var opts []domain.SortOption
	for _, sort := range feed.ChildrenNS(f, "sort") {
		for _, q := range sort.ChildrenNS(os, "Query") {
			selected, _ := q.AttrNS(f, "selected")
			value, _ := q.AttrNS(f, "sort")
			title, _ := q.Attr("title")

			isSelected, err := strconv.ParseBool(selected)
			if err != nil {
				isSelected = false
			}

			opts = append(opts, domain.SortOption{
				Selected: isSelected,
				Value:    value,
				Title:    title,
			})
		}
	}
	return opts
}

func parseCount(s *string) *int {
	if s == nil {
		return nil
	}
	n, err := strconv.Atoi(*s)
	if err != nil {
		return nil
	}
	return &n
}
