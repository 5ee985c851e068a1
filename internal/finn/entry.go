package finn

import (
	"strings"

	domain "github.com/donaldgifford/finn-client/pkg/types"
)

// Namespace prefixes FINN documents declare for each role. The Atom
// elements live in the default namespace.
const (
	prefixDublinCore = "dc"
	prefixOpenSearch = "os"
	prefixFinn       = "finn"
	prefixGeo        = "georss"
	prefixMedia      = "media"
	prefixFeed       = "f"
)

// Category schemes carrying listing classification.
const (
	schemePrivate  = "urn:finn:ad:private"
	schemeDisposed = "urn:finn:ad:disposed"
	schemeType     = "urn:finn:ad:type"
)

const rangeSeparator = " — "

// fieldFunc maps one finn:field or finn:price element onto the listing.
// vendor is the URI of the finn namespace.
type fieldFunc func(l *domain.Listing, f *Node, vendor string)

// adataFields dispatches finn:adata/finn:field elements on their name.
var adataFields = map[string]fieldFunc{
	"housing_unit": func(l *domain.Listing, f *Node, _ string) {
		l.HousingUnit = firstToken(f.AttrPtr("value"))
	},
	"floor": func(l *domain.Listing, f *Node, _ string) {
		l.Floor = firstToken(f.AttrPtr("value"))
	},
	"no_of_floors": func(l *domain.Listing, f *Node, _ string) {
		l.NumberOfFloors = f.AttrPtr("value")
	},
	"no_of_units": func(l *domain.Listing, f *Node, _ string) {
		l.NumberOfUnits = f.AttrPtr("value")
	},
	"no_of_rooms": func(l *domain.Listing, f *Node, _ string) {
		l.NumberOfRooms = f.AttrPtr("value")
	},
	"no_of_bedrooms": func(l *domain.Listing, f *Node, _ string) {
		l.NumberOfBedrooms = bedrooms(f)
	},
	"property_type": func(l *domain.Listing, f *Node, vendor string) {
		l.PropertyType = f.ChildText(vendor, "value")
	},
	"ownership_type": func(l *domain.Listing, f *Node, _ string) {
		l.OwnershipType = f.AttrPtr("value")
	},
	"viewing_date": func(l *domain.Listing, f *Node, vendor string) {
		l.ViewingDates = valueTexts(f, vendor)
	},
	"size": parseSize,
	"area": parseArea,
	"facilities": func(l *domain.Listing, f *Node, vendor string) {
		l.Facilities = valueTexts(f, vendor)
	},
	"general_text": parseGeneralText,
	"ingress": func(l *domain.Listing, f *Node, _ string) {
		l.Ingress = f.TextPtr()
	},
	"situation": func(l *domain.Listing, f *Node, _ string) {
		l.Situation = f.TextPtr()
	},
	"viewings": parseViewings,
}

// priceFields dispatches finn:adata/finn:price elements on their name.
var priceFields = map[string]fieldFunc{
	"total": func(l *domain.Listing, p *Node, _ string) {
		setOnce(&l.TotalPrice, p.AttrPtr("value"))
		setOnce(&l.TotalPriceFrom, p.AttrPtr("from"))
		setOnce(&l.TotalPriceTo, p.AttrPtr("to"))
	},
	"main": func(l *domain.Listing, p *Node, _ string) {
		setIfPresent(&l.MainPrice, p.AttrPtr("value"))
		setIfPresent(&l.MainPriceFrom, p.AttrPtr("from"))
		setIfPresent(&l.MainPriceTo, p.AttrPtr("to"))
	},
	"collective_debt": func(l *domain.Listing, p *Node, _ string) {
		setIfPresent(&l.CollectiveDebt, p.AttrPtr("value"))
	},
	"shared_cost": func(l *domain.Listing, p *Node, _ string) {
		setIfPresent(&l.SharedCost, p.AttrPtr("value"))
	},
	"estimated_value": func(l *domain.Listing, p *Node, _ string) {
		setIfPresent(&l.EstimatedValue, p.AttrPtr("value"))
	},
	"square_meter": func(l *domain.Listing, p *Node, _ string) {
		setIfPresent(&l.SqmPrice, p.AttrPtr("value"))
	},
}

// ParseListing parses a standalone entry document, as returned by the ad
// endpoint, using the document's own namespace declarations.
func ParseListing(raw []byte) (*domain.Listing, error) {
	root, ns, err := decodeDocument(raw)
	if err != nil {
		return nil, &ParseError{Op: "parse listing", Err: err}
	}

	l := ParseEntry(root, ns)
	return &l, nil
}

// ParseEntry maps one decoded entry element onto a Listing. Missing
// elements and attributes leave the corresponding fields nil.
func ParseEntry(entry *Node, ns Namespaces) domain.Listing {
	var l domain.Listing
	atom := ns.Default()

	if dc, ok := ns.Lookup(prefixDublinCore); ok {
		l.ID = entry.ChildText(dc, "identifier")
	}
	l.Title = entry.ChildText(atom, "title")
	l.Updated = entry.ChildText(atom, "updated")
	l.Published = entry.ChildText(atom, "published")
	l.Links = parseLinks(entry, atom)

	parseCategories(&l, entry, atom)

	if vendor, ok := ns.Lookup(prefixFinn); ok {
		parseLocation(&l, entry, vendor)
		l.Contacts = parseContacts(entry, vendor)

		if adata := entry.Child(vendor, "adata"); adata != nil {
			parseAdata(&l, adata, vendor)
		}
	}

	if geo, ok := ns.Lookup(prefixGeo); ok {
		l.Geo = parseGeo(entry, geo)
	}

	if media, ok := ns.Lookup(prefixMedia); ok {
		l.Images = parseImages(entry, media)
	}

	if author := entry.Child(atom, "author"); author != nil {
		l.Author = author.ChildText(atom, "name")
	}

	return l
}

func parseLinks(n *Node, atom string) []domain.NavLink {
	var links []domain.NavLink
	for _, link := range n.ChildrenNS(atom, "link") {
		rel, _ := link.Attr("rel")
		href, _ := link.Attr("href")
		links = append(links, domain.NavLink{Rel: rel, Ref: href})
	}
	return links
}

func parseCategories(l *domain.Listing, entry *Node, atom string) {
	for _, c := range entry.ChildrenNS(atom, "category") {
		scheme, _ := c.Attr("scheme")
		switch scheme {
		case schemePrivate:
			l.IsPrivate = c.AttrPtr("term")
		case schemeDisposed:
			if term, _ := c.Attr("term"); term == "true" {
				l.Status = c.AttrPtr("label")
			}
		case schemeType:
			l.AdType = c.AttrPtr("term")
		}
	}
}

func parseLocation(l *domain.Listing, entry *Node, vendor string) {
	loc := entry.Child(vendor, "location")
	if loc == nil {
		return
	}
	l.City = loc.ChildText(vendor, "city")
	l.Address = loc.ChildText(vendor, "address")
	l.PostalCode = loc.ChildText(vendor, "postal-code")
}

func parseGeo(entry *Node, geo string) *domain.Geo {
	point := entry.ChildText(geo, "point")
	if point == nil {
		return nil
	}
	coords := strings.Fields(*point)
	if len(coords) < 2 {
		return nil
	}
	return &domain.Geo{Lat: coords[0], Lng: coords[1]}
}

func parseContacts(entry *Node, vendor string) []domain.Contact {
	var contacts []domain.Contact
	for _, c := range entry.ChildrenNS(vendor, "contact") {
		contact := domain.Contact{
			Name:  c.ChildTextLocal("name"),
			Email: c.ChildTextLocal("email"),
			Title: c.AttrPtr("title"),
		}

		for _, phone := range c.ChildrenLocal("phone-number") {
			kind, ok := phone.Attr("type")
			if !ok {
				kind, _ = phone.FirstAttr()
			}
			switch kind {
			case "work":
				contact.Work = phone.TextPtr()
			case "mobile":
				contact.Mobile = phone.TextPtr()
			case "fax":
				contact.Fax = phone.TextPtr()
			}
		}

		contacts = append(contacts, contact)
	}
	return contacts
}

func parseImages(entry *Node, media string) []string {
	var images []string
	for _, content := range entry.ChildrenNS(media, "content") {
		if src, ok := content.FirstAttr(); ok {
			images = append(images, src)
		}
	}
	return images
}

func parseAdata(l *domain.Listing, adata *Node, vendor string) {
	for _, f := range adata.ChildrenNS(vendor, "field") {
		name, _ := f.Attr("name")
		if fn, ok := adataFields[name]; ok {
			fn(l, f, vendor)
		}
	}

	for _, p := range adata.ChildrenNS(vendor, "price") {
		name, _ := p.Attr("name")
		if fn, ok := priceFields[name]; ok {
			fn(l, p, vendor)
		}
	}

	backfillTotal(l)
}

// backfillTotal copies each main price slot into its total counterpart when
// the document gave no explicit total for that slot.
func backfillTotal(l *domain.Listing) {
	setOnce(&l.TotalPrice, clone(l.MainPrice))
	setOnce(&l.TotalPriceFrom, clone(l.MainPriceFrom))
	setOnce(&l.TotalPriceTo, clone(l.MainPriceTo))
}

func parseSize(l *domain.Listing, f *Node, vendor string) {
	for _, sub := range f.ChildrenNS(vendor, "field") {
		name, _ := sub.Attr("name")
		switch name {
		case "usable":
			l.UsableSize = sub.AttrPtr("value")
		case "primary":
			l.PrimarySize = sub.AttrPtr("value")
		}
		setIfPresent(&l.PrimarySizeFrom, sub.AttrPtr("from"))
		setIfPresent(&l.PrimarySizeTo, sub.AttrPtr("to"))
	}
}

func parseArea(l *domain.Listing, f *Node, vendor string) {
	for _, sub := range f.ChildrenNS(vendor, "field") {
		name, _ := sub.Attr("name")
		switch name {
		case "from":
			l.PrimarySizeFrom = sub.AttrPtr("value")
		case "to":
			l.PrimarySizeTo = sub.AttrPtr("value")
		}
	}
}

func parseGeneralText(l *domain.Listing, f *Node, vendor string) {
	var texts []domain.Description
	for _, v := range f.ChildrenNS(vendor, "value") {
		var d domain.Description
		for _, sub := range v.ChildrenNS(vendor, "field") {
			name, _ := sub.Attr("name")
			switch name {
			case "title":
				d.Title = sub.AttrPtr("value")
			case "value":
				d.Value = sub.TextPtr()
			}
		}
		texts = append(texts, d)
	}
	l.Descriptions = texts
}

func parseViewings(l *domain.Listing, f *Node, vendor string) {
	var slots []domain.Viewing
	for _, v := range f.ChildrenNS(vendor, "value") {
		var slot domain.Viewing
		for _, sub := range v.ChildrenNS(vendor, "field") {
			name, _ := sub.Attr("name")
			switch name {
			case "note":
				slot.Note = attrOrText(sub)
			case "date":
				slot.Date = attrOrText(sub)
			case "from":
				slot.From = attrOrText(sub)
			case "to":
				slot.To = attrOrText(sub)
			}
		}
		slots = append(slots, slot)
	}
	l.Viewings = slots
}

// bedrooms prefers a single value and otherwise renders the from/to range.
// A range with only one bound yields that bound.
func bedrooms(f *Node) *string {
	if v := f.AttrPtr("value"); v != nil {
		return v
	}

	from, to := f.AttrPtr("from"), f.AttrPtr("to")
	switch {
	case from != nil && to != nil:
		s := *from + rangeSeparator + *to
		return &s
	case from != nil:
		return from
	default:
		return to
	}
}

func valueTexts(f *Node, vendor string) []string {
	var out []string
	for _, v := range f.ChildrenNS(vendor, "value") {
		out = append(out, v.Text)
	}
	return out
}

func attrOrText(n *Node) *string {
	if v := n.AttrPtr("value"); v != nil {
		return v
	}
	return n.TextPtr()
}

// firstToken returns the first comma separated token of s.
func firstToken(s *string) *string {
	if s == nil {
		return nil
	}
	head, _, _ := strings.Cut(*s, ",")
	head = strings.TrimSpace(head)
	return &head
}

func setIfPresent(dst **string, v *string) {
	if v != nil {
		*dst = v
	}
}

func setOnce(dst **string, v *string) {
	if *dst == nil && v != nil {
		*dst = v
	}
}

func clone(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
