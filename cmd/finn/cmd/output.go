package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	domain "github.com/donaldgifford/finn-client/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

// field writes a detail row only when the value is present.
func (tw *tabWriter) field(label string, v *string) {
	if v != nil && *v != "" {
		tw.writef("%s:\t%s\n", label, *v)
	}
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printResultSet(w io.Writer, rs *domain.ResultSet) error {
	tw := newTabWriter(w)
	if rs.Title != nil {
		tw.writef("%s", *rs.Title)
		if rs.TotalResults != nil {
			tw.writef(" (%d results)", *rs.TotalResults)
		}
		tw.writef("\n\n")
	}

	tw.writef("FINNCODE\tTITLE\tPRICE\tBEDROOMS\tLOCATION\tSTATUS\n")
	for i := range rs.Results {
		l := &rs.Results[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			orDash(l.ID),
			truncate(domain.Value(l.Title), 40),
			l.PriceLabel(),
			orDash(l.NumberOfBedrooms),
			truncate(l.Location(), 40),
			orDash(l.Status),
		)
	}
	return tw.finish()
}

func printListingDetail(w io.Writer, l *domain.Listing) error {
	tw := newTabWriter(w)
	tw.field("Finncode", l.ID)
	tw.field("Title", l.Title)
	tw.field("Type", l.AdType)
	tw.field("Status", l.Status)
	tw.writef("Price:\t%s\n", l.PriceLabel())
	tw.field("Asking price", l.MainPrice)
	tw.field("Shared cost", l.SharedCost)
	tw.field("Collective debt", l.CollectiveDebt)
	if loc := l.Location(); loc != "" {
		tw.writef("Location:\t%s\n", loc)
	}
	if l.Geo != nil {
		tw.writef("Coordinates:\t%s, %s\n", l.Geo.Lat, l.Geo.Lng)
	}
	tw.field("Property type", l.PropertyType)
	tw.field("Ownership", l.OwnershipType)
	tw.field("Rooms", l.NumberOfRooms)
	tw.field("Bedrooms", l.NumberOfBedrooms)
	tw.field("Floor", l.Floor)
	tw.field("Usable size", l.UsableSize)
	tw.field("Primary size", l.PrimarySize)
	if len(l.Facilities) > 0 {
		tw.writef("Facilities:\t%s\n", strings.Join(l.Facilities, ", "))
	}
	for i := range l.Viewings {
		v := &l.Viewings[i]
		tw.writef("Viewing:\t%s %s-%s\n", domain.Value(v.Date), domain.Value(v.From), domain.Value(v.To))
	}
	for i := range l.Contacts {
		c := &l.Contacts[i]
		tw.writef("Contact:\t%s\n", strings.Join(nonEmpty(c.Name, c.Title, c.Mobile, c.Work, c.Email), ", "))
	}
	tw.field("Author", l.Author)
	tw.field("Updated", l.Updated)
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func nonEmpty(vals ...*string) []string {
	var out []string
	for _, v := range vals {
		if v != nil && *v != "" {
			out = append(out, *v)
		}
	}
	return out
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
