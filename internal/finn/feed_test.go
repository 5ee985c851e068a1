package finn_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/finn-client/internal/finn"
	domain "github.com/donaldgifford/finn-client/pkg/types"
)

func TestParseResultSet_SearchFeed(t *testing.T) {
	t.Parallel()

	rs, err := finn.ParseResultSet(readFixture(t, "search_feed.xml"))
	require.NoError(t, err)
	require.NotNil(t, rs)

	assert.Equal(t, ptr("FINN eiendom: bolig til salgs"), rs.Title)
	assert.Equal(t, ptr("Søk i bolig til salgs"), rs.Subtitle)
	require.NotNil(t, rs.TotalResults)
	assert.Equal(t, 1342, *rs.TotalResults)

	assert.Equal(t, []domain.SortOption{
		{Selected: true, Value: "0", Title: "Mest relevant"},
		{Selected: false, Value: "1", Title: "Publisert"},
		{Selected: false, Value: "3", Title: "Pris lav-høy"},
	}, rs.Sort)

	assert.Equal(t, []domain.NavLink{
		{Rel: "self", Ref: "https://cache.api.finn.no/iad/search/realestate-homes?q=oslo"},
		{Rel: "next", Ref: "https://cache.api.finn.no/iad/search/realestate-homes?q=oslo&page=2"},
		{Rel: "last", Ref: "https://cache.api.finn.no/iad/search/realestate-homes?q=oslo&page=448"},
	}, rs.Links)

	require.Len(t, rs.Results, 3)

	ids := make([]string, 0, len(rs.Results))
	for _, l := range rs.Results {
		ids = append(ids, domain.Value(l.ID))
	}
	assert.Equal(t, []string{"100000001", "100000002", "100000003"}, ids)
}

func TestParseResultSet_Entries(t *testing.T) {
	t.Parallel()

	rs, err := finn.ParseResultSet(readFixture(t, "search_feed.xml"))
	require.NoError(t, err)
	require.Len(t, rs.Results, 3)

	first := rs.Results[0]
	assert.Equal(t, ptr("Lys 3-roms med balkong"), first.Title)
	assert.Equal(t, ptr("Oslo"), first.City)
	assert.Equal(t, ptr("Storgata 1"), first.Address)
	assert.Equal(t, ptr("0155"), first.PostalCode)
	assert.Equal(t, &domain.Geo{Lat: "59.9139", Lng: "10.7522"}, first.Geo)
	assert.Equal(t, []string{
		"https://images.finncdn.no/a1.jpg",
		"https://images.finncdn.no/a2.jpg",
	}, first.Images)
	assert.Equal(t, ptr("2"), first.NumberOfBedrooms)
	assert.Equal(t, ptr("4500000"), first.MainPrice)
	assert.Equal(t, ptr("4500000"), first.TotalPrice)
	assert.Equal(t, ptr("false"), first.IsPrivate)
	assert.Nil(t, first.Status)
	assert.Equal(t, ptr("realestate-homes"), first.AdType)
	assert.Equal(t, ptr("Eiendomsmegler Nord AS"), first.Author)

	second := rs.Results[1]
	assert.Equal(t, ptr("true"), second.IsPrivate)
	assert.Equal(t, ptr("Solgt"), second.Status)
	assert.Equal(t, ptr("5200000"), second.MainPrice)
	assert.Equal(t, ptr("5350000"), second.TotalPrice)
	assert.Equal(t, ptr("Bergen"), second.City)
	assert.Nil(t, second.Address)
	assert.Nil(t, second.Geo)
	assert.Nil(t, second.Images)

	third := rs.Results[2]
	assert.Nil(t, third.Status)
	assert.Equal(t, ptr("2 — 4"), third.NumberOfBedrooms)
	assert.Nil(t, third.MainPrice)
	assert.Nil(t, third.TotalPrice)
	assert.Equal(t, ptr("3900000"), third.MainPriceFrom)
	assert.Equal(t, ptr("6100000"), third.MainPriceTo)
	assert.Equal(t, ptr("3900000"), third.TotalPriceFrom)
	assert.Equal(t, ptr("6100000"), third.TotalPriceTo)
}

func TestParseResultSet_EntriesMatchStandaloneParse(t *testing.T) {
	t.Parallel()

	// An entry parsed inside a feed yields the same record as the same
	// entry parsed on its own with identical declarations.
	entry := `<entry>` +
		`<dc:identifier>42</dc:identifier><title>Hytte</title>` +
		`<finn:location><finn:city>Geilo</finn:city></finn:location>` +
		`<finn:adata><finn:price name="main" value="2500000"/></finn:adata>` +
		`</entry>`
	decls := ` xmlns="http://www.w3.org/2005/Atom"` +
		` xmlns:dc="http://purl.org/dc/terms/"` +
		` xmlns:finn="http://xmlns.finn.no/finn/"`

	rs, err := finn.ParseResultSet([]byte(`<feed` + decls + `>` + entry + `</feed>`))
	require.NoError(t, err)
	require.Len(t, rs.Results, 1)

	standalone, err := finn.ParseListing([]byte(`<entry` + decls + entry[len(`<entry`):]))
	require.NoError(t, err)

	assert.Equal(t, *standalone, rs.Results[0])
}

func TestParseResultSet_Optional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		raw         string
		wantTotal   *int
		wantSort    []domain.SortOption
		wantResults int
	}{
		{
			name:        "empty feed",
			raw:         `<feed xmlns="http://www.w3.org/2005/Atom"/>`,
			wantResults: 0,
		},
		{
			name: "total results not numeric",
			raw: `<feed xmlns="http://www.w3.org/2005/Atom" xmlns:os="http://a9.com/-/spec/opensearch/1.1/">` +
				`<os:totalResults>many</os:totalResults></feed>`,
		},
		{
			name: "open search undeclared",
			raw: `<feed xmlns="http://www.w3.org/2005/Atom">` +
				`<totalResults>12</totalResults></feed>`,
		},
		{
			name: "sort without feed namespace",
			raw: `<feed xmlns="http://www.w3.org/2005/Atom" xmlns:os="http://a9.com/-/spec/opensearch/1.1/">` +
				`<sort><os:Query title="x"/></sort></feed>`,
		},
		{
			name: "selected not boolean",
			raw: `<feed xmlns="http://www.w3.org/2005/Atom" xmlns:os="http://a9.com/-/spec/opensearch/1.1/" xmlns:f="urn:finn:feed">` +
				`<f:sort><os:Query f:selected="yes" f:sort="2" title="Pris"/></f:sort></feed>`,
			wantSort: []domain.SortOption{{Selected: false, Value: "2", Title: "Pris"}},
		},
		{
			name: "entries without vendor namespace",
			raw: `<feed xmlns="http://www.w3.org/2005/Atom">` +
				`<entry><title>a</title></entry><entry><title>b</title></entry></feed>`,
			wantResults: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rs, err := finn.ParseResultSet([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, rs.TotalResults)
			assert.Equal(t, tt.wantSort, rs.Sort)
			assert.NotNil(t, rs.Results)
			assert.Len(t, rs.Results, tt.wantResults)
		})
	}
}

func TestParseResultSet_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "html error page", raw: `<html><body><p>Service unavailable</body></html>`},
		{name: "unterminated feed", raw: `<feed xmlns="http://www.w3.org/2005/Atom"><entry>`},
		{name: "no root", raw: `   `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rs, err := finn.ParseResultSet([]byte(tt.raw))
			require.Error(t, err)
			assert.Nil(t, rs)

			var perr *finn.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "parse result set", perr.Op)
		})
	}
}
