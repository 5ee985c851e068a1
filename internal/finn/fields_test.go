package finn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/finn-client/pkg/types"
)

const vendorURI = "http://xmlns.finn.no/finn/"

// decodeField decodes a single finn:field or finn:price element.
func decodeField(t *testing.T, elem string) *Node {
	t.Helper()
	root, _, err := decodeDocument([]byte(
		`<finn:adata xmlns:finn="` + vendorURI + `">` + elem + `</finn:adata>`,
	))
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	return root.Children[0]
}

func sp(s string) *string {
	return &s
}

func TestAdataFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field string
		elem  string
		want  domain.Listing
	}{
		{
			name:  "housing_unit",
			field: "housing_unit",
			elem:  `<finn:field name="housing_unit" value="H0101, bakkeplan"/>`,
			want:  domain.Listing{HousingUnit: sp("H0101")},
		},
		{
			name:  "floor",
			field: "floor",
			elem:  `<finn:field name="floor" value="2"/>`,
			want:  domain.Listing{Floor: sp("2")},
		},
		{
			name:  "no_of_floors",
			field: "no_of_floors",
			elem:  `<finn:field name="no_of_floors" value="7"/>`,
			want:  domain.Listing{NumberOfFloors: sp("7")},
		},
		{
			name:  "no_of_units",
			field: "no_of_units",
			elem:  `<finn:field name="no_of_units" value="12"/>`,
			want:  domain.Listing{NumberOfUnits: sp("12")},
		},
		{
			name:  "no_of_rooms",
			field: "no_of_rooms",
			elem:  `<finn:field name="no_of_rooms" value="5"/>`,
			want:  domain.Listing{NumberOfRooms: sp("5")},
		},
		{
			name:  "no_of_bedrooms range",
			field: "no_of_bedrooms",
			elem:  `<finn:field name="no_of_bedrooms" from="1" to="3"/>`,
			want:  domain.Listing{NumberOfBedrooms: sp("1 — 3")},
		},
		{
			name:  "property_type",
			field: "property_type",
			elem:  `<finn:field name="property_type"><finn:value>Enebolig</finn:value></finn:field>`,
			want:  domain.Listing{PropertyType: sp("Enebolig")},
		},
		{
			name:  "ownership_type",
			field: "ownership_type",
			elem:  `<finn:field name="ownership_type" value="Andel"/>`,
			want:  domain.Listing{OwnershipType: sp("Andel")},
		},
		{
			name:  "viewing_date",
			field: "viewing_date",
			elem:  `<finn:field name="viewing_date"><finn:value>2026-11-01</finn:value></finn:field>`,
			want:  domain.Listing{ViewingDates: []string{"2026-11-01"}},
		},
		{
			name:  "size",
			field: "size",
			elem: `<finn:field name="size">` +
				`<finn:field name="usable" value="80"/><finn:field name="primary" value="75"/>` +
				`</finn:field>`,
			want: domain.Listing{UsableSize: sp("80"), PrimarySize: sp("75")},
		},
		{
			name:  "area",
			field: "area",
			elem: `<finn:field name="area">` +
				`<finn:field name="from" value="40"/><finn:field name="to" value="90"/>` +
				`</finn:field>`,
			want: domain.Listing{PrimarySizeFrom: sp("40"), PrimarySizeTo: sp("90")},
		},
		{
			name:  "facilities",
			field: "facilities",
			elem:  `<finn:field name="facilities"><finn:value>Garasje</finn:value><finn:value>Peis</finn:value></finn:field>`,
			want:  domain.Listing{Facilities: []string{"Garasje", "Peis"}},
		},
		{
			name:  "general_text",
			field: "general_text",
			elem: `<finn:field name="general_text"><finn:value>` +
				`<finn:field name="title" value="Om boligen"/><finn:field name="value">Lys og fin.</finn:field>` +
				`</finn:value></finn:field>`,
			want: domain.Listing{Descriptions: []domain.Description{
				{Title: sp("Om boligen"), Value: sp("Lys og fin.")},
			}},
		},
		{
			name:  "ingress",
			field: "ingress",
			elem:  `<finn:field name="ingress">  Kort tekst.  </finn:field>`,
			want:  domain.Listing{Ingress: sp("Kort tekst.")},
		},
		{
			name:  "situation",
			field: "situation",
			elem:  `<finn:field name="situation">Solrikt.</finn:field>`,
			want:  domain.Listing{Situation: sp("Solrikt.")},
		},
		{
			name:  "viewings",
			field: "viewings",
			elem: `<finn:field name="viewings"><finn:value>` +
				`<finn:field name="date" value="2026-11-02"/><finn:field name="from">10:00</finn:field>` +
				`</finn:value></finn:field>`,
			want: domain.Listing{Viewings: []domain.Viewing{
				{Date: sp("2026-11-02"), From: sp("10:00")},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fn, ok := adataFields[tt.field]
			require.True(t, ok, "no handler for %q", tt.field)

			var l domain.Listing
			fn(&l, decodeField(t, tt.elem), vendorURI)
			assert.Equal(t, tt.want, l)
		})
	}
}

func TestPriceFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field string
		elem  string
		want  domain.Listing
	}{
		{
			name:  "total",
			field: "total",
			elem:  `<finn:price name="total" value="100" from="90" to="110"/>`,
			want:  domain.Listing{TotalPrice: sp("100"), TotalPriceFrom: sp("90"), TotalPriceTo: sp("110")},
		},
		{
			name:  "main",
			field: "main",
			elem:  `<finn:price name="main" value="100"/>`,
			want:  domain.Listing{MainPrice: sp("100")},
		},
		{
			name:  "collective_debt",
			field: "collective_debt",
			elem:  `<finn:price name="collective_debt" value="5"/>`,
			want:  domain.Listing{CollectiveDebt: sp("5")},
		},
		{
			name:  "shared_cost",
			field: "shared_cost",
			elem:  `<finn:price name="shared_cost" value="6"/>`,
			want:  domain.Listing{SharedCost: sp("6")},
		},
		{
			name:  "estimated_value",
			field: "estimated_value",
			elem:  `<finn:price name="estimated_value" value="7"/>`,
			want:  domain.Listing{EstimatedValue: sp("7")},
		},
		{
			name:  "square_meter",
			field: "square_meter",
			elem:  `<finn:price name="square_meter" value="8"/>`,
			want:  domain.Listing{SqmPrice: sp("8")},
		},
		{
			name:  "main without value keeps nil",
			field: "main",
			elem:  `<finn:price name="main"/>`,
			want:  domain.Listing{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fn, ok := priceFields[tt.field]
			require.True(t, ok, "no handler for %q", tt.field)

			var l domain.Listing
			fn(&l, decodeField(t, tt.elem), vendorURI)
			assert.Equal(t, tt.want, l)
		})
	}
}

func TestTotalPriceFirstWins(t *testing.T) {
	t.Parallel()

	var l domain.Listing
	priceFields["total"](&l, decodeField(t, `<finn:price name="total" value="1"/>`), vendorURI)
	priceFields["total"](&l, decodeField(t, `<finn:price name="total" value="2"/>`), vendorURI)

	assert.Equal(t, sp("1"), l.TotalPrice)
}

func TestFirstToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   *string
		want *string
	}{
		{name: "nil", in: nil, want: nil},
		{name: "no comma", in: sp("H0101"), want: sp("H0101")},
		{name: "comma", in: sp("3, av 5"), want: sp("3")},
		{name: "leading comma", in: sp(",x"), want: sp("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, firstToken(tt.in))
		})
	}
}

func TestDecodeDocument_Namespaces(t *testing.T) {
	t.Parallel()

	raw := `<feed xmlns="http://www.w3.org/2005/Atom" xmlns:finn="urn:first">` +
		`<entry xmlns:finn="urn:second" xmlns:media="http://search.yahoo.com/mrss/"/>` +
		`</feed>`

	root, ns, err := decodeDocument([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "feed", root.Name.Local)

	finnURI, ok := ns.Lookup("finn")
	require.True(t, ok)
	assert.Equal(t, "urn:first", finnURI)

	_, ok = ns.Lookup("media")
	assert.True(t, ok)

	_, ok = ns.Lookup("georss")
	assert.False(t, ok)

	assert.Equal(t, "http://www.w3.org/2005/Atom", ns.Default())
}

func TestNode_FirstAttrSkipsNamespaceDecls(t *testing.T) {
	t.Parallel()

	root, _, err := decodeDocument([]byte(
		`<content xmlns="urn:x" xmlns:m="urn:m" url="https://img/1.jpg" type="image/jpeg"/>`,
	))
	require.NoError(t, err)

	v, ok := root.FirstAttr()
	require.True(t, ok)
	assert.Equal(t, "https://img/1.jpg", v)
}
