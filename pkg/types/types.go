// Package domain defines the listing records produced by the FINN client.
package domain

import "strings"

// NavLink is a navigation or related-resource link found on a feed or entry.
type NavLink struct {
	Rel string `json:"rel"`
	Ref string `json:"ref"`
}

// SortOption is one sort choice offered by a search feed.
type SortOption struct {
	Selected bool   `json:"selected"`
	Value    string `json:"value"`
	Title    string `json:"title"`
}

// Geo holds the latitude and longitude of a listing as published.
type Geo struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

// Contact is a person or office listed as contact for an ad.
type Contact struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Title  *string `json:"title,omitempty"`
	Work   *string `json:"work,omitempty"`
	Mobile *string `json:"mobile,omitempty"`
	Fax    *string `json:"fax,omitempty"`
}

// Description is one titled free-text block of an ad.
type Description struct {
	Title *string `json:"title,omitempty"`
	Value *string `json:"value,omitempty"`
}

// Viewing is one scheduled viewing slot.
type Viewing struct {
	Note *string `json:"note,omitempty"`
	Date *string `json:"date,omitempty"`
	From *string `json:"from,omitempty"`
	To   *string `json:"to,omitempty"`
}

// Listing is one real-estate ad. Every field the source document did not
// carry is nil.
type Listing struct {
	// Identity
	ID        *string   `json:"id,omitempty"`
	Title     *string   `json:"title,omitempty"`
	Updated   *string   `json:"updated,omitempty"`
	Published *string   `json:"published,omitempty"`
	Links     []NavLink `json:"links,omitempty"`

	// Classification
	IsPrivate *string `json:"is_private,omitempty"`
	Status    *string `json:"status,omitempty"`
	AdType    *string `json:"ad_type,omitempty"`

	// Location
	City       *string `json:"city,omitempty"`
	Address    *string `json:"address,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	Geo        *Geo    `json:"geo,omitempty"`

	Contacts []Contact `json:"contacts,omitempty"`
	Images   []string  `json:"images,omitempty"`

	// Structure
	HousingUnit      *string `json:"housing_unit,omitempty"`
	Floor            *string `json:"floor,omitempty"`
	NumberOfFloors   *string `json:"number_of_floors,omitempty"`
	NumberOfUnits    *string `json:"number_of_units,omitempty"`
	NumberOfBedrooms *string `json:"number_of_bedrooms,omitempty"`
	NumberOfRooms    *string `json:"number_of_rooms,omitempty"`
	PropertyType     *string `json:"property_type,omitempty"`
	OwnershipType    *string `json:"ownership_type,omitempty"`

	// Size
	UsableSize      *string `json:"usable_size,omitempty"`
	PrimarySize     *string `json:"primary_size,omitempty"`
	PrimarySizeFrom *string `json:"primary_size_from,omitempty"`
	PrimarySizeTo   *string `json:"primary_size_to,omitempty"`

	Facilities   []string      `json:"facilities,omitempty"`
	Descriptions []Description `json:"descriptions,omitempty"`

	// Viewings
	ViewingDates []string  `json:"viewing_dates,omitempty"`
	Viewings     []Viewing `json:"viewings,omitempty"`

	// Pricing
	MainPrice      *string `json:"main_price,omitempty"`
	MainPriceFrom  *string `json:"main_price_from,omitempty"`
	MainPriceTo    *string `json:"main_price_to,omitempty"`
	TotalPrice     *string `json:"total_price,omitempty"`
	TotalPriceFrom *string `json:"total_price_from,omitempty"`
	TotalPriceTo   *string `json:"total_price_to,omitempty"`
	CollectiveDebt *string `json:"collective_debt,omitempty"`
	SharedCost     *string `json:"shared_cost,omitempty"`
	EstimatedValue *string `json:"estimated_value,omitempty"`
	SqmPrice       *string `json:"sqm_price,omitempty"`

	Ingress   *string `json:"ingress,omitempty"`
	Situation *string `json:"situation,omitempty"`
	Author    *string `json:"author,omitempty"`
}

// PriceLabel returns the total price, or its range, for display. Falls back
// to "-" when the listing carries no price at all.
func (l *Listing) PriceLabel() string {
	if l.TotalPrice != nil {
		return *l.TotalPrice
	}
	if l.TotalPriceFrom != nil || l.TotalPriceTo != nil {
		return Value(l.TotalPriceFrom) + " - " + Value(l.TotalPriceTo)
	}
	return "-"
}

// Location joins address, postal code and city, skipping absent parts.
func (l *Listing) Location() string {
	var parts []string
	if l.Address != nil && *l.Address != "" {
		parts = append(parts, *l.Address)
	}

	var place []string
	for _, s := range []*string{l.PostalCode, l.City} {
		if s != nil && *s != "" {
			place = append(place, *s)
		}
	}
	if len(place) > 0 {
		parts = append(parts, strings.Join(place, " "))
	}

	return strings.Join(parts, ", ")
}

// ResultSet is one page of search results plus feed metadata.
type ResultSet struct {
	Title        *string      `json:"title,omitempty"`
	Subtitle     *string      `json:"subtitle,omitempty"`
	TotalResults *int         `json:"total_results,omitempty"`
	Sort         []SortOption `json:"sort,omitempty"`
	Links        []NavLink    `json:"links,omitempty"`
	Results      []Listing    `json:"results"`
}

// Value dereferences an optional string, returning "" when absent.
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
