package nominatim

import "net/url"

// Status is the payload of the server health-check endpoint.
type Status struct {
	Status          int    `json:"status"`
	Message         string `json:"message"`
	DataUpdated     string `json:"data_updated,omitempty"`
	SoftwareVersion string `json:"software_version,omitempty"`
	DatabaseVersion string `json:"database_version,omitempty"`
}

// Place is a location record returned by the server. Latitude and
// longitude stay as the opaque strings the service emits.
type Place struct {
	PlaceID     int64      `json:"place_id"`
	Licence     string     `json:"licence"`
	OSMType     string     `json:"osm_type"`
	OSMID       int64      `json:"osm_id"`
	BoundingBox []string   `json:"boundingbox"`
	Lat         string     `json:"lat"`
	Lon         string     `json:"lon"`
	DisplayName string     `json:"display_name"`
	Class       string     `json:"class,omitempty"`
	Type        string     `json:"type,omitempty"`
	Importance  float64    `json:"importance,omitempty"`
	Icon        string     `json:"icon,omitempty"`
	Address     *Address   `json:"address,omitempty"`
	ExtraTags   *ExtraTags `json:"extratags,omitempty"`
}

// Address holds the structured address detail of a place.
type Address struct {
	City          string `json:"city,omitempty"`
	StateDistrict string `json:"state_district,omitempty"`
	State         string `json:"state,omitempty"`
	ISO3166Lvl4   string `json:"ISO3166-2-lvl4,omitempty"`
	Postcode      string `json:"postcode,omitempty"`
	Country       string `json:"country,omitempty"`
	CountryCode   string `json:"country_code,omitempty"`
}

// ExtraTags carries the extra OSM metadata a place may have.
type ExtraTags struct {
	Capital    string `json:"capital,omitempty"`
	Website    string `json:"website,omitempty"`
	Wikidata   string `json:"wikidata,omitempty"`
	Wikipedia  string `json:"wikipedia,omitempty"`
	Population string `json:"population,omitempty"`
}

// StructuredSearch is a field-by-field search query. Empty fields are
// omitted from the request.
type StructuredSearch struct {
	Amenity    string
	Street     string
	City       string
	County     string
	State      string
	Country    string
	PostalCode string
}

func (s StructuredSearch) apply(query url.Values) {
	set := func(key, val string) {
		if val != "" {
			query.Set(key, val)
		}
	}
	set("amenity", s.Amenity)
	set("street", s.Street)
	set("city", s.City)
	set("county", s.County)
	set("state", s.State)
	set("country", s.Country)
	set("postalcode", s.PostalCode)
}
