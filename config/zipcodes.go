package config

// ZipCode is one entry of the zip code directory.
type ZipCode struct {
	ZipCode   string  `json:"zipCode"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type State struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// DefaultZipCodes covers the metro areas the seeded sitters live in.
var DefaultZipCodes = []ZipCode{
	{ZipCode: "10001", City: "New York", State: "NY", Latitude: 40.7505, Longitude: -73.9934},
	{ZipCode: "10002", City: "New York", State: "NY", Latitude: 40.7156, Longitude: -73.9877},
	{ZipCode: "90001", City: "Los Angeles", State: "CA", Latitude: 33.9731, Longitude: -118.2479},
	{ZipCode: "90028", City: "Hollywood", State: "CA", Latitude: 34.1002, Longitude: -118.3253},
	{ZipCode: "90210", City: "Beverly Hills", State: "CA", Latitude: 34.0901, Longitude: -118.4065},
	{ZipCode: "90211", City: "Beverly Hills", State: "CA", Latitude: 34.0836, Longitude: -118.4006},
	{ZipCode: "90401", City: "Santa Monica", State: "CA", Latitude: 34.0159, Longitude: -118.4949},
	{ZipCode: "91101", City: "Pasadena", State: "CA", Latitude: 34.1478, Longitude: -118.1445},
	{ZipCode: "33101", City: "Miami", State: "FL", Latitude: 25.7743, Longitude: -80.1937},
	{ZipCode: "33102", City: "Miami", State: "FL", Latitude: 25.7867, Longitude: -80.1800},
	{ZipCode: "60601", City: "Chicago", State: "IL", Latitude: 41.8825, Longitude: -87.6441},
	{ZipCode: "60602", City: "Chicago", State: "IL", Latitude: 41.8796, Longitude: -87.6355},
}

var States = []State{
	{"AL", "Alabama"}, {"AK", "Alaska"}, {"AZ", "Arizona"}, {"AR", "Arkansas"}, {"CA", "California"},
	{"CO", "Colorado"}, {"CT", "Connecticut"}, {"DE", "Delaware"}, {"FL", "Florida"}, {"GA", "Georgia"},
	{"HI", "Hawaii"}, {"ID", "Idaho"}, {"IL", "Illinois"}, {"IN", "Indiana"}, {"IA", "Iowa"},
	{"KS", "Kansas"}, {"KY", "Kentucky"}, {"LA", "Louisiana"}, {"ME", "Maine"}, {"MD", "Maryland"},
	{"MA", "Massachusetts"}, {"MI", "Michigan"}, {"MN", "Minnesota"}, {"MS", "Mississippi"}, {"MO", "Missouri"},
	{"MT", "Montana"}, {"NE", "Nebraska"}, {"NV", "Nevada"}, {"NH", "New Hampshire"}, {"NJ", "New Jersey"},
	{"NM", "New Mexico"}, {"NY", "New York"}, {"NC", "North Carolina"}, {"ND", "North Dakota"}, {"OH", "Ohio"},
	{"OK", "Oklahoma"}, {"OR", "Oregon"}, {"PA", "Pennsylvania"}, {"RI", "Rhode Island"}, {"SC", "South Carolina"},
	{"SD", "South Dakota"}, {"TN", "Tennessee"}, {"TX", "Texas"}, {"UT", "Utah"}, {"VT", "Vermont"},
	{"VA", "Virginia"}, {"WA", "Washington"}, {"WV", "West Virginia"}, {"WI", "Wisconsin"}, {"WY", "Wyoming"},
}
