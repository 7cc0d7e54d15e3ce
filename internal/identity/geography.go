package identity

import "strings"

// Location is the curated home venue metadata for a team code, including
// historical locations so defunct codes still resolve.
type Location struct {
	City  string
	State string
	Lat   float64
	Lng   float64
}

var locationsByCode = map[string]Location{
	"ATL": {City: "Atlanta", State: "Georgia", Lat: 33.749, Lng: -84.388},
	"BOS": {City: "Boston", State: "Massachusetts", Lat: 42.360, Lng: -71.058},
	"BRK": {City: "Brooklyn", State: "New York", Lat: 40.678, Lng: -73.944},
	"NJN": {City: "East Rutherford", State: "New Jersey", Lat: 40.813, Lng: -74.074},
	"CHO": {City: "Charlotte", State: "North Carolina", Lat: 35.227, Lng: -80.843},
	"CHA": {City: "Charlotte", State: "North Carolina", Lat: 35.227, Lng: -80.843},
	"CHH": {City: "Charlotte", State: "North Carolina", Lat: 35.227, Lng: -80.843},
	"CHI": {City: "Chicago", State: "Illinois", Lat: 41.878, Lng: -87.629},
	"CLE": {City: "Cleveland", State: "Ohio", Lat: 41.499, Lng: -81.694},
	"DAL": {City: "Dallas", State: "Texas", Lat: 32.776, Lng: -96.796},
	"DEN": {City: "Denver", State: "Colorado", Lat: 39.739, Lng: -104.990},
	"DET": {City: "Detroit", State: "Michigan", Lat: 42.331, Lng: -83.045},
	"GSW": {City: "San Francisco", State: "California", Lat: 37.774, Lng: -122.419},
	"HOU": {City: "Houston", State: "Texas", Lat: 29.760, Lng: -95.369},
	"IND": {City: "Indianapolis", State: "Indiana", Lat: 39.768, Lng: -86.158},
	"LAC": {City: "Los Angeles", State: "California", Lat: 34.052, Lng: -118.243},
	"LAL": {City: "Los Angeles", State: "California", Lat: 34.052, Lng: -118.243},
	"MEM": {City: "Memphis", State: "Tennessee", Lat: 35.149, Lng: -90.048},
	"VAN": {City: "Vancouver", State: "British Columbia", Lat: 49.282, Lng: -123.120},
	"MIA": {City: "Miami", State: "Florida", Lat: 25.761, Lng: -80.191},
	"MIL": {City: "Milwaukee", State: "Wisconsin", Lat: 43.038, Lng: -87.906},
	"MIN": {City: "Minneapolis", State: "Minnesota", Lat: 44.977, Lng: -93.265},
	"NOP": {City: "New Orleans", State: "Louisiana", Lat: 29.951, Lng: -90.071},
	"NOH": {City: "New Orleans", State: "Louisiana", Lat: 29.951, Lng: -90.071},
	"NOK": {City: "Oklahoma City", State: "Oklahoma", Lat: 35.467, Lng: -97.516},
	"NYK": {City: "New York", State: "New York", Lat: 40.712, Lng: -74.005},
	"OKC": {City: "Oklahoma City", State: "Oklahoma", Lat: 35.467, Lng: -97.516},
	"SEA": {City: "Seattle", State: "Washington", Lat: 47.606, Lng: -122.332},
	"ORL": {City: "Orlando", State: "Florida", Lat: 28.538, Lng: -81.379},
	"PHI": {City: "Philadelphia", State: "Pennsylvania", Lat: 39.952, Lng: -75.165},
	"PHX": {City: "Phoenix", State: "Arizona", Lat: 33.448, Lng: -112.074},
	"POR": {City: "Portland", State: "Oregon", Lat: 45.515, Lng: -122.678},
	"SAC": {City: "Sacramento", State: "California", Lat: 38.581, Lng: -121.494},
	"SAS": {City: "San Antonio", State: "Texas", Lat: 29.424, Lng: -98.493},
	"TOR": {City: "Toronto", State: "Ontario", Lat: 43.653, Lng: -79.383},
	"UTA": {City: "Salt Lake City", State: "Utah", Lat: 40.760, Lng: -111.890},
	"WAS": {City: "Washington", State: "District of Columbia", Lat: 38.907, Lng: -77.036},
}

// LocationForCode returns the curated location for a team code.
func LocationForCode(code string) (Location, bool) {
	loc, ok := locationsByCode[strings.ToUpper(strings.TrimSpace(code))]
	return loc, ok
}
