package sources

import (
	"sort"
	"strings"
)

// cityVenues lists small and mid-size rooms per city for synthesized
// listings. Cities without an entry use the default set.
var cityVenues = map[string][]string{
	"austin": {
		"Mohawk", "Hotel Vegas", "The Parish", "Cheer Up Charlies",
		"Empire Control Room", "Hole in the Wall",
		"Stubb's Waller Creek Amphitheater", "Continental Club",
	},
	"new york": {
		"Bowery Ballroom", "Mercury Lounge", "Baby's All Right",
		"Brooklyn Steel", "Rough Trade NYC", "Le Poisson Rouge",
		"Elsewhere", "Music Hall of Williamsburg",
	},
	"los angeles": {
		"The Echo", "The Troubadour", "Zebulon", "Lodge Room",
		"The Moroccan Lounge", "Teragram Ballroom", "The Regent Theater",
	},
	"nashville": {
		"The Basement East", "Exit/In", "The 5 Spot", "Mercy Lounge",
		"3rd & Lindsley", "The Station Inn",
	},
	"chicago": {
		"Empty Bottle", "Lincoln Hall", "Schubas Tavern", "Metro",
		"Sleeping Village", "Thalia Hall",
	},
	"portland": {
		"Doug Fir Lounge", "Mississippi Studios", "Wonder Ballroom",
		"Polaris Hall", "The Aladdin Theater",
	},
	"seattle": {
		"Neumos", "The Crocodile", "Tractor Tavern", "The Showbox",
		"Barboza",
	},
	"denver": {
		"Globe Hall", "Larimer Lounge", "Bluebird Theater",
		"Gothic Theatre", "Lost Lake Lounge",
	},
}

var defaultVenues = []string{
	"The Underground", "Red Room", "The Parish", "Vinyl Lounge",
	"Warehouse Live", "The Basement", "Songbird Theater", "Electric Owl",
	"The Hideout", "Main Street Music Hall",
}

// venueCityKeys keeps fuzzy matching deterministic across map
// iteration orders.
var venueCityKeys = func() []string {
	keys := make([]string, 0, len(cityVenues))
	for key := range cityVenues {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}()

// venuesFor matches a city against the venue table, tolerating state
// suffixes ("Austin, TX").
func venuesFor(city string) []string {
	lowered := strings.ToLower(strings.TrimSpace(city))
	if lowered == "" {
		return defaultVenues
	}
	for _, key := range venueCityKeys {
		if strings.Contains(lowered, key) || strings.Contains(key, lowered) {
			return cityVenues[key]
		}
	}
	return defaultVenues
}
