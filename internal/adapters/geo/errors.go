package geo

import "errors"

var (
	// ErrEmptyLocation is returned for blank location strings.
	ErrEmptyLocation = errors.New("geo: empty location")

	// ErrLocationNotFound is returned when neither the gazetteer nor
	// the geocoder can place the location.
	ErrLocationNotFound = errors.New("geo: location not found")
)
