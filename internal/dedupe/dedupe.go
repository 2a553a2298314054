// Package dedupe holds the shared singleflight groups that collapse
// concurrent lookups of the same key into one call.
package dedupe

import "golang.org/x/sync/singleflight"

// SpeciesGroup deduplicates species template resolution keyed by the
// canonical species name (see keys.NameKey). Concurrent battle creations
// for the same species share one repository round trip.
var SpeciesGroup singleflight.Group
