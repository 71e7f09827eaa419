package model

// Station represents a physical stop on the rail network.  Stations are
// immutable reference data provisioned by schedule management; this
// service only ever reads them.  This struct corresponds to a row in the
// `stations` table.
//
// Fields:
//  ID   – primary key identifier.
//  Name – human readable station name.
//  Code – short unique station code used in availability requests.
//  City – city the station serves.
type Station struct {
	ID   uint64 // stations.id
	Name string // stations.name
	Code string // stations.code
	City string // stations.city
}
