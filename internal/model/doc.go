// Package model defines the core data structures used throughout
// the bikeshare explorer.
//
// # Filters
//
// City, Month and Day are small validated enumerations. Parsing is
// case-insensitive:
//
//	city, err := model.ParseCity("New York City")
//	month, _ := model.ParseMonth("March")
//	day, _ := model.ParseDay("all")
//
// A Filter bundles the three and is only built from validated values:
//
//	f, err := model.NewFilter("chicago", "june", "friday")
//	fmt.Println(f) // City: Chicago, Month: June, Day: Friday
//
// # Trips
//
// Trip is a single parsed record. Month, Day (Monday=0) and Hour are derived
// from the start time when the trip is created with NewTrip.
//
// Table holds the raw and parsed rows of one dataset; Table.Filter keeps only
// rows matching a Filter's month and day.
package model
