// Package dataset loads city trip files into filtered tables.
//
// # Files
//
// Each city has one comma-separated file with a header row. Columns are found
// by name, so their order does not matter:
//
//	,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
//
// Gender and Birth Year are optional; the Washington file has neither.
//
// # Loading
//
//	loader := dataset.NewLoader(settings, logger)
//	table, err := loader.Load(ctx, filter)
//
// Load derives month, weekday and hour from the start time and keeps the rows
// matching the filter. A missing file can be fetched from settings.MirrorURL;
// otherwise it is an error, as is any malformed row.
package dataset
