// Package stats computes the descriptive statistics shown for a filtered
// trip table.
//
// Every function here is pure: it reads a *model.Table and returns a value,
// leaving printing to the report package. The computations are
//
//   - Times: most common month, day of week and start hour
//   - Stations: most common start/end station and the top station pairs
//   - Durations: total and mean trip duration
//   - Users: user type and gender counts, birth year summary and histogram
//
// Mode breaks ties by picking the smallest tied value. Blank cells are treated
// as missing and never counted.
package stats
