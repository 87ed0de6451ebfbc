// Package cleaner normalises free-text labels coming from an agency GTFS export.
//
// Two kinds of labels are supported:
//   - KindRoute: route long names
//   - KindStopName: stop names
//
// Cleaning is an ordered pipeline. Later steps assume the earlier ones already ran:
//
//  1. saint-prefix normalisation (St-, Ste., SAINT- ... -> Saint-, Sainte-)
//  2. trailing parenthetical remark removal
//  3. bracketed remark and unbalanced parenthesis removal
//  4. "null" placeholder removal
//  5. stop names only: bounds cleanup then street-type expansion
//  6. label casing and punctuation cleanup
//
// All rule tables are compiled once at init and never mutated, so a Cleaner
// can be shared between goroutines without locking.
//
//	c := cleaner.New(cleaner.FrenchCA)
//	name := c.Clean("Saint-Jean Blvd. (express)", cleaner.KindStopName)
//	// name == "Saint-Jean Boulevard"
package cleaner
