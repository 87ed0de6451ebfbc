// Package direction classifies trip headsigns into the four directions used by
// the RTC real-time API.
//
// A headsign must end with a parenthesised direction word, e.g.
// "Station Centrale (Nord)". The word is looked up in an ordered Table; the
// first rule that matches wins and the headsign is rewritten as
// "<L>-<leading text>" with L one of N, S, E, O. A headsign that matches no
// rule is rejected with a *ClassificationError. No direction is ever guessed.
//
// Adding a locale means building a new Table; the classifier logic does not change.
package direction
