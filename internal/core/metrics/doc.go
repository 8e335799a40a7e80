// Package metrics derives dashboard figures (streaks, completion rates,
// wheel-of-life scores, month-over-month comparisons) from record snapshots.
//
// Every function is pure: inputs are passed by value, nothing is fetched or
// mutated, and no function returns an error. Empty lists, nil targets and
// zero denominators all map to explicit defaults.
package metrics
