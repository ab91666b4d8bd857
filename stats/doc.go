// Package stats computes descriptive statistics over a trip table.
//
// Every function is stateless and reads its input without modifying it.
// Modes are deterministic: the highest count wins and ties go to the
// smallest value (numeric order for numeric columns, lexicographic for text).
// Missing values never count.
package stats
