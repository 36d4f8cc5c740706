// Package optic resolves composable path expressions into ordered references
// over structured Go values.
//
// A path expression names one or more numeric leaves inside a value, e.g.
// "Shift", "Inner.Scale", "Components[2].Shift" or "Components[*].Shift".
// The wildcard [*] matches every element of a slice or array in index order,
// so a single path may match many positions. Pointers are dereferenced
// transparently while walking.
//
// Paths support three operations: ordered extraction of all matched values
// (GetAll), copy-with-replace of all matched values (SetAll, which never
// mutates its input), and construction of a brand-new instance from
// (path, value) pairs (Build). Match order is stable: declaration order of
// the combined paths, then index order within a wildcard.
package optic
