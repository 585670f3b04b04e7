// Package syntax holds the per-language highlighting rules and the
// single-row highlight scanner.
//
// Scanning is byte oriented and works on a row's render form (tabs already
// expanded). The scanner is pure: it never looks at neighbouring rows. The
// caller threads the block-comment state from one row to the next.
package syntax
