// Package conflict classifies the paths a squash merge left conflicted and
// decides how each one is resolved.
//
// A Policy pins some paths (README.md by default) to the main branch's
// version unconditionally, and maps the rest to a Strategy through ordered
// glob rules. Anything that ends up with the manual strategy is reported
// back to the operator instead of being staged.
package conflict
