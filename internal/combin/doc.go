// Package combin provides exact counts, via inclusion–exclusion over
// arbitrary-precision integers, of character sequences that draw from a
// pool of classes and cover every class at least once.
package combin
