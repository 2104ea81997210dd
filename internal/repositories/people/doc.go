// Package people persists person records in a pipe-delimited flat file,
// one record per line, in collection order:
//
//	id|firstName|lastName|phone|city|balance
//
// balance is a plain decimal number with no currency symbol or grouping.
//
// Loading follows a lenient-parse policy: a line is skipped (and logged at
// debug level) when it does not have exactly six fields, when its id is not
// a positive integer, when its balance is not a non-negative decimal, or
// when its id repeats an earlier line. A missing file loads as an empty
// collection. Saving always rewrites the whole file.
package people
