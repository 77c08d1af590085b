// Package kernel contains shared value objects used across domain aggregates.
//
// The package currently provides Money, a fixed-point 2-decimal monetary value
// backed by github.com/shopspring/decimal. All money fields in the domain
// (unit prices, subtotals, order totals) are represented with this type so
// arithmetic and comparisons never drift the way binary floating point does.
//
// Value objects in this package follow the constructor-guard convention:
// the zero value is invalid and Validate() rejects instances that were not
// created through a constructor function.
package kernel
