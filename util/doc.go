// Package util holds small sorted-slice helpers used by traverse: set
// intersection over already-sorted descriptor slices.
package util
