// Package domain defines the types shared across sealbox: the size constants
// of the box construction and the failure taxonomy every operation reports
// through.
package domain
