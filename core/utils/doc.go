// Package utils holds small conversion helpers shared by the snapshot and
// export layers.
package utils
