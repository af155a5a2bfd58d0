// Package types holds the small shared vocabulary of datapacks: the
// filesystem abstraction, resource categories and search path root pairs.
package types
