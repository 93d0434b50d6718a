// Package types defines the entity structs, store interfaces, and standard
// errors for the habitkeep storage system.
package types
