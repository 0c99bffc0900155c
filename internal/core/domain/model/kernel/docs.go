// Package kernel contains shared value objects used across the domain model:
// UUID identifiers and geographic points produced by geocoding.
// All types here are immutable and safe for concurrent use.
package kernel
