// Package kernel contains shared value objects used across the domain model:
// UUID identifiers and Money amounts. Value objects are immutable, compared
// by value, and can only be created through their factory functions so that
// a zero value never leaks into an aggregate.
package kernel
