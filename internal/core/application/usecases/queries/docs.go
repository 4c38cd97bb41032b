// Package queries contains read operations over the order graph.
//
// Queries bypass the aggregates and read straight from the database with
// GORM raw SQL. Instance lists are returned in template order, so a caller
// always sees the task instances of a workflow in the order the workshop
// works them off, independent of how they were stored.
package queries
