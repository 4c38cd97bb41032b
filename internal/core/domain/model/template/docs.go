// Package template models the master data an order is instantiated from.
//
// A Task is a single unit of work with an estimated duration in minutes. A
// Workflow is a named, ordered list of task references; the order is fixed when
// the workflow is authored and is the only authority on the sequence in which
// the task instances of a workflow instance are worked off. Task instances do
// not store their position: it is resolved through Workflow.Position, an
// indexed lookup built once per workflow.
//
// Templates are read-only to the order fulfillment logic. They are created by
// the catalog import and otherwise only loaded.
package template
