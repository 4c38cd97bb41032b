// Package kernel provides the shared primitives of the workshop domain model.
//
// It currently holds UUID, the identifier value object used by templates,
// orders, workflow instances and task instances. Kernel types are immutable and
// carry no behaviour beyond construction, validation and comparison.
package kernel
