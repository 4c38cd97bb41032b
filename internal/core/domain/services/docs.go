// Package services provides domain services that coordinate several aggregates
// of the workshop domain.
//
// The package includes:
//   - WorkflowInstantiator: builds an order and its instance graph from workflow
//     and task templates
package services
