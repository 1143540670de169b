// Package services provides domain services that orchestrate business
// operations across multiple aggregates of the marketplace.
//
// The package includes:
//   - OrderProcessor: drives order status transitions and the inventory
//     movements they imply on the referenced listing
//   - PriceAdvisor: heuristic market-rate estimates for listings
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
