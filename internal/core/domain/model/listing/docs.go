// Package listing provides domain entities and business logic for the
// sellable units of the marketplace: crop, livestock, and land listings.
//
// The package includes:
//   - Listing: The aggregate root holding identity, ownership, pricing, and stock
//   - Type: The crop/livestock/land variant discriminator
//   - Status: The sale state (available, reserved, under_offer, sold)
//   - Quantity: A non-negative crop amount with its market unit
//
// Key business rules:
//   - Crop and livestock stock never goes negative
//   - A listing is sold if and only if its stock is exhausted, or its single
//     land unit has been allocated
//   - Allocate and Release are exact inverses, so restoring an accepted order
//     returns the listing to its pre-accept stock and status
//   - under_offer is valid for land listings only
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package listing
