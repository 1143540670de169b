// Package order provides domain entities and business logic for purchase
// orders on the marketplace. It implements the Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root tying a buyer, a seller, and a listing together
//   - Status: A state machine enforcing the seller-approval workflow
//   - BuyerContact: The contact details a buyer attaches to an order
//
// Key business rules:
//   - Orders reference a listing and record the quantity and total price agreed
//   - Status follows the workflow: pending -> accepted -> completed, with
//     rejected/cancelled reachable from pending and accepted
//   - Only the transition into accepted deducts listing inventory, and only
//     leaving accepted for rejected/cancelled restores it
//   - Terminal statuses permit no further transitions
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
