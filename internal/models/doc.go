// Package models defines the core domain records for the Urban Thek storefront.
//
// # Records
//
//   - MenuItem: one dish on the menu, with optional full and half portion prices
//   - CartEntry: a (item, portion) pair and how many of it the customer wants
//   - CustomerDetails: delivery contact details remembered across sessions
//   - Profile: the customer details plus the running bill number
//   - Order: what gets handed to the order sink after a successful checkout
//
// # Design Principles
//
// 1. **Money is exact**: prices and totals use decimal.Decimal, never float64
// 2. **IDs are strings**: menu item IDs are compared as strings whatever the backend stores
// 3. **Records are plain data**: behaviour lives in catalog, cart, pricing and order
package models
