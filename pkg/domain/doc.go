// Package domain contains the core domain entities and types used by the
// application. These types represent the marketplace concepts (agents, users,
// payment transactions and agent jobs) together with the on-chain views the
// console works with. They are intentionally free of infrastructure concerns so
// they can be shared across packages.
package domain
