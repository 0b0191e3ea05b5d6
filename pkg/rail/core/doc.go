// Package core contains pipeline plumbing: channel adapters between slices
// and result streams, worker configuration via context, and the locomotive
// loop that drives stages. It defines no combinator semantics of its own;
// packages like lite build worker pools on top of it.
package core
