// Package prediction estimates final seat occupancy for flights ahead of
// departure. The heuristic engine combines booking pace, route popularity and
// price competitiveness; tests use the deterministic mock.
package prediction
