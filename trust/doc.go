// Package trust ties core, bfs, and flow into the Advogato
// attack-resistant trust metric: seed a BFS from a trusted root, derive
// a per-vertex capacity from each peer's distance, transform the
// certification graph into a flow network, and run max-flow to
// completion. The resulting FlowedGraph answers two questions any
// caller of the metric actually has — who is most trusted, and why a
// given peer scored the way it did — without ever exposing the
// flow package's internal vertex representation.
package trust
