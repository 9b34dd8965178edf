// Package http exposes the backend's REST surface: streams, processes,
// launch intents, targets, the journal, and metrics. Handlers validate
// input, delegate to the domain layer, and answer with gin.H bodies.
package http
