// Package persistence stores gateway settings for the console.
//
// Gateways are kept in a single JSON document. GatewayStore loads it once,
// serves reads from memory and rewrites the document after every change.
// It implements gateway.SubmitHandler, so a settings form can submit
// straight into it.
package persistence
