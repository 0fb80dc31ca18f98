// Package messages holds the console's message catalog.
//
// Each message is a Descriptor with a stable ID and a default (English)
// text. Texts may contain {name} placeholders which Format fills in, e.g.
// the delay warning interpolates {minimumValue}.
//
// The descriptors are generated from messages.yaml:
//
//	go generate ./pkg/messages
package messages

//go:generate go run ../../cmd/gwconsole-msggen -input messages.yaml -output catalog_gen.go
