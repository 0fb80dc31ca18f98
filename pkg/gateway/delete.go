package gateway

import (
	"io"

	"github.com/mindworks-software/lorawan-stack/pkg/messages"
)

// Confirmation is the modal shown before a destructive action.
type Confirmation struct {
	Title   string
	Message string
	Confirm string
	Cancel  string
}

// DeleteConfirmation returns the modal confirming deletion of a gateway.
// The gateway is named by its name, or its ID if it has none.
func DeleteConfirmation(s Settings) Confirmation {
	name := s.Name
	if name == "" {
		name = s.IDs.GatewayID
	}
	return Confirmation{
		Title:   messages.GatewaySettingsDeleteGateway.Default,
		Message: messages.Format(messages.GatewaySettingsDeleteWarning, map[string]any{"gtwName": name}),
		Confirm: messages.GatewaySettingsDeleteGateway.Default,
		Cancel:  messages.SharedCancel.Default,
	}
}

// Render writes the modal as text.
func (c Confirmation) Render(w io.Writer) error {
	ew := &errWriter{w: w}
	ew.printf("# %s\n%s\n[%s] [%s]\n", c.Title, c.Message, c.Cancel, c.Confirm)
	return ew.err
}
