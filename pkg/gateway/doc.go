// Package gateway implements the console's gateway data form.
//
// The form edits the general settings of a gateway: identifiers, name and
// description, Gateway Server address, update options and the LoRaWAN
// options, including the schedule-anytime delay. Values are edited as raw
// strings and booleans (Values), cast and validated by a Schema at submit
// time and converted to Settings for the backend.
//
// The delay field carries an advisory warning. Whenever its value changes the
// form recomputes whether the delay is below the Gateway Server's lower
// bound; the warning is displayed but never blocks submission, because the
// Gateway Server clamps short delays itself.
//
//	form := gateway.NewForm(gateway.FormConfig{
//	    Initial: gateway.FromSettings(current),
//	    Update:  true,
//	    Delays:  cfg.Delays,
//	})
//	form.Change(gateway.FieldScheduleAnytimeDelay, "523ms")
//	if form.ShouldDisplayWarning() {
//	    fmt.Println(form.Warning())
//	}
//	err := form.Submit(ctx, store)
package gateway
