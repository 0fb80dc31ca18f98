package gateway

import (
	"fmt"
	"io"
	"strings"

	"github.com/mindworks-software/lorawan-stack/pkg/duration"
	"github.com/mindworks-software/lorawan-stack/pkg/messages"
)

// Layout returns the sections of this form.
func (f *Form) Layout() []Section {
	return Layout(f.update, f.delays)
}

// DisplayValue returns the value of field as its input shows it. Unit
// inputs show only the number; the unit is shown by the unit selector.
func (f *Form) DisplayValue(field string) string {
	if field == FieldScheduleAnytimeDelay {
		number, _ := duration.Split(f.values.Text(field))
		return number
	}
	return f.values.Text(field)
}

// DisplayUnit returns the unit selected for a unit input field.
func (f *Form) DisplayUnit(field string) string {
	_, suffix := duration.Split(f.values.Text(field))
	return suffix
}

// Render writes a plain-text view of the form: sections, fields with their
// current values and descriptions, the delay warning and the submit bar.
// Fields of a collapsed section are not shown.
func Render(w io.Writer, f *Form) error {
	ew := &errWriter{w: w}
	for i, section := range f.Layout() {
		if i > 0 {
			ew.printf("\n")
		}
		renderSection(ew, f, section)
	}
	ew.printf("\n[%s]\n", messages.SharedSaveChanges)
	return ew.err
}

// RenderSettingsPage writes the general settings page of an existing
// gateway: the page title, the form and the delete button.
func RenderSettingsPage(w io.Writer, f *Form) error {
	ew := &errWriter{w: w}
	ew.printf("# %s\n\n", messages.SharedGeneralSettings)
	if ew.err != nil {
		return ew.err
	}
	if err := Render(w, f); err != nil {
		return err
	}
	if f.update {
		ew.printf("[%s]\n", messages.GatewaySettingsDeleteGateway)
	}
	return ew.err
}

func renderSection(ew *errWriter, f *Form, section Section) {
	ew.printf("## %s\n", section.Title)
	ew.printf("%s\n", section.Description)

	if section.Collapsible && f.collapsed {
		ew.printf("[%s]\n", messages.SharedExpand)
		return
	}

	for _, group := range section.Groups {
		if group.Heading != (messages.Descriptor{}) {
			ew.printf("\n### %s\n", group.Heading)
		} else {
			ew.printf("\n")
		}
		for _, field := range group.Fields {
			renderField(ew, f, field)
		}
	}

	if section.Collapsible {
		ew.printf("[%s]\n", messages.SharedCollapse)
	}
}

func renderField(ew *errWriter, f *Form, field FieldLayout) {
	title := field.Title.Default
	if field.Required {
		title += "*"
	}

	var value string
	switch field.Component {
	case ComponentCheckbox:
		box := "[ ]"
		if f.values.Bool(field.Name) {
			box = "[x]"
		}
		value = strings.TrimSpace(box + " " + field.Label.Default)
	case ComponentUnitInput:
		value = f.DisplayValue(field.Name) + " [" + unitLabel(field, f.DisplayUnit(field.Name)) + "]"
	case ComponentKeyValueMap:
		value = f.values.Text(field.Name)
	default:
		value = f.values.Text(field.Name)
		if value == "" && field.Placeholder != (messages.Descriptor{}) {
			value = "(" + field.Placeholder.Default + ")"
		}
	}
	if field.Disabled {
		value += " (disabled)"
	}
	ew.printf("%s: %s\n", title, strings.TrimRight(value, " "))

	if field.Description != (messages.Descriptor{}) {
		ew.printf("  %s\n", messages.Format(field.Description, field.DescriptionValues))
	}
	if field.Name == FieldScheduleAnytimeDelay && f.ShouldDisplayWarning() {
		ew.printf("  ! %s\n", f.Warning())
	}
}

func unitLabel(field FieldLayout, unit string) string {
	for _, u := range field.Units {
		if string(u.Unit) == unit {
			return u.Label.Default
		}
	}
	return unit
}

// errWriter remembers the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
