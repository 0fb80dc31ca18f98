package gateway

import (
	"github.com/mindworks-software/lorawan-stack/pkg/config"
	"github.com/mindworks-software/lorawan-stack/pkg/duration"
	"github.com/mindworks-software/lorawan-stack/pkg/messages"
)

// Component is the input used to edit a field.
type Component uint8

const (
	ComponentInput Component = iota
	ComponentTextArea
	ComponentCheckbox
	ComponentKeyValueMap
	ComponentSelect
	ComponentUnitInput
)

// String returns the component name.
func (c Component) String() string {
	switch c {
	case ComponentInput:
		return "input"
	case ComponentTextArea:
		return "textarea"
	case ComponentCheckbox:
		return "checkbox"
	case ComponentKeyValueMap:
		return "key-value-map"
	case ComponentSelect:
		return "select"
	case ComponentUnitInput:
		return "unit-input"
	default:
		return "unknown"
	}
}

// UnitOption is a unit offered by a unit input.
type UnitOption struct {
	Label messages.Descriptor
	Unit  duration.Unit
}

// DelayUnits are the units offered for the schedule-anytime delay.
var DelayUnits = []UnitOption{
	{Label: messages.SharedMilliseconds, Unit: duration.UnitMillisecond},
	{Label: messages.SharedSeconds, Unit: duration.UnitSecond},
	{Label: messages.SharedMinutes, Unit: duration.UnitMinute},
	{Label: messages.SharedHours, Unit: duration.UnitHour},
}

// FieldLayout describes how a field is presented.
type FieldLayout struct {
	Name              string
	Component         Component
	Title             messages.Descriptor
	Description       messages.Descriptor
	DescriptionValues map[string]any
	Placeholder       messages.Descriptor
	Label             messages.Descriptor
	Required          bool
	Disabled          bool
	Units             []UnitOption
}

// Group is a run of fields under an optional heading.
type Group struct {
	Heading messages.Descriptor
	Fields  []FieldLayout
}

// Section is a collapsible part of the form.
type Section struct {
	Title       messages.Descriptor
	Description messages.Descriptor
	Groups      []Group

	// Collapsible sections can be hidden by the user.
	Collapsible bool
}

// Layout returns the sections of the gateway data form. The creation form
// has an owner selection; the update form shows the gateway ID read-only.
func Layout(update bool, delays config.Delays) []Section {
	general := Group{Heading: messages.SharedGeneralSettings}
	if !update {
		general.Fields = append(general.Fields, FieldLayout{
			Name:      FieldOwnerID,
			Component: ComponentSelect,
			Title:     messages.SharedOwner,
			Required:  true,
		})
	}
	general.Fields = append(general.Fields,
		FieldLayout{
			Name:        FieldGatewayID,
			Component:   ComponentInput,
			Title:       messages.SharedGatewayID,
			Placeholder: messages.GatewayFormGatewayIdPlaceholder,
			Required:    true,
			Disabled:    update,
		},
		FieldLayout{
			Name:        FieldEUI,
			Component:   ComponentInput,
			Title:       messages.SharedGatewayEUI,
			Placeholder: messages.SharedGatewayEUI,
		},
		FieldLayout{
			Name:        FieldName,
			Component:   ComponentInput,
			Title:       messages.SharedGatewayName,
			Placeholder: messages.GatewayFormGatewayNamePlaceholder,
		},
		FieldLayout{
			Name:        FieldDescription,
			Component:   ComponentTextArea,
			Title:       messages.SharedGatewayDescription,
			Description: messages.GatewayFormGatewayDescDescription,
			Placeholder: messages.GatewayFormGatewayDescPlaceholder,
		},
		FieldLayout{
			Name:        FieldGatewayServerAddress,
			Component:   ComponentInput,
			Title:       messages.SharedGatewayServerAddress,
			Description: messages.GatewayFormGsServerAddressDescription,
			Placeholder: messages.SharedAddressPlaceholder,
		},
		FieldLayout{
			Name:        FieldStatusPublic,
			Component:   ComponentCheckbox,
			Title:       messages.SharedGatewayStatus,
			Description: messages.GatewayFormStatusDescription,
			Label:       messages.SharedPublic,
		},
		FieldLayout{
			Name:        FieldAttributes,
			Component:   ComponentKeyValueMap,
			Title:       messages.SharedAttributes,
			Description: messages.SharedAttributeDescription,
		},
	)

	updates := Group{
		Heading: messages.SharedGatewayUpdateOptions,
		Fields: []FieldLayout{
			{
				Name:        FieldAutoUpdate,
				Component:   ComponentCheckbox,
				Title:       messages.SharedAutomaticUpdates,
				Description: messages.GatewayFormAutoUpdateDescription,
			},
			{
				Name:        FieldUpdateChannel,
				Component:   ComponentInput,
				Title:       messages.SharedChannel,
				Description: messages.GatewayFormUpdateChannelDescription,
				Placeholder: messages.SharedStable,
			},
		},
	}

	lorawan := Group{
		Fields: []FieldLayout{
			{
				Name:      FieldFrequencyPlanID,
				Component: ComponentSelect,
				Title:     messages.SharedFrequencyPlan,
			},
			{
				Name:        FieldScheduleDownlinkLate,
				Component:   ComponentCheckbox,
				Title:       messages.SharedGatewayScheduleDownlinkLate,
				Description: messages.GatewayFormScheduleDownlinkLateDescription,
			},
			{
				Name:        FieldEnforceDutyCycle,
				Component:   ComponentCheckbox,
				Title:       messages.GatewayFormDutyCycle,
				Description: messages.GatewayFormEnforceDutyCycleDescription,
				Label:       messages.GatewayFormEnforced,
			},
			{
				Name:        FieldScheduleAnytimeDelay,
				Component:   ComponentUnitInput,
				Title:       messages.GatewayFormScheduleAnyTimeDelay,
				Description: messages.GatewayFormScheduleAnyTimeDescription,
				DescriptionValues: map[string]any{
					"minimumValue": delays.MinimumMs(),
					"defaultValue": delays.DefaultMs(),
				},
				Units:    DelayUnits,
				Required: true,
			},
		},
	}

	return []Section{
		{
			Title:       messages.GatewayFormBasicTitle,
			Description: messages.GatewayFormBasicDescription,
			Groups:      []Group{general, updates},
		},
		{
			Title:       messages.GatewayFormLorawanTitle,
			Description: messages.GatewayFormLorawanDescription,
			Groups:      []Group{lorawan},
			Collapsible: true,
		},
	}
}

// FieldLayoutFor finds the layout of field.
func FieldLayoutFor(sections []Section, field string) (FieldLayout, bool) {
	for _, s := range sections {
		for _, g := range s.Groups {
			for _, fl := range g.Fields {
				if fl.Name == field {
					return fl, true
				}
			}
		}
	}
	return FieldLayout{}, false
}

// FieldTitle returns the display title of field, or the field name if it
// has none.
func FieldTitle(field string) string {
	if fl, ok := FieldLayoutFor(Layout(false, config.DefaultDelays()), field); ok {
		return fl.Title.Default
	}
	return field
}
