package gateway_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mindworks-software/lorawan-stack/pkg/config"
	"github.com/mindworks-software/lorawan-stack/pkg/formlog"
	"github.com/mindworks-software/lorawan-stack/pkg/gateway"
	"github.com/mindworks-software/lorawan-stack/pkg/gateway/mocks"
)

func testGateway() gateway.Settings {
	return gateway.Settings{
		IDs:                  gateway.Identifiers{GatewayID: "test-gateway", EUI: "0000000000000000"},
		Name:                 "Test Gateway",
		Description:          "Gateway for testing gateway general settings",
		GatewayServerAddress: "localhost",
		EnforceDutyCycle:     true,
		ScheduleAnytimeDelay: gateway.Delay(523 * time.Millisecond),
	}
}

func openUpdateForm(t *testing.T, logger formlog.Logger) *gateway.Form {
	t.Helper()
	return gateway.NewForm(gateway.FormConfig{
		Initial: gateway.FromSettings(testGateway()),
		Update:  true,
		Delays:  config.DefaultDelays(),
		Logger:  logger,
	})
}

func TestFormInitialWarning(t *testing.T) {
	form := openUpdateForm(t, nil)

	assert.True(t, form.ShouldDisplayWarning())
	assert.Equal(t, "Delay too short. The lower bound (1000ms) will be used by the Gateway Server.", form.Warning())
	assert.Equal(t, "0.523", form.DisplayValue(gateway.FieldScheduleAnytimeDelay))
	assert.Equal(t, "s", form.DisplayUnit(gateway.FieldScheduleAnytimeDelay))
}

func TestFormChangeRecomputesWarning(t *testing.T) {
	form := openUpdateForm(t, nil)

	require.NoError(t, form.Change(gateway.FieldScheduleAnytimeDelay, "1s"))
	assert.False(t, form.ShouldDisplayWarning())
	assert.Empty(t, form.Warning())

	require.NoError(t, form.Change(gateway.FieldScheduleAnytimeDelay, "999ms"))
	assert.True(t, form.ShouldDisplayWarning())

	require.NoError(t, form.Change(gateway.FieldScheduleAnytimeDelay, "ms"))
	assert.False(t, form.ShouldDisplayWarning(), "unit without number never warns")

	require.NoError(t, form.Change(gateway.FieldScheduleAnytimeDelay, "5x"))
	assert.False(t, form.ShouldDisplayWarning(), "unknown unit never warns")

	// Other fields leave the warning alone.
	require.NoError(t, form.Change(gateway.FieldScheduleAnytimeDelay, "1ms"))
	require.NoError(t, form.Change(gateway.FieldName, "Renamed"))
	assert.True(t, form.ShouldDisplayWarning())
}

func TestFormNoWarningWithDefaults(t *testing.T) {
	delays := config.DefaultDelays()
	delays.DefaultScheduleAnytime = config.Duration(2 * time.Second)

	form := gateway.NewForm(gateway.FormConfig{Delays: delays})
	assert.Equal(t, "2s", form.Value(gateway.FieldScheduleAnytimeDelay))
	assert.False(t, form.ShouldDisplayWarning())
	assert.False(t, form.Update())
}

func TestFormZeroDelaysUseDefaults(t *testing.T) {
	form := gateway.NewForm(gateway.FormConfig{})
	assert.Equal(t, config.DefaultDelays(), form.Delays())

	// The default delay (530ms) is below the minimum (1000ms).
	assert.True(t, form.ShouldDisplayWarning())
}

func TestFormChangeErrors(t *testing.T) {
	form := openUpdateForm(t, nil)

	err := form.Change(gateway.FieldGatewayID, "other")
	assert.ErrorIs(t, err, gateway.ErrFieldDisabled)
	assert.Equal(t, "test-gateway", form.Value(gateway.FieldGatewayID))

	err = form.Change("nonsense", "x")
	assert.ErrorIs(t, err, gateway.ErrUnknownField)

	create := gateway.NewForm(gateway.FormConfig{})
	assert.NoError(t, create.Change(gateway.FieldGatewayID, "new-gateway"))
	assert.False(t, create.Disabled(gateway.FieldGatewayID))
}

func TestFormSubmitDespiteWarning(t *testing.T) {
	form := openUpdateForm(t, nil)
	require.True(t, form.ShouldDisplayWarning())

	handler := mocks.NewMockSubmitHandler(t)
	handler.EXPECT().
		Submit(mock.Anything, mock.MatchedBy(func(req gateway.SubmitRequest) bool {
			return req.Update && req.WarningShown &&
				req.Settings.ScheduleAnytimeDelay.Std() == 523*time.Millisecond
		})).
		Return(nil).
		Once()

	settings, err := form.Submit(context.Background(), handler)
	require.NoError(t, err)
	assert.Equal(t, testGateway(), settings)
	assert.False(t, form.Dirty())
}

func TestFormSubmitBlockedBySchema(t *testing.T) {
	form := openUpdateForm(t, nil)
	require.NoError(t, form.Change(gateway.FieldScheduleAnytimeDelay, "ms"))

	handler := mocks.NewMockSubmitHandler(t)

	_, err := form.Submit(context.Background(), handler)
	require.ErrorIs(t, err, gateway.ErrValidation)

	var verr *gateway.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{gateway.FieldScheduleAnytimeDelay}, verr.Fields())
	handler.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestFormSubmitHandlerError(t *testing.T) {
	form := openUpdateForm(t, nil)
	require.NoError(t, form.Change(gateway.FieldName, "Renamed"))

	boom := errors.New("backend unavailable")
	handler := mocks.NewMockSubmitHandler(t)
	handler.EXPECT().Submit(mock.Anything, mock.Anything).Return(boom)

	_, err := form.Submit(context.Background(), handler)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `"test-gateway"`)
	assert.True(t, form.Dirty(), "failed submit keeps edits")
}

func TestFormSubmitCastsValues(t *testing.T) {
	form := gateway.NewForm(gateway.FormConfig{})
	require.NoError(t, form.Change(gateway.FieldOwnerID, "gtw-settings-test-user"))
	require.NoError(t, form.Change(gateway.FieldGatewayID, "  new-gateway  "))
	require.NoError(t, form.Change(gateway.FieldEUI, "00000000000000ab"))
	require.NoError(t, form.Change(gateway.FieldScheduleAnytimeDelay, ""))

	var got gateway.SubmitRequest
	_, err := form.Submit(context.Background(), gateway.SubmitFunc(func(_ context.Context, req gateway.SubmitRequest) error {
		got = req
		return nil
	}))
	require.NoError(t, err)

	assert.False(t, got.Update)
	assert.Equal(t, "new-gateway", got.Settings.IDs.GatewayID)
	assert.Equal(t, "00000000000000AB", got.Settings.IDs.EUI)
	assert.Equal(t, "gtw-settings-test-user", got.Settings.OwnerID)
	assert.True(t, got.Settings.EnforceDutyCycle)
	assert.Equal(t, 530*time.Millisecond, got.Settings.ScheduleAnytimeDelay.Std())
	assert.False(t, got.WarningShown, "warning state is taken before cast")

	// After submit the cast default is the form value and the warning follows it.
	assert.Equal(t, "0.53s", form.Value(gateway.FieldScheduleAnytimeDelay))
	assert.True(t, form.ShouldDisplayWarning())
}

func TestFormCreateRequiresOwner(t *testing.T) {
	form := gateway.NewForm(gateway.FormConfig{Initial: gateway.Values{gateway.FieldGatewayID: "new-gateway"}})

	_, err := form.Submit(context.Background(), gateway.SubmitFunc(func(context.Context, gateway.SubmitRequest) error {
		t.Fatal("handler called")
		return nil
	}))
	var verr *gateway.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{gateway.FieldOwnerID}, verr.Fields())
}

func TestFormResetAndDirty(t *testing.T) {
	form := openUpdateForm(t, nil)
	assert.False(t, form.Dirty())

	require.NoError(t, form.Change(gateway.FieldScheduleAnytimeDelay, "2s"))
	assert.True(t, form.Dirty())
	assert.False(t, form.ShouldDisplayWarning())

	form.Reset()
	assert.False(t, form.Dirty())
	assert.True(t, form.ShouldDisplayWarning())
	assert.Equal(t, "0.523s", form.Value(gateway.FieldScheduleAnytimeDelay))
}

func TestFormValuesAreCopies(t *testing.T) {
	form := openUpdateForm(t, nil)
	v := form.Values()
	v[gateway.FieldName] = "changed"
	assert.Equal(t, "Test Gateway", form.Value(gateway.FieldName))
}

func TestFormLogsActivity(t *testing.T) {
	logger := &formlog.MemoryLogger{}
	form := openUpdateForm(t, logger)

	require.NoError(t, form.Change(gateway.FieldScheduleAnytimeDelay, "1s"))
	require.NoError(t, form.Change(gateway.FieldScheduleAnytimeDelay, "2s"))

	handler := mocks.NewMockSubmitHandler(t)
	handler.EXPECT().Submit(mock.Anything, mock.Anything).Return(nil)
	_, err := form.Submit(context.Background(), handler)
	require.NoError(t, err)

	events := logger.Events()
	kinds := make([]formlog.Kind, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
		assert.Equal(t, form.SessionID(), e.SessionID)
		assert.Equal(t, "test-gateway", e.GatewayID)
		assert.Equal(t, formlog.ModeUpdate, e.Mode)
		assert.False(t, e.Timestamp.IsZero())
	}
	assert.Equal(t, []formlog.Kind{
		formlog.KindOpen,
		formlog.KindWarning, // shown for the initial 0.523s
		formlog.KindChange,
		formlog.KindWarning, // hidden by 1s
		formlog.KindChange,
		formlog.KindSubmit,
	}, kinds)

	assert.True(t, events[1].Warning.Shown)
	assert.Equal(t, float64(1000), events[1].Warning.MinimumMs)
	assert.False(t, events[3].Warning.Shown)
	assert.Equal(t, "2s", events[4].Change.Value)
	assert.Equal(t, 2*time.Second, events[5].Submit.ScheduleAnytimeDelay)
	assert.False(t, events[5].Submit.WarningShown)
}

func TestFormLogsValidationFailure(t *testing.T) {
	logger := &formlog.MemoryLogger{}
	form := gateway.NewForm(gateway.FormConfig{Logger: logger})

	_, err := form.Submit(context.Background(), gateway.SubmitFunc(func(context.Context, gateway.SubmitRequest) error { return nil }))
	require.Error(t, err)

	kind := formlog.KindError
	failures := logger.Filter(formlog.Filter{Kind: &kind})
	require.Len(t, failures, 1)
	assert.Equal(t, "validate", failures[0].Error.Stage)
	assert.ElementsMatch(t, []string{gateway.FieldOwnerID, gateway.FieldGatewayID}, failures[0].Error.Fields)
	assert.Equal(t, formlog.ModeCreate, failures[0].Mode)
}

func TestFormRenderUsesLayout(t *testing.T) {
	form := openUpdateForm(t, nil)
	var buf bytes.Buffer
	require.NoError(t, gateway.Render(&buf, form))
	assert.Contains(t, buf.String(), "Schedule any time delay*: 0.523 [seconds]")
}
