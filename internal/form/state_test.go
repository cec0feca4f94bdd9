package form

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled() Fields {
	return Fields{
		Name:        "Jean Dupont",
		Email:       "jean@example.com",
		ServiceType: "Standard",
		Message:     "Bonjour",
	}
}

func TestEdit(t *testing.T) {
	r := DefaultRules()

	t.Run("sets field and clears banner", func(t *testing.T) {
		s := State{Status: StatusError, Banner: "boom", Fields: filled(), Generation: 3}
		got := Edit(s, r, FieldPhone, "+212612345678")

		want := s
		want.Status = StatusIdle
		want.Banner = ""
		want.Fields.Phone = "+212612345678"
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Edit() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("truncates message at the bound", func(t *testing.T) {
		got := Edit(State{}, r, FieldMessage, strings.Repeat("é", 600))
		assert.Equal(t, 500, len([]rune(got.Fields.Message)))
	})

	t.Run("ignored while submitting", func(t *testing.T) {
		s := State{Status: StatusSubmitting, Fields: filled()}
		assert.Equal(t, s, Edit(s, r, FieldName, "Autre"))
	})

	t.Run("unknown field", func(t *testing.T) {
		s := State{Status: StatusSuccess, Banner: "ok"}
		assert.Equal(t, s, Edit(s, r, Field("nope"), "x"))
	})
}

func TestValidate(t *testing.T) {
	r := DefaultRules()

	tests := []struct {
		name   string
		mutate func(f *Fields)
		want   *FieldError
	}{
		{"valid", func(f *Fields) {}, nil},
		{"phone and flight optional", func(f *Fields) { f.Phone, f.FlightNumber = "", "" }, nil},
		{"missing name", func(f *Fields) { f.Name = "  " }, &FieldError{Field: FieldName, Reason: ReasonRequired}},
		{"missing email", func(f *Fields) { f.Email = "" }, &FieldError{Field: FieldEmail, Reason: ReasonRequired}},
		{"missing service", func(f *Fields) { f.ServiceType = "" }, &FieldError{Field: FieldServiceType, Reason: ReasonRequired}},
		{"missing message", func(f *Fields) { f.Message = "" }, &FieldError{Field: FieldMessage, Reason: ReasonRequired}},
		{"first missing wins", func(f *Fields) { f.Name, f.Message = "", "" }, &FieldError{Field: FieldName, Reason: ReasonRequired}},
		{"message at bound", func(f *Fields) { f.Message = strings.Repeat("a", 500) }, nil},
		{"message over bound", func(f *Fields) { f.Message = strings.Repeat("a", 501) }, &FieldError{Field: FieldMessage, Reason: ReasonTooLong, Limit: 500}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := filled()
			tt.mutate(&f)
			err := Validate(f, r)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.want, fe)
		})
	}
}

func TestBegin(t *testing.T) {
	r := DefaultRules()
	s := State{Fields: filled(), Banner: "stale", Generation: 7}

	next, req, err := Begin(s, r)
	require.NoError(t, err)
	assert.Equal(t, StatusSubmitting, next.Status)
	assert.Empty(t, next.Banner)
	assert.Equal(t, uint64(8), next.Generation)
	assert.Equal(t, filled(), req)

	// The snapshot does not follow later state changes.
	next.Fields.Name = "Autre"
	assert.Equal(t, "Jean Dupont", req.Name)

	_, _, err = Begin(next, r)
	assert.ErrorIs(t, err, ErrBusy)

	_, _, err = Begin(State{}, r)
	var fe *FieldError
	assert.ErrorAs(t, err, &fe)
}

func TestSettle(t *testing.T) {
	submitting := State{Fields: filled(), Status: StatusSubmitting, Generation: 2}

	ok := Succeed(submitting, "merci")
	if diff := cmp.Diff(State{Status: StatusSuccess, Banner: "merci", Generation: 2}, ok); diff != "" {
		t.Errorf("Succeed() mismatch (-want +got):\n%s", diff)
	}

	failed := Fail(submitting, "erreur")
	if diff := cmp.Diff(State{Fields: filled(), Status: StatusError, Banner: "erreur", Generation: 2}, failed); diff != "" {
		t.Errorf("Fail() mismatch (-want +got):\n%s", diff)
	}

	idle := State{Fields: filled()}
	assert.Equal(t, idle, Succeed(idle, "x"), "only a submitting form settles")
	assert.Equal(t, idle, Fail(idle, "x"))
}

func TestReset(t *testing.T) {
	s := State{Status: StatusSuccess, Banner: "merci", Generation: 4}

	assert.Equal(t, State{Status: StatusIdle, Generation: 4}, Reset(s, 4))
	assert.Equal(t, s, Reset(s, 3), "stale generation")

	submitting := State{Status: StatusSubmitting, Generation: 4}
	assert.Equal(t, submitting, Reset(submitting, 4))

	errored := State{Status: StatusError, Banner: "x", Fields: filled(), Generation: 1}
	assert.Equal(t, State{Status: StatusIdle, Fields: filled(), Generation: 1}, Reset(errored, 1))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "submitting", StatusSubmitting.String())
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "error", StatusError.String())
	assert.Equal(t, "status(9)", Status(9).String())
}
