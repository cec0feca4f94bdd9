package form

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/emtaxi/emtaxi_backend/pkg/i18n"
)

type fakeSubmitter struct {
	mu      sync.Mutex
	reqs    []Fields
	resp    Response
	err     error
	block   chan struct{} // when set, Submit waits for it
	entered chan struct{}
}

func (f *fakeSubmitter) Submit(ctx context.Context, req Fields) (Response, error) {
	f.mu.Lock()
	f.reqs = append(f.reqs, req)
	block, entered := f.block, f.entered
	f.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return Response{}, ctx.Err()
		}
	}
	return f.resp, f.err
}

func (f *fakeSubmitter) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.reqs)
}

type fakeOpener struct {
	urls []string
	err  error
}

func (o *fakeOpener) Open(u string) error {
	o.urls = append(o.urls, u)
	return o.err
}

var accepted = Response{StatusCode: 200, Success: true, Message: "Votre message a été envoyé avec succès !"}

func newTestController(sub Submitter, op Opener) *Controller {
	return NewController(Config{
		Endpoint:       "https://emtaxi.fr/api/v1/contact",
		WhatsAppNumber: "212762728706",
		Language:       "fr",
	}, sub, op, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func fill(c *Controller, f Fields) {
	c.Edit(FieldName, f.Name)
	c.Edit(FieldEmail, f.Email)
	c.Edit(FieldPhone, f.Phone)
	c.Edit(FieldServiceType, f.ServiceType)
	c.Edit(FieldFlightNumber, f.FlightNumber)
	c.Edit(FieldMessage, f.Message)
}

func TestSubmit_RequiredFieldBlocksNetwork(t *testing.T) {
	defer goleak.VerifyNone(t)

	sub := &fakeSubmitter{resp: accepted}
	c := newTestController(sub, &fakeOpener{})
	defer c.Close()

	f := filled()
	f.Name = ""
	fill(c, f)

	out, err := c.Submit(context.Background())

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, FieldName, fe.Field)
	assert.Equal(t, "Le champ 'name' est requis", out.State.Banner)
	assert.Equal(t, StatusIdle, out.State.Status)
	assert.Zero(t, sub.calls())
}

func TestSubmit_OversizeMessageBlocksNetwork(t *testing.T) {
	defer goleak.VerifyNone(t)

	sub := &fakeSubmitter{resp: accepted}
	c := NewController(Config{
		Endpoint:       "https://emtaxi.fr/api/v1/contact",
		WhatsAppNumber: "212762728706",
		Language:       "en",
		Rules:          Rules{Required: DefaultRules().Required, MaxMessageLength: 10},
	}, sub, &fakeOpener{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer c.Close()

	fill(c, filled())
	// Bypass Edit's truncation to model a form whose bound was tampered with.
	c.mu.Lock()
	c.state.Fields.Message = strings.Repeat("x", 11)
	c.mu.Unlock()

	out, err := c.Submit(context.Background())

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, ReasonTooLong, fe.Reason)
	assert.Equal(t, "The message must not exceed 10 characters", out.State.Banner)
	assert.Zero(t, sub.calls())
}

func TestSubmit_SuccessOpensChatThenResets(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sub := &fakeSubmitter{resp: accepted}
		op := &fakeOpener{}
		c := newTestController(sub, op)
		defer c.Close()

		fill(c, filled())
		out, err := c.Submit(context.Background())
		require.NoError(t, err)

		assert.Equal(t, StatusSuccess, out.State.Status)
		assert.Equal(t, Fields{}, out.State.Fields)
		assert.Equal(t, i18n.For(i18n.French).T(i18n.KeyBannerSuccess), out.State.Banner)
		assert.False(t, out.PopupBlocked)

		require.Equal(t, 1, sub.calls())
		assert.Equal(t, filled(), sub.reqs[0])

		require.Len(t, op.urls, 1)
		link := op.urls[0]
		assert.Equal(t, out.ChatLink, link)
		assert.True(t, strings.HasPrefix(link, "https://wa.me/212762728706?text="), link)
		for _, want := range []string{"Jean%20Dupont", "jean%40example.com", "Standard", "Bonjour"} {
			assert.Contains(t, link, want)
		}
		u, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, ChatMessage(i18n.For(i18n.French), filled()), u.Query().Get("text"))

		time.Sleep(DefaultResetDelay - time.Millisecond)
		synctest.Wait()
		assert.Equal(t, StatusSuccess, c.State().Status, "banner still up just before the delay")

		time.Sleep(time.Millisecond)
		synctest.Wait()
		st := c.State()
		assert.Equal(t, StatusIdle, st.Status)
		assert.Empty(t, st.Banner)
	})
}

func TestSubmit_ServerRejectionKeepsFields(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sub := &fakeSubmitter{resp: Response{StatusCode: 400, Message: "Adresse email invalide"}}
		op := &fakeOpener{}
		c := newTestController(sub, op)
		defer c.Close()

		fill(c, filled())
		out, err := c.Submit(context.Background())
		require.NoError(t, err)

		assert.Equal(t, StatusError, out.State.Status)
		assert.Equal(t, "Adresse email invalide", out.State.Banner)
		assert.Equal(t, filled(), out.State.Fields)
		assert.Empty(t, op.urls)

		time.Sleep(DefaultResetDelay)
		synctest.Wait()
		st := c.State()
		assert.Equal(t, StatusIdle, st.Status)
		assert.Empty(t, st.Banner)
		assert.Equal(t, filled(), st.Fields)
	})
}

func TestSubmit_Non2xxWithSuccessFlagIsError(t *testing.T) {
	defer goleak.VerifyNone(t)

	sub := &fakeSubmitter{resp: Response{StatusCode: 502, Success: true}}
	c := newTestController(sub, &fakeOpener{})
	defer c.Close()

	fill(c, filled())
	out, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StatusError, out.State.Status)
	assert.Equal(t, i18n.For(i18n.French).T(i18n.KeyBannerError), out.State.Banner)
}

func TestSubmit_NetworkFailureShowsGenericMessage(t *testing.T) {
	defer goleak.VerifyNone(t)

	sub := &fakeSubmitter{err: errors.New("dial tcp 10.0.0.1:443: connect: connection refused")}
	c := newTestController(sub, &fakeOpener{})
	defer c.Close()

	fill(c, filled())
	out, err := c.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StatusError, out.State.Status)
	assert.Equal(t, i18n.For(i18n.French).T(i18n.KeyBannerNetwork), out.State.Banner)
	assert.NotContains(t, out.State.Banner, "connection refused")
	assert.Equal(t, filled(), out.State.Fields)
}

func TestSubmit_BlockedPopupIsAWarning(t *testing.T) {
	defer goleak.VerifyNone(t)

	op := &fakeOpener{err: errors.New("popup blocked")}
	c := newTestController(&fakeSubmitter{resp: accepted}, op)
	defer c.Close()

	fill(c, filled())
	out, err := c.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, out.State.Status)
	assert.True(t, out.PopupBlocked)
	assert.Equal(t, i18n.For(i18n.French).T(i18n.KeyBannerPopup), out.State.Banner)
	assert.NotEmpty(t, out.ChatLink)
}

func TestSubmit_SecondSubmitWhileInFlight(t *testing.T) {
	defer goleak.VerifyNone(t)

	sub := &fakeSubmitter{resp: accepted, block: make(chan struct{}), entered: make(chan struct{})}
	c := newTestController(sub, &fakeOpener{})
	defer c.Close()
	fill(c, filled())

	done := make(chan Outcome)
	go func() {
		out, _ := c.Submit(context.Background())
		done <- out
	}()
	<-sub.entered

	assert.Equal(t, StatusSubmitting, c.State().Status)
	st := c.Edit(FieldName, "Autre")
	assert.Equal(t, "Jean Dupont", st.Fields.Name, "inputs are disabled while submitting")

	_, err := c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrBusy)

	close(sub.block)
	out := <-done
	assert.Equal(t, StatusSuccess, out.State.Status)
	assert.Equal(t, 1, sub.calls())
}

func TestSubmit_StaleResetDoesNotTouchNewerSubmission(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sub := &fakeSubmitter{resp: accepted}
		c := newTestController(sub, &fakeOpener{})
		defer c.Close()

		fill(c, filled())
		_, err := c.Submit(context.Background())
		require.NoError(t, err)

		time.Sleep(3 * time.Second)

		sub.mu.Lock()
		sub.resp = Response{StatusCode: 500, Message: "Erreur"}
		sub.mu.Unlock()

		fill(c, filled())
		out, err := c.Submit(context.Background())
		require.NoError(t, err)
		require.Equal(t, StatusError, out.State.Status)

		// The first submission's delay ends here.
		time.Sleep(2 * time.Second)
		synctest.Wait()
		assert.Equal(t, StatusError, c.State().Status)
		assert.Equal(t, "Erreur", c.State().Banner)

		time.Sleep(3 * time.Second)
		synctest.Wait()
		assert.Equal(t, StatusIdle, c.State().Status)
	})
}

func TestPrefill(t *testing.T) {
	tests := []struct {
		url   string
		want  string
		found bool
	}{
		{"https://emtaxi.fr/#contact?service=Transfert%20A%C3%A9roport", "Transfert Aéroport", true},
		{"https://emtaxi.fr/#service=Premium", "Premium", true},
		{"https://emtaxi.fr/?service=Affaires#contact", "Affaires", true},
		{"https://emtaxi.fr/#contact", "", false},
		{"https://emtaxi.fr/?service=", "", false},
		{"://bad", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			c := newTestController(&fakeSubmitter{}, &fakeOpener{})
			defer c.Close()

			assert.Equal(t, tt.found, c.Prefill(tt.url))
			assert.Equal(t, tt.want, c.State().Fields.ServiceType)
		})
	}
}

func TestChatMessage_OptionalLines(t *testing.T) {
	f := filled()
	f.Phone = "+212612345678"
	f.FlightNumber = "AT 123"

	got := ChatMessage(i18n.For(i18n.French), f)
	want := strings.Join([]string{
		"Bonjour EM Taxi,",
		"Une nouvelle demande de service a été envoyée :",
		"*Nom*: Jean Dupont",
		"*Service*: Standard",
		"*Email*: jean@example.com",
		"*Téléphone*: +212612345678",
		"*Vol*: AT 123",
		"*Message*: Bonjour",
	}, "\n")
	assert.Equal(t, want, got)

	assert.NotContains(t, ChatMessage(i18n.For(i18n.French), filled()), "Téléphone")
}
