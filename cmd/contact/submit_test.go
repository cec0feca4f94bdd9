//go:build !devbypass

package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emtaxi/emtaxi_backend/config"
	"github.com/emtaxi/emtaxi_backend/internal/form"
)

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestRunSubmit_PrintsBannerAndLink(t *testing.T) {
	var got form.Fields
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"ok"}`))
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.Form.Endpoint = srv.URL

	var out bytes.Buffer
	err := runSubmit(context.Background(), &out, cfg, submitFlags{
		pageURL: "https://emtaxi.fr/#contact?service=Premium",
		fields: form.Fields{
			Name:    "Jean Dupont",
			Email:   "jean@example.com",
			Message: "Bonjour",
		},
	}, discard())
	require.NoError(t, err)

	assert.Equal(t, "Premium", got.ServiceType)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "https://wa.me/212762728706?text="))
	assert.True(t, strings.HasPrefix(lines[1], "[success] "))
}

func TestRunSubmit_LocalValidation(t *testing.T) {
	cfg := config.Default()
	cfg.Form.Endpoint = "http://127.0.0.1:1/never-called"

	var out bytes.Buffer
	err := runSubmit(context.Background(), &out, cfg, submitFlags{
		fields: form.Fields{Name: "Jean", Email: "jean@example.com", Message: "Bonjour"},
	}, discard())

	require.Error(t, err)
	assert.Equal(t, "Le champ 'serviceType' est requis", err.Error())
	assert.Empty(t, out.String())
}

func TestRunSubmit_ServerRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"message":"Adresse email invalide"}`))
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.Form.Endpoint = srv.URL

	var out bytes.Buffer
	err := runSubmit(context.Background(), &out, cfg, submitFlags{
		fields: form.Fields{Name: "Jean", Email: "x@y", ServiceType: "Standard", Message: "Bonjour"},
	}, discard())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Adresse email invalide")
	assert.Equal(t, "[error] Adresse email invalide\n", out.String())
}
