package form

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSubmitter(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		want        Response
	}{
		{
			name:        "accepted",
			status:      http.StatusOK,
			contentType: "application/json",
			body:        `{"success":true,"message":"Votre message a été envoyé avec succès !"}`,
			want:        Response{StatusCode: 200, Success: true, Message: "Votre message a été envoyé avec succès !"},
		},
		{
			name:        "validation error",
			status:      http.StatusBadRequest,
			contentType: "application/json",
			body:        `{"success":false,"message":"Adresse email invalide"}`,
			want:        Response{StatusCode: 400, Message: "Adresse email invalide"},
		},
		{
			name:        "proxy error page",
			status:      http.StatusBadGateway,
			contentType: "text/html",
			body:        `<html><body>Bad Gateway</body></html>`,
			want:        Response{StatusCode: 502},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Fields
			var lang string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Contains(t, r.Header.Get("Content-Type"), "application/json")
				lang = r.Header.Get("Accept-Language")
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			s := NewHTTPSubmitter(srv.URL+"/api/v1/contact", "en")
			resp, err := s.Submit(context.Background(), filled())
			require.NoError(t, err)

			assert.Equal(t, tt.want, resp)
			assert.Equal(t, filled(), got)
			assert.Equal(t, "en", lang)
		})
	}
}

func TestHTTPSubmitter_Unreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	s := NewHTTPSubmitter("http://"+addr+"/api/v1/contact", "fr")
	_, err = s.Submit(context.Background(), filled())
	assert.Error(t, err)
}
