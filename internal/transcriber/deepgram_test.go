package transcriber

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return New(Config{
		APIKey:  "test-key",
		BaseURL: baseURL,
	}, slog.New(slog.DiscardHandler))
}

func TestClient_Transcribe(t *testing.T) {
	t.Run("successful transcription", func(t *testing.T) {
		var gotAuth, gotContentType, gotQuery string
		var gotBody []byte

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotContentType = r.Header.Get("Content-Type")
			gotQuery = r.URL.RawQuery
			gotBody, _ = io.ReadAll(r.Body)

			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/listen", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"results": {
					"channels": [
						{
							"alternatives": [
								{"transcript": "Hello, everyone. Welcome to the meeting.", "confidence": 0.97},
								{"transcript": "hello everyone welcome to the meeting", "confidence": 0.81}
							]
						}
					]
				}
			}`))
		}))
		defer srv.Close()

		client := newTestClient(srv.URL)
		transcript, err := client.Transcribe(context.Background(), []byte("audio-bytes"))
		require.NoError(t, err)

		assert.Equal(t, "Hello, everyone. Welcome to the meeting.", transcript)
		assert.Equal(t, "Token test-key", gotAuth)
		assert.Equal(t, "audio/mp3", gotContentType)
		assert.Equal(t, "punctuate=true&diarize=true", gotQuery)
		assert.Equal(t, []byte("audio-bytes"), gotBody)
	})

	t.Run("service error includes status and body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"err_msg": "Invalid credentials"}`))
		}))
		defer srv.Close()

		client := newTestClient(srv.URL)
		_, err := client.Transcribe(context.Background(), []byte("audio"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
		assert.Contains(t, err.Error(), "Invalid credentials")
	})

	t.Run("empty channels rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"results": {"channels": []}}`))
		}))
		defer srv.Close()

		client := newTestClient(srv.URL)
		_, err := client.Transcribe(context.Background(), []byte("audio"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no alternatives")
	})

	t.Run("empty alternatives rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"results": {"channels": [{"alternatives": []}]}}`))
		}))
		defer srv.Close()

		client := newTestClient(srv.URL)
		_, err := client.Transcribe(context.Background(), []byte("audio"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no alternatives")
	})

	t.Run("malformed response body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		client := newTestClient(srv.URL)
		_, err := client.Transcribe(context.Background(), []byte("audio"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode transcription response")
	})

	t.Run("context cancellation", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := newTestClient(srv.URL)
		_, err := client.Transcribe(ctx, []byte("audio"))
		require.Error(t, err)
	})
}
