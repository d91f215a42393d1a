package oxforddict

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Entries(t *testing.T) {
	tests := []struct {
		name              string
		word              string
		filters           []string
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)

		want            Response
		wantError       bool
		wantErrorString string
	}{
		{
			name: "Success without filters",
			word: "ace",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/entries/en/ace", r.URL.Path)
				assert.Equal(t, "test-app-id", r.Header.Get("app_id"))
				assert.Equal(t, "test-app-key", r.Header.Get("app_key"))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"metadata": {"provider": "Oxford University Press"}, "results": [{"id": "ace", "word": "ace"}]}`))
			},
			want: Response{
				"metadata": map[string]any{"provider": "Oxford University Press"},
				"results":  []any{map[string]any{"id": "ace", "word": "ace"}},
			},
		},
		{
			name:    "Filters become path segments",
			word:    "cat",
			filters: []string{"examples"},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/entries/en/cat/examples", r.URL.Path)

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"results": []}`))
			},
			want: Response{"results": []any{}},
		},
		{
			name:    "Filter with a value pair",
			word:    "cat",
			filters: []string{"regions=us"},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/entries/en/cat/regions=us", r.URL.Path)

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"results": []}`))
			},
			want: Response{"results": []any{}},
		},
		{
			name: "Word is normalized before the request",
			word: "  Steady State ",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/entries/en/steady_state", r.URL.Path)

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"results": []}`))
			},
			want: Response{"results": []any{}},
		},
		{
			name: "Authentication failure",
			word: "ace",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"error": "Authentication failed"}`))
			},
			wantError:       true,
			wantErrorString: "unexpected status 403",
		},
		{
			name: "No entry for the word",
			word: "qwertyuiop",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"error": "No entry found"}`))
			},
			wantError:       true,
			wantErrorString: "unexpected status 404",
		},
		{
			name: "Truncated response body",
			word: "ace",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"results": [`))
			},
			wantError:       true,
			wantErrorString: "decode json",
		},
		{
			name: "Response body is not a JSON object",
			word: "ace",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`[1, 2, 3]`))
			},
			wantError:       true,
			wantErrorString: "decode json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.mockServerHandler(t, w, r)
			}))
			defer server.Close()

			client, err := New("test-app-id", "test-app-key", WithBaseURL(server.URL))
			require.NoError(t, err)

			got, gotErr := client.Entries(context.Background(), tt.word, tt.filters...)
			if tt.wantError {
				require.Error(t, gotErr)
				if tt.wantErrorString != "" {
					assert.Contains(t, gotErr.Error(), tt.wantErrorString)
				}
				return
			}
			require.NoError(t, gotErr)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestClient_Sentences(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/entries/en/ace/sentences", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [{"id": "ace", "sentences": [{"text": "She aced her exams."}]}]}`))
	}))
	defer server.Close()

	client, err := New("test-app-id", "test-app-key", WithBaseURL(server.URL))
	require.NoError(t, err)

	got, gotErr := client.Sentences(context.Background(), "Ace")
	require.NoError(t, gotErr)
	assert.Equal(t, Response{
		"results": []any{map[string]any{
			"id":        "ace",
			"sentences": []any{map[string]any{"text": "She aced her exams."}},
		}},
	}, got)
}

func TestClient_Translations(t *testing.T) {
	tests := []struct {
		name              string
		word              string
		targetLanguage    string
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)

		want            Response
		wantError       bool
		wantErrorString string
	}{
		{
			name:           "Success",
			word:           "hello",
			targetLanguage: "es",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/entries/en/hello/translations=es", r.URL.Path)

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"results": [{"id": "hello", "translations": [{"text": "hola"}]}]}`))
			},
			want: Response{
				"results": []any{map[string]any{
					"id":           "hello",
					"translations": []any{map[string]any{"text": "hola"}},
				}},
			},
		},
		{
			name:           "Language pair not covered by the API",
			word:           "hello",
			targetLanguage: "lv",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/entries/en/hello/translations=lv", r.URL.Path)

				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"error": "No translation found"}`))
			},
			wantError:       true,
			wantErrorString: "unexpected status 404",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.mockServerHandler(t, w, r)
			}))
			defer server.Close()

			client, err := New("test-app-id", "test-app-key", WithBaseURL(server.URL))
			require.NoError(t, err)

			got, gotErr := client.Translations(context.Background(), tt.word, tt.targetLanguage)
			if tt.wantError {
				require.Error(t, gotErr)
				assert.Contains(t, gotErr.Error(), tt.wantErrorString)
				return
			}
			require.NoError(t, gotErr)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestClient_Synonyms(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/entries/en/ace/synonyms", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [{"id": "ace"}]}`))
	}))
	defer server.Close()

	client, err := New("test-app-id", "test-app-key", WithBaseURL(server.URL))
	require.NoError(t, err)

	got, gotErr := client.Synonyms(context.Background(), "ace")
	require.NoError(t, gotErr)
	assert.Equal(t, Response{"results": []any{map[string]any{"id": "ace"}}}, got)
}

func TestClient_Antonyms(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/entries/en/ace/antonyms", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [{"id": "ace"}]}`))
	}))
	defer server.Close()

	client, err := New("test-app-id", "test-app-key", WithBaseURL(server.URL))
	require.NoError(t, err)

	got, gotErr := client.Antonyms(context.Background(), "ace")
	require.NoError(t, gotErr)
	assert.Equal(t, Response{"results": []any{map[string]any{"id": "ace"}}}, got)
}

func TestClient_Thesaurus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/entries/en/ace/antonyms;synonyms", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [{"id": "ace"}]}`))
	}))
	defer server.Close()

	client, err := New("test-app-id", "test-app-key", WithBaseURL(server.URL))
	require.NoError(t, err)

	got, gotErr := client.Thesaurus(context.Background(), "ace")
	require.NoError(t, gotErr)
	assert.Equal(t, Response{"results": []any{map[string]any{"id": "ace"}}}, got)
}
