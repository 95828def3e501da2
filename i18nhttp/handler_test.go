package i18nhttp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smartlogistics/i18n"
)

func serve(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	h := Middleware(i18n.English)(NewHandler(i18n.Default()))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Translate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		target   string
		want     TranslateResponse
		wantCode int
	}{
		{
			target: "/api/i18n/translate?lang=hi&key=metrics.totalBoxes",
			want:   TranslateResponse{Language: "hi", Key: "metrics.totalBoxes", Value: "कुल बॉक्स", Resolved: true},
		},
		{
			target: "/api/i18n/translate?lang=ta&key=nonexistent.key",
			want:   TranslateResponse{Language: "ta", Key: "nonexistent.key", Value: "nonexistent.key"},
		},
		{
			target: "/api/i18n/translate?key=systemStatus.title",
			want:   TranslateResponse{Language: "en", Key: "systemStatus.title", Value: "System Status", Resolved: true},
		},
		{target: "/api/i18n/translate?lang=en", wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		rec := serve(t, tt.target)
		if tt.wantCode != 0 {
			if rec.Code != tt.wantCode {
				t.Fatalf("%s: status = %d, want %d", tt.target, rec.Code, tt.wantCode)
			}
			continue
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d", tt.target, rec.Code)
		}
		var got TranslateResponse
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("%s: decode: %v", tt.target, err)
		}
		if got != tt.want {
			t.Fatalf("%s: got %+v, want %+v", tt.target, got, tt.want)
		}
	}
}

func TestHandler_Messages(t *testing.T) {
	t.Parallel()

	rec := serve(t, "/api/i18n/messages?lang=ta&theme=dark")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got MessagesResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Language != "ta" || got.Theme != "dark" {
		t.Fatalf("got %+v", got)
	}
	status, ok := got.Messages["systemStatus"].(map[string]any)
	if !ok || status["title"] != "கணினி நிலை" {
		t.Fatalf("messages.systemStatus = %v", got.Messages["systemStatus"])
	}
}

func TestHandler_Languages(t *testing.T) {
	t.Parallel()

	rec := serve(t, "/api/i18n/languages?lang=ta")
	var got []LanguageOption
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 3 || !got[2].Active || got[2].Code != "ta" {
		t.Fatalf("languages = %+v", got)
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	h := NewHandler(i18n.Default())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/i18n/messages", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
