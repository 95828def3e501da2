package i18nhttp

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/smartlogistics/i18n"
)

// Handler serves the catalog over HTTP:
//
//	GET /api/i18n/languages           switcher options
//	GET /api/i18n/messages            message tree for the request language
//	GET /api/i18n/translate?key=a.b   one resolved key
//
// Wrap it with Middleware so the request language is available.
type Handler struct {
	bundle *i18n.Bundle
	mux    *http.ServeMux
}

// MessagesResponse is the body of /api/i18n/messages.
type MessagesResponse struct {
	Language string         `json:"language"`
	Theme    string         `json:"theme"`
	Messages map[string]any `json:"messages"`
}

// TranslateResponse is the body of /api/i18n/translate.
type TranslateResponse struct {
	Language string `json:"language"`
	Key      string `json:"key"`
	Value    string `json:"value"`
	Resolved bool   `json:"resolved"`
}

// NewHandler returns a Handler serving b.
func NewHandler(b *i18n.Bundle) *Handler {
	h := &Handler{bundle: b, mux: http.NewServeMux()}
	h.mux.HandleFunc("GET /api/i18n/languages", h.languages)
	h.mux.HandleFunc("GET /api/i18n/messages", h.messages)
	h.mux.HandleFunc("GET /api/i18n/translate", h.translate)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) languages(w http.ResponseWriter, r *http.Request) {
	s := i18n.SettingsFromContext(r.Context())
	writeJSON(w, http.StatusOK, BuildLanguageOptions(h.bundle.Languages(), s.Language))
}

func (h *Handler) messages(w http.ResponseWriter, r *http.Request) {
	s := i18n.SettingsFromContext(r.Context())
	writeJSON(w, http.StatusOK, MessagesResponse{
		Language: s.Language.String(),
		Theme:    string(s.Theme),
		Messages: h.bundle.Tree(s.Language),
	})
}

func (h *Handler) translate(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimSpace(r.URL.Query().Get("key"))
	if key == "" {
		http.Error(w, "key is required", http.StatusBadRequest)
		return
	}
	s := i18n.SettingsFromContext(r.Context())
	value, ok := h.bundle.Lookup(s.Language, key)
	writeJSON(w, http.StatusOK, TranslateResponse{
		Language: s.Language.String(),
		Key:      key,
		Value:    value,
		Resolved: ok,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("i18nhttp: encode response: %v", err)
	}
}
