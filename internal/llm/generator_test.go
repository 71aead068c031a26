package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pdekker/merlin-solver/internal/oracle"
)

// chatStub serves a canned chat-completion reply and captures the prompt.
func chatStub(t *testing.T, content string) (*httptest.Server, *string) {
	t.Helper()
	var prompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		for _, m := range req.Messages {
			if m.Role == "user" {
				prompt = m.Content
			}
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv, &prompt
}

func TestGenerate(t *testing.T) {
	srv, prompt := chatStub(t, "ZODIAC.\n")
	g := NewWordGenerator("test-key", srv.URL+"/v1", "")

	exchanges := []oracle.Exchange{
		{Question: "How many letters?", Answer: "Six letters, young one."},
		{Question: "What are the first four letters?", Answer: "ZODI."},
	}
	word, err := g.Generate(context.Background(), exchanges)
	if err != nil {
		t.Fatal(err)
	}
	if word != "zodiac" {
		t.Errorf("word: got %q, want %q (cleaned)", word, "zodiac")
	}

	// The whole transcript reaches the model.
	for _, fragment := range []string{"How many letters?", "Six letters, young one.", "ZODI."} {
		if !strings.Contains(*prompt, fragment) {
			t.Errorf("prompt missing %q:\n%s", fragment, *prompt)
		}
	}
}

func TestGenerateNoExchanges(t *testing.T) {
	g := NewWordGenerator("test-key", "", "")
	if _, err := g.Generate(context.Background(), nil); err == nil {
		t.Error("want error with no exchanges")
	}
}

func TestGenerateNonWordReply(t *testing.T) {
	srv, _ := chatStub(t, "42!")
	g := NewWordGenerator("test-key", srv.URL+"/v1", "")

	exchanges := []oracle.Exchange{{Question: "How many letters?", Answer: "Six."}}
	if _, err := g.Generate(context.Background(), exchanges); err == nil {
		t.Error("want error when the reply contains no letters")
	}
}

func TestCleanWord(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ZODIAC.", "zodiac"},
		{"  zodiac \n", "zodiac"},
		{`"Zodiac"`, "zodiac"},
		{"123", ""},
	}
	for _, tt := range tests {
		if got := cleanWord(tt.in); got != tt.want {
			t.Errorf("cleanWord(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}
