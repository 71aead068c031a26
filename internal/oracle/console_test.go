package oracle

import (
	"context"
	"strings"
	"testing"
)

func TestConsoleAsk(t *testing.T) {
	in := strings.NewReader("Six letters, young one.\n")
	var out strings.Builder
	c := NewConsole(in, &out)

	answer, err := c.Ask(context.Background(), "How many letters?")
	if err != nil {
		t.Fatal(err)
	}
	if answer != "Six letters, young one." {
		t.Errorf("answer: got %q", answer)
	}
	if !strings.Contains(out.String(), "How many letters?") {
		t.Errorf("prompt missing from output: %q", out.String())
	}
}

func TestConsoleAskEOF(t *testing.T) {
	c := NewConsole(strings.NewReader(""), &strings.Builder{})
	answer, err := c.Ask(context.Background(), "How many letters?")
	if err != nil {
		t.Fatal(err)
	}
	if answer != "" {
		t.Errorf("answer at EOF: got %q, want empty", answer)
	}
}

func TestConsoleSubmit(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  bool
	}{
		{"yes-short", "y\n", true},
		{"yes-long", "YES\n", true},
		{"no", "n\n", false},
		{"garbage", "maybe\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			c := NewConsole(strings.NewReader(tt.reply), &out)
			accepted, err := c.Submit(context.Background(), "zodiac")
			if err != nil {
				t.Fatal(err)
			}
			if accepted != tt.want {
				t.Errorf("accepted: got %v, want %v", accepted, tt.want)
			}
			if !strings.Contains(out.String(), "zodiac") {
				t.Errorf("candidate missing from output: %q", out.String())
			}
		})
	}
}

func TestConsoleCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewConsole(strings.NewReader("reply\n"), &strings.Builder{})
	if _, err := c.Ask(ctx, "How many letters?"); err == nil {
		t.Error("Ask: want context error")
	}
	if _, err := c.Submit(ctx, "zodiac"); err == nil {
		t.Error("Submit: want context error")
	}
}
