package clientcmd

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestExecuteUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	execute(context.Background(), nil, "frobnicate x", &out)
	if !strings.Contains(out.String(), `unknown command "frobnicate"`) {
		t.Fatalf("output = %q, want unknown-command error", out.String())
	}
}

func TestExecuteBlankLineIsNoop(t *testing.T) {
	var out bytes.Buffer
	execute(context.Background(), nil, "   ", &out)
	if out.Len() != 0 {
		t.Fatalf("output = %q, want nothing", out.String())
	}
}

func TestExecuteMissingArgument(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"create", "usage: create <path>"},
		{"update", "usage: update <path>"},
		{"delete", "usage: delete <path>"},
		{"read", "usage: read <path>"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			var out bytes.Buffer
			execute(context.Background(), nil, tt.line, &out)
			if !strings.Contains(out.String(), tt.want) {
				t.Fatalf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}
