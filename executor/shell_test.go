package executor

import (
	"reflect"
	"testing"
)

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    []string
	}{
		{"plain words", "echo hello", []string{"echo", "hello"}},
		{"single quotes", "echo 'a b'", []string{"echo", "a b"}},
		{"double quotes", `grep "two words" f.txt`, []string{"grep", "two words", "f.txt"}},
		{"escaped space", `ls my\ dir`, []string{"ls", "my dir"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitCommand(tt.command); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitCommand(%q) = %v, want %v", tt.command, got, tt.want)
			}
		})
	}
}

func TestSplitCommandFallsBackToShell(t *testing.T) {
	tests := []struct {
		name    string
		command string
	}{
		{"unbalanced quote", `echo 'oops`},
		{"empty command", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitCommand(tt.command)
			want := shellCommand(tt.command)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("splitCommand(%q) = %v, want shell fallback %v", tt.command, got, want)
			}
		})
	}
}
