package s3

import (
	"io"
	"strings"
	"testing"
)

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "res-1/file.pdf", want: "res-1/file.pdf"},
		{name: "simple prefix", prefix: "resources", key: "res-1/file.pdf", want: "resources/res-1/file.pdf"},
		{name: "prefix trailing slash", prefix: "resources/", key: "res-1/file.pdf", want: "resources/res-1/file.pdf"},
		{name: "prefix and key slashes", prefix: "/resources/", key: "/res-1/file.pdf", want: "resources/res-1/file.pdf"},
		{name: "nested prefix", prefix: "env/prod", key: "res-1/file.pdf", want: "env/prod/res-1/file.pdf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

func TestCountingReader(t *testing.T) {
	t.Parallel()

	counter := &countingReader{r: strings.NewReader("hello world")}
	data, err := io.ReadAll(counter)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "hello world" {
		t.Fatalf("unexpected data %q", data)
	}
	if counter.n != int64(len("hello world")) {
		t.Fatalf("expected %d bytes counted, got %d", len("hello world"), counter.n)
	}
}
