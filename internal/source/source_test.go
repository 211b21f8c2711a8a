package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hwkit/lshwkit/pkg/types"
)

func TestResolveLiteral(t *testing.T) {
	const markup = `<node class="system"/>`
	data, err := Resolve(markup)
	if err != nil {
		t.Fatalf("Resolve literal: %v", err)
	}
	if string(data) != markup {
		t.Errorf("Resolve returned %q, want input unchanged", data)
	}
}

func TestResolveFile(t *testing.T) {
	const markup = `<node class="system"/>`
	path := filepath.Join(t.TempDir(), "report.xml")
	if err := os.WriteFile(path, []byte(markup), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	data, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve file: %v", err)
	}
	if string(data) != markup {
		t.Errorf("Resolve returned %q, want file contents", data)
	}
}

func TestResolveDirectoryIsLiteral(t *testing.T) {
	// A directory is not a regular file, so its path is literal markup.
	dir := t.TempDir()
	data, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve dir: %v", err)
	}
	if string(data) != dir {
		t.Errorf("Resolve returned %q, want the path string itself", data)
	}
}

func TestResolveUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}

	path := filepath.Join(t.TempDir(), "report.xml")
	if err := os.WriteFile(path, []byte("<node/>"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if err := os.Chmod(path, 0000); err != nil {
		t.Fatalf("chmod fixture: %v", err)
	}

	_, err := Resolve(path)
	if err == nil {
		t.Fatal("Resolve should fail on an unreadable file")
	}
	if kind, ok := types.KindOf(err); !ok || kind != types.ErrKindIO {
		t.Errorf("error kind = %v, %v; want ErrKindIO", kind, ok)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"plain utf-8", []byte("<node/>"), "<node/>"},
		{"utf-8 bom stripped", []byte("\xef\xbb\xbf<node/>"), "<node/>"},
		{
			"utf-16le transcoded",
			[]byte{0xff, 0xfe, '<', 0, 'n', 0, '/', 0, '>', 0},
			"<n/>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.in)
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Normalize = %q, want %q", got, tt.want)
			}
		})
	}
}
