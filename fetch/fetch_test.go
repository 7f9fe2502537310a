package fetch

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

// writeTree creates files under root from a map of relative path to content.
// A path ending in "/" creates an empty directory.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(root, rel)

		if rel[len(rel)-1] == '/' {
			if err := os.MkdirAll(path, 0o755); err != nil {
				t.Fatal(err)
			}

			continue
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func envOf(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]

		return v, ok
	}
}

func TestFormatUptime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0 minutes"},
		{59 * time.Second, "0 minutes"},
		{time.Minute, "1 minute"},
		{2 * time.Hour, "2 hours"},
		{24*time.Hour + time.Minute, "1 day, 1 minute"},
		{3*24*time.Hour + 4*time.Hour + 5*time.Minute + 6*time.Second, "3 days, 4 hours, 5 minutes"},
	}

	for _, tt := range tests {
		if got := FormatUptime(tt.d); got != tt.want {
			t.Errorf("FormatUptime(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestParseKernel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Linux version 6.6.1-arch1-1 (linux@archlinux) (gcc 13.2.1) #1 SMP\n", "6.6.1-arch1-1"},
		{"Linux version\n", NotAvailable},
		{"", NotAvailable},
	}

	for _, tt := range tests {
		if got := parseKernel(tt.in); got != tt.want {
			t.Errorf("parseKernel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseOSRelease(t *testing.T) {
	t.Parallel()

	got := parseOSRelease([]byte(`# comment
NAME="Arch Linux"
PRETTY_NAME='Arch Linux (rolling)'
ID=arch

BROKEN
`))

	want := map[string]string{
		"NAME":        "Arch Linux",
		"PRETTY_NAME": "Arch Linux (rolling)",
		"ID":          "arch",
	}

	if len(got) != len(want) {
		t.Fatalf("parseOSRelease() = %v, want %v", got, want)
	}

	for k, v := range want {
		if got[k] != v {
			t.Errorf("field %s = %q, want %q", k, got[k], v)
		}
	}
}

func TestSourceFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"etc/os-release":           "NAME=\"Void\"\nPRETTY_NAME=\"Void Linux\"\n",
		"proc/version":             "Linux version 6.1.0-void (gcc) #1\n",
		"proc/uptime":              "93784.12 180000.00\n",
		"proc/sys/kernel/hostname": "voidbox\n",
	})

	s := Source{Root: root, LookupEnv: envOf(nil)}

	tests := []struct {
		name string
		want string
	}{
		{"distro", "Void Linux"},
		{"kernel", "6.1.0-void"},
		{"uptime", "1 day, 2 hours, 3 minutes"},
		{"hostname", "voidbox"},
	}

	for _, tt := range tests {
		got, ok := s.Lookup(tt.name)
		if !ok {
			t.Errorf("Lookup(%q) not found", tt.name)

			continue
		}

		if got != tt.want {
			t.Errorf("Lookup(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSourceMissingFiles(t *testing.T) {
	t.Parallel()

	s := Source{Root: t.TempDir(), Home: t.TempDir(), LookupEnv: envOf(nil)}

	for _, name := range Names() {
		got, ok := s.Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) not found", name)
		}

		if got != NotAvailable {
			t.Errorf("Lookup(%q) = %q, want %q", name, got, NotAvailable)
		}
	}
}

func TestDistroFallback(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"usr/lib/os-release": "NAME=Gentoo\n",
	})

	if got := (Source{Root: root}).Distro(); got != "Gentoo" {
		t.Errorf("Distro() = %q, want %q", got, "Gentoo")
	}
}

func TestPackages(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	home := t.TempDir()

	writeTree(t, root, map[string]string{
		"var/lib/pacman/local/a-1/":  "",
		"var/lib/pacman/local/b-2/":  "",
		"var/lib/pacman/local/c-3/":  "",
		"var/lib/dpkg/info/a.list":   "",
		"var/lib/dpkg/info/a.md5":    "",
		"var/lib/dpkg/info/b.list":   "",
		"var/lib/flatpak/app/org.x/": "",
	})
	writeTree(t, home, map[string]string{
		".local/share/flatpak/app/org.y/": "",
	})

	s := Source{Root: root, Home: home}

	want := "3 (pacman), 2 (apt), 2 (flatpak)"
	if got := s.Packages(); got != want {
		t.Errorf("Packages() = %q, want %q", got, want)
	}
}

func TestEnvFacts(t *testing.T) {
	t.Parallel()

	s := Source{
		Root: t.TempDir(),
		LookupEnv: envOf(map[string]string{
			"SHELL": "/usr/bin/zsh",
			"TERM":  "xterm-256color",
			"USER":  "ada",
		}),
	}

	tests := []struct {
		name string
		want string
	}{
		{"shell", "zsh"},
		{"term", "xterm-256color"},
		{"username", "ada"},
	}

	for _, tt := range tests {
		if got, _ := s.Lookup(tt.name); got != tt.want {
			t.Errorf("Lookup(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()

	if v, ok := (Source{}).Lookup("bold"); ok || v != "" {
		t.Errorf("Lookup(bold) = %q, %v, want empty, false", v, ok)
	}
}

func TestNames(t *testing.T) {
	t.Parallel()

	names := Names()
	if !slices.IsSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}

	for _, want := range []string{"distro", "hostname", "kernel", "pkgs", "shell", "term", "uptime", "username"} {
		if !slices.Contains(names, want) {
			t.Errorf("Names() missing %q", want)
		}
	}
}
