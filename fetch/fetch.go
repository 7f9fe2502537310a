// Package fetch gathers the built-in system facts available to templates as
// "{@name}" directives.
package fetch

import (
	"bufio"
	"bytes"
	"os"
	"os/user"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"
)

// NotAvailable is the value of a fact that could not be determined.
const NotAvailable = "N/A"

// Source reads system facts. The zero value reads the running system.
type Source struct {
	// Root is prefixed to every system file path. Empty means "/".
	Root string
	// Home is the user's home directory. Empty means $HOME.
	Home string
	// LookupEnv reads environment variables. Nil means [os.LookupEnv].
	LookupEnv func(string) (string, bool)
}

// facts maps each fact name to the method that computes it.
var facts = map[string]func(Source) string{
	"username": Source.Username,
	"hostname": Source.Hostname,
	"distro":   Source.Distro,
	"kernel":   Source.Kernel,
	"uptime":   Source.Uptime,
	"pkgs":     Source.Packages,
	"shell":    Source.Shell,
	"term":     Source.Term,
}

// Names returns the sorted names of all facts.
func Names() []string {
	names := make([]string, 0, len(facts))
	for name := range facts {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Lookup computes the named fact. It reports false if no fact has that
// name; a known fact that cannot be determined is [NotAvailable].
func (s Source) Lookup(name string) (string, bool) {
	fn, ok := facts[name]
	if !ok {
		return "", false
	}

	return fn(s), true
}

// Username returns the name of the current user.
func (s Source) Username() string {
	if s.Root == "" {
		if u, err := user.Current(); err == nil && u.Username != "" {
			return u.Username
		}
	}

	for _, key := range []string{"USER", "LOGNAME"} {
		if v, ok := s.env(key); ok && v != "" {
			return v
		}
	}

	return NotAvailable
}

// Hostname returns the network name of the machine.
func (s Source) Hostname() string {
	if data, err := os.ReadFile(s.path("proc/sys/kernel/hostname")); err == nil {
		if name := strings.TrimSpace(string(data)); name != "" {
			return name
		}
	}

	if s.Root == "" {
		if name, err := os.Hostname(); err == nil && name != "" {
			return name
		}
	}

	return NotAvailable
}

// Distro returns the PRETTY_NAME (or NAME) field from os-release.
func (s Source) Distro() string {
	for _, file := range []string{"etc/os-release", "usr/lib/os-release"} {
		data, err := os.ReadFile(s.path(file))
		if err != nil {
			continue
		}

		fields := parseOSRelease(data)
		for _, key := range []string{"PRETTY_NAME", "NAME"} {
			if v := fields[key]; v != "" {
				return v
			}
		}
	}

	return NotAvailable
}

// parseOSRelease parses the KEY=value lines of an os-release file.
func parseOSRelease(data []byte) map[string]string {
	fields := make(map[string]string)

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		if uq, err := strconv.Unquote(val); err == nil {
			val = uq
		} else {
			val = strings.Trim(val, `"'`)
		}

		fields[key] = val
	}

	return fields
}

// Kernel returns the kernel release from /proc/version.
func (s Source) Kernel() string {
	data, err := os.ReadFile(s.path("proc/version"))
	if err != nil {
		return NotAvailable
	}

	return parseKernel(string(data))
}

// parseKernel extracts the release from "Linux version <release> ...".
func parseKernel(version string) string {
	fields := strings.Fields(version)
	if len(fields) < 3 {
		return NotAvailable
	}

	return fields[2]
}

// Uptime returns the time since boot from /proc/uptime, formatted by
// [FormatUptime].
func (s Source) Uptime() string {
	data, err := os.ReadFile(s.path("proc/uptime"))
	if err != nil {
		return NotAvailable
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return NotAvailable
	}

	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || secs < 0 {
		return NotAvailable
	}

	return FormatUptime(time.Duration(secs * float64(time.Second)))
}

// FormatUptime formats d as "N days, N hours, N minutes", omitting zero
// units. Durations under a minute format as "0 minutes".
func FormatUptime(d time.Duration) string {
	total := int64(d / time.Second)

	units := []struct {
		n    int64
		name string
	}{
		{total / 86400, "day"},
		{total % 86400 / 3600, "hour"},
		{total % 3600 / 60, "minute"},
	}

	parts := make([]string, 0, len(units))

	for _, u := range units {
		if u.n > 0 {
			parts = append(parts, plural(u.n, u.name))
		}
	}

	if len(parts) == 0 {
		return "0 minutes"
	}

	return strings.Join(parts, ", ")
}

func plural(n int64, unit string) string {
	s := strconv.FormatInt(n, 10) + " " + unit
	if n != 1 {
		s += "s"
	}

	return s
}

// Packages returns installed package counts per package manager, such as
// "1024 (pacman), 12 (flatpak)".
func (s Source) Packages() string {
	counts := []struct {
		n    int
		name string
	}{
		{s.countEntries("var/lib/pacman/local", ""), "pacman"},
		{s.countEntries("var/db/xbps", ""), "xbps"},
		{s.countEntries("var/lib/dpkg/info", ".list"), "apt"},
		{s.countEntries("var/lib/flatpak/app", "") + s.countUserFlatpaks(), "flatpak"},
	}

	parts := make([]string, 0, len(counts))

	for _, c := range counts {
		if c.n > 0 {
			parts = append(parts, strconv.Itoa(c.n)+" ("+c.name+")")
		}
	}

	if len(parts) == 0 {
		return NotAvailable
	}

	return strings.Join(parts, ", ")
}

// countEntries counts the entries of a system directory whose names end
// with suffix.
func (s Source) countEntries(dir, suffix string) int {
	return countDir(s.path(dir), suffix)
}

func (s Source) countUserFlatpaks() int {
	home := s.Home
	if home == "" {
		home, _ = s.env("HOME")
	}

	if home == "" {
		return 0
	}

	return countDir(filepath.Join(home, ".local", "share", "flatpak", "app"), "")
}

func countDir(dir, suffix string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	n := 0

	for _, e := range entries {
		if strings.HasSuffix(e.Name(), suffix) {
			n++
		}
	}

	return n
}

// Shell returns the base name of $SHELL.
func (s Source) Shell() string {
	if v, ok := s.env("SHELL"); ok && v != "" {
		return filepath.Base(v)
	}

	return NotAvailable
}

// Term returns $TERM.
func (s Source) Term() string {
	if v, ok := s.env("TERM"); ok && v != "" {
		return v
	}

	return NotAvailable
}

func (s Source) env(key string) (string, bool) {
	if s.LookupEnv != nil {
		return s.LookupEnv(key)
	}

	return os.LookupEnv(key)
}

func (s Source) path(rel string) string {
	root := s.Root
	if root == "" {
		root = "/"
	}

	return filepath.Join(root, rel)
}
