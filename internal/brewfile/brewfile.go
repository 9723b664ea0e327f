// Package brewfile reads and writes Brewfiles in the homebrew-file
// format: one entry per line (tap/brew/cask/appstore/main/file plus
// before/after hook commands), `#` comments, and
// `# BREWFILE_IGNORE` ... `# BREWFILE_ENDIGNORE` blocks that are
// skipped entirely. Bundle-style lines (`brew 'pkg', args: ['x']`,
// `mas 'Name', id: 123`) and command-style lines (`brew install pkg`)
// are accepted on read; output is always the plain file form.
package brewfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Formula is one `brew` entry with optional trailing install options.
type Formula struct {
	Name    string `json:"name"`
	Options string `json:"options,omitempty"`
}

// File is a parsed Brewfile.
type File struct {
	Taps     []string  `json:"taps,omitempty"`
	Brews    []Formula `json:"brews,omitempty"`
	Casks    []string  `json:"casks,omitempty"`
	AppStore []string  `json:"appstore,omitempty"`
	Main     []string  `json:"main,omitempty"`
	Files    []string  `json:"files,omitempty"`
	Before   []string  `json:"before,omitempty"`
	After    []string  `json:"after,omitempty"`
	Commands []string  `json:"commands,omitempty"`
}

var (
	ignoreStartRe = regexp.MustCompile(`^# *BREWFILE_IGNORE`)
	ignoreEndRe   = regexp.MustCompile(`^# *BREWFILE_ENDIGNORE`)
	masIDRe       = regexp.MustCompile(`^mas +['"]?(.+?)['"]?, *id: *(\d+)`)
)

// Parse reads a Brewfile from r.
func Parse(r io.Reader) (*File, error) {
	f := &File{}
	sc := bufio.NewScanner(r)
	ignoring := false
	for sc.Scan() {
		raw := strings.TrimRight(sc.Text(), " \t\r")
		trimmed := strings.TrimSpace(raw)
		if ignoreEndRe.MatchString(trimmed) {
			ignoring = false
			continue
		}
		if ignoreStartRe.MatchString(trimmed) {
			ignoring = true
			continue
		}
		if ignoring || trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		// bundle-style mas lines carry the id after the name
		if m := masIDRe.FindStringSubmatch(trimmed); m != nil {
			f.AppStore = append(f.AppStore, m[2]+" "+m[1])
			continue
		}

		args := fields(trimmed)
		if len(args) == 0 {
			continue
		}
		cmd := args[0]
		// command-style lines: `brew install pkg`, `brew tap name`
		if len(args) > 2 && cmd == "brew" && (args[1] == "install" || args[1] == "tap" || args[1] == "cask") {
			cmd = args[1]
			args = args[1:]
		}
		name := ""
		if len(args) > 1 {
			name = args[1]
		}
		rest := args[2:]
		// bundle-style options: args: ['with-x'] -> --with-x
		if len(rest) > 0 && rest[0] == "args:" {
			opts := make([]string, 0, len(rest)-1)
			for _, o := range rest[1:] {
				opts = append(opts, "--"+o)
			}
			rest = opts
		}

		switch cmd {
		case "brew", "install":
			f.Brews = append(f.Brews, Formula{Name: name, Options: strings.Join(rest, " ")})
		case "tap", "tapall":
			f.Taps = append(f.Taps, name)
		case "cask":
			f.Casks = append(f.Casks, name)
		case "appstore", "mas":
			f.AppStore = append(f.AppStore, strings.Join(args[1:], " "))
		case "main":
			f.Main = append(f.Main, name)
			f.Files = append(f.Files, name)
		case "file", "brewfile":
			f.Files = append(f.Files, name)
		case "before":
			f.Before = append(f.Before, strings.Join(args[1:], " "))
		case "after":
			f.After = append(f.After, strings.Join(args[1:], " "))
		default:
			f.Commands = append(f.Commands, trimmed)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	f.Sort()
	return f, nil
}

// fields splits a Brewfile line, tolerating bundle-style quoting
// and punctuation.
func fields(line string) []string {
	repl := strings.NewReplacer("'", "", `"`, "", ",", " ", "[", " ", "]", "")
	return strings.Fields(repl.Replace(line))
}

// Load parses the Brewfile at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Parse(fh)
}

// Sort orders all sections and drops duplicates, giving a stable layout.
func (f *File) Sort() {
	f.Taps = normalize(f.Taps)
	f.Casks = normalize(f.Casks)
	f.AppStore = normalize(f.AppStore)
	f.Main = normalize(f.Main)
	f.Files = normalize(f.Files)
	seen := map[string]bool{}
	brews := f.Brews[:0]
	for _, b := range f.Brews {
		if b.Name == "" || seen[b.Name] {
			continue
		}
		seen[b.Name] = true
		brews = append(brews, b)
	}
	sort.Slice(brews, func(i, j int) bool { return brews[i].Name < brews[j].Name })
	f.Brews = brews
}

// normalize trims, deduplicates and sorts a slice of strings.
func normalize(in []string) []string {
	m := map[string]struct{}{}
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		m[s] = struct{}{}
	}
	if len(m) == 0 {
		return nil
	}
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Format renders the Brewfile in the plain file form, sectioned and sorted.
func (f *File) Format() string {
	f.Sort()
	var b strings.Builder
	section := func(header string, lines []string) {
		if len(lines) == 0 {
			return
		}
		fmt.Fprintf(&b, "# %s\n", header)
		for _, ln := range lines {
			b.WriteString(ln)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	prefix := func(cmd string, items []string) []string {
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, cmd+" "+it)
		}
		return out
	}

	section("Before commands", prefix("before", f.Before))
	section("tap repositories", prefix("tap", f.Taps))

	if len(f.Brews) > 0 {
		brews := make([]string, 0, len(f.Brews))
		for _, fm := range f.Brews {
			ln := "brew " + fm.Name
			if fm.Options != "" {
				ln += " " + fm.Options
			}
			brews = append(brews, ln)
		}
		section("Homebrew packages", brews)
	}

	section("Cask applications", prefix("cask", f.Casks))
	section("App Store applications", prefix("appstore", f.AppStore))

	// Main entries live in Files too; emit them once, as `main`.
	mains := map[string]bool{}
	for _, m := range f.Main {
		mains[m] = true
	}
	var extra []string
	for _, p := range f.Files {
		if !mains[p] {
			extra = append(extra, p)
		}
	}
	section("Main file", prefix("main", f.Main))
	section("Additional files", prefix("file", extra))
	section("Other commands", f.Commands)
	section("After commands", prefix("after", f.After))

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// Save writes the Brewfile to path, creating parent directories.
func Save(path string, f *File) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty Brewfile path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(f.Format()), 0o644)
}

// Entry is a flattened view used for listing and search.
type Entry struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

// Entries flattens taps, brews, casks and appstore items.
func (f *File) Entries() []Entry {
	var out []Entry
	for _, t := range f.Taps {
		out = append(out, Entry{Kind: "tap", Name: t})
	}
	for _, b := range f.Brews {
		out = append(out, Entry{Kind: "brew", Name: b.Name})
	}
	for _, c := range f.Casks {
		out = append(out, Entry{Kind: "cask", Name: c})
	}
	for _, a := range f.AppStore {
		out = append(out, Entry{Kind: "appstore", Name: a})
	}
	return out
}
