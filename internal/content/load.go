package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrSiteNotFound is returned when a named site is not in the library.
var ErrSiteNotFound = errors.New("content: site not found")

//go:embed sites/*
var embedded embed.FS

// Library is an immutable set of sites keyed by name.
type Library struct {
	sites       map[string]*Site
	names       []string
	defaultName string
}

// Embedded loads the sites compiled into the binary.
func Embedded(defaultName string) (*Library, error) {
	sub, err := fs.Sub(embedded, "sites")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub, defaultName)
}

// LoadDir loads every .yaml, .yml and .toml file in dir.
func LoadDir(dir, defaultName string) (*Library, error) {
	return LoadFS(os.DirFS(dir), defaultName)
}

// LoadFS loads every site file at the root of fsys. When defaultName is
// empty the first site in name order becomes the default.
func LoadFS(fsys fs.FS, defaultName string) (*Library, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("content: read dir: %w", err)
	}
	lib := &Library{sites: map[string]*Site{}}
	for _, e := range entries {
		if e.IsDir() || !isSiteFile(e.Name()) {
			continue
		}
		raw, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, fmt.Errorf("content: read %s: %w", e.Name(), err)
		}
		site, err := Decode(e.Name(), raw)
		if err != nil {
			return nil, err
		}
		if _, dup := lib.sites[site.Name]; dup {
			return nil, fmt.Errorf("content: duplicate site %q in %s", site.Name, e.Name())
		}
		lib.sites[site.Name] = site
		lib.names = append(lib.names, site.Name)
	}
	if len(lib.names) == 0 {
		return nil, errors.New("content: no site files found")
	}
	sort.Strings(lib.names)
	defaultName = strings.ToLower(strings.TrimSpace(defaultName))
	if defaultName == "" {
		defaultName = lib.names[0]
	}
	if _, ok := lib.sites[defaultName]; !ok {
		return nil, fmt.Errorf("%w: default %q", ErrSiteNotFound, defaultName)
	}
	lib.defaultName = defaultName
	return lib, nil
}

// Decode parses one site file, choosing the format by extension, then
// normalizes and validates it. The site name defaults to the file stem.
func Decode(name string, raw []byte) (*Site, error) {
	var site Site
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&site); err != nil {
			return nil, fmt.Errorf("content: parse %s: %w", name, err)
		}
	case ".toml":
		md, err := toml.Decode(string(raw), &site)
		if err != nil {
			return nil, fmt.Errorf("content: parse %s: %w", name, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("content: parse %s: unknown keys %v", name, undecoded)
		}
	default:
		return nil, fmt.Errorf("content: unsupported file %s", name)
	}
	if strings.TrimSpace(site.Name) == "" {
		site.Name = strings.TrimSuffix(path.Base(name), path.Ext(name))
	}
	site.normalize()
	if err := site.Validate(); err != nil {
		return nil, fmt.Errorf("content: invalid %s: %w", name, err)
	}
	return &site, nil
}

// Site returns the named site; an empty name selects the default.
func (l *Library) Site(name string) (*Site, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = l.defaultName
	}
	s, ok := l.sites[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSiteNotFound, name)
	}
	return s, nil
}

// Default returns the default site.
func (l *Library) Default() *Site { return l.sites[l.defaultName] }

// DefaultName returns the default site's name.
func (l *Library) DefaultName() string { return l.defaultName }

// Names lists site names in sorted order.
func (l *Library) Names() []string { return append([]string(nil), l.names...) }

func isSiteFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml", ".toml":
		return !strings.HasPrefix(name, ".")
	}
	return false
}
