package jqapi

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/aretw0/jsquery/internal/dto"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Catalog is an ordered, read-only collection of API entries.
type Catalog struct {
	// API is the jQuery version the catalog documents.
	API *semver.Version

	entries  []*Entry
	byName   map[string]*Entry
	byIdent  map[string]*Entry
	byStatic map[string]*Entry
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog. It is parsed once and shared.
// It panics if the embedded document is invalid, which the package tests rule out.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load(bytes.NewReader(embeddedCatalog))
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("jqapi: embedded catalog: %v", defaultErr))
	}
	return defaultCatalog
}

// LoadFile reads a catalog from a YAML or JSON file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads and validates a catalog document. JSON is accepted as it is a subset of YAML.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	var doc dto.CatalogDocument
	if err := mapstructure.Decode(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	return FromDocument(doc)
}

// FromDocument builds and validates a catalog from its decoded form.
func FromDocument(doc dto.CatalogDocument) (*Catalog, error) {
	var problems []error
	fail := func(entry, format string, args ...any) {
		problems = append(problems, &EntryError{Entry: entry, Reason: fmt.Sprintf(format, args...)})
	}
	version := func(entry, field, s string) *semver.Version {
		if s == "" {
			return nil
		}
		v, err := semver.NewVersion(s)
		if err != nil {
			fail(entry, "invalid %s version %q: %v", field, s, err)
			return nil
		}
		return v
	}

	api := version("", "api", doc.API)
	var entries []*Entry
	for _, ed := range doc.Entries {
		e := &Entry{
			Type:        EntryType(ed.Type),
			Name:        ed.Name,
			Return:      ed.Return,
			Description: ed.Description,
			Deprecated:  version(ed.Name, "deprecated", ed.Deprecated),
			Removed:     version(ed.Name, "removed", ed.Removed),
			Since:       version(ed.Name, "added", ed.Added),
		}
		for _, sd := range ed.Signatures {
			sig := Signature{Added: version(ed.Name, "added", sd.Added)}
			for _, ad := range sd.Args {
				sig.Args = append(sig.Args, newArgument(sig, ad))
			}
			if !containsSignature(e.Signatures, sig) {
				e.Signatures = append(e.Signatures, sig)
			}
		}
		entries = append(entries, e)
	}

	if len(problems) > 0 {
		return nil, &CatalogError{Errors: problems}
	}
	return New(api, entries...)
}

// New builds a catalog from entries in the given order and validates it.
// The entries are owned by the catalog afterwards and must not be modified.
func New(api *semver.Version, entries ...*Entry) (*Catalog, error) {
	cat := &Catalog{API: api, entries: entries}
	for _, e := range entries {
		e.identifier = Identifier(e.Name)
		for i := range e.Signatures {
			args := e.Signatures[i].Args
			for j := range args {
				args[j].kinds, _ = KindsFor(args[j].TypeString())
				switch args[j].Name {
				case "attributeName", "propertyName":
					args[j].kinds = args[j].kinds.With(KindQName)
				case "className", "classNames":
					args[j].kinds = args[j].kinds.With(KindCSSClass)
				}
			}
		}
		e.expanded = expandAll(e.Signatures)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	cat.index()
	return cat, nil
}

// newArgument maps a documented argument. Names are made unique within the
// signature and a call-style suffix such as "function(index, html)" is cut.
func newArgument(sig Signature, ad dto.CatalogArgument) Argument {
	name := ad.Name
	if i := strings.IndexByte(name, '('); i > 0 {
		name = name[:i]
	}
	unique := name
	for n := 1; hasArgument(sig, unique); n++ {
		unique = fmt.Sprintf("%s%d", name, n)
	}

	types := strings.Split(ad.Type, "/")
	for i := range types {
		types[i] = strings.TrimSpace(types[i])
	}
	if strings.TrimSpace(ad.Type) == "" {
		types = []string{"Anything"}
	}

	return Argument{Name: unique, Types: types, Optional: ad.Optional, Repeat: ad.Repeat, Description: ad.Description}
}

func hasArgument(sig Signature, name string) bool {
	for _, a := range sig.Args {
		if a.Name == name {
			return true
		}
	}
	return false
}

func (c *Catalog) index() {
	c.byName = make(map[string]*Entry, len(c.entries))
	c.byIdent = make(map[string]*Entry, len(c.entries))
	c.byStatic = make(map[string]*Entry)
	for _, e := range c.entries {
		if e.Type == TypeSelector {
			continue
		}
		c.byName[e.Name] = e
		if e.IsStatic() {
			c.byStatic[e.identifier] = e
		} else {
			c.byIdent[e.identifier] = e
		}
	}
}

// Entries returns all entries in catalog order.
func (c *Catalog) Entries() []*Entry {
	out := make([]*Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Lookup finds a method or property by its documented name,
// e.g. "addClass", "deferred.then" or "jQuery.ajax".
func (c *Catalog) Lookup(name string) (*Entry, bool) {
	e, ok := c.byName[name]
	return e, ok
}

// Method finds an instance or static method by documented name.
// The error wraps ErrUnknownMethod.
func (c *Catalog) Method(name string) (*Entry, error) {
	e, ok := c.byName[name]
	if !ok || e.Type != TypeMethod {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, name)
	}
	return e, nil
}

// ByIdentifier finds an instance method or property by its Go name, e.g. "CallbacksFireWith".
func (c *Catalog) ByIdentifier(id string) (*Entry, bool) {
	e, ok := c.byIdent[id]
	return e, ok
}

// StaticByIdentifier finds a static entry by its Go name, e.g. "FnExtend" for jQuery.fn.extend.
func (c *Catalog) StaticByIdentifier(id string) (*Entry, bool) {
	e, ok := c.byStatic[id]
	return e, ok
}

// Methods returns the instance methods, the ones called on a jQuery object.
func (c *Catalog) Methods() []*Entry {
	return c.filter(func(e *Entry) bool { return e.Type == TypeMethod && !e.IsStatic() })
}

// Properties returns the instance properties such as length.
func (c *Catalog) Properties() []*Entry {
	return c.filter(func(e *Entry) bool { return e.Type == TypeProperty && !e.IsStatic() })
}

// Statics returns the functions and properties of the jQuery object itself,
// the entries named "jQuery.x". The jQuery function entry is not included.
func (c *Catalog) Statics() []*Entry {
	return c.filter(func(e *Entry) bool { return e.IsStatic() && !e.IsFactory() })
}

// Selectors returns the documented selector entries.
func (c *Catalog) Selectors() []*Entry {
	return c.filter(func(e *Entry) bool { return e.Type == TypeSelector })
}

// Deprecated returns every deprecated entry.
func (c *Catalog) Deprecated() []*Entry {
	return c.filter(func(e *Entry) bool { return e.IsDeprecated() })
}

// Factory returns the entry documenting $(...), if present.
func (c *Catalog) Factory() (*Entry, bool) {
	e, ok := c.byName[FactoryName]
	return e, ok
}

func (c *Catalog) filter(keep func(*Entry) bool) []*Entry {
	var out []*Entry
	for _, e := range c.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// ByCategory groups the entries by documentation category. Keys are sorted
// by the returned order slice.
func (c *Catalog) ByCategory() (order []Category, groups map[Category][]*Entry) {
	groups = make(map[Category][]*Entry)
	for _, e := range c.entries {
		if e.Type == TypeSelector {
			continue
		}
		cat := e.Category()
		if _, seen := groups[cat]; !seen {
			order = append(order, cat)
		}
		groups[cat] = append(groups[cat], e)
	}
	sort.SliceStable(order, func(i, j int) bool { return categoryRank(order[i]) < categoryRank(order[j]) })
	return order, groups
}

func categoryRank(c Category) int {
	switch c {
	case CategoryCore:
		return 0
	case CategoryProperty:
		return 1
	case CategoryCallbacks:
		return 2
	case CategoryDeferred:
		return 3
	case CategoryEvent:
		return 4
	case CategoryStatic:
		return 5
	}
	return 6
}

// ForVersion returns the subset of the catalog usable with jQuery v.
// Entries removed at or before v are dropped, as are signatures added after v.
// Entries left without signatures are dropped.
func (c *Catalog) ForVersion(v *semver.Version) *Catalog {
	out := &Catalog{API: v}
	for _, e := range c.entries {
		if e.Removed != nil && !v.LessThan(e.Removed) {
			continue
		}
		if e.Type != TypeMethod {
			if added := e.Added(); added != nil && added.GreaterThan(v) {
				continue
			}
			out.entries = append(out.entries, e)
			continue
		}

		var sigs []Signature
		for _, s := range e.Signatures {
			if s.Added == nil || !s.Added.GreaterThan(v) {
				sigs = append(sigs, s)
			}
		}
		if len(sigs) == 0 {
			continue
		}
		if len(sigs) == len(e.Signatures) {
			out.entries = append(out.entries, e)
			continue
		}
		filtered := *e
		filtered.Signatures = sigs
		filtered.expanded = expandAll(sigs)
		out.entries = append(out.entries, &filtered)
	}
	out.index()
	return out
}
