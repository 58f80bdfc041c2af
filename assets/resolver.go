/*
Package assets resolves the base URLs of remotely hosted emoji images.

Emoji images come in two flavors: raster tiles (PNG, 72×72 pixels) and
vector graphics (SVG). By default they are served from the WordPress.org
CDN, in a directory tied to the emoji data version. Host environments may
register an override per asset kind; a Resolver consults the override on
every call, so registering or removing one takes effect immediately.
*/
package assets

import (
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'emojify'
func tracer() tracing.Trace {
	return tracing.Select("emojify")
}

// Kind is the kind of an emoji image asset.
type Kind int

const (
	Raster Kind = iota // PNG tiles
	Vector             // SVG graphics
)

func (k Kind) String() string {
	switch k {
	case Raster:
		return "raster"
	case Vector:
		return "vector"
	}
	return "unknown"
}

// Ext returns the file extension of images of kind k, without a dot.
func (k Kind) Ext() string {
	if k == Vector {
		return "svg"
	}
	return "png"
}

func (k Kind) dir() string {
	if k == Vector {
		return "svg"
	}
	return "72x72"
}

// ParseKind returns the asset kind for a name, "raster" (or "png") and
// "vector" (or "svg").
func ParseKind(name string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "raster", "png":
		return Raster, true
	case "vector", "svg":
		return Vector, true
	}
	return -1, false
}

// CDN is the root of the default emoji image locations.
const CDN = "https://s.w.org/images/core/emoji/"

// DefaultURL returns the default base URL for images of kind k and emoji data
// version v, e.g. "https://s.w.org/images/core/emoji/15.1/72x72/".
func DefaultURL(k Kind, v string) string {
	return CDN + v + "/" + k.dir() + "/"
}

// Override yields a base URL to use instead of the default.
type Override func() string

// Resolver holds the base URL overrides registered by a host environment.
// The zero value and a nil *Resolver are ready to use and resolve to the
// defaults.
type Resolver struct {
	mu        sync.RWMutex
	overrides map[Kind]Override
}

// NewResolver creates a resolver without any overrides.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Register installs fn as the override for kind k, replacing any previous one.
// A nil fn removes the override.
func (r *Resolver) Register(k Kind, fn Override) {
	if fn == nil {
		r.Remove(k)
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.overrides == nil {
		r.overrides = make(map[Kind]Override, 2)
	}
	r.overrides[k] = fn
	tracer().Debugf("registered %s URL override", k)
}

// Remove deletes the override for kind k, if any.
func (r *Resolver) Remove(k Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.overrides, k)
}

// Resolve returns the effective base URL for kind k. If no override is
// registered, def is returned unmodified. The override is called without any
// lock held; a panicking override propagates to the caller.
func (r *Resolver) Resolve(k Kind, def string) string {
	if r == nil {
		return def
	}
	r.mu.RLock()
	fn := r.overrides[k]
	r.mu.RUnlock()
	if fn == nil {
		return def
	}
	return fn()
}

// Const returns an override yielding url.
func Const(url string) Override {
	return func() string {
		return url
	}
}
