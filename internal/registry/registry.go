// Stream name registry: resolves the short names operators put in the
// `stream` query parameter to upstream URLs. This is the one piece of
// "fixed registry of sample stream names" spec.md §1 scopes out of the
// core and into ambient configuration (config.RegistryConfig).
package registry

import "fmt"

// defaultSampleURL is the code-level fallback used when no config file or
// environment override supplies one, so the gateway is runnable out of
// the box.
const defaultSampleURL = "https://test-streams.mux.dev/x36xhzz/x36xhzz.m3u8"

// Registry maps short stream names to upstream playlist URLs.
type Registry struct {
	defaultName string
	streams     map[string]string
}

// New builds a Registry from configuration. If defaultName has no entry
// in streams, the built-in sample URL is used so the registry always
// resolves at least one name.
func New(defaultName string, streams map[string]string) *Registry {
	r := &Registry{
		defaultName: defaultName,
		streams:     make(map[string]string, len(streams)+1),
	}
	for name, url := range streams {
		r.streams[name] = url
	}
	if _, ok := r.streams[r.defaultName]; !ok {
		if r.defaultName == "" {
			r.defaultName = "default"
		}
		r.streams[r.defaultName] = defaultSampleURL
	}
	return r
}

// Resolve returns the upstream URL for name. An empty name resolves to
// the registry's default entry. name is itself returned unchanged when it
// already looks like an absolute URL, so operators can bypass the
// registry entirely with `?stream=https://...`.
func (r *Registry) Resolve(name string) (string, error) {
	if name == "" {
		name = r.defaultName
	}
	if looksAbsolute(name) {
		return name, nil
	}
	url, ok := r.streams[name]
	if !ok {
		return "", fmt.Errorf("unknown stream %q", name)
	}
	return url, nil
}

func looksAbsolute(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ':':
			return i > 0 && i+2 < len(s) && s[i+1] == '/' && s[i+2] == '/'
		case c == '/' || c == '?':
			return false
		}
	}
	return false
}
