package manifest

import (
	"strings"
)

type Kind int

const (
	KindFile Kind = iota
	KindResource
	KindURL
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindResource:
		return "resource"
	case KindURL:
		return "url"
	default:
		return "unknown"
	}
}

const (
	fileScheme = "file://"

	classpathPrefix = "classpath:"
	resourcePrefix  = "resource:"
)

// Ref is a parsed manifest reference. Location is what the source of Kind
// understands: a filesystem path, a path inside the bundled resources or a URL.
type Ref struct {
	Raw      string
	Kind     Kind
	Location string
}

// ParseRef picks the source from the syntax of raw:
//
//	http://host/app.json, https://...   -> KindURL
//	file:///tmp/app.json                -> KindFile
//	classpath:apps/app.json, resource:  -> KindResource
//	anything else                       -> KindFile
func ParseRef(raw string) Ref {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)

	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return Ref{Raw: raw, Kind: KindURL, Location: trimmed}
	case strings.HasPrefix(lower, fileScheme):
		return Ref{Raw: raw, Kind: KindFile, Location: trimmed[len(fileScheme):]}
	case strings.HasPrefix(lower, classpathPrefix):
		return Ref{Raw: raw, Kind: KindResource, Location: resourcePath(trimmed[len(classpathPrefix):])}
	case strings.HasPrefix(lower, resourcePrefix):
		return Ref{Raw: raw, Kind: KindResource, Location: resourcePath(trimmed[len(resourcePrefix):])}
	default:
		return Ref{Raw: raw, Kind: KindFile, Location: trimmed}
	}
}

func resourcePath(p string) string {
	return strings.TrimLeft(p, "/")
}

func (r Ref) String() string {
	return r.Kind.String() + ":" + r.Location
}
