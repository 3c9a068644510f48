package upload

import (
	"net/url"
	"strings"
)

// url.QueryEscape leaves only ALPHA / DIGIT / "-_.~" unescaped and turns spaces
// into "+". Browsers' encodeURIComponent additionally keeps "!'()*" and uses
// "%20" for spaces; the replacer bridges the two.
var uriComponentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent percent-encodes s the way browsers encode a URI component.
func EncodeURIComponent(s string) string {
	return uriComponentReplacer.Replace(url.QueryEscape(s))
}

// PublicURL predicts the public address of an object. It is built from the
// configured base only and is never checked against the object store.
func PublicURL(base, key string) string {
	return base + "/" + EncodeURIComponent(key)
}
