package avatars

import (
	"net/url"
	"regexp"
)

// avatarServiceBase is the placeholder image provider. The only contract
// callers rely on is a deterministic URL per (identifier, element); the
// provider itself is slated to be replaced by a generative renderer keyed by
// the same seed.
const avatarServiceBase = "https://api.dicebear.com/7.x/shapes/svg"

var seedSanitizer = regexp.MustCompile(`[^a-zA-Z0-9-]`)

// AvatarURL builds the avatar image URL for an identifier. The seed is
// element + "-" + id with every character outside [a-z0-9-] (either case)
// replaced by "-", so the same identifier always produces a byte-identical,
// indefinitely CDN-cacheable URL.
func AvatarURL(idOrSeed string, element Element) string {
	seed := seedSanitizer.ReplaceAllString(string(element)+"-"+idOrSeed, "-")
	return avatarServiceBase + "?seed=" + url.QueryEscape(seed)
}
