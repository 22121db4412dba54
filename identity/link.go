package identity

import "strings"

// RewriteVerificationLink points a provider-issued verification link at the
// client-side /verification route. Only the first occurrence of the origin is
// substituted; the rest of the link is preserved byte-for-byte.
func RewriteVerificationLink(link, origin string) string {
	return strings.Replace(link, origin, origin+"/verification", 1)
}
