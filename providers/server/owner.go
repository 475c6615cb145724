package server

// userSigil prefixes personal namespaces in owner path segments.
const userSigil = "~"

// renderOwner returns the owner segment used in request paths. The API takes
// a project key or a sigil-prefixed user name in the same position.
func renderOwner(owner string, userCentric bool) string {
	if userCentric {
		return userSigil + owner
	}
	return owner
}
