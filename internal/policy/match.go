// ABOUTME: Package identity matching against a policy list.
// ABOUTME: Supports exact identities and namespaced identities with version suffixes.

package policy

import "strings"

// Matches reports whether a reported package identity matches any entry in
// the policy list. Two identities match when they are string-equal, or, for
// namespaced identities containing ':', when their first two colon-delimited
// segments (namespace and artifact) are equal. The latter lets a policy entry
// like "org.example:lib" cover "org.example:lib:1.2.3" without enumerating
// versions.
func Matches(name string, list List) bool {
	for _, entry := range list {
		if name == entry {
			return true
		}
		if namespacedEqual(name, entry) {
			return true
		}
	}
	return false
}

func namespacedEqual(name, entry string) bool {
	if !strings.Contains(name, ":") || !strings.Contains(entry, ":") {
		return false
	}

	nameParts := strings.Split(name, ":")
	entryParts := strings.Split(entry, ":")
	if len(nameParts) < 2 || len(entryParts) < 2 {
		return false
	}

	return nameParts[0] == entryParts[0] && nameParts[1] == entryParts[1]
}
