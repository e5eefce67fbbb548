// Package babele reduces extracted compendium records into Babele
// translation documents using a declarative field mapping.
package babele

import "strings"

// Resolve descends into a record along a dotted path
// (e.g. "system.details.description.value"), one key per segment.
// The second return is false when any intermediate segment is missing or is
// not an object. Absence is a normal outcome, not an error.
func Resolve(record map[string]any, path string) (any, bool) {
	var cur any = record
	for _, key := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
