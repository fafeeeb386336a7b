package export

import "strings"

// DeriveFilename returns name+extension with every "/" replaced by "_".
// The result never contains "/".
func DeriveFilename(name, extension string) string {
	return strings.ReplaceAll(name+extension, "/", "_")
}
