package oas2ts

import (
	"strings"

	"github.com/krateoplatformops/oas2ts/internal/tools/tsexpr"
)

const refPrefix = "#/"

var pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")

// EncodeRef turns a local JSON pointer such as "#/definitions/Pet" into a
// lookup into the generated namespace: definitions["Pet"].
//
// Input without the "#/" marker is not rejected. It is split as it is, so
// the result is a lookup that will not type-check; a lone segment X becomes
// X[""].
func EncodeRef(ref string) tsexpr.Lookup {
	parts := strings.Split(strings.TrimPrefix(ref, refPrefix), "/")
	for i := range parts {
		parts[i] = pointerUnescaper.Replace(parts[i])
	}

	path := parts[1:]
	if len(path) == 0 {
		path = []string{""}
	}
	return tsexpr.Lookup{Root: parts[0], Path: path}
}

func isLocalRef(ref string) bool {
	return strings.HasPrefix(ref, refPrefix)
}
