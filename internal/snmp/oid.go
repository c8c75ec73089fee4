package snmp

import (
	"strconv"
	"strings"
)

// Normalize returns the OID in canonical leading-dot form.
// Example: "1.3.6.1" -> ".1.3.6.1"
func Normalize(oid string) string {
	if oid == "" || strings.HasPrefix(oid, ".") {
		return oid
	}
	return "." + oid
}

// AppendIndex builds the request OID for a table column at a row index.
func AppendIndex(base string, index int64) string {
	return base + "." + strconv.FormatInt(index, 10)
}

// CutIndex reports whether oid is a row of the given column base OID and,
// if so, returns the leading numeric component of the row index suffix.
// Table indices can be multi-part; the first component is what the
// walker's cursor tracks.
func CutIndex(base, oid string) (int64, bool) {
	base = Normalize(base)
	oid = Normalize(oid)

	rest, ok := strings.CutPrefix(oid, base+".")
	if !ok || rest == "" {
		return 0, false
	}

	head, _, _ := strings.Cut(rest, ".")
	index, err := strconv.ParseInt(head, 10, 64)
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}
