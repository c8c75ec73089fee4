package probe

import (
	"sort"

	"github.com/dbsmedya/riverprobe/internal/snmp"
)

// FieldSet maps logical field names to scalar OIDs.
type FieldSet map[string]string

// FieldValues maps logical field names to retrieved values. Created fresh
// per fetch.
type FieldValues map[string]interface{}

// FetchScalars retrieves every field in one batched request.
//
// On transport failure the error is returned as-is and no partial result
// is usable. On success every requested field is present; an agent
// response that omits one is a ProtocolError.
func FetchScalars(sess snmp.Session, fields FieldSet) (FieldValues, error) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	oids := make([]string, len(names))
	for i, name := range names {
		oids[i] = snmp.Normalize(fields[name])
	}

	values, err := sess.Get(oids)
	if err != nil {
		return nil, err
	}

	result := make(FieldValues, len(fields))
	for _, name := range names {
		oid := snmp.Normalize(fields[name])
		v, ok := values[oid]
		if !ok {
			return nil, &ProtocolError{Field: name, OID: oid}
		}
		result[name] = v
	}
	return result, nil
}
