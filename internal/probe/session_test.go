package probe

import (
	"strconv"

	"github.com/dbsmedya/riverprobe/internal/snmp"
)

// fakeSession serves synthetic scalar and table data and counts transport
// calls. Table rows live at indices 1..N under their base OID; like a real
// agent, bulk responses fill unused repetitions with data from past the
// end of the column.
type fakeSession struct {
	scalars map[string]interface{}   // normalized OID -> value
	tables  map[string][]interface{} // base OID -> rows

	// scripted, when non-nil, makes GetBulk replay these responses
	// verbatim instead of deriving them from tables.
	scripted [][]snmp.Binding

	getErr  error
	bulkErr error

	getCalls     int
	bulkCalls    int
	bulkRequests [][]string
	closed       bool
}

var _ snmp.Session = (*fakeSession)(nil)

func (f *fakeSession) Get(oids []string) (map[string]interface{}, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}

	values := make(map[string]interface{})
	for _, oid := range oids {
		oid = snmp.Normalize(oid)
		if v, ok := f.scalars[oid]; ok {
			values[oid] = v
		}
	}
	return values, nil
}

func (f *fakeSession) GetBulk(oids []string, maxRepetitions int) ([]snmp.Binding, error) {
	f.bulkCalls++
	f.bulkRequests = append(f.bulkRequests, append([]string(nil), oids...))
	if f.bulkErr != nil {
		return nil, f.bulkErr
	}

	if f.scripted != nil {
		if len(f.scripted) == 0 {
			return nil, nil
		}
		page := f.scripted[0]
		f.scripted = f.scripted[1:]
		return page, nil
	}

	var bindings []snmp.Binding
	for _, oid := range oids {
		base, start, found := f.locate(oid)
		for rep := 1; rep <= maxRepetitions; rep++ {
			index := start + int64(rep)
			if found && index <= int64(len(f.tables[base])) {
				bindings = append(bindings, snmp.Binding{
					OID:   snmp.AppendIndex(base, index),
					Value: f.tables[base][index-1],
				})
				continue
			}
			// Walk-past data from beyond the column.
			bindings = append(bindings, snmp.Binding{
				OID:   ".1.3.6.1.4.1.99999.1." + strconv.Itoa(rep),
				Value: "walk-past",
			})
		}
	}
	return bindings, nil
}

func (f *fakeSession) locate(oid string) (string, int64, bool) {
	for base := range f.tables {
		if index, ok := snmp.CutIndex(base, oid); ok {
			return base, index, true
		}
	}
	return "", 0, false
}

func (f *fakeSession) Close() error {
	f.closed = true
	return nil
}

func (f *fakeSession) transportCalls() int {
	return f.getCalls + f.bulkCalls
}
