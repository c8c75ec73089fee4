package probe

import (
	"sort"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/riverprobe/internal/logger"
	"github.com/dbsmedya/riverprobe/internal/snmp"
)

// TableSpec maps logical table names to the base OID of the column to walk.
type TableSpec map[string]string

// TableResults maps logical table names to the values retrieved for that
// column, in discovery order. Discovery order follows bulk-response
// binding order and is not guaranteed to equal numeric row-index order.
type TableResults map[string][]interface{}

// StopPredicate is evaluated against the accumulated results after every
// page. It must be pure: early termination is a traffic optimization and
// must not change what a full walk would have collected so far.
type StopPredicate func(TableResults) bool

// tableCursor tracks pagination state for one column. Cursors are owned
// solely by the walk invocation: allocated at walk start, discarded at
// walk end, never aliased elsewhere.
type tableCursor struct {
	base      string
	index     int64
	exhausted bool
}

// TableWalker walks multiple columns in lock-step using bulk pagination.
// Fetching all non-exhausted columns in a single batched request per page
// amortizes round trips against the agent.
type TableWalker struct {
	sess     snmp.Session
	pageSize int
	log      *logger.Logger
}

// NewTableWalker creates a walker issuing up to pageSize repetitions per
// column per request.
func NewTableWalker(sess snmp.Session, pageSize int, log *logger.Logger) *TableWalker {
	return &TableWalker{
		sess:     sess,
		pageSize: pageSize,
		log:      log,
	}
}

// Walk retrieves every row of every column in tables, stopping early once
// stop (if non-nil) is satisfied by the accumulated results.
//
// Each page requests base.index for every non-exhausted cursor. A cursor
// is exhausted once a page returns no row extending its base at all; a
// short page still extends the column, since agents may truncate bulk
// responses below the requested repetition count. The agent walking past
// the end of a column into unrelated OID space is expected and those
// bindings are ignored. A cursor's index only ever increases, so no row
// is fetched twice.
func (w *TableWalker) Walk(tables TableSpec, stop StopPredicate) (TableResults, error) {
	if w.pageSize <= 0 {
		return nil, &InvalidArgumentError{
			Name:    "page size",
			Value:   w.pageSize,
			Message: "must be positive",
		}
	}

	// Cursor iteration order is fixed up front so every bulk request lays
	// out its OIDs the same way; sorted names keep walks reproducible
	// across runs.
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)

	cursors := orderedmap.NewOrderedMap[string, *tableCursor]()
	for _, name := range names {
		cursors.Set(name, &tableCursor{base: snmp.Normalize(tables[name])})
	}

	results := make(TableResults, len(tables))

	for page := 1; ; page++ {
		oids := make([]string, 0, cursors.Len())
		requested := make(map[string]*tableCursor, cursors.Len())
		for el := cursors.Front(); el != nil; el = el.Next() {
			cur := el.Value
			if cur.exhausted {
				continue
			}
			oids = append(oids, snmp.AppendIndex(cur.base, cur.index))
			requested[el.Key] = cur
		}
		if len(oids) == 0 {
			break
		}

		bindings, err := w.sess.GetBulk(oids, w.pageSize)
		if err != nil {
			return nil, err
		}

		matched := make(map[string]int, len(requested))
		for _, binding := range bindings {
			for name, cur := range requested {
				index, ok := snmp.CutIndex(cur.base, binding.OID)
				if !ok {
					continue
				}
				// Guard against out-of-order bulk responses: the cursor
				// only ever moves forward.
				if index > cur.index {
					cur.index = index
				}
				results[name] = append(results[name], binding.Value)
				matched[name]++
				break
			}
		}

		rows := 0
		for name, cur := range requested {
			rows += matched[name]
			// Only a page with no successor for the column at all ends
			// it. Agents may legally return fewer repetitions than
			// requested, so a short page is not an end-of-table signal.
			// Exhaustion is permanent.
			if matched[name] == 0 {
				cur.exhausted = true
			}
		}

		w.log.Debugw("walk page complete",
			"page", page,
			"requested", len(oids),
			"bindings", len(bindings),
			"rows", rows,
		)

		if stop != nil && stop(results) {
			break
		}
	}

	return results, nil
}
