package record

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/exp/slog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Lister is the query surface the list handler builds on.
type Lister interface {
	List(ctx context.Context, f Filter) (*ListResponse, error)
}

// Query walks the index, annotates every backed record against the
// request-time date and applies filter, sort and stats.
type Query struct {
	store *Store
	coll  *collate.Collator
	log   *slog.Logger
}

func NewQuery(store *Store, log *slog.Logger) *Query {
	return &Query{
		store: store,
		coll:  collate.New(language.Und),
		log:   log,
	}
}

func (q *Query) List(ctx context.Context, f Filter) (*ListResponse, error) {
	if f.Status == "" {
		f.Status = StatusAll
	}
	if f.Sort == "" {
		f.Sort = SortDue
	}
	needle := strings.ToLower(strings.TrimSpace(f.Q))

	today := Today(q.store.Now())

	ids, err := q.store.ListIDs(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]Annotated, 0, len(ids))
	for _, id := range ids {
		rec, err := q.store.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			// Index drift: the id has no backing record. Skip it.
			continue
		}

		ann := annotate(rec, today)

		if needle != "" && !matchesText(rec, needle) {
			continue
		}
		if !matchesStatus(ann, f.Status) {
			continue
		}

		matched = append(matched, ann)
	}

	q.sortRecords(matched, f.Sort)

	stats := Stats{Total: len(matched)}
	for _, ann := range matched {
		if ann.Expired {
			stats.Expired++
		} else {
			stats.Active++
		}
		if ann.Soon {
			stats.Soon++
		}
	}

	return &ListResponse{
		Today:   today,
		Stats:   stats,
		Records: matched,
	}, nil
}

// matchesText does a case-insensitive substring match against the
// space-joined non-empty fields, in wire-shape field order.
func matchesText(rec *Record, needle string) bool {
	endDate := ""
	if rec.EndDate != nil {
		endDate = *rec.EndDate
	}

	fields := []string{rec.Name, rec.Email, rec.Password, rec.StartDate, endDate, rec.Note}
	nonEmpty := fields[:0]
	for _, f := range fields {
		if f != "" {
			nonEmpty = append(nonEmpty, f)
		}
	}

	hay := strings.ToLower(strings.Join(nonEmpty, " "))
	return strings.Contains(hay, needle)
}

// matchesStatus keeps a record under the given status filter. Active and
// soon are overlapping categories: a non-expired record inside the soon
// window passes both.
func matchesStatus(ann Annotated, status Status) bool {
	switch status {
	case StatusActive:
		return !ann.Expired
	case StatusExpired:
		return ann.Expired
	case StatusSoon:
		return ann.Soon
	default:
		return true
	}
}

func (q *Query) sortRecords(records []Annotated, s Sort) {
	switch s {
	case SortName:
		sort.SliceStable(records, func(i, j int) bool {
			return q.coll.CompareString(records[i].Name, records[j].Name) < 0
		})
	case SortCreated:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].CreatedAt > records[j].CreatedAt
		})
	case SortUpdated:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].UpdatedAt > records[j].UpdatedAt
		})
	default:
		// due: expired first, then nearest end date (absent sorts first),
		// ties broken by most recent update.
		sort.SliceStable(records, func(i, j int) bool {
			a, b := records[i], records[j]
			if a.Expired != b.Expired {
				return a.Expired
			}
			ae, be := endOrEmpty(a), endOrEmpty(b)
			if ae != be {
				return ae < be
			}
			return a.UpdatedAt > b.UpdatedAt
		})
	}
}

func endOrEmpty(ann Annotated) string {
	if ann.EndDate == nil {
		return ""
	}
	return *ann.EndDate
}

var _ Lister = (*Query)(nil)
