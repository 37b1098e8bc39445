// Package record owns the credential records: their persistence and index,
// derived expiry status and the filter/sort/stats query engine.
package record

// DateLayout is the calendar-date format every startDate/endDate uses.
const DateLayout = "2006-01-02"

// TimeLayout is the fixed-width UTC timestamp format for createdAt and
// updatedAt. Fixed width keeps lexicographic order chronological, which
// the sort comparators depend on.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// Record is a tracked credential/validity entry.
type Record struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	StartDate string  `json:"startDate"`
	EndDate   *string `json:"endDate"` // nil iff Unlimited
	Unlimited bool    `json:"unlimited"`
	Note      string  `json:"note"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// Annotated is a record plus its derived status fields. Annotations are
// computed per query against the request-time date and never persisted.
type Annotated struct {
	Record
	AgeDays   int  `json:"ageDays"`
	DaysToEnd *int `json:"daysToEnd"` // nil for unlimited records
	Expired   bool `json:"expired"`
	Soon      bool `json:"soon"`
}

// CreateRequest carries the fields of a create call. Free-text fields are
// trimmed before storage.
type CreateRequest struct {
	Name      string
	Email     string
	Password  string
	StartDate string
	EndDate   string
	Unlimited bool
	Note      string
}

// UpdateRequest is a partial update: nil fields keep the stored value, so
// an explicit empty string is distinguishable from "not supplied".
type UpdateRequest struct {
	Name      *string
	Email     *string
	Password  *string
	StartDate *string
	EndDate   *string
	Unlimited *bool
	Note      *string
}

// Status filters records by their derived expiry state.
type Status string

const (
	StatusAll     Status = "all"
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
	StatusSoon    Status = "soon"
)

// Sort names a list ordering.
type Sort string

const (
	SortDue     Sort = "due"
	SortUpdated Sort = "updated"
	SortCreated Sort = "created"
	SortName    Sort = "name"
)

// Filter is a query request.
type Filter struct {
	Q      string
	Status Status
	Sort   Sort
}

// Stats aggregates the filtered set. Active counts every non-expired
// record, so it overlaps Soon; Active+Expired always equals Total.
type Stats struct {
	Total   int `json:"total"`
	Active  int `json:"active"`
	Soon    int `json:"soon"`
	Expired int `json:"expired"`
}

// ListResponse is the query engine's result.
type ListResponse struct {
	Today   string      `json:"today"`
	Stats   Stats       `json:"stats"`
	Records []Annotated `json:"records"`
}
