package record

import "github.com/thihaaungym/vaultboard/internal/domain/record"

type listInput struct {
	Q      string `query:"q" required:"false" doc:"Case-insensitive substring filter"`
	Status string `query:"status" required:"false" enum:"all,active,expired,soon" default:"all"`
	Sort   string `query:"sort" required:"false" enum:"due,updated,created,name" default:"due"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	OK      bool               `json:"ok"`
	Today   string             `json:"today"`
	Stats   record.Stats       `json:"stats"`
	Records []record.Annotated `json:"records"`
}

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Password  string `json:"password,omitempty"`
	StartDate string `json:"startDate" doc:"Validity begins, YYYY-MM-DD"`
	EndDate   string `json:"endDate,omitempty" doc:"Validity ends, YYYY-MM-DD; ignored when unlimited"`
	Unlimited bool   `json:"unlimited,omitempty"`
	Note      string `json:"note,omitempty"`
}

type updateInput struct {
	ID   string `path:"id" doc:"Record id"`
	Body updateRequest
}

// updateRequest is a partial update: absent fields keep their stored
// values, so every field is a pointer.
type updateRequest struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
	Unlimited *bool   `json:"unlimited,omitempty"`
	Note      *string `json:"note,omitempty"`
}

type deleteInput struct {
	ID string `path:"id" doc:"Record id"`
}

type recordOutput struct {
	Body recordResponse
}

type recordResponse struct {
	OK     bool           `json:"ok"`
	Record *record.Record `json:"record"`
}

type ackOutput struct {
	Body ackResponse
}

type ackResponse struct {
	OK bool `json:"ok"`
}
