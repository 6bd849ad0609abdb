// AngelaMos | 2026
// entity.go

package contact

import (
	"time"
)

const (
	StatusRequested = "requested"
	StatusApproved  = "approved"
)

// Request asks for the contact details of the member behind BiodataID.
// The details are copied at request time and only revealed once an
// admin approves.
type Request struct {
	ID             string    `db:"id"`
	BiodataID      int       `db:"biodata_id"`
	RequesterEmail string    `db:"requester_email"`
	RequesterName  string    `db:"requester_name"`
	Name           string    `db:"name"`
	MobileNumber   string    `db:"mobile_number"`
	ContactEmail   string    `db:"contact_email"`
	TransactionID  string    `db:"transaction_id"`
	Status         string    `db:"status"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (r *Request) Approved() bool {
	return r.Status == StatusApproved
}

type RequestResponse struct {
	ID             string    `json:"id"`
	BiodataID      int       `json:"biodata_id"`
	RequesterEmail string    `json:"requester_email"`
	RequesterName  string    `json:"requester_name"`
	Name           string    `json:"name"`
	MobileNumber   string    `json:"mobile_number,omitempty"`
	ContactEmail   string    `json:"contact_email,omitempty"`
	TransactionID  string    `json:"transaction_id"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToResponse hides contact details until the request is approved.
// reveal shows them regardless, for admins.
func ToResponse(r *Request, reveal bool) RequestResponse {
	resp := RequestResponse{
		ID:             r.ID,
		BiodataID:      r.BiodataID,
		RequesterEmail: r.RequesterEmail,
		RequesterName:  r.RequesterName,
		Name:           r.Name,
		TransactionID:  r.TransactionID,
		Status:         r.Status,
		CreatedAt:      r.CreatedAt,
	}
	if reveal || r.Approved() {
		resp.MobileNumber = r.MobileNumber
		resp.ContactEmail = r.ContactEmail
	}
	return resp
}

func ToResponseList(requests []Request, reveal bool) []RequestResponse {
	out := make([]RequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, ToResponse(&r, reveal))
	}
	return out
}
