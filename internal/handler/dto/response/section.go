package response

import (
	"time"

	"enroll-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SectionResponse struct {
	ID            uuid.UUID `json:"id"`
	Label         string    `json:"label"`
	MaxCapacity   int32     `json:"maxCapacity"`
	EnrolledCount int32     `json:"enrolledCount"`
	SeatsLeft     int32     `json:"seatsLeft"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type SectionListResponse struct {
	Sections []*SectionResponse `json:"sections"`
}

func FromSectionView(view *queries.SectionView) *SectionResponse {
	var resp SectionResponse
	_ = copier.Copy(&resp, view)
	resp.SeatsLeft = view.MaxCapacity - view.EnrolledCount
	return &resp
}

func FromSectionViews(views []*queries.SectionView) *SectionListResponse {
	sections := make([]*SectionResponse, 0, len(views))
	for _, v := range views {
		sections = append(sections, FromSectionView(v))
	}
	return &SectionListResponse{Sections: sections}
}
