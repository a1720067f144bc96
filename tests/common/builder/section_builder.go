//go:build unit || e2e

package builder

import (
	"enroll-ledger/internal/domain/section"
	"enroll-ledger/internal/usecase/queries"
	"enroll-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type SectionBuilder struct {
	Label         string
	MaxCapacity   int32
	EnrolledCount int32
}

func NewSectionBuilder() *SectionBuilder {
	return &SectionBuilder{
		Label:         "CS101 Fall Morning",
		MaxCapacity:   2,
		EnrolledCount: 0,
	}
}

func (b *SectionBuilder) With(mutate func(*SectionBuilder)) *SectionBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *SectionBuilder) BuildDomain() (*section.Section, error) {
	return section.NewSection(b.Label, b.MaxCapacity)
}

func (b *SectionBuilder) BuildSnapshot() *shared.SectionSnapshot {
	return &shared.SectionSnapshot{
		ID:            uuid.New(),
		Label:         b.Label,
		MaxCapacity:   b.MaxCapacity,
		EnrolledCount: b.EnrolledCount,
		Status:        string(section.StatusFor(b.EnrolledCount, b.MaxCapacity)),
	}
}

func (b *SectionBuilder) BuildView() *queries.SectionView {
	return &queries.SectionView{
		ID:            uuid.New(),
		Label:         b.Label,
		MaxCapacity:   b.MaxCapacity,
		EnrolledCount: b.EnrolledCount,
		Status:        string(section.StatusFor(b.EnrolledCount, b.MaxCapacity)),
	}
}

// Fluent builder methods
func (b *SectionBuilder) WithLabel(label string) *SectionBuilder {
	b.Label = label
	return b
}

func (b *SectionBuilder) WithMaxCapacity(capacity int32) *SectionBuilder {
	b.MaxCapacity = capacity
	return b
}

func (b *SectionBuilder) WithEnrolledCount(count int32) *SectionBuilder {
	b.EnrolledCount = count
	return b
}

func (b *SectionBuilder) AsFull() *SectionBuilder {
	b.EnrolledCount = b.MaxCapacity
	return b
}
