package mock

import (
	"context"

	"github.com/fwojciec/textract"
)

var _ textract.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of textract.RecordService.
type RecordService struct {
	CreateRecordFn   func(ctx context.Context, rec *textract.Record) error
	FindRecordByIDFn func(ctx context.Context, id string) (*textract.Record, error)
	FindRecordsFn    func(ctx context.Context, filter textract.RecordFilter) ([]*textract.Record, error)
	DeleteRecordFn   func(ctx context.Context, id string) error
}

func (s *RecordService) CreateRecord(ctx context.Context, rec *textract.Record) error {
	return s.CreateRecordFn(ctx, rec)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*textract.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter textract.RecordFilter) ([]*textract.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}
