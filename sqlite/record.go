package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/textract"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ textract.RecordService = (*RecordService)(nil)

// RecordService implements textract.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

const recordColumns = "id, source, backend, body, text, content_hash, extracted_at"

// CreateRecord stores a new record.
func (s *RecordService) CreateRecord(ctx context.Context, rec *textract.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.ExtractedAt = time.Now().UTC()
	rec.ContentHash = rec.Document().ContentHash()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Source, rec.Backend, rec.Body, rec.Text, rec.ContentHash,
		rec.ExtractedAt.Format(timeFormat))

	return err
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*textract.Record, error) {
	rec, err := scanRecord(s.db.QueryRowContext(ctx,
		"SELECT "+recordColumns+" FROM records WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, textract.Errorf(textract.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindRecords retrieves records matching the filter, newest first.
func (s *RecordService) FindRecords(ctx context.Context, filter textract.RecordFilter) ([]*textract.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM records WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY extracted_at DESC, rowid DESC")

	paginate(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*textract.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

// DeleteRecord permanently removes a record.
func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return textract.Errorf(textract.ENOTFOUND, "record not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*textract.Record, error) {
	var rec textract.Record
	var extractedAt string

	if err := row.Scan(&rec.ID, &rec.Source, &rec.Backend, &rec.Body, &rec.Text,
		&rec.ContentHash, &extractedAt); err != nil {
		return nil, err
	}

	t, err := parseTime(extractedAt, "extracted_at")
	if err != nil {
		return nil, err
	}
	rec.ExtractedAt = t

	return &rec, nil
}
