package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// ResultSet is a column-ordered result with JSON friendly values
type ResultSet struct {
	Columns   []string         `json:"columns"`
	Rows      []map[string]any `json:"rows"`
	Truncated bool             `json:"truncated"`
}

// Collect reads at most limit rows. Truncated is set when more rows were available.
// limit <= 0 reads everything
func Collect(ctx context.Context, q RowQuerier, limit int, sql string, args ...any) (ResultSet, error) {
	rs, err := q.Query(ctx, sql, args...)
	if err != nil {
		return ResultSet{}, err
	}
	defer rs.Close()

	out := ResultSet{Columns: rs.Columns(), Rows: []map[string]any{}}
	for rs.Next() {
		if limit > 0 && len(out.Rows) == limit {
			out.Truncated = true
			break
		}
		m, err := scanMap(rs, out.Columns)
		if err != nil {
			return ResultSet{}, err
		}
		out.Rows = append(out.Rows, m)
	}
	return out, rs.Err()
}

// scanMap builds map[column]value for the current row
func scanMap(rows Rows, cols []string) (map[string]any, error) {
	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}
	m := make(map[string]any, len(cols))
	for i, c := range cols {
		m[c] = deref(vals[i])
	}
	return m, nil
}

// deref flattens driver values that do not encode cleanly as JSON
func deref(v any) any {
	switch x := v.(type) {
	case *time.Time:
		if x == nil {
			return nil
		}
		return *x
	case pgtype.Numeric:
		f, err := x.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	case [16]byte:
		return uuid.UUID(x).String()
	case []byte:
		return string(x)
	default:
		return v
	}
}
