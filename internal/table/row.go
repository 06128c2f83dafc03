package table

import "time"

// Row is one displayable record. ID is the stable identity used to key rows
// across renders; Fields maps column keys to raw values.
type Row struct {
	ID     string
	Fields map[string]any
}

// NewRow copies fields so later writes by the caller do not leak into the
// snapshot.
func NewRow(id string, fields map[string]any) Row {
	cp := make(map[string]any, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	return Row{ID: id, Fields: cp}
}

// Value returns the field stored under key.
func (r Row) Value(key string) (any, bool) {
	if r.Fields == nil {
		return nil, false
	}
	v, ok := r.Fields[key]
	return v, ok
}

// Text returns the display form of the field stored under key, or "" when the
// row does not carry it.
func (r Row) Text(key string) string {
	v, ok := r.Value(key)
	if !ok {
		return ""
	}
	return formatValue(v)
}

// InLocation returns rows with every time field converted to loc. Rows
// without times are returned as-is; the others are copied.
func InLocation(rows []Row, loc *time.Location) []Row {
	if loc == nil {
		return rows
	}
	out := make([]Row, len(rows))
	for i, r := range rows {
		out[i] = r
		copied := false
		for k, v := range r.Fields {
			t, ok := v.(time.Time)
			if !ok || t.IsZero() {
				continue
			}
			if !copied {
				out[i] = NewRow(r.ID, r.Fields)
				copied = true
			}
			out[i].Fields[k] = t.In(loc)
		}
	}
	return out
}
