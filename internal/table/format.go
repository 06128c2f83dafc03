package table

import (
	"fmt"
	"strconv"
	"time"
)

const timeLayout = "2006-01-02 15:04"

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.Format(timeLayout)
	case []string:
		return fmt.Sprint(t)
	default:
		return fmt.Sprint(v)
	}
}
