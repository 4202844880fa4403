package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// laxInt decodes a JSON integer that may also arrive as a numeric string
// ("30") or an integral float (30.0). Fractional values are rejected.
type laxInt int64

func (n *laxInt) UnmarshalJSON(b []byte) error {
	raw := bytes.TrimSpace(b)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		raw = []byte(strings.TrimSpace(s))
	}

	if v, err := strconv.ParseInt(string(raw), 10, 64); err == nil {
		*n = laxInt(v)
		return nil
	}

	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) ||
		f < math.MinInt64 || f >= math.MaxInt64 {
		return fmt.Errorf("value %s is not a valid integer", b)
	}
	*n = laxInt(f)
	return nil
}
