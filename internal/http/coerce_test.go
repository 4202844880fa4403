package http

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLaxIntUnmarshal(t *testing.T) {
	accepted := map[string]int64{
		`30`:     30,
		`-4`:     -4,
		`"30"`:   30,
		`" 7 "`:  7,
		`30.0`:   30,
		`"12.0"`: 12,
		`1e3`:    1000,
	}
	for in, want := range accepted {
		var n laxInt
		require.NoError(t, json.Unmarshal([]byte(in), &n), in)
		require.Equal(t, want, int64(n), in)
	}

	for _, in := range []string{`30.5`, `"thirty"`, `""`, `true`, `[1]`, `1e40`} {
		var n laxInt
		require.Error(t, json.Unmarshal([]byte(in), &n), in)
	}
}
