//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertHeaders checks each expected header in key order. An empty expected
// value asserts the header is absent.
func AssertHeaders(t *testing.T, rec *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	keys := make([]string, 0, len(expected))
	for k := range expected {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		want := expected[k]
		if want == "" {
			assert.Empty(t, rec.Header().Values(k), "header %s should be absent", k)
			continue
		}
		assert.Equal(t, want, rec.Header().Get(k), "header %s", k)
	}
}
