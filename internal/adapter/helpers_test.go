package adapter

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func parseQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	values, err := url.ParseQuery(raw)
	require.NoError(t, err)
	return values
}
