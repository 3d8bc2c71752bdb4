package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	timeutil "stackpages-api/pkg/utils/time"
)

func loadFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

// assertDescending checks adjacent pairs never increase, with unparsable
// dates allowed only at the tail.
func assertDescending(t *testing.T, dates []string) {
	t.Helper()
	for i := 0; i+1 < len(dates); i++ {
		if timeutil.NewestFirst(dates[i], dates[i+1]) > 0 {
			t.Errorf("items %d and %d out of order: %q before %q", i, i+1, dates[i], dates[i+1])
		}
	}
}
