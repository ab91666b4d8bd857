package logging

import (
	"bytes"
	"log"
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitLogging(t *testing.T) {
	defer InitLogging(os.Stderr)

	var buf bytes.Buffer
	InitLogging(&buf)
	log.Printf("loaded %d trips", 12)

	require.Regexp(t, regexp.MustCompile(`^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}\.\d{6} loaded 12 trips\n$`), buf.String())
}
