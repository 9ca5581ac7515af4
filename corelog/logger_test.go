package corelog

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/joeycumines/logiface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLoggerDiscardsEverything(t *testing.T) {
	// no SetLogger call in this test: Get must return the package's
	// discarding default installed at init, which drops records at any
	// level without panicking.
	l := Get()
	require.NotNil(t, l)
	assert.NotPanics(t, func() {
		Error(CategoryEntity).Str("handle", "1").Log("should be discarded")
	})
}

func TestSetLoggerWritesAtOrAboveLevel(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(New(&buf, logiface.LevelInformational))
	defer SetLogger(nil)

	Debug(CategoryArea).Str("cell", "3,4").Log("queue drain skipped")
	Info(CategoryArea).Str("cell", "3,4").Log("queue drained")

	out := buf.String()
	assert.NotContains(t, out, "queue drain skipped", "debug is below the installed level")
	assert.Contains(t, out, "queue drained")
	assert.Contains(t, out, `"category":"area"`)
	assert.Contains(t, out, `"cell":"3,4"`)
}

func TestSetLoggerNilRestoresDiscardDefault(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(New(&buf, logiface.LevelDebug))
	SetLogger(nil)
	defer SetLogger(nil)

	Error(CategoryEntity).Log("should not appear")

	assert.Empty(t, buf.String())
}

func TestWithTagsCategoryField(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(New(&buf, logiface.LevelWarning))
	defer SetLogger(nil)

	With(CategoryLifecycle, logiface.LevelError).Str("handle", "7").Log("disconnect failed")

	out := buf.String()
	assert.Contains(t, out, `"category":"lifecycle"`)
	assert.Contains(t, out, `"handle":"7"`)
	assert.True(t, strings.Contains(out, "disconnect failed"))
}

func TestSetLoggerConcurrentAccessIsSafe(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(New(&buf, logiface.LevelDebug))
	defer SetLogger(nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Debug(CategoryEvent).Log("concurrent")
			_ = Get()
		}()
	}
	wg.Wait()
}
