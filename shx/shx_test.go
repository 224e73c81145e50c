package shx

import (
	"context"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Run_captureOutput(t *testing.T) {
	t.Parallel()
	res, err := Run(context.Background(),
		[]string{"sh", "-c", "echo out; echo err >&2"},
		CaptureOutput(), CaptureError(),
	)
	require.NoError(t, err)
	defer res.Close() //nolint:errcheck
	require.NoError(t, res.Err())

	out, err := io.ReadAll(res.Stdout())
	require.NoError(t, err)
	assert.Equal(t, "out\n", string(out))

	errOut, err := io.ReadAll(res.Stderr())
	require.NoError(t, err)
	assert.Equal(t, "err\n", string(errOut))
}

func Test_Run_captureCombined(t *testing.T) {
	t.Parallel()
	res, err := Run(context.Background(),
		[]string{"sh", "-c", "echo out; echo err >&2"},
		CaptureCombined(),
	)
	require.NoError(t, err)
	defer res.Close() //nolint:errcheck
	require.NoError(t, res.Err())

	out, err := io.ReadAll(res.Stdout())
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"out", "err"},
		strings.Fields(string(out)),
		"both streams land in the combined capture",
	)
}

func Test_Run_exitError(t *testing.T) {
	t.Parallel()
	res, err := Run(context.Background(), []string{"sh", "-c", "exit 3"})
	require.NoError(t, err, "a clean start with a bad exit is not a Run error")
	var ee *exec.ExitError
	require.ErrorAs(t, res.Err(), &ee)
	assert.Equal(t, 3, ee.ExitCode())
	assert.Equal(t, 3, res.ExitCode())
}

func Test_Run_combinedError(t *testing.T) {
	t.Parallel()
	_, err := Run(context.Background(), []string{"false"}, WithCombinedError())
	assert.Error(t, err)
}

func Test_Run_startFailure(t *testing.T) {
	t.Parallel()
	res, err := Run(context.Background(), []string{"/definitely/not/a/binary"})
	assert.Error(t, err)
	assert.Nil(t, res)
}

func Test_Run_withEnv(t *testing.T) {
	t.Parallel()
	res, err := Run(context.Background(),
		[]string{"sh", "-c", "printf %s \"$SHX_TEST_VALUE\""},
		WithEnv("SHX_TEST_VALUE", "hello"),
		CaptureOutput(),
	)
	require.NoError(t, err)
	defer res.Close() //nolint:errcheck
	require.NoError(t, res.Err())
	out, err := io.ReadAll(res.Stdout())
	require.NoError(t, err)
	assert.Equal(t, "hello", string(out))
}

func Test_Run_withCwd(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	res, err := Run(context.Background(),
		[]string{"pwd"},
		WithCwd(dir), CaptureOutput(),
	)
	require.NoError(t, err)
	defer res.Close() //nolint:errcheck
	require.NoError(t, res.Err())
	out, err := io.ReadAll(res.Stdout())
	require.NoError(t, err)
	// pwd reports the physical path, so resolve symlinks before comparing
	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, want, strings.TrimSpace(string(out)))
}

func Test_Result_noCapture(t *testing.T) {
	t.Parallel()
	res, err := Run(context.Background(), []string{"true"})
	require.NoError(t, err)
	require.NoError(t, res.Err())
	assert.Nil(t, res.Stdout())
	assert.Nil(t, res.Stderr())
	assert.NoError(t, res.Close())
}

func Test_outCapture_spillsToTempFile(t *testing.T) {
	t.Parallel()
	c := &outCapture{}
	chunk := strings.Repeat("x", 64*1024)
	total := 0
	for total <= outCapMaxBuffer {
		n, err := c.Write([]byte(chunk))
		require.NoError(t, err)
		total += n
	}
	require.NotNil(t, c.tmpFile, "capture should have spilled to a temp file")
	require.NoError(t, c.doneWriting())
	data, err := io.ReadAll(c.reader())
	require.NoError(t, err)
	assert.Len(t, data, total)
	assert.NoError(t, c.Close())
}
