package shx

import (
	"bytes"
	"errors"
	"io"
	"os"
)

type outCapture struct {
	// buffer stores output up to a size limit. if it gets too big, capture
	// shifts to tmpFile.
	buffer *bytes.Buffer
	// tmpFile, if set, is an unlinked temporary file holding the output.
	tmpFile *os.File
}

const outCapMaxBuffer = 1024 * 1024 // 1MB

func (c *outCapture) Close() error {
	c.buffer = nil
	if c.tmpFile != nil {
		err := c.tmpFile.Close()
		c.tmpFile = nil
		return err
	}
	return nil
}

func (c *outCapture) switchToTmp() error {
	var err error
	c.tmpFile, err = os.CreateTemp("", "shx-out-capture-")
	if err != nil {
		return err
	}
	// unlink the file so it's inaccessible, and we don't have to worry about
	// cleaning it up later
	if err := os.Remove(c.tmpFile.Name()); err != nil {
		if err2 := c.tmpFile.Close(); err2 != nil {
			err = errors.Join(err, err2)
		}
		c.tmpFile = nil
		return err
	}
	if c.buffer != nil {
		if _, err := c.tmpFile.Write(c.buffer.Bytes()); err != nil {
			if err2 := c.tmpFile.Close(); err2 != nil {
				err = errors.Join(err, err2)
			}
			c.tmpFile = nil
			return err
		}
	}
	c.buffer = nil
	return nil
}

func (c *outCapture) Write(p []byte) (n int, err error) {
	if c.buffer != nil && c.buffer.Len()+len(p) > outCapMaxBuffer {
		if err := c.switchToTmp(); err != nil {
			return 0, err
		}
	}
	if c.tmpFile != nil {
		return c.tmpFile.Write(p)
	}
	if c.buffer == nil {
		c.buffer = &bytes.Buffer{}
	}
	return c.buffer.Write(p)
}

// doneWriting rewinds the temp file, if any, so the capture can be read back.
func (c *outCapture) doneWriting() error {
	if c.tmpFile != nil {
		if _, err := c.tmpFile.Seek(0, io.SeekStart); err != nil {
			return err
		}
	}
	return nil
}

// reader is nil-receiver safe so Result accessors can pass through untouched.
func (c *outCapture) reader() io.Reader {
	if c == nil {
		return nil
	}
	if c.tmpFile != nil {
		return c.tmpFile
	}
	if c.buffer != nil {
		return bytes.NewReader(c.buffer.Bytes())
	}
	return bytes.NewReader(nil)
}
