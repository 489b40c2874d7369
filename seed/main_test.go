package main

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShowHelp(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(orig) })

	showHelp()

	out := buf.String()
	assert.Contains(t, out, "-type string")
	assert.Contains(t, out, "Options: all, none")
	assert.Contains(t, out, "DB_DATABASE")
}
