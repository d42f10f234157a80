package comment

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddComment(t *testing.T) {
	testPrinter := &ConsolePrinter{
		comments: []string{},
	}

	testPrinter.Add("def greet > if", WarnHeader, "message", "additionalInfo")
	testPrinter.Add("", InfoHeader, "no location")
	if assert.Len(t, testPrinter.comments, 2) {
		assert.Equal(t, "WARN: [def greet > if] message\n\tadditionalInfo", testPrinter.comments[0])
		assert.Equal(t, "INFO: no location", testPrinter.comments[1])
	}
}

func TestNilPrinter(t *testing.T) {
	var p *ConsolePrinter
	assert.NotPanics(t, func() {
		p.Add("x", InfoHeader, "message")
		p.Flush()
	})
}

func TestFlush(t *testing.T) {
	buf := &bytes.Buffer{}
	out := log.Writer()
	flags := log.Flags()
	log.SetOutput(buf)
	log.SetFlags(0)
	defer func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	}()

	EnableConsolePrinter()
	defer DisableConsolePrinter()

	Report(WarnHeader, "top level", "else closed without a parent")
	WriteAll()

	assert.Equal(t, "WARN: [top level] else closed without a parent\n", buf.String())
	assert.Empty(t, printer.comments)
}
