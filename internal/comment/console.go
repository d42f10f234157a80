package comment

import (
	"log"
	"strings"
)

type ConsolePrinter struct {
	comments []string
}

// initialize this if you want to use it at the start of the program
var printer *ConsolePrinter

func EnableConsolePrinter() {
	printer = &ConsolePrinter{}
}

// DisableConsolePrinter drops the console printer and anything it has not flushed.
func DisableConsolePrinter() {
	printer = nil
}

func WriteAll() {
	if printer != nil {
		printer.Flush()
	}
}

// Add appends a new comment to the console printer.
// The message is the main comment, and additionalInfo is a list of optional
// comments that will be printed on new lines below the main comment.
func (p *ConsolePrinter) Add(location, header, message string, additionalInfo ...string) {
	if p == nil {
		return
	}

	b := strings.Builder{}
	b.WriteString(header)
	b.WriteByte(':')
	b.WriteByte(' ')

	if location != "" {
		b.WriteByte('[')
		b.WriteString(location)
		b.WriteByte(']')
		b.WriteByte(' ')
	}
	b.WriteString(message)
	for _, info := range additionalInfo {
		b.WriteString("\n\t")
		b.WriteString(info)
	}

	p.comments = append(p.comments, b.String())
}

// Flush logs all the comments collected so far.
func (p *ConsolePrinter) Flush() {
	if p == nil {
		return
	}

	for _, c := range p.comments {
		log.Println(c)
	}
	p.comments = []string{}
}
