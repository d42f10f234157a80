package comment

import (
	"fmt"

	"github.com/pycraft/pycraft/nodes"
)

const (
	InfoHeader string = "INFO"
	WarnHeader string = "WARN"
)

// Info returns comment statements carrying an info message about node, ready to be
// added to a body ahead of the code they describe. The message is the main comment, and
// additionalInfo is a list of optional comments that will be written on new lines below
// the main comment. The message is also sent to the console printer, if enabled.
func Info(node nodes.Node, message string, additionalInfo ...string) []nodes.Stmt {
	printer.Add(Position(node), InfoHeader, message, additionalInfo...)
	return lines(InfoHeader, message, additionalInfo)
}

// Warn is Info with the warning header.
func Warn(node nodes.Node, message string, additionalInfo ...string) []nodes.Stmt {
	printer.Add(Position(node), WarnHeader, message, additionalInfo...)
	return lines(WarnHeader, message, additionalInfo)
}

// Report sends a message to the console printer without generating any code.
// location is usually built with Position.
func Report(header, location, message string, additionalInfo ...string) {
	printer.Add(location, header, message, additionalInfo...)
}

func lines(header, message string, additionalInfo []string) []nodes.Stmt {
	comments := []nodes.Stmt{
		nodes.NewComment(fmt.Sprintf("%s: %s", header, message)),
	}
	for _, info := range additionalInfo {
		comments = append(comments, nodes.NewComment(info))
	}
	return comments
}
