package cli

import "github.com/morikuni/failure/v2"

// ErrorCode defines error types for CLI operations
type ErrorCode string

const (
	InvalidMoveCount ErrorCode = "InvalidMoveCount"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

// UserMessage returns the message meant for the user, falling back to the error text
func UserMessage(err error) string {
	if fmsg := failure.MessageOf(err); fmsg != "" {
		return fmsg.String()
	}
	return err.Error()
}
