package command

import "errors"

var (
	ErrPermissionDenied = errors.New("permission denied") // ErrPermissionDenied is returned by Execute when the sender lacks the command's permission.
	ErrUsage            = errors.New("incorrect usage")   // ErrUsage is returned by Execute when fewer arguments than required are given.
	ErrInvalidCommand   = errors.New("invalid command")   // ErrInvalidCommand is returned by Validate for a misconfigured Command.
)
