package bus

import (
	"errors"

	"github.com/zeebo/errs"
)

// ErrInvalidArgument classifies registration and dispatch boundary failures:
// nil topics, nil or uncomparable subscribers, events without an article.
var ErrInvalidArgument = errs.Class("invalid argument")

// ErrChannelClosed is returned when operations are attempted on a closed
// channel.
var ErrChannelClosed = errors.New("channel is closed")
