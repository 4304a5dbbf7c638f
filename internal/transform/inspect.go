package transform

import (
	"fmt"
	"io"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/moustacheful/midori/internal/midi"
	"github.com/moustacheful/midori/internal/scheduler"
)

// Inspect is a side-effecting passthrough: it writes one diagnostic line
// per message to Writer, prefixed with strftime.Format(TimestampFormat,
// time.Now()), and returns the message unchanged.
type Inspect struct {
	Base

	Writer          io.Writer
	TimestampFormat string
}

const defaultInspectTimestampFormat = "%Y-%m-%d %H:%M:%S"

func (i *Inspect) OnMessage(msg midi.RouterEvent, _ scheduler.Handle) *midi.RouterEvent {
	if i.Writer != nil {
		format := i.TimestampFormat
		if format == "" {
			format = defaultInspectTimestampFormat
		}
		stamp, err := strftime.Format(format, time.Now())
		if err != nil {
			stamp = ""
		}
		fmt.Fprintf(i.Writer, "%s %s\n", stamp, msg)
	}

	return &msg
}
