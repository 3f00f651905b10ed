// Package feed turns insert notifications on the enquiry table into enquiries.
package feed

import (
	"encoding/json"

	"github.com/xw1nchester/protech-admin/internal/enquiry"
	"go.uber.org/zap"
)

type Source interface {
	Subscribe(channel string, fn func(payload string)) (func(), error)
}

type feed struct {
	source  Source
	channel string
	logger  *zap.Logger
}

func New(source Source, channel string, logger *zap.Logger) *feed {
	return &feed{
		source:  source,
		channel: channel,
		logger:  logger,
	}
}

// Subscribe calls onInsert with every enquiry inserted after the call until
// the returned func is called. Payloads that do not decode are logged and
// skipped.
func (f *feed) Subscribe(onInsert func(enquiry.Enquiry)) (func(), error) {
	return f.source.Subscribe(f.channel, func(payload string) {
		var e enquiry.Enquiry
		if err := json.Unmarshal([]byte(payload), &e); err != nil {
			f.logger.Error("failed to decode enquiry notification", zap.Error(err), zap.String("payload", payload))
			return
		}

		onInsert(e)
	})
}
