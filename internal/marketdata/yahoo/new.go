package yahoo

import (
	"time"

	"financial-agent/internal/marketdata"
	pkgLog "financial-agent/pkg/log"
	pkgYahoo "financial-agent/pkg/yahoo"
)

type implProvider struct {
	client pkgYahoo.IClient
	l      pkgLog.Logger
	now    func() time.Time
}

var _ marketdata.Provider = (*implProvider)(nil)

// New returns a marketdata.Provider backed by Yahoo Finance.
func New(client pkgYahoo.IClient, l pkgLog.Logger) marketdata.Provider {
	return &implProvider{client: client, l: l, now: time.Now}
}
