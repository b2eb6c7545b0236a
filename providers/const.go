package providers

import (
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
)

type Ctx = glsp.Context

var (
	log     = commonlog.GetLogger("familychart.providers")
	session *Session
)
