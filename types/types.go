package types

import (
	proto "github.com/tliron/glsp/protocol_3_16"
)

type Uri = proto.DocumentUri
