package feed

import (
	"fmt"
	"time"
)

const HTTP_SERVER_ERR = 503

const SUBSCRIBE_TIMEOUT = 200 * time.Millisecond
const WRITE_TIMEOUT = time.Second
const SEND_BUFFER = 16

func (hs HubState) Name() string {
	switch hs {
	case HS_NEW:
		return "HS_NEW"
	case HS_RUN:
		return "HS_RUN"
	case HS_OVER:
		return "HS_OVER"
	default:
		return fmt.Sprintf("n/a:%d", hs)
	}
}

func (ss SubscriberState) Name() string {
	switch ss {
	case SS_NEW:
		return "NEW"
	case SS_LIVE:
		return "LIVE"
	case SS_OVER:
		return "OVER"
	case SS_ERR:
		return "ERR"
	default:
		return "N/A"
	}
}
