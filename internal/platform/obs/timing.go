package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// Time wraps an operation, logging its duration, outcome, and an optional
// detail string (e.g. a cache hit/miss verdict or a leg description)
// alongside the request id pulled from ctx.
func Time(ctx context.Context, name string, detail string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s detail=%q dur=%dms err=%v", reqID, name, detail, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s detail=%q dur=%dms", reqID, name, detail, dur.Milliseconds())
	}
}
