package ports

import "context"

// Mailer delivers a verification code out-of-band.
// Dispatch is the only call in the flow with external latency; implementations
// must bound it with a timeout. Failures surface to the caller and are not
// retried.
type Mailer interface {
	Deliver(ctx context.Context, toAddress, code string) error
}
