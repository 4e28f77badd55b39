package results

import "errors"

// ErrMalformedPayload is returned when the sheet payload cannot be mapped to results.
var ErrMalformedPayload = errors.New("malformed results payload")
