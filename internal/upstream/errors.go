package upstream

import "fmt"

// HTTPError is a non-2xx response from the rental API. Message carries the
// server-supplied message field when the body had one.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("upstream responded %d: %s", e.Status, e.Message)
}

// NetworkError is a transport-level failure: the request never produced a
// response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("upstream unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
