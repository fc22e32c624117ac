package errors

import (
	"errors"
	"fmt"
)

// upstreamError is implemented by errors raised while calling the core
// platform API; Dump surfaces those fields without importing the client.
type upstreamError interface {
	UpstreamStatus() int
	UpstreamEndpoint() string
	UpstreamDetail() string
}

type ErrorDump struct {
	TopMessage string `json:"top_message"`
	Code       Code   `json:"code,omitempty"`

	Chain []string `json:"chain,omitempty"`

	UpstreamStatus   int    `json:"upstream_status,omitempty"`
	UpstreamEndpoint string `json:"upstream_endpoint,omitempty"`
	UpstreamDetail   string `json:"upstream_detail,omitempty"`
}

func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{
		TopMessage: err.Error(),
	}

	if te := As(err); te != nil {
		d.Code = te.Code()
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		if ue, ok := e.(upstreamError); ok {
			d.UpstreamStatus = ue.UpstreamStatus()
			d.UpstreamEndpoint = ue.UpstreamEndpoint()
			d.UpstreamDetail = ue.UpstreamDetail()
			break
		}
	}

	return d
}
