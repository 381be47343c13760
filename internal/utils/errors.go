package utils

import (
	"github.com/pkg/errors"
)

const (
	errorHTTPClientNilFormat = "httpclient is nil"
)

var ErrNilHTTPClient = errors.New(errorHTTPClientNilFormat)
