package server

import "errors"

// errNoServersAreCreated is returned by NewServer when no HTTP handler or
// listen address is configured.
var errNoServersAreCreated = errors.New("no servers are created: http handler or address is missing")
