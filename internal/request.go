package internal

import "strings"

// Request is the parsed request line. Headers are never looked at.
type Request struct {
	Method  string
	Path    string
	Version string
}

// ParseRequest parses the request line of raw, which must hold at least
// one CRLF-terminated line. Only GET is accepted.
func ParseRequest(raw string) (*Request, error) {
	i := strings.Index(raw, crlf)
	if i < 0 {
		return nil, newError(MalformedRequest, raw, nil)
	}

	line := raw[:i]
	toks := strings.Split(line, " ")
	if len(toks) != 3 {
		return nil, newError(MalformedRequest, line, nil)
	}

	req := &Request{
		Method:  toks[0],
		Path:    toks[1],
		Version: toks[2],
	}

	if req.Method != "GET" {
		return nil, newError(MethodNotSupported, req.Method, nil)
	}

	return req, nil
}

// RequestPath returns the target path of a GET request, untouched.
func RequestPath(raw string) (string, error) {
	req, err := ParseRequest(raw)
	if err != nil {
		return "", err
	}
	return req.Path, nil
}
