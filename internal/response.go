package internal

import "bytes"

// This file contains the responses written back to the client.

const crlf = "\r\n"

const (
	StatusOK                  = "HTTP/1.1 200 OK"
	StatusBadRequest          = "HTTP/1.1 400 Bad Request"
	StatusNotFound            = "HTTP/1.1 404 Page Not Found"
	StatusMethodNotAllowed    = "HTTP/1.1 405 Method Not Allowed"
	StatusInternalServerError = "HTTP/1.1 500 Internal Server Error"
)

const (
	MimeHTML  = "text/html"
	MimePlain = "text/plain"
	MimePNG   = "image/png"
	MimeJPEG  = "image/jpeg"
)

func buildResponse(status string, mime string, body []byte) []byte {
	return bytes.Join([][]byte{
		[]byte(status),
		[]byte("Content-Type:" + mime),
		nil,
		body,
	}, []byte(crlf))
}

// ResponseOK returns a 200 response carrying body as mime.
func ResponseOK(body []byte, mime string) []byte {
	return buildResponse(StatusOK, mime, body)
}

func ResponseNotFound() []byte {
	return buildResponse(StatusNotFound, MimePlain, []byte("404! Page not found."))
}

func ResponseMethodNotAllowed() []byte {
	return buildResponse(StatusMethodNotAllowed, MimePlain, []byte("Only GET is supported here."))
}

func ResponseBadRequest() []byte {
	return buildResponse(StatusBadRequest, MimePlain, []byte("Bad request."))
}

func ResponseInternalError() []byte {
	return buildResponse(StatusInternalServerError, MimePlain, []byte("Something went wrong reading that."))
}
