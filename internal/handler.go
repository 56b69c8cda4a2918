package internal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"
)

var terminator = []byte("\r\n\r\n")

// HandlerOptions tunes how a request is read off the wire.
type HandlerOptions struct {
	// ReadSize is the number of bytes asked for on each read.
	ReadSize int
	// MaxRequestSize caps the buffered request. Zero means no cap.
	MaxRequestSize int
	// ReadTimeout bounds reading the whole request. Zero means wait forever.
	ReadTimeout time.Duration
}

// Handler serves one request per connection.
type Handler struct {
	resolver *Resolver
	log      *TSLog
	opts     HandlerOptions
}

func NewHandler(resolver *Resolver, log *TSLog, opts HandlerOptions) *Handler {
	if opts.ReadSize <= 0 {
		opts.ReadSize = 1024
	}

	return &Handler{
		resolver: resolver,
		log:      log,
		opts:     opts,
	}
}

// Serve reads a request from conn, writes exactly one response and closes
// conn, whatever happens in between. Cancelling ctx closes conn, which
// unblocks a pending read.
func (h *Handler) Serve(ctx context.Context, conn net.Conn) (err error) {
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		conn.Close()
	})
	defer stop()

	log := h.log.With("remote", conn.RemoteAddr().String())

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	if h.opts.ReadTimeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(h.opts.ReadTimeout)); err != nil {
			return err
		}
	}

	raw, err := h.readRequest(conn)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, RequestTooLarge) {
			if _, werr := conn.Write(ResponseBadRequest()); werr != nil {
				return errors.Join(err, werr)
			}
		}
		return err
	}

	log.Gray("request received: %q", raw)

	if _, err := conn.Write(h.respond(log, raw)); err != nil {
		return err
	}

	return nil
}

func (h *Handler) readRequest(conn net.Conn) (string, error) {
	var request bytes.Buffer

	buf := make([]byte, h.opts.ReadSize)

	for {
		n, err := conn.Read(buf)

		// only the tail can complete the terminator
		from := request.Len() - len(terminator) + 1
		if from < 0 {
			from = 0
		}

		request.Write(buf[:n])

		if h.opts.MaxRequestSize > 0 && request.Len() > h.opts.MaxRequestSize {
			return "", newError(RequestTooLarge, "", nil)
		}

		if bytes.Contains(request.Bytes()[from:], terminator) {
			return request.String(), nil
		}

		if err != nil {
			if err == io.EOF {
				return "", newError(IncompleteRequest, request.String(), nil)
			}
			return "", err
		}
	}
}

// Respond turns a raw request into the bytes to write back.
func (h *Handler) Respond(raw string) []byte {
	return h.respond(h.log, raw)
}

func (h *Handler) respond(log *TSLog, raw string) []byte {
	path, err := RequestPath(raw)
	if err != nil {
		log.Red("%v", err)
		if errors.Is(err, MethodNotSupported) {
			return ResponseMethodNotAllowed()
		}
		return ResponseBadRequest()
	}

	res, err := h.resolver.Resolve(path)
	if err != nil {
		if errors.Is(err, NotFound) {
			log.Log("%v", err)
			return ResponseNotFound()
		}
		log.Red("%v", err)
		return ResponseInternalError()
	}

	log.Green("path: %s, mime: %s, %d bytes", path, res.Mime, len(res.Content))

	return ResponseOK(res.Content, res.Mime)
}
