package internal

import (
	"context"
	"errors"
	"net"
	"sync"
)

// Server accepts connections and hands each one to a Handler.
type Server struct {
	config  *Config
	handler *Handler
	log     *TSLog
}

func NewServer(config *Config, log *TSLog) *Server {
	resolver := NewResolver(config.Root, config.Confine)

	return &Server{
		config: config,
		handler: NewHandler(resolver, log, HandlerOptions{
			ReadSize:       config.ReadSize,
			MaxRequestSize: config.MaxRequestSize,
			ReadTimeout:    config.ReadTimeout,
		}),
		log: log,
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig

	l, err := lc.Listen(ctx, "tcp", s.config.Listen)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}

	s.log.Log("making a server on %s, serving %s", l.Addr(), s.handler.resolver.Root())

	return s.Serve(ctx, l)
}

// Serve accepts on l until ctx is done, then closes l and returns nil.
// Connections are served one after another unless the config says otherwise.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	wg := &sync.WaitGroup{}
	defer wg.Wait()

	defer l.Close()

	stop := context.AfterFunc(ctx, func() {
		l.Close()
	})
	defer stop()

	for {
		s.log.Gray("waiting for a connection")

		conn, err := l.Accept()
		if err != nil {
			if ctx.Err() != nil {
				s.log.Log("shutting down")
				return nil
			}

			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				s.log.Red("accept: %v", err)
				continue
			}

			return err
		}

		s.log.Log("connection - %s", conn.RemoteAddr())

		if s.config.Concurrent {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.handle(ctx, conn)
			}()
			continue
		}

		s.handle(ctx, conn)
	}
}

func (s *Server) handle(ctx context.Context, conn net.Conn) {
	addr := conn.RemoteAddr().String()

	if err := s.handler.Serve(ctx, conn); err != nil {
		if ctx.Err() != nil {
			s.log.Log("%s: dropped on shutdown", addr)
			return
		}
		s.log.Red("%s: %v", addr, err)
		return
	}

	s.log.Gray("< %s", addr)
}
