package http

import (
	"fmt"
	"io"
	"net/http"

	"cardapio/internal/core/application/notify"
	"cardapio/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

// stream holds a server-sent events connection open until the client leaves or
// the subscriber is dropped.
func (s *Server) stream(ctx echo.Context, audience notify.Audience) error {
	reqCtx := ctx.Request().Context()

	cmd, err := commands.NewOpenStreamCommand(audience)
	if err != nil {
		return s.fail(ctx, err)
	}

	sub, err := s.openStreamHandler.Handle(reqCtx, cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	defer s.openStreamHandler.Release(reqCtx, sub)

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)

	if _, err = io.WriteString(res, ": connected\n\n"); err != nil {
		return nil
	}
	res.Flush()

	for {
		select {
		case <-reqCtx.Done():
			return nil
		case <-sub.Done():
			return nil
		case ev := <-sub.Events():
			if err = writeEvent(res, ev); err != nil {
				s.logger.DebugContext(reqCtx, "Stream write failed",
					"audience", audience, "subscriber_id", sub.ID().String(), "error", err)
				return nil
			}
			res.Flush()
		}
	}
}

// writeEvent renders ev in the text/event-stream format. Keepalives are comments.
func writeEvent(w io.Writer, ev notify.Event) error {
	if ev.IsKeepalive() {
		_, err := io.WriteString(w, ": keepalive\n\n")
		return err
	}

	_, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Name, ev.Data)
	return err
}
