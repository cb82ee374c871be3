package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Saadaqmacalin/houserent-gateway/internal/auth"
	"github.com/Saadaqmacalin/houserent-gateway/internal/session"
	"github.com/Saadaqmacalin/houserent-gateway/internal/upstream"
	"github.com/Saadaqmacalin/houserent-gateway/pkg/util"
)

// clientID pulls the signed-cookie client id stashed by the session
// middleware.
func clientID(c *fiber.Ctx) (string, error) {
	sid, ok := session.ClientIDFromContext(c)
	if !ok {
		return "", util.NewUnauthorized("no client session")
	}
	return sid, nil
}

// credentials resolves the caller's outgoing-request tokens.
func credentials(c *fiber.Ctx, ctrl *auth.Controller) (upstream.Credentials, error) {
	sid, err := clientID(c)
	if err != nil {
		return upstream.Credentials{}, err
	}
	creds, err := ctrl.Credentials(c.UserContext(), sid)
	if err != nil {
		return upstream.Credentials{}, undeterminedSession()
	}
	return creds, nil
}

// undeterminedSession is returned when the session store cannot be read:
// the caller retries instead of being treated as logged out.
func undeterminedSession() error {
	return util.NewDomainError("SESSION_UNDETERMINED", "session state unavailable, retry shortly", fiber.StatusServiceUnavailable, nil)
}

// mapUpstream translates rental-API failures into the response envelope,
// keeping the server-supplied message when there is one.
func mapUpstream(err error) error {
	if err == nil {
		return nil
	}
	var httpErr *upstream.HTTPError
	if errors.As(err, &httpErr) {
		return util.NewUpstreamError(httpErr.Status, httpErr.Message)
	}
	var netErr *upstream.NetworkError
	if errors.As(err, &netErr) {
		return util.NewUpstreamUnreachable(netErr)
	}
	return err
}

// requireConfirm enforces the explicit confirmation step destructive
// actions carry before any request is issued.
func requireConfirm(c *fiber.Ctx, action string) error {
	if c.Query("confirm") == "true" {
		return nil
	}
	return util.NewValidationError(action+" must be confirmed with confirm=true", nil)
}
