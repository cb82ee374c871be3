package auth

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Saadaqmacalin/houserent-gateway/internal/domain"
	"github.com/Saadaqmacalin/houserent-gateway/internal/session"
	"github.com/Saadaqmacalin/houserent-gateway/pkg/util"
)

const principalKey = "auth_principal"

// Principal is the authenticated caller for the current request. Exactly
// one of User or Landlord is set depending on which guard admitted it.
type Principal struct {
	User     *session.UserSession
	Landlord *session.LandlordSession
}

// Guard gates the role-scoped route groups. All per-page role checks are
// centralized here instead of being re-implemented inline per handler.
type Guard struct {
	ctrl *Controller
}

// NewGuard builds the guard layer.
func NewGuard(ctrl *Controller) *Guard {
	return &Guard{ctrl: ctrl}
}

// RequireUser admits requests carrying an admin/staff/customer session.
// Absent session: browsers are redirected to the login entry point, API
// callers get 401. Undetermined session state (store unreadable) yields a
// neutral 503, never a redirect and never protected content.
func (g *Guard) RequireUser() fiber.Handler {
	return g.requireSession("/login")
}

// RequireCustomer admits the booking/rentals pages. The redirect detours to
// the customer auth page carrying the intended destination so the flow can
// resume after authentication.
func (g *Guard) RequireCustomer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		target := "/customer-auth?returnTo=" + url.QueryEscape(c.OriginalURL())
		return g.admitUser(c, target)
	}
}

// RequireLandlord admits requests carrying a landlord session. A plain
// presence check on the landlord token, independent of the admin/customer
// session.
func (g *Guard) RequireLandlord() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid, ok := session.ClientIDFromContext(c)
		if !ok {
			return util.NewUnauthorized("no client session")
		}

		landlord, err := g.ctrl.ResolveLandlord(c.UserContext(), sid)
		if err != nil {
			return undetermined()
		}
		if landlord == nil {
			return deny(c, "/landlord/login")
		}

		c.Locals(principalKey, &Principal{Landlord: landlord})
		return c.Next()
	}
}

// RequireRole restricts an already-admitted user group further, e.g. the
// user-management screens to admins.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.User == nil {
			return util.NewUnauthorized("not authenticated")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.User.Role]; !exists {
			return util.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

func (g *Guard) requireSession(loginPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return g.admitUser(c, loginPath)
	}
}

func (g *Guard) admitUser(c *fiber.Ctx, loginPath string) error {
	sid, ok := session.ClientIDFromContext(c)
	if !ok {
		return util.NewUnauthorized("no client session")
	}

	sess, err := g.ctrl.Resolve(c.UserContext(), sid)
	if err != nil {
		return undetermined()
	}
	if sess == nil {
		return deny(c, loginPath)
	}

	c.Locals(principalKey, &Principal{User: sess})
	return c.Next()
}

// deny redirects browsers to the audience's login entry point and returns
// 401 for JSON callers.
func deny(c *fiber.Ctx, loginPath string) error {
	if wantsJSON(c) {
		return util.NewUnauthorized("authentication required")
	}
	return c.Redirect(loginPath, fiber.StatusFound)
}

// undetermined is the mid-load outcome: the store could not be read, so
// neither a redirect nor protected content is safe.
func undetermined() error {
	return util.NewDomainError("SESSION_UNDETERMINED", "session state unavailable, retry shortly", fiber.StatusServiceUnavailable, nil)
}

func wantsJSON(c *fiber.Ctx) bool {
	accept := c.Get(fiber.HeaderAccept)
	if strings.Contains(accept, fiber.MIMETextHTML) {
		return false
	}
	return strings.Contains(accept, fiber.MIMEApplicationJSON) || c.Is("json")
}
