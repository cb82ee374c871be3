package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Saadaqmacalin/houserent-gateway/internal/domain"
	"github.com/Saadaqmacalin/houserent-gateway/internal/session"
	"github.com/Saadaqmacalin/houserent-gateway/internal/upstream"
)

// Result is the outcome of an auth attempt. Credential rejections surface
// here as Success=false with a message; they are never returned as errors,
// so a bad password can never crash a form.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func failure(message string) Result {
	return Result{Success: false, Message: message}
}

// Controller orchestrates login, registration and logout for both
// audiences. It is the only writer of the session store.
type Controller struct {
	api      *upstream.Client
	sessions *session.Store
	logger   *zap.Logger
}

// NewController builds the controller.
func NewController(api *upstream.Client, sessions *session.Store, logger *zap.Logger) *Controller {
	return &Controller{api: api, sessions: sessions, logger: logger}
}

// Login authenticates the admin/customer audience and stores the session.
func (ctl *Controller) Login(ctx context.Context, sid, email, password string) (Result, error) {
	if email == "" || password == "" {
		return failure("email and password are required"), nil
	}

	resp, err := ctl.api.Login(ctx, email, password)
	if err != nil {
		return ctl.authFailure("login", err)
	}

	sess := &session.UserSession{
		Name:  resp.Name,
		Email: resp.Email,
		Role:  resp.Role,
		Token: resp.Token,
	}
	if err := ctl.sessions.SetUser(ctx, sid, sess); err != nil {
		return Result{}, err
	}
	return Result{Success: true}, nil
}

// RegisterCustomer validates locally, registers against the rental API and
// stores the resulting session. Uniqueness checks are server-side; the
// server's message is surfaced verbatim.
func (ctl *Controller) RegisterCustomer(ctx context.Context, sid, name, email, password, confirm string) (Result, error) {
	if name == "" || email == "" || password == "" {
		return failure("name, email and password are required"), nil
	}
	if password != confirm {
		return failure("Passwords do not match"), nil
	}

	resp, err := ctl.api.RegisterUser(ctx, upstream.Credentials{}, upstream.UserInput{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return ctl.authFailure("register", err)
	}

	role := resp.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	sess := &session.UserSession{
		Name:  resp.Name,
		Email: resp.Email,
		Role:  role,
		Token: resp.Token,
	}
	if err := ctl.sessions.SetUser(ctx, sid, sess); err != nil {
		return Result{}, err
	}
	return Result{Success: true}, nil
}

// Logout clears the admin/customer session only. The landlord session, if
// any, stays intact: the two audiences are independent.
func (ctl *Controller) Logout(ctx context.Context, sid string) error {
	return ctl.sessions.ClearUser(ctx, sid)
}

// LoginLandlord authenticates the landlord audience. Structurally simpler
// than the admin/customer flow: token and profile go straight to the store.
func (ctl *Controller) LoginLandlord(ctx context.Context, sid, email, password string) (Result, error) {
	if email == "" || password == "" {
		return failure("email and password are required"), nil
	}

	resp, err := ctl.api.LandlordLogin(ctx, email, password)
	if err != nil {
		return ctl.authFailure("landlord login", err)
	}
	if err := ctl.sessions.SetLandlord(ctx, sid, resp.Token, landlordProfile(resp)); err != nil {
		return Result{}, err
	}
	return Result{Success: true}, nil
}

// RegisterLandlord registers a landlord account and stores its session.
func (ctl *Controller) RegisterLandlord(ctx context.Context, sid string, input upstream.OwnerInput, password string) (Result, error) {
	if input.Name == "" || input.Email == "" || password == "" {
		return failure("name, email and password are required"), nil
	}

	resp, err := ctl.api.LandlordRegister(ctx, input, password)
	if err != nil {
		return ctl.authFailure("landlord register", err)
	}
	if err := ctl.sessions.SetLandlord(ctx, sid, resp.Token, landlordProfile(resp)); err != nil {
		return Result{}, err
	}
	return Result{Success: true}, nil
}

// LogoutLandlord clears the landlord session only.
func (ctl *Controller) LogoutLandlord(ctx context.Context, sid string) error {
	return ctl.sessions.ClearLandlord(ctx, sid)
}

// Resolve reads the current admin/customer session. nil means determined
// absent; an error means the store could not be read and the caller must
// treat the state as undetermined rather than redirecting.
func (ctl *Controller) Resolve(ctx context.Context, sid string) (*session.UserSession, error) {
	return ctl.sessions.User(ctx, sid)
}

// ResolveLandlord reads the current landlord session.
func (ctl *Controller) ResolveLandlord(ctx context.Context, sid string) (*session.LandlordSession, error) {
	return ctl.sessions.Landlord(ctx, sid)
}

// Credentials assembles the outgoing-request credentials for a client.
func (ctl *Controller) Credentials(ctx context.Context, sid string) (upstream.Credentials, error) {
	landlordToken, userToken, err := ctl.sessions.Tokens(ctx, sid)
	if err != nil {
		return upstream.Credentials{}, err
	}
	return upstream.Credentials{LandlordToken: landlordToken, UserToken: userToken}, nil
}

// authFailure maps upstream auth errors onto the Result contract. Only a
// session-store failure ever propagates as an error.
func (ctl *Controller) authFailure(op string, err error) (Result, error) {
	var httpErr *upstream.HTTPError
	if errors.As(err, &httpErr) {
		return failure(httpErr.Message), nil
	}
	var netErr *upstream.NetworkError
	if errors.As(err, &netErr) {
		ctl.logger.Warn("auth request failed", zap.String("op", op), zap.Error(err))
		return failure("Authentication service is unreachable. Please try again."), nil
	}
	return Result{}, err
}

func landlordProfile(resp *upstream.LandlordAuthResponse) session.LandlordProfile {
	return session.LandlordProfile{
		ID:          resp.ID,
		Name:        resp.Name,
		Email:       resp.Email,
		PhoneNumber: resp.PhoneNumber,
		NationalID:  resp.NationalID,
		Address:     resp.Address,
	}
}
