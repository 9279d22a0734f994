package session

import (
	"context"
	"strings"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/scrapzee/scrapzee-cli/constant"
	"github.com/scrapzee/scrapzee-cli/model"
	"github.com/scrapzee/scrapzee-cli/utils/errors"
	"github.com/scrapzee/scrapzee-cli/utils/logger"
	validatorx "github.com/scrapzee/scrapzee-cli/utils/validator"
	"go.uber.org/zap"
)

const (
	loginFallback    = "Login failed. Please check your credentials."
	registerFallback = "Registration failed. Please try again."
)

// SetLoginForm replaces the login draft buffer.
func (c *Controller) SetLoginForm(form model.LoginForm) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loginForm = form
}

func (c *Controller) LoginForm() model.LoginForm {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loginForm
}

// SetRegisterForm replaces the registration draft buffer.
func (c *Controller) SetRegisterForm(form model.RegisterForm) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.registerForm = form
}

func (c *Controller) RegisterForm() model.RegisterForm {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.registerForm
}

// Login submits the current login buffer. On success the token is persisted,
// the session installed, the buffer cleared and the page set to dashboard.
// On rejection the server message is surfaced verbatim and the buffer is
// kept so the user can correct and resubmit. The loading flag is cleared on
// every exit path.
func (c *Controller) Login(ctx context.Context) error {
	c.mu.Lock()
	form := c.loginForm
	c.authLoading = true
	c.lastError = ""
	c.mu.Unlock()

	err := c.authenticate(ctx, func() (*model.AuthResponse, error) {
		return c.gateway.Login(ctx, &form)
	}, &form, loginFallback)

	if err == nil {
		c.mu.Lock()
		c.loginForm = model.LoginForm{}
		c.mu.Unlock()
	}
	return err
}

// Register submits the current registration buffer, with the same contract
// as Login.
func (c *Controller) Register(ctx context.Context) error {
	c.mu.Lock()
	form := c.registerForm
	c.authLoading = true
	c.lastError = ""
	c.mu.Unlock()

	err := c.authenticate(ctx, func() (*model.AuthResponse, error) {
		return c.gateway.Register(ctx, &form)
	}, &form, registerFallback)

	if err == nil {
		c.mu.Lock()
		c.registerForm = model.RegisterForm{}
		c.mu.Unlock()
	}
	return err
}

// authenticate is the shared login/register path: validate, exchange, then
// either install the session or surface the taxonomy-appropriate message.
func (c *Controller) authenticate(ctx context.Context, call func() (*model.AuthResponse, error), form interface{}, fallback string) error {
	defer func() {
		c.mu.Lock()
		c.authLoading = false
		c.mu.Unlock()
	}()

	if err := validatorx.ValidateStruct(form); err != nil {
		msg := formMessage(err)
		c.setError(msg)
		return errors.InvalidForm(msg)
	}

	res, err := call()
	if err != nil {
		c.setError(surfaceMessage(err, fallback))
		return err
	}
	if res.Token == "" || res.User == nil {
		c.setError(fallback)
		return errors.Rejected(fallback)
	}

	if err := c.store.Save(res.Token); err != nil {
		// session still works for this process; persistence is degraded
		logger.Warn("persisting token", zap.Error(err))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.installSessionLocked(res.Token, res.User)
	c.page = constant.PageDashboard
	return nil
}

func (c *Controller) setError(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastError = msg
}

// surfaceMessage picks the user-facing text for a failed exchange: verbatim
// backend message when one exists, the generic connectivity prompt for
// transport failures, otherwise the operation's fallback wording.
func surfaceMessage(err error, fallback string) string {
	if errors.IsConnectivity(err) {
		return constant.ErrorTypeMessage[constant.ErrConnectivity]
	}
	var ce errors.CustomError
	if ok := asCustom(err, &ce); ok && ce.Message() != "" {
		return ce.Message()
	}
	return fallback
}

func asCustom(err error, target *errors.CustomError) bool {
	ce, ok := err.(errors.CustomError)
	if !ok {
		return false
	}
	*target = ce
	return true
}

// formMessage flattens validator output into one short line.
func formMessage(err error) string {
	verrs, ok := err.(gpvalidator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return constant.ErrorTypeMessage[constant.ErrInvalidForm]
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, strings.ToLower(fe.Field())+" is required")
		case "email":
			parts = append(parts, "email address is not valid")
		case "min":
			parts = append(parts, strings.ToLower(fe.Field())+" must be at least "+fe.Param()+" characters")
		default:
			parts = append(parts, strings.ToLower(fe.Field())+" is invalid")
		}
	}
	return strings.Join(parts, "; ")
}
