package login

import (
	"context"
	"strings"

	"github.com/luno/jettison/errors"
	"github.com/luno/jettison/log"

	"moneybox/internal/domain"
	"moneybox/internal/observable"
	"moneybox/internal/viewmodels/inflight"
)

// State is the position of the login state machine.
type State string

const (
	StateIdle       State = "Idle"
	StateValidating State = "Validating"
	StateSubmitting State = "Submitting"
	StateLoggedIn   State = "LoggedIn"
	StateFailed     State = "Failed"
)

var (
	ErrEmptyCredentials = &domain.ValidationError{Message: "Email and password cannot be empty"}
	ErrEmptyEmail       = &domain.ValidationError{Message: "Email cannot be empty"}
	ErrEmptyPassword    = &domain.ValidationError{Message: "Password cannot be empty"}
)

// ViewModel drives the login screen.
type ViewModel struct {
	provider domain.DataProvider
	tokens   domain.TokenStore
	deviceID string
	guard    inflight.Guard

	State    *observable.Value[State]
	Loading  *observable.Value[bool]
	Err      *observable.Value[error]
	LoggedIn *observable.Value[bool]
	UserName *observable.Value[string]
}

// New returns a ViewModel that signs in through provider and records the
// bearer token in tokens. deviceID is sent with each login request.
func New(provider domain.DataProvider, tokens domain.TokenStore, deviceID string) *ViewModel {
	return &ViewModel{
		provider: provider,
		tokens:   tokens,
		deviceID: deviceID,
		State:    observable.New(StateIdle),
		Loading:  observable.New(false),
		Err:      observable.New[error](nil),
		LoggedIn: observable.New(false),
		UserName: observable.New(""),
	}
}

// Login validates the credentials and, if they pass, issues one login
// request. The returned channel is closed once the outcome is published;
// validation failures return an already closed channel.
func (vm *ViewModel) Login(ctx context.Context, email, password string) <-chan struct{} {
	done, ok := vm.guard.Begin()
	if !ok {
		return done
	}

	vm.Loading.Set(true)
	vm.Err.Set(nil)
	vm.State.Set(StateValidating)

	if err := validate(email, password); err != nil {
		vm.Loading.Set(false)
		vm.Err.Set(err)
		vm.State.Set(StateFailed)
		vm.guard.End()
		return done
	}

	vm.State.Set(StateSubmitting)
	req := domain.LoginRequest{Email: email, Password: password, Idfa: vm.deviceID}

	go func() {
		defer vm.guard.End()
		resp, err := vm.provider.Login(ctx, req)
		vm.complete(ctx, resp, err)
	}()
	return done
}

func (vm *ViewModel) complete(ctx context.Context, resp domain.LoginResponse, err error) {
	vm.Loading.Set(false)

	if err != nil {
		log.Error(ctx, errors.Wrap(err, "login failed"))
		vm.Err.Set(err)
		vm.State.Set(StateFailed)
		return
	}

	vm.tokens.SetToken(resp.Session.BearerToken)
	vm.UserName.Set(DisplayName(resp.User))
	vm.LoggedIn.Set(true)
	vm.State.Set(StateLoggedIn)
	log.Info(ctx, "login succeeded")
}

// DisplayName joins first and last name with a space and trims the result.
// Absent names count as empty.
func DisplayName(u domain.User) string {
	var first, last string
	if u.FirstName != nil {
		first = *u.FirstName
	}
	if u.LastName != nil {
		last = *u.LastName
	}
	return strings.TrimSpace(first + " " + last)
}

func validate(email, password string) error {
	switch {
	case email == "" && password == "":
		return ErrEmptyCredentials
	case email == "":
		return ErrEmptyEmail
	case password == "":
		return ErrEmptyPassword
	}
	return nil
}
