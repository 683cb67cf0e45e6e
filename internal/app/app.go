package app

import (
	"moneybox/internal/domain"
	"moneybox/internal/services/session"
	"moneybox/internal/viewmodels/accounts"
	"moneybox/internal/viewmodels/detail"
	"moneybox/internal/viewmodels/login"
)

// App owns the signed-in session and builds the screens' view-models.
type App struct {
	Provider domain.DataProvider
	Session  *session.Session
	DeviceID string
}

func New(provider domain.DataProvider, sess *session.Session, deviceID string) *App {
	return &App{
		Provider: provider,
		Session:  sess,
		DeviceID: deviceID,
	}
}

func (a *App) NewLogin() *login.ViewModel {
	return login.New(a.Provider, a.Session, a.DeviceID)
}

func (a *App) NewAccounts() *accounts.ViewModel {
	return accounts.New(a.Provider, a.Session)
}

func (a *App) NewDetail(account domain.ProductResponse) *detail.ViewModel {
	return detail.New(account, a.Provider, a.Session)
}

// Logout forgets the bearer token. View-models built earlier see the change
// on their next request.
func (a *App) Logout() {
	a.Session.Clear()
}
