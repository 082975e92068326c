package webapp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sardorbek/darsxona/backend"
	"github.com/sardorbek/darsxona/core"
	"github.com/sardorbek/darsxona/core/session"
)

type authApi struct {
	deps *pageDeps
}

func registerAuthRoutes(e *echo.Echo, deps *pageDeps) {
	api := authApi{deps: deps}

	e.GET(session.LoginPath, api.loginPage)
	e.POST(session.LoginPath, api.login)
	e.POST(session.LogoutPath, api.logout)
	e.GET(session.RegisterPath, api.registerPage)
	e.POST(session.RegisterPath, api.register)
	e.GET(session.DashboardPath, api.dashboard)
}

func (api *authApi) loginPage(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"detail": "authentication required"})
}

// registerPage serves the register form's lookups; the gate already ensured
// the actor may create users.
func (api *authApi) registerPage(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"roles": session.AllRoles})
}

func (api *authApi) login(ctx echo.Context) error {
	var data backend.Credentials
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Credentials")
	}
	if err := data.Validate(api.deps.validate); err != nil {
		return err
	}

	res, err := api.deps.client.Login(reqCtx(ctx), data)
	if err != nil {
		if errors.Cause(err) == backend.ErrInvalidCredentials {
			return core.NewValidationError(backend.ErrInvalidCredentials)
		}
		return errors.Wrap(err, "logging in")
	}

	role, ok := session.ParseRole(res.Role)
	if !ok {
		return errors.Errorf("backend returned unknown role %q", res.Role)
	}
	sess := session.Session{
		Token:  res.AccessToken,
		Role:   role,
		UserID: session.TokenUserID(res.AccessToken),
	}
	if err = api.deps.sessions.Save(ctx.Response(), ctx.Request(), sess); err != nil {
		return errors.Wrap(err, "saving session")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"role": role})
}

func (api *authApi) logout(ctx echo.Context) error {
	if err := api.deps.sessions.Clear(ctx.Response(), ctx.Request()); err != nil {
		return errors.Wrap(err, "clearing session")
	}
	return ctx.Redirect(http.StatusSeeOther, session.LoginPath)
}

func (api *authApi) register(ctx echo.Context) error {
	var data backend.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUser")
	}
	if err := data.Validate(api.deps.validate); err != nil {
		return err
	}

	usr, err := api.deps.client.Register(reqCtx(ctx), contextSession(ctx), data)
	if err != nil {
		return errors.Wrap(err, "registering user")
	}
	return ctx.JSON(http.StatusCreated, usr)
}

// navItem is a dashboard menu entry; Roles only hints what the menu shows,
// the gate itself needs nothing beyond a live token for dashboard pages.
type navItem struct {
	Path  string         `json:"path"`
	Title string         `json:"title"`
	roles []session.Role `json:"-"`
}

var navItems = []navItem{
	{Path: "/dashboard/kurslar", Title: "Kurslar", roles: []session.Role{session.RoleAdmin, session.RoleManager}},
	{Path: "/dashboard/guruhlar", Title: "Guruhlar", roles: []session.Role{session.RoleAdmin, session.RoleManager, session.RoleTeacher}},
	{Path: "/dashboard/talabalar", Title: "Talabalar", roles: []session.Role{session.RoleAdmin, session.RoleManager}},
	{Path: "/dashboard/tolovlar", Title: "To'lovlar", roles: []session.Role{session.RoleAdmin, session.RoleManager, session.RoleStudent}},
	{Path: "/dashboard/oylik", Title: "Oylik", roles: []session.Role{session.RoleAdmin, session.RoleManager, session.RoleTeacher}},
	{Path: "/dashboard/jadval", Title: "Dars jadvali", roles: session.AllRoles},
	{Path: "/dashboard/testlar", Title: "Testlar", roles: session.AllRoles},
	{Path: "/dashboard/davomat", Title: "Davomat", roles: []session.Role{session.RoleAdmin, session.RoleManager, session.RoleTeacher}},
	{Path: "/dashboard/hisobot", Title: "Hisobotlar", roles: []session.Role{session.RoleAdmin, session.RoleManager}},
	{Path: "/dashboard/foydalanuvchilar", Title: "Foydalanuvchilar", roles: []session.Role{session.RoleAdmin, session.RoleManager}},
	{Path: "/dashboard/profil", Title: "Profil", roles: session.AllRoles},
}

func (api *authApi) dashboard(ctx echo.Context) error {
	sess := contextSession(ctx)
	pages := make([]navItem, 0, len(navItems))
	for _, item := range navItems {
		for _, r := range item.roles {
			if r == sess.Role {
				pages = append(pages, item)
				break
			}
		}
	}
	return ctx.JSON(http.StatusOK, echo.Map{"role": sess.Role, "pages": pages})
}
