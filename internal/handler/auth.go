package handler

import (
	"net/http"
	"strings"

	"github.com/ctasbihas/portfolio/internal/api"
	"github.com/ctasbihas/portfolio/internal/notice"
	"github.com/ctasbihas/portfolio/internal/server"
)

func LoginPageHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svr.Auth.IsSignedOn(r) {
			svr.Redirect(w, r, http.StatusFound, "/dashboard")
			return
		}
		svr.Render(w, r, http.StatusOK, "login.html", map[string]interface{}{"Title": "Login"})
	}
}

func SubmitLoginHandler(svr server.Server, client *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rq := api.LoginRq{
			Email:    strings.TrimSpace(r.FormValue("email")),
			Password: r.FormValue("password"),
		}
		fail := func(status int, msg string) {
			svr.Render(w, r, status, "login.html", map[string]interface{}{
				"Title":   "Login",
				"Email":   rq.Email,
				"Notices": []notice.Notice{notice.Error(msg)},
			})
		}
		if rq.Email == "" || rq.Password == "" {
			fail(http.StatusBadRequest, "Email and password are required")
			return
		}
		token, err := client.Login(r.Context(), rq)
		if err != nil {
			if !api.IsAPIError(err) {
				svr.Log(err, "unable to reach login endpoint")
				fail(http.StatusBadGateway, "Network error")
				return
			}
			fail(http.StatusUnauthorized, api.Message(err, "Login failed"))
			return
		}
		if err := svr.Auth.SignIn(w, r, rq.Email, token); err != nil {
			svr.Log(err, "unable to sign in")
			fail(http.StatusInternalServerError, "Login failed")
			return
		}
		svr.Flash(w, r, notice.Success("Logged in"))
		svr.Redirect(w, r, http.StatusSeeOther, "/dashboard")
	}
}

func SignupPageHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svr.Render(w, r, http.StatusOK, "signup.html", map[string]interface{}{"Title": "Sign Up"})
	}
}

func SubmitSignupHandler(svr server.Server, client *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rq := api.SignupRq{
			FullName: strings.TrimSpace(r.FormValue("fullName")),
			Email:    strings.TrimSpace(r.FormValue("email")),
			Password: r.FormValue("password"),
		}
		fail := func(status int, msg string) {
			svr.Render(w, r, status, "signup.html", map[string]interface{}{
				"Title":    "Sign Up",
				"FullName": rq.FullName,
				"Email":    rq.Email,
				"Notices":  []notice.Notice{notice.Error(msg)},
			})
		}
		if !svr.IsEmail(rq.Email) || rq.Password == "" {
			fail(http.StatusBadRequest, "A valid email and a password are required")
			return
		}
		if err := client.Signup(r.Context(), rq); err != nil {
			if !api.IsAPIError(err) {
				svr.Log(err, "unable to reach signup endpoint")
				fail(http.StatusBadGateway, "Network error")
				return
			}
			fail(http.StatusBadRequest, api.Message(err, "Signup failed"))
			return
		}
		svr.Flash(w, r, notice.Success("Account created. Please login."))
		svr.Redirect(w, r, http.StatusSeeOther, "/login")
	}
}

func LogoutHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svr.Auth.SignOut(w, r); err != nil {
			svr.Log(err, "unable to sign out")
		}
		svr.Redirect(w, r, http.StatusSeeOther, "/")
	}
}
