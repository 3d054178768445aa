package cli

import (
	"context"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username, email and password and creates a new
// account. The backend logs the new user in by setting the session cookie
// on the register response.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.Register(ctx, username, email, password)
	if err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	a.user = user
	printlnFn("Welcome,", user.Username+"!")
	return nil
}

// Login prompts for credentials, authenticates and captures the session
// identity via /auth/me.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, email, password); err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	user, err := a.auth.Me(ctx)
	if err != nil {
		printlnFn("Login succeeded but fetching identity failed:", err.Error())
		return err
	}

	a.user = user
	printlnFn("Welcome back,", user.Username+"!")
	return nil
}

// Logout ends the session and drops the cached identity. The open
// repository, if any, is closed as well.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	a.user = nil
	_ = a.CloseRepo(ctx)
	printlnFn("Logged out.")
	return nil
}

// Whoami prints the current session identity.
func (a *App) Whoami(ctx context.Context) error {
	user, err := a.auth.Me(ctx)
	if err != nil {
		printlnFn("Not logged in:", err.Error())
		return err
	}
	a.user = user
	printlnFn(user.Username, "<"+user.Email+">")
	return nil
}
