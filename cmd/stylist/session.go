package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	domainauth "github.com/target/stylist-web/internal/domain/auth"
	"github.com/target/stylist-web/internal/service"
)

// alreadySignedIn mirrors the edge guard: auth pages send a signed-in user home.
func (cc *commandContext) alreadySignedIn() bool {
	if !cc.Client.Session.IsAuthenticated() {
		return false
	}
	cc.Nav.Navigate(cc.Ctx, service.HomePath)
	printSummary(cc, cc.Client.Session.View())
	return true
}

func runLogin(cc *commandContext, args []string) error {
	fs := cc.newFlagSet("login")
	email := fs.String("email", "", "Account email")
	password := fs.String("password", "", "Account password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cc.alreadySignedIn() {
		return nil
	}

	var err error
	if *email, err = cc.valueOrPrompt(*email, "Email", false); err != nil {
		return err
	}
	if *password, err = cc.valueOrPrompt(*password, "Password", true); err != nil {
		return err
	}
	if err := cc.Client.Flow.Login(cc.Ctx, domainauth.LoginCredentials{Email: *email, Password: *password}); err != nil {
		return sessionError(cc, err)
	}
	printSummary(cc, cc.Client.Session.View())
	return nil
}

func runSignup(cc *commandContext, args []string) error {
	fs := cc.newFlagSet("signup")
	name := fs.String("name", "", "Display name")
	email := fs.String("email", "", "Account email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cc.alreadySignedIn() {
		return nil
	}

	var (
		in  = domainauth.SignupCredentials{Name: *name, Email: *email}
		err error
	)
	if in.Name, err = cc.valueOrPrompt(in.Name, "Name", false); err != nil {
		return err
	}
	if in.Email, err = cc.valueOrPrompt(in.Email, "Email", false); err != nil {
		return err
	}
	if in.Password, err = cc.promptSecret("Password"); err != nil {
		return err
	}
	if in.ConfirmPassword, err = cc.promptSecret("Confirm password"); err != nil {
		return err
	}
	if err := cc.Client.Flow.Signup(cc.Ctx, in); err != nil {
		return sessionError(cc, err)
	}
	printSummary(cc, cc.Client.Session.View())
	return nil
}

func runLogout(cc *commandContext, _ []string) error {
	cc.Client.Flow.Logout(cc.Ctx)
	return nil
}

func runMe(cc *commandContext, args []string) error {
	fs := cc.newFlagSet("me")
	query := fs.String("query", "", "JMESPath expression applied to the output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	view := cc.Client.Flow.Mount(cc.Ctx)
	return printJSON(cc.Out, view, *query)
}

func runStatus(cc *commandContext, _ []string) error {
	view := cc.Client.Flow.Mount(cc.Ctx)
	if !view.IsAuthenticated {
		writef(cc.Out, "signed out\n")
		return nil
	}
	printSummary(cc, view)
	return nil
}

func runForgot(cc *commandContext, args []string) error {
	fs := cc.newFlagSet("forgot")
	email := fs.String("email", "", "Account email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	v, err := cc.valueOrPrompt(*email, "Email", false)
	if err != nil {
		return err
	}
	return sessionError(cc, cc.Client.Session.ForgotPassword(cc.Ctx, v))
}

func runReset(cc *commandContext, args []string) error {
	fs := cc.newFlagSet("reset")
	token := fs.String("token", "", "Reset token from the emailed link")
	if err := fs.Parse(args); err != nil {
		return err
	}
	tok, err := cc.valueOrPrompt(*token, "Reset token", false)
	if err != nil {
		return err
	}
	password, err := cc.promptSecret("New password")
	if err != nil {
		return err
	}
	confirm, err := cc.promptSecret("Confirm password")
	if err != nil {
		return err
	}
	if err := cc.Client.Session.ResetPassword(cc.Ctx, tok, password, confirm); err != nil {
		return sessionError(cc, err)
	}
	cc.Nav.Navigate(cc.Ctx, service.LoginPath)
	return nil
}

func runPassword(cc *commandContext, _ []string) error {
	var (
		in  domainauth.ChangePasswordInput
		err error
	)
	if in.CurrentPassword, err = cc.promptSecret("Current password"); err != nil {
		return err
	}
	if in.NewPassword, err = cc.promptSecret("New password"); err != nil {
		return err
	}
	if in.ConfirmPassword, err = cc.promptSecret("Confirm password"); err != nil {
		return err
	}
	return sessionError(cc, cc.Client.Session.ChangePassword(cc.Ctx, in))
}

func runProfile(cc *commandContext, args []string) error {
	fs := cc.newFlagSet("profile")
	fields := map[string]*string{
		"name":       fs.String("name", "", "Display name"),
		"first-name": fs.String("first-name", "", "First name"),
		"last-name":  fs.String("last-name", "", "Last name"),
		"phone":      fs.String("phone", "", "Phone number"),
		"location":   fs.String("location", "", "City or salon location"),
		"bio":        fs.String("bio", "", "Short bio"),
		"experience": fs.String("experience", "", "Years or level of experience"),
		"avatar":     fs.String("avatar", "", "Avatar URL"),
	}
	specialties := fs.String("specialties", "", "Comma-separated specialties")
	query := fs.String("query", "", "JMESPath expression applied to the output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	patch := profilePatch(set, fields, *specialties)
	if patch.IsEmpty() {
		writef(cc.Err, "nothing to update\n")
		return errUsage
	}

	user, err := cc.Client.Session.UpdateProfile(cc.Ctx, patch)
	if err != nil {
		return sessionError(cc, err)
	}
	return printJSON(cc.Out, user, *query)
}

// profilePatch builds a patch from the flags the user actually passed, so an explicit empty
// value clears a field while an omitted flag leaves it alone.
func profilePatch(set map[string]bool, fields map[string]*string, specialties string) domainauth.UserPatch {
	var p domainauth.UserPatch
	pick := func(name string) *string {
		if !set[name] {
			return nil
		}
		v := strings.TrimSpace(*fields[name])
		return &v
	}
	p.Name = pick("name")
	p.FirstName = pick("first-name")
	p.LastName = pick("last-name")
	p.Phone = pick("phone")
	p.Location = pick("location")
	p.Bio = pick("bio")
	p.Experience = pick("experience")
	p.Avatar = pick("avatar")
	if set["specialties"] {
		p.Specialties = []string{}
		for s := range strings.SplitSeq(specialties, ",") {
			if s = strings.TrimSpace(s); s != "" {
				p.Specialties = append(p.Specialties, s)
			}
		}
	}
	return p
}

func runWatch(cc *commandContext, _ []string) error {
	session := cc.Client.Session
	printSummary(cc, session.View())
	writef(cc.Err, "refreshing every %s; press Ctrl-C to stop\n", cc.Config.Session.RefreshInterval)

	started := time.Now()
	if err := session.Run(cc.Ctx); err != nil {
		return err
	}
	writef(cc.Err, "stopped after %s\n", time.Since(started).Round(time.Second))
	if !session.IsAuthenticated() {
		return errNotSignedIn
	}
	return nil
}

// sessionError prefers the message the session store kept for the user.
func sessionError(cc *commandContext, err error) error {
	if err == nil {
		return nil
	}
	if msg := cc.Client.Session.State().Error; msg != "" {
		return fmt.Errorf("%s", msg)
	}
	return err
}

func printSummary(cc *commandContext, v service.View) {
	if v.User == nil {
		writef(cc.Out, "signed out\n")
		return
	}
	plan := "free"
	switch {
	case v.IsPremium:
		plan = "premium"
	case v.IsTrialActive:
		plan = fmt.Sprintf("trial, %d days left", v.TrialDaysLeft)
	}
	writef(cc.Out, "signed in as %s <%s> (%s)\n", v.User.Name, v.User.Email, plan)
}
