package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/target/stylist-web/config"
	"github.com/target/stylist-web/internal/adapters/terminal"
	"github.com/target/stylist-web/internal/bootstrap"
	"github.com/target/stylist-web/internal/observability/notify"
)

type commandFn func(cc *commandContext, args []string) error

type command struct {
	name        string
	description string
	// page is where the command runs in the app; 401 handling and the login check key off it.
	page string
	// protected commands need a signed-in session.
	protected bool
	// offline commands never contact the backend at start.
	offline bool
	run     commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig

	Out io.Writer
	Err io.Writer
	In  io.Reader

	Creds  *bootstrap.Credentials
	Client *bootstrap.Client
	Nav    *terminal.Navigator

	redis  redis.UniversalClient
	reader *bufio.Reader
}

// errNotSignedIn is returned by protected commands without a session.
var errNotSignedIn = errors.New("not signed in; run `stylist login` first")

// errUsage marks argument errors; main exits with status 2 for them.
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code) //nolint:forbidigo // CLI must propagate command status to callers
}

// execute runs one command and returns the process exit status.
func execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) < 1 {
		printUsage(errOut)
		return 2
	}
	cmd, ok := commands()[args[0]]
	if !ok {
		writef(errOut, "unknown command %q\n\n", args[0])
		printUsage(errOut)
		return 2
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		writef(errOut, "load config: %v\n", err)
		return 1
	}
	level := slog.LevelWarn
	if cfg.IsDev {
		level = slog.LevelDebug
	}
	logger := bootstrap.NewLogger(errOut, level)

	cc := &commandContext{
		Ctx:    ctx,
		Logger: logger,
		Config: cfg,
		Out:    out,
		Err:    errOut,
		In:     in,
		reader: bufio.NewReader(in),
	}
	defer cc.close()
	if err := cc.open(cmd); err != nil {
		writef(errOut, "stylist: %v\n", err)
		return 1
	}

	if err := cmd.run(cc, args[1:]); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			return 2
		}
		writef(errOut, "stylist: %v\n", err)
		return 1
	}
	return 0
}

// open wires the profile and client for cmd, restores the saved session and validates it.
func (cc *commandContext) open(cmd command) error {
	var redisClient redis.UniversalClient
	if cc.Config.Credential.Store == config.CredentialBackendRedis {
		client, err := bootstrap.ConnectRedis(cc.Ctx, bootstrap.RedisOptions{Config: cc.Config.Redis, Logger: cc.Logger})
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		redisClient = client
	}

	cc.redis = redisClient

	creds, err := bootstrap.BuildCredentials(cc.Ctx, bootstrap.CredentialDeps{
		Config: &cc.Config,
		Redis:  redisClient,
		Logger: cc.Logger,
	})
	if err != nil {
		return err
	}
	cc.Creds = creds
	if creds.Profile != nil {
		if n, perr := creds.Profile.Purge(cc.Ctx); perr != nil {
			cc.Logger.WarnContext(cc.Ctx, "purge expired profile entries", "error", perr)
		} else if n > 0 {
			cc.Logger.DebugContext(cc.Ctx, "purged expired profile entries", "count", n)
		}
	}

	cc.Nav = terminal.NewNavigator(cc.Err, cmd.page)
	client, err := bootstrap.BuildClient(bootstrap.ClientDeps{
		Config:      &cc.Config,
		Credentials: creds,
		Navigator:   cc.Nav,
		Notifier:    notify.WriterNotifier{Out: cc.Err},
		Logger:      cc.Logger,
	})
	if err != nil {
		return err
	}
	cc.Client = client

	if err := client.Session.Restore(cc.Ctx); err != nil {
		cc.Logger.WarnContext(cc.Ctx, "restore session", "error", err)
	}
	if cmd.offline {
		return nil
	}
	if err := client.Session.Bootstrap(cc.Ctx); err != nil {
		return fmt.Errorf("validate session: %w", err)
	}
	if cmd.protected && !client.Session.IsAuthenticated() {
		return errNotSignedIn
	}
	return nil
}

func (cc *commandContext) close() {
	if cc.Client != nil {
		cc.Client.Close()
	}
	if err := cc.Creds.Close(); err != nil {
		cc.Logger.WarnContext(cc.Ctx, "close profile", "error", err)
	}
	if cc.redis != nil {
		if err := cc.redis.Close(); err != nil {
			cc.Logger.WarnContext(cc.Ctx, "close redis", "error", err)
		}
	}
}

func commands() map[string]command {
	list := []command{
		{name: "login", description: "Sign in with email and password", page: "/login", run: runLogin},
		{name: "signup", description: "Create an account and sign in", page: "/signup", run: runSignup},
		{name: "logout", description: "Sign out and forget the stored credential", page: "/", run: runLogout},
		{name: "me", description: "Show the signed-in account", page: "/profile", protected: true, run: runMe},
		{name: "status", description: "Show whether a session is active and its trial state", page: "/", run: runStatus},
		{name: "forgot", description: "Request a password reset email", page: "/forgot-password", run: runForgot},
		{name: "reset", description: "Set a new password with a reset token", page: "/reset-password", run: runReset},
		{name: "profile", description: "Update profile fields", page: "/profile", protected: true, run: runProfile},
		{name: "password", description: "Change the account password", page: "/profile", protected: true, run: runPassword},
		{name: "workshops", description: "List, inspect and register for workshops", page: "/workshops", protected: true, run: runWorkshops},
		{name: "tutorials", description: "Browse tutorials, track progress and manage favorites", page: "/tutorials", protected: true, run: runTutorials},
		{name: "gallery", description: "Browse the hairstyle gallery and manage favorites", page: "/gallery", protected: true, run: runGallery},
		{name: "posts", description: "Read, post, comment on and like community posts", page: "/community", protected: true, run: runPosts},
		{name: "watch", description: "Keep the session fresh until interrupted", page: "/", protected: true, run: runWatch},
		{name: "token", description: "Decode the stored credential (claims are not verified)", page: "/", offline: true, run: runToken},
	}
	out := make(map[string]command, len(list))
	for _, c := range list {
		out[c.name] = c
	}
	return out
}

func printUsage(w io.Writer) {
	writef(w, "Usage: stylist <command> [flags]\n\n")
	writef(w, "Available commands:\n")
	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		writef(w, "  %-12s %s\n", name, cmds[name].description)
	}
}

func writef(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
