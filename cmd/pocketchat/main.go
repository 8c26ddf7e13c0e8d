// ABOUTME: Entry point for the pocketchat CLI
// ABOUTME: Drives register/login/messenger/wall/profile flows against the local store

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/pocketchat/pocketchat/internal/chat"
	"github.com/pocketchat/pocketchat/internal/config"
	"github.com/pocketchat/pocketchat/internal/directory"
	"github.com/pocketchat/pocketchat/internal/gallery"
	"github.com/pocketchat/pocketchat/internal/profile"
	"github.com/pocketchat/pocketchat/internal/store"
	"github.com/pocketchat/pocketchat/internal/wall"
)

const banner = `
                 _        _       _           _
 _ __   ___  ___| | _____| |_ ___| |__   __ _| |_
| '_ \ / _ \/ __| |/ / _ \ __/ __| '_ \ / _' | __|
| |_) | (_) \__ \   <  __/ || (__| | | | (_| | |_
| .__/ \___/|___/_|\_\___|\__\___|_| |_|\__,_|\__|
|_|
`

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app, err := newApp()
	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}
	defer app.store.Close()

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "register":
		err = app.cmdRegister(ctx, args)
	case "login":
		err = app.cmdLogin(ctx, args)
	case "users":
		err = app.cmdUsers(ctx)
	case "send":
		err = app.cmdSend(ctx, args)
	case "history":
		err = app.cmdHistory(ctx, args)
	case "wall":
		err = app.cmdWall(ctx, args)
	case "profile":
		err = app.cmdProfile(ctx, args)
	case "avatar":
		err = app.cmdAvatar(ctx, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		color.Red("Error: %v\n", userMessage(err))
		os.Exit(1)
	}
}

func printUsage() {
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	cyan.Print(banner)
	fmt.Println()
	fmt.Println("Usage: pocketchat <command> [args]")
	fmt.Println()
	yellow.Println("Commands:")
	fmt.Println("  register <name> <email>       Create an account (prompts for password)")
	fmt.Println("  login <email>                 Log in and list people to message")
	fmt.Println("  users                         List all registered accounts")
	fmt.Println("  send <from> <to> <text...>    Send a direct message")
	fmt.Println("  history <userA> <userB>       Show a conversation, oldest first")
	fmt.Println("  wall                          Show the public comment wall")
	fmt.Println("  wall post <user> <text...>    Post a comment to the wall")
	fmt.Println("  profile show <account-id>     Show an account's bio and address")
	fmt.Println("  profile set <account-id>      Edit bio and address (prompts)")
	fmt.Println("  avatar <account-id> <image>   Pick a profile image")
	fmt.Println()
	yellow.Println("Environment:")
	fmt.Println("  POCKETCHAT_CONFIG             Config file path (default: ./pocketchat.yaml)")
}

// app wires the single shared store into every service.
type app struct {
	store     *store.SQLiteStore
	directory *directory.Service
	chat      *chat.Service
	wall      *wall.Service
	profile   *profile.Service
	picker    gallery.Picker
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger := setupLogger(cfg.Logging)

	st, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("initializing store: %w", err)
	}

	return &app{
		store:     st,
		directory: directory.New(st, logger),
		chat:      chat.New(st, logger),
		wall:      wall.New(st, logger),
		profile:   profile.New(st, logger),
		picker:    gallery.NewFilePicker(cfg.Data.Dir, logger),
	}, nil
}

func loadConfig() (*config.Config, error) {
	path := os.Getenv("POCKETCHAT_CONFIG")
	if path == "" {
		path = "pocketchat.yaml"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default(), nil
	}
	return config.Load(path)
}

func (a *app) cmdRegister(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: pocketchat register <name> <email>")
	}
	name, email := args[0], args[1]

	password, err := prompt("Password: ")
	if err != nil {
		return err
	}
	confirm, err := prompt("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	id, err := a.directory.Register(ctx, name, email, password)
	if err != nil {
		return err
	}

	color.Green("Registration complete. You can now log in.")
	fmt.Printf("Account id: %d\n", id)
	return nil
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: pocketchat login <email>")
	}

	password, err := prompt("Password: ")
	if err != nil {
		return err
	}

	account, err := a.directory.Authenticate(ctx, args[0], password)
	if err != nil {
		return err
	}

	color.Green("Welcome back, %s!", account.Name)
	if account.ImageRef != "" {
		fmt.Printf("Avatar: %s\n", account.ImageRef)
	}

	others, err := a.directory.ListOthers(ctx, account.ID)
	if err != nil {
		return err
	}
	if len(others) == 0 {
		fmt.Println("No one else is registered yet.")
		return nil
	}

	fmt.Println()
	fmt.Println("Message someone:")
	printAccounts(others)
	return nil
}

func (a *app) cmdUsers(ctx context.Context) error {
	accounts, err := a.directory.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(accounts) == 0 {
		fmt.Println("No accounts registered.")
		return nil
	}
	printAccounts(accounts)
	return nil
}

func printAccounts(accounts []*store.Account) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL")
	for _, a := range accounts {
		fmt.Fprintf(w, "%d\t%s\t%s\n", a.ID, a.Name, a.Email)
	}
	w.Flush()
}

func (a *app) cmdSend(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: pocketchat send <from> <to> <text...>")
	}

	if err := a.chat.Send(ctx, args[0], args[1], strings.Join(args[2:], " ")); err != nil {
		return err
	}
	color.Green("Sent.")
	return nil
}

func (a *app) cmdHistory(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: pocketchat history <userA> <userB>")
	}

	messages, err := a.chat.History(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		fmt.Println("No messages yet.")
		return nil
	}

	gray := color.New(color.FgHiBlack)
	cyan := color.New(color.FgCyan)
	for _, m := range messages {
		gray.Printf("%s ", m.CreatedAt.Local().Format("2006-01-02 15:04"))
		cyan.Printf("%s", m.Sender)
		fmt.Printf(": %s\n", m.Body)
	}
	return nil
}

func (a *app) cmdWall(ctx context.Context, args []string) error {
	if len(args) >= 1 && args[0] == "post" {
		if len(args) < 3 {
			return fmt.Errorf("usage: pocketchat wall post <user> <text...>")
		}
		if err := a.wall.Post(ctx, args[1], strings.Join(args[2:], " ")); err != nil {
			return err
		}
		color.Green("Posted.")
		return nil
	}
	if len(args) >= 1 && args[0] != "list" {
		return fmt.Errorf("usage: pocketchat wall [list|post <user> <text...>]")
	}

	comments, err := a.wall.List(ctx)
	if err != nil {
		return err
	}
	if len(comments) == 0 {
		fmt.Println("The wall is empty.")
		return nil
	}

	magenta := color.New(color.FgMagenta, color.Bold)
	for _, c := range comments {
		magenta.Printf("%s: ", c.Author)
		fmt.Println(c.Body)
	}
	return nil
}

func (a *app) cmdProfile(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: pocketchat profile <show|set> <account-id>")
	}

	accountID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid account id %q", args[1])
	}

	switch args[0] {
	case "show":
		p, err := a.profile.Load(ctx, accountID)
		if errors.Is(err, store.ErrNotFound) {
			fmt.Println("No profile saved yet.")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("Bio:     %s\n", p.Bio)
		fmt.Printf("Address: %s\n", p.Address)
		return nil

	case "set":
		bio, err := prompt("Bio: ")
		if err != nil {
			return err
		}
		address, err := prompt("Address: ")
		if err != nil {
			return err
		}
		if err := a.profile.Save(ctx, accountID, bio, address); err != nil {
			return err
		}
		color.Green("Bio and address updated.")
		return nil

	default:
		return fmt.Errorf("usage: pocketchat profile <show|set> <account-id>")
	}
}

func (a *app) cmdAvatar(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: pocketchat avatar <account-id> <image-path>")
	}

	accountID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid account id %q", args[0])
	}

	ref, err := a.picker.Pick(ctx, args[1])
	if errors.Is(err, gallery.ErrCancelled) {
		fmt.Println("Selection cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	if err := a.directory.SetImageReference(ctx, accountID, ref); err != nil {
		return err
	}
	color.Green("Profile picture updated.")
	return nil
}

func prompt(label string) (string, error) {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// userMessage maps typed failures to the notices the screens showed.
// Anything unrecognized surfaces as-is.
func userMessage(err error) string {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.Error()
	case errors.Is(err, store.ErrDuplicateEmail):
		return "email already registered"
	case errors.Is(err, store.ErrNotFound):
		return "no matching account"
	default:
		return err.Error()
	}
}
