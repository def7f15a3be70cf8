package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"argentbank/internal/config"
	"argentbank/internal/logger"
	"argentbank/pkg/accounts"
	"argentbank/pkg/api"
	"argentbank/pkg/session"
	"argentbank/pkg/store"
)

const usage = `usage: argentbank <command>

commands:
  login -email <email> -password <password> [-remember]
  profile
  set-username <name>
  logout
  status
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.LoadClient()
	log := logger.Load()

	st, err := store.OpenSQLite(cfg.StateDBPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot open state db:", err)
		os.Exit(1)
	}
	defer st.Close()

	manager := session.NewManager(api.NewClient(cfg.APIBaseURL), st, log)
	if err := manager.Initialize(); err != nil {
		fmt.Fprintln(os.Stderr, "cannot restore session:", err)
		os.Exit(1)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		email := fs.String("email", "", "account email")
		password := fs.String("password", "", "account password")
		remember := fs.Bool("remember", false, "keep the session across restarts")
		fs.Parse(os.Args[2:])

		if err := manager.Login(ctx, *email, *password, *remember); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		report(manager, "signed in")

	case "profile":
		if err := manager.FetchProfile(ctx); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		s := report(manager, "")
		if s.User != nil {
			fmt.Printf("Welcome back, %s %s!\n\n", s.User.FirstName, s.User.LastName)
			for _, a := range accounts.Demo() {
				fmt.Println(a)
			}
		}

	case "set-username":
		if len(os.Args) < 3 {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		if err := manager.UpdateUserName(ctx, os.Args[2]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		report(manager, "user name updated")

	case "logout":
		if err := manager.Logout(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println("signed out")

	case "status":
		report(manager, "")

	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

// report prints the session outcome and exits non-zero when the last
// operation left an error behind.
func report(m *session.Manager, okMsg string) session.State {
	s := m.Snapshot()
	if s.Err != "" {
		fmt.Fprintln(os.Stderr, s.Err)
		os.Exit(1)
	}
	if okMsg != "" {
		fmt.Println(okMsg)
	}
	if s.IsAuthenticated {
		name := s.DisplayName
		if name == "" {
			name = "(profile not fetched)"
		}
		fmt.Println("authenticated as:", name)
	} else {
		fmt.Println("not authenticated")
	}
	return s
}
