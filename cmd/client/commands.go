package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-rest-session/internal/adapter"
	"github.com/MKhiriev/go-rest-session/models"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errSessionExpired = errors.New("session expired")
	errMissingLogin   = errors.New("-login and -password are required")
)

const usage = `usage: %s [flags] <command> [command flags]

commands:
  login    -login <login> -password <password>
  logout
  me
  list     [-page N] [-limit N] [-sort field] [-desc] [-status a,b] [-tags a,b] [-q text]
  token    [-copy]
  version
`

// commandArgs returns the arguments left after the global flags were
// parsed by the config package.
func commandArgs() []string {
	return flag.Args()
}

type cli struct {
	api    *adapter.API
	out    io.Writer
	copyFn func(string) error
}

func (c *cli) run(ctx context.Context, program string, args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(c.out, usage, program)
		return nil
	}

	name, rest := args[0], args[1:]
	switch name {
	case "login":
		return c.login(ctx, rest)
	case "logout":
		return c.logout(ctx)
	case "me":
		return c.me(ctx)
	case "list":
		return c.list(ctx, rest)
	case "token":
		return c.token(rest)
	case "version":
		printBuildInfo()
		return nil
	case "help", "-h", "-help":
		fmt.Fprintf(c.out, usage, program)
		return nil
	default:
		return fmt.Errorf("%w %q", errUnknownCommand, name)
	}
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

func (c *cli) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login", c.out)
	login := fs.String("login", "", "account login")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *login == "" || *password == "" {
		return errMissingLogin
	}

	user, err := c.api.SignIn(ctx, models.Credentials{Login: *login, Password: *password})
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, titleStyle.Render("Signed in"))
	fmt.Fprintln(c.out, renderUser(user))
	return nil
}

func (c *cli) logout(ctx context.Context) error {
	if err := c.api.SignOut(ctx); err != nil {
		return err
	}
	fmt.Fprintln(c.out, helpStyle.Render("Signed out"))
	return nil
}

func (c *cli) me(ctx context.Context) error {
	user, err := c.api.CurrentUser(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, renderUser(user))
	return nil
}

func (c *cli) list(ctx context.Context, args []string) error {
	fs := newFlagSet("list", c.out)
	page := fs.Int("page", 1, "page number, starting at 1")
	limit := fs.Int("limit", 10, "items per page")
	sortField := fs.String("sort", "", "sort field: id, name, price, status or createdAt")
	desc := fs.Bool("desc", false, "sort in descending order")
	status := fs.String("status", "", "comma-separated statuses")
	tags := fs.String("tags", "", "comma-separated tags")
	search := fs.String("q", "", "search in name and slug")
	if err := fs.Parse(args); err != nil {
		return err
	}

	items, err := c.api.ListItems(ctx, listQuery(*page, *limit, *sortField, *desc, *status, *tags, *search))
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, renderItems(items))
	return nil
}

func listQuery(page, limit int, sortField string, desc bool, status, tags, search string) models.ListQuery {
	q := models.ListQuery{
		Pagination: &models.Pagination{Current: page, PageSize: limit},
		Filters:    models.Filters{},
	}

	if sortField != "" {
		order := models.SortAscend
		if desc {
			order = models.SortDescend
		}
		q.Sorter = &models.Sorter{Field: sortField, Order: order}
	}
	if values := splitFlag(status); len(values) > 0 {
		q.Filters["status"] = values
	}
	if values := splitFlag(tags); len(values) > 0 {
		q.Filters["tags[]"] = values
	}
	if search != "" {
		q.Extra = map[string]any{"q": search}
	}

	return q
}

func splitFlag(raw string) models.FilterValue {
	var out models.FilterValue
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// token prints the access token of the current session, or copies it.
func (c *cli) token(args []string) error {
	fs := newFlagSet("token", c.out)
	copyToClipboard := fs.Bool("copy", false, "copy the access token to the clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}

	claims, err := c.api.SessionClaims()
	if err != nil {
		return err
	}

	if *copyToClipboard {
		if err := c.copyFn(claims.SignedString); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(c.out, helpStyle.Render(fmt.Sprintf("Access token of user %d (%s) copied", claims.UserID, claims.Role)))
		return nil
	}

	fmt.Fprintln(c.out, claims.SignedString)
	return nil
}
