package client

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"inventory/internal/domain/entity"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

const usage = `Usage: inventoryctl [-server URL] [-state FILE] <command> [flags]

Commands:
  register   create an account and log in
  login      log in and store the session token
  logout     revoke the session token and remove local state
  me         show the logged in user
  list       list devices; filter flags are saved for the next list
  add        add a device
  edit       update a device: edit <id> [flags]
  rm         delete a device: rm <id>
  toggle     flip a device's in use flag: toggle <id>
  filters    show the saved filters, or "filters clear" to remove them
`

var (
	errNotLoggedIn = errors.New("not logged in, run \"inventoryctl login\" first")
	errMissingID   = errors.New("missing device id")
	errNoChanges   = errors.New("nothing to update, pass at least one of -name, -location, -date, -in-use")
)

// App runs one client command per invocation.
type App struct {
	serverURL    string
	store        *Store
	httpClient   *http.Client
	in           *bufio.Reader
	out          io.Writer
	errOut       io.Writer
	readPassword func(fd int) ([]byte, error)
	stdinFd      int

	success *color.Color
	failure *color.Color
	muted   *color.Color
}

type Option func(*App)

func WithHTTPClient(client *http.Client) Option {
	return func(a *App) { a.httpClient = client }
}

// WithIO replaces stdin, stdout and stderr.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(a *App) {
		a.in = bufio.NewReader(in)
		a.out = out
		a.errOut = errOut
	}
}

// WithPasswordReader replaces the terminal password reader.
func WithPasswordReader(read func(fd int) ([]byte, error)) Option {
	return func(a *App) { a.readPassword = read }
}

func NewApp(serverURL string, store *Store, opts ...Option) *App {
	app := &App{
		serverURL:    serverURL,
		store:        store,
		in:           bufio.NewReader(os.Stdin),
		out:          os.Stdout,
		errOut:       os.Stderr,
		readPassword: term.ReadPassword,
		stdinFd:      int(os.Stdin.Fd()),
		success:      color.New(color.FgGreen),
		failure:      color.New(color.FgRed, color.Bold),
		muted:        color.New(color.Faint),
	}
	for _, opt := range opts {
		opt(app)
	}

	return app
}

// Usage prints the command overview.
func (a *App) Usage() {
	fmt.Fprint(a.errOut, usage)
}

// Run executes the command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.Usage()

		return flag.ErrHelp
	}

	state, err := a.store.Load()
	if err != nil {
		return err
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		return a.register(ctx, state, rest)
	case "login":
		return a.login(ctx, state, rest)
	case "logout":
		return a.logout(ctx, state)
	case "me":
		return a.authed(state, func(api *APIClient) error { return a.me(ctx, api) })
	case "list":
		return a.authed(state, func(api *APIClient) error { return a.list(ctx, api, state, rest) })
	case "add":
		return a.authed(state, func(api *APIClient) error { return a.add(ctx, api, rest) })
	case "edit":
		return a.authed(state, func(api *APIClient) error { return a.edit(ctx, api, rest) })
	case "rm":
		return a.authed(state, func(api *APIClient) error { return a.remove(ctx, api, rest) })
	case "toggle":
		return a.authed(state, func(api *APIClient) error { return a.toggle(ctx, api, rest) })
	case "filters":
		return a.filters(state, rest)
	case "help", "-h", "-help", "--help":
		a.Usage()

		return nil
	default:
		a.Usage()

		return errors.Errorf("unknown command %q", cmd)
	}
}

// Report prints err the way the server phrased it, field errors included.
func (a *App) Report(err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		a.failure.Fprintf(a.errOut, "Error: %s\n", apiErr.Message)
		for _, line := range apiErr.FieldLines() {
			fmt.Fprintf(a.errOut, "  - %s\n", line)
		}

		return
	}

	a.failure.Fprintf(a.errOut, "Error: %v\n", err)
}

func (a *App) newAPIClient(token string) (*APIClient, error) {
	api, err := NewAPIClient(a.serverURL, a.httpClient)
	if err != nil {
		return nil, err
	}
	api.SetToken(token)

	return api, nil
}

// authed runs fn with a client carrying the saved token. A token the server
// rejects is dropped from the state.
func (a *App) authed(state *State, fn func(api *APIClient) error) error {
	if state.Token == "" {
		return errNotLoggedIn
	}

	api, err := a.newAPIClient(state.Token)
	if err != nil {
		return err
	}

	err = fn(api)
	if IsUnauthenticated(err) {
		state.Token = ""
		if saveErr := a.store.Save(state); saveErr != nil {
			return errors.Wrap(saveErr, err.Error())
		}
	}

	return err
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)

	return fs
}

func (a *App) register(ctx context.Context, state *State, args []string) error {
	fs := a.newFlagSet("register")
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	params := RegisterParams{}
	var err error
	if params.Name, err = a.valueOrPrompt(*name, "Name"); err != nil {
		return err
	}
	if params.Email, err = a.valueOrPrompt(*email, "Email"); err != nil {
		return err
	}
	params.Password = *password
	params.PasswordConfirmation = *password
	if params.Password == "" {
		if params.Password, err = a.promptPassword("Password"); err != nil {
			return err
		}
		if params.PasswordConfirmation, err = a.promptPassword("Confirm password"); err != nil {
			return err
		}
	}

	api, err := a.newAPIClient("")
	if err != nil {
		return err
	}
	res, err := api.Register(ctx, params)
	if err != nil {
		return err
	}

	return a.startSession(state, res.Message, res.Token, res.User)
}

func (a *App) login(ctx context.Context, state *State, args []string) error {
	fs := a.newFlagSet("login")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	address, err := a.valueOrPrompt(*email, "Email")
	if err != nil {
		return err
	}
	secret := *password
	if secret == "" {
		if secret, err = a.promptPassword("Password"); err != nil {
			return err
		}
	}

	api, err := a.newAPIClient("")
	if err != nil {
		return err
	}
	res, err := api.Login(ctx, address, secret)
	if err != nil {
		return err
	}

	return a.startSession(state, res.Message, res.Token, res.User)
}

func (a *App) startSession(state *State, message, token string, user *entity.PublicUser) error {
	state.Token = token
	if err := a.store.Save(state); err != nil {
		return err
	}

	a.success.Fprintln(a.out, message)
	if user != nil {
		fmt.Fprintf(a.out, "Logged in as %s <%s>\n", user.Name, user.Email)
	}

	return nil
}

// logout removes local state even when the server call fails.
func (a *App) logout(ctx context.Context, state *State) error {
	if state.Token == "" {
		if err := a.store.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Not logged in.")

		return nil
	}

	api, err := a.newAPIClient(state.Token)
	if err != nil {
		return err
	}
	message, logoutErr := api.Logout(ctx)
	if err := a.store.Clear(); err != nil {
		return err
	}
	if logoutErr != nil && !IsUnauthenticated(logoutErr) {
		return logoutErr
	}
	if message == "" {
		message = "Logged out."
	}
	a.success.Fprintln(a.out, message)

	return nil
}

func (a *App) me(ctx context.Context, api *APIClient) error {
	user, err := api.Me(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("server returned no user")
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", user.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", user.Name)
	fmt.Fprintf(tw, "Email:\t%s\n", user.Email)
	fmt.Fprintf(tw, "Member since:\t%s\n", user.CreatedAt.Format(time.DateOnly))

	return tw.Flush()
}

var filterFlags = map[string]bool{
	"in-use": true, "location": true, "from": true, "to": true, "sort": true, "order": true,
}

// list uses the filter flags when any is given and saves them; otherwise it
// reuses the saved filters.
func (a *App) list(ctx context.Context, api *APIClient, state *State, args []string) error {
	fs := a.newFlagSet("list")
	page := fs.Int("page", 1, "page number")
	inUse := fs.String("in-use", "", "true or false")
	location := fs.String("location", "", "location substring")
	from := fs.String("from", "", "earliest purchase date, YYYY-MM-DD")
	to := fs.String("to", "", "latest purchase date, YYYY-MM-DD")
	sortBy := fs.String("sort", "", "name, location, purchase_date, in_use or created_at")
	order := fs.String("order", "", "asc or desc")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filtersGiven := false
	fs.Visit(func(f *flag.Flag) {
		if filterFlags[f.Name] {
			filtersGiven = true
		}
	})

	var filters Filters
	if filtersGiven {
		filters = Filters{
			Location:          *location,
			PurchaseDateStart: *from,
			PurchaseDateEnd:   *to,
			SortBy:            *sortBy,
			SortOrder:         *order,
		}
		if *inUse != "" {
			value, err := strconv.ParseBool(*inUse)
			if err != nil {
				return errors.Errorf("-in-use must be true or false, got %q", *inUse)
			}
			filters.InUse = &value
		}
	} else if state.Filters != nil {
		filters = *state.Filters
	}

	res, err := api.ListDevices(ctx, filters, *page)
	if err != nil {
		return err
	}

	if filtersGiven {
		state.Filters = nil
		if !filters.IsZero() {
			state.Filters = &filters
		}
		if err := a.store.Save(state); err != nil {
			return err
		}
	}

	return a.printDevices(res.Data, res.Meta, filters)
}

func (a *App) printDevices(devices []*entity.Device, meta entity.PageMeta, filters Filters) error {
	if !filters.IsZero() {
		a.muted.Fprintf(a.out, "Filters: %s\n", filters.Values().Encode())
	}
	if len(devices) == 0 {
		fmt.Fprintln(a.out, "No devices found.")

		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tLOCATION\tPURCHASED\tIN USE")
	for _, device := range devices {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			device.ID, device.Name, device.Location, device.PurchaseDate, yesNo(device.InUse))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	a.muted.Fprintf(a.out, "Page %d of %d, %d devices\n", meta.CurrentPage, meta.LastPage, meta.Total)

	return nil
}

func (a *App) printDevice(message string, device *entity.Device) error {
	a.success.Fprintln(a.out, message)
	if device == nil {
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", device.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", device.Name)
	fmt.Fprintf(tw, "Location:\t%s\n", device.Location)
	fmt.Fprintf(tw, "Purchased:\t%s\n", device.PurchaseDate)
	fmt.Fprintf(tw, "In use:\t%s\n", yesNo(device.InUse))

	return tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}

func (a *App) add(ctx context.Context, api *APIClient, args []string) error {
	fs := a.newFlagSet("add")
	name := fs.String("name", "", "device name")
	location := fs.String("location", "", "where the device is")
	date := fs.String("date", "", "purchase date, YYYY-MM-DD")
	inUse := fs.Bool("in-use", false, "mark the device as in use")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var params DeviceParams
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			params.Name = name
		case "location":
			params.Location = location
		case "date":
			params.PurchaseDate = date
		case "in-use":
			params.InUse = inUse
		}
	})

	res, err := api.CreateDevice(ctx, params)
	if err != nil {
		return err
	}

	return a.printDevice("Device created successfully", res)
}

func (a *App) edit(ctx context.Context, api *APIClient, args []string) error {
	fs := a.newFlagSet("edit")
	name := fs.String("name", "", "device name")
	location := fs.String("location", "", "where the device is")
	date := fs.String("date", "", "purchase date, YYYY-MM-DD")
	inUse := fs.String("in-use", "", "true or false")
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}

	var params DeviceParams
	var visitErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			params.Name = name
		case "location":
			params.Location = location
		case "date":
			params.PurchaseDate = date
		case "in-use":
			value, err := strconv.ParseBool(*inUse)
			if err != nil {
				visitErr = errors.Errorf("-in-use must be true or false, got %q", *inUse)

				return
			}
			params.InUse = &value
		}
	})
	if visitErr != nil {
		return visitErr
	}
	if params == (DeviceParams{}) {
		return errNoChanges
	}

	res, err := api.UpdateDevice(ctx, id, params)
	if err != nil {
		return err
	}

	return a.printDevice("Device updated successfully", res)
}

func (a *App) remove(ctx context.Context, api *APIClient, args []string) error {
	id, err := parseWithID(a.newFlagSet("rm"), args)
	if err != nil {
		return err
	}

	message, err := api.DeleteDevice(ctx, id)
	if err != nil {
		return err
	}
	a.success.Fprintln(a.out, message)

	return nil
}

func (a *App) toggle(ctx context.Context, api *APIClient, args []string) error {
	id, err := parseWithID(a.newFlagSet("toggle"), args)
	if err != nil {
		return err
	}

	res, err := api.ToggleDevice(ctx, id)
	if err != nil {
		return err
	}

	return a.printDevice("Status updated successfully", res)
}

func (a *App) filters(state *State, args []string) error {
	if len(args) > 0 && args[0] == "clear" {
		state.Filters = nil
		if err := a.store.Save(state); err != nil {
			return err
		}
		a.success.Fprintln(a.out, "Saved filters cleared.")

		return nil
	}
	if len(args) > 0 && args[0] != "show" {
		return errors.Errorf("unknown filters subcommand %q", args[0])
	}

	if state.Filters == nil || state.Filters.IsZero() {
		fmt.Fprintln(a.out, "No saved filters.")

		return nil
	}
	fmt.Fprintln(a.out, state.Filters.Values().Encode())

	return nil
}

// parseWithID accepts the device id before or after the flags.
func parseWithID(fs *flag.FlagSet, args []string) (string, error) {
	var id string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		id, args = args[0], args[1:]
	}
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if id == "" {
		id = fs.Arg(0)
	}
	if id == "" {
		return "", errMissingID
	}

	return id, nil
}
