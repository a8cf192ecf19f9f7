// Package console is the interactive text front end: a main menu to pick
// a role, a login prompt and one menu per role.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"quickcart/internal/core/application/policies"
	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/user"
)

const banner = "================================================ QuickCart ================================================"

// ExitFunc runs once when the user leaves the main menu or input ends.
type ExitFunc func(ctx context.Context) error

type Console struct {
	factory policies.Factory
	in      *bufio.Scanner
	out     io.Writer
	onExit  ExitFunc
	logger  *slog.Logger
}

func New(factory policies.Factory, in io.Reader, out io.Writer, onExit ExitFunc, logger *slog.Logger) *Console {
	if logger == nil {
		logger = slog.Default()
	}
	return &Console{
		factory: factory,
		in:      bufio.NewScanner(in),
		out:     out,
		onExit:  onExit,
		logger:  logger.With("component", "Console"),
	}
}

// Run shows the main menu until the user exits, input ends or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	err := c.mainMenu(ctx)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	if c.onExit != nil {
		if exitErr := c.onExit(ctx); exitErr != nil {
			c.logger.ErrorContext(ctx, "exit hook failed", "error", exitErr)
			c.printf("Error: could not save data: %v\n", exitErr)
		}
	}
	c.printf("Exiting QuickCart...\n")
	return nil
}

func (c *Console) mainMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printf("\n%s\n", banner)
		c.printf("Welcome to QuickCart!\nPlease Login to Continue\n")
		c.printf("1. Admin?\n2. Customer?\n3. Rider?\n4. Exit\n")

		choice, err := c.prompt("Select option: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = c.loginAs(ctx, user.Admin, c.adminMenu)
		case "2":
			err = c.loginAs(ctx, user.Customer, c.customerMenu)
		case "3":
			err = c.loginAs(ctx, user.Rider, c.riderMenu)
		case "4":
			return nil
		default:
			c.printf("Invalid choice\n")
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) loginAs(ctx context.Context, role user.Role, menu func(context.Context, policies.Session) error) error {
	name, err := c.prompt("Username: ")
	if err != nil {
		return err
	}
	password, err := c.prompt("Password: ")
	if err != nil {
		return err
	}

	session, ok := c.factory.Login(ctx, role, name, password)
	if !ok {
		c.printf("Invalid credentials\n")
		return nil
	}
	c.printf("Welcome, %s!\n", session.Name)
	return menu(ctx, session)
}

// prompt reads one trimmed line. It returns io.EOF when input ends.
func (c *Console) prompt(label string) (string, error) {
	c.printf("%s", label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) promptInt(label string) (int, bool, error) {
	raw, err := c.prompt(label)
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(raw)
	return n, convErr == nil, nil
}

func (c *Console) promptMoney(label string) (kernel.Money, bool, error) {
	raw, err := c.prompt(label)
	if err != nil {
		return kernel.Money{}, false, err
	}
	m, parseErr := kernel.MoneyFromString(raw)
	return m, parseErr == nil, nil
}

func (c *Console) promptID(label string) (kernel.UUID, bool, error) {
	raw, err := c.prompt(label)
	if err != nil {
		return kernel.UUID{}, false, err
	}
	id, parseErr := kernel.UUIDFromString(raw)
	return id, parseErr == nil, nil
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func (c *Console) printError(err error) {
	c.printf("Error: %v\n", err)
}

// updateProfile asks for a new email and password; blank answers keep the
// current value.
func (c *Console) updateProfile(ctx context.Context, update func(context.Context, string, string) error) error {
	email, err := c.prompt("New email (blank to keep): ")
	if err != nil {
		return err
	}
	password, err := c.prompt("New password (blank to keep): ")
	if err != nil {
		return err
	}

	if err := update(ctx, email, password); err != nil {
		c.printError(err)
		return nil
	}
	c.printf("Profile updated\n")
	return nil
}
