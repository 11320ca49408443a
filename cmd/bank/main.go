// Command bank is the terminal front end for the account-ledger core. It owns
// all navigation and login state and calls into the service layer for every
// operation; the core holds no session state of its own.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/bankbook/bankbook/internal/config"
	"github.com/bankbook/bankbook/internal/ledger"
	"github.com/bankbook/bankbook/internal/models"
	"github.com/bankbook/bankbook/internal/service"
	"github.com/bankbook/bankbook/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)
	logger.Info("starting bankbook",
		"accounts_file", cfg.Store.Path,
		"log_level", cfg.Logger.Level,
	)

	a := &app{
		svc: service.New(store.New(cfg.Store.Path), logger),
		in:  bufio.NewReader(os.Stdin),
	}
	a.run()
}

// session is the explicit application state the menu threads through its
// pages: who is logged in and which of their accounts is active.
type session struct {
	email        string
	accountIndex int
}

type app struct {
	svc *service.Service
	in  *bufio.Reader
}

func (a *app) run() {
	for {
		fmt.Println("\n=== Simple Banking App ===")
		fmt.Println("1. Login")
		fmt.Println("2. Create Account")
		fmt.Println("3. Forgot Password")
		fmt.Println("4. Exit")

		switch a.prompt("Select an option") {
		case "1":
			a.login()
		case "2":
			a.createUser()
		case "3":
			a.forgotPassword()
		case "4":
			fmt.Println("Exiting application. Goodbye!")
			return
		default:
			fmt.Println("Invalid choice. Please try again.")
		}
	}
}

func (a *app) login() {
	email := a.prompt("Enter email")
	password := a.prompt("Enter password")

	user, err := a.svc.Authenticate(email, password)
	if err != nil {
		fmt.Println(errorMessage(err))
		return
	}
	fmt.Println("Login successful.")
	a.bankingMenu(&session{email: user.Email})
}

func (a *app) createUser() {
	fmt.Println("\n=== Create Account ===")
	p := service.NewUserParams{
		FirstName: a.prompt("First name"),
		LastName:  a.prompt("Last name"),
		Email:     a.prompt("Email"),
	}
	p.Account.BankName = a.prompt("Bank name")
	p.Account.AccountID = a.prompt("Bank account number / ID")
	p.Account.AccountType = a.promptAccountType()

	balance, err := a.promptAmount("Starting balance")
	if err != nil {
		fmt.Println("Invalid amount. Please enter a numeric value.")
		return
	}
	p.Account.StartingBalance = balance

	p.Password = a.prompt("Password")
	if a.prompt("Confirm password") != p.Password {
		fmt.Println("Passwords do not match. Account not created.")
		return
	}

	if _, err := a.svc.CreateUser(p); err != nil {
		fmt.Println(errorMessage(err))
		return
	}
	fmt.Println("Account created successfully. You can now login.")
}

func (a *app) forgotPassword() {
	fmt.Println("\n=== Forgot Password ===")
	email := a.prompt("Registered email")
	newPassword := a.prompt("New password")
	if a.prompt("Confirm new password") != newPassword {
		fmt.Println("Passwords do not match.")
		return
	}

	if err := a.svc.ResetPassword(email, newPassword); err != nil {
		fmt.Println(errorMessage(err))
		return
	}
	fmt.Println("Password has been reset. You can now login with your new password.")
}

func (a *app) bankingMenu(sess *session) {
	for {
		user, acct, ok := a.current(sess)
		if !ok {
			return
		}

		fmt.Printf("\n=== Banking Menu (%s %s) ===\n", user.FirstName, user.LastName)
		fmt.Printf("Active account: %s - %s (%s)\n", acct.AccountType, acct.AccountID, acct.BankName)
		fmt.Println("1. Deposit")
		fmt.Println("2. Withdraw")
		fmt.Println("3. Check Balance")
		fmt.Println("4. Transaction History")
		fmt.Println("5. Add Account")
		fmt.Println("6. Switch Account")
		fmt.Println("7. Profile")
		fmt.Println("8. Logout")

		switch a.prompt("Select an option") {
		case "1":
			a.deposit(sess)
		case "2":
			a.withdraw(sess)
		case "3":
			fmt.Printf("Current balance: %s\n", ledger.FormatINR(acct.Balance))
		case "4":
			a.history(acct)
		case "5":
			a.addAccount(sess)
		case "6":
			a.switchAccount(sess, user)
		case "7":
			a.profile(sess, user, acct)
		case "8":
			fmt.Println("Logging out...")
			return
		default:
			fmt.Println("Invalid choice. Please try again.")
		}
	}
}

func (a *app) deposit(sess *session) {
	amount, err := a.promptAmount("Amount to deposit")
	if err != nil {
		fmt.Println("Invalid amount. Please enter a numeric value.")
		return
	}
	acct, err := a.svc.Deposit(sess.email, sess.accountIndex, amount)
	if err != nil {
		fmt.Println(errorMessage(err))
		return
	}
	fmt.Printf("Deposited %s. New balance: %s\n",
		ledger.FormatINR(amount), ledger.FormatINR(acct.Balance))
}

func (a *app) withdraw(sess *session) {
	amount, err := a.promptAmount("Amount to withdraw")
	if err != nil {
		fmt.Println("Invalid amount. Please enter a numeric value.")
		return
	}
	acct, err := a.svc.Withdraw(sess.email, sess.accountIndex, amount)
	if err != nil {
		fmt.Println(errorMessage(err))
		return
	}
	fmt.Printf("Withdrew %s. New balance: %s\n",
		ledger.FormatINR(amount), ledger.FormatINR(acct.Balance))
}

func (a *app) history(acct models.Account) {
	opening, rows := a.svc.GetHistory(acct)
	if len(rows) == 0 {
		fmt.Println("No transactions yet.")
		return
	}

	fmt.Printf("\nOpening balance: %s\n", ledger.FormatINR(opening))
	for _, row := range rows {
		tx := row.Transaction
		sign := "+"
		label := "Deposit"
		if tx.Kind != models.TransactionDeposit {
			sign = "-"
			label = "Withdraw"
		}
		fmt.Printf("%-19s  %-8s  %s%-14s  balance %s\n",
			tx.Timestamp, label, sign, ledger.FormatINR(tx.Amount), ledger.FormatINR(row.Balance))
	}
}

func (a *app) addAccount(sess *session) {
	fmt.Println("\n=== Add New Account ===")
	p := service.NewAccountParams{
		AccountID:   a.prompt("New account ID / Number"),
		AccountType: a.promptAccountType(),
		BankName:    a.prompt("Bank name"),
	}
	balance, err := a.promptAmount("Starting balance")
	if err != nil {
		fmt.Println("Invalid amount. Please enter a numeric value.")
		return
	}
	p.StartingBalance = balance

	if _, err := a.svc.AddAccount(sess.email, p); err != nil {
		fmt.Println(errorMessage(err))
		return
	}
	user, err := a.svc.LookupUser(sess.email)
	if err == nil {
		sess.accountIndex = len(user.Accounts) - 1
	}
	fmt.Println("New account added successfully.")
}

func (a *app) switchAccount(sess *session, user models.User) {
	summaries := service.ListAccounts(user)
	fmt.Println("\n=== Select Bank Account ===")
	for _, s := range summaries {
		fmt.Printf("%d. %s - %s\n", s.Index+1, s.Label(), ledger.FormatINR(s.Balance))
	}
	choice, err := strconv.Atoi(a.prompt("Choose an account"))
	if err != nil || choice < 1 || choice > len(summaries) {
		fmt.Println("Invalid choice.")
		return
	}
	sess.accountIndex = choice - 1
}

func (a *app) profile(sess *session, user models.User, acct models.Account) {
	fmt.Println("\n=== Profile ===")
	fmt.Printf("Name:       %s %s\n", user.FirstName, user.LastName)
	fmt.Printf("Email:      %s\n", user.Email)
	fmt.Printf("Bank:       %s\n", acct.BankName)
	fmt.Printf("Account:    %s (%s)\n", acct.AccountID, acct.AccountType)
	fmt.Printf("Balance:    %s\n", ledger.FormatINR(acct.Balance))
	fmt.Printf("Created at: %s\n", user.CreatedAt)

	if a.prompt("Edit profile? (y/n)") != "y" {
		return
	}
	firstName := a.prompt("First name (blank keeps current)")
	lastName := a.prompt("Last name (blank keeps current)")
	bankName := a.prompt("Bank name (blank keeps current)")
	if _, err := a.svc.UpdateProfile(sess.email, firstName, lastName, sess.accountIndex, bankName); err != nil {
		fmt.Println(errorMessage(err))
		return
	}
	fmt.Println("Profile updated successfully.")
}

// current refreshes the logged-in user and active account from the store,
// re-reading the file so edits by another run are picked up.
func (a *app) current(sess *session) (models.User, models.Account, bool) {
	user, err := a.svc.LookupUser(sess.email)
	if err != nil {
		fmt.Println(errorMessage(err))
		return models.User{}, models.Account{}, false
	}
	acct, err := service.SelectAccount(user, sess.accountIndex)
	if err != nil {
		fmt.Println(errorMessage(err))
		return models.User{}, models.Account{}, false
	}
	return user, acct, true
}

func (a *app) prompt(label string) string {
	fmt.Printf("%s: ", label)
	line, _ := a.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func (a *app) promptAmount(label string) (decimal.Decimal, error) {
	return decimal.NewFromString(a.prompt(label))
}

func (a *app) promptAccountType() models.AccountType {
	if strings.EqualFold(a.prompt("Account type (Savings/Current)"), string(models.AccountTypeCurrent)) {
		return models.AccountTypeCurrent
	}
	return models.AccountTypeSavings
}

// errorMessage unwraps business errors to the user-facing message the service
// attached; everything else is shown verbatim.
func errorMessage(err error) string {
	var se *service.ServiceError
	if errors.As(err, &se) {
		return se.Message
	}
	return err.Error()
}
