// Command demo runs a fixed script against an in-memory bank and prints the
// transcript. Failing operations are part of the script and never change the
// exit status.
package main

import (
	"fmt"
	"os"

	"github.com/arhyth/minibank"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	okc     = color.New(color.FgGreen)
	failc   = color.New(color.FgRed)
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, NoColor: color.NoColor}).
		Level(zerolog.WarnLevel)
	bank := minibank.NewBank(&logger)

	heading.Println("--- Opening Accounts ---")
	sid := bank.OpenSavings("Alice Smith", decimal.NewFromInt(1000), decimal.RequireFromString("0.03"))
	fmt.Println("Opened new Savings Account with number:", sid)
	cid := bank.OpenChecking("Bob Johnson", decimal.NewFromInt(500), decimal.NewFromInt(100))
	fmt.Println("Opened new Checking Account with number:", cid)
	fmt.Println()

	heading.Printf("--- Transactions for Alice (%s) ---\n", sid)
	if acct, err := bank.Find(sid); err == nil {
		report("Deposit", 250)(acct.Deposit(decimal.NewFromInt(250)))
		report("Withdrawal", 100)(acct.Withdraw(decimal.NewFromInt(100)))
		report("Withdrawal", 1500)(acct.Withdraw(decimal.NewFromInt(1500)))
	} else {
		failc.Println(err)
	}
	if sav, err := bank.FindSavings(sid); err == nil {
		interest, err := sav.ApplyInterest()
		if err != nil {
			failc.Println(err)
		} else {
			okc.Printf("Applied interest: $%s. New balance: $%s\n", interest, sav.Balance())
		}
	}
	fmt.Println()

	heading.Printf("--- Transactions for Bob (%s) ---\n", cid)
	if acct, err := bank.Find(cid); err == nil {
		report("Withdrawal", 400)(acct.Withdraw(decimal.NewFromInt(400)))
		report("Withdrawal", 150)(acct.Withdraw(decimal.NewFromInt(150)))
		report("Withdrawal", 100)(acct.Withdraw(decimal.NewFromInt(100)))
		report("Deposit", 50)(acct.Deposit(decimal.NewFromInt(50)))
	} else {
		failc.Println(err)
	}
	fmt.Println()

	heading.Println("--- All Bank Accounts ---")
	for _, d := range bank.List() {
		printDescription(d)
	}
}

func report(op string, amount int64) func(decimal.Decimal, error) {
	return func(bal decimal.Decimal, err error) {
		if err != nil {
			failc.Printf("%s of $%d failed: %s\n", op, amount, err)
			return
		}
		okc.Printf("%s: $%d. New balance: $%s\n", op, amount, bal)
	}
}

func printDescription(d minibank.Description) {
	switch d.Kind {
	case minibank.KindSavings:
		heading.Println("--- Savings Account ---")
	case minibank.KindChecking:
		heading.Println("--- Checking Account ---")
	}
	fmt.Println("Account Holder:", d.Holder)
	fmt.Println("Account Number:", d.ID)
	fmt.Printf("Balance: $%s\n", d.Balance)
	if d.InterestRate != nil {
		fmt.Printf("Interest Rate: %s%%\n", d.InterestRate)
	}
	if d.OverdraftLimit != nil {
		fmt.Printf("Overdraft Limit: $%s\n", d.OverdraftLimit)
	}
	fmt.Println("------------------------")
}
