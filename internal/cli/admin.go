package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"Plenum/internal/auth"
	"Plenum/internal/repo"
)

var (
	adminLogin string
	adminDays  int
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative account operations",
	Long: `Administrative operations against the service database.

The connection comes from DATABASE_URL, the same variable the server
uses.`,
}

var grantPremiumCmd = &cobra.Command{
	Use:   "grant-premium",
	Short: "Grant a premium subscription to an account",
	Run:   runGrantPremium,
}

var revokePremiumCmd = &cobra.Command{
	Use:   "revoke-premium",
	Short: "Revoke an account's premium subscription",
	Run:   runRevokePremium,
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(grantPremiumCmd)
	adminCmd.AddCommand(revokePremiumCmd)

	grantPremiumCmd.Flags().StringVar(&adminLogin, "login", "", "Account login [required]")
	grantPremiumCmd.Flags().IntVar(&adminDays, "days", 30, "Subscription length in days")
	grantPremiumCmd.MarkFlagRequired("login")

	revokePremiumCmd.Flags().StringVar(&adminLogin, "login", "", "Account login [required]")
	revokePremiumCmd.MarkFlagRequired("login")
}

func lookupAccount(r repo.Repository) (int, error) {
	id, _, err := r.GetByLogin(context.Background(), adminLogin)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, fmt.Errorf("no account with login %q", adminLogin)
	}
	return id, nil
}

func runGrantPremium(cmd *cobra.Command, args []string) {
	db := auth.InitDB()
	defer db.Close()
	r := repo.NewPostgresDB(db)

	id, err := lookupAccount(r)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	until := time.Now().Add(time.Duration(adminDays) * 24 * time.Hour)
	if err := r.SetPremiumUntil(context.Background(), id, until); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Premium granted to %s until %s\n", adminLogin, until.Format("2006-01-02"))
}

func runRevokePremium(cmd *cobra.Command, args []string) {
	db := auth.InitDB()
	defer db.Close()
	r := repo.NewPostgresDB(db)

	id, err := lookupAccount(r)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if err := r.ClearPremium(context.Background(), id); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Premium revoked for %s\n", adminLogin)
}
