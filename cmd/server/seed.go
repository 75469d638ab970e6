package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"regexp"

	"github.com/rohanjsheth/Paper-Trader/internal/config"
	"github.com/rohanjsheth/Paper-Trader/internal/database"
	"github.com/rohanjsheth/Paper-Trader/internal/models"
	"github.com/rohanjsheth/Paper-Trader/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

type UserImport struct {
	Username string          `json:"username"`
	Cash     decimal.Decimal `json:"cash"`
	Password string          `json:"password"`
}

var (
	seedFile      string
	seedPassword  string
	strictMode    bool
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,50}$`)
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Import demo accounts from a JSON file",
	Long: `Import user accounts from a JSON file.

Expected JSON format:
[
  {"username": "alice", "cash": 10000},
  {"username": "bob", "cash": 2500.50, "password": "s3cret~pass"}
]

Entries without a password use the --password default. Invalid entries are
skipped unless --strict is set.`,
	Example: `  paper-trader seed -f users.json
  paper-trader seed -f users.json --strict`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSeed(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "JSON file to import (required)")
	seedCmd.Flags().StringVar(&seedPassword, "password", "changeme1!", "default password for imported accounts")
	seedCmd.Flags().BoolVar(&strictMode, "strict", false, "Fail on any validation error")
	seedCmd.MarkFlagRequired("file")
}

func runSeed() error {
	data, err := os.ReadFile(seedFile)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var users []UserImport
	if err := json.Unmarshal(data, &users); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	userRepo := repository.NewUserRepository(db)

	log.Printf("Starting import of %d accounts from %s", len(users), seedFile)

	imported := 0
	skipped := 0

	for _, u := range users {
		if err := validateAndImportUser(u, userRepo); err != nil {
			if strictMode {
				return fmt.Errorf("import failed for %s: %w", u.Username, err)
			}
			log.Printf("Skipped %s: %v", u.Username, err)
			skipped++
			continue
		}
		imported++
	}

	log.Printf("Import complete: %d imported, %d skipped", imported, skipped)
	return nil
}

func validateAndImportUser(u UserImport, userRepo *repository.UserRepository) error {
	if u.Username == "" {
		return fmt.Errorf("empty username")
	}
	if !usernameRegex.MatchString(u.Username) {
		return fmt.Errorf("invalid username format")
	}
	if u.Cash.IsNegative() {
		return fmt.Errorf("negative cash not allowed")
	}

	existing, err := userRepo.FindByUsername(u.Username)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("username already exists")
	}

	password := u.Password
	if password == "" {
		password = seedPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: u.Username,
		Hash:     string(hash),
		Cash:     u.Cash,
	}
	if err := userRepo.Create(user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("Imported %s with $%s", u.Username, u.Cash.StringFixed(2))
	return nil
}
