package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"rocketapi/pkg/auth"
)

// authCmd represents the auth command
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage RocketAPI tokens",
	Long: `Manage stored RocketAPI access tokens securely.

Tokens are stored using:
  - System keychain (when available)
  - Encrypted file with PBKDF2 key derivation
  - ROCKETAPI_TOKEN environment variable (read-only fallback)

Never share your tokens or config files!`,
}

// loginCmd represents the auth login command
var loginCmd = &cobra.Command{
	Use:   "login [name]",
	Short: "Store a RocketAPI token securely",
	Long: `Store a RocketAPI token securely in the system keychain or an
encrypted file. The token value is read from the terminal without
echoing.

Get your token from the RocketAPI dashboard at https://rocketapi.io.`,
	Example: `  # Store the default token
  rocketapi auth login

  # Store a named token
  rocketapi auth login production`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

// logoutCmd represents the auth logout command
var logoutCmd = &cobra.Command{
	Use:   "logout [name]",
	Short: "Remove a stored token",
	Long: `Remove a stored RocketAPI token. If no name is provided and only
one token is stored, that token is removed after confirmation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogout,
}

// listCmd represents the auth list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored tokens",
	Long:  `List all stored tokens with their values masked.`,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(listCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	manager, err := auth.NewManager()
	if err != nil {
		return fmt.Errorf("failed to initialize token manager: %w", err)
	}

	name := "default"
	if len(args) > 0 {
		name = args[0]
	}

	reader := bufio.NewReader(os.Stdin)

	// Confirm overwrite of an existing token
	if existing, _ := manager.Retrieve(name); existing != nil {
		fmt.Printf("Token '%s' already exists. Replace it? (y/N): ", name)
		input, _ := reader.ReadString('\n')
		if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(input)), "y") {
			return nil
		}
	}

	fmt.Print("RocketAPI token (input hidden): ")
	value, err := readPassword()
	if err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}
	if value == "" {
		return fmt.Errorf("token value is required")
	}

	token := &auth.Token{
		Name:  name,
		Value: value,
	}

	if err := manager.Store(token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	sanitized := auth.SanitizeToken(token)
	fmt.Printf("Token stored: %s (%s)\n", sanitized.Name, sanitized.Value)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	manager, err := auth.NewManager()
	if err != nil {
		return fmt.Errorf("failed to initialize token manager: %w", err)
	}

	if len(args) > 0 {
		if err := manager.Delete(args[0]); err != nil {
			return fmt.Errorf("failed to remove token: %w", err)
		}
		fmt.Println("Token removed:", args[0])
		return nil
	}

	tokens, err := manager.List()
	if err != nil || len(tokens) == 0 {
		return fmt.Errorf("no stored tokens found")
	}

	if len(tokens) == 1 {
		token := tokens[0]
		reader := bufio.NewReader(os.Stdin)
		fmt.Printf("Remove token '%s'? (y/N): ", token.Name)
		input, _ := reader.ReadString('\n')
		if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(input)), "y") {
			return nil
		}
		if err := manager.Delete(token.Name); err != nil {
			return fmt.Errorf("failed to remove token: %w", err)
		}
		fmt.Println("Token removed:", token.Name)
		return nil
	}

	fmt.Println("Select token to remove:")
	for i, token := range tokens {
		fmt.Printf("  %d. %s\n", i+1, token.Name)
	}
	fmt.Printf("  0. Cancel\n\n")

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Choice: ")
	input, _ := reader.ReadString('\n')

	var choice int
	fmt.Sscanf(strings.TrimSpace(input), "%d", &choice)

	if choice == 0 {
		return nil
	}
	if choice < 1 || choice > len(tokens) {
		return fmt.Errorf("invalid choice")
	}

	token := tokens[choice-1]
	if err := manager.Delete(token.Name); err != nil {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	fmt.Println("Token removed:", token.Name)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	manager, err := auth.NewManager()
	if err != nil {
		return fmt.Errorf("failed to initialize token manager: %w", err)
	}

	tokens, err := manager.List()
	if err != nil {
		return fmt.Errorf("failed to list tokens: %w", err)
	}

	if len(tokens) == 0 {
		fmt.Println("No stored tokens. Use 'rocketapi auth login' to add one.")
		return nil
	}

	fmt.Println("Stored tokens:")
	for i, token := range tokens {
		sanitized := auth.SanitizeToken(token)
		fmt.Printf("%d. %s\n", i+1, sanitized.Name)
		fmt.Printf("   Value: %s\n", sanitized.Value)
		fmt.Printf("   Last Modified: %s\n", sanitized.LastModified.Format("2006-01-02 15:04:05"))
	}
	return nil
}

// readPassword reads a secret from stdin without echoing
func readPassword() (string, error) {
	if term.IsTerminal(int(syscall.Stdin)) {
		secret, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err == nil {
			return strings.TrimSpace(string(secret)), nil
		}
	}

	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}
