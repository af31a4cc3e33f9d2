package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cinerow/cinerow/auth"
	"github.com/cinerow/cinerow/color"
	"github.com/cinerow/cinerow/icon"
	"github.com/cinerow/cinerow/style"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authSetCmd, authDeleteCmd, authStatusCmd)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage TMDb and YouTube API keys stored in the system keyring",
}

func completeServices(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return auth.Services, cobra.ShellCompDirectiveNoFileComp
}

func serviceArg(args []string) (string, error) {
	service := strings.ToLower(args[0])
	if _, ok := credentialKeys[service]; !ok {
		return "", fmt.Errorf("unknown service %q, expected one of %s", args[0], strings.Join(auth.Services, ", "))
	}
	return service, nil
}

var authSetCmd = &cobra.Command{
	Use:               "set SERVICE [KEY]",
	Short:             "Store an API key. Reads it from stdin when omitted",
	Args:              cobra.RangeArgs(1, 2),
	ValidArgsFunction: completeServices,
	Run: func(cmd *cobra.Command, args []string) {
		service, err := serviceArg(args)
		handleErr(err)

		var apiKey string
		if len(args) == 2 {
			apiKey = args[1]
		} else {
			apiKey, err = readKey(service)
			handleErr(err)
		}

		apiKey = strings.TrimSpace(apiKey)
		if apiKey == "" {
			handleErr(errors.New("empty key"))
		}

		handleErr(auth.Set(service, apiKey))
		fmt.Printf("%s %s key stored\n", icon.Get(icon.Success), service)
	},
}

// readKey prompts without echo on a terminal and reads a line otherwise.
func readKey(service string) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Printf("%s key: ", service)
		b, err := term.ReadPassword(fd)
		fmt.Println()
		return string(b), err
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read key: %w", err)
	}
	return line, nil
}

var authDeleteCmd = &cobra.Command{
	Use:               "delete SERVICE",
	Aliases:           []string{"rm"},
	Short:             "Remove a stored API key",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeServices,
	Run: func(cmd *cobra.Command, args []string) {
		service, err := serviceArg(args)
		handleErr(err)

		handleErr(auth.Delete(service))
		fmt.Printf("%s %s key removed\n", icon.Get(icon.Success), service)
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where each API key is resolved from",
	Run: func(cmd *cobra.Command, args []string) {
		for _, service := range auth.Services {
			_, source := credential(service)

			value := style.Fg(color.Green)(string(source))
			if source == sourceNone {
				value = style.Fg(color.Red)(string(source))
			}

			fmt.Printf("%s %s\n", style.New().Bold(true).Foreground(color.Purple).Render(service+":"), value)
		}
	},
}
