package cmd

import (
	"os"
	"strings"

	"github.com/cinerow/cinerow/color"
	"github.com/cinerow/cinerow/config"
	"github.com/cinerow/cinerow/style"
	"github.com/cinerow/cinerow/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "only variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "only variables that are not set")
	envCmd.Flags().Bool("reveal", false, "print API keys instead of masking them")
	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envVariables lists every variable cinerow reads, sorted.
func envVariables() []string {
	envs := lo.Map(config.EnvExposed, func(k string, _ int) string {
		field := config.Default[k]
		return field.Env()
	})
	envs = append(envs, where.EnvConfigPath, where.EnvCachePath)
	envs = append(envs, lo.Values(config.CredentialEnvFallbacks)...)
	slices.Sort(envs)
	return slices.Compact(envs)
}

func isSecretEnv(env string) bool {
	return strings.HasSuffix(env, "_API_KEY")
}

// maskSecret keeps the last four characters of a key.
func maskSecret(value string) string {
	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}
	return strings.Repeat("*", len(value)-4) + value[len(value)-4:]
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables cinerow reads",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))
		reveal := lo.Must(cmd.Flags().GetBool("reveal"))

		name := style.New().Bold(true).Foreground(color.Purple).Render
		for _, env := range envVariables() {
			value, set := os.LookupEnv(env)
			set = set && value != ""
			if (setOnly && !set) || (unsetOnly && set) {
				continue
			}

			switch {
			case !set:
				value = style.Fg(color.Red)("unset")
			case isSecretEnv(env) && !reveal:
				value = style.Fg(color.Green)(maskSecret(value))
			default:
				value = style.Fg(color.Green)(value)
			}
			cmd.Println(name(env) + "=" + value)
		}
	},
}
