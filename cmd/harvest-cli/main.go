package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/harvestchain/harvest-go/cmd/harvest-cli/commands"
	"github.com/harvestchain/harvest-go/logging"
)

var rootCmd = &cobra.Command{
	Use:   "harvest-cli",
	Short: "harvest-cli manages wallet account records",
}

func pcFromCommands(parent readline.PrefixCompleterInterface, c *cobra.Command) {
	pc := readline.PcItem(c.Name())
	parent.SetChildren(append(parent.GetChildren(), pc))
	for _, child := range c.Commands() {
		pcFromCommands(pc, child)
	}
}

func runShell() {
	completer := readline.NewPrefixCompleter()
	for _, child := range rootCmd.Commands() {
		pcFromCommands(completer, child)
	}
	shell, err := readline.NewEx(&readline.Config{
		Prompt:       "> ",
		AutoComplete: completer,
		EOFPrompt:    "exit",
	})
	if err != nil {
		panic(err)
	}
	defer shell.Close()

shell_loop:
	for {
		l, err := shell.Readline()
		if err != nil {
			break shell_loop
		}
		fields := strings.Fields(l)
		if len(fields) == 0 {
			continue
		}
		cmd, flags, err := rootCmd.Find(fields)
		if err != nil {
			shell.Terminal.Write([]byte(err.Error() + "\n"))
			continue
		}
		if cmd == rootCmd {
			continue
		}
		if err := cmd.ParseFlags(flags); err != nil {
			shell.Terminal.Write([]byte(err.Error() + "\n"))
			continue
		}
		pos := cmd.Flags().Args()
		if cmd.Args != nil {
			if err := cmd.Args(cmd, pos); err != nil {
				shell.Terminal.Write([]byte(err.Error() + "\n"))
				continue
			}
		}
		cmd.Run(cmd, pos)
	}
}

func defaultConfigDir() string {
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".harvest")
}

func loadConfig() {
	viper.SetConfigName("config")
	viper.SetDefault("log.level", logging.InfoLevel)
	viper.SetDefault("log.dir", "")
	viper.SetDefault("log.age", 7)
	if dir := defaultConfigDir(); dir != "" {
		viper.AddConfigPath(dir)
	}
	viper.AddConfigPath(".")
	// a missing config file just means defaults
	_ = viper.ReadInConfig()
}

func addCommands() {
	rootCmd.AddCommand(commands.GenerateCmd())
	rootCmd.AddCommand(commands.ImportCmd())
	rootCmd.AddCommand(commands.MnemonicCmd())
	rootCmd.AddCommand(commands.InspectCmd())
	rootCmd.AddCommand(commands.EndpointCmd())
}

func init() {
	addCommands()
	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		runShell()
	}
}

func main() {
	loadConfig()
	logger, err := logging.Init(
		viper.GetString("log.dir"),
		viper.GetString("log.level"),
		uint32(viper.GetInt("log.age")),
	)
	if err != nil {
		os.Exit(1)
	}
	commands.Log = logger

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
